//go:build !importcache_debug

package importcache

func assertParentResolved(error) {}
