//go:build importcache_debug

package importcache

// assertParentResolved panics: a child reached before its parent means the
// declaration tree is being walked out of order.
func assertParentResolved(err error) {
	panic(err)
}
