package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// messager matches zerr.Error's Message, which returns one layer's message
// without the chain.
type messager interface {
	Message() string
}

type metadataer interface {
	Metadata() map[string]any
}

// ErrorEntry is one layer of an error chain.
type ErrorEntry struct {
	Message  string
	Metadata map[string]any
}

// collectErrorEntries walks err outermost first. Traversal stops at the first
// error that is not a zerr error; its full Error() text becomes the last
// entry. A layer with an empty message only carries metadata, which is folded
// into the next entry.
func collectErrorEntries(err error) []ErrorEntry {
	var (
		entries []ErrorEntry
		carry   map[string]any
	)
	for current := err; current != nil; current = errors.Unwrap(current) {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, ErrorEntry{Message: current.Error(), Metadata: carry})
			break
		}

		var meta map[string]any
		if md, ok := current.(metadataer); ok {
			meta = md.Metadata()
		}
		meta = mergeMetadata(carry, meta)

		if m.Message() == "" {
			carry = meta
			continue
		}
		entries = append(entries, ErrorEntry{Message: m.Message(), Metadata: meta})
		carry = nil
	}
	return entries
}

func mergeMetadata(base, extra map[string]any) map[string]any {
	if base == nil {
		return extra
	}
	out := maps.Clone(base)
	maps.Copy(out, extra)
	return out
}

// formatErrorEntries renders entries as
//
//	Error: outer
//	       key: value
//
//	  Caused by:
//	    → inner
func formatErrorEntries(entries []ErrorEntry) string {
	var lines []string

	for i, e := range entries {
		msgLines := strings.Split(e.Message, "\n")

		head, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			head, indent = "    → ", "      "
		}

		lines = append(lines, head+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, k := range slices.Sorted(maps.Keys(e.Metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s: %v", indent, k, e.Metadata[k]))
		}
	}

	return strings.Join(lines, "\n")
}
