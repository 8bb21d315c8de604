package emit

import (
	"slices"
	"strings"
)

// InfoEntry describes one field name for HTML info annotation. Type and Help
// become data-type and data-help attributes when the Info flag is set.
type InfoEntry struct {
	Name string
	Type string
	Help string
}

// SetInfo records the info table for the handle. The table is copied and
// sorted by name; lookups are binary searches. A nil slice clears the table.
func (h *Handle) SetInfo(entries []InfoEntry) {
	h = def(h)
	if entries == nil {
		h.info = nil
		return
	}
	tbl := make([]InfoEntry, len(entries))
	copy(tbl, entries)
	slices.SortFunc(tbl, func(a, b InfoEntry) int {
		return strings.Compare(a.Name, b.Name)
	})
	h.info = tbl
}

func (h *Handle) infoFind(name string) *InfoEntry {
	i, ok := slices.BinarySearchFunc(h.info, name, func(e InfoEntry, n string) int {
		return strings.Compare(e.Name, n)
	})
	if !ok {
		return nil
	}
	return &h.info[i]
}
