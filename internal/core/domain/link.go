package domain

import "sort"

// LinkEntry pairs a crop name with its reference URL.
type LinkEntry struct {
	CropName string `json:"crop"`
	URL      string `json:"url"`
}

// LinkTable is an immutable mapping from crop name to reference URL.
// A table is built once and never modified; reloading produces a new table.
type LinkTable struct {
	links map[string]string
	names []string
}

// NewLinkTable builds a table from entries. Later entries overwrite earlier
// entries with the same crop name.
func NewLinkTable(entries []LinkEntry) *LinkTable {
	links := make(map[string]string, len(entries))
	for _, e := range entries {
		links[e.CropName] = e.URL
	}
	names := make([]string, 0, len(links))
	for name := range links {
		names = append(names, name)
	}
	sort.Strings(names)
	return &LinkTable{links: links, names: names}
}

// EmptyLinkTable returns a table with no entries.
func EmptyLinkTable() *LinkTable {
	return NewLinkTable(nil)
}

// Lookup returns the URL for a crop name.
func (t *LinkTable) Lookup(cropName string) (string, bool) {
	if t == nil {
		return "", false
	}
	url, ok := t.links[cropName]
	return url, ok
}

// Names returns all crop names in sorted order.
func (t *LinkTable) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Entries returns all entries sorted by crop name.
func (t *LinkTable) Entries() []LinkEntry {
	if t == nil {
		return nil
	}
	out := make([]LinkEntry, len(t.names))
	for i, name := range t.names {
		out[i] = LinkEntry{CropName: name, URL: t.links[name]}
	}
	return out
}

// Len returns the number of entries.
func (t *LinkTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.links)
}
