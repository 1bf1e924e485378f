// Package warnings extracts compiler and linker warning identifiers from build
// logs and tallies them into an ordered histogram.
package warnings

// Entry is one row of a Histogram.
type Entry struct {
	ID      string // Warning identifier (e.g., "-Wsign-compare" or "C4996")
	Count   int    // Number of occurrences, always >= 1
	Example string // Representative line from the build log
}

// Histogram maps warning identifiers to occurrence counts.
// Entries are kept in first-seen order.
type Histogram struct {
	entries []Entry
	index   map[string]int

	// fromInclude records whether the example of the entry at the same
	// position was taken from an include-marked line.
	fromInclude []bool
}

func newHistogram() *Histogram {
	return &Histogram{index: make(map[string]int)}
}

// record counts one occurrence of id found on line.
// The first include-marked line wins as example; otherwise the first line does.
func (h *Histogram) record(id, line string, included bool) {
	i, ok := h.index[id]
	if !ok {
		h.index[id] = len(h.entries)
		h.entries = append(h.entries, Entry{ID: id, Count: 1, Example: line})
		h.fromInclude = append(h.fromInclude, included)
		return
	}
	h.entries[i].Count++
	if included && !h.fromInclude[i] {
		h.entries[i].Example = line
		h.fromInclude[i] = true
	}
}

// Entries returns a copy of the histogram rows in first-seen order.
func (h *Histogram) Entries() []Entry {
	if h == nil {
		return nil
	}
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Get returns the entry for id.
func (h *Histogram) Get(id string) (Entry, bool) {
	if h == nil {
		return Entry{}, false
	}
	i, ok := h.index[id]
	if !ok {
		return Entry{}, false
	}
	return h.entries[i], true
}

// Len returns the number of distinct identifiers.
func (h *Histogram) Len() int {
	if h == nil {
		return 0
	}
	return len(h.entries)
}

// Total returns the sum of all counts.
func (h *Histogram) Total() int {
	if h == nil {
		return 0
	}
	total := 0
	for _, e := range h.entries {
		total += e.Count
	}
	return total
}
