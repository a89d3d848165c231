package comments

import (
	"fmt"
	"slices"
	"strings"

	f "todoscan/pkg/functional"
)

// DefaultMarkers are the word prefixes treated as actionable-comment markers
// when a Tracker is created without an explicit list.
var DefaultMarkers = []string{"TODO", "FIXME", "XXX"}

// Record is one classified comment: the full comment text plus where it was
// found. Location is a display string such as "line 12".
type Record struct {
	File     string
	Location string
	Text     string
}

// Tracker accumulates classified comments grouped by label.
//
// A label is any whitespace-separated word of a comment that starts with one
// of the marker prefixes (case-sensitive; "TODOist" matches "TODO"), with a
// single trailing ":" or "-" stripped so "TODO" and "TODO:" group together.
// A comment is recorded once per distinct label it contains: a comment
// mentioning both TODO-security and TODO-coverage lands in two groups, while
// one repeating TODO ten times lands in that group once.
type Tracker struct {
	markers []string
	byLabel map[string][]Record
}

// NewTracker returns an empty Tracker. A nil or empty markers list falls
// back to DefaultMarkers.
func NewTracker(markers []string) *Tracker {
	if len(markers) == 0 {
		markers = DefaultMarkers
	}
	return &Tracker{
		markers: markers,
		byLabel: make(map[string][]Record),
	}
}

// Observe classifies one comment and appends a Record under every distinct
// label found in its text. Marker-free text is accepted and records nothing.
func (t *Tracker) Observe(text, file string, line int) {
	found := f.NewSet[string]()
	for _, word := range strings.Fields(text) {
		for _, marker := range t.markers {
			if strings.HasPrefix(word, marker) {
				found.Add(normalizeLabel(word))
				break
			}
		}
	}

	labels := found.Items()
	slices.Sort(labels)
	for _, label := range labels {
		t.byLabel[label] = append(t.byLabel[label], Record{
			File:     file,
			Location: fmt.Sprintf("line %d", line),
			Text:     text,
		})
	}
}

// Labels returns the recorded labels in lexicographic order.
func (t *Tracker) Labels() []string {
	return f.SortedKeys(t.byLabel)
}

// Records returns the comments recorded under label, in observation order.
func (t *Tracker) Records(label string) []Record {
	return t.byLabel[label]
}

// Index exposes the whole label index. The returned map is the Tracker's
// own state and must not be mutated by the caller.
func (t *Tracker) Index() map[string][]Record {
	return t.byLabel
}

// Total counts records across all labels. A comment filed under two labels
// counts twice, matching the per-label accounting.
func (t *Tracker) Total() int {
	total := 0
	for _, records := range t.byLabel {
		total += len(records)
	}
	return total
}

// normalizeLabel strips one trailing ":" or "-" from a marker word. People
// write "TODO" and "TODO:" interchangeably; a dangling "TODO-" folds into
// "TODO" the same way.
func normalizeLabel(word string) string {
	if strings.HasSuffix(word, ":") || strings.HasSuffix(word, "-") {
		return word[:len(word)-1]
	}
	return word
}
