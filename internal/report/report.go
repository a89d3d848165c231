package report

import (
	"fmt"
	"io"
	"strings"

	"todoscan/pkg/comments"
	f "todoscan/pkg/functional"
)

// Write renders the grouped comment listing followed by a summary block.
// Labels appear in lexicographic order; records within a label keep the
// order in which files were scanned. The summary total counts a comment once
// per label it matched.
func Write(w io.Writer, tracker *comments.Tracker) {
	labels := tracker.Labels()

	for _, label := range labels {
		records := tracker.Records(label)
		fmt.Fprintf(w, "comments with %q: %d\n", label, len(records))
		for _, r := range records {
			fmt.Fprintf(w, "  found %q in file %s %s\n", label, r.File, r.Location)
			fmt.Fprint(w, indent(r.Text))
		}
	}

	fmt.Fprintf(w, "SUMMARY:\n\n")
	for _, label := range labels {
		fmt.Fprintf(w, "comments with %q: %d\n", label, len(tracker.Records(label)))
	}
	fmt.Fprintf(w, "total comments found: %d\n", tracker.Total())
}

func indent(text string) string {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	return strings.Join(f.Map(lines, func(line string) string {
		return "    " + line + "\n"
	}), "")
}
