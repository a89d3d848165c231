package report

import (
	"bytes"
	"testing"

	"todoscan/pkg/comments"
)

func TestWrite(t *testing.T) {
	tracker := comments.NewTracker(nil)
	tracker.Observe("TODO: fix this", "src/a.rs", 3)
	tracker.Observe("XXX nope", "src/b.rs", 10)

	out := &bytes.Buffer{}
	Write(out, tracker)

	expected := `comments with "TODO": 1
  found "TODO" in file src/a.rs line 3
    TODO: fix this
comments with "XXX": 1
  found "XXX" in file src/b.rs line 10
    XXX nope
SUMMARY:

comments with "TODO": 1
comments with "XXX": 1
total comments found: 2
`
	if out.String() != expected {
		t.Errorf("report mismatch:\ngot:\n%s\nexpected:\n%s", out.String(), expected)
	}
}

func TestWriteMultiLineComment(t *testing.T) {
	tracker := comments.NewTracker(nil)
	tracker.Observe("TODO first line\nsecond line\n", "a.rs", 1)

	out := &bytes.Buffer{}
	Write(out, tracker)

	expected := `comments with "TODO": 1
  found "TODO" in file a.rs line 1
    TODO first line
    second line
SUMMARY:

comments with "TODO": 1
total comments found: 1
`
	if out.String() != expected {
		t.Errorf("report mismatch:\ngot:\n%s\nexpected:\n%s", out.String(), expected)
	}
}

func TestWriteDoubleCountsMultiLabelComments(t *testing.T) {
	tracker := comments.NewTracker(nil)
	tracker.Observe("TODO-security and TODO-coverage", "a.rs", 1)

	out := &bytes.Buffer{}
	Write(out, tracker)

	expected := `comments with "TODO-coverage": 1
  found "TODO-coverage" in file a.rs line 1
    TODO-security and TODO-coverage
comments with "TODO-security": 1
  found "TODO-security" in file a.rs line 1
    TODO-security and TODO-coverage
SUMMARY:

comments with "TODO-coverage": 1
comments with "TODO-security": 1
total comments found: 2
`
	if out.String() != expected {
		t.Errorf("report mismatch:\ngot:\n%s\nexpected:\n%s", out.String(), expected)
	}
}

func TestWriteEmptyIndex(t *testing.T) {
	out := &bytes.Buffer{}
	Write(out, comments.NewTracker(nil))

	expected := "SUMMARY:\n\ntotal comments found: 0\n"
	if out.String() != expected {
		t.Errorf("report mismatch:\ngot:\n%s\nexpected:\n%s", out.String(), expected)
	}
}
