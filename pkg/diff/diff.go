// Package diff renders line-oriented unified diffs for drift reports.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated, exceeds 2,000 lines) ..."
)

// Unified compares before and after line by line and returns a unified diff
// with the given labels. Identical content yields an empty string.
func Unified(before, after []byte, beforeLabel, afterLabel string) string {
	if string(before) == string(after) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(before), countLines(after))

	written := 3
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			if written >= maxDiffLines {
				buf.WriteString(truncateMessage)
				buf.WriteByte('\n')
				return buf.String()
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteByte('\n')
			written++
		}
	}
	return buf.String()
}

// Changed counts the inserted and deleted lines between before and after.
func Changed(before, after []byte) (added, removed int) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	for _, d := range dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += len(splitLines(d.Text))
		case diffmatchpatch.DiffDelete:
			removed += len(splitLines(d.Text))
		}
	}
	return added, removed
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(data []byte) int {
	return len(splitLines(string(data)))
}
