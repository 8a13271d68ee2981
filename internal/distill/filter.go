// Package distill loads the notes of a resolved window and strips
// completed action items before summarization.
package distill

import (
	"regexp"
	"strings"
)

// completedItemRe matches a completed-checkbox line: optional leading
// whitespace, an optional quote-block marker, then "- [x]" or "- [X]".
var completedItemRe = regexp.MustCompile(`^[ \t]*(?:>[ \t]*)?- \[[xX]\]`)

// Filter removes every completed-checkbox line from text. Unchecked items,
// blank lines, and all other lines are kept verbatim. The filter is
// line-granular: a completed item spanning multiple lines only has its
// first line removed. Applying Filter twice yields the same result.
func Filter(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if completedItemRe.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
