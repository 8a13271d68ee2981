// Package callout renders the quoted blocks inserted into the target note:
// a placeholder while generation runs, the final summary, or a warning.
package callout

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Placeholder renders the temporary block shown while the summary is
// being generated.
func Placeholder(noteCount, lookbackDays int, kind string, now time.Time) string {
	return block(
		fmt.Sprintf("> [!%s] ⏳ Generating Work Summary", kind),
		"> "+now.Format(dateLayout),
		fmt.Sprintf("> Summarizing %d notes from the last %d work days...", noteCount, lookbackDays),
	)
}

// Success renders the final summary block. Every line of summary is
// individually prefixed with the quote marker.
func Success(summary string, lookbackDays int, kind string, now time.Time) string {
	lines := []string{
		fmt.Sprintf("> [!%s] Work Summary", kind),
		"> " + now.Format(dateLayout),
		fmt.Sprintf("> Generated from %d work days", lookbackDays),
		">",
	}
	for _, l := range strings.Split(summary, "\n") {
		lines = append(lines, "> "+l)
	}
	return block(lines...)
}

// Failure renders the warning block that replaces the placeholder when
// generation fails.
func Failure(now time.Time) string {
	return block(
		"> [!warning] Summary Generation Failed",
		"> "+now.Format(dateLayout),
		"> The summary could not be generated.",
		"> Check the summary settings and the logs for details.",
	)
}

// block joins quote lines and pads the result with a blank line on each
// side so the callout separates cleanly from surrounding note content.
func block(lines ...string) string {
	return "\n" + strings.Join(lines, "\n") + "\n\n"
}
