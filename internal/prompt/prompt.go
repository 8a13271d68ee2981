// Package prompt assembles the request sent to the generation service.
package prompt

import (
	"fmt"
	"strings"

	"github.com/starford/dagaz/internal/models"
)

// SystemInstruction is the fixed system turn for every summary request.
const SystemInstruction = "You are a concise productivity assistant. " +
	"Ignore completed items. Use checkboxes for open tasks. " +
	"Be specific but concise."

const outputTemplate = `Answer in exactly this format:

**Open items**
- [ ] item

**Last focus**
What the most recent note was centered on.

**Quick suggestion**
One concrete next step.
`

// Build renders the distilled notes into a single prompt string. The result
// is deterministic: identical records and lookback count always produce
// byte-identical output. Notes appear in input order, so the generation
// service sees the most recent day first.
func Build(records []models.NoteRecord, lookbackDays int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Here are my daily work notes from the last %d work days, most recent first.\n", lookbackDays)
	b.WriteString("Summarize my open work. Ignore checked items (- [x]); they are already done.\n\n")
	b.WriteString(outputTemplate)
	b.WriteString("\n")

	for _, r := range records {
		fmt.Fprintf(&b, "## %s\n", r.Day)
		b.WriteString(r.Distilled)
		if !strings.HasSuffix(r.Distilled, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Stay concise. Use checkboxes for open items.")
	return b.String()
}
