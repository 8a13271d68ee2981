package mcpserver

// SummaryFormatContract describes the quote-block format that generated
// work summaries follow inside daily notes.
const SummaryFormatContract = `# Dagaz Work Summary Format

Generated work summaries are inserted into notes as Markdown quote-block
callouts. Consumers reading or post-processing notes should expect this
structure.

## While generating

` + "```" + `markdown
> [!info] ⏳ Generating Work Summary
> 2025-06-02
> Summarizing 3 notes from the last 2 work days...
` + "```" + `

The placeholder is temporary: it is replaced in place once generation
resolves. The callout kind (` + "`" + `info` + "`" + ` above) follows the configured
` + "`" + `callout_type` + "`" + ` setting.

## On success

` + "```" + `markdown
> [!info] Work Summary
> 2025-06-02
> Generated from 2 work days
>
> **Open items**
> - [ ] task that is still open
>
> **Last focus**
> short description of the most recent work
>
> **Quick suggestion**
> one concrete next step
` + "```" + `

Every line of the generated text is prefixed with ` + "`" + `> ` + "`" + ` so the whole
summary stays inside one quote block.

## On failure

` + "```" + `markdown
> [!warning] Summary Generation Failed
> 2025-06-02
> The summary could not be generated.
> Check the summary settings and the logs for details.
` + "```" + `

The failure block always uses the ` + "`" + `warning` + "`" + ` kind regardless of the
configured callout type.

## Rules

1. Summaries only cover **completed-item-free** content: lines matching
   checked checkboxes (` + "`" + `- [x]` + "`" + ` / ` + "`" + `- [X]` + "`" + `, optionally inside quotes)
   are removed before the window is summarized.
2. The lookback window counts **calendar days that have at least one
   matching daily note**, scanning back day by day and skipping gaps.
3. Dates are ISO-8601 (` + "`" + `YYYY-MM-DD` + "`" + `).
4. Encoding is UTF-8.
`
