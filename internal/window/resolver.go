// Package window resolves a lookback count into the set of recent work-days
// that actually have a daily note, tolerating gaps such as weekends.
package window

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/starford/dagaz/internal/models"
)

// gapBudgetFactor bounds the backward search: up to lookback×3 calendar days
// are probed, which tolerates a 2:1 ratio of gap-days to work-days.
const gapBudgetFactor = 3

// Resolve walks backward one calendar day at a time starting the day before
// now, formats each offset with the date-naming pattern, and collects every
// handle whose .md basename equals or contains the formatted identifier.
// A day with at least one match counts once toward the found counter no
// matter how many files matched, so the returned window can hold more notes
// than lookbackDays. The walk stops after lookbackDays found days or when
// the search budget runs out; finding fewer days is not an error.
//
// Matching is case-sensitive substring-or-equality. A day identifier that
// happens to be a substring of an unrelated basename will match too; this
// looseness is part of the contract, not a bug.
func Resolve(now time.Time, lookbackDays int, pattern string, handles []string) []models.WorkDay {
	if lookbackDays <= 0 {
		return nil
	}

	layout := Layout(pattern)
	budget := lookbackDays * gapBudgetFactor

	var out []models.WorkDay
	found := 0
	for offset := 1; offset <= budget && found < lookbackDays; offset++ {
		id := now.AddDate(0, 0, -offset).Format(layout)

		var matches []string
		for _, h := range handles {
			base := strings.TrimSuffix(filepath.Base(h), ".md")
			if base == id || strings.Contains(base, id) {
				matches = append(matches, h)
			}
		}
		if len(matches) == 0 {
			continue
		}
		found++
		out = append(out, models.WorkDay{ID: id, Notes: matches})
	}
	return out
}
