package window

import (
	"testing"
	"time"
)

// monday is a fixed reference date: Monday 2025-06-02.
var monday = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

// fullArchive returns one note per day for the given number of days before now.
func fullArchive(now time.Time, days int) []string {
	var out []string
	for i := 1; i <= days; i++ {
		out = append(out, now.AddDate(0, 0, -i).Format("2006-01-02")+".md")
	}
	return out
}

func TestResolve_FullArchiveExactCount(t *testing.T) {
	handles := fullArchive(monday, 30)
	for lookback := 1; lookback <= 8; lookback++ {
		got := Resolve(monday, lookback, "YYYY-MM-DD", handles)
		if len(got) != lookback {
			t.Errorf("lookback %d: got %d days, want %d", lookback, len(got), lookback)
		}
	}
}

func TestResolve_ExcludesToday(t *testing.T) {
	handles := append(fullArchive(monday, 5), monday.Format("2006-01-02")+".md")
	got := Resolve(monday, 1, "YYYY-MM-DD", handles)
	if len(got) != 1 {
		t.Fatalf("got %d days", len(got))
	}
	if got[0].ID != "2025-06-01" {
		t.Errorf("day = %q, want 2025-06-01 (today excluded)", got[0].ID)
	}
}

func TestResolve_SkipsWeekend(t *testing.T) {
	// Only weekday notes exist: Friday 2025-05-30 and Thursday 2025-05-29.
	handles := []string{"2025-05-30.md", "2025-05-29.md"}
	got := Resolve(monday, 2, "YYYY-MM-DD", handles)
	if len(got) != 2 {
		t.Fatalf("got %d days, want 2", len(got))
	}
	if got[0].ID != "2025-05-30" || got[1].ID != "2025-05-29" {
		t.Errorf("days = %q, %q, want Friday then Thursday", got[0].ID, got[1].ID)
	}
}

func TestResolve_BudgetExhaustion(t *testing.T) {
	// One note far enough back that a 2-day lookback (budget 6) can't reach
	// a second day; resolver returns what it found without error.
	handles := []string{monday.AddDate(0, 0, -1).Format("2006-01-02") + ".md"}
	got := Resolve(monday, 2, "YYYY-MM-DD", handles)
	if len(got) != 1 {
		t.Errorf("got %d days, want 1", len(got))
	}
}

func TestResolve_NothingFound(t *testing.T) {
	got := Resolve(monday, 3, "YYYY-MM-DD", []string{"unrelated.md"})
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestResolve_MultipleFilesSameDay(t *testing.T) {
	// Two files match Sunday; the day counts once but carries both notes.
	handles := []string{
		"2025-06-01.md",
		"daily/2025-06-01 standup.md",
		"2025-05-31.md",
	}
	got := Resolve(monday, 2, "YYYY-MM-DD", handles)
	if len(got) != 2 {
		t.Fatalf("got %d days, want 2", len(got))
	}
	if len(got[0].Notes) != 2 {
		t.Errorf("first day notes = %v, want both matches", got[0].Notes)
	}
	if len(got[1].Notes) != 1 {
		t.Errorf("second day notes = %v", got[1].Notes)
	}
}

func TestResolve_SubstringMatch(t *testing.T) {
	handles := []string{"notes/2025-06-01 retro.md"}
	got := Resolve(monday, 1, "YYYY-MM-DD", handles)
	if len(got) != 1 || len(got[0].Notes) != 1 {
		t.Fatalf("got %v", got)
	}
}

func TestResolve_ZeroLookback(t *testing.T) {
	if got := Resolve(monday, 0, "YYYY-MM-DD", fullArchive(monday, 3)); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestLayout(t *testing.T) {
	cases := []struct {
		pattern string
		want    string
	}{
		{"YYYY-MM-DD", "2006-01-02"},
		{"DD.MM.YYYY", "02.01.2006"},
		{"YY-M-D", "06-1-2"},
		{"daily-YYYY-MM-DD", "daily-2006-01-02"},
	}
	for _, c := range cases {
		if got := Layout(c.pattern); got != c.want {
			t.Errorf("Layout(%q) = %q, want %q", c.pattern, got, c.want)
		}
	}
}

func TestFormatDay(t *testing.T) {
	got := FormatDay(monday, "YYYY-MM-DD")
	if got != "2025-06-02" {
		t.Errorf("FormatDay = %q", got)
	}
}
