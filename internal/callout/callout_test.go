package callout

import (
	"strings"
	"testing"
	"time"
)

var testDay = time.Date(2025, 6, 2, 14, 30, 0, 0, time.UTC)

func TestPlaceholder(t *testing.T) {
	got := Placeholder(3, 2, "info", testDay)

	if !strings.HasPrefix(got, "\n") || !strings.HasSuffix(got, "\n\n") {
		t.Error("block should begin and end with a blank line")
	}
	if !strings.Contains(got, "> [!info] ⏳ Generating Work Summary") {
		t.Errorf("missing tagged title:\n%q", got)
	}
	if !strings.Contains(got, "> 2025-06-02") {
		t.Error("missing date line")
	}
	if !strings.Contains(got, "Summarizing 3 notes from the last 2 work days") {
		t.Error("missing count line")
	}
}

func TestSuccess(t *testing.T) {
	got := Success("**Open items**\n- [ ] ship it", 2, "tip", testDay)

	if !strings.Contains(got, "> [!tip] Work Summary") {
		t.Errorf("missing title:\n%q", got)
	}
	if !strings.Contains(got, "> Generated from 2 work days") {
		t.Error("missing provenance line")
	}
	if !strings.Contains(got, "> **Open items**") || !strings.Contains(got, "> - [ ] ship it") {
		t.Error("summary lines should each carry the quote marker")
	}
	for _, line := range strings.Split(strings.Trim(got, "\n"), "\n") {
		if !strings.HasPrefix(line, ">") {
			t.Errorf("non-quoted line inside block: %q", line)
		}
	}
}

func TestFailure(t *testing.T) {
	got := Failure(testDay)

	if !strings.Contains(got, "> [!warning] Summary Generation Failed") {
		t.Errorf("missing warning title:\n%q", got)
	}
	if !strings.Contains(got, "> 2025-06-02") {
		t.Error("missing date line")
	}
	if !strings.HasPrefix(got, "\n") || !strings.HasSuffix(got, "\n\n") {
		t.Error("block should begin and end with a blank line")
	}
}
