package distill

import (
	"context"
	"testing"

	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/storage"
)

func testStore(t *testing.T) storage.Provider {
	t.Helper()
	store, err := storage.NewFS(t.TempDir())
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return store
}

func TestLoad_OrderAndDistillation(t *testing.T) {
	store := testStore(t)
	_ = store.Write("2025-06-01.md", []byte("- [x] done\n- [ ] open"))
	_ = store.Write("2025-05-30.md", []byte("older note"))

	days := []models.WorkDay{
		{ID: "2025-05-30", Notes: []string{"2025-05-30.md"}},
		{ID: "2025-06-01", Notes: []string{"2025-06-01.md"}},
	}

	recs, err := Load(context.Background(), store, days)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	// Most recent day first regardless of input order.
	if recs[0].Day != "2025-06-01" || recs[1].Day != "2025-05-30" {
		t.Errorf("order = %q, %q", recs[0].Day, recs[1].Day)
	}
	if recs[0].Distilled != "- [ ] open" {
		t.Errorf("distilled = %q", recs[0].Distilled)
	}
	if recs[0].Raw != "- [x] done\n- [ ] open" {
		t.Errorf("raw = %q", recs[0].Raw)
	}
}

func TestLoad_MultipleNotesSameDaySortedByPath(t *testing.T) {
	store := testStore(t)
	_ = store.Write("b-2025-06-01.md", []byte("b"))
	_ = store.Write("a-2025-06-01.md", []byte("a"))

	days := []models.WorkDay{
		{ID: "2025-06-01", Notes: []string{"b-2025-06-01.md", "a-2025-06-01.md"}},
	}
	recs, err := Load(context.Background(), store, days)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(recs) != 2 || recs[0].Path != "a-2025-06-01.md" {
		t.Errorf("recs = %#v", recs)
	}
}

func TestLoad_MissingNoteFails(t *testing.T) {
	store := testStore(t)
	days := []models.WorkDay{{ID: "2025-06-01", Notes: []string{"gone.md"}}}
	if _, err := Load(context.Background(), store, days); err == nil {
		t.Error("expected error for missing note")
	}
}

func TestLoad_EmptyWindow(t *testing.T) {
	store := testStore(t)
	recs, err := Load(context.Background(), store, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("recs = %v, want empty", recs)
	}
}
