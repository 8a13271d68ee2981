package mcpserver

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/dagaz/internal/index"
	"github.com/starford/dagaz/internal/settings"
	"github.com/starford/dagaz/internal/storage"
	"github.com/starford/dagaz/internal/summarizer"
	"github.com/starford/dagaz/internal/testutil"
)

var monday = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

type stubGen struct{ text string }

func (g stubGen) Summarize(context.Context, string) (string, error) { return g.text, nil }

func testServer(t *testing.T) (*Server, storage.Provider, *index.DB) {
	t.Helper()

	_, store := testutil.TestVault(t)
	db := testutil.TestDB(t)

	defaults := settings.Defaults()
	defaults.APIKey = "sk-test"
	st, err := settings.NewStore("", defaults)
	if err != nil {
		t.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := summarizer.NewService(store, db, st, logger,
		summarizer.WithGeneratorFactory(func(settings.Summary) summarizer.Generator {
			return stubGen{text: "- [ ] open thing"}
		}),
		summarizer.WithClock(func() time.Time { return monday }),
	)

	srv := New(store, db, svc)
	return srv, store, db
}

func seedDay(t *testing.T, store storage.Provider, db *index.DB, day, content string) {
	t.Helper()
	path := day + ".md"
	if err := store.Write(path, []byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := db.UpsertNote(index.NoteRow{Path: path, Checksum: "seed", UpdatedAt: time.Now()}, content); err != nil {
		t.Fatal(err)
	}
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go doesn't expose a direct "call tool" test helper, so we test
	// through the tool handler functions directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "generate_summary":
		result, err = srv.generateSummary(ctx, req)
	case "preview_window":
		result, err = srv.previewWindow(ctx, req)
	case "search_notes":
		result, err = srv.searchNotes(ctx, req)
	case "read_note":
		result, err = srv.readNote(ctx, req)
	case "list_notes":
		result, err = srv.listNotes(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestGenerateSummary(t *testing.T) {
	srv, store, db := testServer(t)
	seedDay(t, store, db, "2025-06-01", "- [x] shipped\n- [ ] open thing")
	seedDay(t, store, db, "2025-05-31", "- [ ] older thing")
	_ = store.Write("today.md", []byte("# Today\n"))

	r := callTool(t, srv, "generate_summary", map[string]interface{}{"note": "today.md"})
	if r.IsError {
		t.Fatalf("generate error: %s", resultText(r))
	}
	text := resultText(r)
	if !strings.Contains(text, "> [!info] Work Summary") {
		t.Errorf("summary block missing:\n%s", text)
	}

	data, err := store.Read("today.md")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "> - [ ] open thing") {
		t.Errorf("vault note missing summary:\n%s", data)
	}
}

func TestGenerateSummary_MissingNote(t *testing.T) {
	srv, _, _ := testServer(t)
	r := callTool(t, srv, "generate_summary", map[string]interface{}{"note": "ghost.md"})
	if !r.IsError {
		t.Error("expected error for missing target note")
	}
}

func TestGenerateSummary_BadDays(t *testing.T) {
	srv, store, db := testServer(t)
	seedDay(t, store, db, "2025-06-01", "- [ ] x")
	_ = store.Write("today.md", []byte(""))

	r := callTool(t, srv, "generate_summary", map[string]interface{}{"note": "today.md", "days": "lots"})
	if !r.IsError {
		t.Error("expected error for non-numeric days")
	}
}

func TestPreviewWindow(t *testing.T) {
	srv, store, db := testServer(t)
	seedDay(t, store, db, "2025-06-01", "- [x] shipped\n- [ ] open thing")

	r := callTool(t, srv, "preview_window", map[string]interface{}{"days": "1"})
	if r.IsError {
		t.Fatalf("preview error: %s", resultText(r))
	}
	text := resultText(r)
	if !strings.Contains(text, "## 2025-06-01") {
		t.Errorf("day heading missing:\n%s", text)
	}
	if strings.Contains(text, "shipped") {
		t.Errorf("completed item should be filtered:\n%s", text)
	}
}

func TestPreviewWindow_Empty(t *testing.T) {
	srv, _, _ := testServer(t)
	r := callTool(t, srv, "preview_window", map[string]interface{}{})
	if r.IsError {
		t.Fatalf("preview error: %s", resultText(r))
	}
	if !strings.Contains(resultText(r), "no notes found") {
		t.Errorf("empty window message missing: %q", resultText(r))
	}
}

func TestReadNote(t *testing.T) {
	srv, store, _ := testServer(t)
	_ = store.Write("note.md", []byte("# Note\nBody"))

	r := callTool(t, srv, "read_note", map[string]interface{}{"path": "note.md"})
	if resultText(r) != "# Note\nBody" {
		t.Errorf("read result = %q", resultText(r))
	}
}

func TestReadNoteMissing(t *testing.T) {
	srv, _, _ := testServer(t)
	r := callTool(t, srv, "read_note", map[string]interface{}{"path": "nope.md"})
	if !r.IsError {
		t.Error("expected error for missing note")
	}
}

func TestListNotes(t *testing.T) {
	srv, store, _ := testServer(t)
	_ = store.Write("a.md", []byte("a"))
	_ = store.Write("b.md", []byte("b"))

	r := callTool(t, srv, "list_notes", map[string]interface{}{})
	text := resultText(r)
	if !strings.Contains(text, "a.md") || !strings.Contains(text, "b.md") {
		t.Errorf("list = %q", text)
	}
}

func TestSearchNotes(t *testing.T) {
	srv, store, db := testServer(t)
	seedDay(t, store, db, "2025-06-01", "uniquetoken appears here")

	r := callTool(t, srv, "search_notes", map[string]interface{}{"query": "uniquetoken"})
	if r.IsError {
		t.Fatalf("search error: %s", resultText(r))
	}
	if !strings.Contains(resultText(r), "2025-06-01.md") {
		t.Errorf("search result = %q", resultText(r))
	}
}
