// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Dagaz tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/dagaz/internal/editor"
	"github.com/starford/dagaz/internal/index"
	"github.com/starford/dagaz/internal/storage"
	"github.com/starford/dagaz/internal/summarizer"
)

// Server wraps the MCP server with Dagaz tools.
type Server struct {
	mcp   *server.MCPServer
	store storage.Provider
	db    *index.DB
	svc   *summarizer.Service
}

// New creates a new MCP server with all Dagaz tools registered.
func New(store storage.Provider, db *index.DB, svc *summarizer.Service) *Server {
	s := &Server{store: store, db: db, svc: svc}

	s.mcp = server.NewMCPServer(
		"Dagaz",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("generate_summary",
		mcp.WithDescription("Generate a work summary from recent daily notes and insert it "+
			"into the named note as a callout block. The inserted block follows the format "+
			"described by the dagaz://summary-format resource."),
		mcp.WithString("note", mcp.Required(), mcp.Description("Relative path of the note to insert the summary into (e.g. 2025-06-02.md)")),
		mcp.WithString("days", mcp.Description("Optional lookback override: number of work days to summarize (1-8)")),
	), s.generateSummary)

	s.mcp.AddTool(mcp.NewTool("preview_window",
		mcp.WithDescription("Preview which daily notes the next work summary would cover, "+
			"with completed items already filtered out. No generation backend is called."),
		mcp.WithString("days", mcp.Description("Optional lookback override: number of work days (1-8)")),
	), s.previewWindow)

	s.mcp.AddTool(mcp.NewTool("search_notes",
		mcp.WithDescription("Full-text search through notes content and titles."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
	), s.searchNotes)

	s.mcp.AddTool(mcp.NewTool("read_note",
		mcp.WithDescription("Read the full content of a Markdown note."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the note (e.g. daily/2025-06-02.md)")),
	), s.readNote)

	s.mcp.AddTool(mcp.NewTool("list_notes",
		mcp.WithDescription("List all notes or notes in a specific folder."),
		mcp.WithString("folder", mcp.Description("Optional folder to list (empty for all)")),
	), s.listNotes)

	// Resource: summary callout format.
	s.mcp.AddResource(
		mcp.NewResource("dagaz://summary-format", "Work Summary Format",
			mcp.WithResourceDescription("Quote-block callout format of generated work summaries."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readSummaryFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// daysArg reads the optional "days" tool argument. Zero means no override.
func daysArg(req mcp.CallToolRequest) (int, error) {
	raw, err := req.RequireString("days")
	if err != nil {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("days must be a number: %q", raw)
	}
	return n, nil
}

func (s *Server) generateSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	note, err := req.RequireString("note")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	days, err := daysArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ed, err := editor.NewFileEditor(s.store, note, nil)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", note)), nil
	}
	if err := s.svc.Run(ctx, ed, note, days); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("summary inserted into %s:\n\n%s", note, ed.Content())), nil
}

func (s *Server) previewWindow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days, err := daysArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	records, err := s.svc.Window(ctx, days)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(records) == 0 {
		return mcp.NewToolResultText("no notes found in the lookback window"), nil
	}

	var b strings.Builder
	for _, rec := range records {
		fmt.Fprintf(&b, "## %s (%s)\n%s\n\n", rec.Day, rec.Path, rec.Distilled)
	}
	return mcp.NewToolResultText(strings.TrimSpace(b.String())), nil
}

func (s *Server) searchNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := s.db.Search(query, 20)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.store.Read(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	folder := ""
	if f, err := req.RequireString("folder"); err == nil {
		folder = f
	}

	metas, err := s.store.List(folder)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var paths []string
	for _, m := range metas {
		paths = append(paths, m.Path)
	}
	return mcp.NewToolResultText(strings.Join(paths, "\n")), nil
}

func (s *Server) readSummaryFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "dagaz://summary-format",
			MIMEType: "text/markdown",
			Text:     SummaryFormatContract,
		},
	}, nil
}
