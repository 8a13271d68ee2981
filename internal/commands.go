package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/starford/dagaz/internal/editor"
	"github.com/starford/dagaz/internal/index"
	"github.com/starford/dagaz/internal/mcpserver"
	"github.com/starford/dagaz/internal/settings"
	"github.com/starford/dagaz/internal/storage"
	"github.com/starford/dagaz/internal/summarizer"
)

// core holds the wired components shared by the one-shot commands.
type core struct {
	store storage.Provider
	db    *index.DB
	svc   *summarizer.Service
}

// buildCore wires storage, index, settings, and the summarizer for commands
// that run outside the HTTP server. Logs go to stderr so that stdout stays
// free for command output (and for the MCP stdio transport).
func buildCore(cfg *Config) (*core, func(), error) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	if err := os.MkdirAll(cfg.Vault.Path, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create vault dir: %w", err)
	}
	store, err := storage.NewFS(cfg.Vault.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("init storage: %w", err)
	}

	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("init index: %w", err)
	}
	if err := index.Sync(db, store, logger); err != nil {
		logger.Warn("initial sync failed", slog.String("error", err.Error()))
	}

	settingsStore, err := settings.NewStore(cfg.Settings.Path, cfg.Summary)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("init settings: %w", err)
	}

	svc := summarizer.NewService(store, db, settingsStore, logger)

	cleanup := func() { db.Close() }
	return &core{store: store, db: db, svc: svc}, cleanup, nil
}

// RunSummarize generates a work summary and inserts it at the end of note.
// days overrides the configured lookback when positive.
func RunSummarize(ctx context.Context, cfg *Config, note string, days int) error {
	c, cleanup, err := buildCore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ed, err := editor.NewFileEditor(c.store, note, nil)
	if err != nil {
		return err
	}
	if err := c.svc.Run(ctx, ed, note, days); err != nil {
		return err
	}

	fmt.Printf("summary inserted into %s\n", note)
	return nil
}

// RunMCP serves the MCP tools over stdio until the client disconnects.
func RunMCP(_ context.Context, cfg *Config) error {
	c, cleanup, err := buildCore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return mcpserver.New(c.store, c.db, c.svc).ServeStdio()
}
