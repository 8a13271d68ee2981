// Package summarizer orchestrates the summary pipeline against a live
// editing surface: resolve the work-day window, distill the notes, call
// the generation service, and drive the placeholder → result-or-error
// mutation of one cursor-anchored span.
package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/callout"
	"github.com/starford/dagaz/internal/distill"
	"github.com/starford/dagaz/internal/editor"
	"github.com/starford/dagaz/internal/index"
	"github.com/starford/dagaz/internal/llm"
	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/prompt"
	"github.com/starford/dagaz/internal/settings"
	"github.com/starford/dagaz/internal/storage"
	"github.com/starford/dagaz/internal/window"
)

// Generator produces a summary for a built prompt.
type Generator interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// GeneratorFactory builds a Generator from a configuration snapshot,
// so each invocation talks to the endpoint configured at that moment.
type GeneratorFactory func(cfg settings.Summary) Generator

// Notifier delivers transient user-visible notices.
type Notifier interface {
	Notify(msg string)
}

// Events receives summary lifecycle phases (see the sse package).
type Events interface {
	PublishSummaryEvent(phase, note string)
}

// Service runs summary invocations. State is per-invocation; the service
// itself holds only collaborators.
type Service struct {
	store    storage.Provider
	db       index.NoteIndex
	settings *settings.Store
	logger   *slog.Logger

	newGen GeneratorFactory
	notify Notifier
	events Events
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithGeneratorFactory overrides how generators are built (used in tests).
func WithGeneratorFactory(f GeneratorFactory) Option {
	return func(s *Service) { s.newGen = f }
}

// WithNotifier sets the notice sink.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notify = n }
}

// WithEvents sets the lifecycle event sink.
func WithEvents(e Events) Option {
	return func(s *Service) { s.events = e }
}

// WithClock overrides the time source (used in tests).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a summarizer service.
func NewService(store storage.Provider, db index.NoteIndex, st *settings.Store, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store:    store,
		db:       db,
		settings: st,
		logger:   logger,
		newGen: func(cfg settings.Summary) Generator {
			return llm.NewClient(llm.Config{APIURL: cfg.APIURL, APIKey: cfg.APIKey, Model: cfg.Model})
		},
		notify: slogNotifier{logger},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// slogNotifier is the default notice sink: notices land in the log.
type slogNotifier struct{ logger *slog.Logger }

func (n slogNotifier) Notify(msg string) {
	n.logger.Info("notice", slog.String("message", msg))
}

// snapshot returns the per-invocation configuration, with days (when
// positive) overriding the configured lookback count.
func (s *Service) snapshot(days int) settings.Summary {
	cfg := s.settings.Snapshot()
	if days > 0 {
		cfg.DaysToLookBack = days
	}
	return cfg
}

// Window resolves and loads the lookback window without touching any
// editor. days ≤ 0 means the configured lookback count.
func (s *Service) Window(ctx context.Context, days int) ([]models.NoteRecord, error) {
	cfg := s.snapshot(days)
	return s.loadWindow(ctx, cfg)
}

func (s *Service) loadWindow(ctx context.Context, cfg settings.Summary) ([]models.NoteRecord, error) {
	handles, err := s.db.AllPaths()
	if err != nil {
		return nil, fmt.Errorf("summarizer: list handles: %w", err)
	}
	found := window.Resolve(s.now(), cfg.DaysToLookBack, cfg.NotePattern, handles)
	return distill.Load(ctx, s.store, found)
}

// Generate runs the pipeline up to the generation call and returns the raw
// summary text plus the records it was built from. No editor is involved.
func (s *Service) Generate(ctx context.Context, days int) (string, []models.NoteRecord, error) {
	cfg := s.snapshot(days)
	if strings.TrimSpace(cfg.APIKey) == "" {
		return "", nil, apperr.ErrMissingCredential
	}
	records, err := s.loadWindow(ctx, cfg)
	if err != nil {
		return "", nil, err
	}
	if len(records) == 0 {
		return "", nil, apperr.ErrNoNotes
	}
	text, err := s.newGen(cfg).Summarize(ctx, prompt.Build(records, cfg.DaysToLookBack))
	if err != nil {
		return "", nil, err
	}
	return text, records, nil
}

// Run executes one full invocation against ed: insert the placeholder at
// the cursor, generate, then replace the exact recorded span with the
// success or failure block. note names the target for lifecycle events.
//
// The state machine is Idle → PlaceholderInserted → Resolved. Failures
// before the placeholder leave the document untouched; failures after it
// replace the placeholder with the warning block. The final replacement
// happens at most once.
func (s *Service) Run(ctx context.Context, ed editor.Editor, note string, days int) error {
	cfg := s.snapshot(days)

	if strings.TrimSpace(cfg.APIKey) == "" {
		s.notify.Notify("Set the summary API key before generating a work summary.")
		return apperr.ErrMissingCredential
	}

	records, err := s.loadWindow(ctx, cfg)
	if err != nil {
		s.logger.Error("window load failed", slog.String("error", err.Error()))
		s.notify.Notify("Work summary failed: could not read the note archive.")
		return err
	}
	if len(records) == 0 {
		s.notify.Notify(fmt.Sprintf("No notes found for the last %d work days.", cfg.DaysToLookBack))
		return apperr.ErrNoNotes
	}

	s.publish(sseStarted, note)

	placeholder := callout.Placeholder(len(records), cfg.DaysToLookBack, cfg.CalloutType, s.now())
	start := ed.Cursor()
	span := editor.Span{From: start, To: start}

	if err := ed.ReplaceRange(placeholder, start, start); err != nil {
		// The placeholder never landed, so there is nothing to clean up.
		s.logger.Error("placeholder insert failed", slog.String("error", err.Error()))
		s.notify.Notify("Work summary failed.")
		s.publish(sseFailed, note)
		return err
	}
	span.To = editor.EndOf(start, placeholder)

	text, genErr := s.newGen(cfg).Summarize(ctx, prompt.Build(records, cfg.DaysToLookBack))
	if genErr != nil {
		s.resolveFailure(ed, span, note, genErr)
		return genErr
	}

	final := callout.Success(text, cfg.DaysToLookBack, cfg.CalloutType, s.now())
	if err := ed.ReplaceRange(final, span.From, span.To); err != nil {
		s.logger.Error("summary replace failed", slog.String("error", err.Error()))
		s.notify.Notify("Work summary failed.")
		s.publish(sseFailed, note)
		return err
	}

	s.publish(sseCompleted, note)
	return nil
}

// resolveFailure swaps the placeholder for the warning block (when one was
// inserted) and emits exactly one user-visible failure notice. The
// underlying error is logged, not shown.
func (s *Service) resolveFailure(ed editor.Editor, span editor.Span, note string, cause error) {
	s.logger.Error("summary generation failed", slog.String("error", cause.Error()))

	if !span.Empty() {
		if err := ed.ReplaceRange(callout.Failure(s.now()), span.From, span.To); err != nil {
			s.logger.Error("failure block replace failed", slog.String("error", err.Error()))
		}
	}
	s.notify.Notify("Work summary failed. Check the summary settings and logs.")
	s.publish(sseFailed, note)
}

// Lifecycle phase names, mirrored from the sse package to keep this
// package free of a broker dependency.
const (
	sseStarted   = "started"
	sseCompleted = "completed"
	sseFailed    = "failed"
)

func (s *Service) publish(phase, note string) {
	if s.events != nil {
		s.events.PublishSummaryEvent(phase, note)
	}
}
