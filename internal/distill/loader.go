package distill

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/starford/dagaz/internal/models"
	"github.com/starford/dagaz/internal/storage"
)

// maxConcurrentReads caps parallel vault reads during a load.
const maxConcurrentReads = 8

// Load reads and distills every note of every work-day in the window.
// Reads run concurrently; the result is ordered by day identifier
// descending (most recent first), then by path for stable output.
// Source notes are never mutated.
func Load(ctx context.Context, store storage.Provider, days []models.WorkDay) ([]models.NoteRecord, error) {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)

	var mu sync.Mutex
	var out []models.NoteRecord

	for _, day := range days {
		for _, path := range day.Notes {
			dayID, path := day.ID, path
			g.Go(func() error {
				data, err := store.Read(path)
				if err != nil {
					return fmt.Errorf("distill: load %s: %w", path, err)
				}
				raw := string(data)
				rec := models.NoteRecord{
					Path:      path,
					Day:       dayID,
					Raw:       raw,
					Distilled: Filter(raw),
				}
				mu.Lock()
				out = append(out, rec)
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day > out[j].Day
		}
		return out[i].Path < out[j].Path
	})
	return out, nil
}
