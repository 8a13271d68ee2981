// Package models defines the domain types for Dagaz.
package models

import "time"

// NoteMetadata is a lightweight representation returned by vault listings.
type NoteMetadata struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WorkDay is a calendar day for which at least one note matched the
// configured naming pattern. Notes holds every matching vault path.
// WorkDays live only for the duration of one summary request.
type WorkDay struct {
	ID    string   `json:"id"`
	Notes []string `json:"notes"`
}

// NoteRecord is one loaded and distilled daily note. Distilled contains
// every line of Raw except completed-checkbox items. Immutable once built.
type NoteRecord struct {
	Path      string `json:"path"`
	Day       string `json:"day"`
	Raw       string `json:"-"`
	Distilled string `json:"distilled"`
}
