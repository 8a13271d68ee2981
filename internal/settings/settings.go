// Package settings owns the mutable summary configuration: a validated
// snapshot per invocation, and a narrow store that persists every change.
package settings

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Summary is the summary-generation configuration. Business logic receives
// it as an immutable per-invocation snapshot; mutation goes through Store.
type Summary struct {
	// DaysToLookBack is the number of work-days to summarize (1–8).
	DaysToLookBack int `yaml:"days_to_look_back" json:"days_to_look_back"`
	// APIKey is the bearer credential. Empty blocks summary generation.
	APIKey string `yaml:"api_key" json:"-"`
	// APIURL is the full chat-completions endpoint URL.
	APIURL string `yaml:"api_url" json:"api_url"`
	// Model is the generation model identifier.
	Model string `yaml:"model" json:"model"`
	// NotePattern is the date-naming pattern daily notes follow.
	NotePattern string `yaml:"note_pattern" json:"note_pattern"`
	// CalloutType tags the inserted placeholder and summary blocks.
	CalloutType string `yaml:"callout_type" json:"callout_type"`
}

// Validate validates the summary configuration. The API key is allowed to
// be empty here; an empty key blocks generation at run time instead.
func (s Summary) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.DaysToLookBack, validation.Required, validation.Min(1), validation.Max(8)),
		validation.Field(&s.APIURL, validation.Required, is.URL),
		validation.Field(&s.Model, validation.Required),
		validation.Field(&s.NotePattern, validation.Required),
		validation.Field(&s.CalloutType, validation.Required),
	)
}

// Defaults returns the out-of-the-box summary configuration.
func Defaults() Summary {
	return Summary{
		DaysToLookBack: 2,
		APIURL:         "https://api.openai.com/v1/chat/completions",
		Model:          "gpt-4o-mini",
		NotePattern:    "YYYY-MM-DD",
		CalloutType:    "info",
	}
}
