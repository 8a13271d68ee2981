package api

import "time"

// NoteListItem is a lightweight item in a list response.
type NoteListItem struct {
	Path      string    `json:"path"`
	Title     string    `json:"title"`
	Checksum  string    `json:"checksum"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteListResponse wraps paginated note listings.
type NoteListResponse struct {
	Notes []NoteListItem `json:"notes"`
	Total int            `json:"total"`
}

// NoteDetail is the full note response type.
type NoteDetail struct {
	Path        string         `json:"path"`
	Title       string         `json:"title"`
	Checksum    string         `json:"checksum"`
	Content     string         `json:"content"`
	Frontmatter map[string]any `json:"frontmatter,omitempty"`
}

// SearchResult is a single search hit in the API response.
type SearchResult struct {
	Path    string `json:"path"`
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// WindowNote is one distilled daily note in a window preview.
type WindowNote struct {
	Path      string `json:"path"`
	Day       string `json:"day"`
	Distilled string `json:"distilled"`
}

// WindowResponse wraps a window preview.
type WindowResponse struct {
	Notes []WindowNote `json:"notes"`
	Days  int          `json:"days"`
}

// SummaryRequest asks for a summary to be generated and inserted into note.
// Line and Ch position the insertion cursor; when omitted the summary is
// appended at the end of the note. Days overrides the configured lookback
// for this invocation only when positive.
type SummaryRequest struct {
	Note string `json:"note"`
	Line *int   `json:"line,omitempty"`
	Ch   *int   `json:"ch,omitempty"`
	Days int    `json:"days,omitempty"`
}

// SummaryResponse returns the note content after a successful insertion.
type SummaryResponse struct {
	Note    string `json:"note"`
	Content string `json:"content"`
}

// SettingsResponse is the summary configuration with the API key masked
// down to a presence flag.
type SettingsResponse struct {
	DaysToLookBack int    `json:"days_to_look_back"`
	APIKeySet      bool   `json:"api_key_set"`
	APIURL         string `json:"api_url"`
	Model          string `json:"model"`
	NotePattern    string `json:"note_pattern"`
	CalloutType    string `json:"callout_type"`
}

// SettingsUpdateRequest carries a partial settings update. Only the fields
// present in the body change; the API key is settable but never echoed back.
type SettingsUpdateRequest struct {
	DaysToLookBack *int    `json:"days_to_look_back,omitempty"`
	APIKey         *string `json:"api_key,omitempty"`
	APIURL         *string `json:"api_url,omitempty"`
	Model          *string `json:"model,omitempty"`
	NotePattern    *string `json:"note_pattern,omitempty"`
	CalloutType    *string `json:"callout_type,omitempty"`
}
