package editor

import (
	"errors"
	"fmt"
	"os"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/storage"
)

// FileEditor is an Editor over a single vault note. Every mutation is
// flushed straight back to the vault, so the placeholder is visible on
// disk while generation runs.
type FileEditor struct {
	store storage.Provider
	path  string
	buf   *Buffer
}

// NewFileEditor opens the note at path. If at is nil the cursor sits at
// the end of the note.
func NewFileEditor(store storage.Provider, path string, at *Position) (*FileEditor, error) {
	data, err := store.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("editor: %s: %w", path, apperr.ErrNotFound)
		}
		return nil, err
	}
	content := string(data)

	cursor := EndOfContent(content)
	if at != nil {
		cursor = *at
	}
	return &FileEditor{
		store: store,
		path:  path,
		buf:   NewBuffer(content, cursor),
	}, nil
}

// Cursor returns the cursor position recorded at open time.
func (e *FileEditor) Cursor() Position {
	return e.buf.Cursor()
}

// ReplaceRange applies the edit to the buffer and writes the note back.
func (e *FileEditor) ReplaceRange(text string, from, to Position) error {
	if err := e.buf.ReplaceRange(text, from, to); err != nil {
		return err
	}
	return e.store.Write(e.path, []byte(e.buf.String()))
}

// Content returns the current buffer content.
func (e *FileEditor) Content() string {
	return e.buf.String()
}

// Path returns the vault-relative note path being edited.
func (e *FileEditor) Path() string {
	return e.path
}
