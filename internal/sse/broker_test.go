package sse

import (
	"strings"
	"testing"
	"time"
)

func recv(t *testing.T, ch chan []byte) string {
	t.Helper()
	select {
	case msg := <-ch:
		return string(msg)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return ""
	}
}

func TestBroker_NoteEvent(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	ch := b.Subscribe()
	b.PublishNoteEvent("updated", "2025-06-02.md")

	msg := recv(t, ch)
	if !strings.Contains(msg, "event: note.updated") {
		t.Errorf("msg = %q", msg)
	}
	if !strings.Contains(msg, `"path":"2025-06-02.md"`) {
		t.Errorf("msg = %q", msg)
	}
}

func TestBroker_SummaryLifecycle(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	ch := b.Subscribe()
	for _, phase := range []string{PhaseStarted, PhaseCompleted, PhaseFailed} {
		b.PublishSummaryEvent(phase, "today.md")
		msg := recv(t, ch)
		if !strings.Contains(msg, "event: summary."+phase) {
			t.Errorf("phase %s: msg = %q", phase, msg)
		}
	}
}

func TestBroker_UnknownKindDropped(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	ch := b.Subscribe()
	b.PublishNoteEvent("exploded", "x.md")
	b.PublishNoteEvent("created", "y.md")

	msg := recv(t, ch)
	if !strings.Contains(msg, "note.created") {
		t.Errorf("unknown kind should be dropped, got %q", msg)
	}
}

func TestBroker_SubscribeUnsubscribe(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	ch := b.Subscribe()
	if n := b.ClientCount(); n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
	b.Unsubscribe(ch)
	if n := b.ClientCount(); n != 0 {
		t.Errorf("count = %d, want 0", n)
	}
}

func TestBroker_PublishAfterClose(t *testing.T) {
	b := NewBroker()
	b.Close()
	// Must not panic or block.
	b.PublishSummaryEvent(PhaseStarted, "x.md")
	b.PublishNoteEvent("created", "y.md")
	if n := b.ClientCount(); n != 0 {
		t.Errorf("count = %d", n)
	}
}
