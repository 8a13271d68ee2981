package storage

import (
	"testing"
)

func tempVault(t *testing.T) *FS {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return fs
}

func TestWriteAndRead(t *testing.T) {
	s := tempVault(t)
	content := []byte("# 2025-06-02\n- [ ] open task\n")
	if err := s.Write("2025-06-02.md", content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read("2025-06-02.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content mismatch: got %q", got)
	}
}

func TestWriteCreatesSubdirs(t *testing.T) {
	s := tempVault(t)
	if err := s.Write("daily/2025/06.md", []byte("deep")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read("daily/2025/06.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "deep" {
		t.Errorf("content = %q", got)
	}
}

func TestList(t *testing.T) {
	s := tempVault(t)
	_ = s.Write("a.md", []byte("a"))
	_ = s.Write("daily/b.md", []byte("b"))
	_ = s.Write("readme.txt", []byte("not md"))

	items, err := s.List("")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("len = %d, want 2", len(items))
	}
}

func TestWriteReplacesExisting(t *testing.T) {
	s := tempVault(t)
	_ = s.Write("note.md", []byte("v1"))
	if err := s.Write("note.md", []byte("v2")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, _ := s.Read("note.md")
	if string(got) != "v2" {
		t.Errorf("content = %q, want v2", got)
	}
}

func TestTraversalBlocked(t *testing.T) {
	s := tempVault(t)

	cases := []string{
		"../../etc/passwd",
		"../outside.md",
		"/etc/shadow",
	}
	for _, p := range cases {
		if _, err := s.Read(p); err == nil {
			t.Errorf("Read(%q) should fail", p)
		}
		if err := s.Write(p, []byte("x")); err == nil {
			t.Errorf("Write(%q) should fail", p)
		}
	}
}
