package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestRelevant(t *testing.T) {
	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{"md write", fsnotify.Event{Name: "how/rebase.md", Op: fsnotify.Write}, true},
		{"md create", fsnotify.Event{Name: "how/new.md", Op: fsnotify.Create}, true},
		{"md remove", fsnotify.Event{Name: "how/gone.md", Op: fsnotify.Remove}, true},
		{"md chmod only", fsnotify.Event{Name: "how/rebase.md", Op: fsnotify.Chmod}, false},
		{"editor swap file", fsnotify.Event{Name: "how/.rebase.md.swp", Op: fsnotify.Write}, false},
		{"non-markdown", fsnotify.Event{Name: "docs.yaml", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		if got := relevant(tt.ev); got != tt.want {
			t.Errorf("%s: relevant() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestWatcherBatchesWrites(t *testing.T) {
	dir := t.TempDir()

	w, err := New(50 * time.Millisecond)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	w.Start()

	// Two quick writes inside one debounce window.
	for _, name := range []string{"a.md", "b.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("# x\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case batch := <-w.Events:
		if len(batch) == 0 {
			t.Error("empty batch")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no batch received")
	}
}

func TestWatcherIgnoresNonMarkdown(t *testing.T) {
	dir := t.TempDir()

	w, err := New(50 * time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		t.Fatal(err)
	}
	w.Start()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case batch := <-w.Events:
		t.Errorf("unexpected batch for non-markdown write: %v", batch)
	case <-time.After(300 * time.Millisecond):
	}
}
