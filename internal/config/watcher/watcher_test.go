package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
}

func TestWatcherDetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blueprint.toml")
	writeTestFile(t, path, "title = \"a\"\n")

	w, err := New(path, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer func() { _ = w.Close() }()

	writeTestFile(t, path, "title = \"b\"\n")

	select {
	case ev := <-w.Events():
		if filepath.Base(ev.Path) != "blueprint.toml" {
			t.Errorf("event path = %q", ev.Path)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event after write")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blueprint.toml")
	writeTestFile(t, path, "title = \"a\"\n")

	w, err := New(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer func() { _ = w.Close() }()

	writeTestFile(t, filepath.Join(dir, "other.toml"), "x = 1\n")

	select {
	case ev := <-w.Events():
		t.Errorf("unexpected event for sibling file: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blueprint.toml")
	writeTestFile(t, path, "title = \"a\"\n")

	w, err := New(path, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer func() { _ = w.Close() }()

	for i := 0; i < 5; i++ {
		writeTestFile(t, path, "title = \"burst\"\n")
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no event after burst")
	}

	// The burst collapses into one event.
	select {
	case ev := <-w.Events():
		t.Errorf("burst produced a second event: %+v", ev)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherMissingPath(t *testing.T) {
	_, err := New("/nonexistent/blueprint.toml", 0)
	if !errors.Is(err, ErrPathNotExist) {
		t.Fatalf("New() error = %v, want ErrPathNotExist", err)
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blueprint.toml")
	writeTestFile(t, path, "title = \"a\"\n")

	w, err := New(path, 0)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close() error: %v", err)
	}
	if err := w.Close(); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("second Close() error = %v, want ErrWatcherClosed", err)
	}
}
