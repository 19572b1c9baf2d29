package patterns

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewPackWatcherRequiresPath(t *testing.T) {
	if _, err := NewPackWatcher("", 0, nil); err == nil {
		t.Error("expected error for empty pack path")
	}
}

func TestPackWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pack.yaml")
	if err := os.WriteFile(path, []byte(samplePack), 0o644); err != nil {
		t.Fatalf("failed to write pack: %v", err)
	}

	w, err := NewPackWatcher(path, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewPackWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	swapped := make(chan *Library, 1)
	go func() {
		_ = w.Watch(ctx, func(lib *Library) {
			select {
			case swapped <- lib:
			default:
			}
		})
	}()
	defer w.Stop()

	// Give the watch loop time to register before writing.
	time.Sleep(50 * time.Millisecond)

	updated := samplePack + `  en:
    patterns:
      urgency:
        - '\b(posthaste)\b'
`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatalf("failed to update pack: %v", err)
	}

	select {
	case lib := <-swapped:
		builtinCount := len(Builtin().Patterns(LangEnglish)[CategoryUrgency])
		if got := len(lib.Patterns(LangEnglish)[CategoryUrgency]); got != builtinCount+1 {
			t.Errorf("expected reloaded library with %d en urgency patterns, got %d", builtinCount+1, got)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for pack reload")
	}
}

func TestPackWatcherKeepsLibraryOnBadPack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pack.yaml")
	if err := os.WriteFile(path, []byte(samplePack), 0o644); err != nil {
		t.Fatalf("failed to write pack: %v", err)
	}

	w, err := NewPackWatcher(path, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewPackWatcher failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	swapped := make(chan *Library, 1)
	go func() {
		_ = w.Watch(ctx, func(lib *Library) {
			select {
			case swapped <- lib:
			default:
			}
		})
	}()
	defer w.Stop()

	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(path, []byte("languages: [broken"), 0o644); err != nil {
		t.Fatalf("failed to update pack: %v", err)
	}

	select {
	case <-swapped:
		t.Error("onSwap must not fire for an unparseable pack")
	case <-time.After(300 * time.Millisecond):
		// expected: previous library stays in effect
	}
}
