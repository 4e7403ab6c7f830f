// file: internal/watcher/watcher_test.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7890-abcd-ef1234567890

package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var testExtensions = map[string]bool{
	"mp3": true, "flac": true, "ogg": true, "m4a": true, "wav": true,
}

func TestTracks(t *testing.T) {
	w := New(testExtensions, nil, time.Second)
	tests := []struct {
		name string
		want bool
	}{
		{"song.mp3", true},
		{"song.flac", true},
		{"song.MP3", true},
		{"song.txt", false},
		{"cover.jpg", false},
		{"song", false},
		{".mp3", true},
	}
	for _, tt := range tests {
		if got := w.tracks(tt.name); got != tt.want {
			t.Errorf("tracks(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDebounceSingleEvent(t *testing.T) {
	dir := t.TempDir()

	var calls atomic.Int32
	w := New(testExtensions, func(paths []string) {
		calls.Add(1)
	}, 100*time.Millisecond)

	if err := w.Start(dir); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	f := filepath.Join(dir, "test.mp3")
	if err := os.WriteFile(f, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}

	// Wait for debounce + buffer.
	time.Sleep(300 * time.Millisecond)

	if c := calls.Load(); c != 1 {
		t.Errorf("expected 1 callback, got %d", c)
	}
}

func TestDebounceBatchesEvents(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var calls int
	var got []string
	w := New(testExtensions, func(paths []string) {
		mu.Lock()
		calls++
		got = paths
		mu.Unlock()
	}, 200*time.Millisecond)

	if err := w.Start(dir); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	// Rapid-fire create multiple files within the debounce window.
	for i := 0; i < 5; i++ {
		f := filepath.Join(dir, "test"+string(rune('a'+i))+".flac")
		_ = os.WriteFile(f, []byte("data"), 0644)
		time.Sleep(30 * time.Millisecond)
	}

	// Wait for debounce to fire.
	time.Sleep(400 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if calls != 1 {
		t.Errorf("expected exactly 1 debounced callback, got %d", calls)
	}
	if len(got) != 5 {
		t.Errorf("expected 5 changed paths in one batch, got %d", len(got))
	}
}

func TestUntrackedFilesIgnored(t *testing.T) {
	dir := t.TempDir()

	var calls atomic.Int32
	w := New(testExtensions, func(paths []string) {
		calls.Add(1)
	}, 100*time.Millisecond)

	if err := w.Start(dir); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	_ = os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("hi"), 0644)
	_ = os.WriteFile(filepath.Join(dir, "cover.jpg"), []byte("img"), 0644)

	time.Sleep(300 * time.Millisecond)

	if c := calls.Load(); c != 0 {
		t.Errorf("expected 0 callbacks for untracked files, got %d", c)
	}
}

func TestRecursiveWatching(t *testing.T) {
	dir := t.TempDir()
	subdir := filepath.Join(dir, "artist", "album")
	if err := os.MkdirAll(subdir, 0755); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	w := New(testExtensions, func(paths []string) {
		calls.Add(1)
	}, 100*time.Millisecond)

	if err := w.Start(dir); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	_ = os.WriteFile(filepath.Join(subdir, "track01.flac"), []byte("audio"), 0644)

	time.Sleep(300 * time.Millisecond)

	if c := calls.Load(); c != 1 {
		t.Errorf("expected 1 callback for nested dir, got %d", c)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w := New(testExtensions, func([]string) {}, 100*time.Millisecond)
	if err := w.Start(dir); err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop() // should not panic
}

func TestStartIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	w := New(testExtensions, func([]string) {}, 100*time.Millisecond)
	if err := w.Start(dir); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()
	// Second start should be a no-op.
	if err := w.Start(dir); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteTriggers(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, "song.mp3")
	_ = os.WriteFile(f, []byte("data"), 0644)

	var mu sync.Mutex
	var called bool
	w := New(testExtensions, func([]string) {
		mu.Lock()
		called = true
		mu.Unlock()
	}, 100*time.Millisecond)

	if err := w.Start(dir); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	// Give watcher time to register.
	time.Sleep(50 * time.Millisecond)

	_ = os.Remove(f)
	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if !called {
		t.Error("expected callback on file deletion")
	}
}
