// file: internal/scanner/scanner.go
// version: 2.0.0
// guid: 3c4d5e6f-7a8b-9c0d-1e2f-3a4b5c6d7e8f

// Package scanner walks a directory tree and resolves metadata for
// every supported audio file, in parallel, with a progress bar and a
// TTL cache so repeated scans skip unchanged files.
package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jdfalk/audiotag/internal/cache"
	"github.com/jdfalk/audiotag/internal/formats"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// Entry summarizes one scanned file.
type Entry struct {
	Path        string
	Title       string
	Artist      string
	AlbumTitle  string
	TrackNumber int64
	Pictures    int
	Err         error
}

// fileKey identifies one version of a file; any rewrite changes it.
type fileKey struct {
	path    string
	size    int64
	modTime int64
}

// Scanner resolves files through an injected resolver.
type Scanner struct {
	resolver *formats.Resolver
	cache    *cache.Cache[fileKey, Entry]
	workers  int
}

// New creates a scanner. Pass workers < 1 for a single worker.
func New(resolver *formats.Resolver, workers int, cacheTTL time.Duration) *Scanner {
	if workers < 1 {
		workers = 1
	}
	return &Scanner{
		resolver: resolver,
		cache:    cache.New[fileKey, Entry](cacheTTL),
		workers:  workers,
	}
}

// Scan walks rootDir and resolves every file with a supported
// extension. Results come back sorted by path. Per-file failures are
// reported on the entry, not returned; only walk errors and
// cancellation abort the scan.
func (s *Scanner) Scan(ctx context.Context, rootDir string) ([]Entry, error) {
	supported := s.resolver.Registry().Extensions()

	var paths []string
	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		if supported[ext] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", rootDir, err)
	}

	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetDescription("Scanning audio files"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	results := make([]Entry, len(paths))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			entry := s.scanOne(path)
			mu.Lock()
			results[i] = entry
			_ = bar.Add(1)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Scanner) scanOne(path string) Entry {
	key, ok := statKey(path)
	if ok {
		if cached, hit := s.cache.Get(key); hit {
			return cached
		}
	}

	entry := Entry{Path: path}
	h, err := s.resolver.Resolve(path)
	if err != nil {
		entry.Err = err
		return entry
	}

	rec := h.Record()
	entry.Title, _ = rec.Title()
	entry.Artist, _ = rec.Artist()
	entry.AlbumTitle, _ = rec.AlbumTitle()
	entry.TrackNumber, _ = rec.TrackNumber()
	entry.Pictures = rec.Pictures().Count()

	if ok {
		s.cache.Set(key, entry)
	}
	return entry
}

func statKey(path string) (fileKey, bool) {
	st, err := os.Stat(path)
	if err != nil {
		return fileKey{}, false
	}
	return fileKey{path: path, size: st.Size(), modTime: st.ModTime().UnixNano()}, true
}
