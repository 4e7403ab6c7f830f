// file: internal/formats/resolver.go
// version: 1.3.0
// guid: 4c8e2a6f-9d3b-4e1c-a7f5-6b2d9e4c0f8a

package formats

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jdfalk/audiotag/internal/metrics"
)

// Resolver turns a file URL into a handler with a populated record. The
// registry is injected at construction; a resolver holds no other state,
// so independent resolves may run concurrently.
type Resolver struct {
	registry *Registry
}

// NewResolver creates a resolver over reg.
func NewResolver(reg *Registry) *Resolver {
	return &Resolver{registry: reg}
}

// Registry returns the injected registry.
func (rv *Resolver) Registry() *Registry {
	return rv.registry
}

// Resolve locates a handler for target and returns it with the file's
// metadata already read. Target is a file: URL or a bare filesystem
// path.
//
// Candidates claiming the file's extension are probed in priority order;
// each probe performs a real parse, because a shared extension (.oga and
// friends) can be legitimately claimed by more than one codec family.
// The first successful parse wins and later candidates are never tried.
// If every probe fails the most recent candidate's error is returned; if
// no candidate claims the extension the failure is KindNotRecognized.
func (rv *Resolver) Resolve(target string) (Handler, error) {
	start := time.Now()
	metrics.OperationStarted("resolve")

	path, err := targetPath(target)
	if err != nil {
		metrics.OperationFailed("resolve")
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		metrics.OperationFailed("resolve")
		return nil, NewError(KindInputOutput, path,
			"the file could not be opened",
			"verify that the file exists and is readable", err)
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	candidates := rv.registry.Candidates(ext)
	if len(candidates) == 0 {
		metrics.OperationFailed("resolve")
		return nil, NewError(KindNotRecognized, path,
			fmt.Sprintf("no handler claims the %q extension", ext),
			"check that the file is a supported audio format", nil)
	}

	var lastErr error
	for _, d := range candidates {
		h := d.New(path)
		if err := h.Read(); err != nil {
			// Probe failed; discard the handler and its partial state
			// and fall through to the next candidate.
			metrics.ProbeFailed(d.Name)
			lastErr = err
			continue
		}
		metrics.OperationCompleted("resolve", time.Since(start))
		return h, nil
	}

	metrics.OperationFailed("resolve")
	return nil, lastErr
}

// targetPath validates the target and reduces it to a filesystem path.
// URLs must carry the file scheme; anything without a scheme is treated
// as a plain path.
func targetPath(target string) (string, error) {
	if !strings.Contains(target, "://") {
		return target, nil
	}
	u, err := url.Parse(target)
	if err != nil {
		return "", NewError(KindInputOutput, target,
			"the URL could not be parsed",
			"pass a file: URL or a filesystem path", err)
	}
	if !strings.EqualFold(u.Scheme, "file") {
		return "", NewError(KindInputOutput, target,
			fmt.Sprintf("the %q scheme is not supported", u.Scheme),
			"only file: URLs are supported", nil)
	}
	return u.Path, nil
}
