// file: internal/handlers/handler.go
// version: 1.2.0
// guid: 2b6d0f4a-8c3e-4b7d-9f1a-5c8e2b6d0f4a

// Package handlers implements the built-in format adapters (FLAC, MP3,
// MP4, Ogg, WAV) behind the formats.Handler contract. Reading goes
// through dhowden/tag where the format allows it and falls back to
// TagLib; writing always goes through TagLib with a write guard.
package handlers

import (
	"log"
	"time"

	"github.com/jdfalk/audiotag/internal/artwork"
	"github.com/jdfalk/audiotag/internal/config"
	"github.com/jdfalk/audiotag/internal/fileops"
	"github.com/jdfalk/audiotag/internal/formats"
	"github.com/jdfalk/audiotag/internal/metrics"
	"github.com/jdfalk/audiotag/internal/picture"
	"github.com/jdfalk/audiotag/internal/record"
)

// fileHandler is the state shared by every format adapter: the file it
// is bound to and the record it populates.
type fileHandler struct {
	path string
	rec  *record.Record
}

func newFileHandler(path string) fileHandler {
	return fileHandler{path: path, rec: record.New()}
}

// Record returns the handler's metadata record.
func (h *fileHandler) Record() *record.Record { return h.rec }

// Path returns the file the handler is bound to.
func (h *fileHandler) Path() string { return h.path }

// write persists the record's effective values. Scalar fields go
// through TagLib under a write guard; a changed front cover is embedded
// best-effort through external tools. On success the record's pending
// changes are merged, never before, or the record would diverge from
// the file on disk.
func (h *fileHandler) write() error {
	start := time.Now()
	metrics.OperationStarted("write")

	guard, err := fileops.Begin(h.path, config.Guard())
	if err != nil {
		metrics.OperationFailed("write")
		return formats.NewError(formats.KindInputOutput, h.path,
			"the file could not be prepared for writing",
			"verify that the file and its directory are writable", err)
	}

	if err := writeTagMap(h.path, h.rec); err != nil {
		if rbErr := guard.Rollback(); rbErr != nil {
			log.Printf("[WARN] handlers: rollback of %s failed: %v", h.path, rbErr)
		}
		metrics.OperationFailed("write")
		return formats.NewError(formats.KindInputOutput, h.path,
			"the metadata could not be saved",
			"verify that the file is writable and not in use", err)
	}

	h.embedChangedCover()

	if err := guard.Commit(); err != nil {
		log.Printf("[WARN] handlers: backup cleanup for %s failed: %v", h.path, err)
	}

	h.rec.MergeChanges()
	metrics.OperationCompleted("write", time.Since(start))
	return nil
}

// embedChangedCover pushes the front cover into the container when the
// picture set changed. Picture payload persistence is best-effort: a
// missing external tool degrades to scalar-only persistence rather than
// failing the write.
func (h *fileHandler) embedChangedCover() {
	if !h.rec.Pictures().HasChanges() {
		return
	}
	var cover *picture.Picture
	for p := range h.rec.Pictures().VisibleKind(picture.TypeFrontCover) {
		cover = p
		break
	}
	if cover == nil {
		for p := range h.rec.Pictures().Visible() {
			cover = p
			break
		}
	}
	if cover == nil {
		return
	}
	if err := artwork.EmbedFrontCover(h.path, cover); err != nil {
		log.Printf("[WARN] handlers: cover embedding for %s skipped: %v", h.path, err)
	}
}
