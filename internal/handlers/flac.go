// file: internal/handlers/flac.go
// version: 1.1.0
// guid: 7c1e5a9f-3d8b-4f2c-a6e0-4b9d1f5c8a3e

package handlers

import (
	"time"

	"github.com/dhowden/tag"
	"github.com/jdfalk/audiotag/internal/formats"
	"github.com/jdfalk/audiotag/internal/metrics"
)

type flacHandler struct {
	fileHandler
}

// FLACDescriptor declares the native FLAC adapter. It also claims .oga,
// which legitimately carries FLAC-in-Ogg streams; the probe rejects
// anything without a native FLAC stream so Ogg Vorbis files fall
// through to the Ogg adapter.
func FLACDescriptor() formats.Descriptor {
	return formats.Descriptor{
		Name:       "FLAC",
		Extensions: []string{"flac", "oga"},
		MIMETypes:  []string{"audio/flac", "audio/x-flac"},
		Priority:   80,
		New: func(path string) formats.Handler {
			h := &flacHandler{newFileHandler(path)}
			return h
		},
	}
}

func (h *flacHandler) Read() error {
	start := time.Now()
	metrics.OperationStarted("read")

	fileType, err := readDhowden(h.path, h.rec)
	if err != nil {
		metrics.OperationFailed("read")
		return formats.NewError(formats.KindNotRecognized, h.path,
			"the file could not be parsed as FLAC",
			"check that the file is a valid FLAC stream", err)
	}
	if fileType != tag.FLAC {
		metrics.OperationFailed("read")
		return formats.NewError(formats.KindNotRecognized, h.path,
			"the file does not contain a FLAC stream",
			"check that the file is a valid FLAC stream", nil)
	}

	metrics.OperationCompleted("read", time.Since(start))
	return nil
}

func (h *flacHandler) Write() error {
	return h.write()
}
