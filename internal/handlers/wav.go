// file: internal/handlers/wav.go
// version: 1.0.0
// guid: 8d2f6b0a-4e9c-4b3d-a7f1-5c0e8a2d6f4b

package handlers

import (
	"time"

	"github.com/jdfalk/audiotag/internal/formats"
	"github.com/jdfalk/audiotag/internal/metrics"
)

type wavHandler struct {
	fileHandler
}

// WAVDescriptor declares the RIFF/WAVE adapter (INFO chunk and embedded
// ID3 via TagLib).
func WAVDescriptor() formats.Descriptor {
	return formats.Descriptor{
		Name:       "WAV",
		Extensions: []string{"wav", "wave"},
		MIMETypes:  []string{"audio/wav", "audio/x-wav", "audio/vnd.wave"},
		Priority:   40,
		New: func(path string) formats.Handler {
			h := &wavHandler{newFileHandler(path)}
			return h
		},
	}
}

func (h *wavHandler) Read() error {
	start := time.Now()
	metrics.OperationStarted("read")

	if err := readTaglib(h.path, h.rec); err != nil {
		metrics.OperationFailed("read")
		return formats.NewError(formats.KindNotRecognized, h.path,
			"the file could not be parsed as RIFF/WAVE",
			"check that the file is a valid WAV", err)
	}

	metrics.OperationCompleted("read", time.Since(start))
	return nil
}

func (h *wavHandler) Write() error {
	return h.write()
}
