// file: internal/handlers/ogg.go
// version: 1.1.0
// guid: 5b9f3d7a-1c6e-4a0b-9d4f-8e2a6c0b5d9f

package handlers

import (
	"time"

	"github.com/jdfalk/audiotag/internal/formats"
	"github.com/jdfalk/audiotag/internal/metrics"
)

type oggHandler struct {
	fileHandler
}

// OggDescriptor declares the Ogg container adapter (Vorbis, Opus, and
// FLAC-in-Ogg via TagLib). It claims .oga at a lower priority than the
// native FLAC adapter, which takes the first probe for that extension.
func OggDescriptor() formats.Descriptor {
	return formats.Descriptor{
		Name:       "Ogg",
		Extensions: []string{"ogg", "oga", "opus", "spx"},
		MIMETypes:  []string{"audio/ogg", "audio/vorbis", "audio/opus"},
		Priority:   50,
		New: func(path string) formats.Handler {
			h := &oggHandler{newFileHandler(path)}
			return h
		},
	}
}

func (h *oggHandler) Read() error {
	start := time.Now()
	metrics.OperationStarted("read")

	if err := readTaglib(h.path, h.rec); err != nil {
		metrics.OperationFailed("read")
		return formats.NewError(formats.KindNotRecognized, h.path,
			"the file could not be parsed as an Ogg container",
			"check that the file is a valid Ogg stream", err)
	}

	metrics.OperationCompleted("read", time.Since(start))
	return nil
}

func (h *oggHandler) Write() error {
	return h.write()
}
