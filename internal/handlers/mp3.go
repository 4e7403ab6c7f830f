// file: internal/handlers/mp3.go
// version: 1.1.0
// guid: 9d3f7b1c-5e0a-4c8d-b4f2-6a0c9e3d7f1b

package handlers

import (
	"time"

	"github.com/dhowden/tag"
	"github.com/jdfalk/audiotag/internal/formats"
	"github.com/jdfalk/audiotag/internal/metrics"
	"github.com/jdfalk/audiotag/internal/record"
)

type mp3Handler struct {
	fileHandler
}

// MP3Descriptor declares the MP3/ID3 adapter.
func MP3Descriptor() formats.Descriptor {
	return formats.Descriptor{
		Name:       "MP3",
		Extensions: []string{"mp3"},
		MIMETypes:  []string{"audio/mpeg", "audio/mp3"},
		Priority:   60,
		New: func(path string) formats.Handler {
			h := &mp3Handler{newFileHandler(path)}
			return h
		},
	}
}

func (h *mp3Handler) Read() error {
	start := time.Now()
	metrics.OperationStarted("read")

	// dhowden/tag first for its richer ID3 frame access; some UTF-16
	// encoded tags and tagless files need the TagLib fallback.
	fileType, err := readDhowden(h.path, h.rec)
	if err == nil && fileType != tag.MP3 {
		err = formats.NewError(formats.KindNotRecognized, h.path,
			"the file does not carry ID3 tags",
			"check that the file is a valid MP3", nil)
	}
	if err != nil {
		h.rec = record.New()
		if tlErr := readTaglib(h.path, h.rec); tlErr != nil {
			metrics.OperationFailed("read")
			return formats.NewError(formats.KindNotRecognized, h.path,
				"the file could not be parsed as MP3",
				"check that the file is a valid MP3", tlErr)
		}
	}

	metrics.OperationCompleted("read", time.Since(start))
	return nil
}

func (h *mp3Handler) Write() error {
	return h.write()
}
