// file: internal/handlers/mp4.go
// version: 1.1.0
// guid: 1f5b9d3e-7a2c-4e6f-8b0d-2c7e1a5f9b3d

package handlers

import (
	"time"

	"github.com/dhowden/tag"
	"github.com/jdfalk/audiotag/internal/formats"
	"github.com/jdfalk/audiotag/internal/metrics"
	"github.com/jdfalk/audiotag/internal/record"
)

type mp4Handler struct {
	fileHandler
}

// MP4Descriptor declares the MPEG-4 container adapter (iTunes-style
// atoms).
func MP4Descriptor() formats.Descriptor {
	return formats.Descriptor{
		Name:       "MP4",
		Extensions: []string{"m4a", "m4b", "mp4", "aac"},
		MIMETypes:  []string{"audio/mp4", "audio/x-m4a"},
		Priority:   70,
		New: func(path string) formats.Handler {
			h := &mp4Handler{newFileHandler(path)}
			return h
		},
	}
}

func (h *mp4Handler) Read() error {
	start := time.Now()
	metrics.OperationStarted("read")

	// dhowden/tag rejects some ffmpeg-produced atom layouts; TagLib
	// picks those up.
	fileType, err := readDhowden(h.path, h.rec)
	if err == nil && !isMP4FileType(fileType) {
		err = formats.NewError(formats.KindNotRecognized, h.path,
			"the file does not contain an MPEG-4 atom tree",
			"check that the file is a valid M4A/M4B", nil)
	}
	if err != nil {
		h.rec = record.New()
		if tlErr := readTaglib(h.path, h.rec); tlErr != nil {
			metrics.OperationFailed("read")
			return formats.NewError(formats.KindNotRecognized, h.path,
				"the file could not be parsed as an MPEG-4 container",
				"check that the file is a valid M4A/M4B", tlErr)
		}
	}

	metrics.OperationCompleted("read", time.Since(start))
	return nil
}

func (h *mp4Handler) Write() error {
	return h.write()
}

// isMP4FileType reports whether t is one of the MPEG-4 container
// variants dhowden/tag distinguishes.
func isMP4FileType(t tag.FileType) bool {
	switch t {
	case tag.M4A, tag.M4B, tag.M4P, tag.ALAC:
		return true
	}
	return false
}
