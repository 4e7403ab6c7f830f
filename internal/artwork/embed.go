// file: internal/artwork/embed.go
// version: 1.0.0
// guid: a1b2c3d4-e5f6-7a8b-9c0d-1e2f3a4b5c6d

// Package artwork embeds attached pictures into audio containers using
// external tools (ffmpeg for MP3/M4A/M4B/OGG, metaflac for FLAC). Tag
// libraries handle scalar fields; picture payloads go through here.
package artwork

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jdfalk/audiotag/internal/picture"
)

// ErrToolNotFound is returned when the required external tool is not installed.
var ErrToolNotFound = fmt.Errorf("required external tool not found")

// findTool checks if a command-line tool exists on the system PATH.
func findTool(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return path, nil
}

// EmbedFrontCover embeds pic's image bytes into an audio file's
// metadata. It detects the audio format from the file extension and uses
// the appropriate external tool.
//
// The original file is replaced atomically: the picture is written to a
// temp file, embedded into a temp copy, then renamed over the original.
func EmbedFrontCover(audioPath string, pic *picture.Picture) error {
	if audioPath == "" {
		return fmt.Errorf("empty audio path")
	}
	if pic == nil || len(pic.Data()) == 0 {
		return fmt.Errorf("empty picture data")
	}
	if _, err := os.Stat(audioPath); err != nil {
		return fmt.Errorf("audio file not found: %w", err)
	}

	coverPath, err := writeCoverTemp(pic.Data())
	if err != nil {
		return err
	}
	defer os.Remove(coverPath)

	ext := strings.ToLower(filepath.Ext(audioPath))
	switch ext {
	case ".mp3":
		return embedWithFFmpeg(audioPath, coverPath, "mp3")
	case ".m4b", ".m4a", ".aac", ".mp4":
		return embedWithFFmpeg(audioPath, coverPath, "mp4")
	case ".ogg", ".oga", ".opus":
		return embedWithFFmpeg(audioPath, coverPath, "ogg")
	case ".flac":
		return embedWithMetaflac(audioPath, coverPath)
	default:
		return fmt.Errorf("unsupported audio format for cover embedding: %s", ext)
	}
}

// writeCoverTemp stores image bytes in a temp file with an extension
// matching the sniffed image type, which the external tools rely on.
func writeCoverTemp(data []byte) (string, error) {
	ext := ".jpg"
	if bytes.HasPrefix(data, []byte("\x89PNG")) {
		ext = ".png"
	}
	f, err := os.CreateTemp("", "audiotag-cover-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp cover: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temp cover: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// embedWithFFmpeg uses ffmpeg to embed cover art into MP3, M4A/M4B, or OGG files.
// For MP3, this writes an ID3v2 APIC frame.
// For M4A/M4B, this writes an mp4 covr atom.
func embedWithFFmpeg(audioPath, coverPath, format string) error {
	ffmpegPath, err := findTool("ffmpeg")
	if err != nil {
		return err
	}

	tmpFile := audioPath + ".tmp" + filepath.Ext(audioPath)
	defer os.Remove(tmpFile) // clean up on failure

	// ffmpeg -i audio -i cover -map 0 -map 1 -c copy -disposition:v:0 attached_pic output
	args := []string{
		"-y",
		"-i", audioPath,
		"-i", coverPath,
		"-map", "0",
		"-map", "1",
		"-c", "copy",
		"-disposition:v:0", "attached_pic",
	}
	if format == "mp4" {
		args = append(args, "-movflags", "+faststart")
	}
	args = append(args, tmpFile)

	cmd := exec.Command(ffmpegPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg failed: %w\noutput: %s", err, string(output))
	}

	// Atomic replace: rename temp over original
	if err := os.Rename(tmpFile, audioPath); err != nil {
		return fmt.Errorf("failed to replace original file: %w", err)
	}

	log.Printf("[DEBUG] artwork: embedded cover into %s", audioPath)
	return nil
}

// embedWithMetaflac uses metaflac to embed cover art into FLAC files.
func embedWithMetaflac(audioPath, coverPath string) error {
	metaflacPath, err := findTool("metaflac")
	if err != nil {
		return err
	}

	// First remove any existing pictures, then import the new one
	removeCmd := exec.Command(metaflacPath, "--remove", "--block-type=PICTURE", audioPath)
	if output, err := removeCmd.CombinedOutput(); err != nil {
		log.Printf("[WARN] artwork: metaflac --remove PICTURE failed (may be ok): %s", string(output))
		// Not fatal -- file may not have had a picture
	}

	importCmd := exec.Command(metaflacPath, "--import-picture-from="+coverPath, audioPath)
	output, err := importCmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("metaflac --import-picture failed: %w\noutput: %s", err, string(output))
	}

	log.Printf("[DEBUG] artwork: embedded cover into %s (FLAC)", audioPath)
	return nil
}
