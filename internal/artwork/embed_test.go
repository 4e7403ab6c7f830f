// file: internal/artwork/embed_test.go
// version: 1.0.0
// guid: b2c3d4e5-f6a7-8b9c-0d1e-2f3a4b5c6d7f

package artwork

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jdfalk/audiotag/internal/picture"
)

func TestWriteCoverTempSniffsType(t *testing.T) {
	png := append([]byte("\x89PNG\r\n\x1a\n"), 1, 2, 3)
	path, err := writeCoverTemp(png)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(path)
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("PNG payload written to %s", path)
	}

	jpg := []byte{0xff, 0xd8, 0xff, 0xe0}
	path2, err := writeCoverTemp(jpg)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(path2)
	if !strings.HasSuffix(path2, ".jpg") {
		t.Errorf("JPEG payload written to %s", path2)
	}
}

func TestEmbedFrontCoverValidation(t *testing.T) {
	pic := picture.New([]byte{1}, picture.TypeFrontCover, "")

	if err := EmbedFrontCover("", pic); err == nil {
		t.Error("expected error for empty path")
	}
	if err := EmbedFrontCover("x.mp3", nil); err == nil {
		t.Error("expected error for nil picture")
	}
	if err := EmbedFrontCover(filepath.Join(t.TempDir(), "missing.mp3"), pic); err == nil {
		t.Error("expected error for missing audio file")
	}
}

func TestEmbedFrontCoverUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.xyz")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	pic := picture.New([]byte{1}, picture.TypeFrontCover, "")
	if err := EmbedFrontCover(path, pic); err == nil {
		t.Error("expected error for unsupported extension")
	}
}

func TestFindToolMissing(t *testing.T) {
	if _, err := findTool("definitely-not-a-real-tool-name"); err == nil {
		t.Error("expected ErrToolNotFound")
	}
}
