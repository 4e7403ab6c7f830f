// file: internal/handlers/taglibio_test.go
// version: 1.1.0
// guid: 4b6c8d0e-2f4a-6b8c-0d1e-2f3a4b5c6d7e

package handlers

import (
	"testing"

	"github.com/jdfalk/audiotag/internal/fields"
	"github.com/jdfalk/audiotag/internal/record"
	"github.com/jdfalk/audiotag/internal/testutil"
	taglib "go.senan.xyz/taglib"
)

func TestApplyTaglibFieldText(t *testing.T) {
	rec := record.New()
	if !applyTaglibField(rec, "TITLE", "Night Train") {
		t.Fatal("TITLE should be consumed")
	}
	if title, _ := rec.Title(); title != "Night Train" {
		t.Errorf("Title = %q", title)
	}
	if rec.HasUnsavedChanges() {
		t.Error("parse must populate the committed layer")
	}
}

func TestApplyTaglibFieldUnknownKey(t *testing.T) {
	rec := record.New()
	if applyTaglibField(rec, "ENCODER", "Lavf") {
		t.Error("unmapped key should not be consumed")
	}
}

func TestApplyNumberPair(t *testing.T) {
	rec := record.New()
	applyNumberPair(rec, "3/12", fields.TrackNumber, fields.TrackTotal)
	if n, _ := rec.TrackNumber(); n != 3 {
		t.Errorf("TrackNumber = %d", n)
	}
	if total, _ := rec.TrackTotal(); total != 12 {
		t.Errorf("TrackTotal = %d", total)
	}

	rec = record.New()
	applyNumberPair(rec, "5", fields.DiscNumber, fields.DiscTotal)
	if n, _ := rec.DiscNumber(); n != 5 {
		t.Errorf("DiscNumber = %d", n)
	}
	if _, ok := rec.DiscTotal(); ok {
		t.Error("no total part should leave DiscTotal absent")
	}
}

func TestApplyNumberPairMalformed(t *testing.T) {
	rec := record.New()
	applyNumberPair(rec, "three", fields.TrackNumber, fields.TrackTotal)
	if _, ok := rec.TrackNumber(); ok {
		t.Error("malformed number should be skipped, not stored")
	}
}

func TestApplyGainSuffixes(t *testing.T) {
	cases := map[string]float64{
		"-6.20 dB": -6.20,
		"89.0 dB":  89.0,
		"-18 LUFS": -18,
		"0.988":    0.988,
	}
	for in, want := range cases {
		rec := record.New()
		applyGain(rec, fields.ReplayGainTrackGain, in)
		got, ok := rec.ReplayGainTrackGain()
		if !ok {
			t.Errorf("applyGain(%q) stored nothing", in)
			continue
		}
		if got != want {
			t.Errorf("applyGain(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestBuildTagMap(t *testing.T) {
	rec := testutil.PopulatedRecord(t)
	tags := buildTagMap(rec)

	want := map[string][]string{
		taglib.Title:       {"Open Road"},
		taglib.Artist:      {"The Fieldhands"},
		taglib.TrackNumber: {"3"},
		tagTrackTotal:      {"11"},
		tagCompilation:     {"0"},
		tagRGTrackGain:     {"-6.20 dB"},
		tagRGTrackPeak:     {"0.970000"},
	}
	for key, values := range want {
		got, ok := tags[key]
		if !ok {
			t.Errorf("%s missing from the property map", key)
			continue
		}
		if len(got) != 1 || got[0] != values[0] {
			t.Errorf("%s = %v, want %v", key, got, values)
		}
	}

	if _, ok := tags[taglib.Lyrics]; ok {
		t.Error("absent field must be omitted, not written empty")
	}
	if _, ok := tags[tagRGAlbumGain]; ok {
		t.Error("absent album gain must be omitted")
	}
}

func TestBuildTagMapReflectsPendingEdits(t *testing.T) {
	rec := testutil.PopulatedRecord(t)
	rec.SetTitle("Retitled")
	rec.Clear(fields.Comment)

	tags := buildTagMap(rec)
	if got := tags[taglib.Title]; len(got) != 1 || got[0] != "Retitled" {
		t.Errorf("TITLE = %v, want the pending value", got)
	}
	if _, ok := tags[taglib.Comment]; ok {
		t.Error("pending deletion must drop the property from the map")
	}
}

func TestApplyTaglibFieldCompilation(t *testing.T) {
	for in, want := range map[string]bool{"1": true, "true": true, "0": false, "": false} {
		rec := record.New()
		applyTaglibField(rec, "COMPILATION", in)
		got, ok := rec.Compilation()
		if !ok {
			t.Fatalf("COMPILATION %q not stored", in)
		}
		if got != want {
			t.Errorf("COMPILATION %q = %v, want %v", in, got, want)
		}
	}
}
