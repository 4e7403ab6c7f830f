// file: internal/picture/picture_test.go
// version: 1.0.0
// guid: 7a9b1c3d-5e7f-9a1b-3c4d-5e6f7a8b9c0d

package picture

import (
	"bytes"
	"testing"
)

func TestNewPictureHasNoPendingChanges(t *testing.T) {
	p := New([]byte{1, 2, 3}, TypeFrontCover, "cover")
	if p.HasChanges() {
		t.Error("freshly created picture should have no pending field edits")
	}
	if !bytes.Equal(p.Data(), []byte{1, 2, 3}) {
		t.Error("Data mismatch")
	}
	if p.Type() != TypeFrontCover {
		t.Errorf("Type = %v", p.Type())
	}
	if desc, ok := p.Description(); !ok || desc != "cover" {
		t.Errorf("Description = %q, %v", desc, ok)
	}
}

func TestEmptyDescriptionIsAbsent(t *testing.T) {
	p := New(nil, TypeOther, "")
	if _, ok := p.Description(); ok {
		t.Error("empty description should read as absent")
	}
}

func TestIdentityNotBytes(t *testing.T) {
	a := New([]byte{1, 2, 3}, TypeFrontCover, "")
	b := New([]byte{1, 2, 3}, TypeFrontCover, "")
	if a.Handle() == b.Handle() {
		t.Error("pictures with identical content must still have distinct identities")
	}
}

func TestDescriptionEditAndRevert(t *testing.T) {
	p := New(nil, TypeFrontCover, "old")
	p.SetDescription("new")
	if !p.HasChanges() {
		t.Error("expected pending edit")
	}
	p.Revert()
	if desc, _ := p.Description(); desc != "old" {
		t.Errorf("revert left description %q", desc)
	}

	p.ClearDescription()
	p.Merge()
	if _, ok := p.Description(); ok {
		t.Error("merged clear should remove the description")
	}
}

func TestCloneFreshIdentity(t *testing.T) {
	p := New([]byte{9}, TypeBackCover, "back")
	p.SetDescription("edited")

	c := p.Clone()
	if c.Handle() == p.Handle() {
		t.Error("clone must have a fresh identity")
	}
	if desc, _ := c.Description(); desc != "edited" {
		t.Errorf("clone should carry the effective description, got %q", desc)
	}
	if c.HasChanges() {
		t.Error("clone starts with a clean committed state")
	}
}

func TestTypeString(t *testing.T) {
	if TypeFrontCover.String() != "Front Cover" {
		t.Errorf("String = %q", TypeFrontCover.String())
	}
	if Type(99).String() != "Type(99)" {
		t.Errorf("unknown type String = %q", Type(99).String())
	}
}

func TestExternalRoundTrip(t *testing.T) {
	p := New([]byte{1, 2}, TypeIllustration, "sleeve art")
	got := FromExternal(p.External())
	if !bytes.Equal(got.Data(), p.Data()) || got.Type() != p.Type() {
		t.Error("external round trip lost data or type")
	}
	if desc, _ := got.Description(); desc != "sleeve art" {
		t.Errorf("external round trip description = %q", desc)
	}
	if got.Handle() == p.Handle() {
		t.Error("rebuilt picture must have a fresh identity")
	}
}
