package qr

import (
	"bytes"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestEncodeProducesPNG(t *testing.T) {
	data, err := Encode("ART-7")
	if err != nil {
		t.Fatalf("unexpected error encoding: %v", err)
	}
	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatal("expected PNG payload")
	}
}

func TestEncodeRejectsEmptyIdentifier(t *testing.T) {
	if _, err := Encode("   "); err == nil {
		t.Fatal("expected error for blank identifier")
	}
}

func TestFileBase(t *testing.T) {
	if got := FileBase(12); got != "qr_12" {
		t.Fatalf("unexpected file base: %q", got)
	}
}
