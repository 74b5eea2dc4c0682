package reedmuller

import (
	"testing"

	"github.com/dbehnke/tetra-corebs/internal/bits"
)

func toBools(s string) []bool {
	b := bits.FromBitString(s)
	out := make([]bool, b.Len())
	for i := range out {
		out[i] = b.Get(i)
	}
	return out
}

func TestEncodeLength(t *testing.T) {
	block := toBools("01010101010101")
	encoded, err := Encode(block)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(encoded) != 30 {
		t.Fatalf("len = %d, want 30", len(encoded))
	}
}

func TestRoundTrip(t *testing.T) {
	block := toBools("01010101010101")
	encoded, err := Encode(block)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded) != len(block) {
		t.Fatalf("len = %d, want %d", len(decoded), len(block))
	}
	for i := range block {
		if decoded[i] != block[i] {
			t.Fatalf("bit %d mismatch", i)
		}
	}
}

func TestEncodeInvalidSize(t *testing.T) {
	_, err := Encode(make([]bool, 10))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestDecodeMismatch(t *testing.T) {
	block := toBools("01010101010101")
	encoded, _ := Encode(block)
	encoded[20] = !encoded[20]
	if _, err := Decode(encoded); err == nil {
		t.Fatal("expected mismatch error")
	}
}
