package blockcode

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

func TestEncodeCRCScenario(t *testing.T) {
	payload := toBools("0001 0000 1011 0000 1011 1110 0000 0000 1000 0011 0000 0111 1101 0011 0011")
	if len(payload) != 60 {
		t.Fatalf("payload length = %d, want 60", len(payload))
	}
	encoded := Encode(payload)
	if len(encoded) != 76 {
		t.Fatalf("encoded length = %d, want 76", len(encoded))
	}
	var crc uint16
	for i := 0; i < 16; i++ {
		crc <<= 1
		if encoded[60+i] {
			crc |= 1
		}
	}
	if crc != 0xDEF1 {
		t.Fatalf("CRC = %#04x, want 0xdef1", crc)
	}
	for i, b := range payload {
		if encoded[i] != b {
			t.Fatalf("encoded payload bit %d mismatch", i)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	payload := toBools("1100101100101100")
	encoded := Encode(payload)
	decoded, err := Decode(encoded)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded) != len(payload) {
		t.Fatalf("decoded length = %d, want %d", len(decoded), len(payload))
	}
	for i := range payload {
		if decoded[i] != payload[i] {
			t.Fatalf("decoded bit %d mismatch", i)
		}
	}
}

func TestSingleBitCorruptionDetected(t *testing.T) {
	payload := toBools("1100101100101100")
	encoded := Encode(payload)
	encoded[3] = !encoded[3]
	if _, err := Decode(encoded); err == nil {
		t.Fatal("expected CRC mismatch after corruption")
	}
}

func TestDecodeTooShortPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for short block")
		}
	}()
	Decode(make([]bool, 10))
}
