package channel

import (
	"testing"

	"github.com/dbehnke/tetra-corebs/internal/fec/scrambler"
)

func TestRoundTripBroadcastSynchronisation(t *testing.T) {
	s := scrambler.NewState(234, 0, 0)
	type1 := make([]bool, 60)
	for i := range type1 {
		type1[i] = i%4 == 1
	}
	type5, err := Encode(BroadcastSynchronisation, type1, s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(type5) != 120 {
		t.Fatalf("encoded length = %d, want 120", len(type5))
	}
	decoded, err := Decode(BroadcastSynchronisation, type5, s, 320)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded) != len(type1) {
		t.Fatalf("decoded length = %d, want %d", len(decoded), len(type1))
	}
	for i := range type1 {
		if decoded[i] != type1[i] {
			t.Fatalf("bit %d mismatch: got %v want %v", i, decoded[i], type1[i])
		}
	}
}

func TestRoundTripAccessAssignment(t *testing.T) {
	s := scrambler.NewState(234, 0, 0)
	type1 := make([]bool, 14)
	for i := range type1 {
		type1[i] = i%2 == 0
	}
	type5, err := Encode(AccessAssignment, type1, s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(type5) != 30 {
		t.Fatalf("encoded length = %d, want 30", len(type5))
	}
	decoded, err := Decode(AccessAssignment, type5, s, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i := range type1 {
		if decoded[i] != type1[i] {
			t.Fatalf("bit %d mismatch", i)
		}
	}
}

func TestTrafficChannelsNotSupported(t *testing.T) {
	s := scrambler.NewState(0, 0, 0)
	if _, err := Encode(TrafficHighProtection, make([]bool, 10), s); err != ErrNotSupported {
		t.Fatalf("expected ErrNotSupported, got %v", err)
	}
	if _, err := Encode(TrafficLowProtection, make([]bool, 10), s); err != ErrNotSupported {
		t.Fatalf("expected ErrNotSupported, got %v", err)
	}
}

func TestTrafficUnprotectedPassesThrough(t *testing.T) {
	s := scrambler.NewState(1, 1, 1)
	type1 := []bool{true, false, true, true, false}
	type5, err := Encode(TrafficUnprotected, type1, s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(type5) != len(type1) {
		t.Fatalf("length = %d, want %d", len(type5), len(type1))
	}
	decoded, err := Decode(TrafficUnprotected, type5, s, 0)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for i := range type1 {
		if decoded[i] != type1[i] {
			t.Fatalf("bit %d mismatch", i)
		}
	}
}
