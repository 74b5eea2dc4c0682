package interleaver

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

func TestRoundTrip(t *testing.T) {
	k, a := 120, 11
	block := make([]bool, k)
	for i := range block {
		block[i] = i%3 == 0
	}
	interleaved, err := Interleave(block, k, a)
	if err != nil {
		t.Fatalf("Interleave: %v", err)
	}
	if len(interleaved) != k {
		t.Fatalf("len = %d, want %d", len(interleaved), k)
	}
	back, err := Deinterleave(interleaved, k, a)
	if err != nil {
		t.Fatalf("Deinterleave: %v", err)
	}
	for i := range block {
		if back[i] != block[i] {
			t.Fatalf("bit %d mismatch", i)
		}
	}
}

func TestInvalidBlockSize(t *testing.T) {
	_, err := Interleave(toBools("101"), 120, 11)
	if err == nil {
		t.Fatal("expected error")
	}
	var sizeErr *InvalidBlockSizeError
	if !asInvalidBlockSizeError(err, &sizeErr) {
		t.Fatalf("expected InvalidBlockSizeError, got %T", err)
	}
}

func asInvalidBlockSizeError(err error, target **InvalidBlockSizeError) bool {
	e, ok := err.(*InvalidBlockSizeError)
	if ok {
		*target = e
	}
	return ok
}

func TestAllChannelProfiles(t *testing.T) {
	cases := []struct {
		k, a int
	}{
		{216, 101},
		{168, 13},
		{432, 103},
	}
	for _, c := range cases {
		block := make([]bool, c.k)
		for i := range block {
			block[i] = i%2 == 0
		}
		interleaved, err := Interleave(block, c.k, c.a)
		if err != nil {
			t.Fatalf("Interleave(%d,%d): %v", c.k, c.a, err)
		}
		back, err := Deinterleave(interleaved, c.k, c.a)
		if err != nil {
			t.Fatalf("Deinterleave(%d,%d): %v", c.k, c.a, err)
		}
		for i := range block {
			if back[i] != block[i] {
				t.Fatalf("(%d,%d) bit %d mismatch", c.k, c.a, i)
			}
		}
	}
}
