package partial

import (
	"testing"

	"github.com/dbehnke/tetra-corebs/internal/codec"
)

func TestAddressSSIRoundTrip(t *testing.T) {
	a := Address{Kind: SSI, Value: 0xFFFFFE}
	w := codec.NewWriter()
	a.Encode(w)
	if w.Len() != 27 {
		t.Fatalf("encoded length = %d, want 27", w.Len())
	}
	r := codec.NewReader(w.Done())
	got := DecodeAddress(r)
	if got != a {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, a)
	}
}

func TestAddressNullPDURoundTrip(t *testing.T) {
	a := Address{Kind: NullPDU}
	w := codec.NewWriter()
	a.Encode(w)
	if w.Len() != 3 {
		t.Fatalf("encoded length = %d, want 3", w.Len())
	}
	r := codec.NewReader(w.Done())
	if got := DecodeAddress(r); got != a {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, a)
	}
}

func TestAddressSSIPlusEventLabelRoundTrip(t *testing.T) {
	a := Address{Kind: SSIPlusEventLabel, Value: 123456, EventLabel: 77}
	w := codec.NewWriter()
	a.Encode(w)
	r := codec.NewReader(w.Done())
	if got := DecodeAddress(r); got != a {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, a)
	}
}
