package convolutional

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

func boolsToString(b []bool) string {
	buf := bits.FromBools(append([]bool(nil), b...))
	return buf.String()
}

func TestEncodeScenario(t *testing.T) {
	in := toBools("01010101")
	out := Encode(in)
	want := "00001111101110011110011011100110"
	if got := boolsToString(out); got != want {
		t.Fatalf("Encode = %q, want %q", got, want)
	}
}

func TestPunctureDepunctureRate2Over3RoundTrip(t *testing.T) {
	// channel.Encode appends 4 zero tail bits before puncturing (see
	// channel.go). Append them here too, matching the real chain, so the
	// decoder ends in a known state; the decoded output includes them.
	in := toBools("0101010101010101")
	terminated := append(append([]bool(nil), in...), make([]bool, 4)...)
	mother := Encode(terminated)
	punct := Rate2Over3.Puncture(mother)
	if got, want := len(punct), Rate2Over3.PuncturedLength(len(mother)); got != want {
		t.Fatalf("puncture length = %d, want %d", got, want)
	}
	deMother, valid := Rate2Over3.Depuncture(punct, len(mother))
	decoded := ViterbiDecode(deMother, valid)
	if got := boolsToString(decoded); got != boolsToString(terminated) {
		t.Fatalf("decoded = %q, want %q", got, boolsToString(terminated))
	}
}

func TestPunctureDepunctureRate1Over3RoundTrip(t *testing.T) {
	in := toBools("1100110011001100")
	mother := Encode(in)
	punct := Rate1Over3.Puncture(mother)
	deMother, valid := Rate1Over3.Depuncture(punct, len(mother))
	decoded := ViterbiDecode(deMother, valid)
	if got := boolsToString(decoded); got != boolsToString(in) {
		t.Fatalf("decoded = %q, want %q", got, boolsToString(in))
	}
}

func TestViterbiDecodeNoPuncturing(t *testing.T) {
	in := toBools("01010101")
	mother := Encode(in)
	valid := make([]bool, len(mother))
	for i := range valid {
		valid[i] = true
	}
	decoded := ViterbiDecode(mother, valid)
	if got := boolsToString(decoded); got != boolsToString(in) {
		t.Fatalf("decoded = %q, want %q", got, boolsToString(in))
	}
}

func TestTrellisInvariant(t *testing.T) {
	// buildTrellis panics internally if the invariant is violated; just
	// confirm it can be built without panicking and every entry is wired.
	tr := buildTrellis()
	for next := state(0); next < numStates; next++ {
		for _, in := range tr[next] {
			_, gotNext := encodeBit(in.inputBit, in.prevState)
			if gotNext != next {
				t.Fatalf("trellis entry inconsistent for state %d", next)
			}
		}
	}
}
