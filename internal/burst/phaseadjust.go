package burst

import "github.com/dbehnke/tetra-corebs/internal/dqpsk"

// computePhaseAdjustment derives the 2-bit phase-adjustment field placed
// between the before and after symbol context at a fixed burst position.
// The source calls an unretrievable `phase_adjustment_bits(context)`
// function (see DESIGN.md Open Questions); this implementation is a
// closed-form search: for each of the 4 candidate symbol values, run the
// DQPSK phase forward through before, the candidate, then after, and
// keep whichever candidate brings the final phase closest to 0 (ties
// favour the lowest symbol value). before and after must each have an
// even length (whole DQPSK symbols).
func computePhaseAdjustment(before, after []bool) (hi, lo bool) {
	bestSymbol := 0
	bestDistance := 9 // larger than any real circular distance (max 4)

	for symbol := 0; symbol < 4; symbol++ {
		m := dqpsk.New()
		for i := 0; i < len(before); i += 2 {
			m.Next(symbolAt(before, i))
		}
		m.Next(symbol)
		for i := 0; i < len(after); i += 2 {
			m.Next(symbolAt(after, i))
		}
		d := circularDistance(m.Phase())
		if d < bestDistance {
			bestDistance = d
			bestSymbol = symbol
		}
	}

	return bestSymbol&0b10 != 0, bestSymbol&0b01 != 0
}

func symbolAt(bits []bool, i int) int {
	s := 0
	if bits[i] {
		s |= 2
	}
	if bits[i+1] {
		s |= 1
	}
	return s
}

// circularDistance returns the shortest distance around the 8-position
// phase ring between phase and the reference phase 0.
func circularDistance(phase int) int {
	d := phase % 8
	if d < 0 {
		d += 8
	}
	if d > 4 {
		d = 8 - d
	}
	return d
}
