// Package dqpsk implements the π/4-DQPSK modulator: an absolute phase
// counter advanced per dibit symbol, mapped to a complex I/Q sample.
package dqpsk

import (
	"fmt"
	"math"
)

// phaseDiffs maps a 2-bit symbol (00,01,10,11) to its phase delta in
// units of pi/4.
var phaseDiffs = [4]int{1, 3, -1, -3}

var absolutePhases = [8]complex128{
	complex(1, 0),
	complex(math.Sqrt2/2, math.Sqrt2/2),
	complex(0, 1),
	complex(-math.Sqrt2/2, math.Sqrt2/2),
	complex(-1, 0),
	complex(-math.Sqrt2/2, -math.Sqrt2/2),
	complex(0, -1),
	complex(math.Sqrt2/2, -math.Sqrt2/2),
}

// Modulator holds the running absolute phase state (0..7, units of
// pi/4).
type Modulator struct {
	phase int
}

// New returns a Modulator starting at phase 0.
func New() *Modulator {
	return &Modulator{}
}

// Phase returns the current absolute phase, 0..7.
func (m *Modulator) Phase() int {
	return m.phase
}

// SetPhase forces the absolute phase, used by the phase-adjustment
// search to probe candidate windows without constructing a fresh
// Modulator.
func (m *Modulator) SetPhase(p int) {
	m.phase = ((p % 8) + 8) % 8
}

// Next advances the phase by the delta for symbol (0..3) and returns the
// resulting I/Q sample. Symbol values above 3 are a programmer error.
func (m *Modulator) Next(symbol int) complex128 {
	if symbol < 0 || symbol > 3 {
		panic(fmt.Sprintf("dqpsk: invalid symbol value %d", symbol))
	}
	m.phase = ((m.phase+phaseDiffs[symbol])%8 + 8) % 8
	return absolutePhases[m.phase]
}

// ModulateBits consumes bits two at a time (each pair MSB-first as the
// symbol's high/low bit) and returns one I/Q sample per symbol. len(bits)
// must be even.
func ModulateBits(bits []bool) []complex128 {
	if len(bits)%2 != 0 {
		panic("dqpsk: ModulateBits requires an even number of bits")
	}
	m := New()
	out := make([]complex128, 0, len(bits)/2)
	for i := 0; i < len(bits); i += 2 {
		symbol := 0
		if bits[i] {
			symbol |= 2
		}
		if bits[i+1] {
			symbol |= 1
		}
		out = append(out, m.Next(symbol))
	}
	return out
}
