package burst

import "fmt"

// contextWindowBits is the number of bits (an even count, whole DQPSK
// symbols) immediately flanking a phase-adjustment field that feed
// computePhaseAdjustment, on each side.
const contextWindowBits = 6

// BuildSB assembles the 510-bit Synchronisation Continuous Downlink
// Burst from its constituent type5 blocks.
//
// sb1 (120 bits) carries the BSCH; sb2 (216 bits) carries SCH/HD, BNCH
// or STCH; bb (30 bits) carries the broadcast block (AACH).
func BuildSB(sb1, sb2, bb []bool) []bool {
	if len(sb1) != 120 {
		panic(fmt.Sprintf("burst: SB sb1 must be 120 bits, got %d", len(sb1)))
	}
	if len(sb2) != 216 {
		panic(fmt.Sprintf("burst: SB sb2 must be 216 bits, got %d", len(sb2)))
	}
	if len(bb) != 30 {
		panic(fmt.Sprintf("burst: SB broadcast block must be 30 bits, got %d", len(bb)))
	}

	out := make([]bool, 0, 510)
	out = append(out, trainingSequenceNormal3()[10:22]...) // q11..q22
	paARef := len(out)
	out = append(out, false, false) // PA field A placeholder
	out = append(out, frequencyCorrectionBits()...)        // f1..f80
	out = append(out, sb1...)
	out = append(out, trainingSequenceSync()...) // y1..y38
	out = append(out, bb...)
	out = append(out, sb2...)
	paBRef := len(out)
	out = append(out, false, false) // PA field B placeholder
	out = append(out, trainingSequenceNormal3()[0:10]...) // q1..q10

	if len(out) != 510 {
		panic(fmt.Sprintf("burst: assembled SB length = %d, want 510", len(out)))
	}

	hiA, loA := computePhaseAdjustment(windowBefore(out, paARef), windowAfter(out, paARef+2))
	out[paARef], out[paARef+1] = hiA, loA

	hiB, loB := computePhaseAdjustment(windowBefore(out, paBRef), windowAfter(out, paBRef+2))
	out[paBRef], out[paBRef+1] = hiB, loB

	return out
}

// ExtractSB validates burst's length and returns fresh copies of its
// sb1, sb2 and broadcast-block payload ranges.
func ExtractSB(burst []bool) (sb1, sb2, bb []bool, err error) {
	if len(burst) != 510 {
		return nil, nil, nil, fmt.Errorf("burst: SB must be 510 bits, got %d", len(burst))
	}
	sb1 = append([]bool(nil), burst[94:214]...)
	bb = append([]bool(nil), burst[252:282]...)
	sb2 = append([]bool(nil), burst[282:498]...)
	return sb1, sb2, bb, nil
}

func windowBefore(buf []bool, ref int) []bool {
	start := ref - contextWindowBits
	if start < 0 {
		start = 0
	}
	return buf[start:ref]
}

func windowAfter(buf []bool, ref int) []bool {
	end := ref + contextWindowBits
	if end > len(buf) {
		end = len(buf)
	}
	return buf[ref:end]
}
