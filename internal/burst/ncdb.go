package burst

import "fmt"

// BuildNCDB assembles the 510-bit Normal Continuous Downlink Burst from
// its constituent type5 blocks.
//
// bkn1 and bkn2 (216 bits each) carry the two block channels (SCH/HD,
// BNCH or STCH, per the lower MAC's slot-type mapping); bb (30 bits)
// carries the broadcast block. slotFlag selects normal training
// sequence 2 over sequence 1, per EN 300 392-2 clause 9.4.4.3.2.
func BuildNCDB(bkn1, bkn2, bb []bool, slotFlag bool) []bool {
	if len(bkn1) != 216 {
		panic(fmt.Sprintf("burst: NCDB bkn1 must be 216 bits, got %d", len(bkn1)))
	}
	if len(bkn2) != 216 {
		panic(fmt.Sprintf("burst: NCDB bkn2 must be 216 bits, got %d", len(bkn2)))
	}
	if len(bb) != 30 {
		panic(fmt.Sprintf("burst: NCDB broadcast block must be 30 bits, got %d", len(bb)))
	}

	out := make([]bool, 0, 510)
	out = append(out, trainingSequenceNormal3()[10:22]...) // q11..q22
	tf1Ref := len(out)
	out = append(out, false, false) // TF1 PA placeholder
	out = append(out, bkn1...)
	out = append(out, bb[0:14]...)
	if slotFlag {
		out = append(out, trainingSequenceNormal2()...) // p1..p22
	} else {
		out = append(out, trainingSequenceNormal1()...) // n1..n22
	}
	out = append(out, bb[14:30]...)
	out = append(out, bkn2...)
	tf2Ref := len(out)
	out = append(out, false, false) // TF2 PA placeholder
	out = append(out, trainingSequenceNormal3()[0:10]...) // q1..q10

	if len(out) != 510 {
		panic(fmt.Sprintf("burst: assembled NCDB length = %d, want 510", len(out)))
	}

	hi1, lo1 := computePhaseAdjustment(windowBefore(out, tf1Ref), windowAfter(out, tf1Ref+2))
	out[tf1Ref], out[tf1Ref+1] = hi1, lo1

	hi2, lo2 := computePhaseAdjustment(windowBefore(out, tf2Ref), windowAfter(out, tf2Ref+2))
	out[tf2Ref], out[tf2Ref+1] = hi2, lo2

	return out
}

// ExtractNCDB validates burst's length and returns fresh copies of its
// bkn1, bkn2 and broadcast-block payload ranges, plus the slot flag
// recovered from which normal training sequence is present.
func ExtractNCDB(burst []bool) (bkn1, bkn2, bb []bool, slotFlag bool, err error) {
	if len(burst) != 510 {
		return nil, nil, nil, false, fmt.Errorf("burst: NCDB must be 510 bits, got %d", len(burst))
	}
	bkn1 = append([]bool(nil), burst[14:230]...)
	bbFirst := burst[230:244]
	ts := burst[244:266]
	bbSecond := burst[266:282]
	bkn2 = append([]bool(nil), burst[282:498]...)

	bb = append(append([]bool(nil), bbFirst...), bbSecond...)
	slotFlag = equalBits(ts, trainingSequenceNormal2())
	return bkn1, bkn2, bb, slotFlag, nil
}

func equalBits(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
