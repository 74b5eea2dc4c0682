package convolutional

import "fmt"

// Puncturer describes one rational-puncturing family: a cyclic selection
// of T mother-code bit positions (Coefficients[1..T], 1-indexed within a
// period of Period mother bits; Coefficients[0] is an unused
// placeholder), a numerator/denominator naming the resulting code rate,
// and an inverse-index function applied to the output position before
// the cyclic lookup (identity for the two base families; a periodic
// +1 correction for the two unequal-protection traffic families).
type Puncturer struct {
	Coefficients []int
	T            int
	Period       int
	Numerator    int
	Denominator  int
	InverseIndex func(j int) int
}

func identity(j int) int { return j }

// Rate2Over3 keeps 3 of every 8 mother bits: 2 input bits in, 3 coded
// bits out.
var Rate2Over3 = Puncturer{
	Coefficients: []int{0, 1, 2, 5},
	T:            3,
	Period:       8,
	Numerator:    2,
	Denominator:  3,
	InverseIndex: identity,
}

// Rate1Over3 keeps 6 of every 8 mother bits. T is 6 here, not the 3
// carried by the RCPC puncturer-parameter source this is grounded on —
// see DESIGN.md: the source's t=3 produces a 2/3-equivalent selection,
// inconsistent with its own "1/3" label; t=6 is the value that actually
// yields a 1/3-rate selection and is used throughout this module.
var Rate1Over3 = Puncturer{
	Coefficients: []int{0, 1, 2, 3, 5, 6, 7},
	T:            6,
	Period:       8,
	Numerator:    1,
	Denominator:  3,
	InverseIndex: identity,
}

// Rate292Over432 is the high-protection traffic-channel puncturer.
var Rate292Over432 = Puncturer{
	Coefficients: []int{0, 1, 2, 5},
	T:            3,
	Period:       8,
	Numerator:    292,
	Denominator:  432,
	InverseIndex: func(j int) int { return j + (j-1)/65 },
}

// Rate148Over432 is the low-protection traffic-channel puncturer.
var Rate148Over432 = Puncturer{
	Coefficients: []int{0, 1, 2, 3, 5, 6, 7},
	T:            6,
	Period:       8,
	Numerator:    148,
	Denominator:  432,
	InverseIndex: func(j int) int { return j + (j-1)/35 },
}

// PuncturedLength computes the output length of Puncture(mother, p) for
// a mother sequence of length motherLen, panicking if the puncturing
// arithmetic is not exact (motherLen/4*Denominator must be divisible by
// Numerator).
func (p Puncturer) PuncturedLength(motherLen int) int {
	if motherLen%4 != 0 {
		panic(fmt.Sprintf("convolutional: mother length %d is not a multiple of 4", motherLen))
	}
	num := (motherLen / 4) * p.Denominator
	if num%p.Numerator != 0 {
		panic(fmt.Sprintf("convolutional: puncturing arithmetic not divisible: (%d/4)*%d is not divisible by %d", motherLen, p.Denominator, p.Numerator))
	}
	return num / p.Numerator
}

func (p Puncturer) motherIndex(x int) int {
	j0 := p.InverseIndex(x+1) - 1
	m := j0 / p.T
	r := j0 % p.T
	return p.Period*m + p.Coefficients[r+1] - 1
}

// Puncture selects PuncturedLength(len(mother)) bits out of mother.
func (p Puncturer) Puncture(mother []bool) []bool {
	outLen := p.PuncturedLength(len(mother))
	out := make([]bool, outLen)
	for x := 0; x < outLen; x++ {
		out[x] = mother[p.motherIndex(x)]
	}
	return out
}

// Depuncture lays punctured back out to motherLen bits, returning the
// reconstructed sequence and a validity mask marking which positions
// were actually transmitted (the rest are zero-filled placeholders for
// the Viterbi decoder's branch-metric computation).
func (p Puncturer) Depuncture(punctured []bool, motherLen int) (mother []bool, valid []bool) {
	mother = make([]bool, motherLen)
	valid = make([]bool, motherLen)
	for x := 0; x < len(punctured); x++ {
		k := p.motherIndex(x)
		mother[k] = punctured[x]
		valid[k] = true
	}
	return mother, valid
}
