package convolutional

import "math"

// transition is one edge of the trellis: from prevState, on inputBit,
// emitting output, landing in nextState.
type transition struct {
	prevState state
	inputBit  bool
	output    [4]bool
}

// trellis groups, per next state, its exactly-two incoming transitions.
type trellis [numStates][2]transition

func buildTrellis() trellis {
	var t trellis
	counts := [numStates]int{}
	for s := state(0); s < numStates; s++ {
		for _, bit := range [2]bool{false, true} {
			out, next := encodeBit(bit, s)
			t[next][counts[next]] = transition{prevState: s, inputBit: bit, output: out}
			counts[next]++
		}
	}
	for _, c := range counts {
		if c != 2 {
			panic("convolutional: trellis invariant violated: a state does not have exactly two incoming transitions")
		}
	}
	return t
}

var sharedTrellis = buildTrellis()

const negInf = math.MinInt32 / 4

func branchMetric(valid, expected, received [4]bool) int {
	m := 0
	for i := 0; i < 4; i++ {
		if !valid[i] {
			continue
		}
		if received[i] == expected[i] {
			m--
		} else {
			m++
		}
	}
	return m
}

// ViterbiDecode recovers the most likely input sequence from a
// (possibly punctured-then-depunctured) mother-rate bit sequence and its
// validity mask. len(mother) and len(validMask) must be equal and a
// multiple of 4; the decoded output has len(mother)/4 bits.
func ViterbiDecode(mother []bool, validMask []bool) []bool {
	if len(mother) != len(validMask) {
		panic("convolutional: mother and validMask length mismatch")
	}
	if len(mother)%4 != 0 {
		panic("convolutional: mother length must be a multiple of 4")
	}
	steps := len(mother) / 4

	metrics := [numStates]int{}
	for i := 1; i < numStates; i++ {
		metrics[i] = negInf
	}
	survivors := make([][numStates]transition, steps)

	for step := 0; step < steps; step++ {
		var received, valid [4]bool
		for i := 0; i < 4; i++ {
			received[i] = mother[step*4+i]
			valid[i] = validMask[step*4+i]
		}

		var newMetrics [numStates]int
		for next := state(0); next < numStates; next++ {
			best := math.MaxInt32
			var bestTrans transition
			for _, tr := range sharedTrellis[next] {
				cost := metrics[tr.prevState] + branchMetric(valid, tr.output, received)
				if cost < best {
					best = cost
					bestTrans = tr
				}
			}
			newMetrics[next] = best
			survivors[step][next] = bestTrans
		}
		metrics = newMetrics
	}

	bestState := state(0)
	bestCost := metrics[0]
	for s := state(1); s < numStates; s++ {
		if metrics[s] < bestCost {
			bestCost = metrics[s]
			bestState = s
		}
	}

	decoded := make([]bool, steps)
	cur := bestState
	for step := steps - 1; step >= 0; step-- {
		tr := survivors[step][cur]
		decoded[step] = tr.inputBit
		cur = tr.prevState
	}
	return decoded
}
