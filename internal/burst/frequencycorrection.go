package burst

import "github.com/dbehnke/tetra-corebs/internal/bits"

// frequencyCorrectionBits is f1..f80, a fixed pattern of all-ones
// bracketing 64 zero bits (EN 300 392-2 clause 9.4.4.3.1).
func frequencyCorrectionBits() []bool {
	return bits.FromBitString("11111111000000000000000000000000000000000000000000000000000000000000000011111111").Bools()
}
