// Package burst assembles the two downlink continuous burst types —
// Synchronisation Continuous Downlink Burst (SB) and Normal Continuous
// Downlink Burst (NCDB) — from their constituent logical-channel type5
// blocks, training sequences and computed phase-adjustment fields.
//
// Grounded on original_source/src/burst/{sync_cont_dl_burst,
// normal_cont_dl_burst}.rs and burst/partial/{training_sequence,
// frequency_correction}.rs. The synchroniser/bit_ring stubs in
// burst/synchroniser/ are receiver-side (uplink burst detection) and
// have no home in a downlink-only transmitter, so nothing here is
// grounded on them.
package burst

import "github.com/dbehnke/tetra-corebs/internal/bits"

// trainingSequenceNormal1 is n1..n22 (EN 300 392-2 clause 9.4.4.3.2).
func trainingSequenceNormal1() []bool {
	return bits.FromBitString("1101000011101001110100").Bools()
}

// trainingSequenceNormal2 is p1..p22.
func trainingSequenceNormal2() []bool {
	return bits.FromBitString("0111101001000011011110").Bools()
}

// trainingSequenceNormal3 is q1..q22.
func trainingSequenceNormal3() []bool {
	return bits.FromBitString("1011011100000110101101").Bools()
}

// trainingSequenceExtended is x1..x30 (clause 9.4.4.3.3), used by
// extended continuous downlink bursts beyond the scope of this module.
func trainingSequenceExtended() []bool {
	return bits.FromBitString("100111010000111010011101000011").Bools()
}

// trainingSequenceSync is y1..y38 (clause 9.4.4.3.4).
func trainingSequenceSync() []bool {
	return bits.FromBitString("11000001100111001110100111000001100111").Bools()
}
