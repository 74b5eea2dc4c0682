package partial

import "github.com/dbehnke/tetra-corebs/internal/codec"

// SharingMode is SYNC's 2-bit TS/carrier sharing mode.
type SharingMode int

const (
	ContinuousTransmission SharingMode = iota
	CarrierSharing
	MCCHSharing
	TrafficCarrierSharing
)

func DecodeSharingMode(r *codec.Reader) SharingMode {
	return SharingMode(r.ReadInt(2))
}

func (s SharingMode) Encode(w *codec.Writer) {
	w.WriteInt(uint32(s), 2)
}

// TSReservedFrames is SYNC's 3-bit count of frames reserved on this
// timeslot for the MCCH/common control.
type TSReservedFrames int

const (
	Reserve1 TSReservedFrames = iota
	Reserve2
	Reserve3
	Reserve4
	Reserve6
	Reserve9
	Reserve12
	Reserve18
)

func DecodeTSReservedFrames(r *codec.Reader) TSReservedFrames {
	return TSReservedFrames(r.ReadInt(3))
}

func (t TSReservedFrames) Encode(w *codec.Writer) {
	w.WriteInt(uint32(t), 3)
}
