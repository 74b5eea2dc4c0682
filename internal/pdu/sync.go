// Package pdu implements the downlink MAC PDU codecs: SYNC, SYSINFO,
// MAC-RESOURCE, MAC-FRAG, MAC-END, ACCESS-ASSIGN, and the supplemented
// D-MLE-SYNC/D-MLE-SYSINFO pair carried inside SYNC/SYSINFO's MLE PDU
// payload.
//
// Grounded on original_source/src/pdu/downlink/*.rs, restyled on the
// Reader/Writer field-by-field encode/decode pattern this module's own
// internal/codec package provides (itself modelled on the teacher's
// pkg/protocol field-by-field parse/build approach).
package pdu

import (
	"github.com/dbehnke/tetra-corebs/internal/codec"
	"github.com/dbehnke/tetra-corebs/internal/pdu/partial"
)

// Sync is the BSCH's SYNC PDU: 31 bits, which the 29-bit D-MLE-SYNC PDU
// that follows it completes to the BSCH's 60-bit block.
type Sync struct {
	SystemCode         uint32
	ColourCode         uint32
	TimeslotNumber     uint32
	FrameNumber        uint32
	MultiframeNumber   uint32
	SharingMode        partial.SharingMode
	TSReservedFrames   partial.TSReservedFrames
	UPlaneDTX          bool
	Frame18Extension   bool
}

func DecodeSync(r *codec.Reader) Sync {
	s := Sync{
		SystemCode:       r.ReadInt(4),
		ColourCode:       r.ReadInt(6),
		TimeslotNumber:   r.ReadInt(2),
		FrameNumber:      r.ReadInt(5),
		MultiframeNumber: r.ReadInt(6),
		SharingMode:      partial.DecodeSharingMode(r),
		TSReservedFrames: partial.DecodeTSReservedFrames(r),
		UPlaneDTX:        r.ReadBool(),
		Frame18Extension: r.ReadBool(),
	}
	r.ReadBool() // reserved
	return s
}

func (s Sync) Encode(w *codec.Writer) {
	w.WriteInt(s.SystemCode, 4)
	w.WriteInt(s.ColourCode, 6)
	w.WriteInt(s.TimeslotNumber, 2)
	w.WriteInt(s.FrameNumber, 5)
	w.WriteInt(s.MultiframeNumber, 6)
	s.SharingMode.Encode(w)
	s.TSReservedFrames.Encode(w)
	w.WriteBool(s.UPlaneDTX)
	w.WriteBool(s.Frame18Extension)
	w.WriteBool(false) // reserved
}
