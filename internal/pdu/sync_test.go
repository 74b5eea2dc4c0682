package pdu

import (
	"testing"

	"github.com/dbehnke/tetra-corebs/internal/bits"
	"github.com/dbehnke/tetra-corebs/internal/codec"
	"github.com/dbehnke/tetra-corebs/internal/pdu/partial"
)

func TestDecodeSyncScenario(t *testing.T) {
	buf := bits.FromBitString("00001111 11010001 10001110 00010100")
	r := codec.NewReader(buf)
	s := DecodeSync(r)

	if s.SystemCode != 0 {
		t.Errorf("SystemCode = %d, want 0", s.SystemCode)
	}
	if s.ColourCode != 63 {
		t.Errorf("ColourCode = %d, want 63", s.ColourCode)
	}
	if s.TimeslotNumber != 1 {
		t.Errorf("TimeslotNumber = %d, want 1", s.TimeslotNumber)
	}
	if s.FrameNumber != 3 {
		t.Errorf("FrameNumber = %d, want 3", s.FrameNumber)
	}
	if s.MultiframeNumber != 7 {
		t.Errorf("MultiframeNumber = %d, want 7", s.MultiframeNumber)
	}
	if s.SharingMode != partial.ContinuousTransmission {
		t.Errorf("SharingMode = %v, want ContinuousTransmission", s.SharingMode)
	}
	if s.TSReservedFrames != partial.Reserve2 {
		t.Errorf("TSReservedFrames = %v, want Reserve2", s.TSReservedFrames)
	}
	if !s.Frame18Extension {
		t.Error("Frame18Extension = false, want true")
	}
}

func TestSyncEncodeDecodeRoundTrip(t *testing.T) {
	s := Sync{
		SystemCode:       5,
		ColourCode:       40,
		TimeslotNumber:   2,
		FrameNumber:      9,
		MultiframeNumber: 30,
		SharingMode:      partial.MCCHSharing,
		TSReservedFrames: partial.Reserve9,
		UPlaneDTX:        true,
		Frame18Extension: false,
	}
	w := codec.NewWriter()
	s.Encode(w)
	if w.Len() != 31 {
		t.Fatalf("encoded length = %d, want 31", w.Len())
	}
	r := codec.NewReader(w.Done())
	got := DecodeSync(r)
	if got != s {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, s)
	}
}
