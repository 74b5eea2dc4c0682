package partial

import (
	"testing"

	"github.com/dbehnke/tetra-corebs/internal/bits"
	"github.com/dbehnke/tetra-corebs/internal/codec"
)

func TestTimeslotAssignedEncodeScenario(t *testing.T) {
	// bit0 = slot 1 throughout this module, matching Timeslots' own
	// convention (the source's encode and decode for this type disagree
	// on bit order; this module uses one consistent order for both).
	tsa := TimeslotAssigned{Slots: Timeslots{Slot1: false, Slot2: true, Slot3: false, Slot4: true}}
	w := codec.NewWriter()
	tsa.Encode(w)
	want := bits.FromBitString("1010")
	if w.Done().String() != want.String() {
		t.Fatalf("got %s, want %s", w.Done().String(), want.String())
	}
}

func TestTimeslotAssignedAppropriateCCHRoundTrip(t *testing.T) {
	tsa := TimeslotAssigned{AppropriateCCH: true}
	w := codec.NewWriter()
	tsa.Encode(w)
	r := codec.NewReader(w.Done())
	got := DecodeTimeslotAssigned(r)
	if !got.AppropriateCCH {
		t.Fatalf("got %+v, want AppropriateCCH", got)
	}
}

func TestTimeslotsRoundTrip(t *testing.T) {
	ts := Timeslots{Slot1: true, Slot2: false, Slot3: true, Slot4: false}
	w := codec.NewWriter()
	ts.Encode(w)
	r := codec.NewReader(w.Done())
	if got := DecodeTimeslots(r); got != ts {
		t.Fatalf("got %+v, want %+v", got, ts)
	}
}
