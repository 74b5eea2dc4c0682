package partial

import (
	"testing"

	"github.com/dbehnke/tetra-corebs/internal/codec"
)

func TestChannelAllocationRoundTrip(t *testing.T) {
	c := ChannelAllocation{
		AllocationType:   Addition,
		TimeslotAssigned: TimeslotAssigned{Slots: Timeslots{Slot2: true, Slot4: true}},
	}
	w := codec.NewWriter()
	c.Encode(w)
	if w.Len() != 6 {
		t.Fatalf("encoded length = %d, want 6", w.Len())
	}
	r := codec.NewReader(w.Done())
	if got := DecodeChannelAllocation(r); got != c {
		t.Fatalf("got %+v, want %+v", got, c)
	}
}

func TestDirectionRoundTrip(t *testing.T) {
	for _, d := range []Direction{DirectionDownlink, DirectionUplink, DirectionBoth} {
		w := codec.NewWriter()
		d.Encode(w)
		r := codec.NewReader(w.Done())
		if got := DecodeDirection(r); got != d {
			t.Fatalf("got %v, want %v", got, d)
		}
	}
}
