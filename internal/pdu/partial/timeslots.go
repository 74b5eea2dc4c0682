package partial

import "github.com/dbehnke/tetra-corebs/internal/codec"

// Timeslots is a 4-bit bitmap over timeslots 1..4, bit 0 = slot 1.
type Timeslots struct {
	Slot1, Slot2, Slot3, Slot4 bool
}

func DecodeTimeslots(r *codec.Reader) Timeslots {
	v := r.ReadInt(4)
	return Timeslots{
		Slot1: v&0b0001 > 0,
		Slot2: v&0b0010 > 0,
		Slot3: v&0b0100 > 0,
		Slot4: v&0b1000 > 0,
	}
}

func (t Timeslots) Encode(w *codec.Writer) {
	var v uint32
	if t.Slot1 {
		v |= 0b0001
	}
	if t.Slot2 {
		v |= 0b0010
	}
	if t.Slot3 {
		v |= 0b0100
	}
	if t.Slot4 {
		v |= 0b1000
	}
	w.WriteInt(v, 4)
}

// TimeslotAssigned is the channel-allocation assigned-timeslot field:
// either "the appropriate CCH" or an explicit timeslot bitmap.
type TimeslotAssigned struct {
	AppropriateCCH bool
	Slots          Timeslots
}

func DecodeTimeslotAssigned(r *codec.Reader) TimeslotAssigned {
	v := r.ReadInt(4)
	if v == 0 {
		return TimeslotAssigned{AppropriateCCH: true}
	}
	return TimeslotAssigned{Slots: Timeslots{
		Slot1: v&0b0001 > 0,
		Slot2: v&0b0010 > 0,
		Slot3: v&0b0100 > 0,
		Slot4: v&0b1000 > 0,
	}}
}

func (t TimeslotAssigned) Encode(w *codec.Writer) {
	if t.AppropriateCCH {
		w.WriteInt(0, 4)
		return
	}
	var v uint32
	if t.Slots.Slot1 {
		v |= 0b0001
	}
	if t.Slots.Slot2 {
		v |= 0b0010
	}
	if t.Slots.Slot3 {
		v |= 0b0100
	}
	if t.Slots.Slot4 {
		v |= 0b1000
	}
	w.WriteInt(v, 4)
}
