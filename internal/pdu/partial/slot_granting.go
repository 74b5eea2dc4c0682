package partial

import (
	"fmt"

	"github.com/dbehnke/tetra-corebs/internal/codec"
)

// CapacityAllocationKind distinguishes CapacityAllocation's subslot
// special values from an explicit slot count.
type CapacityAllocationKind int

const (
	CapacitySlots CapacityAllocationKind = iota
	CapacityFirstSubslot
	CapacitySecondSubslot
)

// CapacityAllocation is SlotGranting's first field: how many slots (or
// which subslot) are granted.
type CapacityAllocation struct {
	Kind  CapacityAllocationKind
	Slots uint32
}

func DecodeCapacityAllocation(r *codec.Reader) CapacityAllocation {
	v := r.ReadInt(4)
	switch v {
	case 0b0000:
		return CapacityAllocation{Kind: CapacityFirstSubslot}
	case 0b1111:
		return CapacityAllocation{Kind: CapacitySecondSubslot}
	default:
		return CapacityAllocation{Kind: CapacitySlots, Slots: v}
	}
}

func (c CapacityAllocation) Encode(w *codec.Writer) {
	switch c.Kind {
	case CapacityFirstSubslot:
		w.WriteInt(0b0000, 4)
	case CapacitySecondSubslot:
		w.WriteInt(0b1111, 4)
	case CapacitySlots:
		w.WriteInt(c.Slots, 4)
	default:
		panic(fmt.Sprintf("partial: unknown capacity allocation kind %d", c.Kind))
	}
}

// GrantingDelayKind distinguishes GrantingDelay's special values from an
// explicit frame count.
type GrantingDelayKind int

const (
	GrantAtNextOpportunity GrantingDelayKind = iota
	GrantAfterFrames
	GrantFrame18
	GrantWaitForAnotherMessage
)

// GrantingDelay is SlotGranting's second field: when the grant takes
// effect.
type GrantingDelay struct {
	Kind   GrantingDelayKind
	Frames uint32 // populated for GrantAfterFrames
}

func DecodeGrantingDelay(r *codec.Reader) GrantingDelay {
	v := r.ReadInt(4)
	switch {
	case v == 0b0000:
		return GrantingDelay{Kind: GrantAtNextOpportunity}
	case v >= 0b0001 && v <= 0b1101:
		return GrantingDelay{Kind: GrantAfterFrames, Frames: v}
	case v == 0b1110:
		return GrantingDelay{Kind: GrantFrame18}
	default:
		return GrantingDelay{Kind: GrantWaitForAnotherMessage}
	}
}

func (g GrantingDelay) Encode(w *codec.Writer) {
	switch g.Kind {
	case GrantAtNextOpportunity:
		w.WriteInt(0b0000, 4)
	case GrantAfterFrames:
		w.WriteInt(g.Frames, 4)
	case GrantFrame18:
		w.WriteInt(0b1110, 4)
	case GrantWaitForAnotherMessage:
		w.WriteInt(0b1111, 4)
	default:
		panic(fmt.Sprintf("partial: unknown granting delay kind %d", g.Kind))
	}
}

// SlotGranting bundles the capacity and timing of a resource grant.
type SlotGranting struct {
	CapacityAllocation CapacityAllocation
	GrantingDelay      GrantingDelay
}

func DecodeSlotGranting(r *codec.Reader) SlotGranting {
	return SlotGranting{
		CapacityAllocation: DecodeCapacityAllocation(r),
		GrantingDelay:      DecodeGrantingDelay(r),
	}
}

func (s SlotGranting) Encode(w *codec.Writer) {
	s.CapacityAllocation.Encode(w)
	s.GrantingDelay.Encode(w)
}
