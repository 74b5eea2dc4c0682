package partial

import "github.com/dbehnke/tetra-corebs/internal/codec"

// AllocationType is ChannelAllocation's 2-bit replacement/addition mode.
type AllocationType int

const (
	Replacement AllocationType = iota
	Addition
	QuitAndGoTo
	ReplacePlus
)

func DecodeAllocationType(r *codec.Reader) AllocationType {
	return AllocationType(r.ReadInt(2))
}

func (a AllocationType) Encode(w *codec.Writer) {
	w.WriteInt(uint32(a), 2)
}

// Direction is a 2-bit uplink/downlink/both indicator used by extended
// channel allocation fields.
type Direction int

const (
	DirectionDownlink Direction = iota + 1
	DirectionUplink
	DirectionBoth
)

func DecodeDirection(r *codec.Reader) Direction {
	return Direction(r.ReadInt(2))
}

func (d Direction) Encode(w *codec.Writer) {
	w.WriteInt(uint32(d), 2)
}

// ChannelAllocation is the MAC-RESOURCE optional channel-allocation
// element. Only the allocation type and assigned timeslot are carried;
// the source's own struct leaves carrier number, monitoring pattern and
// reverse-operation fields commented out as unimplemented, so this
// module does too.
type ChannelAllocation struct {
	AllocationType   AllocationType
	TimeslotAssigned TimeslotAssigned
}

func DecodeChannelAllocation(r *codec.Reader) ChannelAllocation {
	return ChannelAllocation{
		AllocationType:   DecodeAllocationType(r),
		TimeslotAssigned: DecodeTimeslotAssigned(r),
	}
}

func (c ChannelAllocation) Encode(w *codec.Writer) {
	c.AllocationType.Encode(w)
	c.TimeslotAssigned.Encode(w)
}
