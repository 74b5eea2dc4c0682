package partial

import (
	"fmt"

	"github.com/dbehnke/tetra-corebs/internal/codec"
)

// LengthKind distinguishes Length's non-octet-count special values.
type LengthKind int

const (
	LengthOctets LengthKind = iota
	LengthReserved
	LengthNullPDU
	LengthSecondHalfSlotStolen
	LengthStartOfFragmentation
)

// Length is the MAC header's 6-bit length indication field.
type Length struct {
	Kind   LengthKind
	Octets int
}

func DecodeLength(r *codec.Reader) Length {
	v := r.ReadInt(6)
	switch {
	case v == 0b000000 || v == 0b000001 || v == 0b000011:
		return Length{Kind: LengthReserved}
	case v == 0b000010:
		return Length{Kind: LengthNullPDU}
	case v >= 0b100011 && v <= 0b111101:
		return Length{Kind: LengthReserved}
	case v == 0b111110:
		return Length{Kind: LengthSecondHalfSlotStolen}
	case v == 0b111111:
		return Length{Kind: LengthStartOfFragmentation}
	default:
		return Length{Kind: LengthOctets, Octets: int(v)}
	}
}

func (l Length) Encode(w *codec.Writer) {
	switch l.Kind {
	case LengthReserved:
		w.WriteInt(0b000000, 6)
	case LengthNullPDU:
		w.WriteInt(0b000010, 6)
	case LengthSecondHalfSlotStolen:
		w.WriteInt(0b111110, 6)
	case LengthStartOfFragmentation:
		w.WriteInt(0b111111, 6)
	case LengthOctets:
		w.WriteInt(uint32(l.Octets), 6)
	default:
		panic(fmt.Sprintf("partial: unknown length kind %d", l.Kind))
	}
}
