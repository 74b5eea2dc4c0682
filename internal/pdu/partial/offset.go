package partial

import "github.com/dbehnke/tetra-corebs/internal/codec"

// Offset is the 2-bit carrier frequency offset from the nominal raster.
type Offset int

const (
	NoOffset Offset = iota
	Plus6_25kHz
	Minus6_25kHz
	Plus12_5kHz
)

func DecodeOffset(r *codec.Reader) Offset {
	return Offset(r.ReadInt(2))
}

func (o Offset) Encode(w *codec.Writer) {
	w.WriteInt(uint32(o), 2)
}
