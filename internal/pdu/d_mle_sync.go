package pdu

import (
	"github.com/dbehnke/tetra-corebs/internal/codec"
	"github.com/dbehnke/tetra-corebs/internal/pdu/partial"
)

// MLESync is the D-MLE-SYNC PDU: MLE-layer network identity and cell
// status carried inside SYNC's MAC payload.
type MLESync struct {
	MCC                    uint32
	MNC                    uint32
	NeighbourCellBroadcast partial.NeighbourCellBroadcast
	CellServiceLevel       partial.CellServiceLevel
	LateEntryInfo          partial.LateEntryInfo
}

func DecodeMLESync(r *codec.Reader) MLESync {
	return MLESync{
		MCC:                    r.ReadInt(10),
		MNC:                    r.ReadInt(14),
		NeighbourCellBroadcast: partial.DecodeNeighbourCellBroadcast(r),
		CellServiceLevel:       partial.DecodeCellServiceLevel(r),
		LateEntryInfo:          partial.DecodeLateEntryInfo(r),
	}
}

func (m MLESync) Encode(w *codec.Writer) {
	w.WriteInt(m.MCC, 10)
	w.WriteInt(m.MNC, 14)
	m.NeighbourCellBroadcast.Encode(w)
	m.CellServiceLevel.Encode(w)
	m.LateEntryInfo.Encode(w)
}
