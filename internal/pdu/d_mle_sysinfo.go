package pdu

import (
	"github.com/dbehnke/tetra-corebs/internal/codec"
	"github.com/dbehnke/tetra-corebs/internal/pdu/partial"
)

// MLESysinfo is the D-MLE-SYSINFO PDU: MLE-layer location area and
// service-capability information carried inside SYSINFO's MAC payload.
type MLESysinfo struct {
	LocationArea      uint32
	SubscriberClass    uint32
	BSServiceDetails   partial.BSServiceDetails
}

func DecodeMLESysinfo(r *codec.Reader) MLESysinfo {
	return MLESysinfo{
		LocationArea:     r.ReadInt(14),
		SubscriberClass:  r.ReadInt(16),
		BSServiceDetails: partial.DecodeBSServiceDetails(r),
	}
}

func (m MLESysinfo) Encode(w *codec.Writer) {
	w.WriteInt(m.LocationArea, 14)
	w.WriteInt(m.SubscriberClass, 16)
	m.BSServiceDetails.Encode(w)
}
