package pdu

import "github.com/dbehnke/tetra-corebs/internal/codec"

// DownlinkMACPDUType is the 2-bit type field that leads every downlink
// MAC PDU carried on a signalling channel.
type DownlinkMACPDUType int

const (
	TypeMACResource DownlinkMACPDUType = iota
	TypeFragment
	TypeBroadcast
)

func decodeDownlinkMACPDUType(r *codec.Reader) DownlinkMACPDUType {
	return DownlinkMACPDUType(r.ReadInt(2))
}

func (t DownlinkMACPDUType) encode(w *codec.Writer) {
	w.WriteInt(uint32(t), 2)
}

// BroadcastPDUType is the 2-bit sub-type of a Broadcast-typed MAC PDU.
type BroadcastPDUType int

const (
	BroadcastSysinfo BroadcastPDUType = iota
)

func decodeBroadcastPDUType(r *codec.Reader) BroadcastPDUType {
	return BroadcastPDUType(r.ReadInt(2))
}

func (t BroadcastPDUType) encode(w *codec.Writer) {
	w.WriteInt(uint32(t), 2)
}
