// Package partial implements the MAC PDU field types shared across the
// downlink PDUs in the parent pdu package: addresses, timing pointers,
// power control, slot granting and the various broadcast sub-fields.
package partial

import "github.com/dbehnke/tetra-corebs/internal/codec"

// AddressKind is the 3-bit address type field that precedes every
// address value.
type AddressKind int

const (
	NullPDU AddressKind = iota
	SSI
	EventLabel
	USSI
	SMI
	SSIPlusEventLabel
	SSIPlusUsageMarker
	SMIPlusEventLabel
)

// Address is a MAC addressing field. Only the members relevant to Kind
// are populated; the others are zero.
type Address struct {
	Kind        AddressKind
	Value       uint32 // SSI, event label, USSI or SMI, depending on Kind
	EventLabel  uint32 // set alongside Value for SSIPlusEventLabel/SMIPlusEventLabel
	UsageMarker uint32 // set alongside Value for SSIPlusUsageMarker
}

func DecodeAddress(r *codec.Reader) Address {
	switch AddressKind(r.ReadInt(3)) {
	case NullPDU:
		return Address{Kind: NullPDU}
	case SSI:
		return Address{Kind: SSI, Value: r.ReadInt(24)}
	case EventLabel:
		return Address{Kind: EventLabel, Value: r.ReadInt(10)}
	case USSI:
		return Address{Kind: USSI, Value: r.ReadInt(24)}
	case SMI:
		return Address{Kind: SMI, Value: r.ReadInt(24)}
	case SSIPlusEventLabel:
		return Address{Kind: SSIPlusEventLabel, Value: r.ReadInt(24), EventLabel: r.ReadInt(10)}
	case SSIPlusUsageMarker:
		return Address{Kind: SSIPlusUsageMarker, Value: r.ReadInt(24), UsageMarker: r.ReadInt(10)}
	case SMIPlusEventLabel:
		return Address{Kind: SMIPlusEventLabel, Value: r.ReadInt(24), EventLabel: r.ReadInt(10)}
	default:
		panic("partial: unreachable address kind")
	}
}

func (a Address) Encode(w *codec.Writer) {
	w.WriteInt(uint32(a.Kind), 3)
	switch a.Kind {
	case NullPDU:
	case SSI, USSI, SMI:
		w.WriteInt(a.Value, 24)
	case EventLabel:
		w.WriteInt(a.Value, 10)
	case SSIPlusEventLabel, SMIPlusEventLabel:
		w.WriteInt(a.Value, 24)
		w.WriteInt(a.EventLabel, 10)
	case SSIPlusUsageMarker:
		w.WriteInt(a.Value, 24)
		w.WriteInt(a.UsageMarker, 10)
	}
}
