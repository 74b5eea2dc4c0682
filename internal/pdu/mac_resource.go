package pdu

import (
	"fmt"

	"github.com/dbehnke/tetra-corebs/internal/codec"
	"github.com/dbehnke/tetra-corebs/internal/pdu/partial"
)

// MACResource is the MAC-RESOURCE PDU: a resource grant addressed to an
// MS, optionally carrying power control, slot granting or channel
// allocation, followed by a TM-SDU payload.
type MACResource struct {
	FillBitIndication        bool
	GrantIsOnCurrentChannel  bool
	EncryptionMode           uint32
	RandomAccessAcknowledged bool
	Length                   partial.Length
	Address                  partial.Address
	PowerControl             *partial.PowerControl
	SlotGranting             *partial.SlotGranting
	ChannelAllocation        *partial.ChannelAllocation
	Payload                  *codec.Writer // TM-SDU bits, appended verbatim after the header
}

// NullMACResource is the all-absent MAC-RESOURCE used to fill a slot
// with no traffic to send.
func NullMACResource() MACResource {
	return MACResource{Length: partial.Length{Kind: partial.LengthReserved}, Address: partial.Address{Kind: partial.NullPDU}}
}

func DecodeMACResource(r *codec.Reader) MACResource {
	if t := decodeDownlinkMACPDUType(r); t != TypeMACResource {
		panic(fmt.Sprintf("pdu: MACResource: unexpected PDU type %d", t))
	}
	m := MACResource{
		FillBitIndication:        r.ReadBool(),
		GrantIsOnCurrentChannel:  r.ReadBool(),
		EncryptionMode:           r.ReadInt(2),
		RandomAccessAcknowledged: r.ReadBool(),
		Length:                   partial.DecodeLength(r),
		Address:                  partial.DecodeAddress(r),
	}
	if pc, ok := codec.ReadOptional(r, partial.DecodePowerControl); ok {
		m.PowerControl = &pc
	}
	if sg, ok := codec.ReadOptional(r, partial.DecodeSlotGranting); ok {
		m.SlotGranting = &sg
	}
	if ca, ok := codec.ReadOptional(r, partial.DecodeChannelAllocation); ok {
		m.ChannelAllocation = &ca
	}
	return m
}

func (m MACResource) Encode(w *codec.Writer) {
	TypeMACResource.encode(w)
	w.WriteBool(m.FillBitIndication)
	w.WriteBool(m.GrantIsOnCurrentChannel)
	w.WriteInt(m.EncryptionMode, 2)
	w.WriteBool(m.RandomAccessAcknowledged)
	m.Length.Encode(w)
	m.Address.Encode(w)
	codec.WriteOptional(w, m.PowerControl, func(w *codec.Writer, v partial.PowerControl) { v.Encode(w) })
	codec.WriteOptional(w, m.SlotGranting, func(w *codec.Writer, v partial.SlotGranting) { v.Encode(w) })
	codec.WriteOptional(w, m.ChannelAllocation, func(w *codec.Writer, v partial.ChannelAllocation) { v.Encode(w) })
	if m.Payload != nil {
		w.Write(m.Payload.Done())
	}
}
