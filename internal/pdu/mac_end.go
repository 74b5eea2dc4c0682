package pdu

import (
	"github.com/dbehnke/tetra-corebs/internal/codec"
	"github.com/dbehnke/tetra-corebs/internal/pdu/partial"
)

// MACEnd is the MAC-END PDU: the final fragment of a multi-slot MAC-FRAG
// sequence, optionally re-granting the slot for further traffic.
type MACEnd struct {
	FillBitIndication       bool
	GrantIsOnCurrentChannel bool
	Length                  partial.Length
	SlotGranting            *partial.SlotGranting
	ChannelAllocation       *partial.ChannelAllocation
	Payload                 *codec.Writer
}

func DecodeMACEnd(r *codec.Reader) MACEnd {
	m := MACEnd{
		FillBitIndication:       r.ReadBool(),
		GrantIsOnCurrentChannel: r.ReadBool(),
		Length:                  partial.DecodeLength(r),
	}
	if sg, ok := codec.ReadOptional(r, partial.DecodeSlotGranting); ok {
		m.SlotGranting = &sg
	}
	if ca, ok := codec.ReadOptional(r, partial.DecodeChannelAllocation); ok {
		m.ChannelAllocation = &ca
	}
	return m
}

func (m MACEnd) Encode(w *codec.Writer) {
	w.WriteBool(m.FillBitIndication)
	w.WriteBool(m.GrantIsOnCurrentChannel)
	m.Length.Encode(w)
	codec.WriteOptional(w, m.SlotGranting, func(w *codec.Writer, v partial.SlotGranting) { v.Encode(w) })
	codec.WriteOptional(w, m.ChannelAllocation, func(w *codec.Writer, v partial.ChannelAllocation) { v.Encode(w) })
	if m.Payload != nil {
		w.Write(m.Payload.Done())
	}
}

// MACFrag is an intermediate MAC-FRAG PDU: a continuation fragment
// carrying no addressing or granting information of its own, only
// fill-bit indication and payload.
type MACFrag struct {
	FillBitIndication bool
	Payload           *codec.Writer
}

func DecodeMACFrag(r *codec.Reader) MACFrag {
	return MACFrag{FillBitIndication: r.ReadBool()}
}

func (m MACFrag) Encode(w *codec.Writer) {
	w.WriteBool(m.FillBitIndication)
	if m.Payload != nil {
		w.Write(m.Payload.Done())
	}
}
