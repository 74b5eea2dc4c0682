package pdu

import (
	"testing"

	"github.com/dbehnke/tetra-corebs/internal/codec"
	"github.com/dbehnke/tetra-corebs/internal/pdu/partial"
)

func TestMACEndRoundTripNoOptionalFields(t *testing.T) {
	m := MACEnd{
		FillBitIndication:       true,
		GrantIsOnCurrentChannel: false,
		Length:                  partial.Length{Kind: partial.LengthStartOfFragmentation},
	}
	w := codec.NewWriter()
	m.Encode(w)
	r := codec.NewReader(w.Done())
	got := DecodeMACEnd(r)
	if got.FillBitIndication != m.FillBitIndication || got.Length != m.Length {
		t.Fatalf("got %+v, want %+v", got, m)
	}
	if got.SlotGranting != nil || got.ChannelAllocation != nil {
		t.Fatal("expected both optional fields absent")
	}
}

func TestMACEndRoundTripWithSlotGranting(t *testing.T) {
	sg := partial.SlotGranting{
		CapacityAllocation: partial.CapacityAllocation{Kind: partial.CapacitySlots, Slots: 2},
		GrantingDelay:      partial.GrantingDelay{Kind: partial.GrantAtNextOpportunity},
	}
	m := MACEnd{Length: partial.Length{Kind: partial.LengthOctets, Octets: 5}, SlotGranting: &sg}
	w := codec.NewWriter()
	m.Encode(w)
	r := codec.NewReader(w.Done())
	got := DecodeMACEnd(r)
	if got.SlotGranting == nil || *got.SlotGranting != sg {
		t.Fatalf("got %+v, want SlotGranting=%+v", got, sg)
	}
}

func TestMACFragRoundTrip(t *testing.T) {
	m := MACFrag{FillBitIndication: true}
	w := codec.NewWriter()
	m.Encode(w)
	r := codec.NewReader(w.Done())
	if got := DecodeMACFrag(r); got.FillBitIndication != m.FillBitIndication {
		t.Fatalf("got %+v, want %+v", got, m)
	}
}
