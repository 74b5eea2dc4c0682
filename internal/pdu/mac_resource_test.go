package pdu

import (
	"testing"

	"github.com/dbehnke/tetra-corebs/internal/bits"
	"github.com/dbehnke/tetra-corebs/internal/codec"
	"github.com/dbehnke/tetra-corebs/internal/pdu/partial"
)

func TestDecodeMACResourceScenario(t *testing.T) {
	buf := bits.FromBitString(
		"00" + // PDU type
			"1" + // fill bit indication
			"0" + // position of grant
			"00" + // encryption mode
			"0" + // random access
			"001101" + // length (thirteen octets)
			"001" + // address type (SSI)
			"000000000000010000000010" + // address (ten twenty six)
			"0" + // power control (absent)
			"0" + // slot granting (no grant)
			"0" + // channel allocation (none)
			"00011010010000100000" +
			"00000000000000000010" +
			"01110101010110001000" +
			"00000000000010000",
	)
	r := codec.NewReader(buf)
	pdu := DecodeMACResource(r)

	if !pdu.FillBitIndication {
		t.Error("FillBitIndication = false, want true")
	}
	if pdu.GrantIsOnCurrentChannel {
		t.Error("GrantIsOnCurrentChannel = true, want false")
	}
	if pdu.Length != (partial.Length{Kind: partial.LengthOctets, Octets: 13}) {
		t.Errorf("Length = %+v, want Octets(13)", pdu.Length)
	}
	if pdu.Address != (partial.Address{Kind: partial.SSI, Value: 1026}) {
		t.Errorf("Address = %+v, want SSI(1026)", pdu.Address)
	}
	if pdu.PowerControl != nil || pdu.SlotGranting != nil || pdu.ChannelAllocation != nil {
		t.Error("expected all optional fields absent")
	}
}

func TestEncodeMACResourceScenario(t *testing.T) {
	pdu := MACResource{
		FillBitIndication:       true,
		GrantIsOnCurrentChannel: false,
		EncryptionMode:          0,
		Length:                  partial.Length{Kind: partial.LengthOctets, Octets: 32},
		Address:                 partial.Address{Kind: partial.SSI, Value: 1026},
	}
	w := codec.NewWriter()
	pdu.Encode(w)

	want := bits.FromBitString("0010000100000001000000000000010000000010000")
	if w.Done().String() != want.String() {
		t.Fatalf("encode mismatch:\ngot  %s\nwant %s", w.Done().String(), want.String())
	}
}

func TestNullMACResourceRoundTrip(t *testing.T) {
	pdu := NullMACResource()
	w := codec.NewWriter()
	pdu.Encode(w)
	r := codec.NewReader(w.Done())
	got := DecodeMACResource(r)
	if got.Length.Kind != partial.LengthReserved {
		t.Errorf("Length.Kind = %v, want LengthReserved", got.Length.Kind)
	}
	if got.Address.Kind != partial.NullPDU {
		t.Errorf("Address.Kind = %v, want NullPDU", got.Address.Kind)
	}
}
