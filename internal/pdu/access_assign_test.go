package pdu

import (
	"testing"

	"github.com/dbehnke/tetra-corebs/internal/bits"
	"github.com/dbehnke/tetra-corebs/internal/codec"
)

func TestAccessAssignEncodeScenario(t *testing.T) {
	aa := AccessAssign{
		NormalFrame: AccessAssignNormalFrame{
			Kind:                NormalDefinedCommonAndAssigned,
			DownlinkUsageMarker: DownlinkUsageMarker{Kind: UsageCommonControl},
			AccessField1:        AccessField{AccessCode: AccessCodeA, BaseFrameLength: Subslots4},
		},
	}
	w := codec.NewWriter()
	aa.Encode(w)

	want := bits.FromBitString("01000010000110")
	if w.Done().String() != want.String() {
		t.Fatalf("encode mismatch:\ngot  %s\nwant %s", w.Done().String(), want.String())
	}
}

func TestAccessAssignRoundTrip(t *testing.T) {
	aa := AccessAssign{
		IsControlFrame: true,
		ControlFrame: AccessAssignControlFrame{
			Kind:         ControlUplinkCommonAndAssignedTraffic,
			AccessField:  AccessField{AccessCode: AccessCodeC, BaseFrameLength: Subslots8},
			UplinkUsageMarker: UplinkUsageMarker{Traffic: 10},
		},
	}
	w := codec.NewWriter()
	aa.Encode(w)
	r := codec.NewReader(w.Done())
	got := DecodeAccessAssign(r, true)
	if got != aa {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, aa)
	}
}

func TestAccessAssignDownlinkUsageMarkerPanicsOnReserved(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for reserved downlink usage marker")
		}
	}()
	m := DownlinkUsageMarker{Kind: UsageTraffic, Traffic: 0b000010}
	w := codec.NewWriter()
	m.encode(w)
}
