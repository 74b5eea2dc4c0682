package tdma

import "testing"

func TestIsControlFrame(t *testing.T) {
	tm := New(0, 17, 0, 0)
	if !tm.IsControlFrame() {
		t.Fatal("expected control frame")
	}
	tm2 := New(0, 16, 0, 0)
	if tm2.IsControlFrame() {
		t.Fatal("expected non-control frame")
	}
}

func TestUserFacingAccessors(t *testing.T) {
	tm := New(3, 17, 0, 0)
	if tm.Slot() != 4 {
		t.Errorf("Slot() = %d, want 4", tm.Slot())
	}
	if tm.Frame() != 18 {
		t.Errorf("Frame() = %d, want 18", tm.Frame())
	}
	if tm.Multiframe() != 1 {
		t.Errorf("Multiframe() = %d, want 1", tm.Multiframe())
	}
	if tm.Hyperframe() != 1 {
		t.Errorf("Hyperframe() = %d, want 1", tm.Hyperframe())
	}
}

func TestNextWrapsAtHyperframeBoundary(t *testing.T) {
	tm := New(3, 17, 59, 0)
	next := tm.Next()
	want := New(0, 0, 0, 1)
	if next != want {
		t.Fatalf("Next() = %+v, want %+v", next, want)
	}
}

func TestNextWrapsHyperframeAt65535(t *testing.T) {
	tm := New(3, 17, 59, HyperframeModulus-1)
	next := tm.Next()
	want := New(0, 0, 0, 0)
	if next != want {
		t.Fatalf("Next() = %+v, want %+v (hyperframe must wrap at 65535, not 65536)", next, want)
	}
}

func TestAsSlotNumberRoundTrip(t *testing.T) {
	tm := New(2, 5, 10, 3)
	n := tm.AsSlotNumber()
	back := FromSlotNumber(n)
	if back != tm {
		t.Fatalf("FromSlotNumber(AsSlotNumber()) = %+v, want %+v", back, tm)
	}
}

func TestNextAdvancesLinearIndexByOne(t *testing.T) {
	tm := New(1, 2, 3, 4)
	n := tm.AsSlotNumber()
	next := tm.Next()
	if next.AsSlotNumber() != n+1 {
		t.Fatalf("Next() linear index = %d, want %d", next.AsSlotNumber(), n+1)
	}
}
