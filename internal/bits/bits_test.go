package bits

import "testing"

func TestFromBitString(t *testing.T) {
	b := FromBitString("0110 1010")
	if b.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", b.Len())
	}
	want := []bool{false, true, true, false, true, false, true, false}
	for i, w := range want {
		if b.Get(i) != w {
			t.Errorf("Get(%d) = %v, want %v", i, b.Get(i), w)
		}
	}
}

func TestFromBitStringInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on invalid character")
		}
	}()
	FromBitString("012")
}

func TestLoadStoreUint(t *testing.T) {
	b := NewZeros(16)
	b.StoreUint(0, 16, 0xDEF1)
	if got := b.LoadUint(0, 16); got != 0xDEF1 {
		t.Fatalf("LoadUint = %#x, want 0xdef1", got)
	}
}

func TestAppendUint(t *testing.T) {
	b := New()
	b.AppendUint(10, 234)
	b.AppendUint(14, 30)
	b.AppendUint(6, 17)
	b.AppendUint(2, 0b11)
	if b.Len() != 32 {
		t.Fatalf("Len() = %d, want 32", b.Len())
	}
	if got := b.LoadUint(0, 32); got != 0x3A801E47 {
		t.Fatalf("LoadUint = %#x, want 0x3a801e47", got)
	}
}

func TestSliceSplice(t *testing.T) {
	b := FromBitString("11110000")
	s := b.Slice(2, 6)
	if s.String() != "1100" {
		t.Fatalf("Slice = %q, want 1100", s.String())
	}
	b.Splice(0, FromBitString("0000"))
	if b.String() != "00000000" {
		t.Fatalf("after Splice = %q", b.String())
	}
}

func TestEqual(t *testing.T) {
	a := FromBitString("101")
	b := FromBitString("101")
	c := FromBitString("100")
	if !a.Equal(b) {
		t.Error("expected equal")
	}
	if a.Equal(c) {
		t.Error("expected not equal")
	}
}

func TestClone(t *testing.T) {
	a := FromBitString("101")
	c := a.Clone()
	c.Set(0, false)
	if a.Get(0) != true {
		t.Error("Clone should not alias original")
	}
}
