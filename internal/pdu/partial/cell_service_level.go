package partial

import "github.com/dbehnke/tetra-corebs/internal/codec"

// CellServiceLevel is D-MLE-SYNC's 2-bit cell load indication.
type CellServiceLevel int

const (
	CellLoadUnknown CellServiceLevel = iota
	LowCellLoad
	MediumCellLoad
	HighCellLoad
)

func DecodeCellServiceLevel(r *codec.Reader) CellServiceLevel {
	return CellServiceLevel(r.ReadInt(2))
}

func (c CellServiceLevel) Encode(w *codec.Writer) {
	w.WriteInt(uint32(c), 2)
}

// LateEntryInfo is D-MLE-SYNC's single-bit late-entry-supported flag.
type LateEntryInfo struct {
	LateEntrySupported bool
}

func DecodeLateEntryInfo(r *codec.Reader) LateEntryInfo {
	return LateEntryInfo{LateEntrySupported: r.ReadBool()}
}

func (l LateEntryInfo) Encode(w *codec.Writer) {
	w.WriteBool(l.LateEntrySupported)
}

// NeighbourCellBroadcast is D-MLE-SYNC's 2-bit neighbour-cell support
// indication.
//
// The source's own encoder writes d_nwrk_enquiry_supported for both
// bits, leaving d_nwrk_broadcast_supported dead; that is corrected here
// so both fields round-trip independently.
type NeighbourCellBroadcast struct {
	BroadcastSupported bool
	EnquirySupported   bool
}

func DecodeNeighbourCellBroadcast(r *codec.Reader) NeighbourCellBroadcast {
	return NeighbourCellBroadcast{
		BroadcastSupported: r.ReadBool(),
		EnquirySupported:   r.ReadBool(),
	}
}

func (n NeighbourCellBroadcast) Encode(w *codec.Writer) {
	w.WriteBool(n.BroadcastSupported)
	w.WriteBool(n.EnquirySupported)
}

// RandomAccessFlag is MAC-RESOURCE's single-bit acknowledgement flag.
type RandomAccessFlag int

const (
	Undefined RandomAccessFlag = iota
	Acknowledged
)

func DecodeRandomAccessFlag(r *codec.Reader) RandomAccessFlag {
	return RandomAccessFlag(r.ReadInt(1))
}

func (f RandomAccessFlag) Encode(w *codec.Writer) {
	w.WriteInt(uint32(f), 1)
}
