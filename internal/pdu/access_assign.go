package pdu

import (
	"fmt"

	"github.com/dbehnke/tetra-corebs/internal/codec"
)

// AccessCode is the 2-bit random-access code an AccessField governs.
type AccessCode int

const (
	AccessCodeA AccessCode = iota
	AccessCodeB
	AccessCodeC
	AccessCodeD
)

// BaseFrameLength is the 4-bit subslot/frame-length value of an
// AccessField.
type BaseFrameLength int

const (
	ReservedSubslot BaseFrameLength = iota
	CLCHSubslot
	OngoingFrame
	Subslots1
	Subslots2
	Subslots3
	Subslots4
	Subslots5
	Subslots6
	Subslots8
	Subslots10
	Subslots12
	Subslots16
	Subslots20
	Subslots24
	Subslots32
)

// AccessField is an ACCESS-ASSIGN access-code/frame-length pair.
type AccessField struct {
	AccessCode      AccessCode
	BaseFrameLength BaseFrameLength
}

func decodeAccessField(r *codec.Reader) AccessField {
	return AccessField{
		AccessCode:      AccessCode(r.ReadInt(2)),
		BaseFrameLength: BaseFrameLength(r.ReadInt(4)),
	}
}

func decodeDownlinkUsageMarker(r *codec.Reader) DownlinkUsageMarker {
	switch v := r.ReadInt(6); v {
	case 0b000000:
		return DownlinkUsageMarker{Kind: UsageUnallocated}
	case 0b000001:
		return DownlinkUsageMarker{Kind: UsageAssignedControl}
	case 0b000010:
		return DownlinkUsageMarker{Kind: UsageCommonControl}
	default:
		return DownlinkUsageMarker{Kind: UsageTraffic, Traffic: v}
	}
}

func decodeUplinkUsageMarker(r *codec.Reader) UplinkUsageMarker {
	if v := r.ReadInt(6); v != 0 {
		return UplinkUsageMarker{Traffic: v}
	}
	return UplinkUsageMarker{Unallocated: true}
}

func (a AccessField) encode(w *codec.Writer) {
	w.WriteInt(uint32(a.AccessCode), 2)
	w.WriteInt(uint32(a.BaseFrameLength), 4)
}

// DownlinkUsageMarkerKind distinguishes a usage marker's reserved
// special values from an explicit traffic marker.
type DownlinkUsageMarkerKind int

const (
	UsageUnallocated DownlinkUsageMarkerKind = iota
	UsageAssignedControl
	UsageCommonControl
	UsageTraffic
)

// DownlinkUsageMarker is ACCESS-ASSIGN's 6-bit downlink usage marker.
type DownlinkUsageMarker struct {
	Kind    DownlinkUsageMarkerKind
	Traffic uint32 // populated for UsageTraffic, must be > 0b000011
}

func (m DownlinkUsageMarker) encode(w *codec.Writer) {
	switch m.Kind {
	case UsageUnallocated:
		w.WriteInt(0b000000, 6)
	case UsageAssignedControl:
		w.WriteInt(0b000001, 6)
	case UsageCommonControl:
		w.WriteInt(0b000010, 6)
	case UsageTraffic:
		if m.Traffic <= 0b000011 {
			panic("pdu: downlink traffic usage marker collides with a reserved marker")
		}
		w.WriteInt(m.Traffic, 6)
	default:
		panic(fmt.Sprintf("pdu: unknown downlink usage marker kind %d", m.Kind))
	}
}

// UplinkUsageMarker is ACCESS-ASSIGN's 6-bit uplink usage marker.
type UplinkUsageMarker struct {
	Unallocated bool
	Traffic     uint32
}

func (m UplinkUsageMarker) encode(w *codec.Writer) {
	if m.Unallocated {
		w.WriteInt(0b000000, 6)
		return
	}
	if m.Traffic <= 0b000011 {
		panic("pdu: uplink traffic usage marker collides with a reserved marker")
	}
	w.WriteInt(m.Traffic, 6)
}

// NormalFrameKind is ACCESS-ASSIGN's 2-bit variant selector for frames
// 1-17.
type NormalFrameKind int

const (
	NormalCommonCommon NormalFrameKind = iota
	NormalDefinedCommonAndAssigned
	NormalDefinedAssignedOnly
	NormalDefinedDefined
)

// AccessAssignNormalFrame is ACCESS-ASSIGN as carried in frames 1-17.
type AccessAssignNormalFrame struct {
	Kind                NormalFrameKind
	AccessField1        AccessField
	AccessField2        AccessField
	DownlinkUsageMarker DownlinkUsageMarker
	UplinkUsageMarker   UplinkUsageMarker
}

func decodeAccessAssignNormalFrame(r *codec.Reader) AccessAssignNormalFrame {
	switch kind := NormalFrameKind(r.ReadInt(2)); kind {
	case NormalCommonCommon:
		return AccessAssignNormalFrame{Kind: kind, AccessField1: decodeAccessField(r), AccessField2: decodeAccessField(r)}
	case NormalDefinedCommonAndAssigned, NormalDefinedAssignedOnly:
		return AccessAssignNormalFrame{Kind: kind, DownlinkUsageMarker: decodeDownlinkUsageMarker(r), AccessField1: decodeAccessField(r)}
	case NormalDefinedDefined:
		return AccessAssignNormalFrame{Kind: kind, DownlinkUsageMarker: decodeDownlinkUsageMarker(r), UplinkUsageMarker: decodeUplinkUsageMarker(r)}
	default:
		panic(fmt.Sprintf("pdu: unknown normal-frame access-assign kind %d", kind))
	}
}

func (a AccessAssignNormalFrame) encode(w *codec.Writer) {
	w.WriteInt(uint32(a.Kind), 2)
	switch a.Kind {
	case NormalCommonCommon:
		a.AccessField1.encode(w)
		a.AccessField2.encode(w)
	case NormalDefinedCommonAndAssigned, NormalDefinedAssignedOnly:
		a.DownlinkUsageMarker.encode(w)
		a.AccessField1.encode(w)
	case NormalDefinedDefined:
		a.DownlinkUsageMarker.encode(w)
		a.UplinkUsageMarker.encode(w)
	default:
		panic(fmt.Sprintf("pdu: unknown normal-frame access-assign kind %d", a.Kind))
	}
}

// ControlFrameKind is ACCESS-ASSIGN's 2-bit variant selector for frame
// 18 (the control frame, where downlink is always common control).
type ControlFrameKind int

const (
	ControlUplinkCommonOnly ControlFrameKind = iota
	ControlUplinkCommonAndAssigned
	ControlUplinkAssignedOnly
	ControlUplinkCommonAndAssignedTraffic
)

// AccessAssignControlFrame is ACCESS-ASSIGN as carried in frame 18.
type AccessAssignControlFrame struct {
	Kind              ControlFrameKind
	AccessField1      AccessField
	AccessField2      AccessField
	AccessField       AccessField
	UplinkUsageMarker UplinkUsageMarker
}

func decodeAccessAssignControlFrame(r *codec.Reader) AccessAssignControlFrame {
	switch kind := ControlFrameKind(r.ReadInt(2)); kind {
	case ControlUplinkCommonOnly, ControlUplinkCommonAndAssigned, ControlUplinkAssignedOnly:
		return AccessAssignControlFrame{Kind: kind, AccessField1: decodeAccessField(r), AccessField2: decodeAccessField(r)}
	case ControlUplinkCommonAndAssignedTraffic:
		return AccessAssignControlFrame{Kind: kind, AccessField: decodeAccessField(r), UplinkUsageMarker: decodeUplinkUsageMarker(r)}
	default:
		panic(fmt.Sprintf("pdu: unknown control-frame access-assign kind %d", kind))
	}
}

func (a AccessAssignControlFrame) encode(w *codec.Writer) {
	w.WriteInt(uint32(a.Kind), 2)
	switch a.Kind {
	case ControlUplinkCommonOnly, ControlUplinkCommonAndAssigned, ControlUplinkAssignedOnly:
		a.AccessField1.encode(w)
		a.AccessField2.encode(w)
	case ControlUplinkCommonAndAssignedTraffic:
		a.AccessField.encode(w)
		a.UplinkUsageMarker.encode(w)
	default:
		panic(fmt.Sprintf("pdu: unknown control-frame access-assign kind %d", a.Kind))
	}
}

// AccessAssign is the 14-bit AACH payload broadcast on every downlink
// slot, distinguishing normal frames (1-17) from the control frame (18).
type AccessAssign struct {
	IsControlFrame bool
	NormalFrame    AccessAssignNormalFrame
	ControlFrame   AccessAssignControlFrame
}

// DecodeAccessAssign decodes a 14-bit AACH payload. isControlFrame must
// be supplied by the caller from the current slot's TDMA position, since
// the variant bits alone cannot distinguish frame 18 from frames 1-17.
func DecodeAccessAssign(r *codec.Reader, isControlFrame bool) AccessAssign {
	if isControlFrame {
		return AccessAssign{IsControlFrame: true, ControlFrame: decodeAccessAssignControlFrame(r)}
	}
	return AccessAssign{NormalFrame: decodeAccessAssignNormalFrame(r)}
}

func (a AccessAssign) Encode(w *codec.Writer) {
	if a.IsControlFrame {
		a.ControlFrame.encode(w)
		return
	}
	a.NormalFrame.encode(w)
}
