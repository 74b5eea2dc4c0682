package pdu

import (
	"fmt"

	"github.com/dbehnke/tetra-corebs/internal/codec"
	"github.com/dbehnke/tetra-corebs/internal/pdu/partial"
)

// HyperframeOrCipherKeyKind selects between Sysinfo's two interpretations
// of its 17-bit trailing field.
type HyperframeOrCipherKeyKind int

const (
	HyperframeNumber HyperframeOrCipherKeyKind = iota
	CipherKeyIdentifier
)

// HyperframeOrCipherKey is Sysinfo's O-bit-selected hyperframe/CCK field.
type HyperframeOrCipherKey struct {
	Kind  HyperframeOrCipherKeyKind
	Value uint32
}

func decodeHyperframeOrCipherKey(r *codec.Reader) HyperframeOrCipherKey {
	if r.ReadBool() {
		return HyperframeOrCipherKey{Kind: CipherKeyIdentifier, Value: r.ReadInt(16)}
	}
	return HyperframeOrCipherKey{Kind: HyperframeNumber, Value: r.ReadInt(16)}
}

func (h HyperframeOrCipherKey) encode(w *codec.Writer) {
	w.WriteBool(h.Kind == CipherKeyIdentifier)
	w.WriteInt(h.Value, 16)
}

// TSModeBitmap is a 20-bit even/odd multiframe timeslot-mode map.
type TSModeBitmap [20]bool

func decodeTSModeBitmap(r *codec.Reader) TSModeBitmap {
	var b TSModeBitmap
	for i := range b {
		b[i] = r.ReadBool()
	}
	return b
}

func (b TSModeBitmap) encode(w *codec.Writer) {
	for _, bit := range b {
		w.WriteBool(bit)
	}
}

// ImmediateKind distinguishes AccessCodeDefinition's always/never/after-N
// random-access timing modes.
type ImmediateKind int

const (
	AlwaysRandomise ImmediateKind = iota
	AfterFrames
	ImmediateAccess
)

// Immediate is AccessCodeDefinition's 4-bit random access timing field.
type Immediate struct {
	Kind  ImmediateKind
	After uint32 // populated for AfterFrames
}

func decodeImmediate(r *codec.Reader) Immediate {
	v := r.ReadInt(4)
	switch v {
	case 0b0000:
		return Immediate{Kind: AlwaysRandomise}
	case 0b1111:
		return Immediate{Kind: ImmediateAccess}
	default:
		return Immediate{Kind: AfterFrames, After: v}
	}
}

func (i Immediate) encode(w *codec.Writer) {
	switch i.Kind {
	case AlwaysRandomise:
		w.WriteInt(0b0000, 4)
	case ImmediateAccess:
		w.WriteInt(0b1111, 4)
	case AfterFrames:
		w.WriteInt(i.After, 4)
	default:
		panic(fmt.Sprintf("pdu: unknown immediate kind %d", i.Kind))
	}
}

// TimeslotPointer is AccessCodeDefinition's timeslot selector: either
// the downlink's own timeslot or an explicit set.
type TimeslotPointer struct {
	SameAsDownlink bool
	Timeslots      partial.Timeslots
}

func decodeTimeslotPointer(r *codec.Reader) TimeslotPointer {
	// Peek is not available on Reader; the source always precedes this
	// with the 4-bit value 0b0000 meaning "same as downlink", otherwise
	// the 4 bits are the timeslot bitmap itself, so decode it as a
	// bitmap and special-case all-zero.
	ts := partial.DecodeTimeslots(r)
	if !ts.Slot1 && !ts.Slot2 && !ts.Slot3 && !ts.Slot4 {
		return TimeslotPointer{SameAsDownlink: true}
	}
	return TimeslotPointer{Timeslots: ts}
}

func (t TimeslotPointer) encode(w *codec.Writer) {
	if t.SameAsDownlink {
		w.WriteInt(0b0000, 4)
		return
	}
	t.Timeslots.Encode(w)
}

// AccessCodeDefinition is SYSINFO's optional default-access-code-A
// element.
type AccessCodeDefinition struct {
	Immediate                Immediate
	WaitingTimeOpportunities uint32
	NumberOfAttempts         uint32
	FrameLengthX4            bool
	Timeslot                 TimeslotPointer
	MinimumPriority          uint32
}

func decodeAccessCodeDefinition(r *codec.Reader) AccessCodeDefinition {
	return AccessCodeDefinition{
		Immediate:                decodeImmediate(r),
		WaitingTimeOpportunities: r.ReadInt(4),
		NumberOfAttempts:         r.ReadInt(4),
		FrameLengthX4:            r.ReadBool(),
		Timeslot:                 decodeTimeslotPointer(r),
		MinimumPriority:          r.ReadInt(3),
	}
}

func (a AccessCodeDefinition) encode(w *codec.Writer) {
	a.Immediate.encode(w)
	w.WriteInt(a.WaitingTimeOpportunities, 4)
	w.WriteInt(a.NumberOfAttempts, 4)
	w.WriteBool(a.FrameLengthX4)
	a.Timeslot.encode(w)
	w.WriteInt(a.MinimumPriority, 3)
}

// OptionalFieldKind is SYSINFO's 2-bit optional-field discriminator.
type OptionalFieldKind int

const (
	TSModeEvenMultiframe OptionalFieldKind = iota
	TSModeOddMultiframe
	DefaultAccessCodeA
	ExtendedServicesBroadcast
)

// OptionalField is SYSINFO's trailing variant field.
type OptionalField struct {
	Kind       OptionalFieldKind
	TSMode     TSModeBitmap
	AccessCode AccessCodeDefinition
}

func decodeOptionalField(r *codec.Reader) OptionalField {
	switch OptionalFieldKind(r.ReadInt(2)) {
	case TSModeEvenMultiframe:
		return OptionalField{Kind: TSModeEvenMultiframe, TSMode: decodeTSModeBitmap(r)}
	case TSModeOddMultiframe:
		return OptionalField{Kind: TSModeOddMultiframe, TSMode: decodeTSModeBitmap(r)}
	case DefaultAccessCodeA:
		return OptionalField{Kind: DefaultAccessCodeA, AccessCode: decodeAccessCodeDefinition(r)}
	default:
		panic("pdu: extended services broadcast is not yet supported")
	}
}

func (o OptionalField) encode(w *codec.Writer) {
	w.WriteInt(uint32(o.Kind), 2)
	switch o.Kind {
	case TSModeEvenMultiframe, TSModeOddMultiframe:
		o.TSMode.encode(w)
	case DefaultAccessCodeA:
		o.AccessCode.encode(w)
	case ExtendedServicesBroadcast:
		panic("pdu: extended services broadcast is not yet supported")
	}
}

// NumberOfCommonSCCH is SYSINFO's 2-bit count of extra common SCCH
// timeslots.
type NumberOfCommonSCCH int

const (
	CommonSCCHNone NumberOfCommonSCCH = iota
	CommonSCCHTimeslot2
	CommonSCCHTimeslot23
	CommonSCCHTimeslot234
)

// RFParameters is SYSINFO's cell-access RF parameter block.
type RFParameters struct {
	MSTxPwrMaxCell       uint32
	RxLevAccessMin       uint32
	AccessParameter      uint32
	RadioDownlinkTimeout uint32
}

func decodeRFParameters(r *codec.Reader) RFParameters {
	return RFParameters{
		MSTxPwrMaxCell:       r.ReadInt(3),
		RxLevAccessMin:       r.ReadInt(4),
		AccessParameter:      r.ReadInt(4),
		RadioDownlinkTimeout: r.ReadInt(4),
	}
}

func (p RFParameters) encode(w *codec.Writer) {
	w.WriteInt(p.MSTxPwrMaxCell, 3)
	w.WriteInt(p.RxLevAccessMin, 4)
	w.WriteInt(p.AccessParameter, 4)
	w.WriteInt(p.RadioDownlinkTimeout, 4)
}

// Sysinfo is the BNCH's SYSINFO PDU: cell RF parameters and either the
// current hyperframe number or the common cipher key identifier.
type Sysinfo struct {
	MainCarrier           uint32
	FrequencyBand          uint32
	Offset                 partial.Offset
	DuplexSpacing          uint32
	Reverse                bool
	NumberOfCommonSCCH     NumberOfCommonSCCH
	RFParameters           RFParameters
	HyperframeOrCipherKey  HyperframeOrCipherKey
	OptionalField          OptionalField
}

func DecodeSysinfo(r *codec.Reader) Sysinfo {
	return Sysinfo{
		MainCarrier:          r.ReadInt(12),
		FrequencyBand:        r.ReadInt(4),
		Offset:               partial.DecodeOffset(r),
		DuplexSpacing:        r.ReadInt(3),
		Reverse:              r.ReadBool(),
		NumberOfCommonSCCH:   NumberOfCommonSCCH(r.ReadInt(2)),
		RFParameters:         decodeRFParameters(r),
		HyperframeOrCipherKey: decodeHyperframeOrCipherKey(r),
		OptionalField:        decodeOptionalField(r),
	}
}

func (s Sysinfo) Encode(w *codec.Writer) {
	w.WriteInt(s.MainCarrier, 12)
	w.WriteInt(s.FrequencyBand, 4)
	s.Offset.Encode(w)
	w.WriteInt(s.DuplexSpacing, 3)
	w.WriteBool(s.Reverse)
	w.WriteInt(uint32(s.NumberOfCommonSCCH), 2)
	s.RFParameters.encode(w)
	s.HyperframeOrCipherKey.encode(w)
	s.OptionalField.encode(w)
}
