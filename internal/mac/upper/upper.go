// Package upper implements the Upper MAC: per-slot logical-channel
// selection and MAC PDU construction, handed to the Lower MAC as
// unencoded (type1) blocks ready for channel coding.
//
// Grounded on original_source/src/upper_mac.rs's UpperMAC::generate_slot
// and its generate_bnch/generate_bsch/generate_null_sch_hd helpers,
// restyled onto this module's own pdu/codec/channel packages.
package upper

import (
	"github.com/dbehnke/tetra-corebs/internal/channel"
	"github.com/dbehnke/tetra-corebs/internal/codec"
	"github.com/dbehnke/tetra-corebs/internal/fec/scrambler"
	"github.com/dbehnke/tetra-corebs/internal/pdu"
	"github.com/dbehnke/tetra-corebs/internal/pdu/partial"
	"github.com/dbehnke/tetra-corebs/internal/tdma"
)

// signallingCapacity is the type1 payload size shared by SCH/HD and BNCH
// (124 bits, per EN 300 392-2's channel-coding tables): the interleaver
// K=216 profiles in internal/channel all start from this capacity.
const signallingCapacity = 124

// Cell identifies the base station for scrambling and SYSINFO/SYNC
// content: MCC and MNC per spec.md §6, plus the colour code used both in
// SYNC and as part of every logical channel's scrambler seed.
type Cell struct {
	MCC        uint32
	MNC        uint32
	ColourCode uint32
}

func (c Cell) state() scrambler.State {
	return scrambler.NewState(c.MCC, c.MNC, c.ColourCode)
}

// TMVUnitDataChannel is one logical-channel block awaiting channel
// coding: its type1 bits, which logical channel carries it, and the
// scrambler state to key that channel's encode with.
type TMVUnitDataChannel struct {
	MACBlock       []bool
	LogicalChannel channel.Logical
	ScramblingCode scrambler.State
}

// TMVUnitData is a single slot's worth of work handed down to the Lower
// MAC: a primary block (which determines the resulting burst shape),
// an optional secondary block multiplexed alongside it, and the AACH
// bits broadcast in every slot regardless of content.
type TMVUnitData struct {
	Primary   TMVUnitDataChannel
	Secondary *TMVUnitDataChannel
	AACH      []bool
}

// MAC holds the upper MAC's static configuration: the broadcast content
// it repeats every time BNCH/BSCH map onto a slot.
type MAC struct {
	cell    Cell
	sysinfo pdu.Sysinfo
	mle     pdu.MLESysinfo
}

// New returns an Upper MAC configured with cell identity and broadcast
// SYSINFO/D-MLE-SYSINFO content.
func New(cell Cell, sysinfo pdu.Sysinfo, mle pdu.MLESysinfo) *MAC {
	return &MAC{cell: cell, sysinfo: sysinfo, mle: mle}
}

// controlFrameResidue computes (multiframe + slot) mod 4 from the raw
// 0-based TDMA counters, matching spec.md's scenario f
// (slot=3, frame=17, multiframe=0, hyperframe=0 -> residue 3 -> BSCH).
// original_source/src/upper_mac.rs computes this from its 1-based
// accessors instead; that divergence is deliberate here (see
// DESIGN.md) because the spec's concrete scenario is authoritative.
func controlFrameResidue(t tdma.Time) uint32 {
	return (t.Multiframe() - 1 + t.Slot() - 1) % 4
}

// slotShouldBeBNCH reports whether the Broadcast Network Channel maps
// onto this slot: only during the control frame, when (MN+TN)%4==1.
func (m *MAC) slotShouldBeBNCH(t tdma.Time) bool {
	return t.IsControlFrame() && controlFrameResidue(t) == 1
}

// slotShouldBeBSCH reports whether the Broadcast Synchronisation Channel
// maps onto this slot: only during the control frame, when
// (MN+TN)%4==3.
func (m *MAC) slotShouldBeBSCH(t tdma.Time) bool {
	return t.IsControlFrame() && controlFrameResidue(t) == 3
}

// generateNullSCHHD returns a 124-bit all-absent MAC-RESOURCE, used to
// fill a half-slot with no signalling content.
func (m *MAC) generateNullSCHHD() []bool {
	w := codec.NewWriter()
	pdu.NullMACResource().Encode(w)
	block := w.Done()
	codec.AddFillBits(block, codec.FillBitCapacity{Bits: signallingCapacity})
	return block.Bools()
}

// generateBNCH encodes the configured SYSINFO PDU followed by its
// D-MLE-SYSINFO payload, padded to the shared 124-bit signalling
// capacity.
func (m *MAC) generateBNCH() []bool {
	w := codec.NewWriter()
	m.sysinfo.Encode(w)
	m.mle.Encode(w)
	block := w.Done()
	codec.AddFillBits(block, codec.FillBitCapacity{Bits: signallingCapacity})
	return block.Bools()
}

// generateBSCH encodes the SYNC PDU for the current TDMA instant
// followed by its D-MLE-SYNC payload: exactly 60 bits, BSCH's own type1
// capacity, with no fill bits required.
func (m *MAC) generateBSCH(t tdma.Time) []bool {
	sync := pdu.Sync{
		SystemCode:       0,
		ColourCode:       m.cell.ColourCode,
		TimeslotNumber:   t.Slot() - 1,
		FrameNumber:      t.Frame(),
		MultiframeNumber: t.Multiframe(),
		SharingMode:      partial.ContinuousTransmission,
		TSReservedFrames: partial.Reserve1,
		UPlaneDTX:        false,
		Frame18Extension: false,
	}
	mle := pdu.MLESync{
		MCC: m.cell.MCC,
		MNC: m.cell.MNC,
	}

	w := codec.NewWriter()
	sync.Encode(w)
	mle.Encode(w)
	return w.Done().Bools()
}

// generateAACH builds the 14-bit ACCESS-ASSIGN PDU for the current slot
// and channel-codes it over AccessAssignment (RM(30,14) + scramble,
// yielding the 30-bit broadcast block every burst carries).
func (m *MAC) generateAACH(t tdma.Time) []bool {
	aa := pdu.AccessAssign{IsControlFrame: t.IsControlFrame()}
	if aa.IsControlFrame {
		aa.ControlFrame = pdu.AccessAssignControlFrame{Kind: pdu.ControlUplinkCommonOnly}
	} else {
		aa.NormalFrame = pdu.AccessAssignNormalFrame{Kind: pdu.NormalCommonCommon}
	}

	w := codec.NewWriter()
	aa.Encode(w)

	bb, err := channel.Encode(channel.AccessAssignment, w.Done().Bools(), m.cell.state())
	if err != nil {
		panic("upper: AACH encode: " + err.Error())
	}
	return bb
}

// GenerateSlot builds the logical-channel content for one TDMA slot,
// selecting BNCH, BSCH or a plain SCH/HD pair per
// original_source/src/upper_mac.rs's slot-mapping rules.
func (m *MAC) GenerateSlot(t tdma.Time) TMVUnitData {
	aach := m.generateAACH(t)

	if m.slotShouldBeBNCH(t) {
		return TMVUnitData{
			Primary: TMVUnitDataChannel{
				MACBlock:       m.generateBNCH(),
				LogicalChannel: channel.BroadcastNetwork,
				ScramblingCode: m.cell.state(),
			},
			Secondary: &TMVUnitDataChannel{
				MACBlock:       m.generateNullSCHHD(),
				LogicalChannel: channel.SignallingHalfDownlink,
				ScramblingCode: scrambler.NewState(0, 0, 0),
			},
			AACH: aach,
		}
	}

	if m.slotShouldBeBSCH(t) {
		return TMVUnitData{
			Primary: TMVUnitDataChannel{
				MACBlock:       m.generateBSCH(t),
				LogicalChannel: channel.BroadcastSynchronisation,
				ScramblingCode: scrambler.NewState(0, 0, 0),
			},
			Secondary: &TMVUnitDataChannel{
				MACBlock:       m.generateNullSCHHD(),
				LogicalChannel: channel.SignallingHalfDownlink,
				ScramblingCode: scrambler.NewState(0, 0, 0),
			},
			AACH: aach,
		}
	}

	null := m.generateNullSCHHD()
	return TMVUnitData{
		Primary: TMVUnitDataChannel{
			MACBlock:       null,
			LogicalChannel: channel.SignallingHalfDownlink,
			ScramblingCode: m.cell.state(),
		},
		Secondary: &TMVUnitDataChannel{
			MACBlock:       null,
			LogicalChannel: channel.SignallingHalfDownlink,
			ScramblingCode: m.cell.state(),
		},
		AACH: aach,
	}
}
