// Package lower implements the Lower MAC: channel-codes the blocks the
// Upper MAC produced for a slot and maps the result onto a downlink
// burst.
//
// Grounded on original_source/src/lower_mac.rs's generate_dl_slot.
package lower

import (
	"errors"
	"fmt"

	"github.com/dbehnke/tetra-corebs/internal/burst"
	"github.com/dbehnke/tetra-corebs/internal/channel"
	"github.com/dbehnke/tetra-corebs/internal/mac/upper"
	"github.com/dbehnke/tetra-corebs/internal/tdma"
)

// ErrStealingNotSupported is returned for the STCH stealing-channel
// path, which neither this module nor original_source/src/lower_mac.rs
// implements (its own generate_dl_slot has
// `todo!("downlink stealing not implemented")` at the same spot).
var ErrStealingNotSupported = errors.New("lower: downlink stealing not supported")

// BurstKind distinguishes the two downlink continuous burst shapes a
// slot can produce.
type BurstKind int

const (
	SyncBurst BurstKind = iota
	NormalBurst
)

// Burst is one slot's fully assembled, 510-bit transmitted burst.
type Burst struct {
	Kind BurstKind
	Bits []bool
}

// MAC drives an upper.MAC to produce per-slot burst bits.
type MAC struct {
	upper *upper.MAC
}

// New returns a Lower MAC fed by the given Upper MAC.
func New(u *upper.MAC) *MAC {
	return &MAC{upper: u}
}

func encodeChannel(c upper.TMVUnitDataChannel) ([]bool, error) {
	return channel.Encode(c.LogicalChannel, c.MACBlock, c.ScramblingCode)
}

// GenerateSlot requests the Upper MAC's content for t, channel-codes it,
// and assembles the resulting burst.
func (m *MAC) GenerateSlot(t tdma.Time) (Burst, error) {
	blocks := m.upper.GenerateSlot(t)

	switch blocks.Primary.LogicalChannel {

	case channel.BroadcastSynchronisation:
		sb1, err := encodeChannel(blocks.Primary)
		if err != nil {
			return Burst{}, fmt.Errorf("lower: encode BSCH: %w", err)
		}
		if blocks.Secondary == nil {
			return Burst{}, errors.New("lower: BSCH provided without SB2 content")
		}
		sb2, err := encodeChannel(*blocks.Secondary)
		if err != nil {
			return Burst{}, fmt.Errorf("lower: encode SB2: %w", err)
		}
		return Burst{Kind: SyncBurst, Bits: burst.BuildSB(sb1, sb2, blocks.AACH)}, nil

	case channel.SignallingHalfDownlink:
		bkn1, err := encodeChannel(blocks.Primary)
		if err != nil {
			return Burst{}, fmt.Errorf("lower: encode BKN1: %w", err)
		}
		if blocks.Secondary == nil {
			return Burst{}, errors.New("lower: SCH/HD provided without BKN2 content")
		}
		bkn2, err := encodeChannel(*blocks.Secondary)
		if err != nil {
			return Burst{}, fmt.Errorf("lower: encode BKN2: %w", err)
		}
		return Burst{Kind: NormalBurst, Bits: burst.BuildNCDB(bkn1, bkn2, blocks.AACH, false)}, nil

	case channel.BroadcastNetwork:
		// BNCH is always mapped to BKN2; the secondary SCH/HD goes in BKN1.
		if blocks.Secondary == nil {
			return Burst{}, errors.New("lower: BNCH provided without BKN1 content")
		}
		bkn1, err := encodeChannel(*blocks.Secondary)
		if err != nil {
			return Burst{}, fmt.Errorf("lower: encode BKN1: %w", err)
		}
		bkn2, err := encodeChannel(blocks.Primary)
		if err != nil {
			return Burst{}, fmt.Errorf("lower: encode BKN2: %w", err)
		}
		return Burst{Kind: NormalBurst, Bits: burst.BuildNCDB(bkn1, bkn2, blocks.AACH, false)}, nil

	case channel.Stealing:
		return Burst{}, ErrStealingNotSupported

	case channel.SignallingFull:
		if blocks.Secondary != nil {
			return Burst{}, errors.New("lower: multiplexing requested but SCH/F provided")
		}
		full, err := encodeChannel(blocks.Primary)
		if err != nil {
			return Burst{}, fmt.Errorf("lower: encode SCH/F: %w", err)
		}
		return Burst{Kind: NormalBurst, Bits: burst.BuildNCDB(full[:216], full[216:], blocks.AACH, false)}, nil

	default:
		return Burst{}, fmt.Errorf("lower: invalid primary block type %v", blocks.Primary.LogicalChannel)
	}
}
