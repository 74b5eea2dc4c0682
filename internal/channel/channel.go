// Package channel composes the FEC primitives (block coder,
// Reed-Muller, convolutional+puncture, interleaver, scrambler) into the
// per-logical-channel type1->type5 encode/decode pipeline described by
// EN 300 392-2's channel-coding tables.
//
// Grounded on original_source/src/channels.rs's ChannelProperties table,
// with two corrections: tail bits are always the all-zero 4 bits the
// source's own channels.rs actually appends (not the unused literal
// in partial/tail_bits.rs), and the scrambler state is threaded through
// from the caller on every call rather than hardcoded.
package channel

import (
	"errors"
	"fmt"

	"github.com/dbehnke/tetra-corebs/internal/fec/blockcode"
	"github.com/dbehnke/tetra-corebs/internal/fec/convolutional"
	"github.com/dbehnke/tetra-corebs/internal/fec/interleaver"
	"github.com/dbehnke/tetra-corebs/internal/fec/reedmuller"
	"github.com/dbehnke/tetra-corebs/internal/fec/scrambler"
)

// Logical identifies a downlink logical channel type.
type Logical int

const (
	AccessAssignment Logical = iota
	BroadcastSynchronisation
	BroadcastNetwork
	SignallingHalfDownlink
	SignallingHalfUplink
	SignallingFull
	TrafficHighProtection
	TrafficLowProtection
	TrafficUnprotected
	Stealing
)

func (l Logical) String() string {
	switch l {
	case AccessAssignment:
		return "AccessAssignment"
	case BroadcastSynchronisation:
		return "BroadcastSynchronisation"
	case BroadcastNetwork:
		return "BroadcastNetwork"
	case SignallingHalfDownlink:
		return "SignallingHalfDownlink"
	case SignallingHalfUplink:
		return "SignallingHalfUplink"
	case SignallingFull:
		return "SignallingFull"
	case TrafficHighProtection:
		return "TrafficHighProtection"
	case TrafficLowProtection:
		return "TrafficLowProtection"
	case TrafficUnprotected:
		return "TrafficUnprotected"
	case Stealing:
		return "Stealing"
	default:
		return fmt.Sprintf("Logical(%d)", int(l))
	}
}

type initialCode int

const (
	noInitialCode initialCode = iota
	rmCode
	blockCodeKind
)

type interleaverKind int

const (
	noInterleaver interleaverKind = iota
	blockInterleaver
	overNBlocksInterleaver
)

// Profile is the fixed per-channel coding recipe.
type Profile struct {
	InitialCode     initialCode
	Puncturer       *convolutional.Puncturer
	TailBits        int
	Interleaver     interleaverKind
	InterleaverK    int
	InterleaverA    int
	Scrambling      bool
}

// ErrNotSupported is returned for channel paths the source leaves
// incomplete: the traffic channels that need over-N-blocks
// interleaving (see DESIGN.md Open Questions).
var ErrNotSupported = errors.New("channel: not yet supported")

var profiles = map[Logical]Profile{
	AccessAssignment:         {InitialCode: rmCode, TailBits: 0, Scrambling: true},
	BroadcastSynchronisation: {InitialCode: blockCodeKind, Puncturer: &convolutional.Rate2Over3, TailBits: 4, Interleaver: blockInterleaver, InterleaverK: 120, InterleaverA: 11, Scrambling: true},
	TrafficHighProtection:    {Puncturer: &convolutional.Rate148Over432, TailBits: 4, Interleaver: overNBlocksInterleaver, Scrambling: true},
	TrafficLowProtection:     {Puncturer: &convolutional.Rate292Over432, TailBits: 4, Interleaver: overNBlocksInterleaver, Scrambling: true},
	TrafficUnprotected:       {TailBits: 0, Scrambling: true},
	SignallingHalfDownlink:   {InitialCode: blockCodeKind, Puncturer: &convolutional.Rate2Over3, TailBits: 4, Interleaver: blockInterleaver, InterleaverK: 216, InterleaverA: 101, Scrambling: true},
	BroadcastNetwork:         {InitialCode: blockCodeKind, Puncturer: &convolutional.Rate2Over3, TailBits: 4, Interleaver: blockInterleaver, InterleaverK: 216, InterleaverA: 101, Scrambling: true},
	Stealing:                 {InitialCode: blockCodeKind, Puncturer: &convolutional.Rate2Over3, TailBits: 4, Interleaver: blockInterleaver, InterleaverK: 216, InterleaverA: 101, Scrambling: true},
	SignallingHalfUplink:     {InitialCode: blockCodeKind, Puncturer: &convolutional.Rate2Over3, TailBits: 4, Interleaver: blockInterleaver, InterleaverK: 168, InterleaverA: 13, Scrambling: true},
	SignallingFull:           {InitialCode: blockCodeKind, Puncturer: &convolutional.Rate2Over3, TailBits: 4, Interleaver: blockInterleaver, InterleaverK: 432, InterleaverA: 103, Scrambling: true},
}

// ProfileFor returns the fixed coding recipe for a logical channel.
func ProfileFor(l Logical) Profile {
	p, ok := profiles[l]
	if !ok {
		panic(fmt.Sprintf("channel: no profile for %v", l))
	}
	return p
}

func applyInitialCode(p Profile, type1 []bool) ([]bool, error) {
	switch p.InitialCode {
	case rmCode:
		return reedmuller.Encode(type1)
	case blockCodeKind:
		return blockcode.Encode(type1), nil
	default:
		return type1, nil
	}
}

// Encode runs the full type1->type5 chain for channel l using scrambler
// state s.
func Encode(l Logical, type1 []bool, s scrambler.State) ([]bool, error) {
	p := ProfileFor(l)
	if p.Interleaver == overNBlocksInterleaver {
		return nil, ErrNotSupported
	}

	type2, err := applyInitialCode(p, type1)
	if err != nil {
		return nil, err
	}

	if p.TailBits > 0 {
		type2 = append(type2, make([]bool, p.TailBits)...)
	}

	type3 := type2
	if p.Puncturer != nil {
		mother := convolutional.Encode(type2)
		type3 = p.Puncturer.Puncture(mother)
	}

	type4 := type3
	if p.Interleaver == blockInterleaver {
		type4, err = interleaver.Interleave(type3, p.InterleaverK, p.InterleaverA)
		if err != nil {
			return nil, err
		}
	}

	type5 := type4
	if p.Scrambling {
		type5 = scrambler.Scramble(type4, s)
	}
	return type5, nil
}

// Decode runs the strict inverse of Encode: descramble, deinterleave,
// depuncture + Viterbi decode, strip tail bits, then undo the initial
// code. motherLen is required to size the depunctured buffer and is the
// length of type2 (after the initial code and tail bits, before
// puncturing) times 4.
func Decode(l Logical, type5 []bool, s scrambler.State, motherLen int) ([]bool, error) {
	p := ProfileFor(l)
	if p.Interleaver == overNBlocksInterleaver {
		return nil, ErrNotSupported
	}

	type4 := type5
	if p.Scrambling {
		type4 = scrambler.Scramble(type5, s)
	}

	type3 := type4
	var err error
	if p.Interleaver == blockInterleaver {
		type3, err = interleaver.Deinterleave(type4, p.InterleaverK, p.InterleaverA)
		if err != nil {
			return nil, err
		}
	}

	type2 := type3
	if p.Puncturer != nil {
		mother, valid := p.Puncturer.Depuncture(type3, motherLen)
		type2 = convolutional.ViterbiDecode(mother, valid)
	}

	if p.TailBits > 0 {
		type2 = type2[:len(type2)-p.TailBits]
	}

	switch p.InitialCode {
	case rmCode:
		return reedmuller.Decode(type2)
	case blockCodeKind:
		return blockcode.Decode(type2)
	default:
		return type2, nil
	}
}
