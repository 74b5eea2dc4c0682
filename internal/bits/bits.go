// Package bits implements an MSB-first bit sequence, the common currency
// of the channel-coding pipeline: every coder, interleaver and codec in
// this module reads and writes through a Buffer rather than raw bytes.
package bits

import "strings"

// Buffer is an ordered sequence of binary values. Position 0 is the
// most-significant bit of the first octet when the sequence is viewed as
// a byte stream. Length is tracked in bits, not octets.
type Buffer struct {
	bits []bool
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{}
}

// NewZeros returns a Buffer of n zero bits.
func NewZeros(n int) *Buffer {
	return &Buffer{bits: make([]bool, n)}
}

// FromBools wraps an existing []bool without copying semantics beyond the
// slice header; callers should treat ownership as transferred.
func FromBools(b []bool) *Buffer {
	return &Buffer{bits: b}
}

// FromBitString parses a string of '0', '1' and whitespace characters.
// Any other character panics.
func FromBitString(s string) *Buffer {
	out := make([]bool, 0, len(s))
	for _, r := range s {
		switch r {
		case '0':
			out = append(out, false)
		case '1':
			out = append(out, true)
		case ' ', '\t', '\n', '\r':
			continue
		default:
			panic("bits: invalid character in bit string: " + string(r))
		}
	}
	return &Buffer{bits: out}
}

// Len returns the number of bits in the buffer.
func (b *Buffer) Len() int {
	return len(b.bits)
}

// Get returns the bit at position i, panicking if out of range.
func (b *Buffer) Get(i int) bool {
	return b.bits[i]
}

// Set overwrites the bit at position i, panicking if out of range.
func (b *Buffer) Set(i int, v bool) {
	b.bits[i] = v
}

// Push appends a single bit.
func (b *Buffer) Push(v bool) {
	b.bits = append(b.bits, v)
}

// Extend appends all bits of other to b, leaving other unmodified.
func (b *Buffer) Extend(other *Buffer) {
	b.bits = append(b.bits, other.bits...)
}

// ExtendBools appends raw bool values.
func (b *Buffer) ExtendBools(v []bool) {
	b.bits = append(b.bits, v...)
}

// Slice returns a new Buffer holding bits [start, end).
func (b *Buffer) Slice(start, end int) *Buffer {
	out := make([]bool, end-start)
	copy(out, b.bits[start:end])
	return &Buffer{bits: out}
}

// Splice overwrites bits [start, start+other.Len()) with other's contents.
func (b *Buffer) Splice(start int, other *Buffer) {
	copy(b.bits[start:start+other.Len()], other.bits)
}

// Bools returns the underlying bit slice. Callers must not retain a
// mutable alias across subsequent Buffer mutations.
func (b *Buffer) Bools() []bool {
	return b.bits
}

// LoadUint loads n bits starting at position start as a big-endian
// unsigned integer. n must be in 1..64.
func (b *Buffer) LoadUint(start, n int) uint64 {
	var v uint64
	for i := 0; i < n; i++ {
		v <<= 1
		if b.bits[start+i] {
			v |= 1
		}
	}
	return v
}

// StoreUint writes the low n bits of v starting at position start,
// most-significant bit first.
func (b *Buffer) StoreUint(start, n int, v uint64) {
	for i := 0; i < n; i++ {
		shift := uint(n - 1 - i)
		b.bits[start+i] = (v>>shift)&1 != 0
	}
}

// AppendUint appends n bits of v, big-endian.
func (b *Buffer) AppendUint(n int, v uint64) {
	start := len(b.bits)
	b.bits = append(b.bits, make([]bool, n)...)
	b.StoreUint(start, n, v)
}

// Equal reports whether two buffers hold identical length and content.
func (b *Buffer) Equal(other *Buffer) bool {
	if len(b.bits) != len(other.bits) {
		return false
	}
	for i := range b.bits {
		if b.bits[i] != other.bits[i] {
			return false
		}
	}
	return true
}

// String renders the buffer as a string of '0'/'1' characters.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(len(b.bits))
	for _, v := range b.bits {
		if v {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	out := make([]bool, len(b.bits))
	copy(out, b.bits)
	return &Buffer{bits: out}
}
