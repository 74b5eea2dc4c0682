// Package codec implements the bit-granular sequential reader/writer and
// the optional-field (O-bit) convention used by every MAC PDU in this
// module.
package codec

import (
	"fmt"

	"github.com/dbehnke/tetra-corebs/internal/bits"
)

// Reader is a sequential forward cursor over an immutable bit buffer.
// Reading past the end of the buffer is a programmer error and panics,
// matching the fatal-on-structural-violation policy for fixed-format
// decoders.
type Reader struct {
	data     *bits.Buffer
	position int
}

// NewReader wraps buf for sequential decoding.
func NewReader(buf *bits.Buffer) *Reader {
	return &Reader{data: buf}
}

// Position returns the current read cursor, in bits from the start.
func (r *Reader) Position() int {
	return r.position
}

// CountRemaining returns the number of unread bits.
func (r *Reader) CountRemaining() int {
	return r.data.Len() - r.position
}

func (r *Reader) boundsCheck(n int) {
	if r.position+n > r.data.Len() {
		panic(fmt.Sprintf("codec: read past end of buffer: position=%d n=%d len=%d", r.position, n, r.data.Len()))
	}
}

// ReadInt reads n bits (1 <= n <= 32) as a big-endian unsigned integer.
func (r *Reader) ReadInt(n int) uint32 {
	if n < 1 || n > 32 {
		panic(fmt.Sprintf("codec: ReadInt: n=%d out of range 1..32", n))
	}
	r.boundsCheck(n)
	v := uint32(r.data.LoadUint(r.position, n))
	r.position += n
	return v
}

// ReadBool reads a single bit as a boolean.
func (r *Reader) ReadBool() bool {
	r.boundsCheck(1)
	v := r.data.Get(r.position)
	r.position++
	return v
}

// Read returns the next n bits as a fresh sub-sequence, advancing the
// cursor.
func (r *Reader) Read(n int) *bits.Buffer {
	r.boundsCheck(n)
	out := r.data.Slice(r.position, r.position+n)
	r.position += n
	return out
}

// ReadRest returns every remaining bit.
func (r *Reader) ReadRest() *bits.Buffer {
	return r.Read(r.CountRemaining())
}

// Skip advances the cursor by n bits without returning them.
func (r *Reader) Skip(n int) {
	r.boundsCheck(n)
	r.position += n
}

// ReadOptional reads the O-bit presence flag, then conditionally
// decodes the payload via decode. ok is false when the field was absent.
func ReadOptional[T any](r *Reader, decode func(*Reader) T) (T, bool) {
	var zero T
	if !r.ReadBool() {
		return zero, false
	}
	return decode(r), true
}

// Writer is a monotonic append-only bit sequence builder.
type Writer struct {
	data *bits.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{data: bits.New()}
}

// Len returns the number of bits written so far.
func (w *Writer) Len() int {
	return w.data.Len()
}

// WriteInt appends the low `size` bits of value, big-endian. Values that
// do not fit in size bits are a programmer error and panic.
func (w *Writer) WriteInt(value uint32, size int) {
	if size < 1 || size > 32 {
		panic(fmt.Sprintf("codec: WriteInt: size=%d out of range 1..32", size))
	}
	if size < 32 && value >= (1<<uint(size)) {
		panic(fmt.Sprintf("codec: WriteInt: value=%d does not fit in %d bits", value, size))
	}
	w.data.AppendUint(size, uint64(value))
}

// WriteBool appends a single bit.
func (w *Writer) WriteBool(value bool) {
	w.data.Push(value)
}

// Write appends an entire sub-sequence.
func (w *Writer) Write(b *bits.Buffer) {
	w.data.Extend(b)
}

// WriteOptional writes the O-bit presence convention: a `1` bit followed
// by encode(w, *value) when value is non-nil, or a single `0` bit when
// value is nil.
func WriteOptional[T any](w *Writer, value *T, encode func(*Writer, T)) {
	if value == nil {
		w.WriteBool(false)
		return
	}
	w.WriteBool(true)
	encode(w, *value)
}

// Done returns the accumulated bit sequence.
func (w *Writer) Done() *bits.Buffer {
	return w.data
}

// FillBitCapacity names the unit a fill-bits capacity is expressed in.
type FillBitCapacity struct {
	Octets int
	Bits   int
}

func (c FillBitCapacity) bitLen() int {
	return c.Octets*8 + c.Bits
}

// AddFillBits appends to buf, per ETSI EN 300 392-2 clause 23.4.2.2: if
// buf is already at or beyond capacity, nothing is appended; otherwise a
// single `1` bit is appended followed by zeros until capacity is exactly
// met. Returns the number of bits appended.
func AddFillBits(buf *bits.Buffer, capacity FillBitCapacity) int {
	target := capacity.bitLen()
	originalLen := buf.Len()
	if originalLen >= target {
		return 0
	}
	buf.Push(true)
	for buf.Len() < target {
		buf.Push(false)
	}
	return buf.Len() - originalLen
}
