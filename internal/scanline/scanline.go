// Package scanline implements the row-delta "Scanline" compressor used by
// EBD Modes 1, 3, and 5 (spec.md §4.3). It operates on already bit-packed
// rows, comparing each row against the previous one 8 bytes at a time.
//
// original_source/lib/scanline.py's reference implementation has a known
// bug: its per-byte loop does `flags << 1` as a no-op expression statement
// (the result is discarded) and relies on `flags += 1` alone, which packs
// the *count* of changed bytes into the low bits rather than a proper
// per-position bitmask. spec.md §4.3/§9 documents the corrected, intended
// behavior — bit i (MSB = bit 7) sieved directly to "byte i changed" — and
// that is what this package implements; see the first-row and delta-row
// flag tests in scanline_test.go.
//
// The row-buffer reuse pattern (one previous-row buffer taken from the
// pool and overwritten per row instead of reallocated) is adapted from the
// teacher package's internal/pool bucketed allocator.
package scanline

import "github.com/openxiino/ebd/internal/pool"

// groupSize is the number of bytes compared per flag byte.
const groupSize = 8

// Encoder holds the previous-row context for one Scanline stream. The
// zero value is not usable; construct with New.
type Encoder struct {
	rowStride int
	prev      []byte
	havePrev  bool
}

// New returns an Encoder for rows of the given byte stride.
func New(rowStride int) *Encoder {
	return &Encoder{rowStride: rowStride}
}

// Close returns the Encoder's row buffer to the pool. The Encoder must not
// be used afterward.
func (e *Encoder) Close() {
	if e.prev != nil {
		pool.Put(e.prev)
		e.prev = nil
	}
}

// EncodeRow compresses one row and appends the result to dst, returning
// the extended slice. Row length may be shorter than rowStride only for a
// stream's final row (spec.md §9's short-final-row contract); only the
// positions within the current row are compared against the previous one.
func (e *Encoder) EncodeRow(dst []byte, row []byte) []byte {
	if !e.havePrev {
		dst = encodeFirstRow(dst, row)
	} else {
		dst = encodeDeltaRow(dst, row, e.prev[:len(e.prev)])
	}
	e.storePrev(row)
	return dst
}

// storePrev copies row into the reusable previous-row buffer.
func (e *Encoder) storePrev(row []byte) {
	if cap(e.prev) < len(row) {
		if e.prev != nil {
			pool.Put(e.prev)
		}
		e.prev = pool.Get(len(row))
	}
	e.prev = e.prev[:len(row)]
	copy(e.prev, row)
	e.havePrev = true
}

// encodeFirstRow emits the first row verbatim: one 0xFF flag byte per
// aligned 8-byte group (a trailing short group gets a left-aligned
// k-bit-wide flag), followed by the group's bytes (spec.md §4.3).
func encodeFirstRow(dst []byte, row []byte) []byte {
	i := 0
	for i+groupSize <= len(row) {
		dst = append(dst, 0xFF)
		dst = append(dst, row[i:i+groupSize]...)
		i += groupSize
	}
	if k := len(row) - i; k > 0 {
		dst = append(dst, (0xFF<<(8-k))&0xFF)
		dst = append(dst, row[i:]...)
	}
	return dst
}

// encodeDeltaRow emits the per-group change-flag + changed-bytes encoding
// for a non-first row, comparing row against prev position by position.
func encodeDeltaRow(dst []byte, row []byte, prev []byte) []byte {
	i := 0
	for i+groupSize <= len(row) {
		dst = encodeGroup(dst, row[i:i+groupSize], prev[i:i+groupSize], groupSize)
		i += groupSize
	}
	if k := len(row) - i; k > 0 {
		dst = encodeGroup(dst, row[i:], prev[i:i+k], k)
	}
	return dst
}

// encodeGroup emits the flag byte and changed bytes for one group of n
// bytes (n == groupSize for an aligned group, or the trailing remainder).
// Bit 7 of the flag corresponds to the group's first byte; for a short
// trailing group the active bits are already the top n bits (positions
// 7 down to 8-n), left-aligned the same way encodeFirstRow's short-group
// flag is, so no further shift is needed.
func encodeGroup(dst []byte, cur, prev []byte, n int) []byte {
	var flags byte
	start := len(dst)
	dst = append(dst, 0) // placeholder for the flag byte
	for j := 0; j < n; j++ {
		if cur[j] != prev[j] {
			flags |= 1 << uint(groupSize-1-j)
			dst = append(dst, cur[j])
		}
	}
	dst[start] = flags
	return dst
}

// Compress splits data into rows of rowStride bytes (the final row may be
// shorter) and Scanline-encodes each row against the previous one,
// matching original_source/lib/scanline.py's compress_data_with_scanline
// wrapper. Width zero (rowStride <= 0) is invalid.
func Compress(data []byte, rowStride int) []byte {
	if rowStride <= 0 {
		return nil
	}
	enc := New(rowStride)
	defer enc.Close()

	out := make([]byte, 0, len(data)+len(data)/groupSize+8)
	for i := 0; i < len(data); i += rowStride {
		end := i + rowStride
		if end > len(data) {
			end = len(data)
		}
		out = enc.EncodeRow(out, data[i:end])
	}
	return out
}
