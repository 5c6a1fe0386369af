// Package mode9 implements EBD Mode 9's 2D lookback+RLE compressor for
// 8-bit palette-indexed color (spec.md §4.4) — the largest single piece
// of the pipeline. At each position it evaluates four candidate matches
// (a same-row run, and three previous-row lookbacks at horizontal offsets
// -1, 0, +1) and emits whichever compresses the most, falling back to a
// literal palette byte when none apply.
//
// The multi-candidate "try several match strategies, keep the longest"
// shape mirrors the teacher package's VP8L backward-reference generator
// (github.com/deepteams/webp's internal/lossless/encode_backward.go),
// adapted from that package's generic LZ77 hash-chain search (which hunts
// an unbounded window for any matching substring) down to EBD's fixed,
// tiny candidate set: exactly one same-row run plus three previous-row
// offsets, with no search required to find them.
package mode9

import (
	"github.com/openxiino/ebd/internal/pool"
	"github.com/openxiino/ebd/internal/wire"
)

// minExtraRepeats is the fewest repeats (beyond the mandatory leading
// literal) the RLE path will take. RLE's smallest direct opcode is RLE_2,
// so a run of only one extra repeat has no opcode to encode it and falls
// through to a lookback match or a plain literal instead.
const minExtraRepeats = 2

// Encoder holds the previous-row context for one Mode 9 color stream.
// The zero value is not usable; construct with New.
type Encoder struct {
	width    int
	prev     []byte
	havePrev bool
}

// New returns an Encoder for rows of the given pixel width.
func New(width int) *Encoder {
	return &Encoder{width: width}
}

// Close returns the Encoder's row buffer to the pool. The Encoder must not
// be used afterward.
func (e *Encoder) Close() {
	if e.prev != nil {
		pool.Put(e.prev)
		e.prev = nil
	}
}

// EncodeRow compresses one row of palette indices and appends the result
// to dst, returning the extended slice. Lookback matching is disabled
// while no previous row is held (the stream's first row).
func (e *Encoder) EncodeRow(dst []byte, row []byte) []byte {
	if e.havePrev {
		dst = encodeRow(dst, row, e.prev[:len(e.prev)])
	} else {
		dst = encodeRow(dst, row, nil)
	}
	e.storePrev(row)
	return dst
}

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

// lookbackOffsets lists the three previous-row horizontal offsets in
// priority order, matching spec.md §4.4's tie-break: rle > lb_-1 > lb_0 > lb_+1.
var lookbackOffsets = [3]int{-1, 0, +1}

// encodeRow runs the per-position selection algorithm (spec.md §4.4) over
// one row. prev is nil for the first row of a stream, disabling lookback.
func encodeRow(dst []byte, cur []byte, prev []byte) []byte {
	width := len(cur)
	i := 0
	for i < width {
		pixel := literalByte(cur[i])

		var lbLen [3]int
		if prev != nil {
			for k, off := range lookbackOffsets {
				lbLen[k] = lookbackMatch(cur, prev, i, off)
			}
		}
		rleLen := rleMatch(cur, i)

		bestKind, bestLen, bestOffsetIdx := selectBest(rleLen, lbLen)

		switch {
		case bestLen == 0:
			dst = append(dst, pixel)
			i++
		case bestKind == kindRLE:
			dst = append(dst, pixel)
			dst = appendRunOpcode(dst, bestLen)
			i += bestLen + 1
		default:
			dst = appendCopyOpcode(dst, bestLen, lookbackOffsets[bestOffsetIdx])
			i += bestLen
		}
	}
	return dst
}

const (
	kindRLE = iota
	kindCopy
)

// selectBest picks the longest of {rleLen, lbLen[-1], lbLen[0], lbLen[+1]},
// breaking ties in that exact priority order (spec.md §4.4 step 3).
func selectBest(rleLen int, lbLen [3]int) (kind int, length int, offsetIdx int) {
	kind, length, offsetIdx = kindRLE, rleLen, -1
	for idx, l := range lbLen {
		if l > length {
			kind, length, offsetIdx = kindCopy, l, idx
		}
	}
	return
}

// lookbackMatch computes the maximal run length cur[i+k] == prev[i+offset+k]
// for k = 0, 1, ..., bounded by both rows' width. Negative source indices
// (offset -1 at i == 0) stop the match at k == 0, matching spec.md §4.4's
// La definition; offset +1's upper bound is a one-sided guard since
// i+offset+k is never negative.
func lookbackMatch(cur, prev []byte, i, offset int) int {
	width := len(cur)
	k := 0
	for i+k < width {
		src := i + offset + k
		if src < 0 || src >= width {
			break
		}
		if cur[i+k] != prev[src] {
			break
		}
		k++
	}
	return k
}

// rleMatch returns the number of times cur[i] repeats beyond the literal
// that precedes every RLE token, or 0 if that's fewer than
// minExtraRepeats. This is one less than the total length of the run of
// cur[i] starting at i: the literal byte itself accounts for the first
// occurrence, so a run of 8 identical pixels has 7 "extra" repeats.
//
// Keeping the opcode's argument equal to extra rather than the raw run
// length, so that the index advance of extra+1 exactly equals the
// verified run length, avoids original_source/lib/mode9.py's
// off-by-one: that reference packs the raw run length into RLE_n/RLE_6's
// argument but then advances the index by run length + 1, overrunning
// the verified match by one pixel.
func rleMatch(cur []byte, i int) int {
	width := len(cur)
	if i == width-1 || cur[i+1] != cur[i] {
		return 0
	}
	n := 1
	for i+n < width && cur[i+n] == cur[i] {
		n++
	}
	extra := n - 1
	if extra < minExtraRepeats {
		return 0
	}
	return extra
}

// literalByte remaps an out-of-palette-range pixel to 0 before emitting it
// as a literal (spec.md §4.4: "pixels whose value is not in the palette
// are remapped to 0"). Valid quantized input never exercises this path.
func literalByte(v byte) byte {
	if int(v) > int(wire.UnknownColor) {
		return 0
	}
	return v
}

// appendRunOpcode emits the RLE control code for n extra repeats beyond
// the literal (spec.md §4.4 step 5): RLE_n directly for n in [2,5], or
// RLE_6 plus a trailing n-6 length byte for n >= 6.
func appendRunOpcode(dst []byte, n int) []byte {
	if n >= 6 {
		return append(dst, wire.RLE6, byte(n-6))
	}
	return append(dst, wire.RLEOpcode(n))
}

// appendCopyOpcode emits the lookback control code for a copy of length n
// at the given offset (spec.md §4.4 step 6): COPY_n_OFFSET_d directly for
// n in [1,5], or COPY_6_OFFSET_d plus a trailing n-6 length byte for n >= 6.
func appendCopyOpcode(dst []byte, n int, offset int) []byte {
	if n >= 6 {
		return append(dst, wire.Copy6Opcode(offset), byte(n-6))
	}
	return append(dst, wire.CopyOpcode(n, offset))
}

// Compress encodes a full palette-indexed raster (row-major, width*height
// bytes) into a Mode 9 stream. The first row is encoded with lookback
// disabled; every later row looks back at the row before it.
func Compress(indices []byte, width, height int) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}
	enc := New(width)
	defer enc.Close()

	out := make([]byte, 0, len(indices))
	for y := 0; y < height; y++ {
		row := indices[y*width : (y+1)*width]
		out = enc.EncodeRow(out, row)
	}
	return out
}
