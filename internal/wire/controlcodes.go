// Package wire holds the EBD wire-format constants shared by the root
// façade and the internal compressors — the palette's reserved sentinel
// code and Mode 9's control-code table. It exists apart from both so that
// internal/mode9 can reach these values without importing the root
// package (which itself imports internal/mode9), and the root package
// re-exports them under their original names for callers of the façade.
package wire

// UnknownColor is the palette code substituted for any pixel whose exact
// RGB is not present in the palette after quantization.
const UnknownColor byte = 0xE6

// Mode 9's control-code table: a compile-time mapping from symbolic names
// to single-byte opcodes, reserved in the subrange immediately above
// UnknownColor so that literal pixel bytes (0..230) and control opcodes
// never collide (spec.md §3's invariant).
//
// original_source/lib/ebd_control_codes.py (the reference opcode table)
// was not retrieved alongside the rest of the original implementation, so
// the exact byte assignments below are this repo's own — any assignment
// satisfying the non-collision invariant is wire-compatible, since the
// opcode values are this encoder's private implementation detail, never
// observed by a caller of the façade. The symbolic names match spec.md §2's
// examples ("RLE_3", "COPY_5_OFFSET_-1") exactly.

// ControlCode is a reserved Mode 9 opcode byte, disjoint from palette codes.
type ControlCode = byte

const (
	RLE2 ControlCode = 0xE7 + iota
	RLE3
	RLE4
	RLE5
	RLE6
	Copy1OffsetBack
	Copy2OffsetBack
	Copy3OffsetBack
	Copy4OffsetBack
	Copy5OffsetBack
	Copy6OffsetBack
	Copy1OffsetSame
	Copy2OffsetSame
	Copy3OffsetSame
	Copy4OffsetSame
	Copy5OffsetSame
	Copy6OffsetSame
	Copy1OffsetForward
	Copy2OffsetForward
	Copy3OffsetForward
	Copy4OffsetForward
	Copy5OffsetForward
	Copy6OffsetForward
)

// ControlCodeNames mirrors spec.md §2's symbolic naming convention
// ("RLE_3", "COPY_5_OFFSET_-1") for diagnostics and tests.
var ControlCodeNames = map[ControlCode]string{
	RLE2: "RLE_2", RLE3: "RLE_3", RLE4: "RLE_4", RLE5: "RLE_5", RLE6: "RLE_6",
	Copy1OffsetBack: "COPY_1_OFFSET_-1", Copy2OffsetBack: "COPY_2_OFFSET_-1",
	Copy3OffsetBack: "COPY_3_OFFSET_-1", Copy4OffsetBack: "COPY_4_OFFSET_-1",
	Copy5OffsetBack: "COPY_5_OFFSET_-1", Copy6OffsetBack: "COPY_6_OFFSET_-1",
	Copy1OffsetSame: "COPY_1_OFFSET_0", Copy2OffsetSame: "COPY_2_OFFSET_0",
	Copy3OffsetSame: "COPY_3_OFFSET_0", Copy4OffsetSame: "COPY_4_OFFSET_0",
	Copy5OffsetSame: "COPY_5_OFFSET_0", Copy6OffsetSame: "COPY_6_OFFSET_0",
	Copy1OffsetForward: "COPY_1_OFFSET_1", Copy2OffsetForward: "COPY_2_OFFSET_1",
	Copy3OffsetForward: "COPY_3_OFFSET_1", Copy4OffsetForward: "COPY_4_OFFSET_1",
	Copy5OffsetForward: "COPY_5_OFFSET_1", Copy6OffsetForward: "COPY_6_OFFSET_1",
}

// rleOpcodes maps small RLE run lengths (2-5) to their fixed opcode.
// Lengths of 6 or more always use RLE6 plus a trailing length byte.
var rleOpcodes = map[int]ControlCode{2: RLE2, 3: RLE3, 4: RLE4, 5: RLE5}

// copyOpcodes[offsetIndex][n] maps a lookback offset (-1, 0, +1, indexed
// 0, 1, 2) and small copy length (1-5) to its fixed opcode. Lengths of 6
// or more always use the offset's Copy6 opcode plus a trailing length byte.
var copyOpcodes = [3]map[int]ControlCode{
	0: {1: Copy1OffsetBack, 2: Copy2OffsetBack, 3: Copy3OffsetBack, 4: Copy4OffsetBack, 5: Copy5OffsetBack},
	1: {1: Copy1OffsetSame, 2: Copy2OffsetSame, 3: Copy3OffsetSame, 4: Copy4OffsetSame, 5: Copy5OffsetSame},
	2: {1: Copy1OffsetForward, 2: Copy2OffsetForward, 3: Copy3OffsetForward, 4: Copy4OffsetForward, 5: Copy5OffsetForward},
}

// copy6Opcodes[offsetIndex] is the Copy6-and-length-byte opcode for each
// of the three lookback offsets, indexed the same way as copyOpcodes.
var copy6Opcodes = [3]ControlCode{Copy6OffsetBack, Copy6OffsetSame, Copy6OffsetForward}

// OffsetIndex converts a lookback offset (-1, 0, +1) to the 0/1/2 index
// used by copyOpcodes and copy6Opcodes.
func OffsetIndex(offset int) int {
	return offset + 1
}

// RLEOpcode returns the fixed RLE_n opcode for n extra repeats (2-5).
// Callers must route n >= 6 through RLE6 plus a trailing length byte
// instead.
func RLEOpcode(n int) ControlCode {
	code, ok := rleOpcodes[n]
	if !ok {
		panic("wire: RLEOpcode called with out-of-range length")
	}
	return code
}

// CopyOpcode returns the fixed COPY_n_OFFSET_d opcode for a lookback copy
// of length n (1-5) at the given offset (-1, 0, +1). It panics if n is
// outside [1,5] or offset isn't one of the three valid lookback offsets —
// callers must route n >= 6 through Copy6Opcode instead.
func CopyOpcode(n, offset int) ControlCode {
	code, ok := copyOpcodes[OffsetIndex(offset)][n]
	if !ok {
		panic("wire: CopyOpcode called with out-of-range length or offset")
	}
	return code
}

// Copy6Opcode returns the COPY_6_OFFSET_d opcode (always followed by a
// trailing n-6 length byte) for the given lookback offset.
func Copy6Opcode(offset int) ControlCode {
	return copy6Opcodes[OffsetIndex(offset)]
}

// IsControlCode reports whether b is a reserved Mode 9 opcode rather than
// a literal palette pixel.
func IsControlCode(b byte) bool {
	_, ok := ControlCodeNames[b]
	return ok
}
