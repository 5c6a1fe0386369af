package ebd

import "github.com/openxiino/ebd/internal/wire"

// ControlCode is a reserved Mode 9 opcode byte, disjoint from palette
// codes. The table itself lives in internal/wire, which internal/mode9
// consumes directly; these are re-exports for callers of the façade who
// want to name a code (diagnostics, tests).
type ControlCode = wire.ControlCode

const (
	RLE2                = wire.RLE2
	RLE3                = wire.RLE3
	RLE4                = wire.RLE4
	RLE5                = wire.RLE5
	RLE6                = wire.RLE6
	Copy1OffsetBack     = wire.Copy1OffsetBack
	Copy2OffsetBack     = wire.Copy2OffsetBack
	Copy3OffsetBack     = wire.Copy3OffsetBack
	Copy4OffsetBack     = wire.Copy4OffsetBack
	Copy5OffsetBack     = wire.Copy5OffsetBack
	Copy6OffsetBack     = wire.Copy6OffsetBack
	Copy1OffsetSame     = wire.Copy1OffsetSame
	Copy2OffsetSame     = wire.Copy2OffsetSame
	Copy3OffsetSame     = wire.Copy3OffsetSame
	Copy4OffsetSame     = wire.Copy4OffsetSame
	Copy5OffsetSame     = wire.Copy5OffsetSame
	Copy6OffsetSame     = wire.Copy6OffsetSame
	Copy1OffsetForward  = wire.Copy1OffsetForward
	Copy2OffsetForward  = wire.Copy2OffsetForward
	Copy3OffsetForward  = wire.Copy3OffsetForward
	Copy4OffsetForward  = wire.Copy4OffsetForward
	Copy5OffsetForward  = wire.Copy5OffsetForward
	Copy6OffsetForward  = wire.Copy6OffsetForward
)

// CopyOpcode returns the fixed COPY_n_OFFSET_d opcode for a lookback copy
// of length n (1-5) at the given offset (-1, 0, +1). It panics if n is
// outside [1,5] or offset isn't one of the three valid lookback offsets.
func CopyOpcode(n, offset int) ControlCode {
	return wire.CopyOpcode(n, offset)
}

// Copy6Opcode returns the COPY_6_OFFSET_d opcode (always followed by a
// trailing n-6 length byte) for the given lookback offset.
func Copy6Opcode(offset int) ControlCode {
	return wire.Copy6Opcode(offset)
}

// IsControlCode reports whether b is a reserved Mode 9 opcode rather than
// a literal palette pixel.
func IsControlCode(b byte) bool {
	return wire.IsControlCode(b)
}
