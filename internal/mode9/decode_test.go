package mode9

import "github.com/openxiino/ebd/internal/wire"

// decode is a small test-only inverse of Compress, used in mode9_test.go
// to round-trip encoded streams rather than hand-deriving every expected
// byte sequence. It is not part of the package's public surface (spec.md's
// Non-goals exclude a decoder from the product).
func decode(stream []byte, width, height int) []byte {
	out := make([]byte, 0, width*height)
	pos := 0
	for y := 0; y < height; y++ {
		row := make([]byte, 0, width)
		var prevRow []byte
		if y > 0 {
			prevRow = out[(y-1)*width : y*width]
		}
		for len(row) < width {
			b := stream[pos]
			pos++
			if !wire.IsControlCode(b) {
				row = append(row, b)
				continue
			}
			switch {
			case b == wire.RLE6:
				extra := int(stream[pos]) + 6
				pos++
				row = appendRepeat(row, extra)
			case isRLEOpcode(b):
				extra := rleOpcodeLength(b)
				row = appendRepeat(row, extra)
			case b == wire.Copy6OffsetBack || b == wire.Copy6OffsetSame || b == wire.Copy6OffsetForward:
				offset := copy6Offset(b)
				n := int(stream[pos]) + 6
				pos++
				row = appendCopy(row, prevRow, offset, n)
			default:
				offset, n := copyOpcodeLengthOffset(b)
				row = appendCopy(row, prevRow, offset, n)
			}
		}
		out = append(out, row...)
	}
	return out
}

func appendRepeat(row []byte, extra int) []byte {
	last := row[len(row)-1]
	for k := 0; k < extra; k++ {
		row = append(row, last)
	}
	return row
}

func appendCopy(row []byte, prevRow []byte, offset int, n int) []byte {
	start := len(row)
	for k := 0; k < n; k++ {
		row = append(row, prevRow[start+offset+k])
	}
	return row
}

func isRLEOpcode(b byte) bool {
	return b == wire.RLE2 || b == wire.RLE3 || b == wire.RLE4 || b == wire.RLE5
}

func rleOpcodeLength(b byte) int {
	switch b {
	case wire.RLE2:
		return 2
	case wire.RLE3:
		return 3
	case wire.RLE4:
		return 4
	case wire.RLE5:
		return 5
	default:
		panic("mode9: rleOpcodeLength called with non-RLE opcode")
	}
}

func copy6Offset(b byte) int {
	switch b {
	case wire.Copy6OffsetBack:
		return -1
	case wire.Copy6OffsetSame:
		return 0
	default:
		return 1
	}
}

var copyOpcodeTable = map[byte][2]int{
	wire.Copy1OffsetBack: {-1, 1}, wire.Copy2OffsetBack: {-1, 2}, wire.Copy3OffsetBack: {-1, 3},
	wire.Copy4OffsetBack: {-1, 4}, wire.Copy5OffsetBack: {-1, 5},
	wire.Copy1OffsetSame: {0, 1}, wire.Copy2OffsetSame: {0, 2}, wire.Copy3OffsetSame: {0, 3},
	wire.Copy4OffsetSame: {0, 4}, wire.Copy5OffsetSame: {0, 5},
	wire.Copy1OffsetForward: {1, 1}, wire.Copy2OffsetForward: {1, 2}, wire.Copy3OffsetForward: {1, 3},
	wire.Copy4OffsetForward: {1, 4}, wire.Copy5OffsetForward: {1, 5},
}

func copyOpcodeLengthOffset(b byte) (offset int, n int) {
	v, ok := copyOpcodeTable[b]
	if !ok {
		panic("mode9: copyOpcodeLengthOffset called with unrecognized opcode")
	}
	return v[0], v[1]
}
