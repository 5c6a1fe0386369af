package ebd

import "github.com/openxiino/ebd/internal/wire"

// The 231-color palette the target device's Mode 8/9 raster formats are
// indexed against. Position in Palette is the pixel code: Palette[i] is
// the RGB rendered for code i. Code 0xE6 (230, the final entry) doubles
// as the "unknown color" sentinel substituted for any pixel that isn't an
// exact palette hit after quantization.
//
// original_source/lib/xiino_palette_common.py (the original palette table)
// was not retrieved with the rest of the reference implementation, so this
// palette is a deterministic reconstruction: a 6x6x6 web-safe color cube
// (216 entries, the classic legacy-8-bit-display palette base) plus 15
// additional gray steps to fill out the smooth black-to-white ramp that a
// text-and-icon-heavy handheld browser leans on most. It satisfies the
// same invariants any real EBD palette must: exactly 231 entries, all
// unique RGB triples.

// UnknownColor is the palette code substituted for any pixel whose exact
// RGB is not present in Palette after quantization.
const UnknownColor = wire.UnknownColor

// PaletteSize is the number of entries in Palette.
const PaletteSize = 231

// cubeLevels are the per-channel steps of the 6x6x6 web-safe color cube.
var cubeLevels = [6]uint8{0, 51, 102, 153, 204, 255}

// extraGrays fills in the gray ramp between the cube's six gray steps
// (0, 51, 102, 153, 204, 255) without repeating any of them.
var extraGrays = [15]uint8{
	16, 32, 48, 64, 80, 96, 112, 128, 144, 160, 176, 192, 208, 224, 240,
}

// Palette is the process-wide, read-only 231-entry color table.
var Palette [PaletteSize][3]uint8

// paletteIndex maps a packed 24-bit RGB value to its palette code, built
// once at init time so quantization is a map lookup rather than a linear
// or nearest-neighbor search for exact hits.
var paletteIndex map[uint32]byte

func init() {
	n := 0
	for _, r := range cubeLevels {
		for _, g := range cubeLevels {
			for _, b := range cubeLevels {
				Palette[n] = [3]uint8{r, g, b}
				n++
			}
		}
	}
	for _, v := range extraGrays {
		Palette[n] = [3]uint8{v, v, v}
		n++
	}
	if n != PaletteSize {
		panic("ebd: palette construction produced the wrong number of entries")
	}

	paletteIndex = make(map[uint32]byte, PaletteSize)
	for i, c := range Palette {
		paletteIndex[rgbKey(c[0], c[1], c[2])] = byte(i)
	}
}

func rgbKey(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// ExactPaletteIndex returns the palette code whose RGB exactly equals
// (r,g,b), and whether such an entry exists. Nearest-neighbor matching for
// pixels with no exact entry is done separately, by quantizeColor in
// quantize.go when packing Mode 8/9 rasters.
func ExactPaletteIndex(r, g, b uint8) (byte, bool) {
	code, ok := paletteIndex[rgbKey(r, g, b)]
	return code, ok
}

// QuantizePixel maps an RGB triple to its palette code. A pixel whose
// exact value is not a palette entry maps to UnknownColor — exactness
// here is the wire contract (spec.md §4.2). QuantizePixel does no
// nearest-neighbor search; that is done by quantizeColor in quantize.go.
func QuantizePixel(r, g, b uint8) byte {
	if code, ok := ExactPaletteIndex(r, g, b); ok {
		return code
	}
	return UnknownColor
}
