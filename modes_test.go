package ebd

import (
	"image"
	"image/color"
	"testing"

	"github.com/openxiino/ebd/internal/bitpack"
)

// rgbaFromGray builds a single-row *image.RGBA from 8-bit grays.
func rgbaFromGray(grays []uint8) *image.RGBA {
	w := len(grays)
	img := image.NewRGBA(image.Rect(0, 0, w, 1))
	for x, l := range grays {
		img.Set(x, 0, color.Gray{Y: l})
	}
	return img
}

// TestPackMode0S1 is spec.md §8 scenario S1: an 8x1 raster
// [W,W,B,W,B,B,B,W] packs to 0x2E (1 = black, MSB first).
func TestPackMode0S1(t *testing.T) {
	const W, B = 255, 0
	img := rgbaFromGray([]uint8{W, W, B, W, B, B, B, W})
	got := packMode0(img)
	want := []byte{0x2E}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("packMode0 = %08b, want %08b", got, want)
	}
}

func TestPackMode0ShortRowPadsLowBitsZero(t *testing.T) {
	const B = 0
	img := rgbaFromGray([]uint8{B, B, B})
	got := packMode0(img)
	if len(got) != 1 {
		t.Fatalf("len(got) = %d, want 1", len(got))
	}
	if got[0] != 0b11100000 {
		t.Fatalf("got 0x%02X, want 0b11100000", got[0])
	}
}

// TestPackMode4S2 is spec.md §8 scenario S2: pre-inversion luminances
// [16,128] invert to [239,127], rounding to nibbles [15,8], packed 0xF8.
func TestPackMode4S2(t *testing.T) {
	img := rgbaFromGray([]uint8{16, 128})
	got := packMode4(img)
	if len(got) != 1 || got[0] != 0xF8 {
		t.Fatalf("packMode4 = 0x%02X, want 0xF8", got)
	}
}

func TestPackMode2FieldWidth(t *testing.T) {
	img := rgbaFromGray([]uint8{0, 64, 128, 192, 255})
	got := packMode2(img)
	want := bitpack.RowBytes(5, 2)
	if len(got) != want {
		t.Fatalf("len(packMode2) = %d, want %d", len(got), want)
	}
}

func TestPackMode8UsesPaletteCodes(t *testing.T) {
	c := Palette[5]
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: c[0], G: c[1], B: c[2], A: 255})
	got := packMode8(img)
	if len(got) != 1 || got[0] != 5 {
		t.Fatalf("packMode8 = %v, want [5]", got)
	}
}
