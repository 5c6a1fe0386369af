package ebd

import (
	"image"
	"math"

	"github.com/openxiino/ebd/internal/bitpack"
	"github.com/openxiino/ebd/internal/raster"
)

// packMode0 converts img to 1-bit black-and-white and packs 8 pixels per
// byte, most-significant bit first, with 1 = black and 0 = white (inverted
// from the usual raster convention — spec.md §4.2). Rows are byte-aligned;
// a short final group in a row has its unused low bits left at 0.
func packMode0(img *image.RGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	rowBytes := bitpack.RowBytes(w, 1)
	bw := bitpack.NewWriter(1, rowBytes*h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			l := raster.Luminance(row[x*4], row[x*4+1], row[x*4+2])
			var bit byte
			if l < 128 {
				bit = 1 // black
			}
			bw.WriteField(bit)
		}
		bw.FlushRow()
	}
	return bw.Bytes
}

// packMode2 converts img to inverted 8-bit luminance, keeps the top 2 bits
// of each pixel (0-3), and packs 4 pixels per byte, most-significant pair
// first (spec.md §4.2).
func packMode2(img *image.RGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	rowBytes := bitpack.RowBytes(w, 2)
	bw := bitpack.NewWriter(2, rowBytes*h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			l := invertedLuminance(row[x*4], row[x*4+1], row[x*4+2])
			bw.WriteField(l >> 6)
		}
		bw.FlushRow()
	}
	return bw.Bytes
}

// packMode4 converts img to inverted 8-bit luminance, rounds each pixel
// to the nearest 4-bit value (round(L/16), capped at 15), and packs 2
// pixels per byte, high nibble
// first (spec.md §4.2).
func packMode4(img *image.RGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	rowBytes := bitpack.RowBytes(w, 4)
	bw := bitpack.NewWriter(4, rowBytes*h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			l := invertedLuminance(row[x*4], row[x*4+1], row[x*4+2])
			v := byte(math.Round(float64(l) / 16))
			if v > 15 {
				v = 15
			}
			bw.WriteField(v)
		}
		bw.FlushRow()
	}
	return bw.Bytes
}

// packMode8 quantizes img to the 231-color palette and emits one byte per
// pixel, row-major (spec.md §4.2). Pixels with no exact palette entry are
// mapped to their nearest palette entry by the quantizer in quantize.go.
func packMode8(img *image.RGBA) []byte {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	return quantizeColor(img.Pix, img.Stride, w, h)
}

// invertedLuminance computes 8-bit luminance and inverts it so that 0 is
// white on the device, matching the original converter's
// PIL.ImageOps.invert step ahead of grayscale bit-depth reduction.
func invertedLuminance(r, g, b uint8) uint8 {
	return 255 - raster.Luminance(r, g, b)
}
