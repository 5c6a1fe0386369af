// Package raster normalizes an arbitrary source image into the form the
// EBD bit-packers consume: opaque RGB, resized to the target device's
// screen contract. It is the Go-native analog of the teacher package's
// internal/dsp pixel-transform helpers (github.com/deepteams/webp's
// internal/dsp/cliptables.go clamping, internal/dsp/yuv.go fixed-point
// color math), adapted from WebP's YUV/DCT pixel pipeline to EBD's much
// simpler luminance/palette pipeline.
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
)

// ErrInvalidImage is returned for images that cannot be normalized or
// resized sensibly. The façade (package ebd) wraps this into its own
// ErrInvalidImage taxonomy entry; this package stays import-free of its
// parent to avoid a dependency cycle (ebd -> internal/raster -> ebd).
var ErrInvalidImage = errors.New("raster: invalid image")

// MaxNativeWidth is the target device's native screen width in pixels.
// Oversize sources are reduced to this width; everything else is halved.
const MaxNativeWidth = 153

// oversizeThreshold is the width above which a source image is reduced to
// MaxNativeWidth rather than simply halved (spec.md §4.1).
const oversizeThreshold = 2 * MaxNativeWidth

// TargetSize computes the post-resize dimensions for a source image of
// the given width/height, per spec.md §4.1's device contract.
func TargetSize(width, height int) (newWidth, newHeight int) {
	if width > oversizeThreshold {
		newWidth = MaxNativeWidth
		newHeight = int(math.Ceil(float64(height) * MaxNativeWidth / float64(width)))
		return
	}
	newWidth = (width + 1) / 2
	newHeight = (height + 1) / 2
	return
}

// Normalize converts src to opaque RGB (alpha-composited onto solid white,
// spec.md §4) and, unless noResize is set, resizes it per TargetSize using
// a Catmull-Rom (bicubic) resampler. The returned image is always an
// *image.RGBA the bit-packers and quantizer can read directly.
func Normalize(src image.Image, noResize bool) (*image.RGBA, error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: non-positive source dimensions %dx%d", ErrInvalidImage, w, h)
	}

	opaque := compositeOnWhite(src)

	if noResize {
		return opaque, nil
	}

	newW, newH := TargetSize(w, h)
	if newW <= 1 {
		return nil, fmt.Errorf("%w: resized width %d too small to encode", ErrInvalidImage, newW)
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), opaque, opaque.Bounds(), xdraw.Over, nil)
	return dst, nil
}

// compositeOnWhite alpha-composites src onto solid white (255,255,255),
// matching the original converter's PIL.Image.alpha_composite step, and
// returns a fresh, origin-aligned *image.RGBA regardless of src's
// underlying color model.
func compositeOnWhite(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	white := image.NewUniform(color.White)
	draw.Draw(dst, dst.Bounds(), white, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return dst
}

// Luminance returns the 8-bit luminance of an RGB triple using the
// standard Rec. 601 perceptual weights, matching PIL's "L" conversion
// mode that the original converter relies on for grayscale modes.
func Luminance(r, g, b uint8) uint8 {
	l := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	return clamp8(math.Round(l))
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
