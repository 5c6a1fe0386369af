package ebd

import (
	"encoding/base64"
	"fmt"
	"image"

	"github.com/openxiino/ebd/internal/bitpack"
	"github.com/openxiino/ebd/internal/mode9"
	"github.com/openxiino/ebd/internal/raster"
	"github.com/openxiino/ebd/internal/scanline"
)

// ColorModel selects the target color model for Encode, matching the
// three families of device mode spec.md §4.6 describes.
type ColorModel string

const (
	ColorModelBW        ColorModel = "bw"
	ColorModelGrayscale ColorModel = "grayscale"
	ColorModelColor     ColorModel = "color"
)

// EBDImage is an encoded EBD raster: the packed/compressed byte stream
// plus the post-normalization dimensions and device mode that produced
// it. An EBDImage is immutable and safe to share; construct one only
// through Encode.
type EBDImage struct {
	Bytes  []byte
	Width  int
	Height int
	Mode   int
}

// EBDIMAGEFragment renders the `<EBDIMAGE>` markup fragment carrying the
// base64-encoded payload, keyed by the caller-supplied name (by
// convention an unprefixed integer, e.g. "1").
func (img *EBDImage) EBDIMAGEFragment(name string) string {
	payload := base64.StdEncoding.EncodeToString(img.Bytes)
	return fmt.Sprintf(`<EBDIMAGE MODE="%d" NAME="%s"><!--%s--></EBDIMAGE>`, img.Mode, name, payload)
}

// IMGFragment renders the `<IMG>` reference fragment. name is the
// caller-supplied reference to the matching EBDIMAGEFragment, by
// convention "#" followed by the same integer (e.g. "#1").
func (img *EBDImage) IMGFragment(alt, name string) string {
	return fmt.Sprintf(`<IMG ALT="%s" WIDTH="%d" HEIGHT="%d" EBDWIDTH="%d" EBDHEIGHT="%d" EBD="%s">`,
		alt, img.Width, img.Height, img.Width, img.Height, name)
}

// Encode is the pipeline's single entry point (spec.md §4.6). It
// normalizes src (alpha-composited onto white, then resized per
// spec.md §4.1 unless noResize is set), selects a device mode from
// model/depth/compressed, and runs the matching quantizer and, for
// compressed modes, compressor.
//
// depth is meaningful only for ColorModelGrayscale, where it must be 2
// or 4; it is ignored for ColorModelBW (always 1-bit) and
// ColorModelColor (always 8-bit palette).
func Encode(src image.Image, model ColorModel, depth int, compressed bool, noResize bool) (*EBDImage, error) {
	mode, err := selectMode(model, depth, compressed)
	if err != nil {
		return nil, err
	}

	if b := src.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: non-positive image dimensions %dx%d", ErrInvalidParameter, b.Dx(), b.Dy())
	}

	norm, err := raster.Normalize(src, noResize)
	if err != nil {
		return nil, fmt.Errorf("ebd: normalizing image: %w: %w", ErrInvalidImage, err)
	}
	w, h := norm.Rect.Dx(), norm.Rect.Dy()

	bytes, err := encodeMode(norm, mode)
	if err != nil {
		return nil, err
	}

	return &EBDImage{Bytes: bytes, Width: w, Height: h, Mode: mode}, nil
}

// selectMode maps (model, depth, compressed) to a device mode number,
// per spec.md §4.6.
func selectMode(model ColorModel, depth int, compressed bool) (int, error) {
	switch model {
	case ColorModelBW:
		if compressed {
			return 1, nil
		}
		return 0, nil
	case ColorModelGrayscale:
		switch depth {
		case 2:
			if compressed {
				return 3, nil
			}
			return 2, nil
		case 4:
			if compressed {
				return 5, nil
			}
			return 4, nil
		default:
			return 0, fmt.Errorf("%w: unsupported grayscale depth %d (must be 2 or 4)", ErrInvalidParameter, depth)
		}
	case ColorModelColor:
		if compressed {
			return 9, nil
		}
		return 8, nil
	default:
		return 0, fmt.Errorf("%w: unsupported color model %q", ErrInvalidParameter, model)
	}
}

// encodeMode runs the quantizer (and, for compressed modes, the matching
// compressor) for a single resolved device mode.
func encodeMode(img *image.RGBA, mode int) ([]byte, error) {
	w := img.Rect.Dx()
	switch mode {
	case 0:
		return packMode0(img), nil
	case 1:
		return scanline.Compress(packMode0(img), bitpack.RowBytes(w, 1)), nil
	case 2:
		return packMode2(img), nil
	case 3:
		return scanline.Compress(packMode2(img), bitpack.RowBytes(w, 2)), nil
	case 4:
		return packMode4(img), nil
	case 5:
		return scanline.Compress(packMode4(img), bitpack.RowBytes(w, 4)), nil
	case 8:
		return packMode8(img), nil
	case 9:
		h := img.Rect.Dy()
		return mode9.Compress(packMode8(img), w, h), nil
	default:
		return nil, fmt.Errorf("%w: unsupported mode %d", ErrInvalidParameter, mode)
	}
}
