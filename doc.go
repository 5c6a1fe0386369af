// Package ebd encodes raster images into the Xiino handheld browser's
// proprietary EBD ("Embedded Bitmap Data") wire formats: the eight bit
// depth/compression variants ("Modes") the device decodes in ROM.
//
// The package is encode-only — there is no public decoder, matching the
// proxy's actual use (transcoding fetched images on the way to the
// device, never the reverse) — and purely synchronous: a call to Encode
// performs no I/O and returns a single immutable EBDImage.
//
// Basic usage:
//
//	out, err := ebd.Encode(img, ebd.ColorModelGrayscale, 4, true, false)
//	fragment := out.EBDIMAGEFragment("1")
//	ref := out.IMGFragment("a photo", "#1")
package ebd
