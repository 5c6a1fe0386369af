package ebd

// quantizeColor maps a normalized RGBA raster to the 231-color palette,
// row-major, one code per pixel (spec.md §4.2 Mode 8). Exact palette hits
// resolve via ExactPaletteIndex; everything else is mapped to its nearest
// palette entry by squared RGB distance — the "straightforward...
// nearest-neighbor" quantizer spec.md §9 calls out as a conformant choice.
// Because the search is exhaustive over all 231 entries, it always finds
// a nearest color: UnknownColor only appears here when it genuinely is
// the closest palette entry to the source pixel, never as a search
// failure.
func quantizeColor(pix []byte, stride, w, h int) []byte {
	out := make([]byte, w*h)
	var cache map[uint32]byte
	i := 0
	for y := 0; y < h; y++ {
		row := pix[y*stride : y*stride+w*4]
		for x := 0; x < w; x++ {
			r, g, b := row[x*4], row[x*4+1], row[x*4+2]
			out[i] = quantizeOne(r, g, b, &cache)
			i++
		}
	}
	return out
}

// quantizeOne resolves a single pixel, memoizing nearest-neighbor results
// per distinct RGB value since real-world source images reuse colors far
// more than they vary (flat UI chrome, large solid-fill regions).
func quantizeOne(r, g, b uint8, cache *map[uint32]byte) byte {
	if code, ok := ExactPaletteIndex(r, g, b); ok {
		return code
	}
	key := rgbKey(r, g, b)
	if *cache == nil {
		*cache = make(map[uint32]byte)
	}
	if code, ok := (*cache)[key]; ok {
		return code
	}
	code := nearestPaletteCode(r, g, b)
	(*cache)[key] = code
	return code
}

// nearestPaletteCode performs an exhaustive nearest-neighbor search over
// the 231-entry palette by squared Euclidean RGB distance. A linear scan
// over 231 entries is cheap enough that a k-d tree (spec.md §9's other
// suggested option) buys nothing at this table size.
func nearestPaletteCode(r, g, b uint8) byte {
	best := byte(0)
	bestDist := -1
	for i, c := range Palette {
		dr := int(r) - int(c[0])
		dg := int(g) - int(c[1])
		db := int(b) - int(c[2])
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = byte(i)
		}
	}
	return best
}
