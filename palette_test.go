package ebd

import "testing"

func TestPaletteSizeAndUniqueness(t *testing.T) {
	if len(Palette) != PaletteSize {
		t.Fatalf("len(Palette) = %d, want %d", len(Palette), PaletteSize)
	}
	seen := make(map[[3]uint8]int, PaletteSize)
	for i, c := range Palette {
		if prev, ok := seen[c]; ok {
			t.Fatalf("palette entries %d and %d both equal %v", prev, i, c)
		}
		seen[c] = i
	}
}

func TestExactPaletteIndexRoundTrip(t *testing.T) {
	for i, c := range Palette {
		code, ok := ExactPaletteIndex(c[0], c[1], c[2])
		if !ok {
			t.Fatalf("palette entry %d (%v) not found by ExactPaletteIndex", i, c)
		}
		if int(code) != i {
			t.Fatalf("ExactPaletteIndex(%v) = %d, want %d", c, code, i)
		}
	}
}

func TestExactPaletteIndexMiss(t *testing.T) {
	if _, ok := ExactPaletteIndex(1, 2, 3); ok {
		t.Fatalf("expected (1,2,3) to miss the palette")
	}
}

func TestQuantizePixelExactHit(t *testing.T) {
	c := Palette[10]
	if got := QuantizePixel(c[0], c[1], c[2]); got != 10 {
		t.Fatalf("QuantizePixel(%v) = %d, want 10", c, got)
	}
}

func TestUnknownColorIsPaletteEntry(t *testing.T) {
	// UnknownColor (0xE6 = 230) must be a valid index into the 231-entry
	// palette: it is simultaneously the sentinel and the palette's last
	// entry (spec.md §3/§9).
	if int(UnknownColor) != PaletteSize-1 {
		t.Fatalf("UnknownColor = %d, want %d (PaletteSize-1)", UnknownColor, PaletteSize-1)
	}
}
