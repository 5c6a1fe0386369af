package ebd

import "errors"

// Error taxonomy for the EBD pipeline (spec.md §7). Callers can test
// against these with errors.Is; call sites wrap them with fmt.Errorf's
// %w verb to add context, following the same convention as the teacher
// package's fmt.Errorf("webp: ...: %w", err) chains throughout encode.go.
var (
	// ErrInvalidParameter reports an unsupported mode, unsupported
	// grayscale depth, or non-positive image dimensions.
	ErrInvalidParameter = errors.New("ebd: invalid parameter")

	// ErrInvalidImage reports an image too small to resize sensibly, or
	// an unsupported source color model after normalization.
	ErrInvalidImage = errors.New("ebd: invalid image")

	// ErrInternalInvariant names the packer-bug class of failure: Scanline
	// producing a flag byte that doesn't fit in a byte. No code path
	// currently returns it; Scanline builds each flag in a byte-typed
	// value from at most eight bits, so the condition cannot arise.
	ErrInternalInvariant = errors.New("ebd: internal invariant violated")
)
