package isa

// Variant selects the architecture an opcode map belongs to. MODE_OVERLAY
// is reserved; no table populates it.
type Variant int

//go:generate go tool stringer -linecomment -type=Variant
const (
	MODE_NONE    = Variant(iota) // MODE_NONE
	MODE_6502                    // MODE_6502
	MODE_65832                   // MODE_65832
	MODE_OVERLAY                 // MODE_OVERLAY
)
