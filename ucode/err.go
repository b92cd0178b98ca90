package ucode

import (
	"github.com/ezrec/ucode65/isa"
	"github.com/ezrec/ucode65/translate"
)

var f = translate.From

// ErrDuplicateOpcode indicates an opcode begun twice within one variant.
type ErrDuplicateOpcode struct {
	Variant isa.Variant
	Opcode  uint8
}

func (err *ErrDuplicateOpcode) Error() string {
	return f("duplicate opcode 0x%02X in %v", err.Opcode, err.Variant)
}

func (err *ErrDuplicateOpcode) Is(other error) (ok bool) {
	_, ok = other.(*ErrDuplicateOpcode)
	return
}

// ErrWidth indicates a multi-byte transfer of an unsupported byte width.
type ErrWidth Width

func (err ErrWidth) Error() string {
	return f("unsupported transfer width %d", int(err))
}
