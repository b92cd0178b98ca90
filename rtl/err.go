package rtl

import (
	"github.com/ezrec/ucode65/isa"
	"github.com/ezrec/ucode65/translate"
)

var f = translate.From

// ErrBitRange indicates a field extraction with lo > hi.
type ErrBitRange struct {
	Reg isa.Reg
	Hi  uint8
	Lo  uint8
}

func (err *ErrBitRange) Error() string {
	return f("bad bit range %v[%d:%d]", err.Reg, err.Hi, err.Lo)
}

// ErrCatArity indicates a concatenation of fewer than two fields.
type ErrCatArity int

func (err ErrCatArity) Error() string {
	return f("concatenation of %d fields", int(err))
}
