package script

import (
	"github.com/ezrec/ucode65/translate"
)

var f = translate.From

// ErrScript wraps any failure raised while executing an extension script.
type ErrScript struct {
	Name string
	Err  error
}

func (err *ErrScript) Error() string {
	return f("script %v: %v", err.Name, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}

// ErrUnknownName indicates a script naming a variant, operation, mode, or
// field the instruction set does not define.
type ErrUnknownName struct {
	Kind string
	Name string
}

func (err *ErrUnknownName) Error() string {
	return f("unknown %v %q", err.Kind, err.Name)
}

func (err *ErrUnknownName) Is(other error) (ok bool) {
	_, ok = other.(*ErrUnknownName)
	return
}

// ErrOpcodeRange indicates an opcode outside 0x00..0xFF.
type ErrOpcodeRange struct {
	Code int
}

func (err *ErrOpcodeRange) Error() string {
	return f("opcode %d out of range", err.Code)
}
