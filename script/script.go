// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script runs Starlark opcode-table extension scripts against a
// ucode.Builder, using the same protocol as the built-in tables: begin a
// variant, begin an opcode, set its operation and mode, append actions.
//
//	variant("MODE_6502")
//	opcode(0x44, op="NOP", mode="ZPG_zp")
//	load_byte(RB)
package script

import (
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ucode65/isa"
	"github.com/ezrec/ucode65/rtl"
	"github.com/ezrec/ucode65/ucode"
)

// Load executes the extension script at path against b.
func Load(b *ucode.Builder, path string) (err error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return
	}
	err = Exec(b, path, src)
	return
}

// Exec executes script source (string or []byte) against b. Builder
// contract violations raised inside action builtins (bad bit range, bad
// width) are recovered into the returned error.
func Exec(b *ucode.Builder, name string, src any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = &ErrScript{Name: name, Err: cause}
		}
	}()

	thread := &starlark.Thread{Name: name}
	opts := syntax.FileOptions{}
	_, err = starlark.ExecFileOptions(&opts, thread, name, src, predeclared(b))
	if err != nil {
		err = &ErrScript{Name: name, Err: err}
	}
	return
}

type builtinFn func(args starlark.Tuple, kwargs []starlark.Tuple) error

func predeclared(b *ucode.Builder) (dict starlark.StringDict) {
	dict = starlark.StringDict{}

	for name, reg := range isa.Registers {
		dict[name] = starlark.String(reg)
	}

	builtin := func(name string, fn builtinFn) {
		dict[name] = starlark.NewBuiltin(name,
			func(_ *starlark.Thread, bi *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
				return starlark.None, fn(args, kwargs)
			})
	}

	str1 := func(name string, fn func(a string)) {
		builtin(name, func(args starlark.Tuple, kwargs []starlark.Tuple) (err error) {
			var a string
			if err = starlark.UnpackPositionalArgs(name, args, kwargs, 1, &a); err == nil {
				fn(a)
			}
			return
		})
	}
	str2 := func(name string, fn func(a, b string)) {
		builtin(name, func(args starlark.Tuple, kwargs []starlark.Tuple) (err error) {
			var a, b string
			if err = starlark.UnpackPositionalArgs(name, args, kwargs, 2, &a, &b); err == nil {
				fn(a, b)
			}
			return
		})
	}
	wide1 := func(name string, fn func(a string, w ucode.Width)) {
		builtin(name, func(args starlark.Tuple, kwargs []starlark.Tuple) (err error) {
			var a string
			var w int
			if err = starlark.UnpackPositionalArgs(name, args, kwargs, 2, &a, &w); err == nil {
				fn(a, ucode.Width(w))
			}
			return
		})
	}
	wide2 := func(name string, fn func(a, b string, w ucode.Width)) {
		builtin(name, func(args starlark.Tuple, kwargs []starlark.Tuple) (err error) {
			var a, b string
			var w int
			if err = starlark.UnpackPositionalArgs(name, args, kwargs, 3, &a, &b, &w); err == nil {
				fn(a, b, ucode.Width(w))
			}
			return
		})
	}

	builtin("variant", func(args starlark.Tuple, kwargs []starlark.Tuple) (err error) {
		var name string
		if err = starlark.UnpackPositionalArgs("variant", args, kwargs, 1, &name); err != nil {
			return
		}
		v, ok := isa.VariantByName(name)
		if !ok {
			return &ErrUnknownName{Kind: "variant", Name: name}
		}
		b.BeginVariant(v)
		return
	})

	builtin("opcode", func(args starlark.Tuple, kwargs []starlark.Tuple) (err error) {
		var code int
		var opName, modeName string
		var which int
		err = starlark.UnpackArgs("opcode", args, kwargs,
			"code", &code, "op", &opName, "mode?", &modeName, "which?", &which)
		if err != nil {
			return
		}
		if code < 0 || code > 0xFF {
			return &ErrOpcodeRange{Code: code}
		}
		op, ok := isa.OperationByName(opName)
		if !ok {
			return &ErrUnknownName{Kind: "operation", Name: opName}
		}
		mode := isa.AM_NONE
		if modeName != "" {
			if mode, ok = isa.AddrModeByName(modeName); !ok {
				return &ErrUnknownName{Kind: "addressing mode", Name: modeName}
			}
		}
		b.BeginOpcode(uint8(code))
		b.SetOperation(op)
		b.SetMode(mode)
		b.SetWhich(uint8(which))
		return
	})

	str2("assign", b.Assign)
	builtin("update", func(args starlark.Tuple, kwargs []starlark.Tuple) (err error) {
		var reg, oper, val string
		if err = starlark.UnpackPositionalArgs("update", args, kwargs, 3, &reg, &oper, &val); err == nil {
			b.Update(reg, oper, val)
		}
		return
	})
	str2("copy", b.Copy)
	str2("bitwise_or", b.Or)
	str1("set_flag", b.SetFlag)
	str1("clear_flag", b.ClearFlag)
	str1("inc", b.Inc)
	str1("dec", b.Dec)
	str1("neg", b.Neg)
	str1("invert", b.Invert)

	str2("read_byte", b.ReadByte)
	str2("read_byte_inc", b.ReadByteInc)
	str2("write_byte", b.WriteByte)
	str2("write_byte_inc", b.WriteByteInc)
	str1("push_byte", b.PushByte)
	str1("pop_byte", b.PopByte)
	str1("load_byte", b.LoadByte)

	wide1("push", b.Push)
	wide1("pop", b.Pop)
	wide1("load", b.Load)
	wide2("read", b.Read)
	wide2("write", b.Write)
	wide1("lsl", b.Lsl)
	wide1("lsr", b.Lsr)
	wide1("asl", b.Asl)
	wide1("asr", b.Asr)

	dict["part"] = starlark.NewBuiltin("part",
		func(_ *starlark.Thread, bi *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var reg string
			var hi, lo int
			err := starlark.UnpackPositionalArgs("part", args, kwargs, 3, &reg, &hi, &lo)
			if err != nil {
				return nil, err
			}
			return starlark.String(rtl.Part(reg, uint8(hi), uint8(lo))), nil
		})
	dict["bit_of"] = starlark.NewBuiltin("bit_of",
		func(_ *starlark.Thread, bi *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var reg string
			var n int
			err := starlark.UnpackPositionalArgs("bit_of", args, kwargs, 2, &reg, &n)
			if err != nil {
				return nil, err
			}
			return starlark.String(rtl.BitOf(reg, uint8(n))), nil
		})
	dict["cat"] = starlark.NewBuiltin("cat",
		func(_ *starlark.Thread, bi *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			fields := make([]string, len(args))
			for n, arg := range args {
				s, ok := starlark.AsString(arg)
				if !ok {
					return nil, &ErrUnknownName{Kind: "field", Name: arg.String()}
				}
				fields[n] = s
			}
			return starlark.String(rtl.Cat(fields...)), nil
		})

	return
}
