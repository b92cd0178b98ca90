// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package m65 holds the opcode maps of the 6502 and 65832 variants as
// data tables, and drives a ucode.Builder over them.
package m65

import (
	"errors"

	"github.com/ezrec/ucode65/isa"
	"github.com/ezrec/ucode65/ucode"
)

// Micro appends one opcode's register-transfer actions to a builder.
type Micro func(b *ucode.Builder)

// Def describes one opcode: its mnemonic, addressing mode, optional
// per-bit selector, and micro-program. A nil Micro means the opcode is
// listed but not yet micro-programmed; it will be dropped (and counted)
// by the builder.
type Def struct {
	Code  uint8
	Op    isa.Operation
	Mode  isa.AddrMode
	Which uint8
	Micro Micro
}

// Table is the full opcode map of one CPU variant.
type Table struct {
	Variant isa.Variant
	Defs    []Def
}

// Populate drives b over every definition in table order.
func (t Table) Populate(b *ucode.Builder) {
	b.BeginVariant(t.Variant)
	for _, d := range t.Defs {
		b.BeginOpcode(d.Code)
		b.SetOperation(d.Op)
		b.SetMode(d.Mode)
		b.SetWhich(d.Which)
		if d.Micro != nil {
			d.Micro(b)
		}
	}
}

// Build populates a fresh builder and returns the variant-local store.
func (t Table) Build() (store *ucode.Store, err error) {
	b := ucode.NewBuilder()
	t.Populate(b)
	store, err = b.Finish()
	return
}

// Tables lists every populated variant.
func Tables() []Table {
	return []Table{Table6502(), Table65832()}
}

// BuildAll builds every variant and concatenates the stores.
func BuildAll() (store *ucode.Store, err error) {
	var stores []*ucode.Store
	var errs []error
	for _, t := range Tables() {
		s, e := t.Build()
		stores = append(stores, s)
		errs = append(errs, e)
	}
	store, err = ucode.Concat(stores...)
	err = errors.Join(append(errs, err)...)
	return
}

// Shared micro-program combinators.

func setFlag(flag isa.Reg) Micro {
	return func(b *ucode.Builder) { b.SetFlag(flag) }
}

func clearFlag(flag isa.Reg) Micro {
	return func(b *ucode.Builder) { b.ClearFlag(flag) }
}

func copyReg(src, dst isa.Reg) Micro {
	return func(b *ucode.Builder) { b.Copy(src, dst) }
}

func incReg(reg isa.Reg) Micro {
	return func(b *ucode.Builder) { b.Inc(reg) }
}

func decReg(reg isa.Reg) Micro {
	return func(b *ucode.Builder) { b.Dec(reg) }
}
