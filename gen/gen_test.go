// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ucode65/isa"
	"github.com/ezrec/ucode65/ucode"
)

// flagStore builds CLC and SEC plus a synthetic CLD that shares CLC's
// action text, so one guard must cover two operations.
func flagStore(t *testing.T) (store *ucode.Store) {
	t.Helper()

	b := ucode.NewBuilder()
	b.BeginVariant(isa.MODE_6502)

	b.BeginOpcode(0x18)
	b.SetOperation(isa.OP_CLC)
	b.SetMode(isa.IMP_i)
	b.ClearFlag(isa.C)

	b.BeginOpcode(0x38)
	b.SetOperation(isa.OP_SEC)
	b.SetMode(isa.IMP_i)
	b.SetFlag(isa.C)

	b.BeginOpcode(0xD8)
	b.SetOperation(isa.OP_CLD)
	b.SetMode(isa.IMP_i)
	b.ClearFlag(isa.C)

	store, err := b.Finish()
	assert.NoError(t, err)
	return
}

func TestGroupFlags(t *testing.T) {
	assert := assert.New(t)

	blocks := Group(flagStore(t))

	if !assert.Len(blocks, 1) {
		return
	}
	cb := blocks[0]
	assert.Equal(uint8(0), cb.Cycle)
	if !assert.Len(cb.Modes, 1) {
		return
	}
	mb := cb.Modes[0]
	assert.Equal(isa.IMP_i, mb.Mode)
	if !assert.Len(mb.Guards, 2) {
		return
	}

	clear := mb.Guards[0]
	assert.Equal("`C <= 0;", clear.Action)
	if assert.Len(clear.Terms, 2) {
		assert.Equal(isa.OP_CLC, clear.Terms[0].Op)
		assert.Equal([]Origin{{Variant: isa.MODE_6502, Opcode: 0x18}}, clear.Terms[0].Origins)
		assert.Equal(isa.OP_CLD, clear.Terms[1].Op)
		assert.Equal([]Origin{{Variant: isa.MODE_6502, Opcode: 0xD8}}, clear.Terms[1].Origins)
	}

	set := mb.Guards[1]
	assert.Equal("`C <= 1;", set.Action)
	if assert.Len(set.Terms, 1) {
		assert.Equal(isa.OP_SEC, set.Terms[0].Op)
	}
}

func TestRenderFlags(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	err := Render(&out, Group(flagStore(t)))
	assert.NoError(err)

	want := `if (reg_cycle == 0) begin
    if (reg_address_mode_IMP_i) begin
        if (
            reg_operation_CLC // MODE_6502 [18]
            || reg_operation_CLD // MODE_6502 [D8]
        ) begin
            ` + "`" + `C <= 0;
        end
        if (
            reg_operation_SEC // MODE_6502 [38]
        ) begin
            ` + "`" + `C <= 1;
        end
    end // IMP_i
end // cycle 0
`
	assert.Equal(want, out.String())
}

// The same operation contributing twice to one guard folds into a
// single predicate with annotation origins.
func TestRepeatedOperationFolds(t *testing.T) {
	assert := assert.New(t)

	b := ucode.NewBuilder()
	b.BeginVariant(isa.MODE_6502)
	for _, code := range []uint8{0xEA, 0xFA} {
		b.BeginOpcode(code)
		b.SetOperation(isa.OP_NOP)
		b.SetMode(isa.IMP_i)
		b.Copy(isa.A, isa.A)
	}
	store, err := b.Finish()
	assert.NoError(err)

	blocks := Group(store)
	guards := blocks[0].Modes[0].Guards
	if !assert.Len(guards, 1) {
		return
	}
	if assert.Len(guards[0].Terms, 1) {
		assert.Equal([]Origin{
			{Variant: isa.MODE_6502, Opcode: 0xEA},
			{Variant: isa.MODE_6502, Opcode: 0xFA},
		}, guards[0].Terms[0].Origins)
	}

	var out strings.Builder
	assert.NoError(Render(&out, blocks))
	assert.Contains(out.String(), "reg_operation_NOP // MODE_6502 [EA]")
	assert.Contains(out.String(), "// also: NOP MODE_6502 [FA]")
}

// Every record lands in exactly one guard origin, no matter how the
// cycles and modes interleave.
func TestGroupCompleteness(t *testing.T) {
	assert := assert.New(t)

	b := ucode.NewBuilder()
	b.BeginVariant(isa.MODE_6502)

	b.BeginOpcode(0x0E)
	b.SetOperation(isa.OP_ASL)
	b.SetMode(isa.ABS_a)
	b.LoadByte(isa.ADDR)
	b.LoadByte(isa.RB)
	b.ReadByte(isa.ADDR, isa.RB)
	b.WriteByte(isa.ADDR, isa.RB)

	b.BeginOpcode(0x18)
	b.SetOperation(isa.OP_CLC)
	b.SetMode(isa.IMP_i)
	b.ClearFlag(isa.C)

	store, err := b.Finish()
	assert.NoError(err)

	origins := 0
	for _, cb := range Group(store) {
		for _, mb := range cb.Modes {
			for _, g := range mb.Guards {
				for _, term := range g.Terms {
					origins += len(term.Origins)
				}
			}
		}
	}
	assert.Equal(len(store.Records), origins)
}
