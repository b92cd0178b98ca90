// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package script

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ucode65/isa"
	"github.com/ezrec/ucode65/rtl"
	"github.com/ezrec/ucode65/ucode"
)

const flagScript = `
variant("MODE_6502")

opcode(0x18, op="CLC", mode="IMP_i")
clear_flag(C)

opcode(0x38, op="SEC", mode="IMP_i")
set_flag(C)
`

func TestExec(t *testing.T) {
	assert := assert.New(t)

	b := ucode.NewBuilder()
	assert.NoError(Exec(b, "flags.star", flagScript))

	store, err := b.Finish()
	assert.NoError(err)

	if assert.Len(store.Records, 2) {
		assert.Equal(isa.MODE_6502, store.Records[0].Variant)
		assert.Equal(uint8(0x18), store.Records[0].Opcode)
		assert.Equal(isa.OP_CLC, store.Records[0].Op)
		assert.Equal(isa.IMP_i, store.Records[0].Mode)
		assert.Equal("`C <= 0;", store.Records[0].Action)
		assert.Equal("`C <= 1;", store.Records[1].Action)
	}
}

func TestExecWhichAndBus(t *testing.T) {
	assert := assert.New(t)

	const src = `
variant("MODE_6502")
opcode(0x07, op="RMB", mode="ZPG_zp", which=0)
load_byte(ADDR)
read_byte(ADDR, RB)
assign(part(RB, 7, 0), cat(part(RB, 7, 1), "0"))
write_byte(ADDR, RB)
`
	b := ucode.NewBuilder()
	assert.NoError(Exec(b, "rmb.star", src))

	store, err := b.Finish()
	assert.NoError(err)

	if assert.Len(store.Records, 4) {
		assert.Equal(uint8(0), store.Records[0].Which)
		assert.Equal("`READ_BYTE(`ADDR,`RB);", store.Records[1].Action)
		assert.Equal("`RB[7:0] <= {`RB[7:1],0};", store.Records[2].Action)
		assert.Equal(uint8(2), store.Records[2].Cycle)
		assert.Equal("`WRITE_BYTE(`ADDR,`RB);", store.Records[3].Action)
	}
}

func TestExecErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Name string
		Src  string
		Want error
	}){
		{Name: "unknown operation",
			Src:  `variant("MODE_6502")` + "\n" + `opcode(0x10, op="XYZZY")`,
			Want: &ErrUnknownName{}},
		{Name: "unknown variant",
			Src:  `variant("MODE_6510")`,
			Want: &ErrUnknownName{}},
		{Name: "unknown mode",
			Src:  `variant("MODE_6502")` + "\n" + `opcode(0x10, op="NOP", mode="BOGUS")`,
			Want: &ErrUnknownName{}},
	}

	for _, testcase := range table {
		b := ucode.NewBuilder()
		err := Exec(b, testcase.Name, testcase.Src)
		assert.ErrorIs(err, testcase.Want, testcase.Name)

		var wrapped *ErrScript
		assert.ErrorAs(err, &wrapped, testcase.Name)
	}
}

// Builder contract panics surface as script errors, not crashes.
func TestExecRecoversPanics(t *testing.T) {
	assert := assert.New(t)

	b := ucode.NewBuilder()
	err := Exec(b, "badrange.star", `part(A, 0, 7)`)

	var bad *rtl.ErrBitRange
	assert.ErrorAs(err, &bad)

	b = ucode.NewBuilder()
	err = Exec(b, "badwidth.star", `
variant("MODE_6502")
opcode(0x48, op="PHA", mode="STK_s")
push(A, 3)
`)
	assert.ErrorIs(err, ucode.ErrWidth(3))
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "flags.star")
	assert.NoError(os.WriteFile(path, []byte(flagScript), 0o644))

	b := ucode.NewBuilder()
	assert.NoError(Load(b, path))

	store, err := b.Finish()
	assert.NoError(err)
	assert.Len(store.Records, 2)
}
