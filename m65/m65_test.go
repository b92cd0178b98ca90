// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package m65

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ucode65/gen"
	"github.com/ezrec/ucode65/isa"
)

func TestTableShapes(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Table   Table
		Variant isa.Variant
		Defs    int
	}){
		{Table: Table6502(), Variant: isa.MODE_6502, Defs: 216},
		{Table: Table65832(), Variant: isa.MODE_65832, Defs: 138},
	}

	for _, testcase := range table {
		assert.Equal(testcase.Variant, testcase.Table.Variant)
		assert.Len(testcase.Table.Defs, testcase.Defs)

		seen := map[uint8]struct{}{}
		for _, d := range testcase.Table.Defs {
			_, dup := seen[d.Code]
			assert.False(dup, "%v opcode %02X listed twice", testcase.Table.Variant, d.Code)
			seen[d.Code] = struct{}{}
			assert.NotEqual(isa.OP_NONE, d.Op, "%v opcode %02X", testcase.Table.Variant, d.Code)
		}
	}
}

func TestWhichFamilies(t *testing.T) {
	assert := assert.New(t)

	families := map[isa.Operation][]uint8{}
	for _, d := range Table6502().Defs {
		switch d.Op {
		case isa.OP_RMB, isa.OP_SMB, isa.OP_BBR, isa.OP_BBS:
			families[d.Op] = append(families[d.Op], d.Which)
		}
	}

	for op, whiches := range families {
		assert.ElementsMatch([]uint8{0, 1, 2, 3, 4, 5, 6, 7}, whiches, op.String())
	}
	assert.Len(families, 4)
}

func TestBuildAll(t *testing.T) {
	assert := assert.New(t)

	store, err := BuildAll()
	assert.NoError(err)

	programmed := 0
	total := 0
	for _, tab := range Tables() {
		for _, d := range tab.Defs {
			total++
			if d.Micro != nil {
				programmed++
			}
		}
	}

	sum := store.Summarize()
	assert.Equal(programmed, sum.Opcodes)
	assert.Equal(total-programmed, sum.Dropped)
	assert.Positive(sum.Variants[isa.MODE_6502])
	assert.Positive(sum.Variants[isa.MODE_65832])
}

// Two independent builds render byte-identical output.
func TestDeterministicOutput(t *testing.T) {
	assert := assert.New(t)

	render := func() string {
		store, err := BuildAll()
		assert.NoError(err)
		var out strings.Builder
		assert.NoError(gen.Render(&out, gen.Group(store)))
		return out.String()
	}

	first := render()
	second := render()
	assert.NotEmpty(first)
	assert.Equal(first, second)
}

func TestBrkStack(t *testing.T) {
	assert := assert.New(t)

	store, err := Table6502().Build()
	assert.NoError(err)

	actions := []string{}
	for _, mi := range store.Records {
		if mi.Opcode == 0x00 {
			actions = append(actions, mi.Action)
		}
	}

	// Flag set and vector load, a two-byte PC push staged through WQW,
	// and the status byte with B forced high.
	assert.Contains(actions, "`I <= 1;")
	assert.Contains(actions, "`PC <= 65534;")
	assert.Contains(actions, "tmp_SP = SP - 1; `WRITE_BYTE(tmp_SP,{P[7:5],1,P[3:0]}); SP <= tmp_SP;")
}
