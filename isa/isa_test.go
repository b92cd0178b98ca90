// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameLookups(t *testing.T) {
	assert := assert.New(t)

	for op := OP_NONE; op <= OP_WAI; op++ {
		found, ok := OperationByName(op.String())
		assert.True(ok, op.String())
		assert.Equal(op, found)
	}
	for am := AM_NONE; am <= ZPI_ZP; am++ {
		found, ok := AddrModeByName(am.String())
		assert.True(ok, am.String())
		assert.Equal(am, found)
	}
	for v := MODE_NONE; v <= MODE_OVERLAY; v++ {
		found, ok := VariantByName(v.String())
		assert.True(ok, v.String())
		assert.Equal(v, found)
	}

	_, ok := OperationByName("XYZZY")
	assert.False(ok)
}

// The grouping sort compares these enums as integers, so declaration
// order past the NONE sentinel must agree with name order.
func TestDeclarationOrder(t *testing.T) {
	assert := assert.New(t)

	for op := OP_ADC; op < OP_WAI; op++ {
		assert.Less(op.String(), (op + 1).String())
	}
	for am := ABS_a; am < ZPI_ZP; am++ {
		assert.Less(am.String(), (am + 1).String())
	}
	for v := MODE_6502; v < MODE_OVERLAY; v++ {
		assert.Less(v.String(), (v + 1).String())
	}
}

func TestRegisters(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(A, Registers["A"])
	assert.Equal(P, Registers["P"])
	assert.Equal("`A", A)
	assert.Equal("P", P)

	for name, reg := range Registers {
		found, ok := RegByName(name)
		assert.True(ok, name)
		assert.Equal(reg, found)
	}

	_, ok := RegByName("Q")
	assert.False(ok)
}
