// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package rtl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ucode65/isa"
)

func TestText(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Got  string
		Want string
	}){
		{Got: Part(isa.A, 7, 0), Want: "`A[7:0]"},
		{Got: Part(isa.RQW, 127, 120), Want: "`RQW[127:120]"},
		{Got: Part(isa.P, 3, 3), Want: "P[3:3]"},
		{Got: BitOf(isa.A, 7), Want: "`A[7]"},
		{Got: Bit(0), Want: "0"},
		{Got: Bit(31), Want: "31"},
		{Got: Lit(0xFFFE), Want: "65534"},
		{Got: Cat("a", "b"), Want: "{a,b}"},
		{Got: Cat(Part(isa.P, 7, 5), Bit(1), Part(isa.P, 3, 0)), Want: "{P[7:5],1,P[3:0]}"},
		{Got: ReadByte(isa.SP, isa.A), Want: "`READ_BYTE(`SP,`A);"},
		{Got: WriteByte("tmp_SP", isa.A), Want: "`WRITE_BYTE(tmp_SP,`A);"},
	}

	for _, testcase := range table {
		assert.Equal(testcase.Want, testcase.Got)
	}
}

func TestPanics(t *testing.T) {
	assert := assert.New(t)

	assert.PanicsWithError("bad bit range `A[0:7]", func() { Part(isa.A, 0, 7) })
	assert.PanicsWithError("concatenation of 1 fields", func() { Cat("a") })
	assert.PanicsWithError("concatenation of 0 fields", func() { Cat() })
}
