// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ucode65/isa"
	"github.com/ezrec/ucode65/script"
	"github.com/ezrec/ucode65/ucode"
)

func TestSelectTables(t *testing.T) {
	assert := assert.New(t)

	tables, err := selectTables(nil)
	assert.NoError(err)
	assert.Len(tables, 2)

	tables, err = selectTables([]string{"MODE_6502"})
	assert.NoError(err)
	if assert.Len(tables, 1) {
		assert.Equal(isa.MODE_6502, tables[0].Variant)
	}

	_, err = selectTables([]string{"MODE_6510"})
	assert.ErrorIs(err, &script.ErrUnknownName{})
}

func writeScript(t *testing.T, src string) (path string) {
	t.Helper()

	path = filepath.Join(t.TempDir(), "patch.star")
	assert.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return
}

// A script redefining an opcode the built-in tables already program
// must abort generation, not merge contradictory records.
func TestBuildStoreScriptRedefinition(t *testing.T) {
	assert := assert.New(t)

	path := writeScript(t, `
variant("MODE_6502")
opcode(0x18, op="SEC", mode="IMP_i")
set_flag(C)
`)

	_, err := buildStore(nil, []string{path}, false)
	assert.ErrorIs(err, &ucode.ErrDuplicateOpcode{})
}

// A script programming an opcode the tables only list is the intended
// patch path: the merge succeeds and the opcode leaves the drop list.
func TestBuildStoreScriptPatch(t *testing.T) {
	assert := assert.New(t)

	path := writeScript(t, `
variant("MODE_6502")
opcode(0x02, op="ADD", mode="ZIIX_ZP_X")
load_byte(RB)
`)

	base, err := buildStore(nil, nil, false)
	assert.NoError(err)

	patched, err := buildStore(nil, []string{path}, false)
	assert.NoError(err)

	assert.Equal(base.Summarize().Dropped-1, patched.Summarize().Dropped)
	assert.Equal(base.Summarize().Opcodes+1, patched.Summarize().Opcodes)
}
