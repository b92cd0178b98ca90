// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package rtl builds the text fragments of register-transfer actions:
// bit and field extraction, concatenation, and the single-byte bus macros.
// Everything here is pure text construction; cycle accounting and capture
// live in the ucode package.
package rtl

import (
	"strconv"
	"strings"

	"github.com/ezrec/ucode65/isa"
)

// Part denotes bits hi..lo of reg, as "reg[hi:lo]". Panics with
// ErrBitRange if lo > hi.
func Part(reg isa.Reg, hi, lo uint8) string {
	if lo > hi {
		panic(&ErrBitRange{Reg: reg, Hi: hi, Lo: lo})
	}
	return reg + "[" + strconv.Itoa(int(hi)) + ":" + strconv.Itoa(int(lo)) + "]"
}

// BitOf denotes bit n of reg, as "reg[n]".
func BitOf(reg isa.Reg, n uint8) string {
	return reg + "[" + strconv.Itoa(int(n)) + "]"
}

// Bit is the decimal literal for a single bit value or index.
func Bit(n uint8) string {
	return strconv.Itoa(int(n))
}

// Lit is the decimal literal for n.
func Lit(n uint32) string {
	return strconv.FormatUint(uint64(n), 10)
}

// Cat concatenates two or more extracted fields, as "{a,b,...}".
// Panics with ErrCatArity given fewer than two fields.
func Cat(fields ...string) string {
	if len(fields) < 2 {
		panic(ErrCatArity(len(fields)))
	}
	return "{" + strings.Join(fields, ",") + "}"
}

// ReadByte is the single-byte bus read macro, "`READ_BYTE(addr,dst);".
func ReadByte(addr, dst string) string {
	return "`READ_BYTE(" + addr + "," + dst + ");"
}

// WriteByte is the single-byte bus write macro, "`WRITE_BYTE(addr,src);".
func WriteByte(addr, src string) string {
	return "`WRITE_BYTE(" + addr + "," + src + ");"
}
