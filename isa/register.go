// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// Reg is a register (or pseudo-register) name as it appears in
// register-transfer actions. The backtick prefix marks names the target
// backend resolves as macros/defines; P is the assembled status byte.
type Reg = string

const (
	A  Reg = "`A"
	X  Reg = "`X"
	Y  Reg = "`Y"
	PC Reg = "`PC"
	SP Reg = "`SP"

	// Extended (wide) architectural registers of the 65832.
	EA  Reg = "`EA"
	EX  Reg = "`EX"
	EY  Reg = "`EY"
	EPC Reg = "`EPC"
	ESP Reg = "`ESP"

	// Status byte and individual flags.
	P Reg = "P"
	N Reg = "`N"
	V Reg = "`V"
	U Reg = "`U"
	B Reg = "`B"
	D Reg = "`D"
	I Reg = "`I"
	Z Reg = "`Z"
	C Reg = "`C"

	// Byte-serial transfer temporaries, read side then write side,
	// byte through quad-word width.
	RB  Reg = "`RB"
	RHW Reg = "`RHW"
	RW  Reg = "`RW"
	RDW Reg = "`RDW"
	RQW Reg = "`RQW"
	WB  Reg = "`WB"
	WHW Reg = "`WHW"
	WW  Reg = "`WW"
	WDW Reg = "`WDW"
	WQW Reg = "`WQW"

	// Effective-address temporaries.
	ADDR  Reg = "`ADDR"
	EADDR Reg = "`EADDR"
)

// Registers maps every register name (without the backtick) to its text.
var Registers = map[string]Reg{
	"A": A, "X": X, "Y": Y, "PC": PC, "SP": SP,
	"EA": EA, "EX": EX, "EY": EY, "EPC": EPC, "ESP": ESP,
	"P": P, "N": N, "V": V, "U": U, "B": B, "D": D, "I": I, "Z": Z, "C": C,
	"RB": RB, "RHW": RHW, "RW": RW, "RDW": RDW, "RQW": RQW,
	"WB": WB, "WHW": WHW, "WW": WW, "WDW": WDW, "WQW": WQW,
	"ADDR": ADDR, "EADDR": EADDR,
}
