// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// AddrMode is the method by which an instruction's operand address is
// computed. The spellings are the tokens that surface in generated guards
// (reg_address_mode_<name>).
type AddrMode int

//go:generate go tool stringer -linecomment -type=AddrMode
const (
	AM_NONE   = AddrMode(iota) // AM_NONE
	ABS_a                      // ABS_a
	ACC_A                      // ACC_A
	AIA_A                      // AIA_A
	AIIX_A_X                   // AIIX_A_X
	AIIY_A_y                   // AIIY_A_y
	AIX_a_x                    // AIX_a_x
	AIY_a_y                    // AIY_a_y
	IMM_m                      // IMM_m
	IMP_i                      // IMP_i
	PCR_r                      // PCR_r
	STK_s                      // STK_s
	ZIIX_ZP_X                  // ZIIX_ZP_X
	ZIIY_ZP_y                  // ZIIY_ZP_y
	ZIX_zp_x                   // ZIX_zp_x
	ZIY_zp_y                   // ZIY_zp_y
	ZPG_zp                     // ZPG_zp
	ZPI_ZP                     // ZPI_ZP
)
