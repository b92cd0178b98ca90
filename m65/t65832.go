// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package m65

import (
	"github.com/ezrec/ucode65/isa"
)

// Table65832 is the 65832 opcode map: the wide variant keeps the 6502
// column structure but retires the zero-page modes in favor of full
// absolute and indirect forms, and drops the per-bit family.
func Table65832() Table {
	return Table{
		Variant: isa.MODE_65832,
		Defs: []Def{
			{Code: 0x00, Op: isa.OP_BRK, Mode: isa.STK_s},
			{Code: 0x01, Op: isa.OP_ORA, Mode: isa.AIIX_A_X},
			{Code: 0x06, Op: isa.OP_ASL, Mode: isa.ABS_a},
			{Code: 0x08, Op: isa.OP_PHP, Mode: isa.STK_s},
			{Code: 0x09, Op: isa.OP_ORA, Mode: isa.IMM_m},
			{Code: 0x0A, Op: isa.OP_ASL, Mode: isa.ACC_A},
			{Code: 0x0C, Op: isa.OP_TSB, Mode: isa.ABS_a},
			{Code: 0x0D, Op: isa.OP_ORA, Mode: isa.ABS_a},
			{Code: 0x10, Op: isa.OP_BPL, Mode: isa.PCR_r},
			{Code: 0x11, Op: isa.OP_ORA, Mode: isa.AIIY_A_y},
			{Code: 0x12, Op: isa.OP_ORA, Mode: isa.AIA_A},
			{Code: 0x16, Op: isa.OP_ASL, Mode: isa.AIX_a_x},
			{Code: 0x18, Op: isa.OP_CLC, Mode: isa.IMP_i, Micro: clearFlag(isa.C)},
			{Code: 0x19, Op: isa.OP_ORA, Mode: isa.AIY_a_y},
			{Code: 0x1A, Op: isa.OP_INC, Mode: isa.ACC_A},
			{Code: 0x1C, Op: isa.OP_TRB, Mode: isa.ABS_a},
			{Code: 0x1D, Op: isa.OP_ORA, Mode: isa.AIX_a_x},
			{Code: 0x20, Op: isa.OP_JSR, Mode: isa.ABS_a},
			{Code: 0x21, Op: isa.OP_AND, Mode: isa.AIIX_A_X},
			{Code: 0x22, Op: isa.OP_JSR, Mode: isa.AIA_A},
			{Code: 0x26, Op: isa.OP_ROL, Mode: isa.ABS_a},
			{Code: 0x28, Op: isa.OP_PLP, Mode: isa.STK_s},
			{Code: 0x29, Op: isa.OP_AND, Mode: isa.IMM_m},
			{Code: 0x2A, Op: isa.OP_ROL, Mode: isa.ACC_A},
			{Code: 0x2C, Op: isa.OP_BIT, Mode: isa.ABS_a},
			{Code: 0x2D, Op: isa.OP_AND, Mode: isa.ABS_a},
			{Code: 0x30, Op: isa.OP_BMI, Mode: isa.PCR_r},
			{Code: 0x31, Op: isa.OP_AND, Mode: isa.AIIY_A_y},
			{Code: 0x32, Op: isa.OP_AND, Mode: isa.AIA_A},
			{Code: 0x36, Op: isa.OP_ROL, Mode: isa.AIX_a_x},
			{Code: 0x38, Op: isa.OP_SEC, Mode: isa.IMP_i, Micro: setFlag(isa.C)},
			{Code: 0x39, Op: isa.OP_AND, Mode: isa.AIY_a_y},
			{Code: 0x3A, Op: isa.OP_DEC, Mode: isa.ACC_A},
			{Code: 0x3C, Op: isa.OP_BIT, Mode: isa.AIX_a_x},
			{Code: 0x3D, Op: isa.OP_AND, Mode: isa.AIX_a_x},
			{Code: 0x40, Op: isa.OP_RTI, Mode: isa.STK_s},
			{Code: 0x41, Op: isa.OP_EOR, Mode: isa.AIIX_A_X},
			{Code: 0x46, Op: isa.OP_LSR, Mode: isa.ABS_a},
			{Code: 0x48, Op: isa.OP_PHA, Mode: isa.STK_s},
			{Code: 0x49, Op: isa.OP_EOR, Mode: isa.IMM_m},
			{Code: 0x4A, Op: isa.OP_LSR, Mode: isa.ACC_A},
			{Code: 0x4C, Op: isa.OP_JMP, Mode: isa.ABS_a},
			{Code: 0x4D, Op: isa.OP_EOR, Mode: isa.ABS_a},
			{Code: 0x50, Op: isa.OP_BVC, Mode: isa.PCR_r},
			{Code: 0x51, Op: isa.OP_EOR, Mode: isa.AIIY_A_y},
			{Code: 0x52, Op: isa.OP_EOR, Mode: isa.AIA_A},
			{Code: 0x56, Op: isa.OP_LSR, Mode: isa.AIX_a_x},
			{Code: 0x58, Op: isa.OP_CLI, Mode: isa.IMP_i, Micro: clearFlag(isa.I)},
			{Code: 0x59, Op: isa.OP_EOR, Mode: isa.AIY_a_y},
			{Code: 0x5A, Op: isa.OP_PHY, Mode: isa.STK_s},
			{Code: 0x5C, Op: isa.OP_JSR, Mode: isa.AIIX_A_X},
			{Code: 0x5D, Op: isa.OP_EOR, Mode: isa.AIX_a_x},
			{Code: 0x60, Op: isa.OP_RTS, Mode: isa.STK_s},
			{Code: 0x61, Op: isa.OP_ADC, Mode: isa.AIIX_A_X},
			{Code: 0x66, Op: isa.OP_ROR, Mode: isa.ABS_a},
			{Code: 0x68, Op: isa.OP_PLA, Mode: isa.STK_s},
			{Code: 0x69, Op: isa.OP_ADC, Mode: isa.IMM_m},
			{Code: 0x6A, Op: isa.OP_ROR, Mode: isa.ACC_A},
			{Code: 0x6C, Op: isa.OP_JMP, Mode: isa.AIA_A},
			{Code: 0x6D, Op: isa.OP_ADC, Mode: isa.ABS_a},
			{Code: 0x70, Op: isa.OP_BVS, Mode: isa.PCR_r},
			{Code: 0x71, Op: isa.OP_ADC, Mode: isa.AIIY_A_y},
			{Code: 0x72, Op: isa.OP_ADC, Mode: isa.AIA_A},
			{Code: 0x76, Op: isa.OP_ROR, Mode: isa.AIX_a_x},
			{Code: 0x78, Op: isa.OP_SEI, Mode: isa.IMP_i, Micro: setFlag(isa.I)},
			{Code: 0x79, Op: isa.OP_ADC, Mode: isa.AIY_a_y},
			{Code: 0x7A, Op: isa.OP_PLY, Mode: isa.STK_s},
			{Code: 0x7C, Op: isa.OP_JMP, Mode: isa.AIIX_A_X},
			{Code: 0x7D, Op: isa.OP_ADC, Mode: isa.AIX_a_x},
			{Code: 0x80, Op: isa.OP_BRA, Mode: isa.PCR_r},
			{Code: 0x81, Op: isa.OP_STA, Mode: isa.AIIX_A_X},
			{Code: 0x86, Op: isa.OP_STX, Mode: isa.ABS_a},
			{Code: 0x88, Op: isa.OP_DEY, Mode: isa.IMP_i, Micro: decReg(isa.Y)},
			{Code: 0x89, Op: isa.OP_BIT, Mode: isa.IMM_m},
			{Code: 0x8A, Op: isa.OP_TXA, Mode: isa.IMP_i, Micro: copyReg(isa.X, isa.A)},
			{Code: 0x8C, Op: isa.OP_STY, Mode: isa.ABS_a},
			{Code: 0x8D, Op: isa.OP_STA, Mode: isa.ABS_a},
			{Code: 0x8E, Op: isa.OP_STX, Mode: isa.ABS_a},
			{Code: 0x90, Op: isa.OP_BCC, Mode: isa.PCR_r},
			{Code: 0x91, Op: isa.OP_STA, Mode: isa.AIIY_A_y},
			{Code: 0x92, Op: isa.OP_STA, Mode: isa.AIA_A},
			{Code: 0x96, Op: isa.OP_STZ, Mode: isa.AIX_a_x},
			{Code: 0x98, Op: isa.OP_TYA, Mode: isa.IMP_i, Micro: copyReg(isa.Y, isa.A)},
			{Code: 0x99, Op: isa.OP_STA, Mode: isa.AIY_a_y},
			{Code: 0x9A, Op: isa.OP_TXS, Mode: isa.IMP_i, Micro: copyReg(isa.X, isa.SP)},
			{Code: 0x9C, Op: isa.OP_STY, Mode: isa.AIX_a_x},
			{Code: 0x9D, Op: isa.OP_STA, Mode: isa.AIX_a_x},
			{Code: 0x9E, Op: isa.OP_STX, Mode: isa.AIY_a_y},
			{Code: 0xA0, Op: isa.OP_LDY, Mode: isa.IMM_m},
			{Code: 0xA1, Op: isa.OP_LDA, Mode: isa.AIIX_A_X},
			{Code: 0xA2, Op: isa.OP_LDX, Mode: isa.IMM_m},
			{Code: 0xA8, Op: isa.OP_TAY, Mode: isa.IMP_i, Micro: copyReg(isa.A, isa.Y)},
			{Code: 0xA9, Op: isa.OP_LDA, Mode: isa.IMM_m},
			{Code: 0xAA, Op: isa.OP_TAX, Mode: isa.IMP_i, Micro: copyReg(isa.A, isa.X)},
			{Code: 0xAC, Op: isa.OP_LDY, Mode: isa.ABS_a},
			{Code: 0xAD, Op: isa.OP_LDA, Mode: isa.ABS_a},
			{Code: 0xAE, Op: isa.OP_LDX, Mode: isa.ABS_a},
			{Code: 0xB0, Op: isa.OP_BCS, Mode: isa.PCR_r},
			{Code: 0xB1, Op: isa.OP_LDA, Mode: isa.AIIY_A_y},
			{Code: 0xB2, Op: isa.OP_LDA, Mode: isa.AIA_A},
			{Code: 0xB8, Op: isa.OP_CLV, Mode: isa.IMP_i, Micro: clearFlag(isa.V)},
			{Code: 0xB9, Op: isa.OP_LDA, Mode: isa.AIY_a_y},
			{Code: 0xBA, Op: isa.OP_TSX, Mode: isa.IMP_i, Micro: copyReg(isa.SP, isa.X)},
			{Code: 0xBC, Op: isa.OP_LDY, Mode: isa.AIX_a_x},
			{Code: 0xBD, Op: isa.OP_LDA, Mode: isa.AIX_a_x},
			{Code: 0xBE, Op: isa.OP_LDX, Mode: isa.AIY_a_y},
			{Code: 0xC0, Op: isa.OP_CPY, Mode: isa.IMM_m},
			{Code: 0xC1, Op: isa.OP_CMP, Mode: isa.AIIX_A_X},
			{Code: 0xC6, Op: isa.OP_DEC, Mode: isa.ABS_a},
			{Code: 0xC8, Op: isa.OP_INY, Mode: isa.IMP_i, Micro: incReg(isa.Y)},
			{Code: 0xC9, Op: isa.OP_CMP, Mode: isa.IMM_m},
			{Code: 0xCA, Op: isa.OP_DEX, Mode: isa.IMP_i, Micro: decReg(isa.X)},
			{Code: 0xCC, Op: isa.OP_CPY, Mode: isa.ABS_a},
			{Code: 0xCD, Op: isa.OP_CMP, Mode: isa.ABS_a},
			{Code: 0xD0, Op: isa.OP_BNE, Mode: isa.PCR_r},
			{Code: 0xD1, Op: isa.OP_CMP, Mode: isa.AIIY_A_y},
			{Code: 0xD2, Op: isa.OP_CMP, Mode: isa.AIA_A},
			{Code: 0xD6, Op: isa.OP_DEC, Mode: isa.AIX_a_x},
			{Code: 0xD8, Op: isa.OP_CLD, Mode: isa.IMP_i, Micro: clearFlag(isa.D)},
			{Code: 0xD9, Op: isa.OP_CMP, Mode: isa.AIY_a_y},
			{Code: 0xDA, Op: isa.OP_PHX, Mode: isa.STK_s},
			{Code: 0xDD, Op: isa.OP_CMP, Mode: isa.AIX_a_x},
			{Code: 0xE0, Op: isa.OP_CPX, Mode: isa.IMM_m},
			{Code: 0xE1, Op: isa.OP_SBC, Mode: isa.AIIX_A_X},
			{Code: 0xE6, Op: isa.OP_INC, Mode: isa.ABS_a},
			{Code: 0xE8, Op: isa.OP_INX, Mode: isa.IMP_i, Micro: incReg(isa.X)},
			{Code: 0xE9, Op: isa.OP_SBC, Mode: isa.IMM_m},
			{Code: 0xEA, Op: isa.OP_NOP, Mode: isa.IMP_i},
			{Code: 0xEC, Op: isa.OP_CPX, Mode: isa.ABS_a},
			{Code: 0xED, Op: isa.OP_SBC, Mode: isa.ABS_a},
			{Code: 0xF0, Op: isa.OP_BEQ, Mode: isa.PCR_r},
			{Code: 0xF1, Op: isa.OP_SBC, Mode: isa.AIIY_A_y},
			{Code: 0xF2, Op: isa.OP_SBC, Mode: isa.AIA_A},
			{Code: 0xF6, Op: isa.OP_INC, Mode: isa.AIX_a_x},
			{Code: 0xF8, Op: isa.OP_SED, Mode: isa.IMP_i, Micro: setFlag(isa.D)},
			{Code: 0xF9, Op: isa.OP_SBC, Mode: isa.AIY_a_y},
			{Code: 0xFA, Op: isa.OP_PLX, Mode: isa.STK_s},
			{Code: 0xFD, Op: isa.OP_SBC, Mode: isa.AIX_a_x},
		},
	}
}
