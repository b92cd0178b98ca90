// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package m65

import (
	"github.com/ezrec/ucode65/isa"
	"github.com/ezrec/ucode65/rtl"
	"github.com/ezrec/ucode65/ucode"
)

// Table6502 is the 6502 opcode map, WDC 65C02 flavored: the Rockwell
// per-bit family (RMB/SMB/BBR/BBS) is listed beside the base opcode of
// each column, as are the 65C02 additions (BRA, PHX/PHY/PLX/PLY, STZ,
// TRB/TSB, WAI, STP) and the ADD/SUB extensions. Entries without a
// micro-program are decode placeholders; the builder drops and counts
// them.
func Table6502() Table {
	return Table{
		Variant: isa.MODE_6502,
		Defs: []Def{
			{Code: 0x00, Op: isa.OP_BRK, Mode: isa.STK_s, Micro: brkStack},
			{Code: 0x01, Op: isa.OP_ORA, Mode: isa.ZIIX_ZP_X},
			{Code: 0x02, Op: isa.OP_ADD, Mode: isa.ZIIX_ZP_X},
			{Code: 0x04, Op: isa.OP_TSB, Mode: isa.ZPG_zp},
			{Code: 0x05, Op: isa.OP_ORA, Mode: isa.ZPG_zp},
			{Code: 0x06, Op: isa.OP_ASL, Mode: isa.ZPG_zp},
			{Code: 0x07, Op: isa.OP_RMB, Mode: isa.ZPG_zp, Which: 0},
			{Code: 0x17, Op: isa.OP_RMB, Mode: isa.ZPG_zp, Which: 1},
			{Code: 0x27, Op: isa.OP_RMB, Mode: isa.ZPG_zp, Which: 2},
			{Code: 0x37, Op: isa.OP_RMB, Mode: isa.ZPG_zp, Which: 3},
			{Code: 0x47, Op: isa.OP_RMB, Mode: isa.ZPG_zp, Which: 4},
			{Code: 0x57, Op: isa.OP_RMB, Mode: isa.ZPG_zp, Which: 5},
			{Code: 0x67, Op: isa.OP_RMB, Mode: isa.ZPG_zp, Which: 6},
			{Code: 0x77, Op: isa.OP_RMB, Mode: isa.ZPG_zp, Which: 7},
			{Code: 0x08, Op: isa.OP_PHP, Mode: isa.STK_s},
			{Code: 0x09, Op: isa.OP_ORA, Mode: isa.IMM_m},
			{Code: 0x0A, Op: isa.OP_ASL, Mode: isa.ACC_A},
			{Code: 0x0C, Op: isa.OP_TSB, Mode: isa.ABS_a},
			{Code: 0x0D, Op: isa.OP_ORA, Mode: isa.ABS_a, Micro: oraAbsolute},
			{Code: 0x0E, Op: isa.OP_ASL, Mode: isa.ABS_a, Micro: aslAbsolute},
			{Code: 0x0F, Op: isa.OP_BBR, Mode: isa.PCR_r, Which: 0},
			{Code: 0x1F, Op: isa.OP_BBR, Mode: isa.PCR_r, Which: 1},
			{Code: 0x2F, Op: isa.OP_BBR, Mode: isa.PCR_r, Which: 2},
			{Code: 0x3F, Op: isa.OP_BBR, Mode: isa.PCR_r, Which: 3},
			{Code: 0x4F, Op: isa.OP_BBR, Mode: isa.PCR_r, Which: 4},
			{Code: 0x5F, Op: isa.OP_BBR, Mode: isa.PCR_r, Which: 5},
			{Code: 0x6F, Op: isa.OP_BBR, Mode: isa.PCR_r, Which: 6},
			{Code: 0x7F, Op: isa.OP_BBR, Mode: isa.PCR_r, Which: 7},
			{Code: 0x10, Op: isa.OP_BPL, Mode: isa.PCR_r},
			{Code: 0x11, Op: isa.OP_ORA, Mode: isa.ZIIY_ZP_y},
			{Code: 0x12, Op: isa.OP_ORA, Mode: isa.ZPI_ZP},
			{Code: 0x14, Op: isa.OP_TRB, Mode: isa.ZPG_zp},
			{Code: 0x15, Op: isa.OP_ORA, Mode: isa.ZIX_zp_x},
			{Code: 0x16, Op: isa.OP_ASL, Mode: isa.ZIX_zp_x},
			{Code: 0x18, Op: isa.OP_CLC, Mode: isa.IMP_i, Micro: clearFlag(isa.C)},
			{Code: 0x19, Op: isa.OP_ORA, Mode: isa.AIY_a_y},
			{Code: 0x1A, Op: isa.OP_INC, Mode: isa.ACC_A},
			{Code: 0x1C, Op: isa.OP_TRB, Mode: isa.ABS_a},
			{Code: 0x1D, Op: isa.OP_ORA, Mode: isa.AIX_a_x},
			{Code: 0x1E, Op: isa.OP_ASL, Mode: isa.AIX_a_x},
			{Code: 0x20, Op: isa.OP_JSR, Mode: isa.ABS_a},
			{Code: 0x21, Op: isa.OP_AND, Mode: isa.ZIIX_ZP_X},
			{Code: 0x22, Op: isa.OP_JSR, Mode: isa.AIA_A},
			{Code: 0x23, Op: isa.OP_SUB, Mode: isa.ZIIX_ZP_X},
			{Code: 0x24, Op: isa.OP_BIT, Mode: isa.ZPG_zp},
			{Code: 0x25, Op: isa.OP_AND, Mode: isa.ZPG_zp},
			{Code: 0x26, Op: isa.OP_ROL, Mode: isa.ZPG_zp},
			{Code: 0x28, Op: isa.OP_PLP, Mode: isa.STK_s},
			{Code: 0x29, Op: isa.OP_AND, Mode: isa.IMM_m},
			{Code: 0x2A, Op: isa.OP_ROL, Mode: isa.ACC_A},
			{Code: 0x2C, Op: isa.OP_BIT, Mode: isa.ABS_a},
			{Code: 0x2D, Op: isa.OP_AND, Mode: isa.ABS_a},
			{Code: 0x2E, Op: isa.OP_ROL, Mode: isa.ABS_a},
			{Code: 0x30, Op: isa.OP_BMI, Mode: isa.PCR_r},
			{Code: 0x31, Op: isa.OP_AND, Mode: isa.ZIIY_ZP_y},
			{Code: 0x32, Op: isa.OP_AND, Mode: isa.ZPI_ZP},
			{Code: 0x34, Op: isa.OP_BIT, Mode: isa.ZIX_zp_x},
			{Code: 0x35, Op: isa.OP_AND, Mode: isa.ZIX_zp_x},
			{Code: 0x36, Op: isa.OP_ROL, Mode: isa.ZIX_zp_x},
			{Code: 0x38, Op: isa.OP_SEC, Mode: isa.IMP_i, Micro: setFlag(isa.C)},
			{Code: 0x39, Op: isa.OP_AND, Mode: isa.AIY_a_y},
			{Code: 0x3A, Op: isa.OP_DEC, Mode: isa.ACC_A},
			{Code: 0x3C, Op: isa.OP_BIT, Mode: isa.AIX_a_x},
			{Code: 0x3D, Op: isa.OP_AND, Mode: isa.AIX_a_x},
			{Code: 0x3E, Op: isa.OP_ROL, Mode: isa.AIX_a_x},
			{Code: 0x40, Op: isa.OP_RTI, Mode: isa.STK_s},
			{Code: 0x41, Op: isa.OP_EOR, Mode: isa.ZIIX_ZP_X},
			{Code: 0x45, Op: isa.OP_EOR, Mode: isa.ZPG_zp},
			{Code: 0x46, Op: isa.OP_LSR, Mode: isa.ZPG_zp},
			{Code: 0x48, Op: isa.OP_PHA, Mode: isa.STK_s},
			{Code: 0x49, Op: isa.OP_EOR, Mode: isa.IMM_m},
			{Code: 0x4A, Op: isa.OP_LSR, Mode: isa.ACC_A},
			{Code: 0x4C, Op: isa.OP_JMP, Mode: isa.ABS_a},
			{Code: 0x4D, Op: isa.OP_EOR, Mode: isa.ABS_a},
			{Code: 0x4E, Op: isa.OP_LSR, Mode: isa.ABS_a},
			{Code: 0x50, Op: isa.OP_BVC, Mode: isa.PCR_r},
			{Code: 0x51, Op: isa.OP_EOR, Mode: isa.ZIIY_ZP_y},
			{Code: 0x52, Op: isa.OP_EOR, Mode: isa.ZPG_zp},
			{Code: 0x55, Op: isa.OP_EOR, Mode: isa.ZIX_zp_x},
			{Code: 0x56, Op: isa.OP_LSR, Mode: isa.ZIX_zp_x},
			{Code: 0x58, Op: isa.OP_CLI, Mode: isa.IMP_i, Micro: clearFlag(isa.I)},
			{Code: 0x59, Op: isa.OP_EOR, Mode: isa.AIY_a_y},
			{Code: 0x5A, Op: isa.OP_PHY, Mode: isa.STK_s},
			{Code: 0x5C, Op: isa.OP_JSR, Mode: isa.AIIX_A_X},
			{Code: 0x5D, Op: isa.OP_EOR, Mode: isa.AIX_a_x},
			{Code: 0x5E, Op: isa.OP_LSR, Mode: isa.AIX_a_x},
			{Code: 0x60, Op: isa.OP_RTS, Mode: isa.STK_s},
			{Code: 0x61, Op: isa.OP_ADC, Mode: isa.ZIIX_ZP_X},
			{Code: 0x64, Op: isa.OP_STZ, Mode: isa.ZPG_zp},
			{Code: 0x65, Op: isa.OP_ADC, Mode: isa.ZPG_zp},
			{Code: 0x66, Op: isa.OP_ROR, Mode: isa.ZPG_zp},
			{Code: 0x68, Op: isa.OP_PLA, Mode: isa.STK_s},
			{Code: 0x69, Op: isa.OP_ADC, Mode: isa.IMM_m},
			{Code: 0x6A, Op: isa.OP_ROR, Mode: isa.ACC_A},
			{Code: 0x6C, Op: isa.OP_JMP, Mode: isa.AIA_A},
			{Code: 0x6D, Op: isa.OP_ADC, Mode: isa.ABS_a},
			{Code: 0x6E, Op: isa.OP_ROR, Mode: isa.ABS_a},
			{Code: 0x70, Op: isa.OP_BVS, Mode: isa.PCR_r},
			{Code: 0x71, Op: isa.OP_ADC, Mode: isa.ZIIY_ZP_y},
			{Code: 0x72, Op: isa.OP_ADC, Mode: isa.ZPI_ZP},
			{Code: 0x74, Op: isa.OP_STZ, Mode: isa.ZIX_zp_x},
			{Code: 0x75, Op: isa.OP_ADC, Mode: isa.ZIX_zp_x},
			{Code: 0x76, Op: isa.OP_ROR, Mode: isa.ZIX_zp_x},
			{Code: 0x78, Op: isa.OP_SEI, Mode: isa.IMP_i, Micro: setFlag(isa.I)},
			{Code: 0x79, Op: isa.OP_ADC, Mode: isa.AIY_a_y},
			{Code: 0x7A, Op: isa.OP_PLY, Mode: isa.STK_s},
			{Code: 0x7C, Op: isa.OP_JMP, Mode: isa.AIIX_A_X},
			{Code: 0x7D, Op: isa.OP_ADC, Mode: isa.AIX_a_x},
			{Code: 0x7E, Op: isa.OP_ROR, Mode: isa.AIX_a_x},
			{Code: 0x80, Op: isa.OP_BRA, Mode: isa.PCR_r},
			{Code: 0x81, Op: isa.OP_STA, Mode: isa.ZIIX_ZP_X},
			{Code: 0x84, Op: isa.OP_STY, Mode: isa.ZPG_zp},
			{Code: 0x85, Op: isa.OP_STA, Mode: isa.ZPG_zp},
			{Code: 0x86, Op: isa.OP_STX, Mode: isa.ZPG_zp},
			{Code: 0x87, Op: isa.OP_SMB, Mode: isa.ZPG_zp, Which: 0},
			{Code: 0x97, Op: isa.OP_SMB, Mode: isa.ZPG_zp, Which: 1},
			{Code: 0xA7, Op: isa.OP_SMB, Mode: isa.ZPG_zp, Which: 2},
			{Code: 0xB7, Op: isa.OP_SMB, Mode: isa.ZPG_zp, Which: 3},
			{Code: 0xC7, Op: isa.OP_SMB, Mode: isa.ZPG_zp, Which: 4},
			{Code: 0xD7, Op: isa.OP_SMB, Mode: isa.ZPG_zp, Which: 5},
			{Code: 0xE7, Op: isa.OP_SMB, Mode: isa.ZPG_zp, Which: 6},
			{Code: 0xF7, Op: isa.OP_SMB, Mode: isa.ZPG_zp, Which: 7},
			{Code: 0x88, Op: isa.OP_DEY, Mode: isa.IMP_i, Micro: decReg(isa.Y)},
			{Code: 0x89, Op: isa.OP_BIT, Mode: isa.IMM_m},
			{Code: 0x8A, Op: isa.OP_TXA, Mode: isa.IMP_i, Micro: copyReg(isa.X, isa.A)},
			{Code: 0x8C, Op: isa.OP_STY, Mode: isa.ABS_a},
			{Code: 0x8D, Op: isa.OP_STA, Mode: isa.ABS_a},
			{Code: 0x8E, Op: isa.OP_STX, Mode: isa.ABS_a},
			{Code: 0x8F, Op: isa.OP_BBS, Mode: isa.PCR_r, Which: 0},
			{Code: 0x9F, Op: isa.OP_BBS, Mode: isa.PCR_r, Which: 1},
			{Code: 0xAF, Op: isa.OP_BBS, Mode: isa.PCR_r, Which: 2},
			{Code: 0xBF, Op: isa.OP_BBS, Mode: isa.PCR_r, Which: 3},
			{Code: 0xCF, Op: isa.OP_BBS, Mode: isa.PCR_r, Which: 4},
			{Code: 0xDF, Op: isa.OP_BBS, Mode: isa.PCR_r, Which: 5},
			{Code: 0xEF, Op: isa.OP_BBS, Mode: isa.PCR_r, Which: 6},
			{Code: 0xFF, Op: isa.OP_BBS, Mode: isa.PCR_r, Which: 7},
			{Code: 0x90, Op: isa.OP_BCC, Mode: isa.PCR_r},
			{Code: 0x91, Op: isa.OP_STA, Mode: isa.ZIIY_ZP_y},
			{Code: 0x92, Op: isa.OP_STA, Mode: isa.ZIY_zp_y},
			{Code: 0x94, Op: isa.OP_STY, Mode: isa.ZIX_zp_x},
			{Code: 0x95, Op: isa.OP_STA, Mode: isa.ZIX_zp_x},
			{Code: 0x96, Op: isa.OP_STX, Mode: isa.ZIY_zp_y},
			{Code: 0x98, Op: isa.OP_TYA, Mode: isa.IMP_i, Micro: copyReg(isa.Y, isa.A)},
			{Code: 0x99, Op: isa.OP_STA, Mode: isa.AIY_a_y},
			{Code: 0x9A, Op: isa.OP_TXS, Mode: isa.IMP_i, Micro: copyReg(isa.X, isa.SP)},
			{Code: 0x9C, Op: isa.OP_STZ, Mode: isa.ABS_a},
			{Code: 0x9D, Op: isa.OP_STA, Mode: isa.AIX_a_x},
			{Code: 0x9E, Op: isa.OP_STZ, Mode: isa.AIX_a_x},
			{Code: 0xA0, Op: isa.OP_LDY, Mode: isa.IMM_m},
			{Code: 0xA1, Op: isa.OP_LDA, Mode: isa.ZIIX_ZP_X},
			{Code: 0xA2, Op: isa.OP_LDX, Mode: isa.IMM_m},
			{Code: 0xA4, Op: isa.OP_LDY, Mode: isa.ZPG_zp},
			{Code: 0xA5, Op: isa.OP_LDA, Mode: isa.ZPG_zp},
			{Code: 0xA6, Op: isa.OP_LDX, Mode: isa.ZPG_zp},
			{Code: 0xA8, Op: isa.OP_TAY, Mode: isa.IMP_i, Micro: copyReg(isa.A, isa.Y)},
			{Code: 0xA9, Op: isa.OP_LDA, Mode: isa.IMM_m},
			{Code: 0xAA, Op: isa.OP_TAX, Mode: isa.IMP_i, Micro: copyReg(isa.A, isa.X)},
			{Code: 0xAC, Op: isa.OP_LDY, Mode: isa.ABS_a},
			{Code: 0xAD, Op: isa.OP_LDA, Mode: isa.ABS_a},
			{Code: 0xAE, Op: isa.OP_LDX, Mode: isa.ABS_a},
			{Code: 0xB0, Op: isa.OP_BCS, Mode: isa.PCR_r},
			{Code: 0xB1, Op: isa.OP_LDA, Mode: isa.ZIIY_ZP_y},
			{Code: 0xB2, Op: isa.OP_LDA, Mode: isa.ZPI_ZP},
			{Code: 0xB4, Op: isa.OP_LDY, Mode: isa.ZIX_zp_x},
			{Code: 0xB5, Op: isa.OP_LDA, Mode: isa.ZIX_zp_x},
			{Code: 0xB6, Op: isa.OP_LDX, Mode: isa.ZIY_zp_y},
			{Code: 0xB8, Op: isa.OP_CLV, Mode: isa.IMP_i, Micro: clearFlag(isa.V)},
			{Code: 0xB9, Op: isa.OP_LDA, Mode: isa.AIY_a_y},
			{Code: 0xBA, Op: isa.OP_TSX, Mode: isa.IMP_i, Micro: copyReg(isa.SP, isa.X)},
			{Code: 0xBC, Op: isa.OP_LDY, Mode: isa.AIX_a_x},
			{Code: 0xBD, Op: isa.OP_LDA, Mode: isa.AIX_a_x},
			{Code: 0xBE, Op: isa.OP_LDX, Mode: isa.AIY_a_y},
			{Code: 0xC0, Op: isa.OP_CPY, Mode: isa.IMM_m},
			{Code: 0xC1, Op: isa.OP_CMP, Mode: isa.ZIIX_ZP_X},
			{Code: 0xC4, Op: isa.OP_CPY, Mode: isa.ZPG_zp},
			{Code: 0xC5, Op: isa.OP_CMP, Mode: isa.ZPG_zp},
			{Code: 0xC6, Op: isa.OP_DEC, Mode: isa.ZPG_zp},
			{Code: 0xC8, Op: isa.OP_INY, Mode: isa.IMP_i, Micro: incReg(isa.Y)},
			{Code: 0xC9, Op: isa.OP_CMP, Mode: isa.IMM_m},
			{Code: 0xCA, Op: isa.OP_DEX, Mode: isa.IMP_i, Micro: decReg(isa.X)},
			{Code: 0xCB, Op: isa.OP_WAI, Mode: isa.IMP_i},
			{Code: 0xCC, Op: isa.OP_CPY, Mode: isa.ABS_a},
			{Code: 0xCD, Op: isa.OP_CMP, Mode: isa.ABS_a},
			{Code: 0xCE, Op: isa.OP_DEC, Mode: isa.ABS_a},
			{Code: 0xD0, Op: isa.OP_BNE, Mode: isa.PCR_r},
			{Code: 0xD1, Op: isa.OP_CMP, Mode: isa.ZIIY_ZP_y},
			{Code: 0xD2, Op: isa.OP_CMP, Mode: isa.ZPI_ZP},
			{Code: 0xD5, Op: isa.OP_CMP, Mode: isa.ZIX_zp_x},
			{Code: 0xD6, Op: isa.OP_DEC, Mode: isa.ZIX_zp_x},
			{Code: 0xD8, Op: isa.OP_CLD, Mode: isa.IMP_i, Micro: clearFlag(isa.D)},
			{Code: 0xD9, Op: isa.OP_CMP, Mode: isa.AIY_a_y},
			{Code: 0xDA, Op: isa.OP_PHX, Mode: isa.STK_s},
			{Code: 0xDB, Op: isa.OP_STP, Mode: isa.IMP_i},
			{Code: 0xDD, Op: isa.OP_CMP, Mode: isa.AIX_a_x},
			{Code: 0xDE, Op: isa.OP_DEC, Mode: isa.AIX_a_x},
			{Code: 0xE0, Op: isa.OP_CPX, Mode: isa.IMM_m},
			{Code: 0xE1, Op: isa.OP_SBC, Mode: isa.ZIIX_ZP_X},
			{Code: 0xE4, Op: isa.OP_CPX, Mode: isa.ZPG_zp},
			{Code: 0xE5, Op: isa.OP_SBC, Mode: isa.ZPG_zp},
			{Code: 0xE6, Op: isa.OP_INC, Mode: isa.ZPG_zp},
			{Code: 0xE8, Op: isa.OP_INX, Mode: isa.IMP_i, Micro: incReg(isa.X)},
			{Code: 0xE9, Op: isa.OP_SBC, Mode: isa.IMM_m},
			{Code: 0xEA, Op: isa.OP_NOP, Mode: isa.IMP_i},
			{Code: 0xEC, Op: isa.OP_CPX, Mode: isa.ABS_a},
			{Code: 0xED, Op: isa.OP_SBC, Mode: isa.ABS_a},
			{Code: 0xEE, Op: isa.OP_INC, Mode: isa.ABS_a},
			{Code: 0xF0, Op: isa.OP_BEQ, Mode: isa.PCR_r},
			{Code: 0xF1, Op: isa.OP_SBC, Mode: isa.ZIIY_ZP_y},
			{Code: 0xF2, Op: isa.OP_SBC, Mode: isa.ZPI_ZP},
			{Code: 0xF5, Op: isa.OP_SBC, Mode: isa.ZIX_zp_x},
			{Code: 0xF6, Op: isa.OP_INC, Mode: isa.ZIX_zp_x},
			{Code: 0xF8, Op: isa.OP_SED, Mode: isa.IMP_i, Micro: setFlag(isa.D)},
			{Code: 0xF9, Op: isa.OP_SBC, Mode: isa.AIY_a_y},
			{Code: 0xFA, Op: isa.OP_PLX, Mode: isa.STK_s},
			{Code: 0xFD, Op: isa.OP_SBC, Mode: isa.AIX_a_x},
			{Code: 0xFE, Op: isa.OP_INC, Mode: isa.AIX_a_x},
		},
	}
}

func brkStack(b *ucode.Builder) {
	b.SetFlag(isa.I)
	b.AssignN(isa.PC, 0xFFFE)
	b.Push(isa.PC, ucode.Half)
	// P pushes with bit 4 (B) forced set.
	b.PushByte(rtl.Cat(rtl.Part(isa.P, 7, 5), rtl.Bit(1), rtl.Part(isa.P, 3, 0)))
}

func oraAbsolute(b *ucode.Builder) {
	b.Load(isa.ADDR, ucode.Half)
	b.ReadByte(isa.ADDR, isa.RB)
	b.Or(isa.A, isa.RB)
}

func aslAbsolute(b *ucode.Builder) {
	b.Load(isa.ADDR, ucode.Half)
	b.ReadByte(isa.ADDR, isa.RB)
	b.Asl(isa.RB, ucode.Byte)
	b.WriteByte(isa.ADDR, isa.RB)
}
