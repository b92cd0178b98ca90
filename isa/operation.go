// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// Operation is an instruction mnemonic.
type Operation int

//go:generate go tool stringer -linecomment -type=Operation
const (
	OP_NONE = Operation(iota) // NONE
	OP_ADC                    // ADC
	OP_ADD                    // ADD
	OP_AND                    // AND
	OP_ASL                    // ASL
	OP_BBR                    // BBR
	OP_BBS                    // BBS
	OP_BCC                    // BCC
	OP_BCS                    // BCS
	OP_BEQ                    // BEQ
	OP_BIT                    // BIT
	OP_BMI                    // BMI
	OP_BNE                    // BNE
	OP_BPL                    // BPL
	OP_BRA                    // BRA
	OP_BRK                    // BRK
	OP_BVC                    // BVC
	OP_BVS                    // BVS
	OP_CLC                    // CLC
	OP_CLD                    // CLD
	OP_CLI                    // CLI
	OP_CLV                    // CLV
	OP_CMP                    // CMP
	OP_CPX                    // CPX
	OP_CPY                    // CPY
	OP_DEC                    // DEC
	OP_DEX                    // DEX
	OP_DEY                    // DEY
	OP_EOR                    // EOR
	OP_INC                    // INC
	OP_INX                    // INX
	OP_INY                    // INY
	OP_JMP                    // JMP
	OP_JSR                    // JSR
	OP_LDA                    // LDA
	OP_LDX                    // LDX
	OP_LDY                    // LDY
	OP_LSR                    // LSR
	OP_NOP                    // NOP
	OP_ORA                    // ORA
	OP_PHA                    // PHA
	OP_PHP                    // PHP
	OP_PHX                    // PHX
	OP_PHY                    // PHY
	OP_PLA                    // PLA
	OP_PLP                    // PLP
	OP_PLX                    // PLX
	OP_PLY                    // PLY
	OP_RMB                    // RMB
	OP_ROL                    // ROL
	OP_ROR                    // ROR
	OP_RTI                    // RTI
	OP_RTS                    // RTS
	OP_SBC                    // SBC
	OP_SEC                    // SEC
	OP_SED                    // SED
	OP_SEI                    // SEI
	OP_SMB                    // SMB
	OP_STA                    // STA
	OP_STP                    // STP
	OP_STX                    // STX
	OP_STY                    // STY
	OP_STZ                    // STZ
	OP_SUB                    // SUB
	OP_TAX                    // TAX
	OP_TAY                    // TAY
	OP_TRB                    // TRB
	OP_TSB                    // TSB
	OP_TSX                    // TSX
	OP_TXA                    // TXA
	OP_TXS                    // TXS
	OP_TYA                    // TYA
	OP_WAI                    // WAI
)
