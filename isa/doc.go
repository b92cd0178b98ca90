// Package isa is the instruction-set vocabulary for the 6502-family
// control-logic generator: operations (mnemonics), addressing modes,
// CPU variants, and register names.
//
// Operation and AddrMode constants are declared in lexicographic order of
// their names so that the derived integer ordering matches the string
// ordering the micro-instruction sort key is defined against. Register
// names are plain text fragments; they are spliced into register-transfer
// actions and never compared.
package isa
