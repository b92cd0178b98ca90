package isa

var (
	operationByName = map[string]Operation{}
	addrModeByName  = map[string]AddrMode{}
	variantByName   = map[string]Variant{}
)

func init() {
	for op := OP_NONE; op <= OP_WAI; op++ {
		operationByName[op.String()] = op
	}
	for am := AM_NONE; am <= ZPI_ZP; am++ {
		addrModeByName[am.String()] = am
	}
	for v := MODE_NONE; v <= MODE_OVERLAY; v++ {
		variantByName[v.String()] = v
	}
}

// OperationByName resolves a mnemonic ("LDA") to its Operation.
func OperationByName(name string) (op Operation, ok bool) {
	op, ok = operationByName[name]
	return
}

// AddrModeByName resolves an addressing-mode token ("ABS_a") to its AddrMode.
func AddrModeByName(name string) (am AddrMode, ok bool) {
	am, ok = addrModeByName[name]
	return
}

// VariantByName resolves a variant token ("MODE_6502") to its Variant.
func VariantByName(name string) (v Variant, ok bool) {
	v, ok = variantByName[name]
	return
}

// RegByName resolves a register name ("A") to its action-text spelling.
func RegByName(name string) (reg Reg, ok bool) {
	reg, ok = Registers[name]
	return
}
