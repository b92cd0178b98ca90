// Package ucode models microcode as flat (variant, opcode, operation,
// addressing-mode, which, cycle, action) records.
//
// A Builder owns the single pending record being assembled. Action
// methods set its register-transfer text; single-byte bus primitives are
// the only operations that advance the cycle counter, so composite
// multi-byte transfers expand into one record per bus byte with
// contiguous cycles while plain assignments ride the current cycle.
// A pending record is captured into the Store when the next action,
// opcode, or variant begins, and only if it carries both a real operation
// and a non-empty action; opcodes that never produce an action are
// dropped from the Store but recorded for reporting.
package ucode
