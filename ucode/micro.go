// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package ucode

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/ucode65/internal"
	"github.com/ezrec/ucode65/isa"
)

// MicroInst is one register-transfer action of one opcode's execution,
// stamped with the clock cycle it runs on.
type MicroInst struct {
	Variant isa.Variant
	Opcode  uint8
	Op      isa.Operation
	Mode    isa.AddrMode
	Which   uint8 // Bit selector for the per-bit family; otherwise 0.
	Cycle   uint8
	Action  string
}

// Compare is the total ordering the grouping engine depends on. The key
// priority (cycle, mode, action, operation, variant, which, opcode) makes
// all records of one emitted guard contiguous, with duplicate operations
// adjacent inside the run; the trailing opcode key leaves no ties, so
// output is reproducible.
func (mi MicroInst) Compare(other MicroInst) int {
	return cmp.Or(
		cmp.Compare(mi.Cycle, other.Cycle),
		cmp.Compare(mi.Mode, other.Mode),
		strings.Compare(mi.Action, other.Action),
		cmp.Compare(mi.Op, other.Op),
		cmp.Compare(mi.Variant, other.Variant),
		cmp.Compare(mi.Which, other.Which),
		cmp.Compare(mi.Opcode, other.Opcode),
	)
}

// Dropped records an opcode that was begun but never produced an action,
// and therefore contributes nothing to the Store.
type Dropped struct {
	Variant isa.Variant
	Opcode  uint8
	Op      isa.Operation
	Mode    isa.AddrMode
}

// Store is the flat, order-independent collection of captured records.
// Append-only while building; read-only beyond sorting afterwards.
type Store struct {
	Records []MicroInst
	Dropped []Dropped
}

// Sort orders the records by MicroInst.Compare.
func (s *Store) Sort() {
	slices.SortFunc(s.Records, MicroInst.Compare)
}

// All iterates the records in their current order.
func (s *Store) All() iter.Seq[MicroInst] {
	return slices.Values(s.Records)
}

// Concat merges variant-local stores into one, preserving per-store
// order. Each (variant, opcode) may contribute records from at most one
// store; a second store redefining it is reported as ErrDuplicateOpcode.
// An opcode dropped by one store but programmed by another is a patch,
// not a collision, and its drop entry is retired.
func Concat(stores ...*Store) (merged *Store, err error) {
	merged = &Store{}

	owner := map[opkey]int{}
	seqs := make([]iter.Seq[MicroInst], 0, len(stores))
	for n, s := range stores {
		seqs = append(seqs, s.All())
		for _, mi := range s.Records {
			key := opkey{mi.Variant, mi.Opcode}
			if prev, dup := owner[key]; dup && prev != n {
				if err == nil {
					err = &ErrDuplicateOpcode{Variant: mi.Variant, Opcode: mi.Opcode}
				}
			}
			owner[key] = n
		}
	}

	for mi := range internal.IterSeqConcat(seqs...) {
		merged.Records = append(merged.Records, mi)
	}

	for _, s := range stores {
		for _, d := range s.Dropped {
			if _, programmed := owner[opkey{d.Variant, d.Opcode}]; !programmed {
				merged.Dropped = append(merged.Dropped, d)
			}
		}
	}
	return
}

// Summary of a store, for reporting.
type Summary struct {
	Records  int
	Opcodes  int // Opcodes contributing at least one record.
	Dropped  int // Opcodes begun but never given an action.
	Variants map[isa.Variant]int
}

// Summarize counts records, contributing opcodes, and drops per variant.
func (s *Store) Summarize() (sum Summary) {
	sum.Records = len(s.Records)
	sum.Dropped = len(s.Dropped)
	sum.Variants = map[isa.Variant]int{}

	type opkey struct {
		variant isa.Variant
		opcode  uint8
	}
	seen := map[opkey]struct{}{}
	for _, mi := range s.Records {
		sum.Variants[mi.Variant]++
		seen[opkey{mi.Variant, mi.Opcode}] = struct{}{}
	}
	sum.Opcodes = len(seen)
	return
}
