// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package gen turns a sorted micro-instruction store into the minimized
// nested conditional structure of the control logic: one block per cycle,
// one per addressing mode within it, and within that one guarded action
// per distinct action text, the guard being the OR of the contributing
// operations. Instructions that share a (cycle, mode, action) triple
// collapse into a single guarded statement; that is the entire point.
package gen

import (
	"github.com/ezrec/ucode65/isa"
	"github.com/ezrec/ucode65/ucode"
)

// Origin identifies one opcode contributing to a guard term.
type Origin struct {
	Variant isa.Variant
	Opcode  uint8
}

// Term is one operation predicate of a guard, with every opcode that
// contributed it. Origins beyond the first render as annotations rather
// than repeated predicates.
type Term struct {
	Op      isa.Operation
	Origins []Origin
}

// Guard is one action body and the OR of operation predicates enabling it.
type Guard struct {
	Action string
	Terms  []Term
}

// ModeBlock groups the guards of one addressing mode within a cycle.
type ModeBlock struct {
	Mode   isa.AddrMode
	Guards []Guard
}

// CycleBlock groups the mode blocks of one clock cycle.
type CycleBlock struct {
	Cycle uint8
	Modes []ModeBlock
}

// Group sorts the store and scans it once, producing the emission
// structure. Every record lands in exactly one guard term; the number of
// guards equals the number of distinct (cycle, mode, action) triples.
func Group(store *ucode.Store) (blocks []CycleBlock) {
	store.Sort()

	mis := store.Records
	for index := 0; index < len(mis); {
		var cb CycleBlock
		cb, index = groupCycle(mis, index)
		blocks = append(blocks, cb)
	}
	return
}

func groupCycle(mis []ucode.MicroInst, index int) (cb CycleBlock, next int) {
	cb.Cycle = mis[index].Cycle
	for index < len(mis) && mis[index].Cycle == cb.Cycle {
		var mb ModeBlock
		mb, index = groupMode(mis, index)
		cb.Modes = append(cb.Modes, mb)
	}
	next = index
	return
}

func groupMode(mis []ucode.MicroInst, index int) (mb ModeBlock, next int) {
	first := mis[index]
	mb.Mode = first.Mode
	for index < len(mis) && mis[index].Cycle == first.Cycle && mis[index].Mode == first.Mode {
		var g Guard
		g, index = groupAction(mis, index)
		mb.Guards = append(mb.Guards, g)
	}
	next = index
	return
}

func groupAction(mis []ucode.MicroInst, index int) (g Guard, next int) {
	first := mis[index]
	g.Action = first.Action
	for index < len(mis) {
		mi := mis[index]
		if mi.Cycle != first.Cycle || mi.Mode != first.Mode || mi.Action != first.Action {
			break
		}

		origin := Origin{Variant: mi.Variant, Opcode: mi.Opcode}
		if n := len(g.Terms); n > 0 && g.Terms[n-1].Op == mi.Op {
			// Same operation as the previous term; one predicate covers
			// both, the extra opcode becomes an annotation.
			g.Terms[n-1].Origins = append(g.Terms[n-1].Origins, origin)
		} else {
			g.Terms = append(g.Terms, Term{Op: mi.Op, Origins: []Origin{origin}})
		}
		index++
	}
	next = index
	return
}
