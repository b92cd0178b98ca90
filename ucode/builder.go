// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package ucode

import (
	"log"

	"github.com/ezrec/ucode65/isa"
	"github.com/ezrec/ucode65/rtl"
)

// Width is the byte width of a multi-byte memory transfer.
type Width int

const (
	Byte   = Width(1)
	Half   = Width(2)
	Word   = Width(4)
	Double = Width(8)
	Quad   = Width(16)
)

func (w Width) valid() bool {
	switch w {
	case Byte, Half, Word, Double, Quad:
		return true
	}
	return false
}

// bits is the bit width; top is the highest bit index.
func (w Width) bits() uint8 { return uint8(w) * 8 }
func (w Width) top() uint8  { return w.bits() - 1 }

type opkey struct {
	variant isa.Variant
	opcode  uint8
}

// Builder assembles micro-instructions one opcode at a time. It owns the
// single pending record; begin a variant, begin an opcode, set its
// operation/mode/which, then append actions. Each single-byte bus
// primitive captures one record and advances the cycle; other actions are
// captured at the next append or the next Begin/Finish call.
type Builder struct {
	Verbose bool

	store    *Store
	pending  MicroInst
	begun    bool
	captured int // Records captured since the current opcode began.
	seen     map[opkey]struct{}
	err      error
}

// NewBuilder creates a Builder accumulating into a fresh Store.
func NewBuilder() (b *Builder) {
	b = &Builder{
		store: &Store{},
		seen:  map[opkey]struct{}{},
	}
	return
}

// save captures the pending record if it is complete: a real operation
// and a non-empty action. The action always clears; the cycle does not.
func (b *Builder) save() {
	if b.pending.Op != isa.OP_NONE && b.pending.Action != "" {
		b.store.Records = append(b.store.Records, b.pending)
		b.captured++
	}
	b.pending.Action = ""
}

// setAction captures any prior pending action, then stages a new one.
func (b *Builder) setAction(action string) {
	b.save()
	b.pending.Action = action
}

// flushCycle captures the staged action and advances the cycle counter.
// Bus primitives are the only callers; nothing else moves the cycle.
func (b *Builder) flushCycle() {
	b.save()
	b.pending.Cycle++
}

// finishOpcode flushes the pending record and resets it for the next
// opcode. An opcode that contributed no records is noted as dropped
// rather than treated as an error; reserved and not-yet-authored opcodes
// look identical here.
func (b *Builder) finishOpcode() {
	b.save()
	if b.begun && b.captured == 0 {
		b.store.Dropped = append(b.store.Dropped, Dropped{
			Variant: b.pending.Variant,
			Opcode:  b.pending.Opcode,
			Op:      b.pending.Op,
			Mode:    b.pending.Mode,
		})
		if b.Verbose {
			log.Printf("ucode: %v opcode 0x%02X (%v %v) has no actions, dropped",
				b.pending.Variant, b.pending.Opcode, b.pending.Op, b.pending.Mode)
		}
	}
	b.begun = false
	b.pending.Op = isa.OP_NONE
	b.pending.Mode = isa.AM_NONE
	b.pending.Which = 0
	b.pending.Cycle = 0
}

// BeginVariant finishes the pending opcode and starts describing v.
func (b *Builder) BeginVariant(v isa.Variant) {
	b.finishOpcode()
	b.pending.Variant = v
}

// BeginOpcode finishes the pending opcode and starts a fresh record for
// code under the current variant. A repeated (variant, opcode) is held as
// an error until Finish.
func (b *Builder) BeginOpcode(code uint8) {
	b.finishOpcode()
	key := opkey{b.pending.Variant, code}
	if _, dup := b.seen[key]; dup {
		if b.err == nil {
			b.err = &ErrDuplicateOpcode{Variant: key.variant, Opcode: code}
		}
	}
	b.seen[key] = struct{}{}
	b.pending.Opcode = code
	b.begun = true
	b.captured = 0
}

// SetOperation sets the pending record's mnemonic.
func (b *Builder) SetOperation(op isa.Operation) { b.pending.Op = op }

// SetMode sets the pending record's addressing mode.
func (b *Builder) SetMode(mode isa.AddrMode) { b.pending.Mode = mode }

// SetWhich sets the 0-7 bit selector of the per-bit operation family.
func (b *Builder) SetWhich(which uint8) { b.pending.Which = which }

// Finish flushes the last pending opcode and hands over the Store.
func (b *Builder) Finish() (store *Store, err error) {
	b.finishOpcode()
	store, err = b.store, b.err
	return
}

// Assign stages "dst <= src;".
func (b *Builder) Assign(dst, src string) {
	b.setAction(dst + " <= " + src + ";")
}

// AssignN stages "dst <= n;".
func (b *Builder) AssignN(dst string, n uint32) {
	b.Assign(dst, rtl.Lit(n))
}

// Update stages "reg <= reg oper val;".
func (b *Builder) Update(reg isa.Reg, oper, val string) {
	b.setAction(reg + " <= " + reg + " " + oper + " " + val + ";")
}

// UpdateN stages "reg <= reg oper n;".
func (b *Builder) UpdateN(reg isa.Reg, oper string, n uint32) {
	b.Update(reg, oper, rtl.Lit(n))
}

func (b *Builder) Add(reg isa.Reg, n uint32) { b.UpdateN(reg, "+", n) }
func (b *Builder) Sub(reg isa.Reg, n uint32) { b.UpdateN(reg, "-", n) }
func (b *Builder) Mul(reg isa.Reg, n uint32) { b.UpdateN(reg, "*", n) }
func (b *Builder) Div(reg isa.Reg, n uint32) { b.UpdateN(reg, "/", n) }
func (b *Builder) Eor(reg isa.Reg, n uint32) { b.UpdateN(reg, "^", n) }
func (b *Builder) OrN(reg isa.Reg, n uint32) { b.UpdateN(reg, "|", n) }

// Or stages "dst <= dst | src;".
func (b *Builder) Or(dst, src isa.Reg) { b.Update(dst, "|", src) }

func (b *Builder) Inc(reg isa.Reg) { b.Add(reg, 1) }
func (b *Builder) Dec(reg isa.Reg) { b.Sub(reg, 1) }

// Neg stages "reg <= 0 - reg;".
func (b *Builder) Neg(reg isa.Reg) {
	b.setAction(reg + " <= 0 - " + reg + ";")
}

// Invert stages "reg <= ~reg;".
func (b *Builder) Invert(reg isa.Reg) {
	b.setAction(reg + " <= ~" + reg + ";")
}

// Copy stages "dst <= src;".
func (b *Builder) Copy(src, dst isa.Reg) { b.Assign(dst, src) }

// SetFlag stages "flag <= 1;".
func (b *Builder) SetFlag(flag isa.Reg) { b.AssignN(flag, 1) }

// ClearFlag stages "flag <= 0;".
func (b *Builder) ClearFlag(flag isa.Reg) { b.AssignN(flag, 0) }

// ReadByte captures one bus read of addr into dst and advances the cycle.
func (b *Builder) ReadByte(addr isa.Reg, dst string) {
	b.setAction(rtl.ReadByte(addr, dst))
	b.flushCycle()
}

// ReadByteInc is ReadByte with a post-increment of the address register
// on the same cycle.
func (b *Builder) ReadByteInc(addr isa.Reg, dst string) {
	b.setAction(rtl.ReadByte(addr, dst) + " " + addr + " <= " + addr + " + 1;")
	b.flushCycle()
}

// WriteByte captures one bus write of src to addr and advances the cycle.
func (b *Builder) WriteByte(addr isa.Reg, src string) {
	b.setAction(rtl.WriteByte(addr, src))
	b.flushCycle()
}

// WriteByteInc is WriteByte with a post-increment of the address register
// on the same cycle.
func (b *Builder) WriteByteInc(addr isa.Reg, src string) {
	b.setAction(rtl.WriteByte(addr, src) + " " + addr + " <= " + addr + " + 1;")
	b.flushCycle()
}

// PushByte captures one stack push of val and advances the cycle.
func (b *Builder) PushByte(val string) {
	b.setAction("tmp_SP = SP - 1; " + rtl.WriteByte("tmp_SP", val) + " SP <= tmp_SP;")
	b.flushCycle()
}

// PopByte captures one stack pop into dst and advances the cycle.
func (b *Builder) PopByte(dst string) {
	b.setAction(rtl.ReadByte(isa.SP, dst) + " SP <= SP + 1;")
	b.flushCycle()
}

// LoadByte captures one instruction-stream fetch into dst and advances
// the cycle.
func (b *Builder) LoadByte(dst string) {
	b.setAction(rtl.ReadByte(isa.EPC, dst) + " EPC <= EPC + 1;")
	b.flushCycle()
}

func checkWidth(w Width) {
	if !w.valid() {
		panic(ErrWidth(w))
	}
}

// Push stages a w-byte push of val: exactly w PushByte cycles, high byte
// first, with the lower bytes staged through WQW before SP moves.
func (b *Builder) Push(val isa.Reg, w Width) {
	checkWidth(w)
	if w == Byte {
		b.PushByte(val)
		return
	}
	top := w.top()
	b.Assign(rtl.Part(isa.WQW, top-8, 0), rtl.Part(val, top-8, 0))
	b.PushByte(rtl.Part(val, top, top-7))
	for i := int(w) - 2; i >= 0; i-- {
		b.PushByte(rtl.Part(isa.WQW, uint8(8*i+7), uint8(8*i)))
	}
}

// Pop stages a w-byte pop into dst: exactly w PopByte cycles, low byte
// first, staged through RQW until the low bytes can land in dst whole.
func (b *Builder) Pop(dst isa.Reg, w Width) {
	checkWidth(w)
	if w == Byte {
		b.PopByte(dst)
		return
	}
	top := w.top()
	for i := 0; i < int(w)-1; i++ {
		b.PopByte(rtl.Part(isa.RQW, uint8(8*i+7), uint8(8*i)))
	}
	b.Assign(rtl.Part(dst, top-8, 0), rtl.Part(isa.RQW, top-8, 0))
	b.PopByte(rtl.Part(dst, top, top-7))
}

// Load stages a w-byte instruction-stream fetch into dst, low byte first.
func (b *Builder) Load(dst isa.Reg, w Width) {
	checkWidth(w)
	if w == Byte {
		b.LoadByte(dst)
		return
	}
	top := w.top()
	for i := 0; i < int(w)-1; i++ {
		b.LoadByte(rtl.Part(isa.RQW, uint8(8*i+7), uint8(8*i)))
	}
	b.Assign(rtl.Part(dst, top-8, 0), rtl.Part(isa.RQW, top-8, 0))
	b.LoadByte(rtl.Part(dst, top, top-7))
}

// Read stages a w-byte read from addr into dst, low byte first with
// address auto-increment on all but the final byte.
func (b *Builder) Read(addr isa.Reg, dst isa.Reg, w Width) {
	checkWidth(w)
	if w == Byte {
		b.ReadByte(addr, dst)
		return
	}
	top := w.top()
	for i := 0; i < int(w)-1; i++ {
		b.ReadByteInc(addr, rtl.Part(isa.RQW, uint8(8*i+7), uint8(8*i)))
	}
	b.Assign(rtl.Part(dst, top-8, 0), rtl.Part(isa.RQW, top-8, 0))
	b.ReadByte(addr, rtl.Part(dst, top, top-7))
}

// Write stages a w-byte write of src to addr, low byte first with address
// auto-increment on all but the final byte. The upper bytes are staged
// through RQW before the first bus cycle so src may change underneath.
func (b *Builder) Write(addr isa.Reg, src isa.Reg, w Width) {
	checkWidth(w)
	if w == Byte {
		b.WriteByte(addr, src)
		return
	}
	top := w.top()
	b.Assign(rtl.Part(isa.RQW, top, 8), rtl.Part(src, top, 8))
	b.WriteByteInc(addr, rtl.Part(src, 7, 0))
	for i := 1; i < int(w)-1; i++ {
		b.WriteByteInc(addr, rtl.Part(isa.RQW, uint8(8*i+7), uint8(8*i)))
	}
	b.WriteByte(addr, rtl.Part(isa.RQW, top, top-7))
}

// Lsl stages a logical shift left of the w-byte register reg, capturing
// the shifted-out bit in the carry flag first.
func (b *Builder) Lsl(reg isa.Reg, w Width) {
	checkWidth(w)
	top := w.top()
	b.Assign(isa.C, rtl.BitOf(reg, top))
	b.Assign(reg, rtl.Cat(rtl.Part(reg, top-1, 0), rtl.Bit(0)))
}

// Asl stages an arithmetic shift left; identical text to Lsl.
func (b *Builder) Asl(reg isa.Reg, w Width) { b.Lsl(reg, w) }

// Lsr stages a logical shift right of the w-byte register reg.
func (b *Builder) Lsr(reg isa.Reg, w Width) {
	checkWidth(w)
	top := w.top()
	b.Assign(isa.C, rtl.BitOf(reg, 0))
	b.Assign(reg, rtl.Cat(rtl.Bit(0), rtl.Part(reg, top, 1)))
}

// Asr stages an arithmetic shift right of the w-byte register reg.
func (b *Builder) Asr(reg isa.Reg, w Width) {
	checkWidth(w)
	top := w.top()
	b.Assign(isa.C, rtl.BitOf(reg, 0))
	b.Assign(reg, rtl.Cat(rtl.Bit(top), rtl.Part(reg, top, 1)))
}
