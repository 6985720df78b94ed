package sil

import (
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/sable-lang/sable/src/compiler/ast"
)

type (
	// Terminator is an instruction ending a block. It owns the block's
	// outgoing control-flow edges.
	Terminator interface {
		Instruction

		Successors() []*BlockRef
	}

	// BlockRef is one successor-edge slot of a terminator. Pointing it
	// at a block registers the slot in that block's predecessor set and
	// deregisters it from the previous target in the same step, so the
	// two views of an edge cannot drift apart.
	BlockRef struct {
		owner Terminator
		block *Block
	}

	UnreachableInst struct {
		instBase
	}

	ReturnInst struct {
		instBase

		ops [1]Value
	}

	BranchInst struct {
		instBase

		dest BlockRef
	}

	// CondBranchInst transfers control to the first destination when
	// the condition holds and to the second one otherwise.
	CondBranchInst struct {
		instBase

		ops   [1]Value
		dests [2]BlockRef
	}
)

// Successors returns the successor edge slots of an instruction known
// to terminate a block and panics on any other kind.
func Successors(i Instruction) []*BlockRef {
	t, ok := i.(Terminator)
	if !ok {
		panic("successors of a non-terminator")
	}

	return t.Successors()
}

func (r *BlockRef) Owner() Terminator { return r.owner }
func (r *BlockRef) Block() *Block     { return r.block }

// Retarget points the slot at to, keeping both predecessor sets in
// sync. A nil target leaves the slot dangling (erase path only).
func (r *BlockRef) Retarget(to *Block) {
	if r.block == to {
		return
	}

	if r.block != nil {
		r.block.removePred(r)
	}

	r.block = to

	if to != nil {
		to.addPred(r)
	}

	tlog.V("edge").Printw("retarget", "kind", r.owner.Kind(), "dst", blockID(to), "from", loc.Callers(1, 2))
}

func NewUnreachableInst(loc ast.Base) *UnreachableInst {
	i := &UnreachableInst{}
	i.init(i, Unreachable, loc)

	return i
}

func (i *UnreachableInst) Successors() []*BlockRef { return nil }

func NewReturnInst(loc ast.Base, x Value) *ReturnInst {
	i := &ReturnInst{}
	i.ops[0] = x
	i.init(i, Return, loc)

	return i
}

func (i *ReturnInst) Value() Value            { return i.ops[0] }
func (i *ReturnInst) Operands() []Value       { return i.ops[:] }
func (i *ReturnInst) Successors() []*BlockRef { return nil }

func NewBranchInst(loc ast.Base, dest *Block) *BranchInst {
	i := &BranchInst{}
	i.init(i, Branch, loc)
	i.dest.owner = i
	i.dest.Retarget(dest)

	return i
}

func (i *BranchInst) Dest() *BlockRef         { return &i.dest }
func (i *BranchInst) Successors() []*BlockRef { return []*BlockRef{&i.dest} }

func (i *BranchInst) dropRefs() {
	i.dest.Retarget(nil)
}

func NewCondBranchInst(loc ast.Base, cond Value, then, els *Block) *CondBranchInst {
	i := &CondBranchInst{}
	i.ops[0] = cond
	i.init(i, CondBranch, loc)

	for j := range i.dests {
		i.dests[j].owner = i
	}

	i.dests[0].Retarget(then)
	i.dests[1].Retarget(els)

	return i
}

func (i *CondBranchInst) Cond() Value             { return i.ops[0] }
func (i *CondBranchInst) Then() *BlockRef         { return &i.dests[0] }
func (i *CondBranchInst) Else() *BlockRef         { return &i.dests[1] }
func (i *CondBranchInst) Operands() []Value       { return i.ops[:] }
func (i *CondBranchInst) Successors() []*BlockRef { return []*BlockRef{&i.dests[0], &i.dests[1]} }

func (i *CondBranchInst) dropRefs() {
	i.dests[0].Retarget(nil)
	i.dests[1].Retarget(nil)
}

func blockID(b *Block) int {
	if b == nil {
		return -1
	}

	return b.id
}
