package sil

import (
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/sable-lang/sable/src/compiler/ast"
	"github.com/sable-lang/sable/src/compiler/tp"
)

type (
	// Builder appends instructions at an insertion block, the way a
	// lowering pass emits code.
	Builder struct {
		fn *Function
		b  *Block
	}
)

func NewBuilder(fn *Function) *Builder {
	return &Builder{fn: fn}
}

func (u *Builder) Fn() *Function { return u.fn }
func (u *Builder) Block() *Block { return u.b }

func (u *Builder) SetBlock(b *Block) {
	if b != nil && b.fn != u.fn {
		panic("block belongs to another function")
	}

	u.b = b
}

// Append links i at the end of the current block and returns it.
func (u *Builder) Append(i Instruction) Instruction {
	if u.b == nil {
		panic("no insertion block")
	}

	u.b.Insts().PushBack(i)

	tlog.V("emit").Printw("emit", "block", u.b.id, "kind", i.Kind(), "from", loc.Callers(1, 2))

	return i
}

func (u *Builder) Apply(pos ast.Base, callee Value, args []Value) *ApplyInst {
	i := NewApplyInst(u.fn, pos, callee, args)
	u.Append(i)

	return i
}

func (u *Builder) Closure(pos ast.Base, callee Value, args []Value) *ClosureInst {
	i := NewClosureInst(u.fn, pos, callee, args)
	u.Append(i)

	return i
}

func (u *Builder) Tuple(pos ast.Base, typ *tp.Tuple, elems []Value) *TupleInst {
	i := NewTupleInst(u.fn, pos, typ, elems)
	u.Append(i)

	return i
}

func (u *Builder) Specialize(pos ast.Base, x Value, subs []Substitution, dest tp.Type) *SpecializeInst {
	i := NewSpecializeInst(u.fn, pos, x, subs, dest)
	u.Append(i)

	return i
}

func (u *Builder) Return(pos ast.Base, x Value) *ReturnInst {
	i := NewReturnInst(pos, x)
	u.Append(i)

	return i
}

func (u *Builder) Branch(pos ast.Base, to *Block) *BranchInst {
	i := NewBranchInst(pos, to)
	u.Append(i)

	return i
}

func (u *Builder) CondBranch(pos ast.Base, cond Value, then, els *Block) *CondBranchInst {
	i := NewCondBranchInst(pos, cond, then, els)
	u.Append(i)

	return i
}

func (u *Builder) Unreachable(pos ast.Base) *UnreachableInst {
	i := NewUnreachableInst(pos)
	u.Append(i)

	return i
}
