package sil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sable-lang/sable/src/compiler/ast"
)

func TestBranchEdges(t *testing.T) {
	fn := newTestFn()
	a := fn.NewBlock()
	b := fn.NewBlock()

	br := NewBranchInst(ast.Base{Pos: 1, End: 2}, b)
	a.Insts().PushBack(br)

	require.Equal(t, 1, a.Insts().Len())
	require.Same(t, a, br.Parent())
	require.Same(t, b, br.Dest().Block())
	require.Equal(t, ast.Base{Pos: 1, End: 2}, br.Loc())

	preds := b.Preds()
	require.Len(t, preds, 1)
	require.Same(t, br.Dest(), preds[0])
	require.Same(t, Terminator(br), preds[0].Owner())

	br.EraseFromParent()

	require.Equal(t, 0, a.Insts().Len())
	require.Empty(t, b.Preds())
}

func TestCondBranchRetarget(t *testing.T) {
	fn := newTestFn()
	a := fn.NewBlock()
	b := fn.NewBlock()
	c := fn.NewBlock()
	d := fn.NewBlock()

	cond := newInst().Result(0)

	cb := NewCondBranchInst(ast.Base{}, cond, b, c)
	a.Insts().PushBack(cb)

	require.Len(t, b.Preds(), 1)
	require.Len(t, c.Preds(), 1)
	require.Empty(t, d.Preds())

	cb.Else().Retarget(d)

	require.Len(t, b.Preds(), 1)
	require.Empty(t, c.Preds())
	require.Len(t, d.Preds(), 1)
	require.Same(t, cb.Else(), d.Preds()[0])
	require.Same(t, d, cb.Else().Block())
	require.Same(t, b, cb.Then().Block())
}

func TestRetargetSameBlock(t *testing.T) {
	fn := newTestFn()
	a := fn.NewBlock()
	b := fn.NewBlock()

	br := NewBranchInst(ast.Base{}, b)
	a.Insts().PushBack(br)

	br.Dest().Retarget(b)

	require.Len(t, b.Preds(), 1)
}

func TestSuccessorsDispatch(t *testing.T) {
	fn := newTestFn()
	b := fn.NewBlock()
	c := fn.NewBlock()

	cond := newInst().Result(0)

	require.Empty(t, Successors(NewUnreachableInst(ast.Base{})))
	require.Empty(t, Successors(NewReturnInst(ast.Base{}, cond)))

	br := NewBranchInst(ast.Base{}, b)
	succs := Successors(br)
	require.Len(t, succs, 1)
	require.Same(t, b, succs[0].Block())

	cb := NewCondBranchInst(ast.Base{}, cond, b, c)
	succs = Successors(cb)
	require.Len(t, succs, 2)
	require.Same(t, b, succs[0].Block())
	require.Same(t, c, succs[1].Block())

	require.Panics(t, func() { Successors(newInst()) })
}

func TestBlockTerminator(t *testing.T) {
	fn := newTestFn()
	a := fn.NewBlock()
	b := fn.NewBlock()

	require.Nil(t, a.Terminator())

	a.Insts().PushBack(newInst())
	require.Nil(t, a.Terminator())

	br := NewBranchInst(ast.Base{}, b)
	a.Insts().PushBack(br)
	require.Same(t, Terminator(br), a.Terminator())
	require.True(t, a.Terminator().Kind().IsTerminator())
}

func TestEraseBlock(t *testing.T) {
	fn := newTestFn()
	a := fn.NewBlock()
	b := fn.NewBlock()

	br := NewBranchInst(ast.Base{}, b)
	a.Insts().PushBack(br)

	require.Panics(t, func() { fn.EraseBlock(b) })

	br.EraseFromParent()
	fn.EraseBlock(b)

	require.Equal(t, []*Block{a}, fn.Blocks())
	require.Same(t, a, fn.Entry())

	// erasing a branching block drops its outgoing edges too
	c := fn.NewBlock()
	a.Insts().PushBack(NewBranchInst(ast.Base{}, c))

	fn.EraseBlock(a)
	require.Empty(t, c.Preds())
}
