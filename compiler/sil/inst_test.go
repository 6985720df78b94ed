package sil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sable-lang/sable/src/compiler/ast"
	"github.com/sable-lang/sable/src/compiler/tp"
)

func TestApplyOperands(t *testing.T) {
	fn := newTestFn()

	sig := &tp.Func{In: []tp.Type{tInt, tInt, tInt}, Out: []tp.Type{tInt}}
	callee := fn.NewBlock().NewArg(sig).Value()

	args := []Value{
		newInst().Result(0),
		newInst().Result(0),
		newInst().Result(0),
	}

	i := NewApplyInst(fn, ast.Base{}, callee, args)

	require.Equal(t, Apply, i.Kind())
	require.Len(t, i.Operands(), 4)
	require.Equal(t, callee, i.Callee())
	require.Equal(t, callee, i.Operands()[0])
	require.Equal(t, args, i.Args())
	require.Equal(t, 1, i.NumResults())
	require.Equal(t, tp.Type(tInt), i.Result(0).Type())

	require.Panics(t, func() { NewApplyInst(fn, ast.Base{}, args[0], nil) })
}

func TestClosureKeepsCalleeType(t *testing.T) {
	fn := newTestFn()

	sig := &tp.Func{In: []tp.Type{tInt, tInt}, Out: []tp.Type{tInt}}
	callee := fn.NewBlock().NewArg(sig).Value()

	i := NewClosureInst(fn, ast.Base{}, callee, []Value{newInst().Result(0)})

	require.Equal(t, Closure, i.Kind())
	require.Len(t, i.Operands(), 2)
	require.Equal(t, tp.Type(sig), i.Result(0).Type())
}

func TestTupleRoundTrip(t *testing.T) {
	fn := newTestFn()

	for _, n := range []int{0, 1, 3} {
		typ := &tp.Tuple{}
		elems := make([]Value, n)

		for j := range elems {
			typ.Elems = append(typ.Elems, tInt)
			elems[j] = newInst().Result(0)
		}

		i := NewTupleInst(fn, ast.Base{}, typ, elems)

		require.Equal(t, n, len(i.Elems()), "n=%d", n)
		require.Equal(t, n, len(i.Operands()), "n=%d", n)

		for j, e := range elems {
			require.Equal(t, e, i.Elems()[j], "n=%d elem=%d", n, j)
		}
	}

	require.Panics(t, func() { NewTupleInst(fn, ast.Base{}, &tp.Tuple{}, make([]Value, 1)) })
}

func TestSpecializeSubstitutions(t *testing.T) {
	fn := newTestFn()

	x := newInst().Result(0)
	subs := []Substitution{
		{Param: "T", Arg: tInt},
		{Param: "U", Arg: tp.Str{}},
	}

	i := NewSpecializeInst(fn, ast.Base{}, x, subs, tInt)

	require.Equal(t, subs, i.Substitutions())
	require.Equal(t, []Value{x}, i.Operands())
	require.Equal(t, tp.Type(tInt), i.Result(0).Type())

	empty := NewSpecializeInst(fn, ast.Base{}, x, nil, tInt)
	require.Empty(t, empty.Substitutions())
}

func TestDowncastSafety(t *testing.T) {
	av := NewAllocVarInst(ast.Base{}, StackAlloc, tInt)
	ld := NewLoadInst(ast.Base{}, av.Addr())

	var i Instruction = ld

	require.Equal(t, Load, i.Kind())

	got, ok := i.(*LoadInst)
	require.True(t, ok)
	require.Equal(t, av.Addr(), got.Addr())

	_, ok = i.(*StoreInst)
	require.False(t, ok)

	_, ok = i.(Terminator)
	require.False(t, ok)
}

func TestLiteralPayloadCopied(t *testing.T) {
	e := &ast.Int{Base: ast.Base{Pos: 3, End: 5}, Value: 42, Type: tInt}

	i := NewIntegerLiteralInst(e)

	require.Equal(t, IntegerLiteral, i.Kind())
	require.Equal(t, int64(42), i.Value())
	require.Equal(t, e.Base, i.Loc())
	require.Equal(t, tp.Type(tInt), i.Result(0).Type())

	s := NewStringLiteralInst(&ast.Str{Value: "hi", Type: tp.Str{}})
	require.Equal(t, "hi", s.Value())
	require.Equal(t, ast.Base{}, s.Loc())
}

func TestAllocResults(t *testing.T) {
	box := NewAllocBoxInst(ast.Base{}, tInt)

	require.Equal(t, 2, box.NumResults())
	require.Equal(t, tp.Type(tp.Box{}), box.Box().Type())
	require.Equal(t, tp.Type(tp.Addr{X: tInt}), box.Addr().Type())

	av := NewAllocVarInst(ast.Base{}, HeapAlloc, tInt)
	require.Equal(t, 1, av.NumResults())
	require.Equal(t, HeapAlloc, av.AllocKind())
	require.Equal(t, tp.Type(tp.Addr{X: tInt}), av.Addr().Type())

	num := newInst().Result(0)
	arr := NewAllocArrayInst(ast.Base{}, tInt, num)
	require.Equal(t, 2, arr.NumResults())
	require.Equal(t, []Value{num}, arr.Operands())
}

func TestMemoryAccess(t *testing.T) {
	av := NewAllocVarInst(ast.Base{}, StackAlloc, tInt)
	x := newInst().Result(0)

	st := NewStoreInst(ast.Base{}, x, av.Addr())
	require.Equal(t, 0, st.NumResults())
	require.Equal(t, []Value{x, av.Addr()}, st.Operands())
	require.Panics(t, func() { st.Result(0) })

	ld := NewLoadInst(ast.Base{}, av.Addr())
	require.Equal(t, tp.Type(tInt), ld.Result(0).Type())

	// loading from a non-address value breaks the construction contract
	require.Panics(t, func() { NewLoadInst(ast.Base{}, x) })

	cp := NewCopyAddrInst(ast.Base{}, av.Addr(), av.Addr(), true, false)
	require.True(t, cp.IsTake())
	require.False(t, cp.IsInit())
}

func TestRefCounting(t *testing.T) {
	box := NewAllocBoxInst(ast.Base{}, tInt)

	rt := NewRetainInst(ast.Base{}, box.Box())
	require.Equal(t, 1, rt.NumResults())
	require.Equal(t, box.Box().Type(), rt.Result(0).Type())

	rl := NewReleaseInst(ast.Base{}, box.Box())
	require.Equal(t, 0, rl.NumResults())
	require.Equal(t, []Value{box.Box()}, rl.Operands())
}

func TestValueIdentity(t *testing.T) {
	i1 := newInst()
	i2 := newInst()

	require.True(t, i1.Result(0) == i1.Result(0))
	require.False(t, i1.Result(0) == i2.Result(0))

	box := NewAllocBoxInst(ast.Base{}, tInt)
	require.False(t, box.Box() == box.Addr())

	var zero Value
	require.False(t, zero.IsValid())
	require.Panics(t, func() { zero.Type() })
}

func TestBlockArgs(t *testing.T) {
	fn := newTestFn()
	b := fn.NewBlock()

	a0 := b.NewArg(tInt)
	a1 := b.NewArg(tp.Str{})

	require.Len(t, b.Args(), 2)
	require.Equal(t, 0, a0.Index())
	require.Equal(t, 1, a1.Index())
	require.Same(t, b, a0.Parent())
	require.Equal(t, tp.Type(tInt), a0.Value().Type())

	require.Nil(t, a0.Value().Inst())
	require.Same(t, a0, a0.Value().Arg())

	ld := NewIntegerValueInst(1, tInt)
	require.Same(t, Instruction(ld), ld.Result(0).Inst())
	require.Nil(t, ld.Result(0).Arg())
}

func TestBuilderAppend(t *testing.T) {
	fn := newTestFn()
	entry := fn.NewBlock()
	exit := fn.NewBlock()

	u := NewBuilder(fn)

	require.Panics(t, func() { u.Append(newInst()) })

	u.SetBlock(entry)

	x := u.Append(NewIntegerValueInst(7, tInt)).Result(0)
	br := u.Branch(ast.Base{}, exit)

	require.Equal(t, 2, entry.Insts().Len())
	require.Same(t, Terminator(br), entry.Terminator())

	u.SetBlock(exit)
	ret := u.Return(ast.Base{}, x)

	require.Same(t, exit, ret.Parent())
	require.Equal(t, x, ret.Value())
}
