package sil

import (
	"github.com/sable-lang/sable/src/compiler/ast"
	"github.com/sable-lang/sable/src/compiler/tp"
)

// Variable-arity instructions place their payload in a single slab
// taken from the owning function's arena, so header and payload share
// one lifetime. A zero-length payload is legal and takes no slab.

type (
	// ApplyInst calls a function value. Operand 0 is the callee, the
	// rest are the arguments. Results mirror the callee's return types.
	ApplyInst struct {
		instBase

		ops []Value
	}

	// ClosureInst partially applies a function value to the leading
	// arguments. The result keeps the callee's type.
	ClosureInst struct {
		instBase

		ops []Value
	}

	TupleInst struct {
		instBase

		ops []Value
	}

	// Substitution binds one generic parameter to a concrete type.
	Substitution struct {
		Param tp.Name
		Arg   tp.Type
	}

	SpecializeInst struct {
		instBase

		ops  [1]Value
		subs []Substitution
	}
)

func NewApplyInst(fn *Function, loc ast.Base, callee Value, args []Value) *ApplyInst {
	f, ok := callee.Type().(*tp.Func)
	if !ok {
		panic("apply of a non-function value")
	}

	i := &ApplyInst{}
	i.ops = fn.allocValues(1 + len(args))
	i.ops[0] = callee
	copy(i.ops[1:], args)
	i.init(i, Apply, loc, f.Out...)

	return i
}

func (i *ApplyInst) Callee() Value     { return i.ops[0] }
func (i *ApplyInst) Args() []Value     { return i.ops[1:] }
func (i *ApplyInst) Operands() []Value { return i.ops }

func NewClosureInst(fn *Function, loc ast.Base, callee Value, args []Value) *ClosureInst {
	if _, ok := callee.Type().(*tp.Func); !ok {
		panic("closure over a non-function value")
	}

	i := &ClosureInst{}
	i.ops = fn.allocValues(1 + len(args))
	i.ops[0] = callee
	copy(i.ops[1:], args)
	i.init(i, Closure, loc, callee.Type())

	return i
}

func (i *ClosureInst) Callee() Value     { return i.ops[0] }
func (i *ClosureInst) Args() []Value     { return i.ops[1:] }
func (i *ClosureInst) Operands() []Value { return i.ops }

func NewTupleInst(fn *Function, loc ast.Base, typ *tp.Tuple, elems []Value) *TupleInst {
	if len(typ.Elems) != len(elems) {
		panic("tuple element count mismatch")
	}

	i := &TupleInst{}
	i.ops = fn.allocValues(len(elems))
	copy(i.ops, elems)
	i.init(i, Tuple, loc, typ)

	return i
}

func (i *TupleInst) Elems() []Value    { return i.ops }
func (i *TupleInst) Operands() []Value { return i.ops }

func NewSpecializeInst(fn *Function, loc ast.Base, x Value, subs []Substitution, dest tp.Type) *SpecializeInst {
	i := &SpecializeInst{}
	i.ops[0] = x
	i.subs = fn.allocSubs(len(subs))
	copy(i.subs, subs)
	i.init(i, Specialize, loc, dest)

	return i
}

func (i *SpecializeInst) X() Value                      { return i.ops[0] }
func (i *SpecializeInst) Substitutions() []Substitution { return i.subs }
func (i *SpecializeInst) Operands() []Value             { return i.ops[:] }
