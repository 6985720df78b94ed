package sil

import (
	"github.com/sable-lang/sable/src/compiler/ast"
	"github.com/sable-lang/sable/src/compiler/tp"
)

type (
	// Instruction is implemented by every entry of the catalog.
	// A type assertion to the concrete variant is the sanctioned
	// downcast; the Kind tag and the dynamic type always agree.
	Instruction interface {
		Kind() Kind
		Loc() ast.Base
		Parent() *Block
		Prev() Instruction
		Next() Instruction

		Operands() []Value
		NumResults() int
		Result(i int) Value

		// RemoveFromParent unlinks the instruction, keeping it alive
		// for reinsertion. EraseFromParent also destroys it, dropping
		// the control-flow edges it held. Both return the instruction
		// that followed, so a walk survives deleting under the cursor,
		// and both panic on an unowned instruction.
		RemoveFromParent() Instruction
		EraseFromParent() Instruction

		node

		base() *instBase
		dropRefs()
	}

	instBase struct {
		self Instruction

		kind Kind
		loc  ast.Base
		res  []tp.Type

		parent     *Block
		prev, next Instruction
	}

	AllocKind uint8

	ConvertKind uint8
)

const (
	StackAlloc AllocKind = iota
	HeapAlloc
)

const (
	ConvertImplicit ConvertKind = iota
	ConvertCoerce
	ConvertDowncast
)

// Result arity is fixed at 0 to 2 per instruction; allocations are the
// only dual-result entries.
const maxResults = 2

func (b *instBase) init(self Instruction, kind Kind, loc ast.Base, res ...tp.Type) {
	if len(res) > maxResults {
		panic("too many instruction results")
	}

	b.self = self
	b.kind = kind
	b.loc = loc
	b.res = res
}

func (b *instBase) Kind() Kind         { return b.kind }
func (b *instBase) Loc() ast.Base      { return b.loc }
func (b *instBase) Parent() *Block     { return b.parent }
func (b *instBase) Prev() Instruction  { return b.prev }
func (b *instBase) Next() Instruction  { return b.next }
func (b *instBase) Operands() []Value { return nil }
func (b *instBase) NumResults() int   { return len(b.res) }

func (b *instBase) Result(i int) Value {
	if i < 0 || i >= len(b.res) {
		panic("result index out of range")
	}

	return Value{def: b.self, index: i}
}

func (b *instBase) RemoveFromParent() Instruction {
	if b.parent == nil {
		panic("instruction is not in a block")
	}

	return b.parent.list.Remove(b.self)
}

func (b *instBase) EraseFromParent() Instruction {
	if b.parent == nil {
		panic("instruction is not in a block")
	}

	return b.parent.list.Erase(b.self)
}

func (b *instBase) numResults() int          { return len(b.res) }
func (b *instBase) resultType(i int) tp.Type { return b.res[i] }

func (b *instBase) base() *instBase { return b }
func (b *instBase) dropRefs()       {}

type (
	// AllocVarInst allocates uninitialized storage for a value of the
	// element type. Its single result is the address of that storage.
	AllocVarInst struct {
		instBase

		alloc AllocKind
		elem  tp.Type
	}

	// AllocBoxInst allocates a counted box holding an element. Results
	// are the box handle and the address of the storage inside it.
	AllocBoxInst struct {
		instBase

		elem tp.Type
	}

	// AllocArrayInst allocates a counted array. Results are the box
	// handle and the address of the first element.
	AllocArrayInst struct {
		instBase

		elem tp.Type
		ops  [1]Value
	}

	LoadInst struct {
		instBase

		ops [1]Value
	}

	StoreInst struct {
		instBase

		ops [2]Value
	}

	// CopyAddrInst copies a value between two addresses. Take consumes
	// the source; Init treats the destination as uninitialized.
	CopyAddrInst struct {
		instBase

		ops     [2]Value
		take    bool
		initDst bool
	}

	DestroyAddrInst struct {
		instBase

		ops [1]Value
	}

	DeallocVarInst struct {
		instBase

		alloc AllocKind
		ops   [1]Value
	}

	IndexAddrInst struct {
		instBase

		ops   [1]Value
		index int
	}

	// IntegerLiteralInst carries the payload copied out of its
	// originating literal expression.
	IntegerLiteralInst struct {
		instBase

		value int64
	}

	FloatLiteralInst struct {
		instBase

		value float64
	}

	StringLiteralInst struct {
		instBase

		value string
	}

	// IntegerValueInst is a location-less integer of a known type,
	// injected by lowering rather than written in source.
	IntegerValueInst struct {
		instBase

		value int64
	}

	ZeroValueInst struct {
		instBase
	}

	ConvertInst struct {
		instBase

		conv ConvertKind
		ops  [1]Value
	}

	ExtractInst struct {
		instBase

		ops   [1]Value
		field int
	}

	ElementAddrInst struct {
		instBase

		ops   [1]Value
		field int
	}

	RetainInst struct {
		instBase

		ops [1]Value
	}

	ReleaseInst struct {
		instBase

		ops [1]Value
	}
)

func NewAllocVarInst(loc ast.Base, alloc AllocKind, elem tp.Type) *AllocVarInst {
	i := &AllocVarInst{alloc: alloc, elem: elem}
	i.init(i, AllocVar, loc, tp.Addr{X: elem})

	return i
}

func (i *AllocVarInst) AllocKind() AllocKind { return i.alloc }
func (i *AllocVarInst) Elem() tp.Type        { return i.elem }
func (i *AllocVarInst) Addr() Value          { return i.Result(0) }

func NewAllocBoxInst(loc ast.Base, elem tp.Type) *AllocBoxInst {
	i := &AllocBoxInst{elem: elem}
	i.init(i, AllocBox, loc, tp.Box{}, tp.Addr{X: elem})

	return i
}

func (i *AllocBoxInst) Elem() tp.Type { return i.elem }
func (i *AllocBoxInst) Box() Value    { return i.Result(0) }
func (i *AllocBoxInst) Addr() Value   { return i.Result(1) }

func NewAllocArrayInst(loc ast.Base, elem tp.Type, num Value) *AllocArrayInst {
	i := &AllocArrayInst{elem: elem}
	i.ops[0] = num
	i.init(i, AllocArray, loc, tp.Box{}, tp.Addr{X: elem})

	return i
}

func (i *AllocArrayInst) Elem() tp.Type     { return i.elem }
func (i *AllocArrayInst) NumElems() Value   { return i.ops[0] }
func (i *AllocArrayInst) Box() Value        { return i.Result(0) }
func (i *AllocArrayInst) Addr() Value       { return i.Result(1) }
func (i *AllocArrayInst) Operands() []Value { return i.ops[:] }

// NewLoadInst loads the value behind addr. The result type is the
// element type of the address.
func NewLoadInst(loc ast.Base, addr Value) *LoadInst {
	a, ok := addr.Type().(tp.Addr)
	if !ok {
		panic("load from a non-address value")
	}

	i := &LoadInst{}
	i.ops[0] = addr
	i.init(i, Load, loc, a.X)

	return i
}

func (i *LoadInst) Addr() Value       { return i.ops[0] }
func (i *LoadInst) Operands() []Value { return i.ops[:] }

func NewStoreInst(loc ast.Base, src, dst Value) *StoreInst {
	i := &StoreInst{}
	i.ops[0], i.ops[1] = src, dst
	i.init(i, Store, loc)

	return i
}

func (i *StoreInst) Src() Value        { return i.ops[0] }
func (i *StoreInst) Dst() Value        { return i.ops[1] }
func (i *StoreInst) Operands() []Value { return i.ops[:] }

func NewCopyAddrInst(loc ast.Base, src, dst Value, take, initDst bool) *CopyAddrInst {
	i := &CopyAddrInst{take: take, initDst: initDst}
	i.ops[0], i.ops[1] = src, dst
	i.init(i, CopyAddr, loc)

	return i
}

func (i *CopyAddrInst) Src() Value        { return i.ops[0] }
func (i *CopyAddrInst) Dst() Value        { return i.ops[1] }
func (i *CopyAddrInst) IsTake() bool      { return i.take }
func (i *CopyAddrInst) IsInit() bool      { return i.initDst }
func (i *CopyAddrInst) Operands() []Value { return i.ops[:] }

func NewDestroyAddrInst(loc ast.Base, addr Value) *DestroyAddrInst {
	i := &DestroyAddrInst{}
	i.ops[0] = addr
	i.init(i, DestroyAddr, loc)

	return i
}

func (i *DestroyAddrInst) Addr() Value       { return i.ops[0] }
func (i *DestroyAddrInst) Operands() []Value { return i.ops[:] }

func NewDeallocVarInst(loc ast.Base, alloc AllocKind, addr Value) *DeallocVarInst {
	i := &DeallocVarInst{alloc: alloc}
	i.ops[0] = addr
	i.init(i, DeallocVar, loc)

	return i
}

func (i *DeallocVarInst) AllocKind() AllocKind { return i.alloc }
func (i *DeallocVarInst) Addr() Value          { return i.ops[0] }
func (i *DeallocVarInst) Operands() []Value    { return i.ops[:] }

// NewIndexAddrInst addresses the index-th element after addr. The
// result keeps the operand's type.
func NewIndexAddrInst(loc ast.Base, addr Value, index int) *IndexAddrInst {
	i := &IndexAddrInst{index: index}
	i.ops[0] = addr
	i.init(i, IndexAddr, loc, addr.Type())

	return i
}

func (i *IndexAddrInst) Addr() Value       { return i.ops[0] }
func (i *IndexAddrInst) Index() int        { return i.index }
func (i *IndexAddrInst) Operands() []Value { return i.ops[:] }

func NewIntegerLiteralInst(e *ast.Int) *IntegerLiteralInst {
	i := &IntegerLiteralInst{value: e.Value}
	i.init(i, IntegerLiteral, e.Loc(), e.Type)

	return i
}

func (i *IntegerLiteralInst) Value() int64 { return i.value }

func NewFloatLiteralInst(e *ast.Float) *FloatLiteralInst {
	i := &FloatLiteralInst{value: e.Value}
	i.init(i, FloatLiteral, e.Loc(), e.Type)

	return i
}

func (i *FloatLiteralInst) Value() float64 { return i.value }

func NewStringLiteralInst(e *ast.Str) *StringLiteralInst {
	i := &StringLiteralInst{value: e.Value}
	i.init(i, StringLiteral, e.Loc(), e.Type)

	return i
}

func (i *StringLiteralInst) Value() string { return i.value }

func NewIntegerValueInst(value int64, typ tp.Type) *IntegerValueInst {
	i := &IntegerValueInst{value: value}
	i.init(i, IntegerValue, ast.Base{}, typ)

	return i
}

func (i *IntegerValueInst) Value() int64 { return i.value }

func NewZeroValueInst(loc ast.Base, typ tp.Type) *ZeroValueInst {
	i := &ZeroValueInst{}
	i.init(i, ZeroValue, loc, typ)

	return i
}

func NewConvertInst(loc ast.Base, conv ConvertKind, x Value, to tp.Type) *ConvertInst {
	i := &ConvertInst{conv: conv}
	i.ops[0] = x
	i.init(i, Convert, loc, to)

	return i
}

func (i *ConvertInst) ConvertKind() ConvertKind { return i.conv }
func (i *ConvertInst) X() Value                 { return i.ops[0] }
func (i *ConvertInst) Operands() []Value        { return i.ops[:] }

func NewExtractInst(loc ast.Base, x Value, field int, typ tp.Type) *ExtractInst {
	i := &ExtractInst{field: field}
	i.ops[0] = x
	i.init(i, Extract, loc, typ)

	return i
}

func (i *ExtractInst) X() Value          { return i.ops[0] }
func (i *ExtractInst) Field() int        { return i.field }
func (i *ExtractInst) Operands() []Value { return i.ops[:] }

func NewElementAddrInst(loc ast.Base, x Value, field int, typ tp.Type) *ElementAddrInst {
	i := &ElementAddrInst{field: field}
	i.ops[0] = x
	i.init(i, ElementAddr, loc, typ)

	return i
}

func (i *ElementAddrInst) X() Value          { return i.ops[0] }
func (i *ElementAddrInst) Field() int        { return i.field }
func (i *ElementAddrInst) Operands() []Value { return i.ops[:] }

// NewRetainInst bumps the count behind x and forwards it: the result
// keeps the operand's type.
func NewRetainInst(loc ast.Base, x Value) *RetainInst {
	i := &RetainInst{}
	i.ops[0] = x
	i.init(i, Retain, loc, x.Type())

	return i
}

func (i *RetainInst) X() Value          { return i.ops[0] }
func (i *RetainInst) Operands() []Value { return i.ops[:] }

func NewReleaseInst(loc ast.Base, x Value) *ReleaseInst {
	i := &ReleaseInst{}
	i.ops[0] = x
	i.init(i, Release, loc)

	return i
}

func (i *ReleaseInst) X() Value          { return i.ops[0] }
func (i *ReleaseInst) Operands() []Value { return i.ops[:] }

func (k AllocKind) String() string {
	switch k {
	case StackAlloc:
		return "stack"
	case HeapAlloc:
		return "heap"
	default:
		return "alloc?"
	}
}

func (k ConvertKind) String() string {
	switch k {
	case ConvertImplicit:
		return "implicit"
	case ConvertCoerce:
		return "coerce"
	case ConvertDowncast:
		return "downcast"
	default:
		return "convert?"
	}
}
