package sil

import "github.com/sable-lang/sable/src/compiler/tp"

type (
	// Value is a typed handle on one result of an instruction or on a
	// block argument. Values compare by identity of the producing node
	// and never exist apart from it.
	Value struct {
		def   node
		index int
	}

	// node is anything producing typed results.
	node interface {
		numResults() int
		resultType(i int) tp.Type
	}

	// BlockArg is a value a block defines on entry. It lives and dies
	// with the owning block.
	BlockArg struct {
		typ    tp.Type
		parent *Block
		index  int
	}
)

func (v Value) IsValid() bool { return v.def != nil }

func (v Value) Type() tp.Type {
	if v.def == nil {
		panic("type of an invalid value")
	}

	return v.def.resultType(v.index)
}

// Index is the result number of v within its producing node.
func (v Value) Index() int { return v.index }

// Inst returns the instruction producing v, or nil for block arguments.
func (v Value) Inst() Instruction {
	i, _ := v.def.(Instruction)
	return i
}

// Arg returns the block argument behind v, or nil.
func (v Value) Arg() *BlockArg {
	a, _ := v.def.(*BlockArg)
	return a
}

func (a *BlockArg) Value() Value   { return Value{def: a} }
func (a *BlockArg) Type() tp.Type  { return a.typ }
func (a *BlockArg) Parent() *Block { return a.parent }
func (a *BlockArg) Index() int     { return a.index }

func (a *BlockArg) numResults() int { return 1 }

func (a *BlockArg) resultType(i int) tp.Type {
	if i != 0 {
		panic("block argument has a single result")
	}

	return a.typ
}
