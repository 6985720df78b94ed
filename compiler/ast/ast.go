package ast

import "github.com/sable-lang/sable/src/compiler/tp"

type (
	Node interface {
		Loc() Base
	}

	// Base is a source locator. The zero Base means no location.
	Base struct {
		Pos int
		End int
	}

	Int struct {
		Base `tlog:",embed"`

		Value int64
		Type  tp.Type
	}

	Float struct {
		Base `tlog:",embed"`

		Value float64
		Type  tp.Type
	}

	Str struct {
		Base `tlog:",embed"`

		Value string
		Type  tp.Type
	}
)

func (b Base) Loc() Base { return b }
