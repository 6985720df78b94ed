package sil

import "strconv"

type (
	// Kind tags every instruction with its concrete variant. The tag
	// and the dynamic type of the instruction always agree, so a type
	// assertion is the checked downcast over the catalog.
	Kind uint8
)

const (
	Invalid Kind = iota

	AllocVar
	AllocBox
	AllocArray

	Load
	Store
	CopyAddr
	DestroyAddr
	DeallocVar
	IndexAddr

	IntegerLiteral
	FloatLiteral
	StringLiteral
	IntegerValue
	ZeroValue

	Convert

	Tuple
	Extract
	ElementAddr

	Retain
	Release

	Apply
	Closure
	Specialize

	Unreachable
	Return
	Branch
	CondBranch
)

var kindNames = [...]string{
	Invalid: "invalid",

	AllocVar:   "alloc_var",
	AllocBox:   "alloc_box",
	AllocArray: "alloc_array",

	Load:        "load",
	Store:       "store",
	CopyAddr:    "copy_addr",
	DestroyAddr: "destroy_addr",
	DeallocVar:  "dealloc_var",
	IndexAddr:   "index_addr",

	IntegerLiteral: "integer_literal",
	FloatLiteral:   "float_literal",
	StringLiteral:  "string_literal",
	IntegerValue:   "integer_value",
	ZeroValue:      "zero_value",

	Convert: "convert",

	Tuple:       "tuple",
	Extract:     "extract",
	ElementAddr: "element_addr",

	Retain:  "retain",
	Release: "release",

	Apply:      "apply",
	Closure:    "closure",
	Specialize: "specialize",

	Unreachable: "unreachable",
	Return:      "return",
	Branch:      "br",
	CondBranch:  "cond_br",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "kind" + strconv.Itoa(int(k))
}

func (k Kind) IsTerminator() bool {
	return k >= Unreachable && k <= CondBranch
}
