package tp

type (
	Type interface {
		Size() int
	}

	Name string

	Untyped struct{}

	Int struct {
		Bits   int16
		Signed bool
	}

	Flt struct {
		Bits int16
	}

	Str struct{}

	// Addr is the type of addressable storage holding an X.
	Addr struct {
		X Type
	}

	// Box is an opaque handle on a counted heap allocation.
	Box struct{}

	Tuple struct {
		Elems []Type
	}

	Func struct {
		In  []Type
		Out []Type
	}
)

// Unit is the empty tuple, the type of value-less results.
var Unit = &Tuple{}

func (x Untyped) Size() int { return 0 }

func (x Int) Size() int {
	return int(x.Bits) / 8
}

func (x Flt) Size() int {
	return int(x.Bits) / 8
}

func (x Str) Size() int {
	return 16
}

func (x Addr) Size() int {
	return 8
}

func (x Box) Size() int {
	return 8
}

func (x *Tuple) Size() (s int) {
	for _, e := range x.Elems {
		s += e.Size()
	}

	return s
}

func (x *Func) Size() int {
	return 8
}
