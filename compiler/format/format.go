package format

import (
	"context"
	"fmt"

	"tlog.app/go/errors"

	"github.com/sable-lang/sable/src/compiler/sil"
	"github.com/sable-lang/sable/src/compiler/tp"
)

type (
	names map[sil.Value]string
)

func Format(ctx context.Context, b []byte, x any) ([]byte, error) {
	switch x := x.(type) {
	case *sil.Function:
		return formatFunc(ctx, b, x)
	default:
		return nil, errors.New("unsupported type: %T", x)
	}
}

func formatFunc(ctx context.Context, b []byte, fn *sil.Function) (_ []byte, err error) {
	nn := make(names)

	for _, bb := range fn.Blocks() {
		for _, a := range bb.Args() {
			nn.assign(a.Value())
		}

		for i := bb.Insts().First(); i != nil; i = i.Next() {
			for r := 0; r < i.NumResults(); r++ {
				nn.assign(i.Result(r))
			}
		}
	}

	b = fmt.Appendf(b, "sil @%v : $", fn.Name)
	b = appendType(b, fn.Sig)
	b = append(b, " {\n"...)

	for j, bb := range fn.Blocks() {
		if j != 0 {
			b = append(b, '\n')
		}

		b = fmt.Appendf(b, "bb%d", bb.ID())

		if args := bb.Args(); len(args) != 0 {
			b = append(b, '(')

			for k, a := range args {
				if k != 0 {
					b = append(b, ", "...)
				}

				b = fmt.Appendf(b, "%s : $", nn.of(a.Value()))
				b = appendType(b, a.Type())
			}

			b = append(b, ')')
		}

		b = append(b, ":\n"...)

		for i := bb.Insts().First(); i != nil; i = i.Next() {
			b = append(b, '\t')

			b, err = formatInst(ctx, b, nn, i)
			if err != nil {
				return nil, errors.Wrap(err, "bb%d", bb.ID())
			}

			b = append(b, '\n')
		}
	}

	b = append(b, "}\n"...)

	return b, nil
}

func formatInst(ctx context.Context, b []byte, nn names, i sil.Instruction) ([]byte, error) {
	switch i.NumResults() {
	case 0:
	case 1:
		b = fmt.Appendf(b, "%s = ", nn.of(i.Result(0)))
	default:
		b = append(b, '(')

		for r := 0; r < i.NumResults(); r++ {
			if r != 0 {
				b = append(b, ", "...)
			}

			b = append(b, nn.of(i.Result(r))...)
		}

		b = append(b, ") = "...)
	}

	switch i := i.(type) {
	case *sil.AllocVarInst:
		b = fmt.Appendf(b, "alloc_var [%v] $", i.AllocKind())
		b = appendType(b, i.Elem())
	case *sil.AllocBoxInst:
		b = append(b, "alloc_box $"...)
		b = appendType(b, i.Elem())
	case *sil.AllocArrayInst:
		b = append(b, "alloc_array $"...)
		b = appendType(b, i.Elem())
		b = fmt.Appendf(b, ", %s", nn.of(i.NumElems()))
	case *sil.LoadInst:
		b = fmt.Appendf(b, "load %s", nn.of(i.Addr()))
	case *sil.StoreInst:
		b = fmt.Appendf(b, "store %s to %s", nn.of(i.Src()), nn.of(i.Dst()))
	case *sil.CopyAddrInst:
		b = fmt.Appendf(b, "copy_addr %s to %s", nn.of(i.Src()), nn.of(i.Dst()))

		if i.IsTake() {
			b = append(b, " [take]"...)
		}
		if i.IsInit() {
			b = append(b, " [init]"...)
		}
	case *sil.DestroyAddrInst:
		b = fmt.Appendf(b, "destroy_addr %s", nn.of(i.Addr()))
	case *sil.DeallocVarInst:
		b = fmt.Appendf(b, "dealloc_var [%v] %s", i.AllocKind(), nn.of(i.Addr()))
	case *sil.IndexAddrInst:
		b = fmt.Appendf(b, "index_addr %s, %d", nn.of(i.Addr()), i.Index())
	case *sil.IntegerLiteralInst:
		b = fmt.Appendf(b, "integer_literal %d : $", i.Value())
		b = appendType(b, i.Result(0).Type())
	case *sil.FloatLiteralInst:
		b = fmt.Appendf(b, "float_literal %g : $", i.Value())
		b = appendType(b, i.Result(0).Type())
	case *sil.StringLiteralInst:
		b = fmt.Appendf(b, "string_literal %q", i.Value())
	case *sil.IntegerValueInst:
		b = fmt.Appendf(b, "integer_value %d : $", i.Value())
		b = appendType(b, i.Result(0).Type())
	case *sil.ZeroValueInst:
		b = append(b, "zero_value $"...)
		b = appendType(b, i.Result(0).Type())
	case *sil.ConvertInst:
		b = fmt.Appendf(b, "convert [%v] %s : $", i.ConvertKind(), nn.of(i.X()))
		b = appendType(b, i.Result(0).Type())
	case *sil.TupleInst:
		b = append(b, "tuple ("...)

		for k, e := range i.Elems() {
			if k != 0 {
				b = append(b, ", "...)
			}

			b = append(b, nn.of(e)...)
		}

		b = append(b, ')')
	case *sil.ExtractInst:
		b = fmt.Appendf(b, "extract %s, %d", nn.of(i.X()), i.Field())
	case *sil.ElementAddrInst:
		b = fmt.Appendf(b, "element_addr %s, %d", nn.of(i.X()), i.Field())
	case *sil.RetainInst:
		b = fmt.Appendf(b, "retain %s", nn.of(i.X()))
	case *sil.ReleaseInst:
		b = fmt.Appendf(b, "release %s", nn.of(i.X()))
	case *sil.ApplyInst:
		b = appendCall(b, nn, "apply", i.Callee(), i.Args())
	case *sil.ClosureInst:
		b = appendCall(b, nn, "closure", i.Callee(), i.Args())
	case *sil.SpecializeInst:
		b = fmt.Appendf(b, "specialize %s <", nn.of(i.X()))

		for k, s := range i.Substitutions() {
			if k != 0 {
				b = append(b, ", "...)
			}

			b = fmt.Appendf(b, "%v = ", s.Param)
			b = appendType(b, s.Arg)
		}

		b = append(b, "> : $"...)
		b = appendType(b, i.Result(0).Type())
	case *sil.UnreachableInst:
		b = append(b, "unreachable"...)
	case *sil.ReturnInst:
		b = fmt.Appendf(b, "return %s", nn.of(i.Value()))
	case *sil.BranchInst:
		b = fmt.Appendf(b, "br bb%d", i.Dest().Block().ID())
	case *sil.CondBranchInst:
		b = fmt.Appendf(b, "cond_br %s, bb%d, bb%d", nn.of(i.Cond()), i.Then().Block().ID(), i.Else().Block().ID())
	default:
		return nil, errors.New("unsupported instruction: %T", i)
	}

	return b, nil
}

func appendCall(b []byte, nn names, op string, callee sil.Value, args []sil.Value) []byte {
	b = fmt.Appendf(b, "%s %s(", op, nn.of(callee))

	for k, a := range args {
		if k != 0 {
			b = append(b, ", "...)
		}

		b = append(b, nn.of(a)...)
	}

	b = append(b, ')')

	return b
}

func appendType(b []byte, t tp.Type) []byte {
	switch t := t.(type) {
	case tp.Untyped:
		b = append(b, "untyped"...)
	case tp.Int:
		if t.Signed {
			b = fmt.Appendf(b, "i%d", t.Bits)
		} else {
			b = fmt.Appendf(b, "u%d", t.Bits)
		}
	case tp.Flt:
		b = fmt.Appendf(b, "f%d", t.Bits)
	case tp.Str:
		b = append(b, "string"...)
	case tp.Box:
		b = append(b, "box"...)
	case tp.Addr:
		b = append(b, '*')
		b = appendType(b, t.X)
	case *tp.Tuple:
		b = append(b, '(')

		for i, e := range t.Elems {
			if i != 0 {
				b = append(b, ", "...)
			}

			b = appendType(b, e)
		}

		b = append(b, ')')
	case *tp.Func:
		b = append(b, '(')

		for i, e := range t.In {
			if i != 0 {
				b = append(b, ", "...)
			}

			b = appendType(b, e)
		}

		b = append(b, ") -> ("...)

		for i, e := range t.Out {
			if i != 0 {
				b = append(b, ", "...)
			}

			b = appendType(b, e)
		}

		b = append(b, ')')
	default:
		b = fmt.Appendf(b, "%T", t)
	}

	return b
}

func (nn names) assign(v sil.Value) {
	if _, ok := nn[v]; ok {
		return
	}

	nn[v] = fmt.Sprintf("%%%d", len(nn))
}

func (nn names) of(v sil.Value) string {
	if !v.IsValid() {
		return "undef"
	}

	if s, ok := nn[v]; ok {
		return s
	}

	return "%?"
}
