package main

import (
	"context"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/sable-lang/sable/src/compiler/ast"
	"github.com/sable-lang/sable/src/compiler/format"
	"github.com/sable-lang/sable/src/compiler/sil"
	"github.com/sable-lang/sable/src/compiler/tp"
)

func main() {
	demoCmd := &cli.Command{
		Name:        "demo",
		Description: "build a sample function in memory and print its sil",
		Action:      demoAct,
		Args:        cli.Args{},
	}

	app := &cli.Command{
		Name:        "sable",
		Description: "sable is a tool for working with sable intermediate code",
		Commands: []*cli.Command{
			demoCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func demoAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	fn := demoFunc()

	b, err := format.Format(ctx, nil, fn)
	if err != nil {
		return errors.Wrap(err, "format %v", fn.Name)
	}

	fmt.Printf("%s", b)

	return nil
}

func demoFunc() *sil.Function {
	i64 := tp.Int{Bits: 64, Signed: true}

	fn := sil.NewFunction("demo", &tp.Func{In: []tp.Type{i64}, Out: []tp.Type{i64}})

	entry := fn.NewBlock()
	x := entry.NewArg(i64).Value()

	then := fn.NewBlock()
	els := fn.NewBlock()

	u := sil.NewBuilder(fn)

	u.SetBlock(entry)
	v := u.Append(sil.NewAllocVarInst(ast.Base{}, sil.StackAlloc, i64)).Result(0)
	u.Append(sil.NewStoreInst(ast.Base{}, x, v))
	ld := u.Append(sil.NewLoadInst(ast.Base{}, v)).Result(0)
	u.CondBranch(ast.Base{}, ld, then, els)

	u.SetBlock(then)
	u.Return(ast.Base{}, x)

	u.SetBlock(els)
	zero := u.Append(sil.NewIntegerValueInst(0, i64)).Result(0)
	u.Return(ast.Base{}, zero)

	return fn
}
