package sil

import "github.com/sable-lang/sable/src/compiler/tp"

type (
	// Block is a straight-line instruction sequence. Control enters at
	// the top, binds the block arguments, and leaves through the
	// terminator.
	Block struct {
		fn *Function
		id int

		args  []*BlockArg
		list  InstList
		preds []*BlockRef
	}
)

func (b *Block) Fn() *Function     { return b.fn }
func (b *Block) ID() int           { return b.id }
func (b *Block) Insts() *InstList  { return &b.list }
func (b *Block) Args() []*BlockArg { return b.args }

func (b *Block) NewArg(typ tp.Type) *BlockArg {
	a := &BlockArg{typ: typ, parent: b, index: len(b.args)}
	b.args = append(b.args, a)

	return a
}

// Preds is the set of terminator edge slots currently targeting b. It
// is maintained solely by edge registration; there is no second copy
// to fall out of sync.
func (b *Block) Preds() []*BlockRef { return b.preds }

// Terminator returns the block's terminator, or nil while the block is
// still open.
func (b *Block) Terminator() Terminator {
	t, _ := b.list.Last().(Terminator)
	return t
}

func (b *Block) addPred(r *BlockRef) {
	b.preds = append(b.preds, r)
}

func (b *Block) removePred(r *BlockRef) {
	for i, p := range b.preds {
		if p == r {
			b.preds = append(b.preds[:i], b.preds[i+1:]...)
			return
		}
	}

	panic("edge is not registered in the target block")
}
