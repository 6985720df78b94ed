package sil

import "github.com/sable-lang/sable/src/compiler/tp"

type (
	// Function owns its blocks and the arena behind variable-arity
	// instruction payloads. Blocks keep creation order; the first one
	// is the entry.
	Function struct {
		Name string
		Sig  *tp.Func

		blocks []*Block
		nextID int

		vals arena[Value]
		subs arena[Substitution]
	}

	// arena hands out slabs of a shared backing array. A slab is freed
	// with the function, never on its own.
	arena[T any] struct {
		free []T
	}
)

func NewFunction(name string, sig *tp.Func) *Function {
	return &Function{Name: name, Sig: sig}
}

func (f *Function) NewBlock() *Block {
	b := &Block{fn: f, id: f.nextID}
	b.list.owner = b

	f.nextID++
	f.blocks = append(f.blocks, b)

	return b
}

func (f *Function) Blocks() []*Block { return f.blocks }

func (f *Function) Entry() *Block {
	if len(f.blocks) == 0 {
		return nil
	}

	return f.blocks[0]
}

// EraseBlock destroys b and every instruction in it. The block must
// not be a branch target anymore.
func (f *Function) EraseBlock(b *Block) {
	if b.fn != f {
		panic("block belongs to another function")
	}
	if len(b.preds) != 0 {
		panic("block still has predecessors")
	}

	for i := b.list.First(); i != nil; {
		i = b.list.Erase(i)
	}

	for j, x := range f.blocks {
		if x == b {
			f.blocks = append(f.blocks[:j], f.blocks[j+1:]...)
			b.fn = nil

			return
		}
	}

	panic("block is not in the function")
}

func (f *Function) allocValues(n int) []Value      { return f.vals.alloc(n) }
func (f *Function) allocSubs(n int) []Substitution { return f.subs.alloc(n) }

const arenaChunk = 256

func (a *arena[T]) alloc(n int) []T {
	if n == 0 {
		return nil
	}

	if n > len(a.free) {
		size := arenaChunk
		if n > size {
			size = n
		}

		a.free = make([]T, size)
	}

	s := a.free[:n:n]
	a.free = a.free[n:]

	return s
}
