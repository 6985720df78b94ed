package sil

type (
	// InstList is the ordered instruction sequence of one block. Links
	// are intrusive; the members' parent pointer is maintained by the
	// three primitives here (insert, Remove, Splice) and nowhere else.
	InstList struct {
		owner *Block

		head, tail Instruction
		len        int
	}
)

func (l *InstList) Block() *Block      { return l.owner }
func (l *InstList) Len() int           { return l.len }
func (l *InstList) First() Instruction { return l.head }
func (l *InstList) Last() Instruction  { return l.tail }

func (l *InstList) PushBack(i Instruction)  { l.insert(i, nil) }
func (l *InstList) PushFront(i Instruction) { l.insert(i, l.head) }

// InsertBefore links i ahead of at. A nil at appends at the end.
func (l *InstList) InsertBefore(i, at Instruction) { l.insert(i, at) }

func (l *InstList) insert(i, at Instruction) {
	b := i.base()
	if b.parent != nil {
		panic("instruction is already in a block")
	}
	if at != nil && at.base().parent != l.owner {
		panic("position is not in this block")
	}

	b.parent = l.owner

	var prev Instruction
	if at == nil {
		prev = l.tail
	} else {
		prev = at.base().prev
	}

	b.prev = prev
	b.next = at

	if prev != nil {
		prev.base().next = i
	} else {
		l.head = i
	}

	if at != nil {
		at.base().prev = i
	} else {
		l.tail = i
	}

	l.len++
}

// Remove unlinks i and hands ownership back to the caller. It returns
// the instruction that followed i, so removal is safe during a walk.
func (l *InstList) Remove(i Instruction) Instruction {
	b := i.base()
	if b.parent != l.owner {
		panic("instruction is not in this block")
	}

	next := b.next

	if b.prev != nil {
		b.prev.base().next = b.next
	} else {
		l.head = b.next
	}

	if b.next != nil {
		b.next.base().prev = b.prev
	} else {
		l.tail = b.prev
	}

	b.parent = nil
	b.prev, b.next = nil, nil
	l.len--

	return next
}

// Erase unlinks i and destroys it, deregistering any control-flow
// edges it held. It returns the instruction that followed i.
func (l *InstList) Erase(i Instruction) Instruction {
	next := l.Remove(i)
	i.dropRefs()

	return next
}

// Splice moves the range [first, last) out of src and links it ahead
// of at (nil appends at the end, nil last means up to src's end; an
// empty range is a no-op). When source and destination resolve to the
// same block the members keep their owner; otherwise every moved
// instruction is rewritten to the destination block. The position at
// must lie outside the moved range.
func (l *InstList) Splice(at Instruction, src *InstList, first, last Instruction) {
	if first == last {
		return
	}
	if first == nil {
		panic("splice range crosses the list end")
	}
	if first.base().parent != src.owner {
		panic("range is not in the source block")
	}
	if last != nil && last.base().parent != src.owner {
		panic("range is not in the source block")
	}
	if at != nil && at.base().parent != l.owner {
		panic("position is not in this block")
	}
	if at == first {
		return
	}

	lastMoved := src.tail
	if last != nil {
		lastMoved = last.base().prev
	}

	n := 0

	for i := first; i != last; i = i.base().next {
		if i == nil {
			panic("splice range crosses the list end")
		}
		if i == at {
			panic("position is inside the spliced range")
		}

		n++
	}

	if l.owner != src.owner {
		for i := first; i != last; i = i.base().next {
			i.base().parent = l.owner
		}

		src.len -= n
		l.len += n
	}

	// unlink [first, lastMoved] from src
	before := first.base().prev

	if before != nil {
		before.base().next = last
	} else {
		src.head = last
	}

	if last != nil {
		last.base().prev = before
	} else {
		src.tail = before
	}

	// relink ahead of at
	var prev Instruction
	if at == nil {
		prev = l.tail
	} else {
		prev = at.base().prev
	}

	first.base().prev = prev
	lastMoved.base().next = at

	if prev != nil {
		prev.base().next = first
	} else {
		l.head = first
	}

	if at != nil {
		at.base().prev = lastMoved
	} else {
		l.tail = lastMoved
	}
}
