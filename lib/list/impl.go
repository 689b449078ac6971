package list

import (
	"errors"
	"fmt"
	"math"
)

// handle is an arena index plus one. The zero handle is the absent link.
type handle uint32

const noNode handle = 0

type node[T any] struct {
	value T
	next  handle
	refs  uint8 // Number of links (head, tail, predecessor) to this node.
}

func newList[T any](lengthRecorder LengthRecorder) *List[T] {
	return &List[T]{lengthRecorder: lengthRecorder}
}

func (l *List[T]) recordLength() {
	if l.lengthRecorder != nil {
		l.lengthRecorder(l.length)
	}
}

func (l *List[T]) node(h handle) *node[T] {
	return &l.nodes[h-1]
}

// allocate takes a slot from the free list, or grows the arena. The new node
// is not referenced by any link.
func (l *List[T]) allocate(value T) handle {
	if h := l.free; h != noNode {
		n := l.node(h)
		l.free = n.next
		n.value = value
		n.next = noNode
		return h
	}
	if uint64(len(l.nodes)) >= math.MaxUint32 {
		panic("list: arena full")
	}
	l.nodes = append(l.nodes, node[T]{value: value})
	return handle(len(l.nodes))
}

// link points *from at target, keeping the reference counts of the old and
// new targets exact. All link updates must go through here.
func (l *List[T]) link(from *handle, target handle) {
	if old := *from; old != noNode {
		l.node(old).refs--
	}
	if target != noNode {
		l.node(target).refs++
	}
	*from = target
}

// release extracts the value of an unreferenced node and puts the slot on the
// free list.
func (l *List[T]) release(h handle) T {
	n := l.node(h)
	if n.refs != 0 {
		panic(fmt.Sprintf("list: pop error: node %d still has %d references",
			h, n.refs))
	}
	var zero T
	value := n.value
	n.value = zero
	n.next = l.free
	l.free = h
	return value
}

func (l *List[T]) append(value T) {
	h := l.allocate(value)
	if l.tail == noNode {
		l.link(&l.head, h)
	} else {
		l.link(&l.node(l.tail).next, h)
	}
	l.link(&l.tail, h)
	l.length++
	l.recordLength()
}

func (l *List[T]) pop() (T, bool) {
	h := l.head
	if h == noNode {
		var zero T
		return zero, false
	}
	n := l.node(h)
	next := n.next
	l.link(&n.next, noNode)
	l.link(&l.head, next)
	if next == noNode {
		l.link(&l.tail, noNode)
	}
	l.length--
	value := l.release(h)
	if l.length < 1 {
		// Every slot is free now: reclaim the arena wholesale.
		l.nodes = l.nodes[:0]
		l.free = noNode
	}
	l.recordLength()
	return value, true
}

// check verifies the structural invariants of the list and its arena.
func (l *List[T]) check() error {
	if l.length < 1 {
		if l.head != noNode || l.tail != noNode {
			return fmt.Errorf("empty list has head: %d, tail: %d",
				l.head, l.tail)
		}
	} else if l.head == noNode || l.tail == noNode {
		return fmt.Errorf("list of length: %d has head: %d, tail: %d",
			l.length, l.head, l.tail)
	}
	if l.length == 1 && l.head != l.tail {
		return fmt.Errorf("single entry list has head: %d != tail: %d",
			l.head, l.tail)
	}
	if l.length > 1 && l.head == l.tail {
		return fmt.Errorf("list of length: %d has head == tail: %d",
			l.length, l.head)
	}
	expectedRefs := make(map[handle]uint8)
	var count uint
	var last handle
	for h := l.head; h != noNode; h = l.node(h).next {
		if int(h) > len(l.nodes) {
			return fmt.Errorf("link to node: %d outside arena of: %d",
				h, len(l.nodes))
		}
		count++
		if count > uint(len(l.nodes)) {
			return errors.New("cycle in list")
		}
		if last != noNode {
			expectedRefs[h]++
		}
		last = h
	}
	if count != l.length {
		return fmt.Errorf("length: %d but %d reachable nodes", l.length, count)
	}
	if last != l.tail {
		return fmt.Errorf("last reachable node: %d is not tail: %d",
			last, l.tail)
	}
	if l.head != noNode {
		expectedRefs[l.head]++
		expectedRefs[l.tail]++
	}
	for h, refs := range expectedRefs {
		if got := l.node(h).refs; got != refs {
			return fmt.Errorf("node: %d has %d references, expected %d",
				h, got, refs)
		}
	}
	var numFree uint
	for h := l.free; h != noNode; h = l.node(h).next {
		numFree++
		if numFree > uint(len(l.nodes)) {
			return errors.New("cycle in free list")
		}
		if refs := l.node(h).refs; refs != 0 {
			return fmt.Errorf("free node: %d has %d references", h, refs)
		}
	}
	if numFree+count != uint(len(l.nodes)) {
		return fmt.Errorf("arena of: %d has %d free and %d live nodes",
			len(l.nodes), numFree, count)
	}
	return nil
}
