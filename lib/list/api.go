package list

// LengthRecorder is called with the length of a list whenever it changes.
type LengthRecorder func(uint)

// List is a singly-linked FIFO sequence. Nodes are kept in an arena owned by
// the list and are only ever referenced by the list itself.
// The zero value is an empty list ready to use.
// A List is not safe for concurrent use.
type List[T any] struct {
	nodes          []node[T]
	free           handle
	head           handle
	tail           handle
	length         uint
	lengthRecorder LengthRecorder
}

// New creates an empty list.
func New[T any]() *List[T] {
	return newList[T](nil)
}

// NewWithLengthRecorder is the same as New, except that lengthRecorder (if not
// nil) will be called to record the length of the list whenever it changes.
func NewWithLengthRecorder[T any](lengthRecorder LengthRecorder) *List[T] {
	return newList[T](lengthRecorder)
}

// Append adds value to the back of the list.
func (l *List[T]) Append(value T) {
	l.append(value)
}

// Length returns the number of entries in the list.
func (l *List[T]) Length() uint {
	return l.length
}

// Pop removes the entry at the front of the list and returns its value and
// true. If the list is empty the zero value and false are returned.
func (l *List[T]) Pop() (T, bool) {
	return l.pop()
}
