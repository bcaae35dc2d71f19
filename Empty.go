package cursorkit

// Empty returns a cursor without any element in it.
// It is used to represent a no result case with the Null object pattern.
func Empty[V any]() DoubleEndedMutCursor[V] {
	return emptyCursor[V]{}
}

type emptyCursor[V any] struct{}

func (emptyCursor[V]) Advance()     {}
func (emptyCursor[V]) AdvanceBack() {}

func (emptyCursor[V]) Value() (V, bool) {
	var zero V
	return zero, false
}

func (emptyCursor[V]) ValueMut() (*V, bool) {
	return nil, false
}

func (emptyCursor[V]) SizeHint() (int, int, bool) {
	return 0, 0, true
}

func (emptyCursor[V]) Count() int {
	return 0
}
