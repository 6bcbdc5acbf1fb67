package owned

// Weak observes a value owned by Shared handles without keeping it alive.
// It carries the same (object, cell) pair but never counts toward it, and
// dropping a Weak never affects the value. The zero value is an empty
// observer.
type Weak[T any] struct {
	obj  *T
	refs *int32
}

// NewWeak observes the value owned by s. An empty or nil s yields an
// empty observer.
func NewWeak[T any](s *Shared[T]) *Weak[T] {
	if s == nil {
		return &Weak[T]{}
	}
	return &Weak[T]{obj: s.obj, refs: s.refs}
}

// Lock re-acquires ownership if the value is still alive: it returns an
// owning handle when at least one Shared still counts on the cell, and an
// empty handle otherwise. This is the only read path through a Weak; the
// pair can outlive the value, so the count is consulted before attaching.
func (w *Weak[T]) Lock() *Shared[T] {
	if w.refs != nil && *w.refs > 0 {
		return attach(w.obj, w.refs)
	}
	return &Shared[T]{}
}
