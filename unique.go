package owned

// Unique owns a value exclusively. There is no duplication API at all:
// handles hand their value over with Move or MoveFrom and the source is
// left empty, so at most one live handle references a value.
type Unique[T any] struct {
	obj *T
}

// NewUnique adopts obj as its sole owner.
func NewUnique[T any](obj *T) *Unique[T] {
	if obj != nil {
		statAdopt()
	}
	return &Unique[T]{obj: obj}
}

// MakeUnique copies v to the heap and adopts the copy.
func MakeUnique[T any](v T) *Unique[T] {
	return NewUnique(&v)
}

// Get returns the owned value, or nil for an empty handle. Check IsNull
// before dereferencing.
func (u *Unique[T]) Get() *T {
	return u.obj
}

func (u *Unique[T]) IsNull() bool {
	return u.obj == nil
}

// Release relinquishes ownership without freeing and returns the raw
// value. Its lifetime is the caller's problem from here on.
func (u *Unique[T]) Release() *T {
	obj := u.obj
	u.obj = nil
	if obj != nil {
		statForget()
	}
	return obj
}

// Reset frees the owned value, if any, and adopts obj in its place.
// Reset(nil) just clears the handle.
func (u *Unique[T]) Reset(obj *T) {
	disposeObject(u.obj)
	u.obj = obj
	if obj != nil {
		statAdopt()
	}
}

// Move empties u and returns a handle owning its value.
func (u *Unique[T]) Move() *Unique[T] {
	out := &Unique[T]{obj: u.obj}
	u.obj = nil
	return out
}

// MoveFrom frees what u owns and takes the value from src, leaving src
// empty. Self moves are no-ops; without the identity check the free
// would destroy the value being transferred.
func (u *Unique[T]) MoveFrom(src *Unique[T]) {
	if u == src || src == nil {
		return
	}
	disposeObject(u.obj)
	u.obj = src.obj
	src.obj = nil
}

// Close frees the owned value. Unique satisfies io.Closer so a handle
// can ride defer based cleanup.
func (u *Unique[T]) Close() error {
	u.Reset(nil)
	return nil
}
