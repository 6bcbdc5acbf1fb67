// Package owned provides generic ownership handles over heap values:
// exclusive ownership (Unique), shared reference counted ownership
// (Shared), non owning observation (Weak) and a per type process wide
// slot (Static).
//
// The ownership graph is single threaded by contract. Count cells are
// plain integers with no atomic protection; handing handles to the same
// value across goroutines without external synchronization corrupts the
// count.
package owned

// Shared owns a value jointly with every handle cloned from it. The count
// cell holds exactly the number of live owning handles; when the last one
// releases, the value is freed first and the cell dropped after it.
type Shared[T any] struct {
	obj  *T
	refs *int32
}

// NewShared adopts obj and starts a fresh count at one. The caller must
// not free obj itself or adopt it a second time.
func NewShared[T any](obj *T) *Shared[T] {
	if obj == nil {
		return &Shared[T]{}
	}
	statAdopt()
	return &Shared[T]{obj: obj, refs: newCell()}
}

// MakeShared copies v to the heap and adopts the copy.
func MakeShared[T any](v T) *Shared[T] {
	return NewShared(&v)
}

// attach revives an owning handle from a pair that is already managed.
// The cell must exist whenever the object does.
func attach[T any](obj *T, refs *int32) *Shared[T] {
	if obj == nil {
		return &Shared[T]{}
	}
	if refs == nil {
		panic("owned: attach without a count cell")
	}
	*refs++
	return &Shared[T]{obj: obj, refs: refs}
}

// Clone adds an owning handle over the same value.
func (s *Shared[T]) Clone() *Shared[T] {
	if s.refs == nil {
		return &Shared[T]{}
	}
	*s.refs++
	return &Shared[T]{obj: s.obj, refs: s.refs}
}

// Set replaces what s owns with a share of what other owns. Setting a
// handle to itself is a no-op; without the identity check the release
// below could free the very pair being adopted.
func (s *Shared[T]) Set(other *Shared[T]) {
	if s == other {
		return
	}
	s.Release()
	if other == nil || other.refs == nil {
		return
	}
	*other.refs++
	s.obj = other.obj
	s.refs = other.refs
}

// Move empties s and returns a handle owning its pair. The count is not
// touched; ownership transfers.
func (s *Shared[T]) Move() *Shared[T] {
	out := &Shared[T]{obj: s.obj, refs: s.refs}
	s.obj = nil
	s.refs = nil
	return out
}

// MoveFrom releases what s owns and steals the pair from src, leaving src
// empty. Self moves are no-ops.
func (s *Shared[T]) MoveFrom(src *Shared[T]) {
	if s == src || src == nil {
		return
	}
	s.Release()
	s.obj = src.obj
	s.refs = src.refs
	src.obj = nil
	src.refs = nil
}

// Release drops s's share of ownership and empties the handle. The last
// release frees the value, then the cell. Releasing an empty handle does
// nothing.
func (s *Shared[T]) Release() {
	if s.refs != nil {
		*s.refs--
		if *s.refs == 0 {
			disposeObject(s.obj)
		} else if *s.refs < 0 {
			panic("owned: count cell underflow")
		}
	}
	s.obj = nil
	s.refs = nil
}

// Close releases ownership, so a Shared can sit on io.Closer shaped
// cleanup paths.
func (s *Shared[T]) Close() error {
	s.Release()
	return nil
}

// Get returns the owned value, or nil for an empty handle. Check IsNull
// before dereferencing.
func (s *Shared[T]) Get() *T {
	return s.obj
}

func (s *Shared[T]) IsNull() bool {
	return s.obj == nil
}

// RefCount reports the number of live owning handles over the value,
// zero for an empty handle.
func (s *Shared[T]) RefCount() int32 {
	if s.refs == nil {
		return 0
	}
	return *s.refs
}
