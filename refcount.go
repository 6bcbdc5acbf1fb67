package owned

// A Disposer runs a managed value's teardown. When ownership of a value
// ends and its pointer type implements Disposer, Dispose is called exactly
// once, before the count cell is dropped. Values without the method are
// simply forgotten.
type Disposer interface {
	Dispose()
}

// RefCounted is the surface of handles that keep a reference count.
type RefCounted interface {
	Release()
	RefCount() int32
}

// Count cells are plain heap int32s. The ownership graph is single
// threaded, so nothing atomic guards them.
func newCell() *int32 {
	c := int32(1)
	return &c
}

func disposeObject[T any](obj *T) {
	if obj == nil {
		return
	}
	if d, ok := any(obj).(Disposer); ok {
		d.Dispose()
	}
	statFree()
}
