package owned

import (
	"reflect"
	"sync"
)

// Static is a process wide, type keyed slot holding at most one owned
// value per instantiated type. Every Static[T] value addresses the same
// slot for a given T; the slot starts empty and changes only through
// Reset. Call sites in unrelated parts of a program share it, so treat it
// as a deliberate singleton, not as per value storage.
//
// Only the registry map itself is locked, so lookups from different
// goroutines cannot tear it. The slot contents carry the same single
// threaded ownership contract as the rest of the package.
type Static[T any] struct{}

var (
	staticMu    sync.Mutex
	staticSlots = make(map[reflect.Type]interface{})
)

func staticKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil))
}

// Get returns the value currently in the slot for T, or nil.
func (Static[T]) Get() *T {
	staticMu.Lock()
	defer staticMu.Unlock()
	if v, ok := staticSlots[staticKey[T]()]; ok {
		return v.(*T)
	}
	return nil
}

// IsNull reports whether the slot for T is empty.
func (s Static[T]) IsNull() bool {
	return s.Get() == nil
}

// Reset frees the value currently in the slot for T, if any, and stores
// obj. Reset(nil) clears the slot.
func (Static[T]) Reset(obj *T) {
	key := staticKey[T]()
	staticMu.Lock()
	var prev *T
	if v, ok := staticSlots[key]; ok {
		prev = v.(*T)
	}
	if obj == nil {
		delete(staticSlots, key)
	} else {
		staticSlots[key] = obj
		statAdopt()
	}
	staticMu.Unlock()

	// Dispose outside the lock; teardown code may read other slots.
	disposeObject(prev)
}
