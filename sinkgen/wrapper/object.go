package wrapper

import (
	"math"

	"github.com/inference-sim/sinkgen/sinkgen"
)

// Object is the script-visible wrapper around a native sink of one kind.
type Object struct {
	kind      sinkgen.Kind
	native    Native
	ptr       Handle
	refCount  int
	onDestroy DestroyFunc
}

// NewObject wraps h with a reference count of one, held by its creator.
// onDestroy may be nil.
func NewObject(kind sinkgen.Kind, native Native, h Handle, onDestroy DestroyFunc) *Object {
	return &Object{kind: kind, native: native, ptr: h, refCount: 1, onDestroy: onDestroy}
}

func (o *Object) Kind() sinkgen.Kind { return o.kind }

// Wrapped returns the native handle, zero once detached.
func (o *Object) Wrapped() Handle { return o.ptr }

func (o *Object) RefCount() int { return o.refCount }

// Ref takes a reference. The native side hears about it only when the
// count leaves zero. The count saturates at math.MaxInt.
func (o *Object) Ref() {
	if o.ptr.Detached() || o.refCount == math.MaxInt {
		return
	}
	o.refCount++
	if o.refCount == 1 {
		o.native.UpdateRef(o.ptr, true)
	}
}

// Unref drops a reference. The count saturates at zero and the native side
// hears about it only when the last reference goes.
func (o *Object) Unref() {
	if o.ptr.Detached() || o.refCount == 0 {
		return
	}
	o.refCount--
	if o.refCount == 0 {
		o.native.UpdateRef(o.ptr, false)
	}
}

// Detach forgets the native handle without telling the native side.
func (o *Object) Detach() {
	o.ptr = 0
}

// Destroy runs the wrapper's destructor: the destroy token fires once,
// then the native sink is finalized if still attached.
func (o *Object) Destroy() {
	fireDestroy(&o.onDestroy, o.ptr)
	if !o.ptr.Detached() {
		o.native.Finalize(o.ptr)
		o.ptr = 0
	}
}

func (o *Object) SetDestroyCallback(fn DestroyFunc) { o.onDestroy = fn }

// EstimatedSize is the extra memory the wrapper reports to the collector.
func (o *Object) EstimatedSize() uint64 {
	if o.ptr.Detached() {
		return 0
	}
	return o.native.MemoryCost(o.ptr)
}

func (o *Object) VisitChildren(v Visitor) {
	if !o.ptr.Detached() {
		v.AddOpaqueRoot(o.ptr)
	}
}

// Close detaches the wrapper and closes the native sink. Closing a
// detached object does nothing.
func (o *Object) Close() {
	ptr := o.ptr
	if ptr.Detached() {
		return
	}
	o.Detach()
	o.native.Close(ptr)
}

// GetFd returns the sink's internal file descriptor.
func (o *Object) GetFd() (int, error) {
	if o.ptr.Detached() {
		return 0, ErrDetachedSink
	}
	return o.native.InternalFd(o.ptr), nil
}

func fireDestroy(slot *DestroyFunc, h Handle) {
	if fn := *slot; fn != nil {
		*slot = nil
		fn(h)
	}
}
