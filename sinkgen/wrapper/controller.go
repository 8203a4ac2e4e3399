package wrapper

import (
	"weak"

	"github.com/inference-sim/sinkgen/sinkgen"
)

// Stream stands in for the readable stream a controller feeds.
type Stream struct {
	Name string
}

// PullFunc is called when the native sink is ready for more data.
type PullFunc func(c *Controller, amount, offset int)

// CloseFunc is called once when the stream is closed. stream is nil if it
// was already collected; reason is nil for an orderly close.
type CloseFunc func(stream *Stream, reason error)

// Controller drives a readable stream from a native sink. It holds the
// stream weakly; the stream owns the controller, not the other way round.
type Controller struct {
	kind      sinkgen.Kind
	native    Native
	ptr       Handle
	onDestroy DestroyFunc

	onPull  PullFunc
	onClose CloseFunc
	stream  weak.Pointer[Stream]
}

// NewController wraps h. onDestroy may be nil.
func NewController(kind sinkgen.Kind, native Native, h Handle, onDestroy DestroyFunc) *Controller {
	return &Controller{kind: kind, native: native, ptr: h, onDestroy: onDestroy}
}

func (c *Controller) Kind() sinkgen.Kind { return c.kind }

func (c *Controller) Wrapped() Handle { return c.ptr }

// Stream returns the stream if it is still alive.
func (c *Controller) Stream() *Stream { return c.stream.Value() }

// Start binds the controller to stream and its callbacks.
func (c *Controller) Start(stream *Stream, onPull PullFunc, onClose CloseFunc) error {
	if stream == nil {
		return ErrStreamRequired
	}
	if c.ptr.Detached() {
		return ErrDetachedSink
	}
	c.stream = weak.Make(stream)
	c.onPull = onPull
	c.onClose = onClose
	return nil
}

// Detach releases the native sink and tells a live stream that it closed.
// The close callback is cleared before it runs, so calling Detach again,
// even from inside the callback, has no further effect.
func (c *Controller) Detach() {
	fireDestroy(&c.onDestroy, c.ptr)
	c.ptr = 0
	c.onPull = nil

	stream := c.stream.Value()
	onClose := c.onClose
	c.onClose = nil
	c.stream = weak.Pointer[Stream]{}

	if stream != nil && onClose != nil {
		onClose(stream, nil)
	}
}

// Destroy runs the controller's destructor.
func (c *Controller) Destroy() {
	fireDestroy(&c.onDestroy, c.ptr)
	if !c.ptr.Detached() {
		c.native.Finalize(c.ptr)
		c.ptr = 0
	}
}

func (c *Controller) SetDestroyCallback(fn DestroyFunc) { c.onDestroy = fn }

func (c *Controller) EstimatedSize() uint64 {
	if c.ptr.Detached() {
		return 0
	}
	return c.native.MemoryCost(c.ptr)
}

func (c *Controller) VisitChildren(v Visitor) {
	if c.onPull != nil {
		v.AppendHidden(PullEdge)
	}
	if c.onClose != nil {
		v.AppendHidden(CloseEdge)
	}
	if !c.ptr.Detached() {
		v.AddOpaqueRoot(c.ptr)
	}
}

// Close detaches and closes the native sink; a no-op once detached.
func (c *Controller) Close() {
	ptr := c.ptr
	if ptr.Detached() {
		return
	}
	c.Detach()
	c.native.Close(ptr)
}

// End detaches and finishes the native sink; a no-op once detached.
func (c *Controller) End() error {
	ptr := c.ptr
	if ptr.Detached() {
		return nil
	}
	c.Detach()
	return c.native.EndWithSink(ptr)
}

// OnReady forwards readiness from the native sink to the pull callback.
func (c *Controller) OnReady(amount, offset int) {
	if c.onPull == nil {
		return
	}
	c.onPull(c, amount, offset)
}

// OnClose reports a close from the native side. The callback runs at most
// once across OnClose and Detach.
func (c *Controller) OnClose(reason error) {
	fn := c.onClose
	if fn == nil {
		return
	}
	c.onClose = nil
	fn(c.stream.Value(), reason)
}
