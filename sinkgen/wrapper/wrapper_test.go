package wrapper

import (
	"errors"
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/sinkgen/sinkgen"
)

// recordingNative logs every call the wrappers make into the native side.
type recordingNative struct {
	refUpdates []bool
	finalized  []Handle
	closed     []Handle
	ended      []Handle
	cost       uint64
	fd         int
	endErr     error
}

func (n *recordingNative) MemoryCost(Handle) uint64 { return n.cost }
func (n *recordingNative) UpdateRef(_ Handle, ref bool) { n.refUpdates = append(n.refUpdates, ref) }
func (n *recordingNative) Finalize(h Handle) { n.finalized = append(n.finalized, h) }
func (n *recordingNative) Close(h Handle) { n.closed = append(n.closed, h) }
func (n *recordingNative) EndWithSink(h Handle) error {
	n.ended = append(n.ended, h)
	return n.endErr
}
func (n *recordingNative) InternalFd(Handle) int { return n.fd }

type recordingVisitor struct {
	roots []Handle
	edges []Edge
}

func (v *recordingVisitor) AddOpaqueRoot(h Handle) { v.roots = append(v.roots, h) }
func (v *recordingVisitor) AppendHidden(e Edge) { v.edges = append(v.edges, e) }

var fileSink = sinkgen.Kind{Name: "FileSink", ID: 1}

func destroyCounter() (DestroyFunc, *[]Handle) {
	var calls []Handle
	return func(h Handle) { calls = append(calls, h) }, &calls
}

func TestObject_RefUnref_NotifiesOnlyOnTransitions(t *testing.T) {
	// GIVEN a fresh object, which starts with its creator's reference
	native := &recordingNative{}
	o := NewObject(fileSink, native, 0x10, nil)
	require.Equal(t, 1, o.RefCount())

	// WHEN it is released past zero, then retained twice and released twice
	o.Unref()
	o.Unref()
	o.Ref()
	o.Ref()
	o.Unref()
	o.Unref()

	// THEN the native side heard 1->0, 0->1, 1->0 and nothing else
	assert.Equal(t, []bool{false, true, false}, native.refUpdates)
	assert.Equal(t, 0, o.RefCount(), "count saturates at zero")
}

func TestObject_RefUnref_DetachedIsNoOp(t *testing.T) {
	native := &recordingNative{}
	o := NewObject(fileSink, native, 0x10, nil)
	o.Detach()

	o.Ref()
	o.Unref()
	o.Unref()

	assert.Empty(t, native.refUpdates)
	assert.Equal(t, 1, o.RefCount())
}

func TestObject_Ref_SaturatesAtMaxInt(t *testing.T) {
	// GIVEN an object whose count is already at the ceiling
	native := &recordingNative{}
	o := NewObject(fileSink, native, 0x10, nil)
	o.refCount = math.MaxInt

	// WHEN it is referenced again
	o.Ref()

	// THEN the count does not wrap and no spurious 0->1 notification fires
	assert.Equal(t, math.MaxInt, o.RefCount())
	assert.Empty(t, native.refUpdates)

	o.Unref()
	assert.Equal(t, math.MaxInt-1, o.RefCount())
	assert.Empty(t, native.refUpdates)
}

func TestObject_DetachTwice_SameAsOnce(t *testing.T) {
	native := &recordingNative{cost: 128}
	o := NewObject(fileSink, native, 0x10, nil)

	o.Detach()
	first := *o
	o.Detach()

	assert.Equal(t, first, *o)
	assert.True(t, o.Wrapped().Detached())
	assert.Zero(t, o.EstimatedSize())
}

func TestObject_Destroy_FiresTokenOnceAndFinalizes(t *testing.T) {
	// GIVEN an object with a destroy token
	native := &recordingNative{}
	onDestroy, calls := destroyCounter()
	o := NewObject(fileSink, native, 0x20, onDestroy)

	// WHEN it is destroyed twice
	o.Destroy()
	o.Destroy()

	// THEN the token fired once with the handle and the sink was finalized once
	assert.Equal(t, []Handle{0x20}, *calls)
	assert.Equal(t, []Handle{0x20}, native.finalized)
}

func TestObject_Destroy_DetachedSkipsFinalize(t *testing.T) {
	native := &recordingNative{}
	onDestroy, calls := destroyCounter()
	o := NewObject(fileSink, native, 0x20, onDestroy)
	o.Detach()

	o.Destroy()

	assert.Equal(t, []Handle{0}, *calls)
	assert.Empty(t, native.finalized)
}

func TestObject_CloseAndGetFd(t *testing.T) {
	native := &recordingNative{fd: 7}
	o := NewObject(fileSink, native, 0x30, nil)

	fd, err := o.GetFd()
	require.NoError(t, err)
	assert.Equal(t, 7, fd)

	o.Close()
	o.Close()
	assert.Equal(t, []Handle{0x30}, native.closed, "second close is a no-op")

	_, err = o.GetFd()
	assert.ErrorIs(t, err, ErrDetachedSink)
}

func TestObject_VisitChildren_RootsLiveHandleOnly(t *testing.T) {
	o := NewObject(fileSink, &recordingNative{}, 0x40, nil)

	v := &recordingVisitor{}
	o.VisitChildren(v)
	assert.Equal(t, []Handle{0x40}, v.roots)

	o.Detach()
	v = &recordingVisitor{}
	o.VisitChildren(v)
	assert.Empty(t, v.roots)
}

func TestController_Start_RequiresStreamAndLiveSink(t *testing.T) {
	c := NewController(fileSink, &recordingNative{}, 0x50, nil)
	assert.ErrorIs(t, c.Start(nil, nil, nil), ErrStreamRequired)

	c.Detach()
	assert.ErrorIs(t, c.Start(&Stream{Name: "s"}, nil, nil), ErrDetachedSink)
}

func TestController_Detach_ClosesStreamOnce(t *testing.T) {
	// GIVEN a started controller with a destroy token
	native := &recordingNative{}
	onDestroy, destroyed := destroyCounter()
	c := NewController(fileSink, native, 0x60, onDestroy)
	stream := &Stream{Name: "body"}
	var closes []*Stream
	var reasons []error
	require.NoError(t, c.Start(stream, nil, func(s *Stream, reason error) {
		closes = append(closes, s)
		reasons = append(reasons, reason)
		c.Detach() // re-entrant detach must not fire again
	}))

	// WHEN it is detached twice
	c.Detach()
	c.Detach()

	// THEN onClose ran once with the stream and no reason, and the token fired once
	assert.Equal(t, []*Stream{stream}, closes)
	assert.Equal(t, []error{nil}, reasons)
	assert.Equal(t, []Handle{0x60}, *destroyed)
	assert.True(t, c.Wrapped().Detached())
	assert.Nil(t, c.Stream())
}

// startOnUnreachableStream starts c on a stream nothing else references.
//
//go:noinline
func startOnUnreachableStream(t *testing.T, c *Controller, onClose CloseFunc) {
	t.Helper()
	require.NoError(t, c.Start(&Stream{Name: "unreachable"}, nil, onClose))
}

// collectStream runs the collector until the controller's weak stream is gone.
func collectStream(t *testing.T, c *Controller) {
	t.Helper()
	for i := 0; i < 10 && c.Stream() != nil; i++ {
		runtime.GC()
	}
	require.Nil(t, c.Stream(), "stream should have been collected")
}

func TestController_Detach_CollectedStreamSkipsClose(t *testing.T) {
	// GIVEN a controller whose stream has been collected
	onDestroy, destroyed := destroyCounter()
	c := NewController(fileSink, &recordingNative{}, 0x61, onDestroy)
	var closes int
	startOnUnreachableStream(t, c, func(*Stream, error) { closes++ })
	collectStream(t, c)

	// WHEN it is detached
	c.Detach()

	// THEN onClose is not invoked, the slot is cleared, and the token still fires once
	assert.Zero(t, closes)
	assert.Equal(t, []Handle{0x61}, *destroyed)
	c.OnClose(nil)
	assert.Zero(t, closes, "detach dropped the close callback")
}

func TestController_OnClose_CollectedStreamPassesNil(t *testing.T) {
	c := NewController(fileSink, &recordingNative{}, 0x71, nil)
	boom := errors.New("boom")
	var streams []*Stream
	var reasons []error
	startOnUnreachableStream(t, c, func(s *Stream, reason error) {
		streams = append(streams, s)
		reasons = append(reasons, reason)
	})
	collectStream(t, c)

	c.OnClose(boom)

	assert.Equal(t, []*Stream{nil}, streams)
	assert.Equal(t, []error{boom}, reasons)
}

func TestController_OnClose_RunsCallbackOnce(t *testing.T) {
	c := NewController(fileSink, &recordingNative{}, 0x70, nil)
	stream := &Stream{Name: "body"}
	boom := errors.New("boom")
	var got []error
	require.NoError(t, c.Start(stream, nil, func(_ *Stream, reason error) { got = append(got, reason) }))

	c.OnClose(boom)
	c.OnClose(boom)
	c.Detach()

	assert.Equal(t, []error{boom}, got)
}

func TestController_OnReady_ForwardsToPull(t *testing.T) {
	c := NewController(fileSink, &recordingNative{}, 0x80, nil)
	var pulls [][2]int
	require.NoError(t, c.Start(&Stream{}, func(got *Controller, amount, offset int) {
		assert.Same(t, c, got)
		pulls = append(pulls, [2]int{amount, offset})
	}, nil))

	c.OnReady(16, 4)
	c.Detach()
	c.OnReady(32, 0)

	assert.Equal(t, [][2]int{{16, 4}}, pulls, "detach drops the pull callback")
}

func TestController_CloseAndEnd_NoOpWhenDetached(t *testing.T) {
	native := &recordingNative{}
	c := NewController(fileSink, native, 0x90, nil)
	c.Close()
	c.Close()
	assert.Equal(t, []Handle{0x90}, native.closed)
	assert.NoError(t, c.End())
	assert.Empty(t, native.ended)

	wantErr := errors.New("flush failed")
	native.endErr = wantErr
	c2 := NewController(fileSink, native, 0x91, nil)
	assert.ErrorIs(t, c2.End(), wantErr)
	assert.Equal(t, []Handle{0x91}, native.ended)
	assert.NoError(t, c2.End())
}

func TestController_VisitChildren(t *testing.T) {
	c := NewController(fileSink, &recordingNative{}, 0xa0, nil)
	require.NoError(t, c.Start(&Stream{}, func(*Controller, int, int) {}, func(*Stream, error) {}))

	v := &recordingVisitor{}
	c.VisitChildren(v)
	assert.Equal(t, []Edge{PullEdge, CloseEdge}, v.edges)
	assert.Equal(t, []Handle{0xa0}, v.roots)

	c.Detach()
	v = &recordingVisitor{}
	c.VisitChildren(v)
	assert.Empty(t, v.edges)
	assert.Empty(t, v.roots)
}

func TestController_EstimatedSize(t *testing.T) {
	c := NewController(fileSink, &recordingNative{cost: 4096}, 0xb0, nil)
	assert.Equal(t, uint64(4096), c.EstimatedSize())
	c.Destroy()
	assert.Zero(t, c.EstimatedSize())
}
