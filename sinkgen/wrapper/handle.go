package wrapper

import "fmt"

// Handle is an opaque pointer to a native sink. The zero Handle means the
// wrapper has been detached from its native side.
type Handle uintptr

// Detached reports whether h no longer refers to a native sink.
func (h Handle) Detached() bool { return h == 0 }

func (h Handle) String() string {
	if h == 0 {
		return "<detached>"
	}
	return fmt.Sprintf("%#x", uintptr(h))
}

// Native is what every sink kind implements on the native side.
type Native interface {
	// MemoryCost is the number of bytes the sink holds outside the heap.
	MemoryCost(h Handle) uint64
	// UpdateRef is called with true when the wrapper gains its first
	// reference and with false when it loses its last one.
	UpdateRef(h Handle, ref bool)
	Finalize(h Handle)
	Close(h Handle)
	EndWithSink(h Handle) error
	InternalFd(h Handle) int
}

// DestroyFunc is the destroy token: it is told which handle the wrapper is
// letting go of. A wrapper calls it at most once.
type DestroyFunc func(h Handle)
