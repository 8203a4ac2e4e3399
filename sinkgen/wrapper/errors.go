package wrapper

import "errors"

var (
	// ErrDetachedSink is returned by operations that need a live native sink.
	ErrDetachedSink = errors.New("sink is detached")
	// ErrUnknownController is returned when a receiver is not a controller
	// of a registered kind.
	ErrUnknownController = errors.New("unknown direct controller")
	// ErrStreamRequired is returned when a stream is started without one.
	ErrStreamRequired = errors.New("stream is required")
)

// WrongReceiverError reports a host operation invoked on a value that is
// not the wrapper type it belongs to.
type WrongReceiverError struct {
	Expected string
}

func (e *WrongReceiverError) Error() string { return "Expected " + e.Expected }
