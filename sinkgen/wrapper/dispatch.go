package wrapper

import (
	"fmt"

	"github.com/inference-sim/sinkgen/sinkgen"
)

// Dispatcher resolves untyped receivers to the wrapper of a registered
// kind. Resolution is one type check plus one indexed lookup by kind tag;
// anything else falls into the invalid arm.
type Dispatcher struct {
	kinds []sinkgen.Kind
	names []sinkgen.DerivedNames
}

func NewDispatcher(r *sinkgen.Registry) *Dispatcher {
	kinds := r.Kinds()
	names := make([]sinkgen.DerivedNames, len(kinds))
	for i, k := range kinds {
		names[i] = sinkgen.Derive(k.Name)
	}
	return &Dispatcher{kinds: kinds, names: names}
}

func (d *Dispatcher) registered(k sinkgen.Kind) bool {
	return k.ID >= 0 && int(k.ID) < len(d.kinds) && d.kinds[k.ID] == k
}

// Controller returns receiver as a controller of a registered kind.
func (d *Dispatcher) Controller(receiver any) (*Controller, error) {
	c, ok := receiver.(*Controller)
	if !ok || c == nil || !d.registered(c.kind) {
		return nil, ErrUnknownController
	}
	return c, nil
}

// StartDirectStream starts stream on whichever controller receiver is.
func (d *Dispatcher) StartDirectStream(receiver any, stream *Stream, onPull PullFunc, onClose CloseFunc) error {
	if stream == nil {
		return ErrStreamRequired
	}
	c, err := d.Controller(receiver)
	if err != nil {
		return err
	}
	if c.ptr.Detached() {
		return fmt.Errorf("cannot start stream with closed controller: %w", ErrDetachedSink)
	}
	return c.Start(stream, onPull, onClose)
}

// ExpectObject checks that receiver is an object of kind id.
func (d *Dispatcher) ExpectObject(id sinkgen.SinkID, receiver any) (*Object, error) {
	if id < 0 || int(id) >= len(d.kinds) {
		return nil, fmt.Errorf("sink id %d: %w", id, ErrUnknownController)
	}
	o, ok := receiver.(*Object)
	if !ok || o == nil || o.kind != d.kinds[id] {
		return nil, &WrongReceiverError{Expected: d.kinds[id].Name}
	}
	return o, nil
}

// ExpectController checks that receiver is a controller of kind id.
func (d *Dispatcher) ExpectController(id sinkgen.SinkID, receiver any) (*Controller, error) {
	if id < 0 || int(id) >= len(d.kinds) {
		return nil, fmt.Errorf("sink id %d: %w", id, ErrUnknownController)
	}
	c, ok := receiver.(*Controller)
	if !ok || c == nil || c.kind != d.kinds[id] {
		return nil, &WrongReceiverError{Expected: d.names[id].Controller}
	}
	return c, nil
}
