package wrapper

// Edge names a callback a controller keeps alive for the collector.
type Edge int

const (
	PullEdge Edge = iota
	CloseEdge
)

func (e Edge) String() string {
	switch e {
	case PullEdge:
		return "onPull"
	case CloseEdge:
		return "onClose"
	default:
		return "unknown"
	}
}

// Visitor receives what a wrapper reports during a collector visit.
type Visitor interface {
	// AddOpaqueRoot keeps the native sink behind h reachable for as long
	// as the wrapper is.
	AddOpaqueRoot(h Handle)
	// AppendHidden marks a callback as reachable without exposing it as a
	// property.
	AppendHidden(e Edge)
}
