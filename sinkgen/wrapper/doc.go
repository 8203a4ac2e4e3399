// Package wrapper is an executable model of the generated sink wrappers.
//
// An Object or Controller holds one Handle to a native sink. Detaching zeroes
// the handle and every later operation becomes a no-op or returns
// ErrDetachedSink. Objects count references and tell the native side only
// about the first and the last one. A Controller holds its Stream weakly and
// runs its close callback at most once. The destroy token of either fires at
// most once.
//
// Nothing here is safe for concurrent use.
package wrapper
