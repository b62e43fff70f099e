// Package handler provides the argument-resolution layer for message handler
// methods.
//
// A framework dispatching inbound messages to handler methods must produce a
// concrete Go value for each formal parameter of the target method. This
// package defines the pluggable capability for doing so (ArgumentResolver)
// and a Composite that owns an ordered collection of resolvers, delegating
// each parameter to the first resolver that supports it.
//
// The Composite is populated once during a single-threaded setup phase and is
// read-only afterwards. Parameter-to-resolver matches are memoized in a
// concurrency-safe cache, so repeated invocations of the same handler method
// skip the linear scan.
package handler
