package handler

import (
	"context"

	"github.com/vk/dispatchgo/message"
)

// ArgumentResolver is the capability of producing a value for a handler
// method parameter from an inbound message.
//
// Implementations are registered with a Composite during setup. Because the
// Composite caches which resolver matched a parameter and never re-checks,
// SupportsParameter must be a pure function of the parameter: given the same
// Parameter it must always answer the same, with no side effects.
type ArgumentResolver interface {
	// SupportsParameter reports whether this resolver can produce a value
	// for the given method parameter.
	SupportsParameter(param Parameter) bool

	// ResolveArgument extracts the value for the given parameter from the
	// message. It is only called for parameters this resolver supports.
	ResolveArgument(ctx context.Context, param Parameter, msg *message.Message) (any, error)
}
