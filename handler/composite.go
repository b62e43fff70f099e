package handler

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vk/dispatchgo/internal/ctxlog"
	"github.com/vk/dispatchgo/message"
)

// ErrUnresolvableParameter is returned by ResolveArgument when no registered
// resolver supports the method parameter.
var ErrUnresolvableParameter = errors.New("no suitable argument resolver")

// Composite resolves method parameters by delegating to an ordered list of
// registered ArgumentResolvers. The first resolver (in registration order)
// that supports a parameter wins, and the match is cached for faster lookups
// on subsequent invocations of the same method.
//
// A Composite is itself an ArgumentResolver, so composites can be nested or
// handed to any code written against the interface.
//
// Resolvers must only be added during a single-threaded setup phase. Once
// lookups begin, the resolver list is treated as read-only; the cache handles
// concurrent resolution from any number of goroutines.
type Composite struct {
	resolvers []ArgumentResolver
	cache     sync.Map // Key: Parameter, Value: ArgumentResolver
}

// NewComposite creates an empty Composite. Register resolvers with
// AddResolver or AddResolvers before dispatching lookups to it.
func NewComposite() *Composite {
	return &Composite{}
}

// AddResolver appends a resolver to the list. Returns the Composite so setup
// calls can be chained.
func (c *Composite) AddResolver(resolver ArgumentResolver) *Composite {
	c.resolvers = append(c.resolvers, resolver)
	return c
}

// AddResolvers appends each of the given resolvers in order. A nil or empty
// slice is a no-op. Returns the Composite so setup calls can be chained.
func (c *Composite) AddResolvers(resolvers []ArgumentResolver) *Composite {
	c.resolvers = append(c.resolvers, resolvers...)
	return c
}

// Resolvers returns the registered resolvers in registration order. The
// returned slice is a copy; mutating it does not affect the Composite.
func (c *Composite) Resolvers() []ArgumentResolver {
	out := make([]ArgumentResolver, len(c.resolvers))
	copy(out, c.resolvers)
	return out
}

// SupportsParameter reports whether any registered resolver supports the
// given method parameter. A positive answer leaves the winning resolver
// cached, so the subsequent ResolveArgument call skips the scan.
func (c *Composite) SupportsParameter(param Parameter) bool {
	_, ok := c.argumentResolver(param)
	return ok
}

// ResolveArgument finds the resolver for the given parameter and delegates
// to it. It fails with ErrUnresolvableParameter when no registered resolver
// supports the parameter; any error from the selected resolver itself is
// propagated unchanged.
func (c *Composite) ResolveArgument(ctx context.Context, param Parameter, msg *message.Message) (any, error) {
	resolver, ok := c.argumentResolver(param)
	if !ok {
		ctxlog.FromContext(ctx).Error("No registered resolver supports the method parameter.",
			"parameter", param.String())
		return nil, fmt.Errorf("%w for parameter type [%s]", ErrUnresolvableParameter, param.TypeName())
	}
	return resolver.ResolveArgument(ctx, param, msg)
}

// argumentResolver finds a registered resolver that supports the parameter,
// consulting the cache first. A cached match is returned without re-checking
// SupportsParameter. On a miss it scans the resolvers in registration order
// and caches the first match.
//
// Concurrent first lookups for the same parameter may both scan; they reach
// the same resolver and the duplicate cache write is harmless.
func (c *Composite) argumentResolver(param Parameter) (ArgumentResolver, bool) {
	if cached, ok := c.cache.Load(param); ok {
		return cached.(ArgumentResolver), true
	}
	for _, resolver := range c.resolvers {
		if resolver.SupportsParameter(param) {
			c.cache.Store(param, resolver)
			return resolver, true
		}
	}
	return nil, false
}
