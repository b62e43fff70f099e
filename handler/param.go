package handler

import (
	"fmt"
	"reflect"
)

// Parameter identifies one formal parameter of one handler method: the
// method's qualified name, the parameter's position, and its declared type.
//
// Parameter is a comparable value type so it can serve directly as a cache
// key. The resolution machinery never interprets its contents beyond using
// the declared type name in diagnostics; what a parameter "means" is entirely
// up to the resolvers.
type Parameter struct {
	// Method is the qualified identity of the handler method, e.g.
	// "GreetingHandler.Handle".
	Method string

	// Index is the zero-based position of the parameter in the method
	// signature.
	Index int

	// Type is the parameter's declared Go type.
	Type reflect.Type
}

// ParamOf builds a Parameter whose declared type is T.
func ParamOf[T any](method string, index int) Parameter {
	return Parameter{Method: method, Index: index, Type: reflect.TypeOf((*T)(nil)).Elem()}
}

// TypeName returns the name of the parameter's declared type, for use in
// diagnostics and error messages.
func (p Parameter) TypeName() string {
	if p.Type == nil {
		return "<untyped>"
	}
	return p.Type.String()
}

// String renders the parameter as "Method#index (type)".
func (p Parameter) String() string {
	return fmt.Sprintf("%s#%d (%s)", p.Method, p.Index, p.TypeName())
}
