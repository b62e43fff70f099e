package handler

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamOf(t *testing.T) {
	p := ParamOf[string]("Greeter.Handle", 2)

	assert.Equal(t, "Greeter.Handle", p.Method)
	assert.Equal(t, 2, p.Index)
	assert.Equal(t, reflect.TypeOf((*string)(nil)).Elem(), p.Type)
}

func TestParameterString(t *testing.T) {
	p := ParamOf[int]("Greeter.Handle", 1)
	assert.Equal(t, "Greeter.Handle#1 (int)", p.String())

	untyped := Parameter{Method: "Greeter.Handle", Index: 0}
	assert.Equal(t, "<untyped>", untyped.TypeName())
}

// Parameters with the same method, index, and type must be interchangeable
// as map keys.
func TestParameterIsComparable(t *testing.T) {
	seen := map[Parameter]string{
		ParamOf[string]("Greeter.Handle", 0): "cached",
	}

	assert.Equal(t, "cached", seen[ParamOf[string]("Greeter.Handle", 0)])
	assert.NotContains(t, seen, ParamOf[string]("Greeter.Handle", 1))
	assert.NotContains(t, seen, ParamOf[int]("Greeter.Handle", 0))
}
