package message

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStampsIDAndTimestamp(t *testing.T) {
	m := New("hello")

	assert.Equal(t, "hello", m.Payload())
	assert.NotEqual(t, uuid.UUID{}, m.Headers().ID())
	assert.False(t, m.Headers().Timestamp().IsZero())
}

func TestNewAssignsUniqueIDs(t *testing.T) {
	a := New(1)
	b := New(1)

	assert.NotEqual(t, a.Headers().ID(), b.Headers().ID())
}

func TestWithHeaderLeavesOriginalUnchanged(t *testing.T) {
	original := New("payload")
	stamped := original.WithHeader("correlation", "abc-123")

	_, ok := original.Header("correlation")
	assert.False(t, ok, "original message must not gain the header")

	value, ok := stamped.Header("correlation")
	require.True(t, ok)
	assert.Equal(t, "abc-123", value)
	assert.Equal(t, original.Payload(), stamped.Payload())
	assert.Equal(t, original.Headers().ID(), stamped.Headers().ID())
}

func TestHeadersReturnsDetachedCopy(t *testing.T) {
	m := New("payload")

	headers := m.Headers()
	headers["injected"] = true

	_, ok := m.Header("injected")
	assert.False(t, ok)
}

func TestTypedAccessorsTolerateForeignValues(t *testing.T) {
	m := New(nil).WithHeader(HeaderID, "not-a-uuid").WithHeader(HeaderTimestamp, 42)

	assert.Equal(t, uuid.UUID{}, m.Headers().ID())
	assert.True(t, m.Headers().Timestamp().IsZero())
}
