package message

import (
	"time"

	"github.com/google/uuid"
)

// Well-known header names stamped on every message at construction.
const (
	HeaderID        = "id"
	HeaderTimestamp = "timestamp"
)

// Headers is a string-keyed set of message metadata values.
type Headers map[string]any

// Get returns the header value for name, and whether it was present.
func (h Headers) Get(name string) (any, bool) {
	v, ok := h[name]
	return v, ok
}

// ID returns the message identifier header, or the zero UUID if the header
// is absent or holds a non-UUID value.
func (h Headers) ID() uuid.UUID {
	if id, ok := h[HeaderID].(uuid.UUID); ok {
		return id
	}
	return uuid.UUID{}
}

// Timestamp returns the creation timestamp header, or the zero time if the
// header is absent or holds a non-time value.
func (h Headers) Timestamp() time.Time {
	if ts, ok := h[HeaderTimestamp].(time.Time); ok {
		return ts
	}
	return time.Time{}
}

// Message is an immutable payload/header carrier. Resolvers receive it whole
// and extract whatever part of it their parameter calls for.
type Message struct {
	payload any
	headers Headers
}

// New creates a message carrying the given payload, stamped with fresh
// "id" and "timestamp" headers.
func New(payload any) *Message {
	return &Message{
		payload: payload,
		headers: Headers{
			HeaderID:        uuid.New(),
			HeaderTimestamp: time.Now(),
		},
	}
}

// Payload returns the carried payload.
func (m *Message) Payload() any {
	return m.payload
}

// Headers returns a copy of the message headers. Mutating the returned map
// does not affect the message.
func (m *Message) Headers() Headers {
	out := make(Headers, len(m.headers))
	for name, value := range m.headers {
		out[name] = value
	}
	return out
}

// Header returns the value of a single header, and whether it was present.
func (m *Message) Header(name string) (any, bool) {
	return m.headers.Get(name)
}

// WithHeader returns a new message with the given header set, leaving the
// receiver unchanged. Setting "id" or "timestamp" overrides the stamped value.
func (m *Message) WithHeader(name string, value any) *Message {
	headers := m.Headers()
	headers[name] = value
	return &Message{payload: m.payload, headers: headers}
}
