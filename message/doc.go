// Package message defines the payload/header carrier that flows through the
// argument-resolution layer.
//
// A Message pairs an arbitrary payload with a set of string-keyed headers.
// The resolution machinery in the handler package never inspects either part;
// it hands the whole carrier to whichever resolver claimed the parameter.
// Every message is stamped with an "id" and a "timestamp" header at
// construction so downstream consumers can correlate and order them.
package message
