// Package resp implements encoding and decoding for the subset of RESP
// (REdis Serialization Protocol) this server speaks: simple strings,
// simple errors, integers, bulk strings, arrays, booleans, and a
// reply-only null.
package resp

import "github.com/pkg/errors"

// Kind identifies which RESP value kind a parse error occurred in, so
// callers can attribute a failure without parsing the error string.
type Kind int

const (
	KindUnknown Kind = iota
	KindSimpleString
	KindSimpleError
	KindInteger
	KindBulkString
	KindArray
	KindBoolean
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindSimpleString:
		return "simple string"
	case KindSimpleError:
		return "simple error"
	case KindInteger:
		return "integer"
	case KindBulkString:
		return "bulk string"
	case KindArray:
		return "array"
	case KindBoolean:
		return "boolean"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// ParseError is returned by Decode when bytes do not form a valid value
// of the kind the decoder attempted to read.
type ParseError struct {
	Kind   Kind
	Reason string
}

func (e *ParseError) Error() string {
	return "resp: invalid " + e.Kind.String() + ": " + e.Reason
}

func newParseError(kind Kind, reason string) error {
	return errors.WithStack(&ParseError{Kind: kind, Reason: reason})
}

// ErrCRLFNotFound is the error the CRLF scan returns when it runs off
// the end of the input without finding a terminator. Decoders copy its
// message into a ParseError's Reason, so errors.Is does not match it on
// an error returned by Decode.
var ErrCRLFNotFound = errors.New("resp: CRLF not found")

// ErrIndexOutOfBound is the error the CRLF scan returns when a lone
// '\r' is the last byte of the input. Like ErrCRLFNotFound, it reaches
// Decode's caller only as the text of a ParseError's Reason.
var ErrIndexOutOfBound = errors.New("resp: index out of bound")
