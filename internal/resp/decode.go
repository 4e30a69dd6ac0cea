package resp

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Decode parses a single RESP value from the front of data and returns
// the value along with the number of bytes it consumed. The consumed
// count lets Array decoding advance through nested children without
// rescanning for frame boundaries.
func Decode(data []byte) (Value, int, error) {
	if len(data) == 0 {
		return Value{}, 0, newParseError(KindUnknown, "empty input")
	}
	switch data[0] {
	case '+':
		return decodeSimpleString(data)
	case '-':
		return decodeSimpleError(data)
	case ':':
		return decodeInteger(data)
	case '$':
		return decodeBulkString(data)
	case '*':
		return decodeArray(data)
	case '#':
		return decodeBoolean(data)
	case '_':
		return decodeNull(data)
	default:
		return Value{}, 0, newParseError(KindUnknown, "unrecognized lead byte '"+string(data[0])+"'")
	}
}

// scanCRLF returns the index of the first '\r' of a CRLF pair found at
// or after start. It fails if a lone '\r' sits at end-of-input or no
// CRLF appears before the end of data.
func scanCRLF(data []byte, start int) (int, error) {
	for i := start; i < len(data); i++ {
		if data[i] != '\r' {
			continue
		}
		if i+1 >= len(data) {
			return -1, errors.WithStack(ErrIndexOutOfBound)
		}
		if data[i+1] == '\n' {
			return i, nil
		}
	}
	return -1, errors.WithStack(ErrCRLFNotFound)
}

func decodeSimpleString(data []byte) (Value, int, error) {
	idx, err := scanCRLF(data, 1)
	if err != nil {
		return Value{}, 0, newParseError(KindSimpleString, err.Error())
	}
	return SimpleString(string(data[1:idx])), idx + 2, nil
}

func decodeSimpleError(data []byte) (Value, int, error) {
	idx, err := scanCRLF(data, 1)
	if err != nil {
		return Value{}, 0, newParseError(KindSimpleError, err.Error())
	}
	interior := string(data[1:idx])
	kindTok, message, ok := strings.Cut(interior, " ")
	if !ok {
		return Value{}, 0, newParseError(KindSimpleError, "missing space between kind and message")
	}
	kind, ok := parseErrorKind(kindTok)
	if !ok {
		return Value{}, 0, newParseError(KindSimpleError, "unrecognized error kind '"+kindTok+"'")
	}
	return SimpleErrorf(kind, message), idx + 2, nil
}

func decodeInteger(data []byte) (Value, int, error) {
	idx, err := scanCRLF(data, 1)
	if err != nil {
		return Value{}, 0, newParseError(KindInteger, err.Error())
	}
	interior := string(data[1:idx])
	if interior == "" {
		return Value{}, 0, newParseError(KindInteger, "empty integer")
	}
	n, err := strconv.ParseInt(interior, 10, 64)
	if err != nil {
		return Value{}, 0, newParseError(KindInteger, "not a valid 64-bit signed integer: "+interior)
	}
	return Integer(n), idx + 2, nil
}

func decodeBulkString(data []byte) (Value, int, error) {
	headerEnd, err := scanCRLF(data, 1)
	if err != nil {
		return Value{}, 0, newParseError(KindBulkString, err.Error())
	}
	lenTok := string(data[1:headerEnd])
	length, err := parseNonNegativeLength(lenTok)
	if err != nil {
		return Value{}, 0, newParseError(KindBulkString, "invalid length '"+lenTok+"'")
	}
	bodyStart := headerEnd + 2
	bodyEnd := bodyStart + length
	if bodyEnd+2 > len(data) {
		return Value{}, 0, newParseError(KindBulkString, "truncated body")
	}
	if data[bodyEnd] != '\r' || data[bodyEnd+1] != '\n' {
		return Value{}, 0, newParseError(KindBulkString, "missing trailing CRLF")
	}
	return BulkString(string(data[bodyStart:bodyEnd])), bodyEnd + 2, nil
}

func decodeArray(data []byte) (Value, int, error) {
	headerEnd, err := scanCRLF(data, 1)
	if err != nil {
		return Value{}, 0, newParseError(KindArray, err.Error())
	}
	countTok := string(data[1:headerEnd])
	count, err := parseNonNegativeLength(countTok)
	if err != nil {
		return Value{}, 0, newParseError(KindArray, "invalid length '"+countTok+"'")
	}
	cursor := headerEnd + 2
	children := make([]Value, 0, count)
	for i := 0; i < count; i++ {
		if cursor > len(data) {
			return Value{}, 0, newParseError(KindArray, "input ended before all elements were read")
		}
		child, consumed, err := Decode(data[cursor:])
		if err != nil {
			return Value{}, 0, errors.Wrapf(err, "decoding array element %d", i)
		}
		children = append(children, child)
		cursor += consumed
	}
	return Array(children), cursor, nil
}

func decodeBoolean(data []byte) (Value, int, error) {
	if len(data) < 2 {
		return Value{}, 0, newParseError(KindBoolean, "truncated")
	}
	var b bool
	switch data[1] {
	case 't':
		b = true
	case 'f':
		b = false
	default:
		return Value{}, 0, newParseError(KindBoolean, "expected 't' or 'f'")
	}
	if len(data) < 4 || data[2] != '\r' || data[3] != '\n' {
		return Value{}, 0, newParseError(KindBoolean, "missing trailing CRLF")
	}
	return Boolean(b), 4, nil
}

func decodeNull(data []byte) (Value, int, error) {
	if len(data) < 3 || data[1] != '\r' || data[2] != '\n' {
		return Value{}, 0, newParseError(KindNull, "missing trailing CRLF")
	}
	return Null, 3, nil
}

// parseNonNegativeLength rejects negative-length headers outright,
// since this subset's input never carries a negative bulk-string or
// array length (spec.md Non-goals).
func parseNonNegativeLength(tok string) (int, error) {
	if tok == "" || tok[0] == '-' {
		return 0, errors.New("negative or empty length")
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, err
	}
	return n, nil
}
