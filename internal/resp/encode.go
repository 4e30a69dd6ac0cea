package resp

import (
	"strconv"
	"strings"
)

const crlf = "\r\n"

// Encode serializes a Value into its RESP wire representation.
func Encode(v Value) []byte {
	var b strings.Builder
	encodeInto(&b, v)
	return []byte(b.String())
}

func encodeInto(b *strings.Builder, v Value) {
	switch v.Kind {
	case TypeSimpleString:
		b.WriteByte('+')
		b.WriteString(v.Str)
		b.WriteString(crlf)
	case TypeSimpleError:
		b.WriteByte('-')
		b.WriteString(v.ErrKind.String())
		b.WriteByte(' ')
		b.WriteString(v.ErrMsg)
		b.WriteString(crlf)
	case TypeInteger:
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(v.Int, 10))
		b.WriteString(crlf)
	case TypeBulkString:
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(len(v.Bulk)))
		b.WriteString(crlf)
		b.WriteString(v.Bulk)
		b.WriteString(crlf)
	case TypeArray:
		b.WriteByte('*')
		b.WriteString(strconv.Itoa(len(v.Array)))
		b.WriteString(crlf)
		for _, child := range v.Array {
			encodeInto(b, child)
		}
	case TypeBoolean:
		b.WriteByte('#')
		if v.Bool {
			b.WriteByte('t')
		} else {
			b.WriteByte('f')
		}
		b.WriteString(crlf)
	case TypeNull:
		b.WriteByte('_')
		b.WriteString(crlf)
	}
}
