// Package command turns a decoded RESP array into one of the server's
// five commands (PING, ECHO, GET, SET, DEL), validates its arguments,
// and produces a typed RESP reply.
package command

import (
	"strings"

	"github.com/arcedb/arcedb/internal/resp"
	"github.com/arcedb/arcedb/internal/storage"
)

type handlerFunc func(args []string, db *storage.Database) resp.Value

var handlers = map[string]handlerFunc{
	"ping": ping,
	"echo": echo,
	"get":  get,
	"set":  set,
	"del":  del,
}

// Dispatch decodes a top-level array of bulk strings into a command
// name and arguments, validates it, and routes to the matching
// handler. Matching is ASCII case-insensitive.
func Dispatch(request resp.Value, db *storage.Database) resp.Value {
	if request.Kind != resp.TypeArray || len(request.Array) == 0 || request.Array[0].Kind != resp.TypeBulkString {
		return resp.SimpleErrorf(resp.ErrKindERR, "unknown command ''")
	}

	name := request.Array[0].Bulk
	args := make([]string, 0, len(request.Array)-1)
	for _, v := range request.Array[1:] {
		args = append(args, v.Bulk)
	}

	handler, ok := handlers[strings.ToLower(name)]
	if !ok {
		return resp.SimpleErrorf(resp.ErrKindERR, unknownCommandMessage(name, args))
	}
	return handler(args, db)
}

func unknownCommandMessage(name string, args []string) string {
	var b strings.Builder
	b.WriteString("unknown command '")
	b.WriteString(name)
	b.WriteString("', with args beginning with: ")
	for _, a := range args {
		b.WriteByte('\'')
		b.WriteString(a)
		b.WriteString("' ")
	}
	return b.String()
}

func wrongArgCount(command string) resp.Value {
	return resp.SimpleErrorf(resp.ErrKindERR, "wrong number of arguments for '"+command+"' command")
}
