package command

import (
	"strconv"
	"strings"

	"github.com/arcedb/arcedb/internal/resp"
	"github.com/arcedb/arcedb/internal/storage"
)

func ping(args []string, _ *storage.Database) resp.Value {
	switch len(args) {
	case 0:
		return resp.SimpleString("PONG")
	case 1:
		return resp.BulkString(args[0])
	default:
		return wrongArgCount("ping")
	}
}

func echo(args []string, _ *storage.Database) resp.Value {
	if len(args) != 1 {
		return wrongArgCount("echo")
	}
	return resp.BulkString(args[0])
}

func get(args []string, db *storage.Database) resp.Value {
	if len(args) != 1 {
		return wrongArgCount("get")
	}
	value, res := db.Get(args[0])
	if res != storage.Found {
		return resp.Null
	}
	return resp.BulkString(value)
}

func del(args []string, db *storage.Database) resp.Value {
	return resp.Integer(int64(db.Delete(args)))
}

// setCondition mirrors storage.Condition but lives at the command
// layer so SET's own "syntax error" validation (conflicting NX/XX)
// doesn't leak storage.Condition's zero value meaning "no condition"
// into parsing logic that needs to distinguish "not set yet" from
// "set to NoCondition".
type setCondition int

const (
	conditionUnset setCondition = iota
	conditionNX
	conditionXX
)

func set(args []string, db *storage.Database) resp.Value {
	if len(args) < 2 {
		return wrongArgCount("set")
	}
	key, value := args[0], args[1]

	cond := conditionUnset
	expiry := storage.NeverExpire
	haveExpiry := false

	rest := args[2:]
	for i := 0; i < len(rest); i++ {
		switch strings.ToLower(rest[i]) {
		case "nx":
			if cond == conditionXX {
				return syntaxError()
			}
			cond = conditionNX
		case "xx":
			if cond == conditionNX {
				return syntaxError()
			}
			cond = conditionXX
		case "ex":
			e, errVal := parseSeconds(rest, &i, haveExpiry)
			if errVal != nil {
				return *errVal
			}
			expiry, haveExpiry = storage.DurationExpiry(e*1000), true
		case "px":
			e, errVal := parseMillis(rest, &i, haveExpiry)
			if errVal != nil {
				return *errVal
			}
			expiry, haveExpiry = storage.DurationExpiry(e), true
		case "exat":
			e, errVal := parseSeconds(rest, &i, haveExpiry)
			if errVal != nil {
				return *errVal
			}
			expiry, haveExpiry = storage.EpochMsExpiry(e*1000), true
		case "pxat":
			e, errVal := parseMillis(rest, &i, haveExpiry)
			if errVal != nil {
				return *errVal
			}
			expiry, haveExpiry = storage.EpochMsExpiry(e), true
		default:
			return syntaxError()
		}
	}

	storageCond := storage.NoCondition
	switch cond {
	case conditionNX:
		storageCond = storage.IfNotExists
	case conditionXX:
		storageCond = storage.IfExists
	}

	if db.ConditionalInsert(key, value, expiry, storageCond) {
		return resp.SimpleString("Ok")
	}
	return resp.Null
}

func syntaxError() resp.Value {
	return resp.SimpleErrorf(resp.ErrKindERR, "syntax error")
}

func notIntegerError() resp.Value {
	return resp.SimpleErrorf(resp.ErrKindERR, "value is not an integer or out of range")
}

// parseSeconds/parseMillis consume the option's single following
// token, advancing *i past it. They return a non-nil *resp.Value when
// parsing should stop and that value be returned to the client.
func parseSeconds(tokens []string, i *int, alreadySet bool) (uint64, *resp.Value) {
	return parseExpiryArg(tokens, i, alreadySet)
}

func parseMillis(tokens []string, i *int, alreadySet bool) (uint64, *resp.Value) {
	return parseExpiryArg(tokens, i, alreadySet)
}

func parseExpiryArg(tokens []string, i *int, alreadySet bool) (uint64, *resp.Value) {
	if alreadySet {
		v := syntaxError()
		return 0, &v
	}
	if *i+1 >= len(tokens) {
		v := syntaxError()
		return 0, &v
	}
	*i++
	n, err := strconv.ParseUint(tokens[*i], 10, 64)
	if err != nil {
		v := notIntegerError()
		return 0, &v
	}
	return n, nil
}
