package command_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcedb/arcedb/internal/command"
	"github.com/arcedb/arcedb/internal/resp"
	"github.com/arcedb/arcedb/internal/storage"
)

func array(bulks ...string) resp.Value {
	vals := make([]resp.Value, len(bulks))
	for i, b := range bulks {
		vals[i] = resp.BulkString(b)
	}
	return resp.Array(vals)
}

func TestPing(t *testing.T) {
	db := storage.New()
	assert.True(t, resp.SimpleString("PONG").Equal(command.Dispatch(array("PING"), db)))
	assert.True(t, resp.BulkString("hello").Equal(command.Dispatch(array("PING", "hello"), db)))

	reply := command.Dispatch(array("PING", "a", "b"), db)
	require.Equal(t, resp.TypeSimpleError, reply.Kind)
	assert.Equal(t, "wrong number of arguments for 'ping' command", reply.ErrMsg)
}

func TestEcho(t *testing.T) {
	db := storage.New()
	assert.True(t, resp.BulkString("foo").Equal(command.Dispatch(array("ECHO", "foo"), db)))

	reply := command.Dispatch(array("ECHO"), db)
	require.Equal(t, resp.TypeSimpleError, reply.Kind)
	assert.Equal(t, "wrong number of arguments for 'echo' command", reply.ErrMsg)
}

func TestSetThenGet(t *testing.T) {
	db := storage.New()
	reply := command.Dispatch(array("SET", "k", "v"), db)
	assert.True(t, resp.SimpleString("Ok").Equal(reply))

	reply = command.Dispatch(array("GET", "k"), db)
	assert.True(t, resp.BulkString("v").Equal(reply))
}

func TestGetMissingIsNull(t *testing.T) {
	db := storage.New()
	reply := command.Dispatch(array("GET", "nope"), db)
	assert.True(t, resp.Null.Equal(reply))
}

func TestSetPxExpires(t *testing.T) {
	db := storage.New()
	reply := command.Dispatch(array("SET", "k", "v", "PX", "20"), db)
	assert.True(t, resp.SimpleString("Ok").Equal(reply))

	reply = command.Dispatch(array("GET", "k"), db)
	assert.True(t, resp.BulkString("v").Equal(reply))

	time.Sleep(40 * time.Millisecond)
	reply = command.Dispatch(array("GET", "k"), db)
	assert.True(t, resp.Null.Equal(reply))
}

func TestSetNXConflictXX(t *testing.T) {
	db := storage.New()
	reply := command.Dispatch(array("SET", "k", "v", "NX", "XX"), db)
	require.Equal(t, resp.TypeSimpleError, reply.Kind)
	assert.Equal(t, "syntax error", reply.ErrMsg)
}

func TestSetMissingExpiryValue(t *testing.T) {
	db := storage.New()
	reply := command.Dispatch(array("SET", "k", "v", "EX"), db)
	require.Equal(t, resp.TypeSimpleError, reply.Kind)
	assert.Equal(t, "syntax error", reply.ErrMsg)
}

func TestSetExpiryNonNumeric(t *testing.T) {
	db := storage.New()
	reply := command.Dispatch(array("SET", "k", "v", "EX", "abc"), db)
	require.Equal(t, resp.TypeSimpleError, reply.Kind)
	assert.Equal(t, "value is not an integer or out of range", reply.ErrMsg)
}

func TestSetDuplicateExpiryOption(t *testing.T) {
	db := storage.New()
	reply := command.Dispatch(array("SET", "k", "v", "EX", "10", "PX", "10"), db)
	require.Equal(t, resp.TypeSimpleError, reply.Kind)
	assert.Equal(t, "syntax error", reply.ErrMsg)
}

func TestSetDuplicateNXIsNoOp(t *testing.T) {
	db := storage.New()
	reply := command.Dispatch(array("SET", "k", "v", "NX", "NX"), db)
	assert.True(t, resp.SimpleString("Ok").Equal(reply))
}

func TestSetNXRejectsWhenPresent(t *testing.T) {
	db := storage.New()
	command.Dispatch(array("SET", "k", "v1"), db)
	reply := command.Dispatch(array("SET", "k", "v2", "NX"), db)
	assert.True(t, resp.Null.Equal(reply))

	reply = command.Dispatch(array("GET", "k"), db)
	assert.True(t, resp.BulkString("v1").Equal(reply))
}

func TestSetXXRejectsWhenAbsent(t *testing.T) {
	db := storage.New()
	reply := command.Dispatch(array("SET", "k", "v", "XX"), db)
	assert.True(t, resp.Null.Equal(reply))
	assert.False(t, db.ContainsKey("k"))
}

func TestSetCaseInsensitiveOptions(t *testing.T) {
	db := storage.New()
	reply := command.Dispatch(array("set", "k", "v", "ex", "100"), db)
	assert.True(t, resp.SimpleString("Ok").Equal(reply))
}

func TestDel(t *testing.T) {
	db := storage.New()
	command.Dispatch(array("SET", "a", "1"), db)
	reply := command.Dispatch(array("DEL", "a", "b"), db)
	assert.True(t, resp.Integer(1).Equal(reply))
}

func TestDelNoArgs(t *testing.T) {
	db := storage.New()
	reply := command.Dispatch(array("DEL"), db)
	assert.True(t, resp.Integer(0).Equal(reply))
}

func TestUnknownCommand(t *testing.T) {
	db := storage.New()
	reply := command.Dispatch(array("FOO"), db)
	require.Equal(t, resp.TypeSimpleError, reply.Kind)
	assert.Equal(t, resp.ErrKindERR, reply.ErrKind)
	assert.Equal(t, "unknown command 'FOO', with args beginning with: ", reply.ErrMsg)
}

func TestUnknownCommandWithArgs(t *testing.T) {
	db := storage.New()
	reply := command.Dispatch(array("FOO", "bar", "baz"), db)
	assert.Equal(t, "unknown command 'FOO', with args beginning with: 'bar' 'baz' ", reply.ErrMsg)
}

func TestEmptyArrayIsUnknownCommand(t *testing.T) {
	db := storage.New()
	reply := command.Dispatch(resp.Array(nil), db)
	require.Equal(t, resp.TypeSimpleError, reply.Kind)
	assert.Equal(t, "unknown command ''", reply.ErrMsg)
}

func TestCommandNameCaseInsensitive(t *testing.T) {
	db := storage.New()
	assert.True(t, resp.SimpleString("PONG").Equal(command.Dispatch(array("ping"), db)))
	assert.True(t, resp.SimpleString("PONG").Equal(command.Dispatch(array("PiNg"), db)))
}

func TestLiteralScenarios(t *testing.T) {
	db := storage.New()

	reply := command.Dispatch(array("PING"), db)
	assert.Equal(t, "+PONG\r\n", string(resp.Encode(reply)))

	reply = command.Dispatch(array("PING", "hello"), db)
	assert.Equal(t, "$5\r\nhello\r\n", string(resp.Encode(reply)))

	reply = command.Dispatch(array("ECHO", "foo"), db)
	assert.Equal(t, "$3\r\nfoo\r\n", string(resp.Encode(reply)))

	reply = command.Dispatch(array("SET", "k", "v"), db)
	assert.Equal(t, "+Ok\r\n", string(resp.Encode(reply)))

	reply = command.Dispatch(array("GET", "k"), db)
	assert.Equal(t, "$1\r\nv\r\n", string(resp.Encode(reply)))

	reply = command.Dispatch(array("DEL", "a", "b"), db)
	assert.Equal(t, ":0\r\n", string(resp.Encode(reply)))
}
