package lsp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURI = "file:///tmp/main.lal"

func frame(t *testing.T, msg map[string]any) string {
	t.Helper()

	msg["jsonrpc"] = "2.0"
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	return fmt.Sprintf("Content-Length: %d\r\n\r\n%s", len(data), data)
}

func decodeFrames(t *testing.T, out string) []map[string]any {
	t.Helper()

	var msgs []map[string]any
	for out != "" {
		header, rest, ok := strings.Cut(out, "\r\n\r\n")
		require.True(t, ok, "missing header terminator in %q", out)

		n, err := strconv.Atoi(strings.TrimPrefix(header, "Content-Length: "))
		require.NoError(t, err)

		var msg map[string]any
		require.NoError(t, json.Unmarshal([]byte(rest[:n]), &msg))
		msgs = append(msgs, msg)
		out = rest[n:]
	}
	return msgs
}

func serve(t *testing.T, msgs ...map[string]any) []map[string]any {
	t.Helper()

	var in strings.Builder
	for _, m := range msgs {
		in.WriteString(frame(t, m))
	}

	var out bytes.Buffer
	srv := NewServer(strings.NewReader(in.String()), &out, nil)
	require.NoError(t, srv.Run(context.Background()))

	return decodeFrames(t, out.String())
}

func didOpen(text string) map[string]any {
	return map[string]any{
		"method": "textDocument/didOpen",
		"params": map[string]any{
			"textDocument": map[string]any{
				"uri":        testURI,
				"languageId": "lal",
				"version":    1,
				"text":       text,
			},
		},
	}
}

func positionRequest(id int, method string, line, character int) map[string]any {
	return map[string]any{
		"id":     id,
		"method": method,
		"params": map[string]any{
			"textDocument": map[string]any{"uri": testURI},
			"position":     map[string]any{"line": line, "character": character},
		},
	}
}

func TestServer_Initialize(t *testing.T) {
	msgs := serve(t, map[string]any{
		"id":     1,
		"method": "initialize",
		"params": map[string]any{"rootUri": "file:///tmp"},
	})
	require.Len(t, msgs, 1)

	assert.Equal(t, float64(1), msgs[0]["id"])
	res := msgs[0]["result"].(map[string]any)
	caps := res["capabilities"].(map[string]any)
	assert.Equal(t, true, caps["hoverProvider"])
	assert.Equal(t, true, caps["definitionProvider"])
	assert.Equal(t, "lal-lsp", res["serverInfo"].(map[string]any)["name"])
}

func TestServer_PublishesDiagnostics(t *testing.T) {
	msgs := serve(t, didOpen("int a 5;"))
	require.Len(t, msgs, 1)
	assert.Equal(t, "textDocument/publishDiagnostics", msgs[0]["method"])

	params := msgs[0]["params"].(map[string]any)
	assert.Equal(t, testURI, params["uri"])

	diags := params["diagnostics"].([]any)
	require.Len(t, diags, 1)

	d := diags[0].(map[string]any)
	assert.Equal(t, "expected token of kind ASSIGN but found kind INT", d["message"])
	assert.Equal(t, "PARSE_UNEXPECTED_TOKEN", d["code"])
	assert.Equal(t, "parser", d["source"])
	assert.Equal(t, float64(1), d["severity"])
	assert.Equal(t, map[string]any{
		"start": map[string]any{"line": float64(0), "character": float64(6)},
		"end":   map[string]any{"line": float64(0), "character": float64(7)},
	}, d["range"])
}

func TestServer_DidChangeRepublishes(t *testing.T) {
	msgs := serve(t,
		didOpen("int a 5;"),
		map[string]any{
			"method": "textDocument/didChange",
			"params": map[string]any{
				"textDocument":   map[string]any{"uri": testURI, "version": 2},
				"contentChanges": []any{map[string]any{"text": "int a = 5;"}},
			},
		},
	)
	require.Len(t, msgs, 2)

	params := msgs[1]["params"].(map[string]any)
	assert.Equal(t, float64(2), params["version"])
	assert.Empty(t, params["diagnostics"])
}

func TestServer_Hover(t *testing.T) {
	msgs := serve(t,
		didOpen("int x = 5;\nint y = x + 1;"),
		positionRequest(2, "textDocument/hover", 1, 8),
	)
	require.Len(t, msgs, 2)

	res := msgs[1]["result"].(map[string]any)
	contents := res["contents"].(map[string]any)
	assert.Equal(t, "markdown", contents["kind"])
	assert.Equal(t, "```lal\nx\n```\nIdentifier", contents["value"])
}

func TestServer_Definition(t *testing.T) {
	msgs := serve(t,
		didOpen("int x = 5;\nint y = x + 1;"),
		positionRequest(3, "textDocument/definition", 1, 8),
	)
	require.Len(t, msgs, 2)

	res := msgs[1]["result"].(map[string]any)
	assert.Equal(t, testURI, res["uri"])
	assert.Equal(t, map[string]any{
		"start": map[string]any{"line": float64(0), "character": float64(4)},
		"end":   map[string]any{"line": float64(0), "character": float64(5)},
	}, res["range"])
}

func TestServer_Completion(t *testing.T) {
	msgs := serve(t,
		didOpen("int value = 1;\nva"),
		positionRequest(4, "textDocument/completion", 1, 2),
	)
	require.Len(t, msgs, 2)

	items := msgs[1]["result"].(map[string]any)["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "value", items[0].(map[string]any)["label"])
}

func TestServer_ShutdownAndExit(t *testing.T) {
	msgs := serve(t,
		map[string]any{"id": 5, "method": "shutdown"},
		map[string]any{"method": "exit"},
		map[string]any{"id": 6, "method": "shutdown"},
	)
	require.Len(t, msgs, 1)

	result, ok := msgs[0]["result"]
	assert.True(t, ok, "shutdown response must carry a result")
	assert.Nil(t, result)
}

func TestServer_MethodNotFound(t *testing.T) {
	msgs := serve(t, map[string]any{"id": 7, "method": "workspace/symbol"})
	require.Len(t, msgs, 1)

	errObj := msgs[0]["error"].(map[string]any)
	assert.Equal(t, float64(codeMethodNotFound), errObj["code"])
}

func TestServer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := NewServer(strings.NewReader(""), &bytes.Buffer{}, nil)
	assert.ErrorIs(t, srv.Run(ctx), context.Canceled)
}

func TestPositionConversions(t *testing.T) {
	content := "int ä = 1;\nreturn ä;"

	assert.Equal(t, 4, positionToOffset(content, Position{Line: 0, Character: 4}))
	assert.Equal(t, 18, positionToOffset(content, Position{Line: 1, Character: 7}))
	assert.Equal(t, 10, positionToOffset(content, Position{Line: 0, Character: 99}))
	assert.Equal(t, Position{Line: 1, Character: 7}, offsetToPosition(content, 18))
	assert.Equal(t, Position{Line: 0, Character: 0}, offsetToPosition(content, 0))
}

func TestUriToPath(t *testing.T) {
	assert.Equal(t, "/tmp/main.lal", uriToPath("file:///tmp/main.lal"))
	assert.Equal(t, "C:/src/main.lal", uriToPath("file:///C:/src/main.lal"))
	assert.Equal(t, "untitled:1", uriToPath("untitled:1"))
}
