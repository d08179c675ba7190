package mcpserver

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recipeJSON is a small camelCase payload used across integration tests.
const recipeJSON = `{
  "recipeName": "Soup",
  "prepMinutes": 15,
  "ingredientList": [
    {"itemName": "leek", "unitCount": 2}
  ]
}`

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	ks, err := newKeycaseServer(cfg)
	require.NoError(t, err)

	server := mcp.NewServer(
		&mcp.Implementation{Name: "keycase-test", Version: "test"},
		nil,
	)
	ks.registerAllTools(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	// Start server in background; it blocks until the connection closes.
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
		ks.close()
	})

	return session
}

func callTool(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	require.NotNil(t, result)
	return result
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Len(t, result.Tools, 4, "expected 4 registered tools")

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	for _, name := range []string{"camelize", "decamelize", "detect_case", "transcode"} {
		assert.True(t, slices.Contains(names, name), "missing tool: %s", name)
	}

	// Every tool should have a non-empty description.
	for _, tool := range result.Tools {
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
}

func TestIntegration_CallTool_CamelizeKeys(t *testing.T) {
	session := startTestSession(t)

	result := callTool(t, session, "camelize", map[string]any{
		"keys": []string{"user_name", "hello-world_test", "HTTP", "123"},
	})
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, []any{"userName", "helloWorldTest", "HTTP", "123"}, structured["keys"])
}

func TestIntegration_CallTool_DecamelizeValue(t *testing.T) {
	session := startTestSession(t)

	var value map[string]any
	require.NoError(t, json.Unmarshal([]byte(recipeJSON), &value))

	result := callTool(t, session, "decamelize", map[string]any{"value": value})
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, map[string]any{
		"recipe_name":  "Soup",
		"prep_minutes": float64(15),
		"ingredient_list": []any{
			map[string]any{"item_name": "leek", "unit_count": float64(2)},
		},
	}, structured["value"])
}

func TestIntegration_CallTool_DetectCase(t *testing.T) {
	session := startTestSession(t)

	result := callTool(t, session, "detect_case", map[string]any{
		"keys": []string{"userName", "user_name", "HTTP"},
	})
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, false, structured["all_camel"])
	assert.Equal(t, false, structured["all_snake"])

	results, ok := structured["results"].([]any)
	require.True(t, ok, "results should be an array")
	require.Len(t, results, 3)
	assert.Equal(t, map[string]any{"key": "userName", "camel": true, "snake": false}, results[0])
	assert.Equal(t, map[string]any{"key": "user_name", "camel": false, "snake": true}, results[1])
	assert.Equal(t, map[string]any{"key": "HTTP", "camel": true, "snake": true}, results[2])
}

func TestIntegration_CallTool_TranscodeContent(t *testing.T) {
	session := startTestSession(t)

	result := callTool(t, session, "transcode", map[string]any{
		"payload": map[string]any{"content": recipeJSON},
		"to":      "snake",
	})
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "json", structured["from"])
	assert.Equal(t, "json", structured["format"])
	assert.Equal(t,
		`{"recipe_name":"Soup","prep_minutes":15,"ingredient_list":[{"item_name":"leek","unit_count":2}]}`+"\n",
		structured["document"])
}

func TestIntegration_CallTool_TranscodeFileToCBOR(t *testing.T) {
	session := startTestSession(t)

	dir := t.TempDir()
	input := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(input, []byte("home_name: Cabin\nmember_count: 3\n"), 0o600))

	result := callTool(t, session, "transcode", map[string]any{
		"payload": map[string]any{"file": input},
		"to":      "camel",
		"format":  "cbor",
	})
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "yaml", structured["from"])
	assert.Equal(t, "cbor", structured["format"])

	encoded, ok := structured["document_base64"].(string)
	require.True(t, ok, "expected base64 document")
	data, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	var got struct {
		HomeName    string `cbor:"homeName"`
		MemberCount int    `cbor:"memberCount"`
	}
	require.NoError(t, cbor.Unmarshal(data, &got))
	assert.Equal(t, "Cabin", got.HomeName)
	assert.Equal(t, 3, got.MemberCount)
}

func TestIntegration_CallTool_TranscodeOutputFile(t *testing.T) {
	session := startTestSession(t)

	output := filepath.Join(t.TempDir(), "out.yaml")
	result := callTool(t, session, "transcode", map[string]any{
		"payload": map[string]any{"content": "userName: a\n"},
		"to":      "snake",
		"output":  output,
	})
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, output, structured["written_to"])
	assert.Nil(t, structured["document"])

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "user_name: a\n", string(data))
}

func TestIntegration_CallTool_TranscodeUnsafeOutput(t *testing.T) {
	session := startTestSession(t)

	dir := t.TempDir()
	input := filepath.Join(dir, "settings.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"homeName":"Cabin"}`), 0o600))
	target := filepath.Join(dir, "target.json")
	require.NoError(t, os.WriteFile(target, []byte("{}"), 0o600))
	link := filepath.Join(dir, "link.json")
	require.NoError(t, os.Symlink(target, link))

	tests := []struct {
		name   string
		output string
	}{
		{"overwrites input", input},
		{"symlink", link},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callTool(t, session, "transcode", map[string]any{
				"payload": map[string]any{"file": input},
				"to":      "snake",
				"output":  tt.output,
			})
			assert.True(t, result.IsError, "expected a tool error")
		})
	}

	data, err := os.ReadFile(input)
	require.NoError(t, err)
	assert.Equal(t, `{"homeName":"Cabin"}`, string(data))
	data, err = os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestIntegration_CallTool_Errors(t *testing.T) {
	tests := []struct {
		name string
		tool string
		args map[string]any
	}{
		{
			name: "camelize without input",
			tool: "camelize",
			args: map[string]any{},
		},
		{
			name: "camelize with keys and value",
			tool: "camelize",
			args: map[string]any{"keys": []string{"a_b"}, "value": map[string]any{"a_b": 1}},
		},
		{
			name: "transcode missing payload source",
			tool: "transcode",
			args: map[string]any{"payload": map[string]any{}, "to": "camel"},
		},
		{
			name: "transcode bad direction",
			tool: "transcode",
			args: map[string]any{"payload": map[string]any{"content": "{}"}, "to": "kebab"},
		},
		{
			name: "transcode unparseable content",
			tool: "transcode",
			args: map[string]any{"payload": map[string]any{"content": `{"a":`}, "to": "camel"},
		},
		{
			name: "transcode bad base64",
			tool: "transcode",
			args: map[string]any{"payload": map[string]any{"content": "%%%"}, "to": "camel", "from": "cbor"},
		},
	}

	session := startTestSession(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callTool(t, session, tt.tool, tt.args)
			assert.True(t, result.IsError, "expected a tool error")

			require.NotEmpty(t, result.Content)
			text, ok := result.Content[0].(*mcp.TextContent)
			require.True(t, ok, "error content should be TextContent")
			assert.NotEmpty(t, text.Text)
		})
	}
}

// unmarshalStructured extracts the structured output from a CallToolResult.
// It first checks StructuredContent, then falls back to parsing the first TextContent.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	// Prefer structured content if available.
	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	// Fall back to parsing text content.
	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m))
	return m
}
