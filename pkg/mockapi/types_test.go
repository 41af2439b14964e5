package mockapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Provider:        "mock",
		Model:           "mock-1",
		Service:         "llm-mock-api",
		Version:         "0.1.0",
		DefaultResponse: DefaultResponseText,
		MinLatencyMS:    200,
		MaxLatencyMS:    800,
	}
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleSystem.Valid())
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAssistant.Valid())
	assert.False(t, Role("tool").Valid())
	assert.False(t, Role("").Valid())
}

func TestChatRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		req := &ChatRequest{Messages: []ChatMessage{{Role: RoleUser, Content: "hi"}}}
		assert.NoError(t, req.Validate())
	})

	t.Run("empty messages rejected", func(t *testing.T) {
		req := &ChatRequest{}
		assert.Error(t, req.Validate())
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		req := &ChatRequest{Messages: []ChatMessage{{Role: "robot", Content: "hi"}}}
		err := req.Validate()
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "robot")
	})
}

func TestChatRequest_Decode(t *testing.T) {
	t.Run("absent latency fields keep defaults", func(t *testing.T) {
		req := NewChatRequest(testConfig())
		body := `{"messages":[{"role":"user","content":"hi"}]}`
		require.NoError(t, json.Unmarshal([]byte(body), req))

		assert.Equal(t, 200, req.MinLatencyMS)
		assert.Equal(t, 800, req.MaxLatencyMS)
		assert.False(t, req.SimulateError)
		assert.Nil(t, req.ForcedOutput)
		assert.Nil(t, req.ForcedToolCalls)
	})

	t.Run("explicit fields override defaults", func(t *testing.T) {
		req := NewChatRequest(testConfig())
		body := `{"messages":[{"role":"user","content":"hi"}],"min_latency_ms":0,"max_latency_ms":0}`
		require.NoError(t, json.Unmarshal([]byte(body), req))

		assert.Equal(t, 0, req.MinLatencyMS)
		assert.Equal(t, 0, req.MaxLatencyMS)
	})

	t.Run("empty forced_tool_calls distinguished from absent", func(t *testing.T) {
		req := NewChatRequest(testConfig())
		body := `{"messages":[{"role":"user","content":"hi"}],"forced_tool_calls":[]}`
		require.NoError(t, json.Unmarshal([]byte(body), req))

		require.NotNil(t, req.ForcedToolCalls)
		assert.Empty(t, *req.ForcedToolCalls)
	})

	t.Run("unknown fields ignored", func(t *testing.T) {
		req := NewChatRequest(testConfig())
		body := `{"messages":[{"role":"user","content":"hi"}],"temperature":0.7}`
		require.NoError(t, json.Unmarshal([]byte(body), req))
	})
}

func TestChatRequest_PlainMessages(t *testing.T) {
	req := &ChatRequest{Messages: []ChatMessage{
		{Role: RoleSystem, Content: "be nice"},
		{Role: RoleUser, Content: "hi"},
	}}

	plain := req.PlainMessages()
	require.Len(t, plain, 2)
	assert.Equal(t, map[string]any{"role": "system", "content": "be nice"}, plain[0])
	assert.Equal(t, map[string]any{"role": "user", "content": "hi"}, plain[1])
}

func TestAssistantMessage_JSON(t *testing.T) {
	t.Run("text turn omits tool_calls", func(t *testing.T) {
		b, err := json.Marshal(AssistantMessage{Role: RoleAssistant, Content: "hello"})
		require.NoError(t, err)
		assert.NotContains(t, string(b), "tool_calls")
	})
}
