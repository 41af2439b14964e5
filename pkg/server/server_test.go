package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/260824-go-app-llm-mock-api/pkg/mockapi"
	"github.com/lwmacct/260824-go-app-llm-mock-api/pkg/mockapi/chat"
)

// newTestClient 启动测试服务并返回指向它的 resty 客户端
func newTestClient(t *testing.T, cfg *mockapi.Config) *resty.Client {
	t.Helper()

	handler, err := chat.New(cfg)
	require.NoError(t, err)

	ts := httptest.NewServer(New(cfg, handler).Handler())
	t.Cleanup(ts.Close)

	return resty.New().SetBaseURL(ts.URL)
}

// fastConfig 零延迟配置，让大多数用例不真实休眠
func fastConfig() *mockapi.Config {
	return &mockapi.Config{
		Provider:        "mock",
		Model:           "mock-1",
		Service:         "llm-mock-api",
		Version:         "0.1.0",
		Addr:            ":0",
		DefaultResponse: mockapi.DefaultResponseText,
		MinLatencyMS:    0,
		MaxLatencyMS:    0,
	}
}

func TestHealth(t *testing.T) {
	client := newTestClient(t, fastConfig())

	resp, err := client.R().Get("/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body()))
}

func TestChat(t *testing.T) {
	t.Run("default mock response", func(t *testing.T) {
		client := newTestClient(t, fastConfig())

		var out mockapi.ChatResponse
		resp, err := client.R().
			SetBody(map[string]any{
				"messages": []map[string]any{{"role": "user", "content": "hi"}},
			}).
			SetResult(&out).
			Post("/chat")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())

		assert.Equal(t, "MOCK RESPONSE", out.Output)
		assert.Equal(t, "mock", out.Provider)
		assert.Equal(t, "mock-1", out.Model)
		assert.Equal(t, 0, out.LatencyMS)
	})

	t.Run("configured latency range respected", func(t *testing.T) {
		// 默认 200/800ms，端到端验证一次真实延迟
		cfg := fastConfig()
		cfg.MinLatencyMS = 200
		cfg.MaxLatencyMS = 800
		client := newTestClient(t, cfg)

		var out mockapi.ChatResponse
		resp, err := client.R().
			SetBody(map[string]any{
				"messages": []map[string]any{{"role": "user", "content": "hi"}},
			}).
			SetResult(&out).
			Post("/chat")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())

		assert.GreaterOrEqual(t, out.LatencyMS, 200)
		assert.LessOrEqual(t, out.LatencyMS, 800)
	})

	t.Run("forced output", func(t *testing.T) {
		client := newTestClient(t, fastConfig())

		var out mockapi.ChatResponse
		resp, err := client.R().
			SetBody(map[string]any{
				"messages":      []map[string]any{{"role": "user", "content": "What's the weather in Paris?"}},
				"forced_output": "Paris is sunny.",
			}).
			SetResult(&out).
			Post("/chat")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())
		assert.Equal(t, "Paris is sunny.", out.Output)
	})

	t.Run("forced tool calls", func(t *testing.T) {
		client := newTestClient(t, fastConfig())

		var out mockapi.ChatResponse
		resp, err := client.R().
			SetBody(map[string]any{
				"messages": []map[string]any{{"role": "user", "content": "weather in Paris?"}},
				"forced_tool_calls": []map[string]any{
					{"name": "get_weather", "arguments": map[string]any{"location": "Paris"}},
				},
			}).
			SetResult(&out).
			Post("/chat")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())

		// 工具调用细节只在链路数据中，HTTP 输出是固定文本
		assert.Equal(t, "Calling tool.", out.Output)
	})

	t.Run("empty forced tool calls take tool branch", func(t *testing.T) {
		client := newTestClient(t, fastConfig())

		var out mockapi.ChatResponse
		resp, err := client.R().
			SetBody(map[string]any{
				"messages":          []map[string]any{{"role": "user", "content": "hi"}},
				"forced_tool_calls": []map[string]any{},
			}).
			SetResult(&out).
			Post("/chat")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())
		assert.Equal(t, "Calling tool.", out.Output)
	})

	t.Run("simulated error returns 500", func(t *testing.T) {
		client := newTestClient(t, fastConfig())

		resp, err := client.R().
			SetBody(map[string]any{
				"messages":       []map[string]any{{"role": "user", "content": "hi"}},
				"simulate_error": true,
			}).
			Post("/chat")
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode())
	})

	t.Run("zero latency bounds produce zero latency", func(t *testing.T) {
		cfg := fastConfig()
		cfg.MinLatencyMS = 200
		cfg.MaxLatencyMS = 800
		client := newTestClient(t, cfg)

		var out mockapi.ChatResponse
		resp, err := client.R().
			SetBody(map[string]any{
				"messages":       []map[string]any{{"role": "user", "content": "hi"}},
				"min_latency_ms": 0,
				"max_latency_ms": 0,
			}).
			SetResult(&out).
			Post("/chat")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())
		assert.Equal(t, 0, out.LatencyMS)
	})

	t.Run("swapped latency bounds tolerated", func(t *testing.T) {
		client := newTestClient(t, fastConfig())

		var out mockapi.ChatResponse
		resp, err := client.R().
			SetBody(map[string]any{
				"messages":       []map[string]any{{"role": "user", "content": "hi"}},
				"min_latency_ms": 20,
				"max_latency_ms": 5,
			}).
			SetResult(&out).
			Post("/chat")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())
		assert.Equal(t, 20, out.LatencyMS)
	})

	t.Run("unknown fields ignored", func(t *testing.T) {
		client := newTestClient(t, fastConfig())

		resp, err := client.R().
			SetBody(map[string]any{
				"messages":    []map[string]any{{"role": "user", "content": "hi"}},
				"temperature": 0.7,
				"stream":      true,
			}).
			Post("/chat")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode())
	})
}

func TestChat_Validation(t *testing.T) {
	client := newTestClient(t, fastConfig())

	t.Run("missing messages", func(t *testing.T) {
		resp, err := client.R().
			SetBody(map[string]any{"forced_output": "hi"}).
			Post("/chat")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())

		var body map[string]string
		require.NoError(t, json.Unmarshal(resp.Body(), &body))
		assert.Contains(t, body["error"], "messages")
	})

	t.Run("invalid role", func(t *testing.T) {
		resp, err := client.R().
			SetBody(map[string]any{
				"messages": []map[string]any{{"role": "robot", "content": "hi"}},
			}).
			Post("/chat")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	})

	t.Run("malformed JSON", func(t *testing.T) {
		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(`{"messages": [`).
			Post("/chat")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	})

	t.Run("wrong method", func(t *testing.T) {
		resp, err := client.R().Get("/chat")
		require.NoError(t, err)
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode())
	})
}

func TestChat_ProfileDefaultResponse(t *testing.T) {
	cfg := fastConfig()
	cfg.DefaultResponse = "Configured default"
	client := newTestClient(t, cfg)

	var out mockapi.ChatResponse
	resp, err := client.R().
		SetBody(map[string]any{
			"messages": []map[string]any{{"role": "user", "content": "hi"}},
		}).
		SetResult(&out).
		Post("/chat")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "Configured default", out.Output)
}
