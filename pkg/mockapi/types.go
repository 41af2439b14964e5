package mockapi

import (
	"fmt"

	"github.com/lwmacct/260824-go-app-llm-mock-api/pkg/mockapi/toolcall"
)

// ═══════════════════════════════════════════════════════════════════════════
// 角色定义
// ═══════════════════════════════════════════════════════════════════════════

// Role 消息角色
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid 检查角色是否在允许的枚举范围内
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// ═══════════════════════════════════════════════════════════════════════════
// 请求/响应结构
// ═══════════════════════════════════════════════════════════════════════════

// ChatMessage 对话消息
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ChatRequest 一次 Mock 调用的完整请求
//
// messages 为必填项，其余均为可选的强制参数：
//   - forced_output: 强制返回指定文本
//   - forced_tool_calls: 强制返回工具调用（空序列也走工具分支）
//   - simulate_error: 在延迟结束后模拟 Provider 错误
//   - min_latency_ms / max_latency_ms: 延迟区间（允许顺序颠倒）
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`

	// 强制文本输出（nil 表示使用默认响应）
	ForcedOutput *string `json:"forced_output,omitempty"`

	// 强制工具调用，支持两种形状：
	//   [{"name":"get_weather","arguments":{"location":"Paris"}}]
	//   [{"type":"function","function":{"name":"get_weather","arguments":"{\"location\":\"Paris\"}"}}]
	// 指针切片用于区分"未提供"与"提供了空序列"
	ForcedToolCalls *[]map[string]any `json:"forced_tool_calls,omitempty"`

	// 模拟 Provider 错误（延迟不会被跳过）
	SimulateError bool `json:"simulate_error,omitempty"`

	// 可选标识，仅用于观测关联
	UserID    *string `json:"user_id,omitempty"`
	SessionID *string `json:"session_id,omitempty"`

	// 延迟区间，默认 200/800
	MinLatencyMS int `json:"min_latency_ms"`
	MaxLatencyMS int `json:"max_latency_ms"`
}

// NewChatRequest 创建带默认值的请求
//
// 反序列化前先填充默认值，JSON 中出现的字段会覆盖默认值，
// 未出现的字段保持默认。
func NewChatRequest(cfg *Config) *ChatRequest {
	return &ChatRequest{
		MinLatencyMS: cfg.MinLatencyMS,
		MaxLatencyMS: cfg.MaxLatencyMS,
	}
}

// Validate 验证请求形状
//
// 仅做传输层级别的校验：messages 必须非空且角色合法。
// 核心逻辑不会见到非法请求。
func (r *ChatRequest) Validate() error {
	if len(r.Messages) == 0 {
		return NewValidationError("messages is required and must be non-empty", nil)
	}
	for i, m := range r.Messages {
		if !m.Role.Valid() {
			return NewValidationError(fmt.Sprintf("messages[%d].role: invalid role %q", i, m.Role), nil)
		}
	}
	return nil
}

// PlainMessages 将消息序列转换为普通结构化记录
//
// 用于观测标注，与 HTTP JSON 形状保持一致。
func (r *ChatRequest) PlainMessages() []map[string]any {
	out := make([]map[string]any, 0, len(r.Messages))
	for _, m := range r.Messages {
		out = append(out, map[string]any{
			"role":    string(m.Role),
			"content": m.Content,
		})
	}
	return out
}

// ChatResponse HTTP 响应体
type ChatResponse struct {
	Output    string `json:"output"`
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	LatencyMS int    `json:"latency_ms"`
}

// ═══════════════════════════════════════════════════════════════════════════
// 观测标注结构
// ═══════════════════════════════════════════════════════════════════════════

// AssistantMessage 助手回合消息
//
// 仅作为 model-call span 的 output 标注，工具调用细节只存在于
// 链路数据中，HTTP 可见的输出始终是字符串。
type AssistantMessage struct {
	Role      Role            `json:"role"`
	Content   string          `json:"content"`
	ToolCalls []toolcall.Wire `json:"tool_calls,omitempty"`
}
