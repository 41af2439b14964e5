package chat

import (
	"github.com/lwmacct/260824-go-app-llm-mock-api/pkg/mockapi"
	"github.com/lwmacct/260824-go-app-llm-mock-api/pkg/mockapi/toolcall"
)

// synthesize 合成助手回合
//
// forced_tool_calls 非 nil 时（即便为空序列）走工具分支：
// 归一化、格式化，文本输出固定为 [ToolCallResponseText]。
// 否则走文本分支：forced_output 或进程默认响应。
// 返回 HTTP 可见的文本输出与用于标注的助手消息。
func (h *Handler) synthesize(req *mockapi.ChatRequest) (string, mockapi.AssistantMessage) {
	if req.ForcedToolCalls != nil {
		records := toolcall.Normalize(*req.ForcedToolCalls)
		wire := toolcall.Format(records)
		return ToolCallResponseText, mockapi.AssistantMessage{
			Role:      mockapi.RoleAssistant,
			Content:   ToolCallResponseText,
			ToolCalls: wire,
		}
	}

	text := h.cfg.DefaultResponse
	if req.ForcedOutput != nil {
		text = *req.ForcedOutput
	}
	return text, mockapi.AssistantMessage{
		Role:    mockapi.RoleAssistant,
		Content: text,
	}
}
