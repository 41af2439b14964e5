package chat

import (
	"context"
	"time"

	"github.com/lwmacct/260824-go-app-llm-mock-api/pkg/mockapi"
	"github.com/lwmacct/260824-go-app-llm-mock-api/pkg/obs"
)

// ToolCallResponseText 工具分支的固定文本输出
//
// 保持非空，避免评估器把该回合当作"无内容"。
// 工具调用细节只存在于 span 标注中。
const ToolCallResponseText = "Calling tool."

// retrievalDelay 模拟检索的固定延迟
const retrievalDelay = 30 * time.Millisecond

// ═══════════════════════════════════════════════════════════════════════════
// 检索模拟
// ═══════════════════════════════════════════════════════════════════════════

// Document 模拟检索返回的文档
type Document struct {
	ID    string  `json:"id"`
	Text  string  `json:"text"`
	Score float64 `json:"score"`
}

// ═══════════════════════════════════════════════════════════════════════════
// 编排 Handler
// ═══════════════════════════════════════════════════════════════════════════

// Handler 请求编排器
//
// 持有进程配置和静态工具 Schema，本身无可变状态，
// 可被任意数量的并发请求共享。
type Handler struct {
	cfg   *mockapi.Config
	tools []mockapi.ToolSchema
}

// New 创建 Handler
func New(cfg *mockapi.Config) (*Handler, error) {
	tools, err := mockapi.ToolSchemas()
	if err != nil {
		return nil, err
	}
	return &Handler{cfg: cfg, tools: tools}, nil
}

// Handle 处理一次 Mock 调用
//
// 顺序：检索模拟 -> 模型调用模拟（延迟 + 错误 + 合成）。
// 模拟错误原样向上传播，由传输层翻译为 HTTP 状态。
// 返回文本输出与实际延迟（毫秒）。
func (h *Handler) Handle(ctx context.Context, req *mockapi.ChatRequest) (string, int, error) {
	ctx, span := obs.Start(ctx, "chat_workflow", obs.KindWorkflow)
	defer span.End()

	msgs := req.PlainMessages()

	h.retrieve(ctx, msgs)

	output, latencyMS, err := h.modelCall(ctx, msgs, req)
	if err != nil {
		obs.Fail(span, err)
		return "", 0, err
	}

	// workflow span 上的汇总标注
	obs.AnnotateInput(span, map[string]any{
		"user_id":           req.UserID,
		"session_id":        req.SessionID,
		"messages":          msgs,
		"simulate_error":    req.SimulateError,
		"forced_output":     req.ForcedOutput,
		"forced_tool_calls": req.ForcedToolCalls,
	})
	obs.AnnotateOutput(span, map[string]any{
		"output":     output,
		"latency_ms": latencyMS,
	})

	return output, latencyMS, nil
}

// retrieve 模拟一次 RAG 检索
//
// 固定延迟后返回静态单文档结果集。
func (h *Handler) retrieve(ctx context.Context, msgs []map[string]any) []Document {
	_, span := obs.Start(ctx, "mock_retrieval", obs.KindRetrieval)
	defer span.End()

	time.Sleep(retrievalDelay)

	docs := []Document{{ID: "doc-1", Text: "mock doc", Score: 0.99}}
	obs.AnnotateInput(span, map[string]any{"messages": msgs})
	obs.AnnotateOutput(span, docs)
	return docs
}

// modelCall 模拟一次模型调用
//
// 延迟与错误由 [Simulate] 产生；错误路径的 span 会被标记为
// 错误状态，但延迟不会被跳过。
func (h *Handler) modelCall(ctx context.Context, msgs []map[string]any, req *mockapi.ChatRequest) (string, int, error) {
	_, span := obs.Start(ctx, "mock_llm_call", obs.KindLLM)
	defer span.End()

	latencyMS, err := Simulate(req.MinLatencyMS, req.MaxLatencyMS, req.SimulateError, h.cfg.Provider, h.cfg.Model)
	if err != nil {
		obs.Fail(span, err)
		return "", 0, err
	}

	output, assistant := h.synthesize(req)

	// Schema 放进 span input，使用 {{span_input}} 的评估模板才能看到
	obs.AnnotateInput(span, map[string]any{"messages": msgs, "tools": h.tools})
	obs.AnnotateOutput(span, []mockapi.AssistantMessage{assistant})
	obs.AnnotateMetadata(span, map[string]any{"mock": true})
	obs.Tag(span, "llm.provider", h.cfg.Provider)
	obs.Tag(span, "llm.model", h.cfg.Model)

	return output, latencyMS, nil
}
