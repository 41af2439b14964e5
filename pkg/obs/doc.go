// Package obs 提供观测标注的轻量封装
//
// 基于 OpenTelemetry trace API 实现三类嵌套 span：
//
//   - workflow: 一次完整逻辑请求的最外层 span
//   - retrieval: 模拟文档检索步骤的 span
//   - llm: 模拟模型调用的 span
//
// 核心逻辑只依赖两个操作：打开嵌套 span（[Start]）与向当前
// span 附加结构化标注（[AnnotateInput] / [AnnotateOutput] 等）。
// span 的导出与存储由 TracerProvider 决定，对核心透明。
//
// 使用方式：
//
//	ctx, span := obs.Start(ctx, "chat_workflow", obs.KindWorkflow)
//	defer span.End()
//
//	obs.AnnotateInput(span, map[string]any{"messages": msgs})
//	obs.AnnotateOutput(span, result)
package obs
