// Package chat 实现 Mock 调用的编排逻辑
//
// 一次请求按固定顺序执行，无分支回退、无重试：
//
//	workflow span
//	├── retrieval span   模拟文档检索（固定 30ms，返回单文档）
//	└── llm span         延迟模拟 -> 错误模拟 -> 响应合成
//
// [Handler.Handle] 是入口。延迟由 [Simulate] 产生：在
// [max(0,min), max(min,max)] 内均匀抽取整数毫秒并真实休眠，
// 休眠一旦开始必定完整执行，simulate_error 的错误在延迟结束后
// 才会抛出。
//
// 响应合成规则：
//   - forced_tool_calls 非 nil（包括空序列）→ 工具分支，
//     文本输出固定为 "Calling tool."
//   - 否则 → forced_output 或默认响应文本
package chat
