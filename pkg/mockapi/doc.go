// Package mockapi 定义 LLM Mock API 服务的核心类型与进程配置
//
// 本服务模拟一次 chat/LLM 调用，用于生成真实形态的观测链路
// （APM span + LLM 专属 span），无需调用任何真实模型。
//
// # 核心类型
//
// [ChatMessage] 表示对话中的单条消息，[ChatRequest] 表示一次
// 完整的请求（对话 + 可选的强制参数），[ChatResponse] 表示
// HTTP 层返回的响应体。
//
// [AssistantMessage] 仅用于观测标注（span output），不直接
// 出现在 HTTP 响应中。
//
// # 进程配置
//
// [Config] 在进程启动时读取一次，之后只读：
//
// 环境变量：
//   - LLM_PROVIDER: Provider 标识（默认 "mock"）
//   - LLM_MODEL: 模型标识（默认 "mock-1"）
//   - DD_SERVICE: 服务名（默认 "llm-mock-api"）
//   - DD_VERSION: 语义版本（默认 "0.1.0"）
//   - LLM_ADDR: 监听地址（默认 ":8000"）
//   - LLM_MOCK_PROFILE: 可选的 YAML Profile 文件路径
//
// # 错误
//
// [SimulatedError] 是核心唯一会主动产生的失败，用于测试
// 错误链路的观测行为。通过 [IsSimulatedError] 匹配。
//
// # 子包
//
//   - [pkg/mockapi/toolcall]: 工具调用归一化与 wire 格式化
//   - [pkg/mockapi/chat]: 延迟/错误模拟与响应合成
package mockapi
