// Package server 提供 HTTP 传输层
//
// 路由：
//
//	GET  /health  健康检查，返回 {"ok": true}
//	POST /chat    Mock 调用入口
//
// 请求在进入核心逻辑前完成 Schema 校验（messages 必填、角色
// 枚举合法、未知字段忽略），校验失败返回 4xx。模拟错误被翻译
// 为 5xx。整个请求被 otelhttp 包裹，产生与内部 LLM span 同
// trace 的外层 HTTP span。
package server
