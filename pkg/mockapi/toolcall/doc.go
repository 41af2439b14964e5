// Package toolcall 提供工具调用的归一化与 wire 格式化
//
// 调用方可以用两种形状提交强制工具调用：
//
// Shape A（直接形状）：
//
//	{"name": "get_weather", "arguments": {"location": "Paris"}}
//
// Shape B（OpenAI 形状）：
//
//	{"type": "function", "function": {"name": "get_weather", "arguments": "{\"location\":\"Paris\"}"}}
//
// [Normalize] 将任意输入归一化为规范的 [Record] 序列，
// [Format] 再将其转换为 OpenAI 风格的 [Wire] 序列
// （id 为纯位置编号 "call_0", "call_1", ...）。
//
// 归一化永不失败：无法识别的条目降级为 {name: null, arguments: {}}，
// 非法 JSON 字符串参数原样保留。
package toolcall
