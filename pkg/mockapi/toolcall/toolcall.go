package toolcall

import (
	"encoding/json"
	"fmt"
)

// ═══════════════════════════════════════════════════════════════════════════
// 规范形式
// ═══════════════════════════════════════════════════════════════════════════

// Record 规范化后的工具调用
//
// Name 为 nil 表示输入形状无法识别。Arguments 要么是
// map[string]any，要么是无法解析为 JSON 的原始字符串。
type Record struct {
	Name      *string `json:"name"`
	Arguments any     `json:"arguments"`
}

// Normalize 将任意形状的工具调用序列归一化
//
// 每个条目按顺序尝试：
//  1. Shape A: 含 "name" 键，直接取 name/arguments
//  2. Shape B: 含 "function" 子对象，从中取 name/arguments
//  3. 其他: 降级为 {name: nil, arguments: {}}
//
// 字符串参数会尝试 JSON 解码，失败时原样保留。
// 输出与输入等长且保序，永不返回错误。
func Normalize(raw []map[string]any) []Record {
	normalized := make([]Record, 0, len(raw))

	for _, item := range raw {
		var name *string
		var args any

		if v, ok := item["name"]; ok {
			// Shape A
			if s, ok := v.(string); ok {
				name = &s
			}
			args = item["arguments"]
		} else if fn, ok := item["function"].(map[string]any); ok {
			// Shape B
			if s, ok := fn["name"].(string); ok {
				name = &s
			}
			args = fn["arguments"]
		}

		// 字符串参数尝试解析为结构化数据（不限于对象），
		// 解析失败时保留原始字符串
		if s, ok := args.(string); ok {
			var decoded any
			if err := json.Unmarshal([]byte(s), &decoded); err == nil {
				args = decoded
			}
		}

		if args == nil {
			args = map[string]any{}
		}

		normalized = append(normalized, Record{Name: name, Arguments: args})
	}

	return normalized
}

// ═══════════════════════════════════════════════════════════════════════════
// Wire 形式
// ═══════════════════════════════════════════════════════════════════════════

// Wire OpenAI 风格的工具调用
type Wire struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function WireFunction `json:"function"`
}

// WireFunction 工具调用的 function 字段
//
// Arguments 始终是 JSON 编码后的字符串。
type WireFunction struct {
	Name      *string `json:"name"`
	Arguments string  `json:"arguments"`
}

// Format 将规范化序列转换为 wire 序列
//
// id 为纯位置编号（"call_<i>"），与内容无关，保序且确定。
func Format(records []Record) []Wire {
	out := make([]Wire, 0, len(records))

	for i, rec := range records {
		var argsStr string
		if m, ok := rec.Arguments.(map[string]any); ok {
			// map 参数 JSON 编码；string 键的 map 编码不会失败
			b, err := json.Marshal(m)
			if err != nil {
				argsStr = fmt.Sprintf("%v", m)
			} else {
				argsStr = string(b)
			}
		} else {
			argsStr = fmt.Sprintf("%v", rec.Arguments)
		}

		out = append(out, Wire{
			ID:   fmt.Sprintf("call_%d", i),
			Type: "function",
			Function: WireFunction{
				Name:      rec.Name,
				Arguments: argsStr,
			},
		})
	}

	return out
}
