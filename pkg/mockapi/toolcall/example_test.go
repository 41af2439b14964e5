package toolcall_test

import (
	"encoding/json"
	"fmt"

	"github.com/lwmacct/260824-go-app-llm-mock-api/pkg/mockapi/toolcall"
)

// ExampleNormalize 展示两种输入形状的归一化
func ExampleNormalize() {
	raw := []map[string]any{
		// Shape A
		{"name": "get_weather", "arguments": map[string]any{"location": "Paris"}},
		// Shape B（OpenAI 形状，参数为 JSON 字符串）
		{"type": "function", "function": map[string]any{
			"name":      "get_weather",
			"arguments": `{"location":"Tokyo"}`,
		}},
	}

	for _, rec := range toolcall.Normalize(raw) {
		args, _ := json.Marshal(rec.Arguments)
		fmt.Println(*rec.Name, string(args))
	}
	// Output:
	// get_weather {"location":"Paris"}
	// get_weather {"location":"Tokyo"}
}

// ExampleFormat 展示 wire 格式化，id 为纯位置编号
func ExampleFormat() {
	records := toolcall.Normalize([]map[string]any{
		{"name": "get_weather", "arguments": map[string]any{"location": "Paris"}},
		{"name": "get_weather", "arguments": map[string]any{"location": "Tokyo"}},
	})

	for _, w := range toolcall.Format(records) {
		fmt.Println(w.ID, w.Type, *w.Function.Name, w.Function.Arguments)
	}
	// Output:
	// call_0 function get_weather {"location":"Paris"}
	// call_1 function get_weather {"location":"Tokyo"}
}
