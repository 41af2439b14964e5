package obs

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// scopeName instrumentation scope 名称
const scopeName = "github.com/lwmacct/260824-go-app-llm-mock-api/pkg/obs"

// ═══════════════════════════════════════════════════════════════════════════
// Span 类别
// ═══════════════════════════════════════════════════════════════════════════

// Kind span 类别标签
type Kind string

const (
	KindWorkflow  Kind = "workflow"
	KindRetrieval Kind = "retrieval"
	KindLLM       Kind = "llm"
)

// 标注使用的 attribute 键
const (
	attrKind     = "span.kind"
	attrInput    = "span.input"
	attrOutput   = "span.output"
	attrMetadata = "span.metadata"
)

// ═══════════════════════════════════════════════════════════════════════════
// Span 操作
// ═══════════════════════════════════════════════════════════════════════════

// Start 打开一个嵌套的命名 span
//
// 返回的 ctx 携带新 span，传递给下层即形成父子关系。
// 调用方必须保证在所有退出路径上调用 span.End()（defer）。
func Start(ctx context.Context, name string, kind Kind) (context.Context, trace.Span) {
	return otel.Tracer(scopeName).Start(ctx, name,
		trace.WithAttributes(attribute.String(attrKind, string(kind))))
}

// AnnotateInput 向 span 附加结构化输入标注
func AnnotateInput(span trace.Span, v any) {
	span.SetAttributes(attribute.String(attrInput, encode(v)))
}

// AnnotateOutput 向 span 附加结构化输出标注
func AnnotateOutput(span trace.Span, v any) {
	span.SetAttributes(attribute.String(attrOutput, encode(v)))
}

// AnnotateMetadata 向 span 附加元数据标注
func AnnotateMetadata(span trace.Span, v any) {
	span.SetAttributes(attribute.String(attrMetadata, encode(v)))
}

// Tag 向 span 附加单个字符串标签
func Tag(span trace.Span, key, value string) {
	span.SetAttributes(attribute.String(key, value))
}

// Fail 记录错误并将 span 置为错误状态
//
// 错误路径同样要求 span 正常关闭，Fail 不代替 End。
func Fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// encode 将任意值编码为 JSON 字符串
//
// 编码失败时退化为 fmt 表示，标注永不报错。
func encode(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
