package mockapi

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed schemas/tools.yaml
var toolSchemasYAML []byte

// ═══════════════════════════════════════════════════════════════════════════
// 工具 Schema
// ═══════════════════════════════════════════════════════════════════════════

// ToolSchema 工具描述（wire 形状）
//
// 进程级静态数据，只暴露给观测标注层，不直接返回给 HTTP 调用方。
// 评估器（如 Tool Argument Correctness）依赖 span input 中的这份定义。
type ToolSchema struct {
	Type     string       `yaml:"type" json:"type"`
	Function ToolFunction `yaml:"function" json:"function"`
}

// ToolFunction 工具函数定义
type ToolFunction struct {
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description"`
	Parameters  map[string]any `yaml:"parameters" json:"parameters"`
}

var (
	toolSchemasOnce sync.Once
	toolSchemas     []ToolSchema
	toolSchemasErr  error
)

// ToolSchemas 返回内嵌的工具 Schema 列表
//
// 首次调用时解析，之后返回缓存结果。列表只读，调用方不得修改。
func ToolSchemas() ([]ToolSchema, error) {
	toolSchemasOnce.Do(func() {
		var schemas []ToolSchema
		if err := yaml.Unmarshal(toolSchemasYAML, &schemas); err != nil {
			toolSchemasErr = fmt.Errorf("parse tool schemas: %w", err)
			return
		}
		toolSchemas = schemas
	})
	return toolSchemas, toolSchemasErr
}
