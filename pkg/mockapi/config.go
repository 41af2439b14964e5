package mockapi

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// ═══════════════════════════════════════════════════════════════════════════
// 进程配置
// ═══════════════════════════════════════════════════════════════════════════

// Config 进程级配置
//
// 启动时读取一次，之后只读。所有请求共享同一份实例。
//
// 基本用法：
//
//	cfg, err := mockapi.LoadConfig()
//	if err != nil {
//	    // 配置/Profile 无效
//	}
type Config struct {
	// Provider 标识（成为 LLM span 的 tag）
	Provider string `koanf:"provider"`

	// Model 标识（成为 LLM span 的 tag）
	Model string `koanf:"model"`

	// Service APM span 的服务名
	Service string `koanf:"service"`

	// Version 语义版本标识
	Version string `koanf:"version"`

	// Addr HTTP 监听地址
	Addr string `koanf:"addr"`

	// DefaultResponse 无任何强制参数时的响应文本
	DefaultResponse string `koanf:"default-response"`

	// MinLatencyMS / MaxLatencyMS 请求未指定时的延迟区间
	MinLatencyMS int `koanf:"min-latency-ms"`
	MaxLatencyMS int `koanf:"max-latency-ms"`
}

// envKeys 环境变量到配置键的映射
//
// 不在映射中的变量一律忽略。
var envKeys = map[string]string{
	"LLM_PROVIDER": "provider",
	"LLM_MODEL":    "model",
	"DD_SERVICE":   "service",
	"DD_VERSION":   "version",
	"LLM_ADDR":     "addr",
}

// LoadConfig 加载进程配置
//
// 加载顺序：内置默认值 -> 环境变量 -> Profile 文件（可选，
// 路径由 LLM_MOCK_PROFILE 指定）。Profile 无效时启动失败。
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	// 默认值
	if err := k.Load(confmap.Provider(map[string]any{
		"provider":         "mock",
		"model":            "mock-1",
		"service":          "llm-mock-api",
		"version":          "0.1.0",
		"addr":             ":8000",
		"default-response": DefaultResponseText,
		"min-latency-ms":   200,
		"max-latency-ms":   800,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// 环境变量覆盖
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Profile 文件（可选）
	if path := os.Getenv("LLM_MOCK_PROFILE"); path != "" {
		profile, err := LoadProfileFile(path)
		if err != nil {
			return nil, err
		}
		profile.apply(cfg)
	}

	return cfg, nil
}

// DefaultResponseText 默认的 Mock 响应文本
const DefaultResponseText = "MOCK RESPONSE"

// ═══════════════════════════════════════════════════════════════════════════
// Mock Profile
// ═══════════════════════════════════════════════════════════════════════════

// Profile 可选的 YAML Profile
//
// 用于在不改代码的情况下调整默认响应文本与默认延迟区间，
// 未设置的字段保持进程默认值。
type Profile struct {
	// DefaultResponse 覆盖默认响应文本
	DefaultResponse string `yaml:"default_response"`

	// MinLatencyMS / MaxLatencyMS 覆盖默认延迟区间
	MinLatencyMS *int `yaml:"min_latency_ms"`
	MaxLatencyMS *int `yaml:"max_latency_ms"`
}

// LoadProfileFile 从文件加载 Profile
func LoadProfileFile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}
	return LoadProfileFromBytes(data)
}

// LoadProfileFromBytes 从字节数据加载 Profile
func LoadProfileFromBytes(data []byte) (*Profile, error) {
	p := &Profile{}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return p, nil
}

// apply 将 Profile 应用到配置
func (p *Profile) apply(cfg *Config) {
	if p.DefaultResponse != "" {
		cfg.DefaultResponse = p.DefaultResponse
	}
	if p.MinLatencyMS != nil {
		cfg.MinLatencyMS = *p.MinLatencyMS
	}
	if p.MaxLatencyMS != nil {
		cfg.MaxLatencyMS = *p.MaxLatencyMS
	}
}
