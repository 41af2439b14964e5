package mockapi

import (
	"errors"
	"fmt"
)

// ═══════════════════════════════════════════════════════════════════════════
// 错误类型
// ═══════════════════════════════════════════════════════════════════════════

// ErrorType 错误类型
type ErrorType string

const (
	// ErrTypeSimulated 模拟的 Provider 错误
	ErrTypeSimulated ErrorType = "simulated_error"

	// ErrTypeValidation 请求校验错误（传输层产生，核心不会见到）
	ErrTypeValidation ErrorType = "validation_error"
)

// ═══════════════════════════════════════════════════════════════════════════
// 基础错误
// ═══════════════════════════════════════════════════════════════════════════

// BaseError 基础错误实现
type BaseError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *BaseError) Unwrap() error {
	return e.Err
}

// ═══════════════════════════════════════════════════════════════════════════
// 模拟错误
// ═══════════════════════════════════════════════════════════════════════════

// SimulatedError 模拟的 LLM Provider 错误
//
// 当请求设置 simulate_error 时在延迟结束后产生，
// 原样穿透所有编排层，由传输层翻译为 5xx 响应。
type SimulatedError struct {
	*BaseError

	Provider string
	Model    string
}

// NewSimulatedError 创建模拟错误
func NewSimulatedError(provider, model string) *SimulatedError {
	return &SimulatedError{
		BaseError: &BaseError{
			Type:    ErrTypeSimulated,
			Message: "simulated LLM provider error (mock)",
		},
		Provider: provider,
		Model:    model,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 校验错误
// ═══════════════════════════════════════════════════════════════════════════

// ValidationError 请求校验错误
type ValidationError struct {
	*BaseError
}

// NewValidationError 创建校验错误
func NewValidationError(message string, err error) *ValidationError {
	return &ValidationError{
		BaseError: &BaseError{
			Type:    ErrTypeValidation,
			Message: message,
			Err:     err,
		},
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// 错误匹配函数（支持 errors.Is/As）
// ═══════════════════════════════════════════════════════════════════════════

// IsSimulatedError 检查是否为模拟错误
func IsSimulatedError(err error) bool {
	var e *SimulatedError
	return errors.As(err, &e)
}

// IsValidationError 检查是否为校验错误
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}
