package common

import (
	"errors"
	"fmt"
)

// AppError 应用级错误结构
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WrapError 包装错误
func WrapError(code, message string, err error) error {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewError 创建新错误
func NewError(code, message string) error {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// CodeOf 提取错误码，非 AppError 返回空串
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// 错误码常量
// 只有 CONFIG_ERROR 会终止进程，其余均在本地恢复
const (
	ErrCodeConfig            = "CONFIG_ERROR"
	ErrCodeDataLoad          = "DATA_LOAD_FAILURE"
	ErrCodeInvalidPreference = "INVALID_PREFERENCE"
	ErrCodeRoadmap           = "ROADMAP_GENERATION_FAILURE"
	ErrCodeGitHubAPI         = "GITHUB_API_ERROR"
	ErrCodeInternal          = "INTERNAL_ERROR"
)
