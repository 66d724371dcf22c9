package actions

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument 构造参数非法（空组合、变速因子为 0 等）
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnsupported 动作不支持该操作（如 CallFunction 的反转）
	ErrUnsupported = errors.New("unsupported operation")
	// ErrPrecondition 调用时机错误（如未绑定目标就启动）
	ErrPrecondition = errors.New("precondition violation")
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidArgument)
}

func unsupportedf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrUnsupported)
}

func preconditionf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrPrecondition)
}
