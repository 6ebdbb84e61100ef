package ml

import (
	"errors"
	"fmt"
)

var (
	// ErrBundleUnavailable 启动时模型包缺失或损坏，服务降级为纯规则模式
	ErrBundleUnavailable = errors.New("model bundle unavailable")
)

// EncodingError 画像字段无法按训练期词表编码。
// 调用方捕获后应转入规则推荐分支，不得作为硬错误抛给用户。
type EncodingError struct {
	Field string
	Value string
}

func (e *EncodingError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("encoding: missing required field %q", e.Field)
	}
	return fmt.Sprintf("encoding: value %q of field %q not in trained vocabulary", e.Value, e.Field)
}

// IsEncodingError 判断错误是否为编码失败
func IsEncodingError(err error) bool {
	var ee *EncodingError
	return errors.As(err, &ee)
}
