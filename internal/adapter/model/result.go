package model

import "fmt"

// ResultError 统一错误信息：message + 上游（或本层合成的）HTTP 状态码
type ResultError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("token api error %d: %s", e.Status, e.Message)
}

// Result 是所有请求函数的统一返回信封，Data 和 Error 永远只有一个被填充。
// 本层的函数不向调用方抛错，所有失败都通过 Error 字段返回。
type Result[T any] struct {
	Data  *T           `json:"data,omitempty"`
	Error *ResultError `json:"error,omitempty"`
}

func Ok[T any](data *T) Result[T] {
	return Result[T]{Data: data}
}

func Err[T any](status int, format string, args ...any) Result[T] {
	return Result[T]{Error: &ResultError{
		Message: fmt.Sprintf(format, args...),
		Status:  status,
	}}
}

// OK 表示请求没有出错（Data 可能为空列表）
func (r Result[T]) OK() bool {
	return r.Error == nil
}

// Meta 分页/统计信息原样透传块（page、pagination、statistics 等），不做二次解释
type Meta map[string]any
