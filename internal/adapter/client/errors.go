package client

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
)

// maxErrorBody 非 JSON 错误响应截断长度，避免把整页 HTML 带进日志和信封
const maxErrorBody = 256

type upstreamErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Detail  string `json:"detail"`
}

// upstreamMessage 从错误响应体里提取可读信息：
// 结构化 JSON 优先，否则取截断后的原文，实在没有就按状态码合成一条
func upstreamMessage(body []byte, status int) string {
	var e upstreamErrorBody
	if err := sonic.Unmarshal(body, &e); err == nil {
		switch {
		case e.Message != "":
			return e.Message
		case e.Error != "":
			return e.Error
		case e.Detail != "":
			return e.Detail
		}
	}

	text := strings.TrimSpace(string(body))
	if len(text) > maxErrorBody {
		text = text[:maxErrorBody]
	}
	if text != "" {
		return fmt.Sprintf("upstream responded %d: %s", status, text)
	}
	return fmt.Sprintf("upstream responded with status %d", status)
}
