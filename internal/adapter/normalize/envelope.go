package normalize

import (
	"errors"

	"token-api/internal/adapter/model"

	"github.com/bytedance/sonic"
)

// ErrUnrecognizedShape 响应不属于任何已知信封形态。
// 上游 API 的形态不受本层控制，这里按软失败处理，不会向上抛异常。
var ErrUnrecognizedShape = errors.New("response shape matched no known envelope")

// api 数字按原文保留（json.Number），大额 token 数量不能走 float64
var api = sonic.Config{UseNumber: true}.Froze()

// Decode 解析上游 JSON 响应体
func Decode(data []byte) (any, error) {
	var v any
	if err := api.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// listPayload 按固定优先级定位列表载荷：
// 资源专属 key → data 数组 → 裸数组
func listPayload(body any, resourceKey string) ([]any, bool) {
	if m, ok := asMap(body); ok {
		if l, ok := asList(m[resourceKey]); ok {
			return l, true
		}
		if l, ok := asList(m["data"]); ok {
			return l, true
		}
		return nil, false
	}
	if l, ok := asList(body); ok {
		return l, true
	}
	return nil, false
}

// objectPayload 单体资源载荷：
// 资源专属数组/data 数组的第一个元素 → data 对象 → 裸对象。
// 数组存在但为空时返回 (nil, true, true)，表示"没出错，但什么都没查到"。
func objectPayload(body any, resourceKey string) (obj map[string]any, empty bool, ok bool) {
	if m, ok := asMap(body); ok {
		if l, found := asList(m[resourceKey]); found {
			return firstObject(l)
		}
		if l, found := asList(m["data"]); found {
			return firstObject(l)
		}
		if inner, found := asMap(m["data"]); found {
			return inner, false, true
		}
		return m, false, true
	}
	if l, found := asList(body); found {
		return firstObject(l)
	}
	return nil, false, false
}

func firstObject(l []any) (map[string]any, bool, bool) {
	if len(l) == 0 {
		return nil, true, true
	}
	m, ok := asMap(l[0])
	if !ok {
		return nil, false, false
	}
	return m, false, true
}

// metaKeys 原样透传的分页/统计块
var metaKeys = []string{"page", "page_size", "total_pages", "pagination", "statistics", "results", "total_results"}

// metaOf 把信封里的分页/统计信息原样拷到 Meta，不做解释
func metaOf(body any) model.Meta {
	m, ok := asMap(body)
	if !ok {
		return nil
	}
	var meta model.Meta
	for _, k := range metaKeys {
		if v, ok := m[k]; ok {
			if meta == nil {
				meta = model.Meta{}
			}
			meta[k] = v
		}
	}
	return meta
}
