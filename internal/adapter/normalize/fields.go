package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"token-api/pkg/utils"
)

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asList(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

// str 按优先级尝试 keys，返回第一个非空字符串
func str(m map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t != "" {
				return t, true
			}
		case json.Number:
			return t.String(), true
		}
	}
	return "", false
}

// decStr 数量字段：字符串原样保留；数字取 json.Number 的原文，大整数不丢精度
func decStr(m map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t != "" {
				return t, true
			}
		case json.Number:
			return t.String(), true
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64), true
		}
	}
	return "", false
}

func i64(m map[string]any, keys ...string) (int64, bool) {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		if n, ok := toInt64(v); ok {
			return n, true
		}
	}
	return 0, false
}

func f64(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case json.Number:
			if f, err := t.Float64(); err == nil {
				return f, true
			}
		case float64:
			return t, true
		case string:
			if f, err := strconv.ParseFloat(t, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

func i32(m map[string]any, keys ...string) (int32, bool) {
	n, ok := i64(m, keys...)
	if !ok {
		return 0, false
	}
	return int32(n), true
}

func toInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, true
		}
		if f, err := t.Float64(); err == nil {
			return int64(f), true
		}
	case float64:
		return int64(t), true
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

func strPtr(m map[string]any, keys ...string) *string {
	if s, ok := str(m, keys...); ok {
		return &s
	}
	return nil
}

func decStrPtr(m map[string]any, keys ...string) *string {
	if s, ok := decStr(m, keys...); ok {
		return &s
	}
	return nil
}

func i64Ptr(m map[string]any, keys ...string) *int64 {
	if n, ok := i64(m, keys...); ok {
		return &n
	}
	return nil
}

func f64Ptr(m map[string]any, keys ...string) *float64 {
	if f, ok := f64(m, keys...); ok {
		return &f
	}
	return nil
}

func i32Ptr(m map[string]any, keys ...string) *int32 {
	if n, ok := i32(m, keys...); ok {
		return &n
	}
	return nil
}

// tsRule 时间戳来源规则：按声明顺序尝试，第一个解析成功的生效。
// 规则本身是数据，新的字段名加一行即可。
type tsRule struct {
	key   string
	parse func(v any) (int64, bool)
}

var timestampRules = []tsRule{
	{"timestamp", parseUnix},
	{"datetime", parseDatetime},
	{"date", parseDatetime},
	{"block_timestamp", parseBlockTimestamp},
}

// timestampOf 按规则表解析 Unix 秒级时间戳
func timestampOf(m map[string]any) (int64, bool) {
	for _, r := range timestampRules {
		v, ok := m[r.key]
		if !ok || v == nil {
			continue
		}
		if ts, ok := r.parse(v); ok {
			return ts, true
		}
	}
	return 0, false
}

// parseUnix 数字时间戳，毫秒级自动降到秒级
func parseUnix(v any) (int64, bool) {
	n, ok := toInt64(v)
	if !ok {
		return 0, false
	}
	if !utils.IsUnixSeconds(n) {
		n = n / 1000
	}
	return n, true
}

var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseDatetime(v any) (int64, bool) {
	s, ok := v.(string)
	if !ok {
		return 0, false
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Unix(), true
		}
	}
	return 0, false
}

// parseBlockTimestamp 区块时间戳，数字或文本两种形态都有
func parseBlockTimestamp(v any) (int64, bool) {
	if ts, ok := parseUnix(v); ok {
		return ts, true
	}
	return parseDatetime(v)
}

// rawDatetime 载荷里已有的文本时间，原样保留
func rawDatetime(m map[string]any) (string, bool) {
	for _, k := range []string{"datetime", "date"} {
		if s, ok := m[k].(string); ok && s != "" {
			if _, ok := parseDatetime(s); ok {
				return s, true
			}
		}
	}
	return "", false
}

func unixToDatetime(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}

// timeFields 返回互相补齐后的 (timestamp, datetime)：
// 只有其中一个时，另一个从它推导，两个都拿不到时返回 false
func timeFields(m map[string]any) (int64, string, bool) {
	ts, ok := timestampOf(m)
	if !ok {
		return 0, "", false
	}
	if dt, ok := rawDatetime(m); ok {
		return ts, dt, true
	}
	return ts, unixToDatetime(ts), true
}

// poolToken token0/token1 既可能是对象也可能是裸地址字符串
func poolToken(v any) (address string, symbol *string, decimals *int32, ok bool) {
	switch t := v.(type) {
	case string:
		if t == "" {
			return "", nil, nil, false
		}
		return t, nil, nil, true
	case map[string]any:
		addr, found := str(t, "address", "contract_address", "contract", "id")
		if !found {
			return "", nil, nil, false
		}
		return addr, strPtr(t, "symbol"), i32Ptr(t, "decimals"), true
	}
	return "", nil, nil, false
}

// normalizedAddr 去掉空白，保持大小写
func normalizedAddr(s string) string {
	return strings.TrimSpace(s)
}
