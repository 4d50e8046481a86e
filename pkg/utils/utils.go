package utils

import (
	"github.com/shopspring/decimal"
)

// IsUnixSeconds 检查时间戳是否为秒级
func IsUnixSeconds(ts int64) bool {
	// 定义时间戳范围：1970-01-01 到 2100-01-01
	const maxUnix = 4_102_444_800 // 2100-01-01 00:00:00 UTC
	return ts >= 0 && ts < maxUnix
}

// FormatAmount 按精度换算原始数量字符串，全程走 decimal，不丢精度
func FormatAmount(raw string, decimals int32) (string, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return "", err
	}
	return d.Shift(-decimals).String(), nil
}
