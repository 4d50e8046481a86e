package model

// TokenHolder token 的单个持有者，一个 (token, holder) 一条
type TokenHolder struct {
	Address          string   `json:"address"` // 持有者钱包地址
	Balance          string   `json:"balance"` // 原始余额（十进制字符串）
	BalanceUSD       *float64 `json:"balance_usd,omitempty"`
	LastUpdatedBlock *int64   `json:"last_updated_block,omitempty"`
	Timestamp        *int64   `json:"timestamp,omitempty"`
	Datetime         *string  `json:"datetime,omitempty"`
	Percent          *float64 `json:"percent,omitempty"` // 占总供应量比例
}

// HoldersPage 持有者列表 + 透传的分页信息
type HoldersPage struct {
	Holders []TokenHolder `json:"holders"`
	Meta    Meta          `json:"meta,omitempty"`
}
