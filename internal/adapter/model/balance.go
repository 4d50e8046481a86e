package model

// TokenBalance 钱包在某个 token 上的当前余额，一个 (钱包, token) 一条
type TokenBalance struct {
	ContractAddress string   `json:"contract_address"`        // token 合约地址
	Amount          string   `json:"amount"`                  // 原始余额（十进制字符串，不丢精度）
	Value           *string  `json:"value,omitempty"`         // 按精度换算后的余额字符串
	AmountUSD       *float64 `json:"amount_usd,omitempty"`    // 美元估值
	Name            *string  `json:"name,omitempty"`
	Symbol          *string  `json:"symbol,omitempty"`
	Decimals        *int32   `json:"decimals,omitempty"`
	NetworkID       string   `json:"network_id"`
}

// TokenBalancesPage 余额列表 + 透传的分页信息
type TokenBalancesPage struct {
	Balances []TokenBalance `json:"balances"`
	Meta     Meta           `json:"meta,omitempty"`
}

// HistoricalBalance 某个时间点上的余额快照
type HistoricalBalance struct {
	BlockNum  *int64   `json:"block_num,omitempty"`
	Timestamp int64    `json:"timestamp"`
	Datetime  string   `json:"datetime"`
	Amount    string   `json:"amount"`
	AmountUSD *float64 `json:"amount_usd,omitempty"`
}

// TokenBalanceHistory 单个钱包在一个 token 上的余额时间序列
type TokenBalanceHistory struct {
	ContractAddress string              `json:"contract_address"`
	Symbol          *string             `json:"symbol,omitempty"`
	Decimals        *int32              `json:"decimals,omitempty"`
	Balances        []HistoricalBalance `json:"balances"`
}

// BalanceHistoryPage 历史余额查询结果
type BalanceHistoryPage struct {
	History []TokenBalanceHistory `json:"history"`
	Meta    Meta                  `json:"meta,omitempty"`
}
