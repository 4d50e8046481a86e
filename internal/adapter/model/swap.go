package model

// Swap 一笔历史兑换事件
type Swap struct {
	TransactionID string     `json:"transaction_id"`
	Pool          string     `json:"pool"`
	Sender        string     `json:"sender"`
	Recipient     string     `json:"recipient"`
	Amount0       string     `json:"amount0"` // token0 数量（十进制字符串，可为负）
	Amount1       string     `json:"amount1"` // token1 数量（十进制字符串，可为负）
	Token0        *PoolToken `json:"token0,omitempty"`
	Token1        *PoolToken `json:"token1,omitempty"`
	Protocol      *string    `json:"protocol,omitempty"`
	Timestamp     *int64     `json:"timestamp,omitempty"`
	Datetime      *string    `json:"datetime,omitempty"`
	NetworkID     string     `json:"network_id"`
}

// SwapsPage 兑换列表 + 透传的分页信息
type SwapsPage struct {
	Swaps []Swap `json:"swaps"`
	Meta  Meta   `json:"meta,omitempty"`
}
