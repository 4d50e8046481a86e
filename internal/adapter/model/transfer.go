package model

// TokenTransfer 一笔历史转账事件，不可变
type TokenTransfer struct {
	BlockNum      int64   `json:"block_num"`
	Timestamp     int64   `json:"timestamp"`
	Datetime      string  `json:"datetime"`
	Contract      string  `json:"contract"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	Amount        string  `json:"amount"` // 转账数量（十进制字符串）
	TransactionID string  `json:"transaction_id"`
	Symbol        *string `json:"symbol,omitempty"`
	Decimals      *int32  `json:"decimals,omitempty"`
	NetworkID     string  `json:"network_id"`
}

// TransfersPage 转账列表 + 透传的分页信息
type TransfersPage struct {
	Transfers []TokenTransfer `json:"transfers"`
	Meta      Meta            `json:"meta,omitempty"`
}
