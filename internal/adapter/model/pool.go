package model

// PoolToken AMM 池中的一侧 token
type PoolToken struct {
	Address  string  `json:"address"`
	Symbol   *string `json:"symbol,omitempty"`
	Decimals *int32  `json:"decimals,omitempty"`
}

// Pool AMM 流动性池描述
type Pool struct {
	Pool      string    `json:"pool"` // 池合约地址
	Token0    PoolToken `json:"token0"`
	Token1    PoolToken `json:"token1"`
	Factory   *string   `json:"factory,omitempty"`
	Fee       *int64    `json:"fee,omitempty"`
	Protocol  *string   `json:"protocol,omitempty"`
	NetworkID string    `json:"network_id"`
}

// PoolsPage 池列表 + 透传的分页信息
type PoolsPage struct {
	Pools []Pool `json:"pools"`
	Meta  Meta   `json:"meta,omitempty"`
}
