package model

// TokenDetails 单个 token 合约的基础信息
type TokenDetails struct {
	Address  string  `json:"address"`
	Name     *string `json:"name,omitempty"`
	Symbol   *string `json:"symbol,omitempty"`
	Decimals *int32  `json:"decimals,omitempty"`
	Network  *string `json:"network,omitempty"`
}

// TokenMetadata token 合约在某个时间点上的快照，带可选的行情块
type TokenMetadata struct {
	ContractAddress string  `json:"contract_address"`
	Name            *string `json:"name,omitempty"`
	Symbol          *string `json:"symbol,omitempty"`
	Decimals        *int32  `json:"decimals,omitempty"`
	TotalSupply     *string `json:"total_supply,omitempty"` // 总供应量（十进制字符串）
	BlockNumber     *int64  `json:"block_number,omitempty"`
	Timestamp       *int64  `json:"timestamp,omitempty"`
	Datetime        *string `json:"datetime,omitempty"`
	MarketData      Meta    `json:"market_data,omitempty"` // 上游行情块，原样透传
}
