package model

// OHLCPoint 按合约查询的 K 线数据点
type OHLCPoint struct {
	Timestamp int64   `json:"timestamp"`
	Datetime  string  `json:"datetime"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// OHLCSeries 合约 K 线序列
type OHLCSeries struct {
	Contract string      `json:"contract"`
	Points   []OHLCPoint `json:"points"`
	Meta     Meta        `json:"meta,omitempty"`
}

// PoolOHLCPoint 按池查询的 K 线数据点
type PoolOHLCPoint struct {
	Timestamp int64    `json:"timestamp"`
	Datetime  string   `json:"datetime"`
	Open      float64  `json:"open"`
	High      float64  `json:"high"`
	Low       float64  `json:"low"`
	Close     float64  `json:"close"`
	Volume    float64  `json:"volume"`
	VolumeUSD *float64 `json:"volume_usd,omitempty"`
}

// PoolOHLCSeries 池 K 线序列
type PoolOHLCSeries struct {
	Pool   string          `json:"pool"`
	Points []PoolOHLCPoint `json:"points"`
	Meta   Meta            `json:"meta,omitempty"`
}
