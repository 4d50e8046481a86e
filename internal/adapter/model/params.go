package model

import "strconv"

// Interval 合约 K 线端点接受的时间粒度
type Interval string

const (
	Interval1h Interval = "1h"
	Interval4h Interval = "4h"
	Interval1d Interval = "1d"
	Interval1w Interval = "1w"
)

// Resolution 池 K 线端点接受的时间粒度（和 Interval 不是一套命名，上游如此）
type Resolution string

const (
	Resolution5m  Resolution = "5m"
	Resolution15m Resolution = "15m"
	Resolution30m Resolution = "30m"
	Resolution1h  Resolution = "1h"
	Resolution4h  Resolution = "4h"
	Resolution1d  Resolution = "1d"
	Resolution1w  Resolution = "1w"
)

// query 收集非空参数；零值一律不下发，其他类型统一转成字符串
type query map[string]string

func (q query) setStr(key, val string) {
	if val != "" {
		q[key] = val
	}
}

func (q query) setInt(key string, val int) {
	if val != 0 {
		q[key] = strconv.Itoa(val)
	}
}

func (q query) setInt64(key string, val int64) {
	if val != 0 {
		q[key] = strconv.FormatInt(val, 10)
	}
}

func (q query) setBool(key string, val bool) {
	if val {
		q[key] = strconv.FormatBool(val)
	}
}

// BalancesParams 余额查询参数
type BalancesParams struct {
	NetworkID string
	Contract  string // 只看某个 token
	Page      int
	PageSize  int
}

func (p BalancesParams) Query() map[string]string {
	q := query{}
	q.setStr("network_id", p.NetworkID)
	q.setStr("contract", p.Contract)
	q.setInt("page", p.Page)
	q.setInt("page_size", p.PageSize)
	return q
}

// TokenDetailsParams token 基础信息查询参数
type TokenDetailsParams struct {
	NetworkID string
}

func (p TokenDetailsParams) Query() map[string]string {
	q := query{}
	q.setStr("network_id", p.NetworkID)
	return q
}

// TransfersParams 转账查询参数。
// Address 是"任一方向"过滤：同一个地址会同时作为 from 和 to 下发，
// 上游按交集处理，结果只包含该地址既是发送方又是接收方的转账。
// 这是沿用上游调用方的既有行为，语义待上游确认，不要在这里"修正"。
type TransfersParams struct {
	NetworkID     string
	Address       string
	From          string
	To            string
	Contract      string
	TxHash        string
	FromTimestamp int64
	ToTimestamp   int64
	Page          int
	PageSize      int
}

func (p TransfersParams) Query() map[string]string {
	q := query{}
	q.setStr("network_id", p.NetworkID)
	from, to := p.From, p.To
	if p.Address != "" {
		from, to = p.Address, p.Address
	}
	q.setStr("from", from)
	q.setStr("to", to)
	q.setStr("contract", p.Contract)
	q.setStr("tx_hash", p.TxHash)
	q.setInt64("from_timestamp", p.FromTimestamp)
	q.setInt64("to_timestamp", p.ToTimestamp)
	q.setInt("page", p.Page)
	q.setInt("page_size", p.PageSize)
	return q
}

// MetadataParams token 快照查询参数
type MetadataParams struct {
	NetworkID         string
	IncludeMarketData bool
}

func (p MetadataParams) Query() map[string]string {
	q := query{}
	q.setStr("network_id", p.NetworkID)
	q.setBool("include_market_data", p.IncludeMarketData)
	return q
}

// HoldersParams 持有者查询参数
type HoldersParams struct {
	NetworkID string
	OrderBy   string
	Page      int
	PageSize  int
}

func (p HoldersParams) Query() map[string]string {
	q := query{}
	q.setStr("network_id", p.NetworkID)
	q.setStr("order_by", p.OrderBy)
	q.setInt("page", p.Page)
	q.setInt("page_size", p.PageSize)
	return q
}

// PoolsParams 池查询参数
type PoolsParams struct {
	NetworkID string
	Pool      string
	Token     string
	Factory   string
	Protocol  string
	Page      int
	PageSize  int
}

func (p PoolsParams) Query() map[string]string {
	q := query{}
	q.setStr("network_id", p.NetworkID)
	q.setStr("pool", p.Pool)
	q.setStr("token", p.Token)
	q.setStr("factory", p.Factory)
	q.setStr("protocol", p.Protocol)
	q.setInt("page", p.Page)
	q.setInt("page_size", p.PageSize)
	return q
}

// SwapsParams 兑换查询参数，NetworkID 必填（在请求前校验）
type SwapsParams struct {
	NetworkID     string
	Pool          string
	Sender        string
	Recipient     string
	TxHash        string
	Protocol      string
	FromTimestamp int64
	ToTimestamp   int64
	Page          int
	PageSize      int
}

func (p SwapsParams) Query() map[string]string {
	q := query{}
	q.setStr("network_id", p.NetworkID)
	q.setStr("pool", p.Pool)
	q.setStr("sender", p.Sender)
	q.setStr("recipient", p.Recipient)
	q.setStr("tx_hash", p.TxHash)
	q.setStr("protocol", p.Protocol)
	q.setInt64("from_timestamp", p.FromTimestamp)
	q.setInt64("to_timestamp", p.ToTimestamp)
	q.setInt("page", p.Page)
	q.setInt("page_size", p.PageSize)
	return q
}

// ContractOHLCParams 合约 K 线查询参数。
// 上游这个端点收 startTime/endTime/interval，和其他端点的
// from_timestamp/to_timestamp/resolution 不是一套命名，按上游现状下发。
type ContractOHLCParams struct {
	NetworkID string
	StartTime int64
	EndTime   int64
	Interval  Interval
	Limit     int
}

func (p ContractOHLCParams) Query() map[string]string {
	q := query{}
	q.setStr("network_id", p.NetworkID)
	q.setInt64("startTime", p.StartTime)
	q.setInt64("endTime", p.EndTime)
	q.setStr("interval", string(p.Interval))
	q.setInt("limit", p.Limit)
	return q
}

// PoolOHLCParams 池 K 线查询参数
type PoolOHLCParams struct {
	NetworkID     string
	FromTimestamp int64
	ToTimestamp   int64
	Resolution    Resolution
	Page          int
	PageSize      int
}

func (p PoolOHLCParams) Query() map[string]string {
	q := query{}
	q.setStr("network_id", p.NetworkID)
	q.setInt64("from_timestamp", p.FromTimestamp)
	q.setInt64("to_timestamp", p.ToTimestamp)
	q.setStr("resolution", string(p.Resolution))
	q.setInt("page", p.Page)
	q.setInt("page_size", p.PageSize)
	return q
}

// HistoricalBalancesParams 历史余额查询参数
type HistoricalBalancesParams struct {
	NetworkID     string
	Contract      string
	FromTimestamp int64
	ToTimestamp   int64
	Resolution    Resolution
}

func (p HistoricalBalancesParams) Query() map[string]string {
	q := query{}
	q.setStr("network_id", p.NetworkID)
	q.setStr("contract", p.Contract)
	q.setInt64("from_timestamp", p.FromTimestamp)
	q.setInt64("to_timestamp", p.ToTimestamp)
	q.setStr("resolution", string(p.Resolution))
	return q
}
