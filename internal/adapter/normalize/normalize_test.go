package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	v, err := Decode([]byte(raw))
	require.NoError(t, err)
	return v
}

// 同样的内容装在三种已知信封里，归一化结果必须一致
func TestTokenBalances_EnvelopeShapes(t *testing.T) {
	item := `{"contract_address":"0xAbC0000000000000000000000000000000000001","amount":"1000","symbol":"TST","decimals":18}`

	shapes := map[string]string{
		"bare_array":   `[` + item + `]`,
		"data_array":   `{"data":[` + item + `]}`,
		"resource_key": `{"balances":[` + item + `]}`,
	}

	for name, raw := range shapes {
		t.Run(name, func(t *testing.T) {
			page, err := TokenBalances(decode(t, raw), "mainnet")
			require.NoError(t, err)
			require.Len(t, page.Balances, 1)

			b := page.Balances[0]
			require.Equal(t, "0xAbC0000000000000000000000000000000000001", b.ContractAddress)
			require.Equal(t, "1000", b.Amount)
			require.Equal(t, "TST", *b.Symbol)
			require.Equal(t, int32(18), *b.Decimals)
			require.Equal(t, "mainnet", b.NetworkID)
		})
	}
}

// 超过 2^53 的数量必须原文保留，不管上游给的是字符串还是数字
func TestTokenBalances_LargeAmountPreserved(t *testing.T) {
	const big = "123456789012345678901234567890"

	asString := `{"balances":[{"contract":"0x01","amount":"` + big + `"}]}`
	asNumber := `{"balances":[{"contract":"0x01","amount":` + big + `}]}`

	for name, raw := range map[string]string{"string": asString, "number": asNumber} {
		t.Run(name, func(t *testing.T) {
			page, err := TokenBalances(decode(t, raw), "mainnet")
			require.NoError(t, err)
			require.Len(t, page.Balances, 1)
			require.Equal(t, big, page.Balances[0].Amount)
		})
	}
}

// 只有原始数量和精度时换算出可读余额
func TestTokenBalances_ValueDerived(t *testing.T) {
	raw := `{"balances":[{"contract":"0x01","amount":"1500000000000000000","decimals":18}]}`

	page, err := TokenBalances(decode(t, raw), "mainnet")
	require.NoError(t, err)
	require.Len(t, page.Balances, 1)
	require.NotNil(t, page.Balances[0].Value)
	require.Equal(t, "1.5", *page.Balances[0].Value)
}

func TestTokenBalances_UnrecognizedShape(t *testing.T) {
	for _, raw := range []string{`"oops"`, `42`, `{"unexpected":{"nested":1}}`} {
		_, err := TokenBalances(decode(t, raw), "mainnet")
		require.ErrorIs(t, err, ErrUnrecognizedShape)
	}
}

// spec 场景：holders + pagination 原样透传
func TestTokenHolders_EndToEnd(t *testing.T) {
	raw := `{
		"holders": [
			{"address":"0xA","balance":"100"},
			{"address":"0xB","balance":"50","percent":0.1}
		],
		"pagination": {"page":1,"page_size":2,"total_pages":5}
	}`

	page, err := TokenHolders(decode(t, raw))
	require.NoError(t, err)
	require.Len(t, page.Holders, 2)

	require.Equal(t, "0xA", page.Holders[0].Address)
	require.Equal(t, "100", page.Holders[0].Balance)
	require.Nil(t, page.Holders[0].Percent)

	require.Equal(t, "0xB", page.Holders[1].Address)
	require.Equal(t, "50", page.Holders[1].Balance)
	require.NotNil(t, page.Holders[1].Percent)
	require.Equal(t, 0.1, *page.Holders[1].Percent)

	pagination, ok := page.Meta["pagination"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, json.Number("5"), pagination["total_pages"])
}

// 单条坏记录只丢自己，列表整体不失败
func TestTokenTransfers_MalformedElementDropped(t *testing.T) {
	raw := `{"transfers":[
		{"block_num":1,"timestamp":1700000000,"contract":"0x01","from":"0xA","to":"0xB","amount":"10","transaction_id":"0xt1"},
		{"block_num":2,"timestamp":1700000100,"contract":"0x01","from":"0xA","to":"0xB","transaction_id":"0xt2"},
		{"block_num":3,"timestamp":1700000200,"contract":"0x01","from":"0xA","to":"0xB","amount":"30","transaction_id":"0xt3"}
	]}`

	page, err := TokenTransfers(decode(t, raw), "mainnet")
	require.NoError(t, err)
	require.Len(t, page.Transfers, 2)
	require.Equal(t, "0xt1", page.Transfers[0].TransactionID)
	require.Equal(t, "0xt3", page.Transfers[1].TransactionID)
}

// 字段名别名：block_number/tx_hash/datetime 这一代的命名也要认
func TestTokenTransfers_AlternateFieldNames(t *testing.T) {
	raw := `{"data":[{
		"block_number":123,
		"datetime":"2024-01-01T00:00:00Z",
		"contract_address":"0x01",
		"from_address":"0xA",
		"to_address":"0xB",
		"value":"99",
		"tx_hash":"0xt1"
	}]}`

	page, err := TokenTransfers(decode(t, raw), "mainnet")
	require.NoError(t, err)
	require.Len(t, page.Transfers, 1)

	tr := page.Transfers[0]
	require.Equal(t, int64(123), tr.BlockNum)
	require.Equal(t, int64(1704067200), tr.Timestamp)
	require.Equal(t, "2024-01-01T00:00:00Z", tr.Datetime)
	require.Equal(t, "0x01", tr.Contract)
	require.Equal(t, "0xA", tr.From)
	require.Equal(t, "0xB", tr.To)
	require.Equal(t, "99", tr.Amount)
	require.Equal(t, "0xt1", tr.TransactionID)
}

// 只有 timestamp 时推导 datetime，反向解析要能回到同一个时间戳
func TestTimeFields_RoundTrip(t *testing.T) {
	fromTS := map[string]any{"timestamp": json.Number("1700000000")}
	ts, dt, ok := timeFields(fromTS)
	require.True(t, ok)
	require.Equal(t, int64(1700000000), ts)

	back, ok := parseDatetime(dt)
	require.True(t, ok)
	require.Equal(t, ts, back)

	fromDT := map[string]any{"datetime": "2023-11-14T22:13:20Z"}
	ts2, dt2, ok := timeFields(fromDT)
	require.True(t, ok)
	require.Equal(t, int64(1700000000), ts2)
	require.Equal(t, "2023-11-14T22:13:20Z", dt2)
}

// 毫秒级时间戳自动降到秒级
func TestTimestamp_MillisecondsScaled(t *testing.T) {
	m := map[string]any{"timestamp": json.Number("1700000000123")}
	ts, ok := timestampOf(m)
	require.True(t, ok)
	require.Equal(t, int64(1700000000), ts)
}

// spec 场景：新形态的合约 K 线点，timestamp 从 datetime 推导
func TestContractOHLC_NewShape(t *testing.T) {
	raw := `{"data":[{"datetime":"2024-01-01T00:00:00Z","open":1,"high":2,"low":0.5,"close":1.5,"volume":1000}]}`

	series, err := ContractOHLC(decode(t, raw), "0xabc")
	require.NoError(t, err)
	require.Equal(t, "0xabc", series.Contract)
	require.Len(t, series.Points, 1)

	p := series.Points[0]
	require.Equal(t, int64(1704067200), p.Timestamp)
	require.Equal(t, "2024-01-01T00:00:00Z", p.Datetime)
	require.Equal(t, 1.0, p.Open)
	require.Equal(t, 2.0, p.High)
	require.Equal(t, 0.5, p.Low)
	require.Equal(t, 1.5, p.Close)
	require.Equal(t, 1000.0, p.Volume)
}

// 旧形态：ohlc key + 数字时间戳
func TestContractOHLC_LegacyShape(t *testing.T) {
	raw := `{"ohlc":[{"timestamp":1704067200,"open":1,"high":2,"low":0.5,"close":1.5}]}`

	series, err := ContractOHLC(decode(t, raw), "0xabc")
	require.NoError(t, err)
	require.Len(t, series.Points, 1)
	require.Equal(t, "2024-01-01T00:00:00Z", series.Points[0].Datetime)
	require.Equal(t, 0.0, series.Points[0].Volume)
}

func TestPoolOHLC_VolumeUSD(t *testing.T) {
	raw := `{"ohlc":[{"timestamp":1704067200,"open":1,"high":2,"low":0.5,"close":1.5,"volume":10,"volume_usd":12.5}]}`

	series, err := PoolOHLC(decode(t, raw), "0xpool")
	require.NoError(t, err)
	require.Equal(t, "0xpool", series.Pool)
	require.Len(t, series.Points, 1)
	require.NotNil(t, series.Points[0].VolumeUSD)
	require.Equal(t, 12.5, *series.Points[0].VolumeUSD)
}

// 单体资源的三种信封 + 身份回填
func TestTokenDetails_Shapes(t *testing.T) {
	shapes := map[string]string{
		"bare_object": `{"address":"0x01","name":"Test","symbol":"TST","decimals":18}`,
		"data_object": `{"data":{"address":"0x01","name":"Test","symbol":"TST","decimals":18}}`,
		"data_array":  `{"data":[{"address":"0x01","name":"Test","symbol":"TST","decimals":18}]}`,
	}

	for name, raw := range shapes {
		t.Run(name, func(t *testing.T) {
			d, err := TokenDetails(decode(t, raw), "0x01")
			require.NoError(t, err)
			require.NotNil(t, d)
			require.Equal(t, "0x01", d.Address)
			require.Equal(t, "Test", *d.Name)
		})
	}
}

func TestTokenDetails_EmptyData(t *testing.T) {
	d, err := TokenDetails(decode(t, `{"data":[]}`), "0x01")
	require.NoError(t, err)
	require.Nil(t, d)
}

func TestTokenDetails_IdentityBackfill(t *testing.T) {
	d, err := TokenDetails(decode(t, `{"data":[{"name":"NoAddr"}]}`), "0xFEED")
	require.NoError(t, err)
	require.NotNil(t, d)
	require.Equal(t, "0xFEED", d.Address)
}

func TestTokenMetadata_MarketDataPassthrough(t *testing.T) {
	raw := `{"data":[{
		"contract_address":"0x01",
		"total_supply":"340282366920938463463374607431768211455",
		"block_num":500,
		"timestamp":1704067200,
		"market_data":{"price_usd":1.23,"market_cap":456}
	}]}`

	md, err := TokenMetadata(decode(t, raw), "0x01")
	require.NoError(t, err)
	require.NotNil(t, md)
	require.Equal(t, "340282366920938463463374607431768211455", *md.TotalSupply)
	require.Equal(t, int64(500), *md.BlockNumber)
	require.Equal(t, int64(1704067200), *md.Timestamp)
	require.Equal(t, "2024-01-01T00:00:00Z", *md.Datetime)
	require.Equal(t, json.Number("456"), md.MarketData["market_cap"])
}

// token0/token1 既可能是对象也可能是裸地址字符串
func TestPools_TokenShapes(t *testing.T) {
	raw := `{"pools":[
		{"pool":"0xp1","token0":{"address":"0xa","symbol":"A","decimals":18},"token1":"0xb","fee":3000,"protocol":"uniswap_v3"},
		{"address":"0xp2","token0":"0xc","token1":"0xd"}
	]}`

	page, err := Pools(decode(t, raw), "mainnet")
	require.NoError(t, err)
	require.Len(t, page.Pools, 2)

	p1 := page.Pools[0]
	require.Equal(t, "0xp1", p1.Pool)
	require.Equal(t, "0xa", p1.Token0.Address)
	require.Equal(t, "A", *p1.Token0.Symbol)
	require.Equal(t, "0xb", p1.Token1.Address)
	require.Equal(t, int64(3000), *p1.Fee)

	p2 := page.Pools[1]
	require.Equal(t, "0xp2", p2.Pool)
	require.Equal(t, "mainnet", p2.NetworkID)
}

func TestSwaps_PoolBackfill(t *testing.T) {
	raw := `{"swaps":[{
		"transaction_id":"0xt1",
		"sender":"0xA","recipient":"0xB",
		"amount0":"-100","amount1":"200",
		"timestamp":1704067200
	}]}`

	page, err := Swaps(decode(t, raw), "mainnet", "0xPOOL")
	require.NoError(t, err)
	require.Len(t, page.Swaps, 1)

	s := page.Swaps[0]
	require.Equal(t, "0xPOOL", s.Pool)
	require.Equal(t, "-100", s.Amount0)
	require.Equal(t, "200", s.Amount1)
	require.Equal(t, "mainnet", s.NetworkID)
}

func TestHistoricalBalances_GroupedAndFlat(t *testing.T) {
	grouped := `{"data":[{
		"contract_address":"0x01","decimals":18,
		"balances":[
			{"timestamp":1704067200,"amount":"100"},
			{"datetime":"2024-01-02T00:00:00Z","amount":"90"}
		]
	}]}`

	page, err := HistoricalBalances(decode(t, grouped), "")
	require.NoError(t, err)
	require.Len(t, page.History, 1)
	require.Equal(t, "0x01", page.History[0].ContractAddress)
	require.Len(t, page.History[0].Balances, 2)
	require.Equal(t, "2024-01-02T00:00:00Z", page.History[0].Balances[1].Datetime)

	flat := `{"data":[
		{"timestamp":1704067200,"amount":"100"},
		{"timestamp":1704153600,"amount":"90"}
	]}`

	page, err = HistoricalBalances(decode(t, flat), "0xTOKEN")
	require.NoError(t, err)
	require.Len(t, page.History, 1)
	require.Equal(t, "0xTOKEN", page.History[0].ContractAddress)
	require.Len(t, page.History[0].Balances, 2)
}

func TestMetaOf_Passthrough(t *testing.T) {
	raw := `{"data":[],"page":2,"page_size":10,"total_results":55,"statistics":{"elapsed":0.01}}`

	page, err := TokenHolders(decode(t, raw))
	require.NoError(t, err)
	require.Empty(t, page.Holders)
	require.Equal(t, json.Number("2"), page.Meta["page"])
	require.Equal(t, json.Number("10"), page.Meta["page_size"])
	require.Equal(t, json.Number("55"), page.Meta["total_results"])
	require.Contains(t, page.Meta, "statistics")
}
