package normalize

import (
	"token-api/internal/adapter/model"
	"token-api/internal/adapter/monitor"
	"token-api/pkg/utils"
)

// TokenBalances 余额响应归一化。networkID 是请求参数里的网络，载荷缺失时回填。
func TokenBalances(body any, networkID string) (*model.TokenBalancesPage, error) {
	items, ok := listPayload(body, "balances")
	if !ok {
		monitor.NormalizeAmbiguousTotal.WithLabelValues("balances").Inc()
		return nil, ErrUnrecognizedShape
	}

	page := &model.TokenBalancesPage{
		Balances: make([]model.TokenBalance, 0, len(items)),
		Meta:     metaOf(body),
	}
	for _, item := range items {
		m, ok := asMap(item)
		if !ok {
			monitor.NormalizeDroppedTotal.WithLabelValues("balances").Inc()
			continue
		}
		b, ok := tokenBalance(m, networkID)
		if !ok {
			monitor.NormalizeDroppedTotal.WithLabelValues("balances").Inc()
			continue
		}
		page.Balances = append(page.Balances, b)
	}
	return page, nil
}

// tokenBalance 单条余额。contract 和 amount 缺一不可，其余字段缺了就留空
func tokenBalance(m map[string]any, networkID string) (model.TokenBalance, bool) {
	contract, ok := str(m, "contract_address", "contract", "address", "token")
	if !ok {
		return model.TokenBalance{}, false
	}
	amount, ok := decStr(m, "amount", "balance")
	if !ok {
		return model.TokenBalance{}, false
	}

	b := model.TokenBalance{
		ContractAddress: normalizedAddr(contract),
		Amount:          amount,
		Value:           decStrPtr(m, "value"),
		AmountUSD:       f64Ptr(m, "amount_usd", "usd_value", "value_usd"),
		Name:            strPtr(m, "name"),
		Symbol:          strPtr(m, "symbol"),
		Decimals:        i32Ptr(m, "decimals"),
		NetworkID:       networkID,
	}
	if net, ok := str(m, "network_id", "network"); ok {
		b.NetworkID = net
	}
	// 只有原始数量和精度时，换算出可读余额
	if b.Value == nil && b.Decimals != nil {
		if v, err := utils.FormatAmount(amount, *b.Decimals); err == nil {
			b.Value = &v
		}
	}
	return b, true
}

// HistoricalBalances 历史余额归一化。上游有两种形态：
// 按 token 分组（每个元素带 balances 数组），或直接给快照平铺列表
// （带 contract 过滤查询时）。后者归并成单条序列，contract 用请求里的回填。
func HistoricalBalances(body any, contract string) (*model.BalanceHistoryPage, error) {
	items, ok := listPayload(body, "history")
	if !ok {
		monitor.NormalizeAmbiguousTotal.WithLabelValues("historical_balances").Inc()
		return nil, ErrUnrecognizedShape
	}

	page := &model.BalanceHistoryPage{
		History: make([]model.TokenBalanceHistory, 0, len(items)),
		Meta:    metaOf(body),
	}

	var flat []model.HistoricalBalance
	for _, item := range items {
		m, ok := asMap(item)
		if !ok {
			monitor.NormalizeDroppedTotal.WithLabelValues("historical_balances").Inc()
			continue
		}

		if series, found := asList(m["balances"]); found {
			h := model.TokenBalanceHistory{
				Symbol:   strPtr(m, "symbol"),
				Decimals: i32Ptr(m, "decimals"),
				Balances: historicalSeries(series),
			}
			if addr, ok := str(m, "contract_address", "contract", "address", "token"); ok {
				h.ContractAddress = normalizedAddr(addr)
			} else {
				h.ContractAddress = normalizedAddr(contract)
			}
			page.History = append(page.History, h)
			continue
		}

		if snap, ok := historicalBalance(m); ok {
			flat = append(flat, snap)
		} else {
			monitor.NormalizeDroppedTotal.WithLabelValues("historical_balances").Inc()
		}
	}

	if len(flat) > 0 {
		page.History = append(page.History, model.TokenBalanceHistory{
			ContractAddress: normalizedAddr(contract),
			Balances:        flat,
		})
	}
	return page, nil
}

func historicalSeries(items []any) []model.HistoricalBalance {
	out := make([]model.HistoricalBalance, 0, len(items))
	for _, item := range items {
		m, ok := asMap(item)
		if !ok {
			monitor.NormalizeDroppedTotal.WithLabelValues("historical_balances").Inc()
			continue
		}
		snap, ok := historicalBalance(m)
		if !ok {
			monitor.NormalizeDroppedTotal.WithLabelValues("historical_balances").Inc()
			continue
		}
		out = append(out, snap)
	}
	return out
}

func historicalBalance(m map[string]any) (model.HistoricalBalance, bool) {
	amount, ok := decStr(m, "amount", "balance", "close") // 部分版本按 K 线口径返回收盘余额
	if !ok {
		return model.HistoricalBalance{}, false
	}
	ts, dt, ok := timeFields(m)
	if !ok {
		return model.HistoricalBalance{}, false
	}
	return model.HistoricalBalance{
		BlockNum:  i64Ptr(m, "block_num", "block_number"),
		Timestamp: ts,
		Datetime:  dt,
		Amount:    amount,
		AmountUSD: f64Ptr(m, "amount_usd", "usd_value", "value_usd"),
	}, true
}
