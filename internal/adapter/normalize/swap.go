package normalize

import (
	"token-api/internal/adapter/model"
	"token-api/internal/adapter/monitor"
)

// Swaps 兑换响应归一化。pool 是请求参数里的池过滤，载荷缺失时回填。
func Swaps(body any, networkID, pool string) (*model.SwapsPage, error) {
	items, ok := listPayload(body, "swaps")
	if !ok {
		monitor.NormalizeAmbiguousTotal.WithLabelValues("swaps").Inc()
		return nil, ErrUnrecognizedShape
	}

	page := &model.SwapsPage{
		Swaps: make([]model.Swap, 0, len(items)),
		Meta:  metaOf(body),
	}
	for _, item := range items {
		m, ok := asMap(item)
		if !ok {
			monitor.NormalizeDroppedTotal.WithLabelValues("swaps").Inc()
			continue
		}
		s, ok := swap(m, networkID, pool)
		if !ok {
			monitor.NormalizeDroppedTotal.WithLabelValues("swaps").Inc()
			continue
		}
		page.Swaps = append(page.Swaps, s)
	}
	return page, nil
}

// swap 单笔兑换。交易哈希和两侧数量是硬性要求
func swap(m map[string]any, networkID, pool string) (model.Swap, bool) {
	txID, ok := str(m, "transaction_id", "tx_hash", "transaction_hash", "id")
	if !ok {
		return model.Swap{}, false
	}
	amount0, ok := decStr(m, "amount0", "token0_amount", "amount0_delta")
	if !ok {
		return model.Swap{}, false
	}
	amount1, ok := decStr(m, "amount1", "token1_amount", "amount1_delta")
	if !ok {
		return model.Swap{}, false
	}

	s := model.Swap{
		TransactionID: txID,
		Amount0:       amount0,
		Amount1:       amount1,
		Protocol:      strPtr(m, "protocol", "dex"),
		NetworkID:     networkID,
	}
	if addr, found := str(m, "pool", "pool_address"); found {
		s.Pool = normalizedAddr(addr)
	} else {
		s.Pool = normalizedAddr(pool)
	}
	s.Sender, _ = str(m, "sender", "from", "caller")
	s.Recipient, _ = str(m, "recipient", "to", "receiver")
	s.Sender = normalizedAddr(s.Sender)
	s.Recipient = normalizedAddr(s.Recipient)

	if net, found := str(m, "network_id", "network"); found {
		s.NetworkID = net
	}
	if addr, symbol, decimals, found := poolToken(m["token0"]); found {
		s.Token0 = &model.PoolToken{Address: normalizedAddr(addr), Symbol: symbol, Decimals: decimals}
	}
	if addr, symbol, decimals, found := poolToken(m["token1"]); found {
		s.Token1 = &model.PoolToken{Address: normalizedAddr(addr), Symbol: symbol, Decimals: decimals}
	}
	if ts, dt, found := timeFields(m); found {
		s.Timestamp = &ts
		s.Datetime = &dt
	}
	return s, true
}
