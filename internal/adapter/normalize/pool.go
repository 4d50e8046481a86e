package normalize

import (
	"token-api/internal/adapter/model"
	"token-api/internal/adapter/monitor"
)

// Pools 流动性池响应归一化
func Pools(body any, networkID string) (*model.PoolsPage, error) {
	items, ok := listPayload(body, "pools")
	if !ok {
		monitor.NormalizeAmbiguousTotal.WithLabelValues("pools").Inc()
		return nil, ErrUnrecognizedShape
	}

	page := &model.PoolsPage{
		Pools: make([]model.Pool, 0, len(items)),
		Meta:  metaOf(body),
	}
	for _, item := range items {
		m, ok := asMap(item)
		if !ok {
			monitor.NormalizeDroppedTotal.WithLabelValues("pools").Inc()
			continue
		}
		p, ok := pool(m, networkID)
		if !ok {
			monitor.NormalizeDroppedTotal.WithLabelValues("pools").Inc()
			continue
		}
		page.Pools = append(page.Pools, p)
	}
	return page, nil
}

// pool 单个池。池地址是硬性要求；token0/token1 既可能是对象也可能是裸地址
func pool(m map[string]any, networkID string) (model.Pool, bool) {
	address, ok := str(m, "pool", "pool_address", "address", "id")
	if !ok {
		return model.Pool{}, false
	}

	p := model.Pool{
		Pool:      normalizedAddr(address),
		Factory:   strPtr(m, "factory", "factory_address"),
		Fee:       i64Ptr(m, "fee"),
		Protocol:  strPtr(m, "protocol", "dex"),
		NetworkID: networkID,
	}
	if net, found := str(m, "network_id", "network"); found {
		p.NetworkID = net
	}
	if addr, symbol, decimals, found := poolToken(m["token0"]); found {
		p.Token0 = model.PoolToken{Address: normalizedAddr(addr), Symbol: symbol, Decimals: decimals}
	}
	if addr, symbol, decimals, found := poolToken(m["token1"]); found {
		p.Token1 = model.PoolToken{Address: normalizedAddr(addr), Symbol: symbol, Decimals: decimals}
	}
	return p, true
}
