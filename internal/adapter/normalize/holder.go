package normalize

import (
	"token-api/internal/adapter/model"
	"token-api/internal/adapter/monitor"
)

// TokenHolders 持有者响应归一化
func TokenHolders(body any) (*model.HoldersPage, error) {
	items, ok := listPayload(body, "holders")
	if !ok {
		monitor.NormalizeAmbiguousTotal.WithLabelValues("holders").Inc()
		return nil, ErrUnrecognizedShape
	}

	page := &model.HoldersPage{
		Holders: make([]model.TokenHolder, 0, len(items)),
		Meta:    metaOf(body),
	}
	for _, item := range items {
		m, ok := asMap(item)
		if !ok {
			monitor.NormalizeDroppedTotal.WithLabelValues("holders").Inc()
			continue
		}
		h, ok := tokenHolder(m)
		if !ok {
			monitor.NormalizeDroppedTotal.WithLabelValues("holders").Inc()
			continue
		}
		page.Holders = append(page.Holders, h)
	}
	return page, nil
}

// tokenHolder 单个持有者。address 和 balance 是硬性要求
func tokenHolder(m map[string]any) (model.TokenHolder, bool) {
	address, ok := str(m, "address", "owner_address", "holder", "wallet")
	if !ok {
		return model.TokenHolder{}, false
	}
	balance, ok := decStr(m, "balance", "amount")
	if !ok {
		return model.TokenHolder{}, false
	}

	h := model.TokenHolder{
		Address:          normalizedAddr(address),
		Balance:          balance,
		BalanceUSD:       f64Ptr(m, "balance_usd", "usd_value", "amount_usd"),
		LastUpdatedBlock: i64Ptr(m, "last_updated_block", "block_num", "block_number"),
		Percent:          f64Ptr(m, "percent", "percentage", "percentage_relative_to_total_supply"),
	}
	if ts, dt, found := timeFields(m); found {
		h.Timestamp = &ts
		h.Datetime = &dt
	}
	return h, true
}
