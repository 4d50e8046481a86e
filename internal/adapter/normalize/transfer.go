package normalize

import (
	"token-api/internal/adapter/model"
	"token-api/internal/adapter/monitor"
)

// TokenTransfers 转账响应归一化。单条记录坏了只丢那一条，整个列表不失败。
func TokenTransfers(body any, networkID string) (*model.TransfersPage, error) {
	items, ok := listPayload(body, "transfers")
	if !ok {
		monitor.NormalizeAmbiguousTotal.WithLabelValues("transfers").Inc()
		return nil, ErrUnrecognizedShape
	}

	page := &model.TransfersPage{
		Transfers: make([]model.TokenTransfer, 0, len(items)),
		Meta:      metaOf(body),
	}
	for _, item := range items {
		m, ok := asMap(item)
		if !ok {
			monitor.NormalizeDroppedTotal.WithLabelValues("transfers").Inc()
			continue
		}
		tr, ok := tokenTransfer(m, networkID)
		if !ok {
			monitor.NormalizeDroppedTotal.WithLabelValues("transfers").Inc()
			continue
		}
		page.Transfers = append(page.Transfers, tr)
	}
	return page, nil
}

// tokenTransfer 单条转账。amount、交易哈希和时间是硬性要求，缺了整条丢弃
func tokenTransfer(m map[string]any, networkID string) (model.TokenTransfer, bool) {
	amount, ok := decStr(m, "amount", "value", "quantity")
	if !ok {
		return model.TokenTransfer{}, false
	}
	txID, ok := str(m, "transaction_id", "tx_hash", "transaction_hash", "tx_id")
	if !ok {
		return model.TokenTransfer{}, false
	}
	ts, dt, ok := timeFields(m)
	if !ok {
		return model.TokenTransfer{}, false
	}

	blockNum, _ := i64(m, "block_num", "block_number")
	contract, _ := str(m, "contract", "contract_address", "token")
	from, _ := str(m, "from", "from_address", "sender")
	to, _ := str(m, "to", "to_address", "recipient", "receiver")

	tr := model.TokenTransfer{
		BlockNum:      blockNum,
		Timestamp:     ts,
		Datetime:      dt,
		Contract:      normalizedAddr(contract),
		From:          normalizedAddr(from),
		To:            normalizedAddr(to),
		Amount:        amount,
		TransactionID: txID,
		Symbol:        strPtr(m, "symbol", "token_symbol"),
		Decimals:      i32Ptr(m, "decimals"),
		NetworkID:     networkID,
	}
	if net, found := str(m, "network_id", "network"); found {
		tr.NetworkID = net
	}
	return tr, true
}
