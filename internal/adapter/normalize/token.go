package normalize

import (
	"token-api/internal/adapter/model"
	"token-api/internal/adapter/monitor"
)

// TokenDetails token 基础信息归一化（单体资源）。
// contract 是请求里的合约地址，载荷缺失时回填。
// 数组信封存在但为空时返回 (nil, nil)：没出错，但什么都没查到。
func TokenDetails(body any, contract string) (*model.TokenDetails, error) {
	m, empty, ok := objectPayload(body, "tokens")
	if !ok {
		monitor.NormalizeAmbiguousTotal.WithLabelValues("token_details").Inc()
		return nil, ErrUnrecognizedShape
	}
	if empty {
		return nil, nil
	}

	d := &model.TokenDetails{
		Name:     strPtr(m, "name", "token_name"),
		Symbol:   strPtr(m, "symbol", "token_symbol", "ticker"),
		Decimals: i32Ptr(m, "decimals"),
		Network:  strPtr(m, "network", "network_id"),
	}
	if addr, found := str(m, "address", "contract_address", "contract"); found {
		d.Address = normalizedAddr(addr)
	} else {
		d.Address = normalizedAddr(contract)
	}
	return d, nil
}

// TokenMetadata token 快照归一化（单体资源），行情块原样透传
func TokenMetadata(body any, contract string) (*model.TokenMetadata, error) {
	m, empty, ok := objectPayload(body, "tokens")
	if !ok {
		monitor.NormalizeAmbiguousTotal.WithLabelValues("token_metadata").Inc()
		return nil, ErrUnrecognizedShape
	}
	if empty {
		return nil, nil
	}

	md := &model.TokenMetadata{
		Name:        strPtr(m, "name", "token_name"),
		Symbol:      strPtr(m, "symbol", "token_symbol", "ticker"),
		Decimals:    i32Ptr(m, "decimals"),
		TotalSupply: decStrPtr(m, "total_supply", "totalSupply", "supply"),
		BlockNumber: i64Ptr(m, "block_number", "block_num"),
	}
	if addr, found := str(m, "contract_address", "contract", "address"); found {
		md.ContractAddress = normalizedAddr(addr)
	} else {
		md.ContractAddress = normalizedAddr(contract)
	}
	if ts, dt, found := timeFields(m); found {
		md.Timestamp = &ts
		md.Datetime = &dt
	}
	if raw, found := asMap(m["market_data"]); found {
		md.MarketData = model.Meta(raw)
	}
	return md, nil
}
