package normalize

import (
	"token-api/internal/adapter/model"
	"token-api/internal/adapter/monitor"
)

// ContractOHLC 合约 K 线归一化。contract 是请求里的合约地址（已小写）。
func ContractOHLC(body any, contract string) (*model.OHLCSeries, error) {
	items, ok := listPayload(body, "ohlc")
	if !ok {
		monitor.NormalizeAmbiguousTotal.WithLabelValues("ohlc_contract").Inc()
		return nil, ErrUnrecognizedShape
	}

	series := &model.OHLCSeries{
		Contract: contract,
		Points:   make([]model.OHLCPoint, 0, len(items)),
		Meta:     metaOf(body),
	}
	for _, item := range items {
		m, ok := asMap(item)
		if !ok {
			monitor.NormalizeDroppedTotal.WithLabelValues("ohlc_contract").Inc()
			continue
		}
		p, ok := ohlcPoint(m)
		if !ok {
			monitor.NormalizeDroppedTotal.WithLabelValues("ohlc_contract").Inc()
			continue
		}
		series.Points = append(series.Points, p)
	}
	return series, nil
}

// PoolOHLC 池 K 线归一化。pool 是请求里的池地址（已小写）。
func PoolOHLC(body any, pool string) (*model.PoolOHLCSeries, error) {
	items, ok := listPayload(body, "ohlc")
	if !ok {
		monitor.NormalizeAmbiguousTotal.WithLabelValues("ohlc_pool").Inc()
		return nil, ErrUnrecognizedShape
	}

	series := &model.PoolOHLCSeries{
		Pool:   pool,
		Points: make([]model.PoolOHLCPoint, 0, len(items)),
		Meta:   metaOf(body),
	}
	for _, item := range items {
		m, ok := asMap(item)
		if !ok {
			monitor.NormalizeDroppedTotal.WithLabelValues("ohlc_pool").Inc()
			continue
		}
		p, ok := ohlcPoint(m)
		if !ok {
			monitor.NormalizeDroppedTotal.WithLabelValues("ohlc_pool").Inc()
			continue
		}
		pp := model.PoolOHLCPoint{
			Timestamp: p.Timestamp,
			Datetime:  p.Datetime,
			Open:      p.Open,
			High:      p.High,
			Low:       p.Low,
			Close:     p.Close,
			Volume:    p.Volume,
			VolumeUSD: f64Ptr(m, "volume_usd", "volumeUSD"),
		}
		series.Points = append(series.Points, pp)
	}
	return series, nil
}

// ohlcPoint 单个数据点。时间和四个价位是硬性要求，volume 缺省为 0
func ohlcPoint(m map[string]any) (model.OHLCPoint, bool) {
	ts, dt, ok := timeFields(m)
	if !ok {
		return model.OHLCPoint{}, false
	}
	open, ok := f64(m, "open", "o")
	if !ok {
		return model.OHLCPoint{}, false
	}
	high, ok := f64(m, "high", "h")
	if !ok {
		return model.OHLCPoint{}, false
	}
	low, ok := f64(m, "low", "l")
	if !ok {
		return model.OHLCPoint{}, false
	}
	close_, ok := f64(m, "close", "c")
	if !ok {
		return model.OHLCPoint{}, false
	}
	volume, _ := f64(m, "volume", "v", "volume_usd")

	return model.OHLCPoint{
		Timestamp: ts,
		Datetime:  dt,
		Open:      open,
		High:      high,
		Low:       low,
		Close:     close_,
		Volume:    volume,
	}, true
}
