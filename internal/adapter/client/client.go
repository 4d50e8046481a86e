package client

import (
	"context"
	"strconv"
	"time"

	"token-api/internal/adapter/config"
	"token-api/internal/adapter/model"
	"token-api/internal/adapter/monitor"
	"token-api/internal/adapter/normalize"
	"token-api/internal/adapter/request"
	"token-api/pkg/httpclient"
	"token-api/pkg/logger"

	"go.uber.org/zap"
)

// Client 按资源拉取上游数据并归一化成规范记录。
// 每次调用独立构建请求、独立解析响应，没有共享可变状态，可以并发使用。
type Client struct {
	builder *request.Builder
	http    *httpclient.HTTPClient
	logger  *zap.Logger
}

func New(cfg config.TokenAPIConfig, log *zap.Logger) *Client {
	// 创建HTTP客户端配置。重试/限流/缓存策略归调用方和代理，这一层不做
	httpCfg := httpclient.HTTPClientConfig{
		Timeout:   time.Duration(cfg.Timeout) * time.Second,
		UserAgent: cfg.UserAgent,
	}

	return &Client{
		builder: request.NewBuilder(cfg.ProxyURL),
		http:    httpclient.NewHTTPClient(httpCfg, log),
		logger:  log,
	}
}

// fetch 所有资源共用的四步契约：校验在各资源方法里，
// 这里负责 传输 → 失败分类 → 解析 → 归一化，永远返回统一信封，不抛错。
func fetch[T any](c *Client, ctx context.Context, resource, url string, norm func(any) (*T, error)) model.Result[T] {
	ctx, span := logger.StartSpan(ctx, "token-api", "fetch."+resource)
	defer span.End()

	start := time.Now()
	body, status, err := c.http.GetBytes(ctx, url, nil, nil)
	monitor.FetchDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())

	if err != nil {
		monitor.FetchRequestsTotal.WithLabelValues(resource, "transport_error").Inc()
		return model.Err[T](500, "request failed: %v", err)
	}

	monitor.UpstreamStatusTotal.WithLabelValues(resource, strconv.Itoa(status)).Inc()
	if status < 200 || status >= 300 {
		monitor.FetchRequestsTotal.WithLabelValues(resource, "upstream_error").Inc()
		return model.Err[T](status, "%s", upstreamMessage(body, status))
	}

	decoded, err := normalize.Decode(body)
	if err != nil {
		monitor.FetchRequestsTotal.WithLabelValues(resource, "parse_error").Inc()
		c.logger.Warn("Response body is not valid JSON",
			zap.String("resource", resource), zap.Error(err))
		return model.Err[T](500, "invalid JSON response: %v", err)
	}

	data, err := norm(decoded)
	if err != nil {
		monitor.FetchRequestsTotal.WithLabelValues(resource, "ambiguous_shape").Inc()
		c.logger.Warn("Unrecognized response shape", zap.String("resource", resource))
		return model.Err[T](500, "unrecognized response shape for %s", resource)
	}

	monitor.FetchRequestsTotal.WithLabelValues(resource, "ok").Inc()
	return model.Ok(data)
}

// TokenBalances 查询钱包的 token 余额
func (c *Client) TokenBalances(ctx context.Context, address string, params model.BalancesParams) model.Result[model.TokenBalancesPage] {
	if address == "" {
		return model.Err[model.TokenBalancesPage](400, "wallet address is required")
	}
	if !request.IsValidAddress(address) {
		return model.Err[model.TokenBalancesPage](400, "invalid wallet address: %s", address)
	}

	url := c.builder.Build(request.PathBalances, request.EnsureHexPrefix(address), params.Query())
	return fetch(c, ctx, "balances", url, func(body any) (*model.TokenBalancesPage, error) {
		return normalize.TokenBalances(body, params.NetworkID)
	})
}

// TokenDetails 查询 token 合约基础信息
func (c *Client) TokenDetails(ctx context.Context, contract string, params model.TokenDetailsParams) model.Result[model.TokenDetails] {
	if contract == "" {
		return model.Err[model.TokenDetails](400, "contract address is required")
	}
	if !request.IsValidAddress(contract) {
		return model.Err[model.TokenDetails](400, "invalid contract address: %s", contract)
	}

	contract = request.EnsureHexPrefix(contract)
	url := c.builder.Build(request.PathTokenDetails, contract, params.Query())
	return fetch(c, ctx, "token_details", url, func(body any) (*model.TokenDetails, error) {
		return normalize.TokenDetails(body, contract)
	})
}

// TokenTransfers 查询转账记录，全部参数都是过滤条件，没有必填主标识
func (c *Client) TokenTransfers(ctx context.Context, params model.TransfersParams) model.Result[model.TransfersPage] {
	url := c.builder.Build(request.PathTransfers, "", params.Query())
	return fetch(c, ctx, "transfers", url, func(body any) (*model.TransfersPage, error) {
		return normalize.TokenTransfers(body, params.NetworkID)
	})
}

// TokenMetadata 查询 token 快照（含可选行情块）
func (c *Client) TokenMetadata(ctx context.Context, contract string, params model.MetadataParams) model.Result[model.TokenMetadata] {
	if contract == "" {
		return model.Err[model.TokenMetadata](400, "contract address is required")
	}
	if !request.IsValidAddress(contract) {
		return model.Err[model.TokenMetadata](400, "invalid contract address: %s", contract)
	}

	contract = request.EnsureHexPrefix(contract)
	url := c.builder.Build(request.PathTokenMetadata, contract, params.Query())
	return fetch(c, ctx, "token_metadata", url, func(body any) (*model.TokenMetadata, error) {
		return normalize.TokenMetadata(body, contract)
	})
}

// TokenHolders 查询 token 持有者
func (c *Client) TokenHolders(ctx context.Context, contract string, params model.HoldersParams) model.Result[model.HoldersPage] {
	if contract == "" {
		return model.Err[model.HoldersPage](400, "contract address is required")
	}
	if !request.IsValidAddress(contract) {
		return model.Err[model.HoldersPage](400, "invalid contract address: %s", contract)
	}

	url := c.builder.Build(request.PathHolders, request.EnsureHexPrefix(contract), params.Query())
	return fetch(c, ctx, "holders", url, normalize.TokenHolders)
}

// Pools 查询流动性池
func (c *Client) Pools(ctx context.Context, params model.PoolsParams) model.Result[model.PoolsPage] {
	url := c.builder.Build(request.PathPools, "", params.Query())
	return fetch(c, ctx, "pools", url, func(body any) (*model.PoolsPage, error) {
		return normalize.Pools(body, params.NetworkID)
	})
}

// Swaps 查询兑换记录，network_id 必填
func (c *Client) Swaps(ctx context.Context, params model.SwapsParams) model.Result[model.SwapsPage] {
	if params.NetworkID == "" {
		return model.Err[model.SwapsPage](400, "network_id is required")
	}

	url := c.builder.Build(request.PathSwaps, "", params.Query())
	return fetch(c, ctx, "swaps", url, func(body any) (*model.SwapsPage, error) {
		return normalize.Swaps(body, params.NetworkID, params.Pool)
	})
}

// ContractOHLC 查询合约 K 线。这个端点要求小写地址。
func (c *Client) ContractOHLC(ctx context.Context, contract string, params model.ContractOHLCParams) model.Result[model.OHLCSeries] {
	if contract == "" {
		return model.Err[model.OHLCSeries](400, "contract address is required")
	}
	if !request.IsValidAddress(contract) {
		return model.Err[model.OHLCSeries](400, "invalid contract address: %s", contract)
	}

	contract = request.OHLCAddress(contract)
	url := c.builder.Build(request.PathContractOHLC, contract, params.Query())
	return fetch(c, ctx, "ohlc_contract", url, func(body any) (*model.OHLCSeries, error) {
		return normalize.ContractOHLC(body, contract)
	})
}

// PoolOHLC 查询池 K 线。这个端点要求小写地址。
func (c *Client) PoolOHLC(ctx context.Context, pool string, params model.PoolOHLCParams) model.Result[model.PoolOHLCSeries] {
	if pool == "" {
		return model.Err[model.PoolOHLCSeries](400, "pool address is required")
	}
	if !request.IsValidAddress(pool) {
		return model.Err[model.PoolOHLCSeries](400, "invalid pool address: %s", pool)
	}

	pool = request.OHLCAddress(pool)
	url := c.builder.Build(request.PathPoolOHLC, pool, params.Query())
	return fetch(c, ctx, "ohlc_pool", url, func(body any) (*model.PoolOHLCSeries, error) {
		return normalize.PoolOHLC(body, pool)
	})
}

// HistoricalBalances 查询钱包历史余额
func (c *Client) HistoricalBalances(ctx context.Context, address string, params model.HistoricalBalancesParams) model.Result[model.BalanceHistoryPage] {
	if address == "" {
		return model.Err[model.BalanceHistoryPage](400, "wallet address is required")
	}
	if !request.IsValidAddress(address) {
		return model.Err[model.BalanceHistoryPage](400, "invalid wallet address: %s", address)
	}

	url := c.builder.Build(request.PathHistoricalBalances, request.EnsureHexPrefix(address), params.Query())
	return fetch(c, ctx, "historical_balances", url, func(body any) (*model.BalanceHistoryPage, error) {
		return normalize.HistoricalBalances(body, params.Contract)
	})
}
