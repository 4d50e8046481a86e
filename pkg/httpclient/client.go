package httpclient

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// HTTPClientConfig 配置参数
type HTTPClientConfig struct {
	Timeout    time.Duration // 请求超时时间
	RateLimit  int           // 每分钟请求次数，0 表示不限流（限流策略由调用方决定）
	MaxRetries int           // 最大重试次数，0 表示不重试
	UserAgent  string        // 可选 User-Agent
	XApiKey    string
}

// HTTPClient 是一个通用的 HTTP 客户端
type HTTPClient struct {
	client  *resty.Client
	logger  *zap.Logger
	limiter *rate.Limiter
}

// NewHTTPClient 创建一个新的 HTTP 客户端
func NewHTTPClient(cfg HTTPClientConfig, logger *zap.Logger) *HTTPClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		ratePerSecond := float64(cfg.RateLimit) / 60
		limiter = rate.NewLimiter(rate.Limit(ratePerSecond), 1)
	}

	// 创建 Resty 客户端
	restyClient := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.MaxRetries).
		AddRequestMiddleware(func(c *resty.Client, r *resty.Request) error {
			if limiter != nil {
				// 为限流器等待创建带超时的上下文
				limiterCtx, cancel := context.WithTimeout(r.Context(), cfg.Timeout)
				defer cancel()

				if err := limiter.Wait(limiterCtx); err != nil {
					logger.Warn("Rate limiter wait failed", zap.Error(err))
					return err
				}
			}
			if cfg.UserAgent != "" {
				r.SetHeader("User-Agent", cfg.UserAgent)
			}
			if cfg.XApiKey != "" {
				r.SetHeader("X-API-Key", cfg.XApiKey)
			}
			logger.Debug("Outgoing request", zap.String("url", r.URL))
			return nil
		}).
		AddResponseMiddleware(func(c *resty.Client, resp *resty.Response) error {
			if resp.StatusCode() >= 400 {
				logger.Warn("HTTP request failed",
					zap.Int("status", resp.StatusCode()),
					zap.String("url", resp.Request.URL),
				)
			}
			return nil
		})

	return &HTTPClient{
		client:  restyClient,
		logger:  logger,
		limiter: limiter,
	}
}

// Get 发起 GET 请求并将响应体反序列化到 out
func (c *HTTPClient) Get(ctx context.Context, url string, queryParams map[string]string, headers map[string]string, out interface{}) error {
	req := c.client.R().
		SetContext(ctx).
		SetQueryParams(queryParams).
		SetResult(out)

	if headers != nil {
		req.SetHeaders(headers)
	}

	resp, err := req.Get(url)

	if err != nil {
		c.logger.Error("HTTP GET request failed", zap.String("url", url), zap.Error(err))
		return err
	}

	if resp.StatusCode() >= 400 {
		return fmt.Errorf("non-2xx status code: %d", resp.StatusCode())
	}

	return nil
}

// GetBytes 发起 GET 请求并返回原始响应体和状态码。
// 非 2xx 不视为错误，由调用方根据状态码处理响应体。
func (c *HTTPClient) GetBytes(ctx context.Context, url string, queryParams map[string]string, headers map[string]string) ([]byte, int, error) {
	req := c.client.R().
		SetContext(ctx).
		SetQueryParams(queryParams)

	if headers != nil {
		req.SetHeaders(headers)
	}

	resp, err := req.Get(url)

	if err != nil {
		c.logger.Error("HTTP GET request failed", zap.String("url", url), zap.Error(err))
		return nil, 0, err
	}

	return resp.Bytes(), resp.StatusCode(), nil
}
