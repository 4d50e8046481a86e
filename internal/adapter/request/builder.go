package request

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultProxyURL 代理端点默认地址，代理负责把 path 参数转发给上游 API
const DefaultProxyURL = "/api/token-proxy"

// 上游资源路径模板，%s 处填主标识（钱包/合约/池地址）
const (
	PathBalances           = "balances/evm/%s"
	PathTokenDetails       = "tokens/evm/%s"
	PathTransfers          = "transfers/evm"
	PathTokenMetadata      = "tokens/evm/%s"
	PathHolders            = "holders/evm/%s"
	PathPools              = "pools/evm"
	PathSwaps              = "swaps/evm"
	PathContractOHLC       = "ohlc/prices/evm/%s"
	PathPoolOHLC           = "ohlc/pools/evm/%s"
	PathHistoricalBalances = "historical/balances/evm/%s"
)

// Builder 把 (路径模板, 主标识, 查询参数) 拼成发给代理端点的 URL，纯函数，无 I/O
type Builder struct {
	baseURL string
}

func NewBuilder(baseURL string) *Builder {
	if baseURL == "" {
		baseURL = DefaultProxyURL
	}
	return &Builder{baseURL: baseURL}
}

// Build 生成完整请求 URL：path=<解析后的路径> 加上每个非空参数。
// url.Values.Encode 按 key 排序，输出是确定的。
func (b *Builder) Build(template, id string, params map[string]string) string {
	path := template
	if strings.Contains(template, "%s") {
		path = fmt.Sprintf(template, id)
	}

	v := url.Values{}
	v.Set("path", path)
	for key, val := range params {
		v.Set(key, val)
	}
	return b.baseURL + "?" + v.Encode()
}

// EnsureHexPrefix 补齐 0x 前缀，不改变大小写
func EnsureHexPrefix(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}
	if !strings.HasPrefix(addr, "0x") && !strings.HasPrefix(addr, "0X") {
		return "0x" + addr
	}
	return addr
}

// OHLCAddress K 线端点要求小写地址，其余端点保持调用方传入的大小写。
// 这个不一致来自上游 API 的要求，按资源保留。
func OHLCAddress(addr string) string {
	return strings.ToLower(EnsureHexPrefix(addr))
}

// IsValidAddress 校验是否是合法的 EVM 十六进制地址
func IsValidAddress(addr string) bool {
	return common.IsHexAddress(EnsureHexPrefix(addr))
}
