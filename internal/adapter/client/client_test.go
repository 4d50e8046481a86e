package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"token-api/internal/adapter/config"
	"token-api/internal/adapter/model"

	"go.uber.org/zap"
)

const testContract = "0x15272209c6996e7dfa88c7463b899f4754794444"

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	c := New(config.TokenAPIConfig{ProxyURL: server.URL, Timeout: 5}, zap.NewNop())
	return c, server
}

// 必填参数缺失时直接返回 400，不发任何网络请求
func TestValidation_NoNetworkCall(t *testing.T) {
	hit := false
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer server.Close()

	ctx := context.Background()

	res := c.TokenDetails(ctx, "", model.TokenDetailsParams{})
	if res.Error == nil || res.Error.Status != 400 {
		t.Fatalf("expected 400 validation error, got %+v", res)
	}
	if res.Data != nil {
		t.Error("validation error must not carry data")
	}

	swaps := c.Swaps(ctx, model.SwapsParams{})
	if swaps.Error == nil || swaps.Error.Status != 400 {
		t.Fatalf("expected 400 for missing network_id, got %+v", swaps)
	}

	bad := c.TokenBalances(ctx, "not-an-address", model.BalancesParams{})
	if bad.Error == nil || bad.Error.Status != 400 {
		t.Fatalf("expected 400 for malformed address, got %+v", bad)
	}

	if hit {
		t.Error("validation failures must not reach the network")
	}
}

// 非 2xx：结构化 message 提取，状态码照搬上游
func TestUpstreamError_StructuredMessage(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"token not found"}`))
	}))
	defer server.Close()

	res := c.TokenDetails(context.Background(), testContract, model.TokenDetailsParams{})
	if res.Error == nil {
		t.Fatal("expected error result")
	}
	if res.Error.Status != 404 {
		t.Errorf("expected status 404, got %d", res.Error.Status)
	}
	if res.Error.Message != "token not found" {
		t.Errorf("expected upstream message, got %q", res.Error.Message)
	}
}

// 非 JSON 错误体：截断后拼进 message
func TestUpstreamError_TextBodyTruncated(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(strings.Repeat("x", 1000)))
	}))
	defer server.Close()

	res := c.TokenHolders(context.Background(), testContract, model.HoldersParams{})
	if res.Error == nil || res.Error.Status != 502 {
		t.Fatalf("expected 502, got %+v", res)
	}
	if len(res.Error.Message) > maxErrorBody+64 {
		t.Errorf("error message not truncated: %d chars", len(res.Error.Message))
	}
}

// 传输失败归为 500，不向上抛异常
func TestTransportError(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // 直接关掉，模拟网络失败

	res := c.TokenBalances(context.Background(), testContract, model.BalancesParams{})
	if res.Error == nil || res.Error.Status != 500 {
		t.Fatalf("expected 500 transport error, got %+v", res)
	}
}

func TestMalformedJSON(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"holders": [truncated`))
	}))
	defer server.Close()

	res := c.TokenHolders(context.Background(), testContract, model.HoldersParams{})
	if res.Error == nil || res.Error.Status != 500 {
		t.Fatalf("expected 500 parse error, got %+v", res)
	}
}

// 形态不认识：软失败，照样走统一信封
func TestUnrecognizedShape(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`"unexpected"`))
	}))
	defer server.Close()

	res := c.TokenHolders(context.Background(), testContract, model.HoldersParams{})
	if res.Error == nil || res.Error.Status != 500 {
		t.Fatalf("expected 500 for unrecognized shape, got %+v", res)
	}
}

// 成功路径端到端：path 参数、查询参数、归一化和分页透传
func TestTokenHolders_EndToEnd(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("path"); got != "holders/evm/"+testContract {
			t.Errorf("unexpected path param: %s", got)
		}
		if got := r.URL.Query().Get("page_size"); got != "2" {
			t.Errorf("unexpected page_size: %s", got)
		}
		w.Write([]byte(`{
			"holders": [
				{"address":"0xA","balance":"100"},
				{"address":"0xB","balance":"50","percent":0.1}
			],
			"pagination": {"page":1,"page_size":2,"total_pages":5}
		}`))
	}))
	defer server.Close()

	res := c.TokenHolders(context.Background(), testContract, model.HoldersParams{Page: 1, PageSize: 2})
	if res.Error != nil {
		t.Fatalf("unexpected error: %+v", res.Error)
	}
	if res.Data == nil {
		t.Fatal("expected data")
	}
	if len(res.Data.Holders) != 2 {
		t.Fatalf("expected 2 holders, got %d", len(res.Data.Holders))
	}
	if res.Data.Holders[1].Percent == nil || *res.Data.Holders[1].Percent != 0.1 {
		t.Errorf("expected second holder percent 0.1, got %+v", res.Data.Holders[1].Percent)
	}
	if _, ok := res.Data.Meta["pagination"]; !ok {
		t.Error("expected pagination passed through")
	}
}

// K 线端点必须下发小写地址
func TestContractOHLC_LowercasesAddress(t *testing.T) {
	upper := "0x15272209C6996E7DFA88C7463B899F4754794444"
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("path"); got != "ohlc/prices/evm/"+strings.ToLower(upper) {
			t.Errorf("expected lowercased path, got %s", got)
		}
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	res := c.ContractOHLC(context.Background(), upper, model.ContractOHLCParams{Interval: model.Interval1d})
	if res.Error != nil {
		t.Fatalf("unexpected error: %+v", res.Error)
	}
}

// 余额端点保持调用方传入的大小写
func TestTokenBalances_PreservesAddressCase(t *testing.T) {
	mixed := "0x15272209C6996e7dfa88C7463b899f4754794444"
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("path"); got != "balances/evm/"+mixed {
			t.Errorf("expected case preserved, got %s", got)
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	res := c.TokenBalances(context.Background(), mixed, model.BalancesParams{})
	if res.Error != nil {
		t.Fatalf("unexpected error: %+v", res.Error)
	}
	if res.Data == nil || len(res.Data.Balances) != 0 {
		t.Errorf("expected empty balances, got %+v", res.Data)
	}
}

// 所有分支都只能填充 data/error 其中一个
func TestResultExclusivity(t *testing.T) {
	c, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	ctx := context.Background()

	ok := c.Pools(ctx, model.PoolsParams{})
	if ok.Error != nil && ok.Data != nil {
		t.Error("result must never carry both data and error")
	}
	if ok.Error == nil && ok.Data == nil {
		t.Error("successful list fetch must carry data")
	}

	bad := c.Swaps(ctx, model.SwapsParams{})
	if bad.Error != nil && bad.Data != nil {
		t.Error("result must never carry both data and error")
	}
}
