package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"token-api/internal/adapter/client"
	"token-api/internal/adapter/config"
	"token-api/internal/adapter/model"
	"token-api/internal/adapter/monitor"
	"token-api/pkg/logger"

	"github.com/bytedance/sonic"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// 一次性拉取任务：按资源名拉一个资源，或用 summary 并发拉一组

func main() {
	var (
		resource = flag.String("resource", "balances", "balances|details|transfers|metadata|holders|pools|swaps|ohlc-contract|ohlc-pool|history|summary")
		address  = flag.String("address", "", "钱包地址")
		contract = flag.String("contract", "", "token 合约地址")
		pool     = flag.String("pool", "", "池地址")
		network  = flag.String("network", "", "网络，空则用配置里的缺省网络")
	)
	flag.Parse()

	startTime := time.Now()
	// 初始化配置文件
	cfg := config.InitConfig()

	// 初始化 trace provider
	logger.InitTrace("token-api", "fetch")
	// 启动主 span
	ctx, span := logger.StartSpan(context.Background(), "main", "main")
	defer span.End()

	// 创建 root logger 并注入 trace 上下文
	rootLogger := logger.NewLogger("fetch")
	logger.SetLogLevel(cfg.Log.Level)
	tl := logger.WithTrace(ctx, rootLogger)

	// 启动配置热加载监听
	go config.WatchConfig(&cfg)

	// 指标暴露服务
	metrics := monitor.NewMetricsServer(cfg.Monitor)
	metrics.Run()
	defer metrics.Stop(ctx)

	if *network == "" {
		*network = cfg.TokenAPI.NetworkID
	}

	c := client.New(cfg.TokenAPI, tl)

	switch *resource {
	case "balances":
		dump(tl, c.TokenBalances(ctx, *address, model.BalancesParams{NetworkID: *network}))
	case "details":
		dump(tl, c.TokenDetails(ctx, *contract, model.TokenDetailsParams{NetworkID: *network}))
	case "transfers":
		dump(tl, c.TokenTransfers(ctx, model.TransfersParams{NetworkID: *network, Address: *address, Contract: *contract}))
	case "metadata":
		dump(tl, c.TokenMetadata(ctx, *contract, model.MetadataParams{NetworkID: *network, IncludeMarketData: true}))
	case "holders":
		dump(tl, c.TokenHolders(ctx, *contract, model.HoldersParams{NetworkID: *network}))
	case "pools":
		dump(tl, c.Pools(ctx, model.PoolsParams{NetworkID: *network, Token: *contract}))
	case "swaps":
		dump(tl, c.Swaps(ctx, model.SwapsParams{NetworkID: *network, Pool: *pool}))
	case "ohlc-contract":
		dump(tl, c.ContractOHLC(ctx, *contract, model.ContractOHLCParams{NetworkID: *network, Interval: model.Interval1d}))
	case "ohlc-pool":
		dump(tl, c.PoolOHLC(ctx, *pool, model.PoolOHLCParams{NetworkID: *network, Resolution: model.Resolution1d}))
	case "history":
		dump(tl, c.HistoricalBalances(ctx, *address, model.HistoricalBalancesParams{NetworkID: *network, Contract: *contract}))
	case "summary":
		// 各资源之间没有共享状态，放心并发拉
		var wg conc.WaitGroup
		wg.Go(func() {
			dump(tl, c.TokenBalances(ctx, *address, model.BalancesParams{NetworkID: *network}))
		})
		wg.Go(func() {
			dump(tl, c.TokenTransfers(ctx, model.TransfersParams{NetworkID: *network, Address: *address}))
		})
		wg.Go(func() {
			dump(tl, c.HistoricalBalances(ctx, *address, model.HistoricalBalancesParams{NetworkID: *network}))
		})
		wg.Wait()
	default:
		tl.Error("Unknown resource", zap.String("resource", *resource))
		os.Exit(1)
	}

	tl.Info("Fetch completed", zap.Duration("taken_time", time.Since(startTime)))
}

func dump[T any](tl *zap.Logger, res model.Result[T]) {
	out, err := sonic.MarshalIndent(res, "", "  ")
	if err != nil {
		tl.Error("Failed to marshal result", zap.Error(err))
		return
	}
	fmt.Println(string(out))
}
