package config

import (
	"fmt"

	"token-api/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config 定义整个配置的结构
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	TokenAPI TokenAPIConfig `mapstructure:"token_api"`
	Monitor  MonitorConfig  `mapstructure:"monitor"`
}

// LogConfig Log 日志配置
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// TokenAPIConfig 代理端点配置
type TokenAPIConfig struct {
	ProxyURL  string `mapstructure:"proxy_url"`  // 代理端点地址，空则用内置默认
	Timeout   int    `mapstructure:"timeout"`    // 秒
	NetworkID string `mapstructure:"network_id"` // 缺省网络
	UserAgent string `mapstructure:"user_agent"`
}

type MonitorConfig struct {
	Enable         bool   `mapstructure:"enable"`
	PrometheusAddr string `mapstructure:"prometheus_addr"`
}

func InitConfig() Config {
	return initConfigDir("./config/")
}

func initConfigDir(dir string) Config {
	var config Config

	viper.SetConfigName("config.adapter")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(dir)

	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}

	if err := mapstructure.Decode(viper.AllSettings(), &config); err != nil {
		panic(fmt.Errorf("fatal error config file: %s", err))
	}

	return config
}

func WatchConfig(config *Config) {
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		newConfig := InitConfig()
		*config = newConfig
		logger.SetLogLevel(config.Log.Level)
	})
}
