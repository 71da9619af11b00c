// Package config 定义 clikit 的配置类。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - --config 指定，或 cfgm.DefaultPaths("clikit") 中第一个存在的文件
//  3. 环境变量 - CLIKIT_ 前缀，如 CLIKIT_SERVER_ADDR
//  4. CLI flags - 用户显式提供的 flag
//
// 命令命名空间 (show / paths / example / inspect) 下的配置块覆盖顶层配置，
// 只对该命令生效。
package config

import (
	"time"
)

// Config 应用配置。
type Config struct {
	Debug   bool   `json:"debug" desc:"开启调试输出"`
	Log     string `json:"log" desc:"日志级别 (debug|info|warn|error|fatal)"`
	Colors  *bool  `json:"colors" desc:"彩色输出，未设置时按终端自动判断"`
	AppName string `json:"app_name" desc:"输出前缀中的应用名"`
	Format  string `json:"format" desc:"输出格式 (yaml|json|toml|hcl)"`

	Server ServerConfig `json:"server" desc:"服务端配置"`
	Client ClientConfig `json:"client" desc:"客户端配置"`

	// 命令命名空间，内容覆盖顶层配置
	Show    map[string]any `json:"show" desc:"show 命令配置"`
	Paths   map[string]any `json:"paths" desc:"paths 命令配置"`
	Example map[string]any `json:"example" desc:"example 命令配置"`
	Inspect map[string]any `json:"inspect" desc:"inspect 命令配置"`
}

// ServerConfig 服务端配置。
type ServerConfig struct {
	Addr     string        `json:"addr" desc:"服务器监听地址"`
	Timeout  time.Duration `json:"timeout" desc:"HTTP 读写超时"`
	Idletime time.Duration `json:"idletime" desc:"HTTP 空闲超时"`
}

// ClientConfig 客户端配置。
type ClientConfig struct {
	URL     string        `json:"url" desc:"服务器地址"`
	Timeout time.Duration `json:"timeout" desc:"请求超时时间"`
	Retries int           `json:"retries" desc:"重试次数"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Log:    "fatal",
		Format: "yaml",
		Server: ServerConfig{
			Addr:     ":40117",
			Timeout:  15 * time.Second,
			Idletime: 60 * time.Second,
		},
		Client: ClientConfig{
			URL:     "http://localhost:40117",
			Timeout: 30 * time.Second,
			Retries: 3,
		},
	}
}
