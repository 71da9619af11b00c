// Package command 提供 clikit 各子命令共用的默认值、配置声明与输出编码。
package command

import (
	"github.com/lwmacct/251207-go-pkg-clikit/internal/config"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/clitree"
	cmdkit "github.com/lwmacct/251207-go-pkg-clikit/pkg/command"
)

const (
	// AppName 是程序名，也是默认配置文件名的一部分。
	AppName = "clikit"

	// EnvPrefix 是环境变量覆盖层的前缀。
	EnvPrefix = "CLIKIT_"
)

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()

// Spec 返回 namespace 命令的配置声明。
func Spec(namespace string) cmdkit.Spec {
	return cmdkit.Spec{
		Namespace:   namespace,
		AppName:     AppName,
		ConfigFiles: cfgm.DefaultPaths(AppName),
		Schema:      cfgm.StructSchema[config.Config]{Defaults: Defaults},
		EnvPrefix:   EnvPrefix,
	}
}

// GlobalFlags 在 n 上声明所有命令共有的 flag。
func GlobalFlags(n *clitree.Node) {
	n.On("c", "config=PATH", "配置文件路径")
	n.On("d", "debug", "开启调试输出")
	n.On("", "log=LEVEL", "日志级别 (debug|info|warn|error|fatal)", clitree.WithDefault(Defaults.Log))
	n.On("", "colors", "彩色输出")
	n.On("", "app-name=NAME", "输出前缀中的应用名")
}

// Decode 返回命令的最终配置。
func Decode(c *cmdkit.Command) (*config.Config, error) {
	return cmdkit.Decode[config.Config](c)
}
