// Package inspect 提供基于 urfave/cli 的 inspect 命令，
// 与 clitree 命令共用同一套配置解析。
package inspect

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-clikit/internal/command"
	cmdkit "github.com/lwmacct/251207-go-pkg-clikit/pkg/command"
)

// Namespace 是 inspect 命令的配置块 key。
const Namespace = "inspect"

// Command inspect 命令
var Command = New()

// New 创建 inspect 命令，opts 传给 [cmdkit.New]。
func New(opts ...cmdkit.Option) *cli.Command {
	return &cli.Command{
		Name:      Namespace,
		Usage:     "解析并输出最终配置及其来源",
		ArgsUsage: "[key...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			c, err := cmdkit.New(command.Spec(Namespace), cmdkit.FromCLI(cmd), cmd.Args().Slice(), opts...)
			if err != nil {
				return err
			}

			return (&Inspect{Command: c}).Execute(ctx)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "开启调试输出",
			},
			&cli.StringFlag{
				Name:  "log",
				Value: command.Defaults.Log,
				Usage: "日志级别 (debug|info|warn|error|fatal)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   command.Defaults.Format,
				Usage:   "输出格式 (yaml|json|toml|hcl)",
			},
			&cli.StringFlag{
				Name:  "app-name",
				Usage: "输出前缀中的应用名",
			},
		},
	}
}
