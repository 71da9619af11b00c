// Package show 提供 show 命令：输出合并后的最终配置。
package show

import (
	"context"

	"github.com/lwmacct/251207-go-pkg-clikit/internal/command"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/clitree"
	cmdkit "github.com/lwmacct/251207-go-pkg-clikit/pkg/command"
)

// Namespace 是 show 命令的配置块 key。
const Namespace = "show"

// Setup 返回 show 命令的声明，opts 传给 [cmdkit.New]。
func Setup(opts ...cmdkit.Option) func(*clitree.Node) {
	return func(n *clitree.Node) {
		n.Description = "输出合并后的最终配置，可指定 key 路径 (如 server.addr)"
		command.GlobalFlags(n)
		n.On("f", "format=FORMAT", "输出格式 (yaml|json|toml|hcl)")
		n.Run = func(ctx context.Context, values *clitree.OptionValues, args []string) error {
			c, err := cmdkit.New(command.Spec(Namespace), cmdkit.Parsed{Values: values}, args, opts...)
			if err != nil {
				return err
			}

			return (&Show{Command: c}).Execute(ctx)
		}
	}
}
