// Package paths 提供 paths 命令：列出配置文件的搜索顺序与实际加载的文件。
package paths

import (
	"context"

	"github.com/lwmacct/251207-go-pkg-clikit/internal/command"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/clitree"
	cmdkit "github.com/lwmacct/251207-go-pkg-clikit/pkg/command"
)

// Namespace 是 paths 命令的配置块 key。
const Namespace = "paths"

// Setup 返回 paths 命令的声明。
func Setup(opts ...cmdkit.Option) func(*clitree.Node) {
	return func(n *clitree.Node) {
		n.Description = "列出配置文件的搜索顺序"
		command.GlobalFlags(n)
		n.Run = func(ctx context.Context, values *clitree.OptionValues, args []string) error {
			c, err := cmdkit.New(command.Spec(Namespace), cmdkit.Parsed{Values: values}, args, opts...)
			if err != nil {
				return err
			}

			return (&Paths{Command: c, candidates: command.Spec(Namespace).ConfigFiles}).Execute(ctx)
		}
	}
}
