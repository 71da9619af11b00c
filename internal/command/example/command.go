// Package example 提供 example 命令：输出或写入一份默认配置文件。
package example

import (
	"context"

	"github.com/lwmacct/251207-go-pkg-clikit/internal/command"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/clitree"
	cmdkit "github.com/lwmacct/251207-go-pkg-clikit/pkg/command"
)

// Namespace 是 example 命令的配置块 key。
const Namespace = "example"

// Setup 返回 example 命令的声明。
func Setup(opts ...cmdkit.Option) func(*clitree.Node) {
	return func(n *clitree.Node) {
		n.Description = "输出默认配置，可作为配置文件模板"
		command.GlobalFlags(n)
		n.On("f", "format=FORMAT", "输出格式 (yaml|json|toml|hcl)")
		n.On("o", "output=FILE", "写入文件而不是标准输出")
		n.On("", "force", "覆盖已存在的文件", clitree.WithDefault(false))
		n.Run = func(ctx context.Context, values *clitree.OptionValues, args []string) error {
			c, err := cmdkit.New(command.Spec(Namespace), cmdkit.Parsed{Values: values}, args, opts...)
			if err != nil {
				return err
			}

			e := &Example{Command: c}
			if v, ok := values.Get("output"); ok && v != nil {
				e.Output = v.(string)
			}
			if v, ok := values.Get("force"); ok && v != nil {
				e.Force = v.(bool)
			}

			return e.Execute(ctx)
		}
	}
}
