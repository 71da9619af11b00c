package main

import (
	"context"
	"fmt"
	"os"

	"github.com/lwmacct/251207-go-pkg-clikit/internal/command"
	"github.com/lwmacct/251207-go-pkg-clikit/internal/command/example"
	"github.com/lwmacct/251207-go-pkg-clikit/internal/command/paths"
	"github.com/lwmacct/251207-go-pkg-clikit/internal/command/show"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/clitree"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/setup"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/ui"
)

func main() {
	reporter := ui.New(command.AppName, ui.WithDebug(os.Getenv("DEBUG") != ""))

	os.Exit(setup.Run(context.Background(), run, setup.WithReporter(reporter)))
}

func run(ctx context.Context) error {
	p := clitree.New(command.AppName)
	p.Root().Description = "命令行配置解析示例：默认值 → 配置文件 → 环境变量 → flags"
	command.GlobalFlags(p.Root())
	p.Command(show.Namespace, show.Setup())
	p.Command(paths.Namespace, paths.Setup())
	p.Command(example.Namespace, example.Setup())

	result, err := p.Execute(ctx, os.Args[1:])
	if err != nil {
		return err
	}
	if !result.Executed {
		_, _ = fmt.Fprint(os.Stderr, result.Node.Help())
	}

	return nil
}
