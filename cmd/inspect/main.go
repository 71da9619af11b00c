package main

import (
	"context"
	"os"

	app "github.com/lwmacct/251207-go-pkg-clikit/internal/command/inspect"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/setup"
)

func main() {
	os.Exit(setup.Run(context.Background(), func(ctx context.Context) error {
		return app.Command.Run(ctx, os.Args)
	}, setup.ExitOnSignal()))
}
