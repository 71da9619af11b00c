package inspect

import (
	"context"
	"fmt"
	"strings"

	"github.com/lwmacct/251207-go-pkg-clikit/internal/command"
	cmdkit "github.com/lwmacct/251207-go-pkg-clikit/pkg/command"
)

// Inspect 输出配置来源与最终配置。
type Inspect struct {
	*cmdkit.Command
}

// Execute 先报告配置来源，再按 format 输出最终配置或指定 key 的值。
func (i *Inspect) Execute(_ context.Context) error {
	cfg, err := command.Decode(i.Command)
	if err != nil {
		return err
	}
	if !command.SupportedFormat(cfg.Format) {
		return fmt.Errorf("%w %q", command.ErrUnknownFormat, cfg.Format)
	}

	err = i.RunAction("Resolving configuration", func() (any, error) {
		file := i.ConfigFile()
		if file == "" {
			file = "none"
		}

		return map[string]any{
			"file":      file,
			"namespace": i.Namespace(),
			"overrides": len(i.Opts()),
		}, nil
	})
	if err != nil {
		return err
	}

	var b strings.Builder
	keys := i.Arguments()
	if len(keys) == 0 {
		if err := command.Encode(&b, cfg.Format, i.Config()); err != nil {
			return err
		}
	}
	for _, key := range keys {
		value, ok := i.Get(key)
		if !ok {
			return fmt.Errorf("config key %q not found", key)
		}
		if err := command.EncodeValue(&b, cfg.Format, value); err != nil {
			return err
		}
	}
	i.UI().Print(b.String())

	return nil
}
