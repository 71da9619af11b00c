package show

import (
	"context"
	"fmt"
	"strings"

	"github.com/lwmacct/251207-go-pkg-clikit/internal/command"
	cmdkit "github.com/lwmacct/251207-go-pkg-clikit/pkg/command"
)

// Show 输出最终配置。
type Show struct {
	*cmdkit.Command
}

// Execute 没有参数时输出完整配置，否则依次输出每个 key 路径的值。
func (s *Show) Execute(_ context.Context) error {
	cfg, err := command.Decode(s.Command)
	if err != nil {
		return err
	}
	if !command.SupportedFormat(cfg.Format) {
		return fmt.Errorf("%w %q", command.ErrUnknownFormat, cfg.Format)
	}

	s.Logger().Debug("Showing config", "file", s.ConfigFile(), "format", cfg.Format, "keys", s.Arguments())

	var b strings.Builder
	args := s.Arguments()
	if len(args) == 0 {
		if err := command.Encode(&b, cfg.Format, s.Config()); err != nil {
			return err
		}
		s.UI().Print(b.String())

		return nil
	}

	for _, key := range args {
		if key == "--" {
			continue
		}
		value, ok := s.Get(key)
		if !ok {
			return fmt.Errorf("config key %q not found", key)
		}
		if err := command.EncodeValue(&b, cfg.Format, value); err != nil {
			return err
		}
	}
	s.UI().Print(b.String())

	return nil
}
