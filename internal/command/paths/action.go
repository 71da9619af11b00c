package paths

import (
	"context"
	"fmt"

	"github.com/lwmacct/251207-go-pkg-clikit/pkg/cfgm"
	cmdkit "github.com/lwmacct/251207-go-pkg-clikit/pkg/command"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/ui"
)

// Paths 按优先级列出候选配置文件。
type Paths struct {
	*cmdkit.Command

	candidates []string
}

// Execute 输出每个候选文件是否存在，以及本次加载的文件。
func (p *Paths) Execute(_ context.Context) error {
	u := p.UI()

	var found int
	err := p.RunAction("Checking config file candidates", func() (any, error) {
		for _, candidate := range p.candidates {
			if _, ok := cfgm.FindFile(candidate); ok {
				found++
			}
		}

		loaded := p.ConfigFile()
		if loaded == "" {
			loaded = "none"
		}

		return map[string]any{
			"candidates": len(p.candidates),
			"found":      found,
			"loaded":     loaded,
		}, nil
	})
	if err != nil {
		return err
	}

	u.Info("Search order:")
	for i, candidate := range p.candidates {
		status := u.Color("missing", ui.Yellow)
		if _, ok := cfgm.FindFile(candidate); ok {
			status = u.Color("found", ui.Green, ui.Bold)
		}
		u.Puts(fmt.Sprintf("    %d. %s (%s)", i+1, candidate, status))
	}

	return nil
}
