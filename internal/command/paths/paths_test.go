package paths_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-clikit/internal/command/paths"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/clitree"
	cmdkit "github.com/lwmacct/251207-go-pkg-clikit/pkg/command"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/ui"
)

func TestPaths(t *testing.T) {
	file := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte("debug: false\n"), 0o600))

	var out bytes.Buffer
	u := ui.New("clikit", ui.WithOutput(&out), ui.WithErrorOutput(&out), ui.WithColors(false))
	p := clitree.New("clikit", clitree.WithOutput(&out))
	p.Command(paths.Namespace, paths.Setup(
		cmdkit.WithUI(u),
		cmdkit.WithLogOutput(&bytes.Buffer{}),
		cmdkit.WithEnv(func(string) (string, bool) { return "", false }),
	))

	result, err := p.Execute(context.Background(), []string{"paths", "--config", file})
	require.NoError(t, err)
	assert.True(t, result.Executed)

	got := out.String()
	assert.Contains(t, got, "[clikit]: Checking config file candidates... complete!\n---> Results:\n")
	assert.Contains(t, got, "    candidates: 5\n")
	assert.Contains(t, got, "    loaded: "+file+"\n")
	assert.Contains(t, got, "[clikit]: Search order:\n    1. .clikit.yaml (")
	assert.Contains(t, got, "    5. config/config.yaml (")
}
