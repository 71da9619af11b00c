package inspect_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-clikit/internal/command/inspect"
	cmdkit "github.com/lwmacct/251207-go-pkg-clikit/pkg/command"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/ui"
)

func run(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	u := ui.New("clikit", ui.WithOutput(&out), ui.WithErrorOutput(&out), ui.WithColors(false))
	cmd := inspect.New(
		cmdkit.WithUI(u),
		cmdkit.WithLogOutput(&bytes.Buffer{}),
		cmdkit.WithEnv(func(key string) (string, bool) {
			v, ok := env[key]

			return v, ok
		}),
	)
	cmd.Writer = &out
	cmd.ErrWriter = &out

	err := cmd.Run(context.Background(), append([]string{"inspect"}, args...))

	return out.String(), err
}

func TestInspect(t *testing.T) {
	file := filepath.Join(t.TempDir(), "clikit.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"server": {"addr": ":9000"}, "inspect": {"log": "info"}}`), 0o600))

	out, err := run(t, map[string]string{"CLIKIT_CLIENT_URL": "http://env"},
		"--config", file, "--format", "json", "server.addr", "client.url", "log")
	require.NoError(t, err)

	assert.Contains(t, out, "[clikit]: Resolving configuration... complete!\n---> Results:\n")
	assert.Contains(t, out, "    file: "+file+"\n")
	assert.Contains(t, out, "    namespace: inspect\n")
	assert.Contains(t, out, "    overrides: 1\n")
	assert.Contains(t, out, ":9000\nhttp://env\ninfo\n")
}

func TestInspect_FlagOverridesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "clikit.yaml")
	require.NoError(t, os.WriteFile(file, []byte("format: toml\nlog: warn\n"), 0o600))

	out, err := run(t, nil, "-c", file, "-f", "yaml", "log", "format")
	require.NoError(t, err)
	assert.Contains(t, out, "warn\nyaml\n")
}
