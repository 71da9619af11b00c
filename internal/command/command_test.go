package command_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-clikit/internal/command"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/clitree"
	cmdkit "github.com/lwmacct/251207-go-pkg-clikit/pkg/command"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/ui"
)

// testOptions 返回把输出写入 out、屏蔽环境变量的命令选项。
func testOptions(out *bytes.Buffer, env map[string]string) []cmdkit.Option {
	u := ui.New("clikit", ui.WithOutput(out), ui.WithErrorOutput(out), ui.WithColors(false))

	return []cmdkit.Option{
		cmdkit.WithUI(u),
		cmdkit.WithLogOutput(&bytes.Buffer{}),
		cmdkit.WithEnv(func(key string) (string, bool) {
			v, ok := env[key]

			return v, ok
		}),
	}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDecode_Layers(t *testing.T) {
	file := writeConfig(t, "clikit.yaml", `
log: warn
server:
  addr: ":9000"
show:
  format: json
`)

	var out bytes.Buffer
	values := clitree.NewOptionValues().
		SetDefault("log", command.Defaults.Log).
		Set("config", file).
		Set("log", "info")

	c, err := cmdkit.New(
		command.Spec("show"),
		cmdkit.Parsed{Values: values},
		nil,
		testOptions(&out, map[string]string{"CLIKIT_CLIENT_RETRIES": "5", "CLIKIT_PATHS": "x", "CLIKIT_SHOW": "x"})...,
	)
	require.NoError(t, err)

	cfg, err := command.Decode(c)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log, "显式 flag 覆盖配置文件")
	assert.Equal(t, ":9000", cfg.Server.Addr, "配置文件覆盖默认值")
	assert.Equal(t, 15*time.Second, cfg.Server.Timeout, "未出现的 key 保留默认值")
	assert.Equal(t, 5, cfg.Client.Retries, "环境变量覆盖默认值")
	assert.Equal(t, "json", cfg.Format, "命名空间配置覆盖顶层")
	assert.Equal(t, file, c.ConfigFile())
}
