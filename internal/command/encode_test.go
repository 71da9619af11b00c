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
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/cfgm"
)

func sample() map[string]any {
	return map[string]any{
		"name":  "clikit",
		"debug": true,
		"server": map[string]any{
			"addr":    ":40117",
			"timeout": 15 * time.Second,
		},
		"tags":  []any{"a", "b"},
		"empty": nil,
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	tests := []struct {
		format string
		file   string
	}{
		{format: "yaml", file: "out.yaml"},
		{format: "json", file: "out.json"},
		{format: "toml", file: "out.toml"},
		{format: "hcl", file: "out.hcl"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var b bytes.Buffer
			require.NoError(t, command.Encode(&b, tt.format, sample()))

			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, b.Bytes(), 0o600))

			file, err := cfgm.LoadFile(path, cfgm.WithoutTemplateExpansion())
			require.NoError(t, err)

			name, _ := file.Get("name")
			assert.Equal(t, "clikit", name)
			addr, _ := file.Get("server.addr")
			assert.Equal(t, ":40117", addr)
			timeout, _ := file.Get("server.timeout")
			assert.Equal(t, "15s", timeout)
			debug, _ := file.Get("debug")
			assert.Equal(t, true, debug)
		})
	}
}

func TestEncode_YAML(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, command.Encode(&b, "", map[string]any{
		"b": 15 * time.Second,
		"a": map[string]any{"x": 1},
	}))

	assert.Equal(t, "a:\n  x: 1\nb: 15s\n", b.String())
}

func TestEncode_UnknownFormat(t *testing.T) {
	var b bytes.Buffer
	err := command.Encode(&b, "xml", sample())

	require.ErrorIs(t, err, command.ErrUnknownFormat)
	assert.False(t, command.SupportedFormat("xml"))
	assert.True(t, command.SupportedFormat("YAML"))
}

func TestEncodeValue(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, command.EncodeValue(&b, "json", ":40117"))
	require.NoError(t, command.EncodeValue(&b, "json", 30*time.Second))
	require.NoError(t, command.EncodeValue(&b, "json", nil))
	require.NoError(t, command.EncodeValue(&b, "json", map[string]any{"retries": 3}))

	assert.Equal(t, ":40117\n30s\nnull\n{\n  \"retries\": 3\n}\n", b.String())
}

func TestSpec(t *testing.T) {
	spec := command.Spec("show")

	assert.Equal(t, "show", spec.Namespace)
	assert.Equal(t, command.AppName, spec.AppName)
	assert.Equal(t, command.EnvPrefix, spec.EnvPrefix)
	assert.Equal(t, cfgm.DefaultPaths(command.AppName), spec.ConfigFiles)
	assert.NotNil(t, spec.Schema)
}
