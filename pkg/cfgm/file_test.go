package cfgm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-clikit/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/templexp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadFile_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		format  cfgm.Format
		want    map[string]any
	}{
		{
			name:    "yaml",
			file:    "app.yaml",
			content: "name: app\ntest:\n  name: fubar\n  port: 80\n",
			format:  cfgm.FormatYAML,
			want:    map[string]any{"name": "app", "test": map[string]any{"name": "fubar", "port": 80}},
		},
		{
			name:    "unknown extension falls back to yaml",
			file:    "app.conf",
			content: "name: app\n",
			format:  cfgm.FormatYAML,
			want:    map[string]any{"name": "app"},
		},
		{
			name:    "json",
			file:    "app.json",
			content: `{"name": "app", "test": {"name": "fubar", "port": 80}}`,
			format:  cfgm.FormatJSON,
			want:    map[string]any{"name": "app", "test": map[string]any{"name": "fubar", "port": float64(80)}},
		},
		{
			name: "jsonc",
			file: "app.jsonc",
			content: `{
  // comment
  "name": "app",
  "tags": ["a", "b",],
}`,
			format: cfgm.FormatJSONC,
			want:   map[string]any{"name": "app", "tags": []any{"a", "b"}},
		},
		{
			name:    "toml",
			file:    "app.toml",
			content: "name = \"app\"\n\n[test]\nname = \"fubar\"\nport = 80\n",
			format:  cfgm.FormatTOML,
			want:    map[string]any{"name": "app", "test": map[string]any{"name": "fubar", "port": int64(80)}},
		},
		{
			name:    "hcl",
			file:    "app.hcl",
			content: "name = \"app\"\nratio = 0.5\ntest = {\n  name = \"fubar\"\n  port = 80\n}\nnothing = null\n",
			format:  cfgm.FormatHCL,
			want: map[string]any{
				"name":    "app",
				"ratio":   0.5,
				"test":    map[string]any{"name": "fubar", "port": int64(80)},
				"nothing": nil,
			},
		},
		{
			name:    "empty yaml",
			file:    "empty.yaml",
			content: "",
			format:  cfgm.FormatYAML,
			want:    map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			file, err := cfgm.LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.format, file.Format)
			if diff := cmp.Diff(tt.want, file.Data); diff != "" {
				t.Errorf("Data mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadFile_Failures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := cfgm.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, cfgm.ErrLoad)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := cfgm.LoadFile(writeFile(t, "bad.json", `{"name": `))
		require.ErrorIs(t, err, cfgm.ErrLoad)
	})

	t.Run("non-object root", func(t *testing.T) {
		_, err := cfgm.LoadFile(writeFile(t, "list.yaml", "- a\n- b\n"))
		require.ErrorIs(t, err, cfgm.ErrLoad)
		require.ErrorIs(t, err, cfgm.ErrUnsupportedFormat)
	})

	t.Run("hcl blocks rejected", func(t *testing.T) {
		_, err := cfgm.LoadFile(writeFile(t, "block.hcl", "server {\n  addr = \":80\"\n}\n"))
		require.ErrorIs(t, err, cfgm.ErrLoad)
	})

	t.Run("required template variable", func(t *testing.T) {
		_, err := cfgm.LoadFile(writeFile(t, "req.yaml", "key: ${MISSING_KEY:?key required}\n"),
			cfgm.WithVars(templexp.Vars{}))
		require.ErrorIs(t, err, cfgm.ErrLoad)
		assert.Contains(t, err.Error(), "key required")
	})
}

func TestLoadFile_TemplateExpansion(t *testing.T) {
	path := writeFile(t, "tpl.yaml", "model: ${MODEL:-gpt-4}\nraw: $${KEEP}\n")

	file, err := cfgm.LoadFile(path, cfgm.WithVars(templexp.Vars{"MODEL": "o3"}))
	require.NoError(t, err)
	assert.Equal(t, "o3", file.Data["model"])
	assert.Equal(t, "${KEEP}", file.Data["raw"])

	file, err = cfgm.LoadFile(path, cfgm.WithoutTemplateExpansion())
	require.NoError(t, err)
	assert.Equal(t, "${MODEL:-gpt-4}", file.Data["model"])
}

func TestFile_Lookup(t *testing.T) {
	file, err := cfgm.LoadFile(writeFile(t, "app.yaml", "test:\n  name: fubar\nbare: ~\n"))
	require.NoError(t, err)

	assert.True(t, file.Has("test"))
	assert.True(t, file.Has("test.name"))
	assert.True(t, file.Has("bare"), "显式 null 也算文件声明的 key")
	assert.False(t, file.Has("test.port"))
	assert.False(t, file.Has("test.name.deeper"))

	v, ok := file.Get("test.name")
	require.True(t, ok)
	assert.Equal(t, "fubar", v)
	assert.Equal(t, []string{"bare", "test"}, file.Keys())
}

func TestFindFile(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "second.yaml")
	third := filepath.Join(dir, "third.yaml")
	require.NoError(t, os.WriteFile(second, nil, 0o600))
	require.NoError(t, os.WriteFile(third, nil, 0o600))

	got, ok := cfgm.FindFile("", filepath.Join(dir, "first.yaml"), dir, second, third)
	require.True(t, ok)
	assert.Equal(t, second, got)

	_, ok = cfgm.FindFile(filepath.Join(dir, "none.yaml"))
	assert.False(t, ok)
}

func TestExpandPath_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := cfgm.ExpandPath("~/.app.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".app.yaml"), got)
}
