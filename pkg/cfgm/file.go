package cfgm

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/lwmacct/251207-go-pkg-clikit/pkg/templexp"
)

var (
	// ErrLoad 表示配置文件读取、展开或解析失败。LoadFile 返回的所有错误都包装了它。
	ErrLoad = errors.New("cfgm: failed to load config")

	// ErrUnsupportedFormat 表示文件内容无法转换为 key/value 结构。
	ErrUnsupportedFormat = errors.New("cfgm: unsupported config format")
)

// File 是一个已加载的配置文件。
//
// Data 只包含文件中真实出现的 key，不含任何 schema 填充的默认值，
// 调用方据此区分 "文件声明了该 key" 与 "默认值补齐"。
type File struct {
	Path   string
	Format Format
	Data   map[string]any
}

// LoadFile 读取 path 指向的配置文件。
//
// 格式由扩展名决定（见 [DetectFormat]）；默认在解析前执行模板展开。
// 任何失败都返回包装了 [ErrLoad] 的错误，不会重试。
func LoadFile(path string, opts ...Option) (*File, error) {
	o := buildOptions(opts)

	full, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	content, err := os.ReadFile(full) //nolint:gosec // path is chosen by the operator
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}

	if !o.noTemplateExpansion {
		vars := o.vars
		if vars == nil {
			vars = templexp.EnvVars()
		}
		expanded, expandErr := templexp.ExpandWith(string(content), vars)
		if expandErr != nil {
			return nil, fmt.Errorf("%w: expand template in %s: %w", ErrLoad, full, expandErr)
		}
		content = []byte(expanded)
	}

	format := DetectFormat(full)
	data, err := format.parse(full, content)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s config %s: %w", ErrLoad, format, full, err)
	}

	slog.Debug("Loaded config from file", "path", full, "format", format, "keys", len(data))

	return &File{Path: full, Format: format, Data: data}, nil
}

// Has 报告文件中是否出现了 key。key 支持点号路径，如 "server.addr"。
func (f *File) Has(key string) bool {
	_, ok := getByPath(f.Data, key)

	return ok
}

// Get 按 key（支持点号路径）查找文件中的值。
func (f *File) Get(key string) (any, bool) {
	return getByPath(f.Data, key)
}

// Keys 返回文件顶层出现的 key，按字典序排列。
func (f *File) Keys() []string {
	keys := make([]string, 0, len(f.Data))
	for key := range f.Data {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return keys
}
