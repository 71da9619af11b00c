package example

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lwmacct/251207-go-pkg-clikit/internal/command"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/cfgm"
	cmdkit "github.com/lwmacct/251207-go-pkg-clikit/pkg/command"
)

// ErrExists 表示目标文件已存在且没有指定 --force。
var ErrExists = errors.New("output file already exists")

// Example 生成默认配置。
//
// Output 与 Force 只来自命令行，不参与配置合并。
type Example struct {
	*cmdkit.Command

	Output string
	Force  bool
}

// Execute 按 format 编码默认配置。指定 Output 时写入文件，
// 格式由文件扩展名决定，扩展名无法识别时使用 format。
func (e *Example) Execute(_ context.Context) error {
	output := e.Output
	format, _ := e.Config()["format"].(string)
	if output != "" {
		format = formatFor(output, format)
	}
	if !command.SupportedFormat(format) {
		return fmt.Errorf("%w %q", command.ErrUnknownFormat, format)
	}

	var b bytes.Buffer
	if err := command.Encode(&b, format, cfgm.StripNil(cfgm.ToMap(command.Defaults))); err != nil {
		return err
	}

	if output == "" {
		e.UI().Print(b.String())

		return nil
	}

	return e.RunAction("Writing example config to "+output, func() (any, error) {
		if _, err := os.Stat(output); err == nil && !e.Force {
			return nil, fmt.Errorf("%w: %s", ErrExists, output)
		}
		if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(output, b.Bytes(), 0o600); err != nil {
			return nil, err
		}

		return map[string]any{"format": format, "bytes": b.Len()}, nil
	})
}

// formatFor 由文件扩展名推断输出格式，无法推断时返回 fallback。
func formatFor(path, fallback string) string {
	switch cfgm.DetectFormat(path) {
	case cfgm.FormatJSON, cfgm.FormatJSONC:
		return "json"
	case cfgm.FormatTOML:
		return "toml"
	case cfgm.FormatHCL:
		return "hcl"
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		return "yaml"
	}

	return fallback
}
