package cfgm

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/tidwall/jsonc"
	"github.com/zclconf/go-cty/cty"
	yamlv3 "go.yaml.in/yaml/v3"
)

// Format 配置文件格式。
type Format string

// 支持的配置文件格式。
const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
	FormatTOML  Format = "toml"
	FormatHCL   Format = "hcl"
)

// DetectFormat 根据扩展名判断格式，未知扩展名按 YAML 处理。
//
//   - .json → JSON
//   - .jsonc → JSON with comments
//   - .toml → TOML
//   - .hcl → HCL（仅支持属性，不支持 block）
//   - 其他 → YAML
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".jsonc":
		return FormatJSONC
	case ".toml":
		return FormatTOML
	case ".hcl":
		return FormatHCL
	default:
		return FormatYAML
	}
}

func (f Format) parse(path string, content []byte) (map[string]any, error) {
	var raw any
	var err error

	switch f {
	case FormatJSON:
		err = json.Unmarshal(content, &raw)
	case FormatJSONC:
		err = json.Unmarshal(jsonc.ToJSON(content), &raw)
	case FormatTOML:
		var table map[string]any
		err = toml.Unmarshal(content, &table)
		raw = table
	case FormatHCL:
		raw, err = parseHCL(path, content)
	default:
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}

	normalized := normalizeMapKeys(raw)
	if normalized == nil {
		return map[string]any{}, nil
	}
	configMap, ok := normalized.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: config root must be object", ErrUnsupportedFormat)
	}

	return configMap, nil
}

// parseHCL 把仅含属性的 HCL 文件求值为 map。
func parseHCL(path string, content []byte) (map[string]any, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, path)
	if diags.HasErrors() {
		return nil, errors.New(diags.Error())
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, errors.New(diags.Error())
	}

	out := make(map[string]any, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, errors.New(diags.Error())
		}
		goVal, err := ctyToGo(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		out[name] = goVal
	}

	return out, nil
}

// ctyToGo 将 cty.Value 转换为 Go 值。整数返回 int64，其余数字返回 float64。
func ctyToGo(val cty.Value) (any, error) {
	if !val.IsKnown() || val.IsNull() {
		return nil, nil
	}

	typ := val.Type()
	switch {
	case typ.Equals(cty.String):
		return val.AsString(), nil
	case typ.Equals(cty.Bool):
		return val.True(), nil
	case typ.Equals(cty.Number):
		bf := val.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == 0 {
				return i, nil
			}
		}
		f, _ := bf.Float64()

		return f, nil
	case typ.IsObjectType() || typ.IsMapType():
		out := make(map[string]any)
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			goVal, err := ctyToGo(v)
			if err != nil {
				return nil, err
			}
			out[k.AsString()] = goVal
		}

		return out, nil
	case typ.IsTupleType() || typ.IsListType() || typ.IsSetType():
		out := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			goVal, err := ctyToGo(v)
			if err != nil {
				return nil, err
			}
			out = append(out, goVal)
		}

		return out, nil
	}

	return nil, fmt.Errorf("%w: cty type %s", ErrUnsupportedFormat, typ.FriendlyName())
}
