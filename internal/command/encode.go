package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251207-go-pkg-clikit/pkg/cfgm"
)

// ErrUnknownFormat 表示不支持的输出格式。
var ErrUnknownFormat = errors.New("unknown output format")

// Formats 是支持的输出格式。
var Formats = []string{"yaml", "json", "toml", "hcl"}

// Encode 把 data 以 format 格式写入 w。
//
// time.Duration 输出为 "15s" 形式，与配置文件中的写法一致。
// toml 不支持 null，nil 值会被去掉。
func Encode(w io.Writer, format string, data map[string]any) error {
	plain, _ := plainValue(data).(map[string]any)
	if plain == nil {
		plain = map[string]any{}
	}

	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		encoder := yamlv3.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(plain); err != nil {
			return err
		}

		return encoder.Close()
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(plain)
	case "toml":
		return toml.NewEncoder(w).Encode(cfgm.StripNil(plain))
	case "hcl":
		file := hclwrite.NewEmptyFile()
		body := file.Body()
		for _, key := range cfgm.Keys(plain) {
			body.SetAttributeValue(key, ctyValue(plain[key]))
		}
		_, err := file.WriteTo(w)

		return err
	default:
		return fmt.Errorf("%w %q (supported: %s)", ErrUnknownFormat, format, strings.Join(Formats, ", "))
	}
}

// EncodeValue 输出单个配置值：map 按 format 编码，标量直接输出一行。
func EncodeValue(w io.Writer, format string, value any) error {
	switch typed := plainValue(value).(type) {
	case map[string]any:
		return Encode(w, format, typed)
	case nil:
		_, err := fmt.Fprintln(w, "null")

		return err
	default:
		_, err := fmt.Fprintln(w, typed)

		return err
	}
}

func plainValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = plainValue(item)
		}

		return out
	case []any:
		out := make([]any, len(typed))
		for i, item := range typed {
			out[i] = plainValue(item)
		}

		return out
	case time.Duration:
		return typed.String()
	default:
		return value
	}
}

// ctyValue 把配置值转换为 cty.Value，嵌套 map 写为对象属性以便按属性重新读取。
func ctyValue(value any) cty.Value {
	switch typed := value.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType)
	case string:
		return cty.StringVal(typed)
	case bool:
		return cty.BoolVal(typed)
	case map[string]any:
		if len(typed) == 0 {
			return cty.EmptyObjectVal
		}
		attrs := make(map[string]cty.Value, len(typed))
		for key, item := range typed {
			attrs[key] = ctyValue(item)
		}

		return cty.ObjectVal(attrs)
	case []any:
		if len(typed) == 0 {
			return cty.EmptyTupleVal
		}
		items := make([]cty.Value, len(typed))
		for i, item := range typed {
			items[i] = ctyValue(item)
		}

		return cty.TupleVal(items)
	}

	rv := reflect.ValueOf(value)
	switch {
	case rv.CanInt():
		return cty.NumberIntVal(rv.Int())
	case rv.CanUint() && rv.Uint() <= math.MaxInt64:
		return cty.NumberIntVal(int64(rv.Uint()))
	case rv.CanFloat():
		return cty.NumberFloatVal(rv.Float())
	case rv.Kind() == reflect.Slice:
		items := make([]any, rv.Len())
		for i := range rv.Len() {
			items[i] = rv.Index(i).Interface()
		}

		return ctyValue(items)
	default:
		return cty.StringVal(fmt.Sprint(value))
	}
}

// SupportedFormat 报告 format 是否可用于 [Encode]。
func SupportedFormat(format string) bool {
	return format == "" || format == "yml" || slices.Contains(Formats, strings.ToLower(format))
}
