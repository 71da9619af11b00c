package cfgm

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
)

// ErrMergeConflict 表示合并时一侧是嵌套结构、另一侧是非空标量。
var ErrMergeConflict = errors.New("cfgm: cannot merge nested structure with scalar")

var (
	durationType = reflect.TypeFor[time.Duration]()
	timeType     = reflect.TypeFor[time.Time]()
)

// ═══════════════════════════════════════════════════════════════════════════
// map 操作
// ═══════════════════════════════════════════════════════════════════════════

// DeepMerge 按顺序深度合并 layers，后者覆盖前者，返回新的 map。
//
// 两侧同为 map 时逐 key 递归合并，否则整体替换；输入不会被修改。
func DeepMerge(layers ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, layer := range layers {
		mergeMaps(out, Clone(layer))
	}

	return out
}

// MergeStrict 与 DeepMerge 相同，但拒绝结构不一致的覆盖：
// 一侧是 map 而另一侧是非 nil 的其他值时返回 [ErrMergeConflict]。
// nil 可以被任意值覆盖。
func MergeStrict(base, over map[string]any) (map[string]any, error) {
	out := Clone(base)
	if out == nil {
		out = map[string]any{}
	}
	if err := mergeStrict(out, Clone(over), ""); err != nil {
		return nil, err
	}

	return out, nil
}

func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		if valueMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeMaps(dstMap, valueMap)
				continue
			}
		}

		dst[key] = value
	}
}

func mergeStrict(dst, src map[string]any, prefix string) error {
	for key, value := range src {
		path := joinPath(prefix, key)
		current, exists := dst[key]
		if !exists || current == nil {
			dst[key] = value
			continue
		}

		srcMap, srcIsMap := value.(map[string]any)
		dstMap, dstIsMap := current.(map[string]any)
		switch {
		case srcIsMap && dstIsMap:
			if err := mergeStrict(dstMap, srcMap, path); err != nil {
				return err
			}
		case srcIsMap != dstIsMap && value != nil:
			return fmt.Errorf("%w: key %q", ErrMergeConflict, path)
		default:
			dst[key] = value
		}
	}

	return nil
}

// Clone 深拷贝 map 与其中的 []any / map[string]any。
func Clone(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]any, len(src))
	for key, value := range src {
		out[key] = cloneValue(value)
	}

	return out
}

func cloneValue(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		return Clone(typed)
	case []any:
		out := make([]any, len(typed))
		for i := range typed {
			out[i] = cloneValue(typed[i])
		}

		return out
	default:
		return val
	}
}

// StripNil 返回去掉所有 nil 值的副本，递归处理嵌套 map。
//
// nil 一律视为 "未提供"，而不是 "显式设为空"。结果再次调用 StripNil 不会变化。
func StripNil(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for key, value := range src {
		switch typed := value.(type) {
		case nil:
			continue
		case map[string]any:
			out[key] = StripNil(typed)
		default:
			out[key] = cloneValue(value)
		}
	}

	return out
}

// FilterKeys 仅保留 src 顶层中出现在 allowed 顶层的 key。
func FilterKeys(src, allowed map[string]any) map[string]any {
	out := make(map[string]any)
	for key, value := range src {
		if _, ok := allowed[key]; ok {
			out[key] = cloneValue(value)
		}
	}

	return out
}

// FilterTree 与 FilterKeys 相同，但对两侧都是 map 的 key 递归过滤，
// 只保留 allowed 中实际出现的嵌套 key。allowed 中的空 map 视为接受整个子树。
func FilterTree(src, allowed map[string]any) map[string]any {
	out := make(map[string]any)
	for key, value := range src {
		allowedValue, ok := allowed[key]
		if !ok {
			continue
		}

		srcMap, srcIsMap := value.(map[string]any)
		allowedMap, allowedIsMap := allowedValue.(map[string]any)
		if srcIsMap && allowedIsMap && len(allowedMap) > 0 {
			out[key] = FilterTree(srcMap, allowedMap)

			continue
		}
		out[key] = cloneValue(value)
	}

	return out
}

// Keys 返回 m 的顶层 key，按字典序排列。
func Keys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return keys
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}

func getByPath(src map[string]any, path string) (any, bool) {
	current := src
	parts := strings.Split(path, ".")
	for i, part := range parts {
		value, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return value, true
		}
		current, ok = value.(map[string]any)
		if !ok {
			return nil, false
		}
	}

	return nil, false
}

func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for i, part := range parts {
		if i == len(parts)-1 {
			current[part] = value

			return
		}

		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
}

// scalarKeys 返回值为非 nil 标量（或列表）的叶子 key 的点号路径。
// nil 与空 map 没有可供环境变量转换的类型，不参与绑定。
func scalarKeys(data map[string]any) []string {
	keys := make([]string, 0)
	for _, key := range flattenMapKeys(data) {
		value, _ := getByPath(data, key)
		if _, isMap := value.(map[string]any); value == nil || isMap {
			continue
		}
		keys = append(keys, key)
	}

	return keys
}

// flattenMapKeys 返回所有叶子 key 的点号路径，空 map 视为叶子。
func flattenMapKeys(data map[string]any) []string {
	var keys []string
	flattenMapKeysRecursive(data, "", &keys)
	slices.Sort(keys)

	return keys
}

func flattenMapKeysRecursive(data map[string]any, prefix string, keys *[]string) {
	for key, value := range data {
		fullKey := joinPath(prefix, key)
		if child, ok := value.(map[string]any); ok && len(child) > 0 {
			flattenMapKeysRecursive(child, fullKey, keys)

			continue
		}

		*keys = append(*keys, fullKey)
	}
}

func normalizeMapKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[key] = normalizeMapKeys(value)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprintf("%v", key)] = normalizeMapKeys(value)
		}

		return out
	case []map[string]any:
		out := make([]any, len(typed))
		for i := range typed {
			out[i] = normalizeMapKeys(typed[i])
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = normalizeMapKeys(typed[i])
		}

		return typed
	default:
		return val
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// key 规范化
// ═══════════════════════════════════════════════════════════════════════════

// Snake 把名称转换为小写下划线形式，用作配置 key 与命令命名空间。
//
//	ShowConfig  → show_config
//	show-config → show_config
//	HTTPServer  → http_server
func Snake(name string) string {
	runes := []rune(strings.TrimSpace(name))
	var buf strings.Builder
	buf.Grow(len(runes) + 4)

	for i, r := range runes {
		switch {
		case r == '-' || r == ' ' || r == '.':
			buf.WriteByte('_')
		case unicode.IsUpper(r):
			if i > 0 && needsBreak(runes, i) {
				buf.WriteByte('_')
			}
			buf.WriteRune(unicode.ToLower(r))
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

func needsBreak(runes []rune, i int) bool {
	prev := runes[i-1]
	if prev == '_' || prev == '-' || prev == ' ' || prev == '.' {
		return false
	}
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}

	// "HTTPServer" 中的 S：前一个是大写，后一个是小写
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// SnakeKeys 递归转换 map 中所有 key 为 [Snake] 形式。
func SnakeKeys(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for key, value := range src {
		if child, ok := value.(map[string]any); ok {
			value = SnakeKeys(child)
		}
		out[Snake(key)] = value
	}

	return out
}

// ═══════════════════════════════════════════════════════════════════════════
// 结构体 ↔ map
// ═══════════════════════════════════════════════════════════════════════════

func configTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

func isStructType(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return typ.Kind() == reflect.Struct && typ != durationType && typ != timeType
}

func structToMap(cfg any) map[string]any {
	val := reflect.ValueOf(cfg)

	return structValueToMap(val, val.Type())
}

func structValueToMap(val reflect.Value, typ reflect.Type) map[string]any {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return map[string]any{}
		}
		val = val.Elem()
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return map[string]any{}
	}

	out := make(map[string]any)
	for i := range typ.NumField() {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}

		key := configTagName(field)
		if key == "" {
			continue
		}
		out[key] = valueToAny(val.Field(i), field.Type)
	}

	return out
}

func valueToAny(val reflect.Value, typ reflect.Type) any {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
		typ = typ.Elem()
	}
	if val.Kind() == reflect.Interface {
		if val.IsNil() {
			return nil
		}

		return normalizeMapKeys(val.Interface())
	}

	if isStructType(typ) {
		return structValueToMap(val, typ)
	}

	switch val.Kind() {
	case reflect.Slice:
		if val.IsNil() {
			return nil
		}
		out := make([]any, val.Len())
		for i := range val.Len() {
			elem := val.Index(i)
			out[i] = valueToAny(elem, elem.Type())
		}

		return out
	case reflect.Map:
		if val.IsNil() {
			return nil
		}
		out := make(map[string]any, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			key := fmt.Sprintf("%v", iter.Key().Interface())
			out[key] = valueToAny(iter.Value(), iter.Value().Type())
		}

		return out
	default:
		return val.Interface()
	}
}

func decodeConfigMap(data map[string]any, out any) error {
	conf := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Metadata:         nil,
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	}
	decoder, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
