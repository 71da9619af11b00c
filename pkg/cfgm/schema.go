package cfgm

import "fmt"

// Schema 描述配置的形状，相当于命令的 "配置类"。
//
// Apply 接收一层原始配置，返回按 schema 规范化后的结果：
// 可以补齐默认值、转换类型、丢弃未知 key。Apply 不得修改入参。
type Schema interface {
	Apply(data map[string]any) (map[string]any, error)
}

// Passthrough 是不做任何约束的 schema，原样返回输入的副本。
type Passthrough struct{}

// Apply 返回 data 的深拷贝。
func (Passthrough) Apply(data map[string]any) (map[string]any, error) {
	out := Clone(data)
	if out == nil {
		out = map[string]any{}
	}

	return out, nil
}

// StructSchema 以 json tag 结构体作为 schema。
//
// Apply 先把 Defaults 转为 map，再合并输入层，经 mapstructure 解码回 T，
// 最后转回 map。结构体中未声明的 key 会被丢弃，字符串形式的数字、
// 布尔值与 time.Duration 会被转换为字段类型。
type StructSchema[T any] struct {
	Defaults T
}

// Apply 实现 [Schema]。
func (s StructSchema[T]) Apply(data map[string]any) (map[string]any, error) {
	merged := DeepMerge(structToMap(s.Defaults), data)

	var cfg T
	if err := decodeConfigMap(merged, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return structToMap(cfg), nil
}

// Decode 把已解析的配置 map 解码到 T。
//
// 使用与 [StructSchema] 相同的规则（json tag、弱类型转换、Duration 字符串）。
func Decode[T any](data map[string]any) (*T, error) {
	var cfg T
	if err := decodeConfigMap(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	return &cfg, nil
}

// ToMap 把 json tag 结构体转换为嵌套 map。
func ToMap(cfg any) map[string]any {
	return structToMap(cfg)
}
