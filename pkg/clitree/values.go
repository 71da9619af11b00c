package clitree

import (
	"fmt"
	"maps"
	"slices"
)

// OptionValues 分别记录每个 key 的显式值与默认值。
//
// 组合视图中显式值总是优先；[OptionValues.IsDefault] 回答某个 key
// 的值来自默认值还是用户输入。零值不可用，使用 [NewOptionValues] 创建。
type OptionValues struct {
	sets     map[string]any
	defaults map[string]any
}

// NewOptionValues 创建空的 OptionValues。
func NewOptionValues() *OptionValues {
	return &OptionValues{
		sets:     make(map[string]any),
		defaults: make(map[string]any),
	}
}

// Set 记录显式值，覆盖之前的显式值（不与默认值合并）。
func (o *OptionValues) Set(key string, value any) *OptionValues {
	o.sets[key] = value

	return o
}

// SetDefault 记录默认值。
func (o *OptionValues) SetDefault(key string, value any) *OptionValues {
	o.defaults[key] = value

	return o
}

// Keys 返回显式值与默认值 key 的并集，按字典序排列。
func (o *OptionValues) Keys() []string {
	keys := slices.Collect(maps.Keys(o.sets))
	for key := range o.defaults {
		if _, ok := o.sets[key]; !ok {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	return keys
}

// Has 报告 key 是否存在于任一来源。
func (o *OptionValues) Has(key string) bool {
	_, inSets := o.sets[key]
	_, inDefaults := o.defaults[key]

	return inSets || inDefaults
}

// IsDefault 报告 key 的值是否仅来自默认值。
//
// key 不存在时返回包装了 [ErrUnknownOption] 的错误。
func (o *OptionValues) IsDefault(key string) (bool, error) {
	if !o.Has(key) {
		return false, fmt.Errorf("%w '%s'", ErrUnknownOption, key)
	}
	_, explicit := o.sets[key]

	return !explicit, nil
}

// Get 返回 key 的组合值：显式值优先，否则默认值。
func (o *OptionValues) Get(key string) (any, bool) {
	if value, ok := o.sets[key]; ok {
		return value, true
	}
	value, ok := o.defaults[key]

	return value, ok
}

// Composite 返回组合视图的副本。
func (o *OptionValues) Composite() map[string]any {
	out := maps.Clone(o.defaults)
	maps.Copy(out, o.sets)

	return out
}

// Sets 返回显式值的副本。
func (o *OptionValues) Sets() map[string]any {
	return maps.Clone(o.sets)
}

// Defaults 返回默认值的副本。
func (o *OptionValues) Defaults() map[string]any {
	return maps.Clone(o.defaults)
}

func (o *OptionValues) String() string {
	return fmt.Sprintf("<OptionValues: %v | %v>", o.sets, o.defaults)
}
