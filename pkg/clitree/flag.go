package clitree

import (
	"fmt"
	"strings"
)

// FlagCallback 在 flag 从参数中解析到时被调用。
//
// value 为解析后的值：开关型 flag 为 bool，取值型 flag 为 string。
// 返回的 error 会中止本次解析。
type FlagCallback func(value any) error

// Flag 描述一个命令行开关。
//
// LongName 以 "=" 结尾（"config="）或带有取值占位（"config=PATH"）时为取值型，
// 否则为开关型。
type Flag struct {
	ShortName   string
	LongName    string
	Description string
	Default     any
	Callback    FlagCallback
}

// FlagOption 配置 [NewFlag] 创建的 flag。
type FlagOption func(*Flag)

// WithDefault 设置默认值。nil 表示没有默认值。
func WithDefault(value any) FlagOption {
	return func(f *Flag) {
		f.Default = value
	}
}

// WithCallback 设置 flag 被解析到时调用的回调。
func WithCallback(fn FlagCallback) FlagOption {
	return func(f *Flag) {
		f.Callback = fn
	}
}

// WithShort 设置短名称，可带前导 "-"。
func WithShort(short string) FlagOption {
	return func(f *Flag) {
		f.ShortName = short
	}
}

// WithDescription 设置描述文本。
func WithDescription(description string) FlagOption {
	return func(f *Flag) {
		f.Description = description
	}
}

// NewFlag 创建并规范化一个 flag。
//
// 长名称去掉前导 "-"，"_" 转为 "-"；短名称去掉前导 "-" 后必须恰好一个字符。
func NewFlag(long string, opts ...FlagOption) (*Flag, error) {
	f := &Flag{LongName: long}
	for _, opt := range opts {
		opt(f)
	}

	f.LongName = strings.ReplaceAll(strings.TrimLeft(f.LongName, "-"), "_", "-")
	if f.LongName == "" || strings.HasPrefix(f.LongName, "=") {
		return nil, fmt.Errorf("%w: long name required (flag: %q)", ErrInvalidFlag, long)
	}

	f.ShortName = strings.TrimPrefix(f.ShortName, "-")
	if len(f.ShortName) > 1 {
		return nil, fmt.Errorf("%w: short name must be single character (flag: %s)", ErrInvalidFlag, f.ShortName)
	}

	return f, nil
}

// Name 返回去掉取值标记后的长名称，即命令行中 "--" 之后的部分。
func (f *Flag) Name() string {
	name, _, _ := strings.Cut(f.LongName, "=")

	return name
}

// OptionName 返回 flag 在 [OptionValues] 中的 key："-" 转为 "_"。
func (f *Flag) OptionName() string {
	return strings.ReplaceAll(f.Name(), "-", "_")
}

// Boolean 报告 flag 是否为开关型（长名称中没有取值标记）。
func (f *Flag) Boolean() bool {
	return !strings.Contains(f.LongName, "=")
}

// Metavar 返回取值型 flag 在帮助中显示的占位名，默认 "VALUE"。
func (f *Flag) Metavar() string {
	_, metavar, _ := strings.Cut(f.LongName, "=")
	if metavar == "" {
		return "VALUE"
	}

	return metavar
}
