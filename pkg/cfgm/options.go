package cfgm

import "github.com/lwmacct/251207-go-pkg-clikit/pkg/templexp"

// options 配置文件加载选项。
type options struct {
	noTemplateExpansion bool          // 是否禁用模板展开（默认启用）
	vars                templexp.Vars // 模板展开使用的变量表，nil 表示读取进程环境
}

// Option 配置文件加载选项函数。
type Option func(*options)

// WithoutTemplateExpansion 禁用配置文件的模板展开。
//
// 默认会执行 Shell 参数展开（如 ${VAR:-default}），
// 该选项会保留原始 ${...} 字符串。
func WithoutTemplateExpansion() Option {
	return func(o *options) {
		o.noTemplateExpansion = true
	}
}

// WithVars 指定模板展开使用的变量表，代替进程环境变量。
//
// 主要用于测试与隔离场景；展开过程中的 ":=" 赋值会写入 vars。
func WithVars(vars templexp.Vars) Option {
	return func(o *options) {
		o.vars = vars
	}
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return o
}
