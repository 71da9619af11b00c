package command

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/lwmacct/251207-go-pkg-clikit/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/clitree"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/ui"
)

// Spec 声明一个具体命令的配置行为。
type Spec struct {
	// Namespace 是命令自己的配置块 key，必填。
	// 会被转换为小写下划线形式，如 "ShowConfig" → "show_config"。
	Namespace string

	// AppName 用于 UI 前缀；选项 app_name 优先，都为空时使用程序名。
	AppName string

	// ConfigFiles 是没有显式 config 选项时依次尝试的候选配置文件。
	ConfigFiles []string

	// Schema 是配置类，nil 表示 [cfgm.Passthrough]。
	Schema cfgm.Schema

	// EnvPrefix 非空时，带前缀的环境变量覆盖配置文件、低于显式选项。
	EnvPrefix string
}

// Executor 是可执行的命令。具体命令嵌入 *Command 并实现自己的 Execute。
type Executor interface {
	Execute(ctx context.Context) error
}

// Command 持有一次调用的最终配置。
//
// 每次调用构造新的 Command，构造完成后只读。
type Command struct {
	spec       Spec
	namespace  string
	options    map[string]any
	defaults   map[string]any
	arguments  []string
	config     map[string]any
	configFile string
	ui         *ui.UI
	logger     *slog.Logger
}

// settings 构造选项。
type settings struct {
	ui        *ui.UI
	logOutput io.Writer
	lookup    cfgm.LookupFunc
	loadOpts  []cfgm.Option
}

// Option 配置 [New]。
type Option func(*settings)

// WithUI 指定命令使用的 UI，代替按配置自动创建的实例。
func WithUI(u *ui.UI) Option {
	return func(s *settings) {
		s.ui = u
	}
}

// WithLogOutput 设置日志输出位置，默认 os.Stderr。
func WithLogOutput(w io.Writer) Option {
	return func(s *settings) {
		s.logOutput = w
	}
}

// WithEnv 指定读取环境变量的函数（DEBUG 与 EnvPrefix 覆盖层），默认 os.LookupEnv。
func WithEnv(lookup cfgm.LookupFunc) Option {
	return func(s *settings) {
		s.lookup = lookup
	}
}

// WithLoadOptions 传递配置文件加载选项，如 [cfgm.WithoutTemplateExpansion]。
func WithLoadOptions(opts ...cfgm.Option) Option {
	return func(s *settings) {
		s.loadOpts = append(s.loadOpts, opts...)
	}
}

// New 校验位置参数并解析最终配置。
//
// 配置优先级 (从低到高)：
//  1. 配置类默认值 - 仅保留 defaults 中已有的 key
//  2. 配置文件 - 显式 config 选项或 Spec.ConfigFiles 中第一个存在的文件，仅保留文件中出现的 key
//  3. 环境变量 - Spec.EnvPrefix 非空时
//  4. 显式选项 - 仅保留调用方实际提供的 key
//
// 之后命令命名空间下的配置块再覆盖到顶层，见 [Command.Config]。
func New(spec Spec, in Input, args []string, opts ...Option) (*Command, error) {
	s := &settings{logOutput: os.Stderr, lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(s)
	}

	if strings.TrimSpace(spec.Namespace) == "" {
		return nil, fmt.Errorf("%w: namespace required", ErrInvalidSpec)
	}
	if spec.Schema == nil {
		spec.Schema = cfgm.Passthrough{}
	}

	options, defaults, args, err := normalize(in, args)
	if err != nil {
		return nil, err
	}
	if err := ValidateArguments(args); err != nil {
		return nil, err
	}

	c := &Command{
		spec:      spec,
		namespace: cfgm.Snake(spec.Namespace),
		defaults:  defaults,
		arguments: args,
	}

	if err := c.loadConfig(options, s); err != nil {
		return nil, err
	}

	c.config, err = cfgm.MergeStrict(c.options, c.Opts())
	if err != nil {
		return nil, fmt.Errorf("%w: namespace %q: %w", ErrConfigConflict, c.namespace, err)
	}

	c.ui = s.ui
	if c.ui == nil {
		c.ui = c.newUI()
	}
	c.logger = newLogger(c.config, s.logOutput, s.lookup)
	c.logger.Debug("Resolved command config",
		"namespace", c.namespace,
		"file", c.configFile,
		"keys", cfgm.Keys(c.config),
	)

	return c, nil
}

// ValidateArguments 拒绝在 "--" 之前（或没有 "--" 时）出现的 flag 形式 token。
//
// "--" 之后的参数不做检查，调用方可以借此传递以 "-" 开头的原始数据。
func ValidateArguments(list []string) error {
	idx := slices.IndexFunc(list, func(item string) bool {
		return strings.HasPrefix(item, "-")
	})
	if idx < 0 {
		return nil
	}

	marker := slices.Index(list, "--")
	if marker < 0 || idx < marker {
		return fmt.Errorf("%w `%s`", ErrUnknownArgument, list[idx])
	}

	return nil
}

// Execute 是命令的执行入口，具体命令必须覆盖它。
func (c *Command) Execute(context.Context) error {
	return fmt.Errorf("%w: %s", ErrNotImplemented, c.namespace)
}

// Namespace 返回规范化后的命名空间 key。
func (c *Command) Namespace() string {
	return c.namespace
}

// Options 返回合并后的顶层配置（不含命名空间覆盖）的副本。
func (c *Command) Options() map[string]any {
	return cfgm.Clone(c.options)
}

// Defaults 返回来自 flag 默认值的配置副本。
func (c *Command) Defaults() map[string]any {
	return cfgm.Clone(c.defaults)
}

// Arguments 返回位置参数。
func (c *Command) Arguments() []string {
	return slices.Clone(c.arguments)
}

// ConfigFile 返回加载的配置文件路径，未加载时为空。
func (c *Command) ConfigFile() string {
	return c.configFile
}

// Opts 返回命令命名空间下的配置块，去掉其中的 nil 值。
func (c *Command) Opts() map[string]any {
	block, ok := c.options[c.namespace].(map[string]any)
	if !ok {
		return map[string]any{}
	}

	out := make(map[string]any, len(block))
	for key, value := range block {
		if value != nil {
			out[key] = value
		}
	}

	return cfgm.Clone(out)
}

// Config 返回命令应读取的最终配置：顶层配置深度合并命名空间配置块，后者优先。
func (c *Command) Config() map[string]any {
	return cfgm.Clone(c.config)
}

// Get 按点号路径读取最终配置。
func (c *Command) Get(path string) (any, bool) {
	current := c.config
	parts := strings.Split(path, ".")
	for i, part := range parts {
		value, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return value, true
		}
		if current, ok = value.(map[string]any); !ok {
			return nil, false
		}
	}

	return nil, false
}

// UI 返回命令的 UI。
func (c *Command) UI() *ui.UI {
	return c.ui
}

// Logger 返回按配置调整过级别的日志器。
func (c *Command) Logger() *slog.Logger {
	return c.logger
}

// Decode 把命令的最终配置解码到 json tag 结构体。
func Decode[T any](c *Command) (*T, error) {
	return cfgm.Decode[T](c.config)
}

func (c *Command) newUI() *ui.UI {
	appName := c.spec.AppName
	if name, ok := c.options["app_name"].(string); ok && name != "" {
		appName = name
	}
	if appName == "" {
		appName = clitree.RootName()
	}

	var opts []ui.Option
	if colors, ok := c.config["colors"].(bool); ok {
		opts = append(opts, ui.WithColors(colors))
	}
	opts = append(opts, ui.WithDebug(truthy(c.config["debug"])))

	return ui.New(appName, opts...)
}
