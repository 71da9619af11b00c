// Package ui 提供命令的终端输出：带应用名前缀的消息、颜色与错误/调试输出。
//
// UI 作为显式依赖传给需要输出的组件，不存在进程级的全局实例。
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// 常用颜色属性，直接复用 fatih/color 的定义。
const (
	Bold   = color.Bold
	Red    = color.FgRed
	Green  = color.FgGreen
	Yellow = color.FgYellow
	Blue   = color.FgBlue
)

// UI 负责一个应用的终端输出。
type UI struct {
	appName string
	out     io.Writer
	errOut  io.Writer
	colors  bool
	debug   bool
}

// Option 配置 [UI]。
type Option func(*UI)

// WithOutput 设置标准输出位置，默认 os.Stdout。
func WithOutput(w io.Writer) Option {
	return func(u *UI) {
		u.out = w
	}
}

// WithErrorOutput 设置错误、警告与调试输出位置，默认 os.Stderr。
func WithErrorOutput(w io.Writer) Option {
	return func(u *UI) {
		u.errOut = w
	}
}

// WithColors 强制开启或关闭颜色。
func WithColors(enabled bool) Option {
	return func(u *UI) {
		u.colors = enabled
	}
}

// WithDebug 开启 Debug 输出。
func WithDebug(enabled bool) Option {
	return func(u *UI) {
		u.debug = enabled
	}
}

// New 创建 UI。默认在 stdout 为终端且未设置 NO_COLOR 时启用颜色。
func New(appName string, opts ...Option) *UI {
	u := &UI{
		appName: appName,
		out:     os.Stdout,
		errOut:  os.Stderr,
		colors:  os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stdout.Fd())),
	}
	for _, opt := range opts {
		opt(u)
	}

	return u
}

// AppName 返回消息前缀中使用的应用名。
func (u *UI) AppName() string {
	return u.appName
}

// Colors 报告是否启用颜色。
func (u *UI) Colors() bool {
	return u.colors
}

// Color 按 attrs 为 text 着色；关闭颜色时原样返回。
func (u *UI) Color(text string, attrs ...color.Attribute) string {
	if !u.colors || len(attrs) == 0 {
		return text
	}
	c := color.New(attrs...)
	c.EnableColor()

	return c.Sprint(text)
}

// PrintOption 调整单条消息的输出方式。
type PrintOption func(*printConfig)

type printConfig struct {
	noNewline bool
}

// NoNewline 不在消息末尾追加换行。
func NoNewline() PrintOption {
	return func(c *printConfig) {
		c.noNewline = true
	}
}

// Info 输出 "[app]: msg"。
func (u *UI) Info(msg string, opts ...PrintOption) {
	u.write(u.out, "", msg, opts)
}

// Warn 输出警告到错误输出。
func (u *UI) Warn(msg string, opts ...PrintOption) {
	u.write(u.errOut, u.Color("[WARN]: ", Yellow, Bold), msg, opts)
}

// Error 输出错误到错误输出。
func (u *UI) Error(msg string, opts ...PrintOption) {
	u.write(u.errOut, u.Color("[ERROR]: ", Red, Bold), msg, opts)
}

// Debug 在开启调试时输出调试信息到错误输出。
func (u *UI) Debug(msg string, opts ...PrintOption) {
	if !u.debug {
		return
	}
	u.write(u.errOut, u.Color("[DEBUG]: ", Blue, Bold), msg, opts)
}

// Puts 输出拼接后的 parts 并换行，不带前缀。
func (u *UI) Puts(parts ...string) {
	_, _ = fmt.Fprintln(u.out, strings.Join(parts, ""))
}

// Print 原样输出 text。
func (u *UI) Print(text string) {
	_, _ = io.WriteString(u.out, text)
}

func (u *UI) write(w io.Writer, level, msg string, opts []PrintOption) {
	cfg := printConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	line := u.prefix() + level + msg
	if !cfg.noNewline {
		line += "\n"
	}
	_, _ = io.WriteString(w, line)
}

func (u *UI) prefix() string {
	if u.appName == "" {
		return ""
	}

	return u.Color("["+u.appName+"]", Bold) + ": "
}
