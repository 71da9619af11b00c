// Package setup 以统一的方式运行命令行程序：捕获 SIGINT/SIGTERM、
// 输出错误并换算为进程退出码。
//
//	func main() {
//		os.Exit(setup.Run(context.Background(), run))
//	}
package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/lwmacct/251207-go-pkg-clikit/pkg/ui"
)

// Reporter 输出错误与调试信息，*ui.UI 实现了该接口。
type Reporter interface {
	Error(msg string, opts ...ui.PrintOption)
	Debug(msg string, opts ...ui.PrintOption)
}

type options struct {
	reporter     Reporter
	errOut       io.Writer
	exitOnSignal bool
	exit         func(int)
	lookup       func(string) (string, bool)
	signals      []os.Signal
}

// Option 配置 [Run]。
type Option func(*options)

// WithReporter 通过 r 输出错误；未设置时以 "ERROR: " 前缀写入错误输出。
func WithReporter(r Reporter) Option {
	return func(o *options) {
		o.reporter = r
	}
}

// WithErrorOutput 设置没有 Reporter 时的错误输出位置，默认 os.Stderr。
func WithErrorOutput(w io.Writer) Option {
	return func(o *options) {
		o.errOut = w
	}
}

// ExitOnSignal 收到信号时立即以 0 退出，而不是取消 context 等待程序返回。
func ExitOnSignal() Option {
	return func(o *options) {
		o.exitOnSignal = true
	}
}

// WithExit 替换 ExitOnSignal 使用的退出函数，默认 os.Exit。
func WithExit(exit func(int)) Option {
	return func(o *options) {
		o.exit = exit
	}
}

// WithEnv 指定读取 DEBUG / DEBUG_BACKTRACE 的函数，默认 os.LookupEnv。
func WithEnv(lookup func(string) (string, bool)) Option {
	return func(o *options) {
		o.lookup = lookup
	}
}

// Run 在收到 SIGINT/SIGTERM 时取消的 context 中执行 fn，返回进程退出码。
//
// fn 返回错误时输出错误信息；设置 DEBUG 时额外输出错误链，
// 设置 DEBUG_BACKTRACE 时再输出 goroutine 栈。退出码见 [ExitCode]。
func Run(ctx context.Context, fn func(context.Context) error, opts ...Option) int {
	o := &options{
		errOut:  os.Stderr,
		exit:    os.Exit,
		lookup:  os.LookupEnv,
		signals: []os.Signal{os.Interrupt, syscall.SIGTERM},
	}
	for _, opt := range opts {
		opt(o)
	}

	sigCtx, stop := signal.NotifyContext(ctx, o.signals...)
	defer stop()

	done := make(chan struct{})
	defer close(done)
	if o.exitOnSignal {
		go func() {
			select {
			case <-sigCtx.Done():
				if ctx.Err() == nil {
					slog.Debug("Received signal, exiting")
					o.exit(0)
				}
			case <-done:
			}
		}()
	}

	err := fn(sigCtx)
	code := ExitCode(err)
	if err != nil && code != 0 {
		o.report(err)
	}

	return code
}

func (o *options) report(err error) {
	if !silent(err) {
		o.writeError(err.Error())
	}

	if !o.env("DEBUG") {
		return
	}
	o.writeDebug("Error chain:\n" + chain(err))
	if o.env("DEBUG_BACKTRACE") {
		o.writeDebug("Stacktrace:\n" + string(debug.Stack()))
	}
}

func (o *options) env(key string) bool {
	value, ok := o.lookup(key)

	return ok && value != ""
}

func (o *options) writeError(msg string) {
	if o.reporter != nil {
		o.reporter.Error(msg)

		return
	}
	_, _ = fmt.Fprintf(o.errOut, "ERROR: %s\n", msg)
}

func (o *options) writeDebug(msg string) {
	if o.reporter != nil {
		o.reporter.Debug(msg)

		return
	}
	_, _ = fmt.Fprintf(o.errOut, "DEBUG: %s\n", msg)
}

// chain 逐层列出错误类型与信息，errors.Join 的分支按顺序展开。
func chain(err error) string {
	var b strings.Builder
	var walk func(err error, depth int)
	walk = func(err error, depth int) {
		if err == nil {
			return
		}
		fmt.Fprintf(&b, "%s%T: %v\n", strings.Repeat("  ", depth), err, err)

		switch x := err.(type) {
		case interface{ Unwrap() []error }:
			for _, e := range x.Unwrap() {
				walk(e, depth+1)
			}
		default:
			walk(errors.Unwrap(err), depth+1)
		}
	}
	walk(err, 0)

	return strings.TrimSuffix(b.String(), "\n")
}
