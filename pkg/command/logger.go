package command

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/lwmacct/251207-go-pkg-clikit/pkg/cfgm"
)

// LevelFatal 高于 Error，默认级别下只有致命输出。
const LevelFatal = slog.Level(12)

// ParseLevel 把配置中的 log 值转换为日志级别，无法识别时返回 [LevelFatal]。
func ParseLevel(value any) slog.Level {
	name, _ := value.(string)
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return LevelFatal
	}
}

// newLogger 按最终配置创建命令日志器。
//
// config 中 debug 为真或 DEBUG 环境变量非空时使用 debug 级别，
// 否则使用 config 中 log 指定的级别。
// 输出是终端时使用文本格式，否则使用 JSON。
func newLogger(config map[string]any, w io.Writer, lookup cfgm.LookupFunc) *slog.Logger {
	level := ParseLevel(config["log"])
	if truthy(config["debug"]) {
		level = slog.LevelDebug
	} else if value, ok := lookup("DEBUG"); ok && value != "" {
		level = slog.LevelDebug
	}

	options := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if isTerminal(w) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}

	return slog.New(handler)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// truthy 只有 nil 与 false 为假。
func truthy(value any) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case bool:
		return typed
	default:
		return true
	}
}
