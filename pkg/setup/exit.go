package setup

import (
	"errors"
	"fmt"

	"github.com/lwmacct/251207-go-pkg-clikit/pkg/clitree"
)

// ExitCoder 由声明了退出码的错误实现。
type ExitCoder interface {
	ExitCode() int
}

// ExitError 携带退出码。Err 为 nil 时不输出错误信息，
// 用于命令已经自行输出、只需要非零退出码的场景。
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}

	return e.Err.Error()
}

// ExitCode 返回退出码。
func (e *ExitError) ExitCode() int {
	return e.Code
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exit 用 code 包装 err。
func Exit(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

// ExitCode 返回 err 对应的进程退出码：
// nil 与 [clitree.ErrHelp] 为 0，实现 [ExitCoder] 时使用其退出码，其余为 1。
func ExitCode(err error) int {
	if err == nil || errors.Is(err, clitree.ErrHelp) {
		return 0
	}

	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}

	return 1
}

// silent 报告 err 是否只是一个不带信息的退出码。
func silent(err error) bool {
	var exitErr *ExitError

	return errors.As(err, &exitErr) && exitErr.Err == nil
}
