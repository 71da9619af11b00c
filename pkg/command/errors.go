package command

import "errors"

var (
	// ErrUnknownArgument 表示位置参数中在 "--" 之前出现了 flag 形式的 token。
	ErrUnknownArgument = errors.New("unknown CLI option provided")

	// ErrNotImplemented 表示具体命令没有实现 Execute。
	ErrNotImplemented = errors.New("command: execute not implemented")

	// ErrConfigConflict 表示命名空间配置与顶层配置在结构上不兼容
	// （一侧是嵌套结构，另一侧是非空标量）。
	ErrConfigConflict = errors.New("command: namespaced config conflicts with top-level config")

	// ErrInvalidSpec 表示命令声明不完整，如缺少命名空间。
	ErrInvalidSpec = errors.New("command: invalid spec")
)
