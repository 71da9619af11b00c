package clitree

import "errors"

var (
	// ErrHelp 表示用户请求了帮助，帮助文本已输出。调用方应以成功状态结束。
	ErrHelp = errors.New("clitree: help requested")

	// ErrParserNotGenerated 表示在 Generate 之前调用了 Parse，属于编程错误。
	ErrParserNotGenerated = errors.New("clitree: must call Generate before Parse")

	// ErrUnknownOption 表示查询的 key 既不是显式值也不是默认值。
	ErrUnknownOption = errors.New("clitree: unknown option key")

	// ErrUnknownFlag 表示参数中出现了命令没有声明的 flag。
	ErrUnknownFlag = errors.New("clitree: unknown flag")

	// ErrInvalidFlag 表示 flag 声明不合法（如短名称超过一个字符）。
	ErrInvalidFlag = errors.New("clitree: invalid flag")

	// ErrCommandCycle 表示命令树中出现了自身为祖先的节点。
	ErrCommandCycle = errors.New("clitree: command tree contains a cycle")

	// ErrDuplicateCommand 表示同一父节点下存在重名子命令。
	ErrDuplicateCommand = errors.New("clitree: duplicate command name")
)
