package command

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/251207-go-pkg-clikit/pkg/cfgm"
	"github.com/lwmacct/251207-go-pkg-clikit/pkg/clitree"
)

// Input 是调用方提供的选项，取值为 [Parsed]、[FromNode] 或 [Raw] 之一。
type Input interface {
	input()
}

// Parsed 是已解析的选项：显式值与默认值分开参与合并。
type Parsed struct {
	Values *clitree.OptionValues
}

// FromNode 使用命令节点解析位置参数，结果按 [Parsed] 处理，
// 节点未消费的参数成为命令的位置参数。节点必须已经 Generate。
type FromNode struct {
	Node *clitree.Node
}

// Raw 是普通的嵌套结构，所有值都视为显式值；key 会被转换为下划线形式。
type Raw map[string]any

func (Parsed) input()   {}
func (FromNode) input() {}
func (Raw) input()      {}

// FromCLI 把 urfave/cli 命令的 flag 转换为 [Parsed]。
//
// 通过 IsSet 区分用户显式设置的 flag 与默认值；flag 名中的 "-" 转为 "_"。
// help flag 会被跳过。
func FromCLI(cmd *cli.Command) Parsed {
	values := clitree.NewOptionValues()
	for _, flag := range cmd.Flags {
		names := flag.Names()
		if len(names) == 0 || names[0] == "help" {
			continue
		}

		name := names[0]
		key := cfgm.Snake(name)
		if cmd.IsSet(name) {
			values.Set(key, cmd.Value(name))
		} else {
			values.SetDefault(key, cmd.Value(name))
		}
	}

	return Parsed{Values: values}
}

// normalize 把 Input 转换为 (显式选项, 默认值, 位置参数)。
//
// 显式选项中的 nil 一律去除，nil 表示 "未提供"。
func normalize(in Input, args []string) (map[string]any, map[string]any, []string, error) {
	options := map[string]any{}
	defaults := map[string]any{}

	switch typed := in.(type) {
	case Parsed:
		if typed.Values != nil {
			options, defaults = splitValues(typed.Values)
		}
	case FromNode:
		values, rest, err := typed.Node.Parse(args)
		if err != nil {
			return nil, nil, nil, err
		}
		options, defaults = splitValues(values)
		args = rest
	case Raw:
		options = cfgm.SnakeKeys(typed)
	}

	return cfgm.StripNil(options), defaults, args, nil
}

func splitValues(values *clitree.OptionValues) (map[string]any, map[string]any) {
	options := values.Sets()
	defaults := make(map[string]any)
	for key, value := range values.Defaults() {
		if value == nil {
			continue
		}
		if _, explicit := options[key]; !explicit {
			defaults[key] = value
		}
	}

	return options, defaults
}
