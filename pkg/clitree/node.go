package clitree

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// RunFunc 是命令的执行入口，接收解析后的选项与剩余参数。
type RunFunc func(ctx context.Context, opts *OptionValues, args []string) error

// Node 是子命令树中的一个节点。
//
// 树在启动阶段声明一次，经 [Node.Generate] 绑定解析器后只读；
// 唯一的例外是每次 [Node.Parse] 重新生成的选项值。
type Node struct {
	// Name 是用户输入的命令名，在兄弟节点中唯一。
	Name string

	// Description 显示在父命令的子命令列表与本命令帮助的开头。
	Description string

	// Flags 按声明顺序排列，只影响帮助中的顺序。
	Flags []*Flag

	// Commands 是子命令。
	Commands []*Node

	// Run 为 nil 时，调度器返回该节点而不执行。
	Run RunFunc

	options *OptionValues
	flagSet *pflag.FlagSet
	path    []string
	addHelp bool
	output  io.Writer
}

// NewNode 创建一个命令节点。
func NewNode(name string) *Node {
	return &Node{Name: name, options: NewOptionValues()}
}

// On 声明一个 flag 并返回它。
//
// short 超过一个字符且 description 为空时，参数依次前移：
// short 作为长名称，long 作为描述。声明不合法时 panic，
// 与 pflag 对重复定义的处理方式一致；需要 error 时使用 [NewFlag] 与 [Node.AddFlag]。
func (n *Node) On(short, long, description string, opts ...FlagOption) *Flag {
	if description == "" && len([]rune(strings.TrimLeft(short, "-"))) > 1 {
		short, long, description = "", short, long
	}

	base := []FlagOption{WithShort(short), WithDescription(description)}
	f, err := NewFlag(long, append(base, opts...)...)
	if err != nil {
		panic(err)
	}
	n.Flags = append(n.Flags, f)

	return f
}

// AddFlag 追加已创建的 flag。
func (n *Node) AddFlag(f *Flag) *Node {
	n.Flags = append(n.Flags, f)

	return n
}

// Command 追加一个子命令，setup 非 nil 时用于声明其 flag、描述与子命令。
func (n *Node) Command(name string, setup func(*Node)) *Node {
	child := NewNode(name)
	if setup != nil {
		setup(child)
	}
	n.Commands = append(n.Commands, child)

	return child
}

// SetOutput 设置帮助输出位置，默认 os.Stderr。Generate 时子节点继承父节点的设置。
func (n *Node) SetOutput(w io.Writer) {
	n.output = w
}

// Options 返回最近一次 Parse 的结果。
func (n *Node) Options() *OptionValues {
	return n.options
}

// Path 返回从根开始的完整命令路径，Generate 之前只有自身名称。
func (n *Node) Path() string {
	if len(n.path) == 0 {
		return n.Name
	}

	return strings.Join(n.path, " ")
}

// Generated 报告节点是否已经绑定解析器。
func (n *Node) Generated() bool {
	return n.flagSet != nil
}

// Generate 深度优先遍历子树，为每个节点绑定解析器，返回完整路径到节点的映射。
//
// parents 是祖先命令名；addHelp 为 true 时每个节点注册 -h/--help。
func (n *Node) Generate(parents []string, addHelp bool) (map[string]*Node, error) {
	out := n.output
	if out == nil {
		out = os.Stderr
	}
	table := make(map[string]*Node)
	if err := n.generate(parents, addHelp, out, map[*Node]bool{}, table); err != nil {
		return nil, err
	}

	return table, nil
}

func (n *Node) generate(parents []string, addHelp bool, out io.Writer, ancestors map[*Node]bool, table map[string]*Node) error {
	if n.Name == "" || strings.ContainsAny(n.Name, " \t\n") {
		return fmt.Errorf("clitree: invalid command name %q", n.Name)
	}
	if ancestors[n] {
		return fmt.Errorf("%w: %s", ErrCommandCycle, strings.Join(append(parents, n.Name), " "))
	}
	ancestors[n] = true
	defer delete(ancestors, n)

	n.path = append(slices.Clone(parents), n.Name)
	n.addHelp = addHelp
	if n.output == nil {
		n.output = out
	}

	fs, err := n.newFlagSet(new(bool))
	if err != nil {
		return err
	}
	n.flagSet = fs

	seen := make(map[string]bool, len(n.Commands))
	for _, child := range n.Commands {
		if seen[child.Name] {
			return fmt.Errorf("%w: %q under %q", ErrDuplicateCommand, child.Name, n.Path())
		}
		seen[child.Name] = true

		if err := child.generate(n.path, addHelp, n.output, ancestors, table); err != nil {
			return err
		}
	}

	table[n.Path()] = n

	return nil
}

// newFlagSet 构建一个新的 pflag.FlagSet；help 记录 -h/--help 是否出现。
func (n *Node) newFlagSet(help *bool) (*pflag.FlagSet, error) {
	fs := pflag.NewFlagSet(n.Path(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	for _, f := range n.Flags {
		if fs.Lookup(f.Name()) != nil {
			return nil, fmt.Errorf("%w: --%s declared twice on %q", ErrInvalidFlag, f.Name(), n.Path())
		}
		if f.ShortName != "" && fs.ShorthandLookup(f.ShortName) != nil {
			return nil, fmt.Errorf("%w: -%s declared twice on %q", ErrInvalidFlag, f.ShortName, n.Path())
		}

		value := &flagValue{flag: f}
		pf := fs.VarPF(value, f.Name(), f.ShortName, f.Description)
		if f.Boolean() {
			pf.NoOptDefVal = "true"
		}
		if f.Default != nil {
			pf.DefValue = fmt.Sprint(f.Default)
		}
	}

	if n.addHelp && fs.Lookup("help") == nil {
		short := "h"
		if fs.ShorthandLookup(short) != nil {
			short = ""
		}
		fs.BoolVarP(help, "help", short, false, "Display help information")
	}

	return fs, nil
}

// Parse 解析 args 中的 flag。
//
// 先写入每个 flag 的默认值（没有默认值的跳过），再把实际出现的 flag
// 记录为显式值。返回选项与未被消费的参数；"--" 分隔符保留在原位置。
// 出现 -h/--help 时输出帮助并返回 [ErrHelp]。
func (n *Node) Parse(args []string) (*OptionValues, []string, error) {
	if n.flagSet == nil {
		return nil, nil, ErrParserNotGenerated
	}

	values := NewOptionValues()
	for _, f := range n.Flags {
		if f.Default != nil {
			values.SetDefault(f.OptionName(), f.Default)
		}
	}
	n.options = values

	var help bool
	fs, err := n.newFlagSet(&help)
	if err != nil {
		return nil, nil, err
	}

	if err := fs.Parse(args); err != nil {
		switch {
		case errors.Is(err, pflag.ErrHelp):
			// 关闭帮助后 pflag 仍把 -h/--help 报告为 ErrHelp
			return nil, nil, fmt.Errorf("%s: %w: -h/--help (help is disabled)", n.Path(), ErrUnknownFlag)
		case strings.HasPrefix(err.Error(), "unknown "):
			return nil, nil, fmt.Errorf("%s: %w (%v)", n.Path(), ErrUnknownFlag, err)
		default:
			return nil, nil, fmt.Errorf("%s: %w", n.Path(), err)
		}
	}
	if help {
		_, _ = io.WriteString(n.output, n.Help())

		return nil, nil, ErrHelp
	}

	fs.Visit(func(pf *pflag.Flag) {
		if value, ok := pf.Value.(*flagValue); ok {
			values.Set(value.flag.OptionName(), value.value)
		}
	})

	rest := fs.Args()
	if at := fs.ArgsLenAtDash(); at >= 0 {
		rest = slices.Insert(slices.Clone(rest), at, "--")
	}

	return values, rest, nil
}

// Help 返回帮助文本：用法、描述、flag 列表与直接子命令列表。
func (n *Node) Help() string {
	var b strings.Builder

	if len(n.Commands) > 0 {
		fmt.Fprintf(&b, "Usage: %s <command> [flags]\n", n.Path())
	} else {
		fmt.Fprintf(&b, "Usage: %s [flags]\n", n.Path())
	}
	if n.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", n.Description)
	}

	fs, err := n.newFlagSet(new(bool))
	if err == nil {
		if usages := fs.FlagUsages(); usages != "" {
			fmt.Fprintf(&b, "\nFlags:\n%s", usages)
		}
	}

	if len(n.Commands) > 0 {
		b.WriteString("\nAvailable Commands:\n\n")
		tw := tabwriter.NewWriter(&b, 2, 0, 3, ' ', 0)
		for _, sub := range n.Commands {
			fmt.Fprintf(tw, "    %s\t%s\n", sub.Name, sub.Description)
		}
		_ = tw.Flush()
		b.WriteString("\nSee `<command> --help` for more information on a specific command.\n")
	}

	return b.String()
}
