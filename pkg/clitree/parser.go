package clitree

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Result 是一次调度的结果。
type Result struct {
	// Node 是匹配到的命令；没有子命令匹配时为根节点。
	Node *Node
	// Options 是 Node 解析出的选项。
	Options *OptionValues
	// Args 是未被消费的参数。
	Args []string
	// Executed 报告是否调用了 Node.Run。
	Executed bool
}

// Parser 持有根命令，按最长命令路径匹配参数并调度。
type Parser struct {
	root         *Node
	generateHelp bool
}

// Option 配置 [Parser]。
type Option func(*Parser)

// WithoutHelp 不为命令注册 -h/--help。
func WithoutHelp() Option {
	return func(p *Parser) {
		p.generateHelp = false
	}
}

// WithOutput 设置帮助输出位置，默认 os.Stderr。
func WithOutput(w io.Writer) Option {
	return func(p *Parser) {
		p.root.SetOutput(w)
	}
}

// RootName 返回当前程序名，作为默认的根命令名。
func RootName() string {
	return filepath.Base(os.Args[0])
}

// New 创建 Parser，name 为空时使用 [RootName]。
func New(name string, opts ...Option) *Parser {
	if name == "" {
		name = RootName()
	}
	p := &Parser{root: NewNode(name), generateHelp: true}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse 创建 Parser，执行 setup 声明命令树，然后调度 args。
//
// args 不含程序名。
func Parse(ctx context.Context, args []string, setup func(*Parser), opts ...Option) (*Result, error) {
	p := New("", opts...)
	if setup != nil {
		setup(p)
	}

	return p.Execute(ctx, args)
}

// Root 返回根命令。
func (p *Parser) Root() *Node {
	return p.root
}

// Command 在根命令下声明子命令。
func (p *Parser) Command(name string, setup func(*Node)) *Node {
	return p.root.Command(name, setup)
}

// On 在根命令上声明 flag，参数含义同 [Node.On]。
func (p *Parser) On(short, long, description string, opts ...FlagOption) *Flag {
	return p.root.On(short, long, description, opts...)
}

// Generate 为整棵树绑定解析器，返回完整路径到节点的映射。
func (p *Parser) Generate() (map[string]*Node, error) {
	return p.root.Generate(nil, p.generateHelp)
}

// Execute 按最长命令路径调度 args（不含程序名）。
//
// 根命令名被隐式加在 args 前面。匹配到的路径按 token 比较，
// "app sub" 不会匹配 "app subx"。
//
// 只有根命令匹配时，根命令仅解析 flag（以支持 -h/--help），不会执行，
// 结果返回给调用方用于展示帮助。匹配到子命令时，去掉路径 token 后交给
// 该命令解析；命令有 Run 时执行它并返回其 error，否则返回节点供调用方检查。
func (p *Parser) Execute(ctx context.Context, args []string) (*Result, error) {
	table, err := p.Generate()
	if err != nil {
		return nil, err
	}

	tokens := append([]string{p.root.Name}, args...)
	node, depth := longestMatch(table, tokens)
	if node == nil {
		node, depth = p.root, 1
	}

	opts, rest, err := node.Parse(tokens[depth:])
	if err != nil {
		return nil, err
	}
	result := &Result{Node: node, Options: opts, Args: rest}

	if node == p.root || node.Run == nil {
		return result, nil
	}

	result.Executed = true

	return result, node.Run(ctx, opts, rest)
}

// longestMatch 返回完整路径是 tokens 前缀且 token 数最多的节点。
func longestMatch(table map[string]*Node, tokens []string) (*Node, int) {
	var best *Node
	depth := 0
	for key, node := range table {
		parts := strings.Split(key, " ")
		if len(parts) <= depth || len(parts) > len(tokens) {
			continue
		}
		if hasPrefix(tokens, parts) {
			best, depth = node, len(parts)
		}
	}

	return best, depth
}

func hasPrefix(tokens, prefix []string) bool {
	for i, part := range prefix {
		if tokens[i] != part {
			return false
		}
	}

	return true
}
