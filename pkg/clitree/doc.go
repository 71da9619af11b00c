// Package clitree 声明子命令与 flag 组成的命令树，并按最长命令路径调度参数。
//
// 与一般参数解析器不同，clitree 的 [OptionValues] 分开记录每个 key 的
// 显式值与默认值，使后续的配置合并（见 pkg/command）可以让配置文件覆盖
// flag 默认值，却永远不覆盖用户在命令行中显式给出的值。
//
// # 声明
//
//	p := clitree.New("app")
//	p.On("c", "config=PATH", "Path to configuration file")
//	p.Command("show", func(n *clitree.Node) {
//	    n.Description = "Show resolved configuration"
//	    n.On("f", "format=FORMAT", "Output format", clitree.WithDefault("yaml"))
//	    n.On("", "verbose", "Verbose output", clitree.WithDefault(false))
//	    n.Run = func(ctx context.Context, opts *clitree.OptionValues, args []string) error {
//	        return nil
//	    }
//	})
//
// 长名称以 "=" 结尾或带占位名（"format=FORMAT"）时为取值型 flag，
// 否则为开关型；[Flag.OptionName] 把 "-" 转为 "_" 作为选项 key。
//
// # 调度
//
// [Parser.Execute] 把根命令名加在参数前，找出 token 前缀匹配且最长的命令路径：
//
//	app show -f json extra   → "app show"，剩余参数 [extra]
//	app showx                → 只有根命令匹配，返回根节点不执行
//
// 每个节点的解析器由 [Node.Generate] 绑定，底层使用 pflag；
// 支持 -x、--name、--name=VALUE 与 --name VALUE。"--" 之后的参数原样保留，
// 并且 "--" 本身保留在剩余参数中。
//
// # 帮助
//
// 默认为每个命令注册 -h/--help，输出用法、flag 列表与直接子命令，
// 并返回 [ErrHelp]；调用方应以状态码 0 结束。使用 [WithoutHelp] 关闭。
package clitree
