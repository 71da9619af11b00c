// Package command 为具体命令解析最终配置。
//
// 一次调用的配置由四层合并得到 (从低到高)：
//  1. 配置类 ([cfgm.Schema]) 应用后的 flag 默认值
//  2. 配置文件 (显式 config 选项或 Spec.ConfigFiles 中第一个存在的文件)
//  3. 环境变量 (Spec.EnvPrefix 非空时)
//  4. 用户显式提供的选项
//
// 之后命令命名空间下的配置块覆盖到顶层，得到 [Command.Config]。
//
// 具体命令嵌入 *Command 并实现 Execute：
//
//	type Show struct{ *command.Command }
//
//	func (s *Show) Execute(ctx context.Context) error {
//		return s.RunAction("Rendering", func() (any, error) {
//			return s.Config(), nil
//		})
//	}
package command
