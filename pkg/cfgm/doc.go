// Package cfgm 提供配置文件加载与分层合并的基础能力。
//
// 它是命令配置解析（见 pkg/command）的外部协作者：
// 负责把文件读成嵌套 key/value 结构、找出默认配置文件、
// 以及深度合并、去除 nil、按 key 过滤等 map 操作。
//
// # 文件格式
//
// [LoadFile] 根据扩展名选择解析器（见 [DetectFormat]）：
//   - .yaml / .yml / 其他 → YAML
//   - .json → JSON
//   - .jsonc → 允许注释与尾逗号的 JSON
//   - .toml → TOML
//   - .hcl → HCL 属性（不支持 block）
//
// 返回的 [File] 只包含文件中真实出现的 key，据此区分 "文件声明" 与 "schema 补齐"。
// 任何读取或解析失败都包装 [ErrLoad]：
//
//	file, err := cfgm.LoadFile("config.yaml")
//	if errors.Is(err, cfgm.ErrLoad) {
//	    // 文件不存在或格式错误
//	}
//
// # 模板展开
//
// 解析前默认执行 Shell 参数展开（见 pkg/templexp）：
//
//	# config.yaml
//	api_key: "${OPENAI_API_KEY}"
//	model: "${LLM_MODEL:-gpt-4}"
//
// 使用 [WithoutTemplateExpansion] 禁用，使用 [WithVars] 指定变量表。
//
// # 配置文件路径
//
// [DefaultPaths] 生成默认搜索路径，[FindFile] 返回第一个存在的文件：
//   - .myapp.yaml (当前目录)
//   - ~/.myapp.yaml (用户主目录)
//   - /etc/myapp/config.yaml (系统配置)
//   - config.yaml, config/config.yaml (通用路径)
//
// # 合并
//
// [DeepMerge] 逐层深度合并（后者优先，map 逐 key 合并）；
// [MergeStrict] 额外拒绝 map 与非空标量之间的覆盖；
// [StripNil] 递归去除 nil；[FilterKeys] 按另一层的顶层 key 过滤。
//
// # Schema
//
// [Schema] 对应命令的配置类，[Passthrough] 不做约束，
// [StructSchema] 以 json tag 结构体约束形状并补齐默认值。
//
// # 环境变量(前缀)
//
// [EnvOverlay] 为已知 key 生成前缀环境变量绑定：
//   - MYAPP_DEBUG → debug
//   - MYAPP_SERVER_URL → server.url
package cfgm
