package command

import (
	"fmt"

	"github.com/lwmacct/251207-go-pkg-clikit/pkg/cfgm"
)

// loadConfig 合并配置类默认值、配置文件、环境变量与显式选项，结果写入 c.options。
//
// 每一层经配置类转换类型后，只保留该层原始数据中出现的 key（逐层嵌套），
// 配置类补齐的默认值不会越过更低层的值。
func (c *Command) loadConfig(options map[string]any, s *settings) error {
	schema := c.spec.Schema

	path, err := c.configPath(options)
	if err != nil {
		return err
	}

	known, err := schema.Apply(c.defaults)
	if err != nil {
		return fmt.Errorf("apply schema to defaults: %w", err)
	}

	if path == "" {
		env := cfgm.EnvOverlay(c.spec.EnvPrefix, known, s.lookup)
		c.options, err = schema.Apply(cfgm.DeepMerge(c.defaults, env, options))
		if err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}

		return nil
	}

	file, err := cfgm.LoadFile(path, s.loadOpts...)
	if err != nil {
		return err
	}
	c.configFile = file.Path
	delete(options, "config")

	defaultsLayer := cfgm.FilterTree(known, c.defaults)

	fileLayer, err := schema.Apply(file.Data)
	if err != nil {
		return fmt.Errorf("apply schema to %s: %w", file.Path, err)
	}
	fileLayer = cfgm.FilterTree(fileLayer, file.Data)

	env := cfgm.EnvOverlay(c.spec.EnvPrefix, known, s.lookup)

	optionsLayer, err := schema.Apply(options)
	if err != nil {
		return fmt.Errorf("apply schema to options: %w", err)
	}
	optionsLayer = cfgm.FilterTree(optionsLayer, options)

	c.options, err = schema.Apply(cfgm.DeepMerge(defaultsLayer, fileLayer, env, optionsLayer))
	if err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	return nil
}

// configPath 返回要加载的配置文件：显式 config 选项优先，其次是第一个存在的候选文件。
func (c *Command) configPath(options map[string]any) (string, error) {
	if value, ok := options["config"]; ok {
		path, isString := value.(string)
		if !isString {
			return "", fmt.Errorf("config option must be a path, got %T", value)
		}

		return path, nil
	}

	if len(c.spec.ConfigFiles) == 0 {
		return "", nil
	}
	path, _ := cfgm.FindFile(c.spec.ConfigFiles...)

	return path, nil
}
