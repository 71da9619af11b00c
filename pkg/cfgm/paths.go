package cfgm

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// appName 可选，提供后会追加应用专属路径。
// 返回顺序即查找顺序，先命中的文件生效，可直接作为命令的候选配置文件列表。
//
// 优先级 (从高到低)：
//  1. ./.appname.yaml - 当前目录应用配置
//  2. ~/.appname.yaml - 用户主目录配置
//  3. /etc/appname/config.yaml - 系统级配置
//  4. config.yaml - 当前目录通用配置
//  5. config/config.yaml - 子目录通用配置
func DefaultPaths(appName ...string) []string {
	var paths []string

	if len(appName) > 0 && appName[0] != "" {
		name := appName[0]
		paths = append(paths,
			"."+name+".yaml",
			"~/."+name+".yaml",
			"/etc/"+name+"/config.yaml",
		)
	}

	return append(paths, "config.yaml", "config/config.yaml")
}

// ExpandPath 展开开头的 "~" 并转换为绝对路径。
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	return filepath.Abs(path)
}

// FindFile 返回候选列表中第一个存在的普通文件（已展开为绝对路径）。
//
// 无法展开或不存在的候选会被跳过；全部未命中时返回 false。
func FindFile(candidates ...string) (string, bool) {
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		full, err := ExpandPath(candidate)
		if err != nil {
			continue
		}
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			return full, true
		}
	}

	return "", false
}
