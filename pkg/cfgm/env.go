package cfgm

import (
	"log/slog"
	"os"
	"strings"
)

// LookupFunc 按名称查找环境变量，签名与 [os.LookupEnv] 相同。
type LookupFunc func(key string) (string, bool)

// EnvOverlay 根据 known 中的 key 路径读取带前缀的环境变量，返回可合并的覆盖层。
//
// 转换规则：
//   - key 中的 "." 和 "-" 转为 "_"
//   - 转为大写
//   - 添加前缀
//
// 示例 (前缀 "APP_")：
//   - client.rev-auth-user → APP_CLIENT_REV_AUTH_USER
//   - server.idle-timeout → APP_SERVER_IDLE_TIMEOUT
//
// 只绑定 known 中非 nil 的标量 key；nil 与嵌套结构无法由字符串表示。
// 空字符串视为未设置。lookup 为 nil 时使用 [os.LookupEnv]。
func EnvOverlay(prefix string, known map[string]any, lookup LookupFunc) map[string]any {
	out := make(map[string]any)
	if prefix == "" {
		return out
	}
	if lookup == nil {
		lookup = os.LookupEnv
	}

	for envKey, configPath := range generateEnvBindings(prefix, scalarKeys(known)) {
		if val, ok := lookup(envKey); ok && val != "" {
			setByPath(out, configPath, val)
			slog.Debug("Loaded env binding", "env", envKey, "path", configPath)
		}
	}

	return out
}

// EnvName 返回 key 路径对应的环境变量名。
func EnvName(prefix, key string) string {
	return prefix + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

func generateEnvBindings(prefix string, keys []string) map[string]string {
	bindings := make(map[string]string, len(keys))
	for _, key := range keys {
		bindings[EnvName(prefix, key)] = key
	}

	return bindings
}
