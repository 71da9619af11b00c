// Author: lwmacct (https://github.com/lwmacct)
package cfgm_test

import (
	"fmt"

	"github.com/lwmacct/251207-go-pkg-clikit/pkg/cfgm"
)

// Example_defaultPaths 演示 DefaultPaths 的搜索顺序。
func Example_defaultPaths() {
	fmt.Println(cfgm.DefaultPaths())
	fmt.Println(cfgm.DefaultPaths("myapp"))

	// Output:
	// [config.yaml config/config.yaml]
	// [.myapp.yaml ~/.myapp.yaml /etc/myapp/config.yaml config.yaml config/config.yaml]
}

// Example_deepMerge 演示逐层深度合并：后者优先，嵌套 map 逐 key 合并。
func Example_deepMerge() {
	merged := cfgm.DeepMerge(
		map[string]any{"item": "DEFAULT", "server": map[string]any{"addr": ":80", "tls": false}},
		map[string]any{"item": "thing"},
		map[string]any{"server": map[string]any{"tls": true}},
	)
	fmt.Println(merged["item"], merged["server"])

	// Output:
	// thing map[addr::80 tls:true]
}
