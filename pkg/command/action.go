package command

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/lwmacct/251207-go-pkg-clikit/pkg/ui"
)

// RunAction 输出 "[app]: msg... "，执行 fn 并报告结果。
//
// 成功时输出 complete!，fn 返回的结果非 nil 且非 false 时在 "---> Results:" 下列出；
// map 结果按 key 排序逐行输出。失败时输出 error! 并原样返回 fn 的错误。
func RunAction(u *ui.UI, msg string, fn func() (any, error)) error {
	u.Info(msg+"... ", ui.NoNewline())

	result, err := fn()
	if err != nil {
		u.Puts(u.Color("error!", ui.Red, ui.Bold))

		return err
	}

	u.Puts(u.Color("complete!", ui.Green, ui.Bold))
	if !truthy(result) {
		return nil
	}

	u.Puts("---> Results:")
	rv := reflect.ValueOf(result)
	if rv.Kind() != reflect.Map {
		u.Puts(fmt.Sprint(result))

		return nil
	}

	type entry struct {
		key   string
		value any
	}
	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: fmt.Sprint(iter.Key().Interface()), value: iter.Value().Interface()})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		return cmp.Compare(a.key, b.key)
	})
	for _, e := range entries {
		u.Puts("    ", u.Color(e.key+": ", ui.Bold), fmt.Sprint(e.value))
	}

	return nil
}

// RunAction 使用命令自己的 UI 执行 [RunAction]。
func (c *Command) RunAction(msg string, fn func() (any, error)) error {
	return RunAction(c.ui, msg, fn)
}
