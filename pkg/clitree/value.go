package clitree

import (
	"fmt"
	"strconv"
)

// flagValue 把 [Flag] 适配为 pflag.Value，在解析到时记录值并触发回调。
type flagValue struct {
	flag  *Flag
	value any
}

func (v *flagValue) String() string {
	if v.value == nil {
		return ""
	}

	return fmt.Sprint(v.value)
}

func (v *flagValue) Set(raw string) error {
	var parsed any = raw
	if v.flag.Boolean() {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		parsed = b
	}
	v.value = parsed

	if v.flag.Callback != nil {
		return v.flag.Callback(parsed)
	}

	return nil
}

// Type 决定帮助中显示的占位名；"bool" 会被 pflag 隐藏。
func (v *flagValue) Type() string {
	if v.flag.Boolean() {
		return "bool"
	}

	return v.flag.Metavar()
}
