package templexp

import (
	"fmt"
	"os"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// 变量来源
// ═══════════════════════════════════════════════════════════════════════════

// Vars 是一次展开过程使用的变量表。
//
// ":=" 赋值只写入这张表，不会修改进程环境。
type Vars map[string]string

// EnvVars 生成当前进程环境变量的快照。
func EnvVars() Vars {
	vars := make(Vars)
	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if ok {
			vars[name] = value
		}
	}

	return vars
}

// ═══════════════════════════════════════════════════════════════════════════
// 表达式解析
// ═══════════════════════════════════════════════════════════════════════════

// expression 表示 ${...} 内部的一条参数展开表达式。
type expression struct {
	name  string
	op    string // "", "-", ":-", "+", ":+", "?", ":?", "=", ":="
	word  string
	colon bool // 带冒号的运算符把空值视为未设置
}

func isNameStart(ch byte) bool {
	return ch == '_' || (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

func isNameChar(ch byte) bool {
	return isNameStart(ch) || (ch >= '0' && ch <= '9')
}

func parseExpression(expr string) (expression, bool) {
	if expr == "" || !isNameStart(expr[0]) {
		return expression{}, false
	}

	end := 1
	for end < len(expr) && isNameChar(expr[end]) {
		end++
	}

	e := expression{name: expr[:end]}
	rest := expr[end:]
	if rest == "" {
		return e, true
	}

	if rest[0] == ':' {
		e.colon = true
		rest = rest[1:]
	}
	if rest == "" || !strings.ContainsRune("-+?=", rune(rest[0])) {
		return expression{}, false
	}
	e.op = rest[:1]
	e.word = rest[1:]

	return e, true
}

// ═══════════════════════════════════════════════════════════════════════════
// 表达式求值
// ═══════════════════════════════════════════════════════════════════════════

func (e expression) eval(vars Vars) (string, error) {
	val, isSet := vars[e.name]
	// 带冒号时空值等价于未设置
	present := isSet && (!e.colon || val != "")

	switch e.op {
	case "":
		return val, nil
	case "-":
		if present {
			return val, nil
		}
		return expandWord(e.word, vars)
	case "+":
		if !present {
			return "", nil
		}
		return expandWord(e.word, vars)
	case "?":
		if present {
			return val, nil
		}
		if e.word == "" {
			return "", fmt.Errorf("templexp: %s: parameter null or not set", e.name)
		}
		return "", fmt.Errorf("templexp: %s: %s", e.name, e.word)
	case "=":
		if present {
			return val, nil
		}
		expanded, err := expandWord(e.word, vars)
		if err != nil {
			return "", err
		}
		vars[e.name] = expanded

		return expanded, nil
	}

	return "", fmt.Errorf("templexp: unsupported operator %q", e.op)
}

func expandWord(word string, vars Vars) (string, error) {
	if !strings.Contains(word, "${") {
		return word, nil
	}

	return expand(word, vars)
}

// ═══════════════════════════════════════════════════════════════════════════
// 文本扫描
// ═══════════════════════════════════════════════════════════════════════════

func expand(text string, vars Vars) (string, error) {
	var buf strings.Builder
	buf.Grow(len(text))

	i := 0
	for i < len(text) {
		if text[i] != '$' || i+1 >= len(text) {
			buf.WriteByte(text[i])
			i++
			continue
		}

		switch text[i+1] {
		case '$':
			buf.WriteByte('$')
			i += 2
			continue
		case '{':
		default:
			buf.WriteByte('$')
			i++
			continue
		}

		end := closingBrace(text, i+2)
		if end < 0 {
			buf.WriteByte('$')
			i++
			continue
		}

		e, ok := parseExpression(text[i+2 : end])
		if !ok {
			// 无法识别的表达式原样保留
			buf.WriteString(text[i : end+1])
			i = end + 1
			continue
		}

		value, err := e.eval(vars)
		if err != nil {
			return "", err
		}
		buf.WriteString(value)
		i = end + 1
	}

	return buf.String(), nil
}

func closingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch {
		case text[i] == '$' && i+1 < len(text) && text[i+1] == '{':
			depth++
			i++
		case text[i] == '}' && depth == 0:
			return i
		case text[i] == '}':
			depth--
		}
	}

	return -1
}

// ═══════════════════════════════════════════════════════════════════════════
// 对外入口
// ═══════════════════════════════════════════════════════════════════════════

// ExpandTemplate 使用当前环境变量快照展开 text。
//
// 支持语法：
//   - ${VAR} - 变量替换
//   - ${VAR:-default} / ${VAR-default} - fallback
//   - ${VAR:+alt} / ${VAR+alt} - 替代值
//   - ${VAR:?msg} / ${VAR?msg} - 必填校验
//   - ${VAR:=default} / ${VAR=default} - 赋值（仅作用于当前展开）
//
// 仅在必填校验失败时返回 error。
func ExpandTemplate(text string) (string, error) {
	return expand(text, EnvVars())
}

// ExpandWith 使用给定变量表展开 text。
//
// vars 为 nil 时视为空表；":=" 的赋值会写回 vars。
func ExpandWith(text string, vars Vars) (string, error) {
	if vars == nil {
		vars = Vars{}
	}

	return expand(text, vars)
}
