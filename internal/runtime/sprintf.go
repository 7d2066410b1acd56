// Package runtime provides the small fixed library of helper functions
// that emitted Condition/ValueConv/PrintConv bodies call into (spec.md
// §4.C11): a Perl-flavoured sprintf, Perl pack/unpack subset, substr/index
// with Perl's negative-offset semantics, safe division, and tr///-style
// character translation. Each function is a direct behavioural port of the
// reference runtime's Rust implementation; none of it is Perl itself, only
// the slice of Perl semantics the generated conversions actually exercise.
package runtime

import (
	"fmt"
	"strconv"
	"strings"
)

// Sprintf implements the subset of Perl's sprintf used by PrintConv/ValueConv
// bodies: %d %s %x %X %o %b %e %f %g with optional width/precision/flags,
// plus Perl's "%s"x vector shortcuts are handled by the caller via
// SprintfWithStringConcatRepeat below.
func Sprintf(format string, args ...any) string {
	var b strings.Builder
	argi := 0
	nextArg := func() any {
		if argi < len(args) {
			v := args[argi]
			argi++
			return v
		}
		return nil
	}

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		j := i + 1
		for j < len(format) && strings.ContainsRune("-+ 0#", rune(format[j])) {
			j++
		}
		for j < len(format) && (format[j] >= '0' && format[j] <= '9') {
			j++
		}
		if j < len(format) && format[j] == '.' {
			j++
			for j < len(format) && format[j] >= '0' && format[j] <= '9' {
				j++
			}
		}
		if j >= len(format) {
			b.WriteByte('%')
			break
		}
		verb := format[j]
		spec := format[i : j+1]
		if verb == '%' {
			b.WriteByte('%')
			i = j
			continue
		}
		arg := nextArg()
		b.WriteString(formatOne(spec, verb, arg))
		i = j
	}
	return b.String()
}

func formatOne(spec string, verb byte, arg any) string {
	switch verb {
	case 'd', 'i':
		return fmt.Sprintf(strings.Replace(spec, string(verb), "d", 1), toInt(arg))
	case 'u':
		return fmt.Sprintf(strings.Replace(spec, "u", "d", 1), toInt(arg))
	case 's':
		return fmt.Sprintf(spec, toStr(arg))
	case 'x', 'X', 'o', 'b':
		goVerb := string(verb)
		if verb == 'b' {
			goVerb = "b"
		}
		return fmt.Sprintf(strings.Replace(spec, string(verb), goVerb, 1), toInt(arg))
	case 'e', 'E', 'f', 'F', 'g', 'G':
		return fmt.Sprintf(spec, toFloat(arg))
	case 'c':
		return string(rune(toInt(arg)))
	default:
		return spec
	}
}

func toInt(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case float64:
		return int64(n)
	case string:
		i, _ := strconv.ParseInt(n, 10, 64)
		return i
	default:
		return 0
	}
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	default:
		return 0
	}
}

func toStr(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", s)
	}
}

// SprintfWithStringConcatRepeat handles the normalizer's fused form of
// `join("", ($val) x N)` turned into repeated "%s" format specifiers —
// the generated code passes the same value N times rather than building an
// intermediate list.
func SprintfWithStringConcatRepeat(format string, value string, repeat int) string {
	args := make([]any, repeat)
	for i := range args {
		args[i] = value
	}
	return Sprintf(format, args...)
}
