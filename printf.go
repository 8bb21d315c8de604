package emit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// discardMark brackets template regions whose conversions consume arguments
// without producing output. Hidden fields in text and HTML use it so later
// fields still receive the right arguments.
const discardMark = '\x01'

// convSpec is one parsed printf conversion.
type convSpec struct {
	flags     string
	width     int // -1 when absent
	widthStar bool
	prec      int // -1 when absent
	precStar  bool
	verb      byte
}

// parseConv reads one conversion starting at s[0] == '%'. It returns the
// spec and the number of bytes consumed; ok is false when the conversion
// runs off the end of the template.
func parseConv(s string) (cs convSpec, n int, ok bool) {
	cs.width, cs.prec = -1, -1
	i := 1
flags:
	for i < len(s) {
		switch s[i] {
		case '-', '+', ' ', '0', '#':
			cs.flags += string(s[i])
			i++
		default:
			break flags
		}
	}
	if i < len(s) && s[i] == '*' {
		cs.widthStar = true
		i++
	} else {
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			if cs.width < 0 {
				cs.width = 0
			}
			cs.width = cs.width*10 + int(s[i]-'0')
			i++
		}
	}
	if i < len(s) && s[i] == '.' {
		i++
		if i < len(s) && s[i] == '*' {
			cs.precStar = true
			i++
		} else {
			cs.prec = 0
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				cs.prec = cs.prec*10 + int(s[i]-'0')
				i++
			}
		}
	}
	// Length modifiers carry no meaning here; sizes come from the argument.
	for i < len(s) {
		switch s[i] {
		case 'h', 'l', 'z', 'j', 't':
			i++
			continue
		}
		break
	}
	if i >= len(s) {
		return cs, i, false
	}
	cs.verb = s[i]
	return cs, i + 1, true
}

// csprintf renders a printf-style template against args, consuming them left
// to right. The conversions are the classic set: s, c, d, i, u, o, x, X, b,
// f, e, E, g, G, and %%, with flags, width, precision, and '*'. escape, when
// non-nil, is applied to the result of string conversions before padding.
func csprintf(tmpl string, escape func(string) string, args []any) string {
	var out strings.Builder
	out.Grow(len(tmpl) + 32)
	ai := 0
	discard := false
	put := func(s string) {
		if !discard {
			out.WriteString(s)
		}
	}
	nextArg := func() (any, bool) {
		if ai >= len(args) {
			return nil, false
		}
		a := args[ai]
		ai++
		return a, true
	}
	for i := 0; i < len(tmpl); {
		switch c := tmpl[i]; {
		case c == discardMark:
			discard = !discard
			i++
		case c != '%':
			j := i + 1
			for j < len(tmpl) && tmpl[j] != '%' && tmpl[j] != discardMark {
				j++
			}
			put(tmpl[i:j])
			i = j
		default:
			cs, n, ok := parseConv(tmpl[i:])
			raw := tmpl[i : i+n]
			i += n
			if !ok {
				put(raw)
				continue
			}
			put(renderConv(cs, raw, escape, nextArg))
		}
	}
	return out.String()
}

func renderConv(cs convSpec, raw string, escape func(string) string, nextArg func() (any, bool)) string {
	if cs.verb == '%' {
		return "%"
	}
	width, prec := cs.width, cs.prec
	left := strings.Contains(cs.flags, "-")
	if cs.widthStar {
		if a, ok := nextArg(); ok {
			if v, vok := toInt64(a); vok {
				width = int(v)
				if width < 0 { // negative '*' width left-justifies
					left = true
					width = -width
				}
			}
		}
	}
	if cs.precStar {
		if a, ok := nextArg(); ok {
			if v, vok := toInt64(a); vok {
				prec = int(v)
			}
		}
	}
	switch cs.verb {
	case 's', 'c':
		a, ok := nextArg()
		if !ok {
			return missing(cs.verb)
		}
		var s string
		if cs.verb == 'c' {
			if v, vok := toInt64(a); vok {
				s = string(rune(v))
			} else {
				s = toString(a)
			}
		} else {
			s = toString(a)
		}
		if escape != nil {
			s = escape(s)
		}
		if prec >= 0 {
			s = runewidth.Truncate(s, prec, "")
		}
		return padString(s, width, left)
	case 'd', 'i':
		a, ok := nextArg()
		if !ok {
			return missing(cs.verb)
		}
		v, vok := toInt64(a)
		if !vok {
			return badArg(cs.verb, a)
		}
		return fmt.Sprintf(goSpec(cs, width, prec, left, 'd'), v)
	case 'u':
		a, ok := nextArg()
		if !ok {
			return missing(cs.verb)
		}
		v, vok := toUint64(a)
		if !vok {
			return badArg(cs.verb, a)
		}
		return fmt.Sprintf(goSpec(cs, width, prec, left, 'd'), v)
	case 'o', 'x', 'X', 'b':
		a, ok := nextArg()
		if !ok {
			return missing(cs.verb)
		}
		v, vok := toUint64(a)
		if !vok {
			return badArg(cs.verb, a)
		}
		return fmt.Sprintf(goSpec(cs, width, prec, left, cs.verb), v)
	case 'f', 'e', 'E', 'g', 'G':
		a, ok := nextArg()
		if !ok {
			return missing(cs.verb)
		}
		v, vok := toFloat64(a)
		if !vok {
			return badArg(cs.verb, a)
		}
		return fmt.Sprintf(goSpec(cs, width, prec, left, cs.verb), v)
	default:
		// Unknown conversions pass through untouched.
		return raw
	}
}

// goSpec rebuilds a conversion in package fmt's dialect with the '*' values
// already resolved.
func goSpec(cs convSpec, width, prec int, left bool, verb byte) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, f := range []byte("-+ 0#") {
		if strings.IndexByte(cs.flags, f) >= 0 {
			b.WriteByte(f)
		}
	}
	if left && !strings.Contains(cs.flags, "-") {
		b.WriteByte('-')
	}
	if width >= 0 {
		b.WriteString(strconv.Itoa(width))
	}
	if prec >= 0 {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(prec))
	}
	b.WriteByte(verb)
	return b.String()
}

// padString pads with spaces to the requested display width, counting wide
// runes by the columns they occupy.
func padString(s string, width int, left bool) string {
	if width <= 0 {
		return s
	}
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	pad := strings.Repeat(" ", gap)
	if left {
		return s + pad
	}
	return pad + s
}

func missing(verb byte) string {
	return "%!" + string(verb) + "(MISSING)"
}

func badArg(verb byte, a any) string {
	return fmt.Sprintf("%%!%c(%T=%v)", verb, a, a)
}

func toString(a any) string {
	switch v := a.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	default:
		return fmt.Sprint(a)
	}
}

func toInt64(a any) (int64, bool) {
	switch v := a.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case uintptr:
		return int64(v), true
	}
	return 0, false
}

// toUint64 reinterprets negative signed values at the width of their type,
// matching what a C unsigned conversion would print.
func toUint64(a any) (uint64, bool) {
	switch v := a.(type) {
	case int:
		return uint64(uint(v)), true
	case int8:
		return uint64(uint8(v)), true
	case int16:
		return uint64(uint16(v)), true
	case int32:
		return uint64(uint32(v)), true
	case int64:
		return uint64(v), true
	case uint:
		return uint64(v), true
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case uintptr:
		return uint64(v), true
	}
	return 0, false
}

func toFloat64(a any) (float64, bool) {
	switch v := a.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	if v, ok := toInt64(a); ok {
		return float64(v), true
	}
	return 0, false
}
