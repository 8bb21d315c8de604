package emit

import "strings"

// Emit renders one format string. Literal text and {...} directives build a
// composite template in the handle's style; a single host-format pass then
// substitutes the arguments in order and the result is flushed through the
// writer. {{ and }} escape literal braces. A directive cut short by the end
// of the string parses as if the closing brace were present.
func (h *Handle) Emit(format string, args ...any) error {
	h = def(h)
	h.fmtbuf.reset()

	for i := 0; i < len(format); {
		switch {
		case format[i] == '\n':
			h.lineClose()
			i++

		case format[i] == '{' && i+1 < len(format) && format[i+1] == '{':
			rest := format[i+2:]
			if j := strings.Index(rest, "}}"); j >= 0 {
				h.formatText("{" + rest[:j] + "}")
				i += 2 + j + 2
			} else {
				h.formatText("{" + rest)
				i = len(format)
			}

		case format[i] == '{':
			end := i + 1
			for end < len(format) && format[end] != '}' {
				end++
			}
			body := format[i+1 : end]
			if h.formatter != nil {
				if s := h.formatter(h, body); s != "" {
					body = s
				}
			}
			h.runDirective(body, format)
			if end < len(format) {
				end++
			}
			i = end

		default:
			j := i
			for j < len(format) && format[j] != '{' && format[j] != '\n' {
				j++
			}
			h.formatText(format[i:j])
			i = j
		}
	}

	out := csprintf(h.fmtbuf.String(), h.escaper(), args)
	return h.write(out)
}

func (h *Handle) runDirective(body, format string) {
	d := h.parseDirective(body, format)
	switch d.role {
	case 'T':
		h.formatTitle(d.content, d.format)
	case 'L':
		h.formatLabel(d.content)
	case 'D':
		h.formatDecoration(d.content)
	case 'P':
		h.formatPadding(d.content)
	default: // no role, or 'V'
		h.formatValue(d)
	}
	if d.flags&fieldColon != 0 {
		h.formatDecoration(":")
	}
	if d.flags&fieldWS != 0 {
		h.formatPadding(" ")
	}
}
