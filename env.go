package emit

import "strconv"

// optionsEnv configures the default handle at first use. Tokens are applied
// left to right: H, J, T, X select a style; P, W, I, x set Pretty, Warn,
// Info, XPath; i followed by a decimal integer sets the indent step.
const optionsEnv = "EMIT_OPTIONS"

func (h *Handle) applyOptions(opts string) {
	for i := 0; i < len(opts); i++ {
		switch opts[i] {
		case 'H':
			h.style = HTML
		case 'J':
			h.style = JSON
		case 'T':
			h.style = Text
		case 'X':
			h.style = XML
		case 'P':
			h.flags |= Pretty
		case 'W':
			h.flags |= Warn
		case 'I':
			h.flags |= Info
		case 'x':
			h.flags |= XPath
		case 'i':
			j := i + 1
			for j < len(opts) && opts[j] >= '0' && opts[j] <= '9' {
				j++
			}
			if j > i+1 {
				if n, err := strconv.Atoi(opts[i+1 : j]); err == nil {
					h.indentBy = n
				}
				i = j - 1
			}
		}
	}
}
