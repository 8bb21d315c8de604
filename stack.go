package emit

// frameFlag records per-level bookkeeping as containers, lists, and
// instances nest.
type frameFlag uint8

const (
	// frameNotFirst means a sibling has already been emitted at this level,
	// so JSON prefixes the next member with a comma.
	frameNotFirst frameFlag = 1 << iota
	frameList
	frameInstance
)

type frame struct {
	flags frameFlag
	name  string // recorded only under XPath or Warn
}

// depthChange is the single push/pop point for the hierarchy stack. A push
// installs the caller's frame flags and records the name when XPath or Warn
// needs it. A pop verifies, under Warn, that the close matches the frame
// being closed; mismatches warn and the operation proceeds. A pop on an
// empty stack is skipped.
func (h *Handle) depthChange(name string, delta, indent int, flags frameFlag) {
	if delta >= 0 {
		top := h.depth + delta
		if top >= len(h.stack) {
			if h.warnEnabled() {
				h.warnf("emit: open of %q exceeds stack depth", name)
			}
			return
		}
		fr := &h.stack[top]
		fr.flags = flags
		fr.name = ""
		if name != "" && h.flags&(XPath|Warn|WarnXML) != 0 {
			fr.name = name
		}
	} else {
		if h.depth == 0 {
			if h.warnEnabled() {
				h.warnf("emit: close with empty stack: %q", name)
			}
			return
		}
		fr := &h.stack[h.depth]
		if h.warnEnabled() {
			if fr.name != "" && fr.name != name {
				h.warnf("emit: incorrect close: %q vs %q", name, fr.name)
			}
			if fr.flags&frameList != flags&frameList {
				h.warnf("emit: list close mismatch: %q", name)
			}
			if fr.flags&frameInstance != flags&frameInstance {
				h.warnf("emit: instance close mismatch: %q", name)
			}
		}
		fr.name = ""
	}
	h.depth += delta
	h.indent += indent
}
