package emit

import "strings"

// The hierarchy operations write their tokens straight through the writer
// rather than the template buffer, so their output interleaves with Emit
// calls in call order.

// indentSpaces returns the current indentation, or nothing outside pretty
// mode.
func (h *Handle) indentSpaces() string {
	if h.flags&Pretty == 0 {
		return ""
	}
	return strings.Repeat(" ", h.indent*h.indentBy)
}

func (h *Handle) prettyNL() string {
	if h.flags&Pretty != 0 {
		return "\n"
	}
	return ""
}

// jsonSeparator returns the sibling separator for the current frame and
// marks it as started.
func (h *Handle) jsonSeparator() string {
	fr := &h.stack[h.depth]
	sep := ""
	if fr.flags&frameNotFirst != 0 {
		if h.flags&Pretty != 0 {
			sep = ",\n"
		} else {
			sep = ", "
		}
	}
	fr.flags |= frameNotFirst
	return sep
}

// OpenContainer opens a named container: an XML element, a JSON object
// member, or (for text and HTML) a bare stack frame for XPath ancestry and
// close checking.
func (h *Handle) OpenContainer(name string) error {
	h = def(h)
	var err error
	switch h.style {
	case XML:
		err = h.sinkf("%s<%s>%s", h.indentSpaces(), name, h.prettyNL())
		h.depthChange(name, 1, 1, 0)
	case JSON:
		sep := h.jsonSeparator()
		err = h.sinkf("%s%s\"%s\": {%s", sep, h.indentSpaces(), name, h.prettyNL())
		h.depthChange(name, 1, 1, 0)
	default:
		h.depthChange(name, 1, 0, 0)
	}
	return err
}

// CloseContainer closes a container opened with OpenContainer.
func (h *Handle) CloseContainer(name string) error {
	h = def(h)
	var err error
	switch h.style {
	case XML:
		h.depthChange(name, -1, -1, 0)
		err = h.sinkf("%s</%s>%s", h.indentSpaces(), name, h.prettyNL())
	case JSON:
		preNL := h.prettyNL()
		ppn := ""
		if h.depth <= 1 {
			ppn = "\n"
		}
		h.depthChange(name, -1, -1, 0)
		err = h.sinkf("%s%s}%s", preNL, h.indentSpaces(), ppn)
		h.stack[h.depth].flags |= frameNotFirst
	default:
		h.depthChange(name, -1, 0, 0)
	}
	return err
}

// OpenList opens a named list. Only JSON renders lists; the other styles
// express repetition through their instances, so this is a no-op for them.
func (h *Handle) OpenList(name string) error {
	h = def(h)
	var err error
	if h.style == JSON {
		sep := h.jsonSeparator()
		err = h.sinkf("%s%s\"%s\": [%s", sep, h.indentSpaces(), name, h.prettyNL())
		h.depthChange(name, 1, 1, frameList)
	}
	return err
}

// CloseList closes a list opened with OpenList.
func (h *Handle) CloseList(name string) error {
	h = def(h)
	var err error
	if h.style == JSON {
		preNL := ""
		if h.stack[h.depth].flags&frameNotFirst != 0 {
			preNL = h.prettyNL()
		}
		h.stack[h.depth].flags |= frameNotFirst
		h.depthChange(name, -1, -1, frameList)
		err = h.sinkf("%s%s]", preNL, h.indentSpaces())
		h.stack[h.depth].flags |= frameNotFirst
	}
	return err
}

// OpenInstance opens one record of a list: a repeated XML element, an
// unnamed JSON object within the enclosing array, or a bare stack frame.
func (h *Handle) OpenInstance(name string) error {
	h = def(h)
	var err error
	switch h.style {
	case XML:
		err = h.sinkf("%s<%s>%s", h.indentSpaces(), name, h.prettyNL())
		h.depthChange(name, 1, 1, frameInstance)
	case JSON:
		sep := h.jsonSeparator()
		err = h.sinkf("%s%s{%s", sep, h.indentSpaces(), h.prettyNL())
		h.depthChange(name, 1, 1, frameInstance)
	default:
		h.depthChange(name, 1, 0, frameInstance)
	}
	return err
}

// CloseInstance closes an instance opened with OpenInstance.
func (h *Handle) CloseInstance(name string) error {
	h = def(h)
	var err error
	switch h.style {
	case XML:
		h.depthChange(name, -1, -1, frameInstance)
		err = h.sinkf("%s</%s>%s", h.indentSpaces(), name, h.prettyNL())
	case JSON:
		preNL := h.prettyNL()
		h.depthChange(name, -1, -1, frameInstance)
		err = h.sinkf("%s%s}", preNL, h.indentSpaces())
		h.stack[h.depth].flags |= frameNotFirst
	default:
		h.depthChange(name, -1, 0, frameInstance)
	}
	return err
}
