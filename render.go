package emit

// The field renderers append style-appropriate tokens to the template
// buffer. Value renderers append the field's conversion specifiers as-is so
// the single host-format pass substitutes the caller's arguments in order;
// everything rendered at build time goes through escapePercent first.

// formatText renders literal text between directives. XML and JSON suppress
// it.
func (h *Handle) formatText(s string) {
	switch h.style {
	case Text:
		h.fmtbuf.appendString(escapePercent(s))
	case HTML:
		h.appendDiv("text", "", escapePercent(escapeXML(s)))
	}
}

func (h *Handle) formatLabel(s string) {
	switch h.style {
	case Text:
		h.fmtbuf.appendString(escapePercent(s))
	case HTML:
		h.appendDiv("label", "", escapePercent(escapeXML(s)))
	}
}

func (h *Handle) formatDecoration(s string) {
	switch h.style {
	case Text:
		h.fmtbuf.appendString(escapePercent(s))
	case HTML:
		h.appendDiv("decoration", "", escapePercent(escapeXML(s)))
	}
}

func (h *Handle) formatPadding(s string) {
	switch h.style {
	case Text:
		h.fmtbuf.appendString(escapePercent(s))
	case HTML:
		h.appendDiv("padding", "", escapePercent(escapeXML(s)))
	}
}

// formatTitle renders the content through the directive's print format
// immediately; titles consume no caller arguments.
func (h *Handle) formatTitle(content, format string) {
	if h.style != Text && h.style != HTML {
		return
	}
	rendered := csprintf(format, nil, []any{content})
	switch h.style {
	case Text:
		h.fmtbuf.appendString(escapePercent(rendered))
	case HTML:
		h.appendDiv("title", "", escapePercent(escapeXML(rendered)))
	}
}

// formatPrep places the JSON sibling separator for the current frame, or
// marks the frame as started.
func (h *Handle) formatPrep() {
	fr := &h.stack[h.depth]
	if fr.flags&frameNotFirst != 0 {
		h.fmtbuf.appendByte(',')
		if h.flags&Pretty != 0 {
			h.fmtbuf.appendByte('\n')
		}
	} else {
		fr.flags |= frameNotFirst
	}
}

// formatValue renders a value field. XML and JSON use the encode format when
// one was given. Hidden fields disappear from text and HTML but still
// consume their arguments.
func (h *Handle) formatValue(d directive) {
	b := &h.fmtbuf
	switch h.style {
	case Text:
		if d.flags&fieldHide != 0 {
			h.appendDiscard(d.format)
			return
		}
		b.appendString(d.format)

	case HTML:
		if d.flags&fieldHide != 0 {
			h.appendDiscard(d.format)
			return
		}
		h.appendDiv("data", d.content, escapeXML(d.format))

	case XML:
		format := d.format
		if d.encoding != "" {
			format = d.encoding
		}
		if h.flags&Pretty != 0 {
			b.appendSpaces(h.indent * h.indentBy)
		}
		name := escapePercent(d.content)
		b.appendByte('<')
		b.appendString(name)
		b.appendByte('>')
		b.appendString(format)
		b.appendString("</")
		b.appendString(name)
		b.appendByte('>')
		if h.flags&Pretty != 0 {
			b.appendByte('\n')
		}

	case JSON:
		format := d.format
		if d.encoding != "" {
			format = d.encoding
		}
		h.formatPrep()
		quote := false
		switch {
		case d.flags&fieldQuote != 0:
			quote = true
		case d.flags&fieldNoQuote != 0:
			quote = false
		case len(format) > 0 && format[len(format)-1] == 's':
			quote = true
		}
		if h.flags&Pretty != 0 {
			b.appendSpaces(h.indent * h.indentBy)
		}
		b.appendByte('"')
		b.appendString(escapePercent(d.content))
		b.appendString(`":`)
		if h.flags&Pretty != 0 {
			b.appendByte(' ')
		}
		if quote {
			b.appendByte('"')
		}
		b.appendString(format)
		if quote {
			b.appendByte('"')
		}
	}
}

// appendDiscard wraps the conversions in discard markers so the host pass
// consumes their arguments silently.
func (h *Handle) appendDiscard(format string) {
	h.fmtbuf.appendByte(discardMark)
	h.fmtbuf.appendString(format)
	h.fmtbuf.appendByte(discardMark)
}

// appendDiv writes one HTML field div. body must already be template-safe.
func (h *Handle) appendDiv(class, name, body string) {
	h.lineEnsureOpen()
	if h.flags&Pretty != 0 {
		h.fmtbuf.appendSpaces(h.indentBy)
	}
	b := &h.fmtbuf
	b.appendString(`<div class="`)
	b.appendString(class)
	if name != "" {
		b.appendString(`" data-tag="`)
		b.appendString(escapePercent(name))
	}
	if name != "" && h.flags&XPath != 0 {
		b.appendString(`" data-xpath="`)
		for i := 0; i <= h.depth; i++ {
			if h.stack[i].name == "" {
				continue
			}
			b.appendByte('/')
			b.appendString(escapePercent(h.stack[i].name))
		}
		b.appendByte('/')
		b.appendString(escapePercent(name))
	}
	if name != "" && h.flags&Info != 0 && h.info != nil {
		if e := h.infoFind(name); e != nil {
			if e.Type != "" {
				b.appendString(`" data-type="`)
				b.appendString(escapePercent(escapeXML(e.Type)))
			}
			if e.Help != "" {
				b.appendString(`" data-help="`)
				b.appendString(escapePercent(escapeXML(e.Help)))
			}
		}
	}
	b.appendString(`">`)
	b.appendString(body)
	b.appendString(`</div>`)
	if h.flags&Pretty != 0 {
		b.appendByte('\n')
	}
}

// lineEnsureOpen opens the HTML line div lazily on first content.
func (h *Handle) lineEnsureOpen() {
	if h.style != HTML || h.flags&flagDivOpen != 0 {
		return
	}
	h.flags |= flagDivOpen
	h.fmtbuf.appendString(`<div class="line">`)
	if h.flags&Pretty != 0 {
		h.fmtbuf.appendByte('\n')
	}
}

// lineClose ends the current line: HTML closes the line div, text emits the
// newline, structured styles drop it.
func (h *Handle) lineClose() {
	switch h.style {
	case HTML:
		if h.flags&flagDivOpen == 0 {
			h.lineEnsureOpen()
		}
		h.flags &^= flagDivOpen
		h.fmtbuf.appendString(`</div>`)
		if h.flags&Pretty != 0 {
			h.fmtbuf.appendByte('\n')
		}
	case Text:
		h.fmtbuf.appendByte('\n')
	}
}
