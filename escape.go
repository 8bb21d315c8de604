package emit

import (
	"strings"

	"github.com/goccy/go-json"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// escapeXML escapes the characters that may not appear raw in XML and HTML
// element content or attribute values.
func escapeXML(s string) string {
	if !strings.ContainsAny(s, `&<>"`) {
		return s
	}
	return xmlEscaper.Replace(s)
}

// escapeJSON escapes a string for inclusion inside a JSON string literal.
// The codec does the work; the surrounding quotes come from the renderer.
func escapeJSON(s string) string {
	b, err := json.Marshal(s)
	if err != nil || len(b) < 2 {
		return s
	}
	return string(b[1 : len(b)-1])
}

// escapePercent doubles percent signs so already-rendered text survives the
// host format pass verbatim.
func escapePercent(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	return strings.ReplaceAll(s, "%", "%%")
}

// escaper returns the transform applied to string conversion operands for
// the handle's style. Text output is never escaped.
func (h *Handle) escaper() func(string) string {
	switch h.style {
	case XML, HTML:
		return escapeXML
	case JSON:
		return escapeJSON
	}
	return nil
}
