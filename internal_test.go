package emit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- buffer ---

func TestBufferGrowth(t *testing.T) {
	t.Parallel()
	b := newBuffer()
	assert.Equal(t, bufSize, cap(b.b))

	big := strings.Repeat("x", bufSize+100)
	b.appendString(big)
	assert.Equal(t, big, b.String())
	assert.GreaterOrEqual(t, cap(b.b), bufSize*2)
}

func TestBufferResetKeepsCapacity(t *testing.T) {
	t.Parallel()
	b := newBuffer()
	b.appendString(strings.Repeat("y", 3*bufSize))
	grown := cap(b.b)
	b.reset()
	assert.Zero(t, len(b.b))
	assert.Equal(t, grown, cap(b.b))
}

func TestBufferAppendSpaces(t *testing.T) {
	t.Parallel()
	b := newBuffer()
	b.appendSpaces(4)
	b.appendByte('x')
	b.appendSpaces(0)
	b.appendSpaces(-1)
	assert.Equal(t, "    x", b.String())
}

// --- hierarchy warnings ---

func warnHandle(style Style) (*Handle, *bytes.Buffer) {
	h := New(style, Warn)
	var warnings bytes.Buffer
	h.errw = &warnings
	h.SetWriter(&bytes.Buffer{})
	return h, &warnings
}

func TestCloseMismatchWarns(t *testing.T) {
	t.Parallel()
	h, warnings := warnHandle(Text)
	var out bytes.Buffer
	h.SetWriter(&out)

	require.NoError(t, h.OpenContainer("right"))
	require.NoError(t, h.CloseContainer("wrong"))

	assert.Equal(t, "emit: incorrect close: \"wrong\" vs \"right\"\n", warnings.String())
	assert.Empty(t, out.String(), "diagnostics must not touch the output stream")
}

func TestCloseEmptyStackWarns(t *testing.T) {
	t.Parallel()
	h, warnings := warnHandle(Text)
	require.NoError(t, h.CloseContainer("ghost"))
	assert.Contains(t, warnings.String(), "close with empty stack")
	assert.Zero(t, h.depth)
}

func TestListInstanceConfusionWarns(t *testing.T) {
	t.Parallel()

	t.Run("container closed as list", func(t *testing.T) {
		t.Parallel()
		h, warnings := warnHandle(JSON)
		h.OpenContainer("data")
		h.CloseList("data")
		assert.Contains(t, warnings.String(), "list close mismatch")
	})

	t.Run("instance closed as container", func(t *testing.T) {
		t.Parallel()
		h, warnings := warnHandle(JSON)
		h.OpenList("item")
		h.OpenInstance("item")
		h.CloseContainer("item")
		assert.Contains(t, warnings.String(), "instance close mismatch")
	})
}

func TestWarningsDisabledByDefault(t *testing.T) {
	t.Parallel()
	h := New(Text, 0)
	var warnings bytes.Buffer
	h.errw = &warnings
	h.SetWriter(&bytes.Buffer{})
	h.OpenContainer("right")
	h.CloseContainer("wrong")
	h.CloseContainer("extra")
	assert.Empty(t, warnings.String())
}

func TestBalancedDepthReturnsToZero(t *testing.T) {
	t.Parallel()
	h := New(JSON, Pretty|Warn)
	h.errw = &bytes.Buffer{}
	h.SetWriter(&bytes.Buffer{})

	h.OpenContainer("a")
	h.OpenList("b")
	h.OpenInstance("b")
	h.CloseInstance("b")
	h.CloseList("b")
	h.CloseContainer("a")

	assert.Zero(t, h.depth)
	assert.Zero(t, h.indent)
	for i := range h.stack {
		assert.Empty(t, h.stack[i].name, "frame %d keeps a stale name", i)
	}
}

func TestStackOverflowSkipsPush(t *testing.T) {
	t.Parallel()
	h := New(Text, 0)
	for i := 0; i < maxDepth+10; i++ {
		h.OpenContainer("deep")
	}
	assert.Equal(t, maxDepth-1, h.depth)
}

// --- flags ---

func TestFlagsRoundTrip(t *testing.T) {
	t.Parallel()
	h := New(Text, 0)
	before := h.flags
	h.SetFlags(Warn | Pretty)
	h.ClearFlags(Warn | Pretty)
	assert.Equal(t, before, h.flags)
}

// --- env options ---

func TestApplyOptions(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		opts       string
		wantStyle  Style
		wantFlags  Flag
		wantIndent int
	}{
		"empty":           {opts: "", wantStyle: Text, wantIndent: defaultIndentBy},
		"json pretty":     {opts: "JP", wantStyle: JSON, wantFlags: Pretty, wantIndent: defaultIndentBy},
		"html everything": {opts: "HPWIx", wantStyle: HTML, wantFlags: Pretty | Warn | Info | XPath, wantIndent: defaultIndentBy},
		"xml":             {opts: "X", wantStyle: XML, wantIndent: defaultIndentBy},
		"text wins last":  {opts: "JT", wantStyle: Text, wantIndent: defaultIndentBy},
		"indent step":     {opts: "Ji4", wantStyle: JSON, wantIndent: 4},
		"multidigit step": {opts: "i12P", wantStyle: Text, wantFlags: Pretty, wantIndent: 12},
		"bare i ignored":  {opts: "iJ", wantStyle: JSON, wantIndent: defaultIndentBy},
		"unknown ignored": {opts: "?zJ", wantStyle: JSON, wantIndent: defaultIndentBy},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			h := New(Text, 0)
			h.applyOptions(tt.opts)
			assert.Equal(t, tt.wantStyle, h.style)
			assert.Equal(t, tt.wantFlags, h.flags)
			assert.Equal(t, tt.wantIndent, h.indentBy)
		})
	}
}

// --- info table ---

func TestInfoFind(t *testing.T) {
	t.Parallel()
	h := New(HTML, Info)
	// Deliberately unsorted; SetInfo sorts its copy.
	h.SetInfo([]InfoEntry{
		{Name: "sold", Type: "number", Help: "Number of items sold"},
		{Name: "name", Type: "string", Help: "Name of the item"},
		{Name: "in-stock", Type: "number", Help: "Number of items in stock"},
	})

	e := h.infoFind("name")
	require.NotNil(t, e)
	assert.Equal(t, "string", e.Type)

	assert.Nil(t, h.infoFind("missing"))
	assert.Nil(t, h.infoFind(""))
}

func TestSetInfoNilClears(t *testing.T) {
	t.Parallel()
	h := New(HTML, Info)
	h.SetInfo([]InfoEntry{{Name: "name"}})
	h.SetInfo(nil)
	assert.Nil(t, h.info)
}

// --- escaping helpers ---

func TestEscapeHelpers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a&amp;b&lt;c&gt;d&quot;e", escapeXML(`a&b<c>d"e`))
	assert.Equal(t, "plain", escapeXML("plain"))
	assert.Equal(t, `say \"hi\"`, escapeJSON(`say "hi"`))
	assert.Equal(t, "100%% done", escapePercent("100% done"))
	assert.Equal(t, "clean", escapePercent("clean"))
}

// --- bare newline handling per style ---

func TestBareNewline(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		style Style
		want  string
	}{
		"text emits newline":  {style: Text, want: "\n"},
		"xml drops newline":   {style: XML, want: ""},
		"json drops newline":  {style: JSON, want: ""},
		"html closes the div": {style: HTML, want: `<div class="line"></div>`},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			h := NewWriter(&buf, tt.style, 0)
			require.NoError(t, h.Emit("\n"))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
