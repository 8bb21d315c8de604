package emit

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownStyle = errors.New("unknown style")
)

// Style selects the rendering for a handle's output.
type Style int

const (
	Text Style = iota
	XML
	JSON
	HTML
)

var styleNames = map[Style]string{
	Text: "text",
	XML:  "xml",
	JSON: "json",
	HTML: "html",
}

// String returns the style name.
func (s Style) String() string {
	if n, ok := styleNames[s]; ok {
		return n
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// ParseStyle parses a style name ("text", "xml", "json", "html").
func ParseStyle(s string) (Style, error) {
	for st, n := range styleNames {
		if n == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// Flag is a set of handle option bits.
type Flag uint

const (
	// Pretty inserts newlines and indentation into structured output.
	Pretty Flag = 1 << iota
	// Warn reports hierarchy and format-string misuse on the warning stream.
	Warn
	// WarnXML is reserved; it currently behaves exactly like Warn.
	WarnXML
	// XPath adds a data-xpath attribute to HTML fields.
	XPath
	// Info adds data-type and data-help attributes to HTML fields that have
	// a matching entry in the handle's info table.
	Info
	// CloseWriter closes the underlying writer when the handle is closed.
	CloseWriter

	// flagDivOpen tracks an open HTML line div between Emit calls.
	flagDivOpen
)

const (
	bufSize         = 8 * 1024
	maxDepth        = 512
	defaultIndentBy = 2
)

// Formatter is a per-directive hook. It receives the raw text between the
// braces of each directive; a non-empty result replaces that text before
// parsing.
type Formatter func(h *Handle, body string) string

// WriteFunc adapts a raw write callback to io.Writer for SetWriter.
type WriteFunc func(p []byte) (int, error)

// Write calls f.
func (f WriteFunc) Write(p []byte) (int, error) { return f(p) }

// Handle holds the state for one output stream: style, flags, the hierarchy
// stack, and the two working buffers. The zero Handle is not usable; create
// handles with New or NewWriter. All methods accept a nil receiver and route
// it to the process-wide default handle.
type Handle struct {
	style     Style
	flags     Flag
	indent    int
	indentBy  int
	w         io.Writer
	closer    io.Closer
	errw      io.Writer
	formatter Formatter
	info      []InfoEntry
	stack     []frame
	depth     int
	data      buffer // rendered output, flushed each call
	fmtbuf    buffer // composite template being built
}

// The default handle lets callers skip handle management entirely: a nil
// *Handle, and every package-level function, selects it. It is lazily
// initialized on first use and reset to uninitialized by Close.
var (
	defaultHandle Handle
	defaultInited bool
)

func def(h *Handle) *Handle {
	if h != nil {
		return h
	}
	if !defaultInited {
		defaultHandle.init(Text, 0)
		defaultHandle.applyOptions(os.Getenv(optionsEnv))
		defaultInited = true
	}
	return &defaultHandle
}

func (h *Handle) init(style Style, flags Flag) {
	h.style = style
	h.flags = flags
	h.indentBy = defaultIndentBy
	h.w = os.Stdout
	h.errw = os.Stderr
	h.stack = make([]frame, maxDepth)
	h.data = newBuffer()
	h.fmtbuf = newBuffer()
}

// New creates a handle writing to standard output.
func New(style Style, flags Flag) *Handle {
	h := new(Handle)
	h.init(style, flags)
	return h
}

// NewWriter creates a handle writing to w. If w also implements io.Closer
// and the CloseWriter flag is set, Close closes it.
func NewWriter(w io.Writer, style Style, flags Flag) *Handle {
	h := New(style, flags)
	h.SetWriter(w)
	return h
}

// Close releases the handle. The underlying writer is closed only when the
// CloseWriter flag is set and the writer implements io.Closer. Closing the
// default handle resets it to uninitialized, so a later call through a nil
// handle starts fresh.
func (h *Handle) Close() error {
	h = def(h)
	var err error
	if h.closer != nil && h.flags&CloseWriter != 0 {
		err = h.closer.Close()
		h.closer = nil
	}
	if h == &defaultHandle {
		defaultHandle = Handle{}
		defaultInited = false
	}
	return err
}

// SetStyle changes the output style for future output.
func (h *Handle) SetStyle(style Style) {
	h = def(h)
	h.style = style
}

// SetFlags sets the given option bits.
func (h *Handle) SetFlags(flags Flag) {
	h = def(h)
	h.flags |= flags
}

// ClearFlags clears the given option bits.
func (h *Handle) ClearFlags(flags Flag) {
	h = def(h)
	h.flags &^= flags
}

// SetFormatter installs the per-directive hook.
func (h *Handle) SetFormatter(f Formatter) {
	h = def(h)
	h.formatter = f
}

// SetWriter redirects future output to w. When w implements io.Closer it is
// recorded for Close.
func (h *Handle) SetWriter(w io.Writer) {
	h = def(h)
	h.w = w
	if c, ok := w.(io.Closer); ok {
		h.closer = c
	} else {
		h.closer = nil
	}
}

func (h *Handle) warnEnabled() bool {
	return h.flags&(Warn|WarnXML) != 0
}

// warnf writes a single newline-terminated diagnostic to the warning
// stream. Callers gate on warnEnabled.
func (h *Handle) warnf(format string, args ...any) {
	fmt.Fprintf(h.errw, format+"\n", args...)
}

// write flushes one rendered chunk through the writer.
func (h *Handle) write(s string) error {
	h.data.reset()
	h.data.appendString(s)
	if _, err := h.w.Write(h.data.bytes()); err != nil {
		return fmt.Errorf("emit: write: %w", err)
	}
	return nil
}

// sinkf renders a small chunk and flushes it directly, bypassing the
// template buffer. The hierarchy operations use this path.
func (h *Handle) sinkf(format string, args ...any) error {
	return h.write(fmt.Sprintf(format, args...))
}

// --- Package-level entry points (default handle) ---

// Emit renders one format string through the default handle.
func Emit(format string, args ...any) error {
	return (*Handle)(nil).Emit(format, args...)
}

// OpenContainer opens a container on the default handle.
func OpenContainer(name string) error { return (*Handle)(nil).OpenContainer(name) }

// CloseContainer closes a container on the default handle.
func CloseContainer(name string) error { return (*Handle)(nil).CloseContainer(name) }

// OpenList opens a list on the default handle.
func OpenList(name string) error { return (*Handle)(nil).OpenList(name) }

// CloseList closes a list on the default handle.
func CloseList(name string) error { return (*Handle)(nil).CloseList(name) }

// OpenInstance opens a list instance on the default handle.
func OpenInstance(name string) error { return (*Handle)(nil).OpenInstance(name) }

// CloseInstance closes a list instance on the default handle.
func CloseInstance(name string) error { return (*Handle)(nil).CloseInstance(name) }

// SetStyle changes the default handle's style.
func SetStyle(style Style) { (*Handle)(nil).SetStyle(style) }

// SetFlags sets option bits on the default handle.
func SetFlags(flags Flag) { (*Handle)(nil).SetFlags(flags) }

// ClearFlags clears option bits on the default handle.
func ClearFlags(flags Flag) { (*Handle)(nil).ClearFlags(flags) }

// SetInfo records the info table on the default handle.
func SetInfo(entries []InfoEntry) { (*Handle)(nil).SetInfo(entries) }

// SetFormatter installs the per-directive hook on the default handle.
func SetFormatter(f Formatter) { (*Handle)(nil).SetFormatter(f) }

// SetWriter redirects the default handle's output.
func SetWriter(w io.Writer) { (*Handle)(nil).SetWriter(w) }

// Close resets the default handle to uninitialized.
func Close() error { return (*Handle)(nil).Close() }
