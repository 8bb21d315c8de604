// Package emit renders one stream of print-like calls in four coordinated
// output styles: plain text, XML, JSON, and HTML.
//
// Callers never write style-specific code. They emit format strings holding
// {...} field directives, and open and close containers, lists, and list
// instances; the handle translates both into the selected style. The same
// program produces human-readable text, an XML document, a JSON document,
// or annotated HTML depending only on how the handle was configured.
//
// # Handles
//
// [New] creates a handle writing to standard output, [NewWriter] to any
// io.Writer. A process-wide default handle backs the package-level
// functions ([Emit], [OpenContainer], ...) and any method called on a nil
// *Handle; it initializes lazily, honoring the EMIT_OPTIONS environment
// variable, and [Handle.Close] resets it.
//
//	h := emit.NewWriter(&buf, emit.JSON, emit.Pretty)
//	h.OpenContainer("host")
//	h.Emit("{:name/%s}{:port/%u}", name, port)
//	h.CloseContainer("host")
//
// # Field directives
//
// A directive is written
//
//	'{' modifiers [':' content] ['/' print-fmt ['/' encode-fmt]] '}'
//
// The role modifiers T (title), L (label), V (value), D (decoration), and
// P (padding) select what the field means; without one the field is a
// value. Option modifiers: C appends a colon decoration, W a blank, H
// hides the field from text and HTML, Q and N force or forbid JSON quotes.
// The print format (default %s) renders text and HTML; XML and JSON prefer
// the encode format when one is given. {{ and }} produce literal braces.
//
//	emit.Emit("{L:Item} '{:name/%s}': {:sold/%12u/%u}\n", name, sold)
//
// # Hierarchy
//
// Containers become XML elements and JSON object members. Lists become
// JSON arrays; instances become repeated XML elements and unnamed JSON
// objects inside the enclosing array. Text and HTML track the nesting only
// for annotation and close checking. Every open must be matched by a close
// in LIFO order for the structured styles to be well formed.
//
// # Flags
//
// [Pretty] adds newlines and indentation. [Warn] reports hierarchy misuse
// and malformed directives on standard error without failing the
// operation. [XPath] and [Info] annotate HTML fields with data-xpath
// ancestry and data-type/data-help attributes ([Handle.SetInfo] supplies
// the table). [CloseWriter] makes [Handle.Close] close the writer.
//
// # Errors
//
// The library prefers producing some output over failing loudly: write
// errors propagate from the emit and hierarchy calls, everything else is
// at most a warning. [ErrUnknownStyle] reports a bad [ParseStyle] input.
package emit
