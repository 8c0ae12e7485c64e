package skooma

import (
	"strings"
	"unicode"

	"github.com/skooma-dev/skooma/pkg/dom"
)

// Option configures a Namespace.
type Option func(*Options)

// WithNameFilter sets the tag name transform.
func WithNameFilter(filter func(string) string) Option {
	return func(o *Options) {
		o.NameFilter = filter
	}
}

// WithXMLNS creates elements in the given namespace.
func WithXMLNS(namespace string) Option {
	return func(o *Options) {
		o.XMLNS = namespace
	}
}

// WithoutPreventDefault registers event handlers without cancelling the
// event's default action first.
func WithoutPreventDefault() Option {
	return func(o *Options) {
		o.AllowDefault = true
	}
}

// Constructor builds an element from arguments.
type Constructor func(args ...any) dom.Element

// Namespace creates elements by tag name in one document. Every name is
// accepted; validity is decided by the document when the element is
// created.
type Namespace struct {
	doc  dom.Document
	opts Options
}

// NewNamespace returns a Namespace over doc.
func NewNamespace(doc dom.Document, opts ...Option) *Namespace {
	n := &Namespace{doc: doc}
	for _, opt := range opts {
		opt(&n.opts)
	}
	return n
}

// Document returns the document elements are created in.
func (n *Namespace) Document() dom.Document { return n.doc }

// Has reports whether the namespace offers a constructor for name. It
// always does.
func (n *Namespace) Has(name string) bool { return true }

// Create builds the element name from args.
func (n *Namespace) Create(name string, args ...any) (dom.Element, error) {
	return NewNode(n.doc, name, args, n.opts)
}

// El builds the element name from args and panics if that fails. It is
// meant for literal trees where a failure is a programming error; use
// Create for trees built from input.
func (n *Namespace) El(name string, args ...any) dom.Element {
	el, err := n.Create(name, args...)
	if err != nil {
		panic(err)
	}
	return el
}

// Tag returns a constructor for name. The constructor panics like El.
func (n *Namespace) Tag(name string) Constructor {
	return func(args ...any) dom.Element {
		return n.El(name, args...)
	}
}

// HTML creates HTML elements. Names written in camelCase are converted to
// hyphenated lowercase, so CustomFoo and customFoo both create
// <custom-foo>.
type HTML struct {
	*Namespace
}

// NewHTML returns the HTML namespace over doc.
func NewHTML(doc dom.Document, opts ...Option) HTML {
	opts = append([]Option{WithNameFilter(KebabCase)}, opts...)
	return HTML{NewNamespace(doc, opts...)}
}

// SVG creates elements in the SVG namespace. Names are used as given, so
// camelCase names such as linearGradient keep their case.
type SVG struct {
	*Namespace
}

// NewSVG returns the SVG namespace over doc.
func NewSVG(doc dom.Document, opts ...Option) SVG {
	opts = append([]Option{WithXMLNS(dom.SVGNamespace)}, opts...)
	return SVG{NewNamespace(doc, opts...)}
}

// KebabCase inserts a hyphen between a lowercase ASCII letter and a
// following uppercase one, then lowercases the result: fooBar becomes
// foo-bar.
func KebabCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 2)
	var prev rune
	for i, r := range name {
		if i > 0 && prev >= 'a' && prev <= 'z' && r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
		prev = r
	}
	return b.String()
}
