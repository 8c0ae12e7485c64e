package skooma

import "github.com/skooma-dev/skooma/pkg/dom"

// Options configures element creation.
type Options struct {
	// NameFilter transforms the requested name before the element is
	// created.
	NameFilter func(name string) string

	// XMLNS creates elements in this namespace with CreateElementNS.
	// Empty means CreateElement.
	XMLNS string

	// AllowDefault registers event handlers as-is. By default every handler
	// calls PreventDefault before it runs.
	AllowDefault bool
}

// NewNode creates the element name and applies args to it. The arguments
// are classified before the element is created, so an unsupported
// argument leaves no partially built element behind.
func NewNode(doc dom.Document, name string, args []any, opts Options) (dom.Element, error) {
	classified, err := ClassifyAll(args)
	if err != nil {
		return nil, err
	}

	if opts.NameFilter != nil {
		name = opts.NameFilter(name)
	}

	var el dom.Element
	if opts.XMLNS != "" {
		el, err = doc.CreateElementNS(opts.XMLNS, name)
	} else {
		el, err = doc.CreateElement(name)
	}
	if err != nil {
		return nil, err
	}

	p := &parser{doc: doc, preventDefault: !opts.AllowDefault}
	if err := p.parse(el, classified); err != nil {
		return nil, err
	}
	return el, nil
}
