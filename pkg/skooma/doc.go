// Package skooma builds DOM trees from nested function calls.
//
// Elements are created through a Namespace. NewHTML and NewSVG return the
// two standard namespaces; every constructor takes a variadic list of
// arguments and returns the finished element:
//
//	doc := dom.NewDocument()
//	h := skooma.NewHTML(doc)
//
//	label := h.Label(
//	    h.Span("Delete everything", skooma.Props{"class": []string{"warning", "important"}}),
//	    h.Button("Click", skooma.Props{"onClick": func(e *dom.Event) { clear() }}),
//	)
//
// Tags without a helper method are built by name; camelCase names become
// custom element names:
//
//	card := h.El("userCard", skooma.Props{"shadowRoot": h.Slot()}) // <user-card>
//
// # Arguments
//
// Each argument is classified into an Arg before anything is built:
//
//   - Text and Number append a text node
//   - Node appends an existing node
//   - List flattens into the surrounding arguments
//   - Options (Props, Prop, string-keyed maps) set attributes, styles,
//     event listeners and shadow-root content
//
// Inside an options mapping:
//
//   - "style" takes a mapping of camelCase properties; nil removes one
//   - "shadowRoot" appends its value to the (created if missing) open
//     shadow root
//   - function values become event listeners: onClick listens to click
//   - true adds an empty attribute if absent, false removes it
//   - slices are joined with spaces, other values are JSON-encoded
//
// Event handlers call PreventDefault before they run unless the namespace
// is created with WithoutPreventDefault.
//
// Children of <template> elements go into the template's content fragment.
package skooma
