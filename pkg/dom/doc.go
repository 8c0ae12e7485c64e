// Package dom defines the document model that skooma builds into.
//
// The interfaces mirror the subset of the WHATWG DOM that element
// construction needs: creating elements and text nodes, appending children,
// attributes, inline styles, event listeners, shadow roots and template
// content.
//
// # Backends
//
// NewDocument returns an in-memory document backed by golang.org/x/net/html
// nodes. It is used on the server, in tests and by the skooma CLI, and can
// serialise any subtree to HTML:
//
//	doc := dom.NewDocument()
//	div, _ := doc.CreateElement("div")
//	div.AppendChild(doc.CreateTextNode("hello"))
//	html, _ := div.OuterHTML() // <div>hello</div>
//
// The jsdom sub-package implements the same interfaces over syscall/js for
// programs compiled with GOOS=js GOARCH=wasm.
//
// # Errors
//
// Operations that the platform rejects return a *DOMException. Use
// errors.Is with ErrInvalidCharacter, ErrNamespace, ErrNotSupported or
// ErrHierarchyRequest to classify them.
package dom
