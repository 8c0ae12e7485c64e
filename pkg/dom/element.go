package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// element is an Element of the in-memory backend.
type element struct {
	node
	namespace string
	prefix    string
	local     string

	style   *styleDeclaration
	shadow  *shadowRoot
	content *fragment
}

func (e *element) NodeType() NodeType   { return ElementNode }
func (e *element) NodeName() string     { return e.TagName() }
func (e *element) LocalName() string    { return e.local }
func (e *element) NamespaceURI() string { return e.namespace }

// TagName returns the qualified name, uppercased for HTML elements.
func (e *element) TagName() string {
	if e.namespace == HTMLNamespace {
		return strings.ToUpper(e.n.Data)
	}
	return e.n.Data
}

// AppendChild appends child to the element.
func (e *element) AppendChild(child Node) error { return e.appendChild(child) }

// attrName normalises an attribute name for lookup. HTML elements use
// ASCII-lowercased names, other namespaces are case-sensitive.
func (e *element) attrName(name string) string {
	if e.namespace == HTMLNamespace {
		return asciiLower(name)
	}
	return name
}

func (e *element) attrIndex(name string) int {
	name = e.attrName(name)
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return i
		}
	}
	return -1
}

// GetAttribute returns the value of the named attribute.
func (e *element) GetAttribute(name string) (string, bool) {
	if i := e.attrIndex(name); i >= 0 {
		return e.n.Attr[i].Val, true
	}
	return "", false
}

// HasAttribute reports whether the named attribute is present.
func (e *element) HasAttribute(name string) bool {
	return e.attrIndex(name) >= 0
}

// SetAttribute sets an attribute, appending it if absent.
func (e *element) SetAttribute(name, value string) error {
	if !validName(name) {
		return exception("InvalidCharacterError", "%q is not a valid attribute name", name)
	}
	e.setRaw(name, value)
	if e.attrName(name) == "style" && e.style != nil {
		e.style.parse(value)
	}
	return nil
}

// setRaw writes an attribute without touching the style declaration.
func (e *element) setRaw(name, value string) {
	if i := e.attrIndex(name); i >= 0 {
		e.n.Attr[i].Val = value
		return
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: e.attrName(name), Val: value})
}

// RemoveAttribute removes the named attribute if present.
func (e *element) RemoveAttribute(name string) {
	i := e.attrIndex(name)
	if i < 0 {
		return
	}
	e.n.Attr = append(e.n.Attr[:i], e.n.Attr[i+1:]...)
	if e.attrName(name) == "style" && e.style != nil {
		e.style.parse("")
	}
}

// Attributes returns the attributes in document order.
func (e *element) Attributes() []Attr {
	out := make([]Attr, 0, len(e.n.Attr))
	for _, a := range e.n.Attr {
		name := a.Key
		if a.Namespace != "" {
			name = a.Namespace + ":" + a.Key
		}
		out = append(out, Attr{Name: name, Value: a.Val})
	}
	return out
}

// Style returns the live inline style declaration.
func (e *element) Style() StyleDeclaration {
	if e.style == nil {
		e.style = &styleDeclaration{owner: e}
		if v, ok := e.GetAttribute("style"); ok {
			e.style.parse(v)
		}
	}
	return e.style
}

// ShadowRoot returns the open shadow root, or nil.
func (e *element) ShadowRoot() ShadowRoot {
	if e.shadow == nil || e.shadow.mode != ShadowRootOpen {
		return nil
	}
	return e.shadow
}

// AttachShadow attaches a shadow root. Each host accepts at most one.
func (e *element) AttachShadow(init ShadowRootInit) (ShadowRoot, error) {
	if init.Mode != ShadowRootOpen && init.Mode != ShadowRootClosed {
		return nil, exception("NotSupportedError", "invalid shadow root mode %q", init.Mode)
	}
	if !canHostShadow(e.namespace, e.local) {
		return nil, exception("NotSupportedError", "<%s> cannot host a shadow root", e.n.Data)
	}
	if e.shadow != nil {
		return nil, exception("NotSupportedError", "<%s> already hosts a shadow root", e.n.Data)
	}
	s := &shadowRoot{
		node: node{doc: e.doc, n: &html.Node{Type: html.DocumentNode}},
		host: e,
		mode: init.Mode,
	}
	e.doc.register(s)
	e.shadow = s
	return s, nil
}

// Content returns the template contents, or nil for non-template elements.
func (e *element) Content() DocumentFragment {
	if e.content == nil {
		return nil
	}
	return e.content
}

// Click dispatches a click event at the element.
func (e *element) Click() {
	e.DispatchEvent(NewEvent("click"))
}

// OuterHTML serialises the element and its descendants.
func (e *element) OuterHTML() (string, error) {
	var sb strings.Builder
	if err := Render(&sb, e); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// InnerHTML serialises the element's children.
func (e *element) InnerHTML() (string, error) {
	var sb strings.Builder
	if err := renderChildren(&sb, e); err != nil {
		return "", err
	}
	return sb.String(), nil
}
