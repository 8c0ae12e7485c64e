//go:build js && wasm

// Package jsdom implements the dom interfaces over the browser DOM using
// syscall/js. It is only available for GOOS=js GOARCH=wasm.
//
//	doc := jsdom.New()
//	h := skooma.NewHTML(doc)
//	body := jsdom.Body(doc)
//	body.AppendChild(h.Button("Delete", skooma.Props{"onClick": onDelete}))
package jsdom

import (
	"syscall/js"

	"github.com/skooma-dev/skooma/pkg/dom"
)

// Document is the browser document.
type Document struct {
	v js.Value
}

// New returns the global document.
func New() *Document {
	return &Document{v: js.Global().Get("document")}
}

// Body returns document.body.
func Body(d *Document) dom.Element {
	return &element{node{d.v.Get("body")}}
}

// catch converts a thrown JavaScript exception into a DOMException.
func catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	jsErr, ok := r.(js.Error)
	if !ok {
		panic(r)
	}
	*err = &dom.DOMException{
		Name:    jsErr.Value.Get("name").String(),
		Message: jsErr.Value.Get("message").String(),
	}
}

// CreateElement calls document.createElement.
func (d *Document) CreateElement(localName string) (el dom.Element, err error) {
	defer catch(&err)
	return &element{node{d.v.Call("createElement", localName)}}, nil
}

// CreateElementNS calls document.createElementNS.
func (d *Document) CreateElementNS(namespaceURI, qualifiedName string) (el dom.Element, err error) {
	defer catch(&err)
	var ns any = namespaceURI
	if namespaceURI == "" {
		ns = nil
	}
	return &element{node{d.v.Call("createElementNS", ns, qualifiedName)}}, nil
}

// CreateTextNode calls document.createTextNode.
func (d *Document) CreateTextNode(data string) dom.Node {
	return &node{d.v.Call("createTextNode", data)}
}

// CreateDocumentFragment calls document.createDocumentFragment.
func (d *Document) CreateDocumentFragment() dom.DocumentFragment {
	return &fragment{node{d.v.Call("createDocumentFragment")}}
}

// wrap returns the dom.Node for a JavaScript node value.
func wrap(v js.Value) dom.Node {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	switch dom.NodeType(v.Get("nodeType").Int()) {
	case dom.ElementNode:
		return &element{node{v}}
	case dom.DocumentFragmentNode:
		if host := v.Get("host"); !host.IsUndefined() && !host.IsNull() {
			return &shadowRoot{fragment{node{v}}}
		}
		return &fragment{node{v}}
	default:
		return &node{v}
	}
}

type node struct {
	v js.Value
}

// Value returns the underlying JavaScript value.
func (n *node) Value() js.Value { return n.v }

func (n *node) NodeName() string      { return n.v.Get("nodeName").String() }
func (n *node) NodeType() dom.NodeType { return dom.NodeType(n.v.Get("nodeType").Int()) }
func (n *node) TextContent() string   { return n.v.Get("textContent").String() }
func (n *node) ParentNode() dom.Node  { return wrap(n.v.Get("parentNode")) }

func (n *node) ChildNodes() []dom.Node {
	list := n.v.Get("childNodes")
	out := make([]dom.Node, 0, list.Length())
	for i := 0; i < list.Length(); i++ {
		out = append(out, wrap(list.Index(i)))
	}
	return out
}

func (n *node) AppendChild(child dom.Node) (err error) {
	defer catch(&err)
	c, ok := child.(interface{ Value() js.Value })
	if !ok {
		return &dom.DOMException{Name: "HierarchyRequestError", Message: "cannot append a foreign node"}
	}
	n.v.Call("appendChild", c.Value())
	return nil
}

// AddEventListener registers l as a native listener. The js.Func lives as
// long as the page; elements built by skooma are not torn down explicitly.
func (n *node) AddEventListener(typ string, l dom.Listener) {
	current := wrap(n.v).(dom.EventTarget)
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		target := eventTarget(ev.Get("target"), current)
		l(dom.WrapEvent(ev.Get("type").String(), target, current, func() { ev.Call("preventDefault") }))
		return nil
	})
	n.v.Call("addEventListener", typ, fn)
}

// eventTarget wraps a native event target. Targets that are not nodes,
// such as window, fall back to the listener's node.
func eventTarget(v js.Value, fallback dom.EventTarget) dom.EventTarget {
	if v.IsNull() || v.IsUndefined() || v.Get("nodeType").IsUndefined() {
		return fallback
	}
	if t, ok := wrap(v).(dom.EventTarget); ok {
		return t
	}
	return fallback
}

func (n *node) DispatchEvent(e *dom.Event) bool {
	ev := js.Global().Get("Event").New(e.Type, map[string]any{
		"bubbles":    e.Bubbles,
		"cancelable": e.Cancelable,
	})
	return n.v.Call("dispatchEvent", ev).Bool()
}

type fragment struct {
	node
}

type shadowRoot struct {
	fragment
}

func (s *shadowRoot) Mode() dom.ShadowRootMode { return dom.ShadowRootMode(s.v.Get("mode").String()) }
func (s *shadowRoot) Host() dom.Element       { return &element{node{s.v.Get("host")}} }

type element struct {
	node
}

func (e *element) TagName() string      { return e.v.Get("tagName").String() }
func (e *element) LocalName() string    { return e.v.Get("localName").String() }
func (e *element) NamespaceURI() string { return e.v.Get("namespaceURI").String() }

func (e *element) GetAttribute(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if v.IsNull() {
		return "", false
	}
	return v.String(), true
}

func (e *element) HasAttribute(name string) bool { return e.v.Call("hasAttribute", name).Bool() }

func (e *element) SetAttribute(name, value string) (err error) {
	defer catch(&err)
	e.v.Call("setAttribute", name, value)
	return nil
}

func (e *element) RemoveAttribute(name string) { e.v.Call("removeAttribute", name) }

func (e *element) Attributes() []dom.Attr {
	list := e.v.Get("attributes")
	out := make([]dom.Attr, 0, list.Length())
	for i := 0; i < list.Length(); i++ {
		a := list.Index(i)
		out = append(out, dom.Attr{Name: a.Get("name").String(), Value: a.Get("value").String()})
	}
	return out
}

func (e *element) Style() dom.StyleDeclaration { return &style{e.v.Get("style")} }

func (e *element) ShadowRoot() dom.ShadowRoot {
	v := e.v.Get("shadowRoot")
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &shadowRoot{fragment{node{v}}}
}

func (e *element) AttachShadow(init dom.ShadowRootInit) (root dom.ShadowRoot, err error) {
	defer catch(&err)
	v := e.v.Call("attachShadow", map[string]any{"mode": string(init.Mode)})
	return &shadowRoot{fragment{node{v}}}, nil
}

func (e *element) Content() dom.DocumentFragment {
	v := e.v.Get("content")
	if v.IsUndefined() || v.IsNull() {
		return nil
	}
	return &fragment{node{v}}
}

func (e *element) Click() { e.v.Call("click") }

func (e *element) OuterHTML() (string, error) { return e.v.Get("outerHTML").String(), nil }
func (e *element) InnerHTML() (string, error) { return e.v.Get("innerHTML").String(), nil }

// style wraps a CSSStyleDeclaration.
type style struct {
	v js.Value
}

func (s *style) SetProperty(name, value string) (err error) {
	defer catch(&err)
	s.v.Call("setProperty", name, value)
	return nil
}

func (s *style) RemoveProperty(name string) string {
	return s.v.Call("removeProperty", name).String()
}

func (s *style) GetPropertyValue(name string) string {
	return s.v.Call("getPropertyValue", name).String()
}

func (s *style) Length() int       { return s.v.Get("length").Int() }
func (s *style) Item(i int) string { return s.v.Call("item", i).String() }
func (s *style) CSSText() string   { return s.v.Get("cssText").String() }

func (s *style) SetCSSText(text string) (err error) {
	defer catch(&err)
	s.v.Set("cssText", text)
	return nil
}
