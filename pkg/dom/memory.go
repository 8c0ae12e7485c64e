package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// memDocument is the in-memory Document. Every node it creates is backed by
// an *html.Node and registered so that tree walks can recover the wrapper.
type memDocument struct {
	nodes map[*html.Node]memNode
}

// memNode is implemented by every node of the in-memory backend.
type memNode interface {
	Node
	raw() *html.Node
	owner() *memDocument
	setOwner(d *memDocument)
	listenerSet() listenerList
}

// NewDocument returns an empty in-memory HTML document.
func NewDocument() Document {
	return &memDocument{nodes: make(map[*html.Node]memNode)}
}

func (d *memDocument) register(m memNode) {
	d.nodes[m.raw()] = m
}

func (d *memDocument) wrap(n *html.Node) memNode {
	if n == nil {
		return nil
	}
	return d.nodes[n]
}

// CreateElement creates an HTML element. The name is ASCII-lowercased.
func (d *memDocument) CreateElement(localName string) (Element, error) {
	if !validName(localName) {
		return nil, exception("InvalidCharacterError", "%q is not a valid element name", localName)
	}
	return d.newElement(HTMLNamespace, "", asciiLower(localName)), nil
}

// CreateElementNS creates an element in the given namespace.
func (d *memDocument) CreateElementNS(namespaceURI, qualifiedName string) (Element, error) {
	prefix, local, err := validateQualifiedName(namespaceURI, qualifiedName)
	if err != nil {
		return nil, err
	}
	return d.newElement(namespaceURI, prefix, local), nil
}

// CreateTextNode creates a text node.
func (d *memDocument) CreateTextNode(data string) Node {
	t := &textNode{node{doc: d, n: &html.Node{Type: html.TextNode, Data: data}}}
	d.register(t)
	return t
}

// CreateDocumentFragment creates an empty fragment.
func (d *memDocument) CreateDocumentFragment() DocumentFragment {
	return d.newFragment(nil)
}

func (d *memDocument) newFragment(host *element) *fragment {
	f := &fragment{node: node{doc: d, n: &html.Node{Type: html.DocumentNode}}, host: host}
	d.register(f)
	return f
}

func (d *memDocument) newElement(namespace, prefix, local string) *element {
	qualified := local
	if prefix != "" {
		qualified = prefix + ":" + local
	}
	n := &html.Node{Type: html.ElementNode, Data: qualified}
	switch namespace {
	case HTMLNamespace:
		n.DataAtom = atom.Lookup([]byte(local))
	case SVGNamespace:
		n.Namespace = "svg"
	case MathMLNamespace:
		n.Namespace = "math"
	}
	el := &element{
		node:      node{doc: d, n: n},
		namespace: namespace,
		prefix:    prefix,
		local:     local,
	}
	d.register(el)
	if namespace == HTMLNamespace && local == "template" {
		el.content = d.newFragment(el)
	}
	return el
}

// node holds the state shared by all in-memory nodes.
type node struct {
	doc       *memDocument
	n         *html.Node
	listeners listenerList
}

func (b *node) raw() *html.Node          { return b.n }
func (b *node) owner() *memDocument      { return b.doc }
func (b *node) setOwner(d *memDocument) { b.doc = d }

func (b *node) listenerSet() listenerList {
	if b.listeners == nil {
		b.listeners = make(listenerList)
	}
	return b.listeners
}

// ChildNodes returns a snapshot of the node's children.
func (b *node) ChildNodes() []Node {
	var out []Node
	for c := b.n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, b.doc.wrap(c))
	}
	return out
}

// ParentNode returns the parent, or nil for detached nodes and fragments.
func (b *node) ParentNode() Node {
	if b.n.Parent == nil {
		return nil
	}
	return b.doc.wrap(b.n.Parent)
}

// TextContent concatenates the data of all descendant text nodes.
func (b *node) TextContent() string {
	if b.n.Type == html.TextNode {
		return b.n.Data
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
				continue
			}
			walk(c)
		}
	}
	walk(b.n)
	return sb.String()
}

// AddEventListener registers l for events of type typ.
func (b *node) AddEventListener(typ string, l Listener) {
	b.listenerSet().add(typ, l)
}

// DispatchEvent dispatches e at this node.
func (b *node) DispatchEvent(e *Event) bool {
	return dispatch(b.doc.wrap(b.n), e)
}

// appendChild implements AppendChild for parents.
func (b *node) appendChild(child Node) error {
	c, ok := child.(memNode)
	if !ok || child == nil {
		return exception("HierarchyRequestError", "cannot append a foreign node")
	}
	switch v := c.(type) {
	case *textNode, *element:
	case *fragment:
		for n := v.n.FirstChild; n != nil; {
			next := n.NextSibling
			if err := b.appendChild(v.doc.wrap(n)); err != nil {
				return err
			}
			n = next
		}
		return nil
	default:
		return exception("HierarchyRequestError", "cannot append %s", child.NodeName())
	}

	self := b.doc.wrap(b.n)
	for x := self; x != nil; x = parentOrHost(x) {
		if x.raw() == c.raw() {
			return exception("HierarchyRequestError", "the new child is an ancestor of the parent")
		}
	}

	if p := c.raw().Parent; p != nil {
		p.RemoveChild(c.raw())
	}
	if c.owner() != b.doc {
		adopt(c, b.doc)
	}
	b.n.AppendChild(c.raw())
	return nil
}

// parentOrHost returns the parent of m, crossing from shadow roots and
// template contents to their host element.
func parentOrHost(m memNode) memNode {
	if p := m.raw().Parent; p != nil {
		return m.owner().wrap(p)
	}
	switch v := m.(type) {
	case *fragment:
		if v.host != nil {
			return v.host
		}
	case *shadowRoot:
		return v.host
	}
	return nil
}

// adopt moves the subtree rooted at m into doc.
func adopt(m memNode, doc *memDocument) {
	from := m.owner()
	delete(from.nodes, m.raw())
	m.setOwner(doc)
	doc.register(m)
	if el, ok := m.(*element); ok {
		if el.shadow != nil {
			adopt(el.shadow, doc)
		}
		if el.content != nil {
			adopt(el.content, doc)
		}
	}
	for c := m.raw().FirstChild; c != nil; c = c.NextSibling {
		adopt(from.wrap(c), doc)
	}
}

// dispatch runs e through target and, for bubbling events, its ancestors.
func dispatch(target memNode, e *Event) bool {
	if target == nil {
		return !e.defaultPrevented
	}
	if t, ok := target.(EventTarget); ok {
		e.Target = t
	}
	for x := target; x != nil; x = parentOrHost(x) {
		if t, ok := x.(EventTarget); ok {
			e.CurrentTarget = t
		}
		x.listenerSet().invoke(e)
		if e.stopped || !e.Bubbles {
			break
		}
	}
	return !e.defaultPrevented
}

// textNode is a Text node.
type textNode struct {
	node
}

func (t *textNode) NodeName() string   { return "#text" }
func (t *textNode) NodeType() NodeType { return TextNode }

// fragment is a DocumentFragment. Template contents keep a host so that
// hierarchy checks and event paths can cross into the template element.
type fragment struct {
	node
	host *element
}

func (f *fragment) NodeName() string   { return "#document-fragment" }
func (f *fragment) NodeType() NodeType { return DocumentFragmentNode }

// AppendChild appends child to the fragment.
func (f *fragment) AppendChild(child Node) error { return f.appendChild(child) }

// shadowRoot is a ShadowRoot attached to host.
type shadowRoot struct {
	node
	host *element
	mode ShadowRootMode
}

func (s *shadowRoot) NodeName() string     { return "#document-fragment" }
func (s *shadowRoot) NodeType() NodeType   { return DocumentFragmentNode }
func (s *shadowRoot) Mode() ShadowRootMode { return s.mode }
func (s *shadowRoot) Host() Element        { return s.host }

// AppendChild appends child to the shadow tree.
func (s *shadowRoot) AppendChild(child Node) error { return s.appendChild(child) }

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + 'a' - 'A'
		}
		return r
	}, s)
}
