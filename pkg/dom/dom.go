package dom

// Namespace URIs.
const (
	HTMLNamespace   = "http://www.w3.org/1999/xhtml"
	SVGNamespace    = "http://www.w3.org/2000/svg"
	MathMLNamespace = "http://www.w3.org/1998/Math/MathML"
	XMLNamespace    = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespace  = "http://www.w3.org/2000/xmlns/"
)

// NodeType is the node type discriminator, numbered as in the DOM.
type NodeType uint8

const (
	ElementNode          NodeType = 1
	TextNode             NodeType = 3
	DocumentNode         NodeType = 9
	DocumentFragmentNode NodeType = 11
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case DocumentNode:
		return "Document"
	case DocumentFragmentNode:
		return "DocumentFragment"
	default:
		return "Unknown"
	}
}

// Node is any node in a document tree.
type Node interface {
	NodeName() string
	NodeType() NodeType
	TextContent() string
	ChildNodes() []Node
	ParentNode() Node
}

// ParentNode is a node that can hold children.
type ParentNode interface {
	Node

	// AppendChild appends child as the last child. A child that already
	// has a parent is moved. Appending a DocumentFragment moves its
	// children instead.
	AppendChild(child Node) error
}

// Listener handles a dispatched event.
type Listener func(e *Event)

// EventTarget is anything that accepts event listeners.
type EventTarget interface {
	AddEventListener(typ string, l Listener)

	// DispatchEvent runs the listeners registered for e.Type and returns
	// false if one of them cancelled the event.
	DispatchEvent(e *Event) bool
}

// Attr is a single attribute in document order.
type Attr struct {
	Name  string
	Value string
}

// ShadowRootMode is the encapsulation mode of a shadow root.
type ShadowRootMode string

const (
	ShadowRootOpen   ShadowRootMode = "open"
	ShadowRootClosed ShadowRootMode = "closed"
)

// ShadowRootInit configures Element.AttachShadow.
type ShadowRootInit struct {
	Mode ShadowRootMode
}

// Element is a DOM element.
type Element interface {
	ParentNode
	EventTarget

	TagName() string
	LocalName() string
	NamespaceURI() string

	GetAttribute(name string) (string, bool)
	HasAttribute(name string) bool
	SetAttribute(name, value string) error
	RemoveAttribute(name string)
	Attributes() []Attr

	// Style returns the live inline style declaration.
	Style() StyleDeclaration

	// ShadowRoot returns the open shadow root, or nil.
	ShadowRoot() ShadowRoot
	AttachShadow(init ShadowRootInit) (ShadowRoot, error)

	// Content returns the template contents for <template> elements and
	// nil for every other element.
	Content() DocumentFragment

	// Click dispatches a cancelable, bubbling click event.
	Click()

	OuterHTML() (string, error)
	InnerHTML() (string, error)
}

// DocumentFragment is a parentless container of nodes.
type DocumentFragment interface {
	ParentNode
	EventTarget
}

// ShadowRoot is the root of a shadow tree attached to a host element.
type ShadowRoot interface {
	DocumentFragment

	Mode() ShadowRootMode
	Host() Element
}

// StyleDeclaration is an element's inline CSS declaration block.
type StyleDeclaration interface {
	// SetProperty sets a property. An empty value removes it.
	SetProperty(name, value string) error

	// RemoveProperty removes a property and returns its previous value.
	RemoveProperty(name string) string

	GetPropertyValue(name string) string
	Length() int
	Item(i int) string

	CSSText() string
	SetCSSText(text string) error
}

// Document creates nodes.
type Document interface {
	CreateElement(localName string) (Element, error)
	CreateElementNS(namespaceURI, qualifiedName string) (Element, error)
	CreateTextNode(data string) Node
	CreateDocumentFragment() DocumentFragment
}
