package dom

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes the HTML serialisation of n to w. Shadow roots are written
// as declarative shadow DOM: a <template shadowrootmode> first child of the
// host. Template contents are written inside their template element.
func Render(w io.Writer, n Node) error {
	tree, err := HTMLTree(n)
	if err != nil {
		return err
	}
	return html.Render(w, tree)
}

// HTMLTree returns a detached copy of the subtree rooted at n as an
// x/net/html tree, laid out the way Render writes it. Fragments become a
// DocumentNode holding their children. Only nodes of the in-memory
// document are supported.
func HTMLTree(n Node) (*html.Node, error) {
	m, ok := n.(memNode)
	if !ok || n == nil {
		return nil, fmt.Errorf("dom: cannot render %T", n)
	}
	return cloneForRender(m), nil
}

// renderChildren writes the serialisation of n's children to w.
func renderChildren(w io.Writer, m memNode) error {
	for c := cloneForRender(m).FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return err
		}
	}
	return nil
}

// cloneForRender copies the subtree rooted at m into a detached html tree
// with shadow roots and template contents inlined.
func cloneForRender(m memNode) *html.Node {
	src := m.raw()
	dst := &html.Node{
		Type:      src.Type,
		DataAtom:  src.DataAtom,
		Data:      src.Data,
		Namespace: src.Namespace,
		Attr:      append([]html.Attribute(nil), src.Attr...),
	}
	if el, ok := m.(*element); ok {
		if el.shadow != nil {
			tpl := &html.Node{
				Type:     html.ElementNode,
				DataAtom: atom.Template,
				Data:     "template",
				Attr:     []html.Attribute{{Key: "shadowrootmode", Val: string(el.shadow.mode)}},
			}
			appendClones(tpl, el.shadow)
			dst.AppendChild(tpl)
		}
		if el.content != nil {
			appendClones(dst, el.content)
		}
	}
	appendClones(dst, m)
	return dst
}

func appendClones(dst *html.Node, parent memNode) {
	doc := parent.owner()
	for c := parent.raw().FirstChild; c != nil; c = c.NextSibling {
		dst.AppendChild(cloneForRender(doc.wrap(c)))
	}
}
