package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/skooma-dev/skooma/pkg/dom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it changes whitespace.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// Sanitize passes the markup through a user-generated-content policy,
	// dropping scripts, event attributes and inline styles.
	Sanitize bool
}

// Renderer serialises built DOM trees to HTML.
type Renderer struct {
	config RendererConfig
	policy *bluemonday.Policy
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	r := &Renderer{config: config}
	if config.Sanitize {
		r.policy = bluemonday.UGCPolicy()
	}
	return r
}

// RenderToString renders a node to an HTML string.
func (r *Renderer) RenderToString(node dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node to the given writer. A nil node writes
// nothing.
func (r *Renderer) RenderToWriter(w io.Writer, node dom.Node) error {
	if node == nil {
		return nil
	}

	tree, err := dom.HTMLTree(node)
	if err != nil {
		return err
	}

	if r.policy == nil {
		if r.config.Pretty {
			return r.renderNode(w, tree, 0)
		}
		return html.Render(w, tree)
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, tree); err != nil {
		return err
	}
	clean := r.policy.SanitizeReader(&buf)
	if !r.config.Pretty {
		_, err := io.Copy(w, clean)
		return err
	}

	nodes, err := html.ParseFragment(clean, &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body})
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if err := r.renderNode(w, n, 0); err != nil {
			return err
		}
	}
	return nil
}

// renderNode pretty-prints an html node.
func (r *Renderer) renderNode(w io.Writer, node *html.Node, depth int) error {
	switch node.Type {
	case html.ElementNode:
		return r.renderElement(w, node, depth)
	case html.TextNode:
		text := strings.TrimSpace(node.Data)
		if text == "" {
			return nil
		}
		r.writeIndent(w, depth)
		if _, err := io.WriteString(w, html.EscapeString(text)); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case html.DocumentNode:
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if err := r.renderNode(w, c, depth); err != nil {
				return err
			}
		}
		return nil
	default:
		r.writeIndent(w, depth)
		if err := html.Render(w, node); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
}

// renderElement renders an element on its own lines. Elements without
// element children, and inline elements, stay on one line.
func (r *Renderer) renderElement(w io.Writer, node *html.Node, depth int) error {
	tag := node.Data
	r.writeIndent(w, depth)

	if !hasElementChild(node) || isInlineElement(tag) || isVoidElement(tag) {
		if err := html.Render(w, node); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">\n"); err != nil {
		return err
	}

	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if err := r.renderNode(w, c, depth+1); err != nil {
			return err
		}
	}

	r.writeIndent(w, depth)
	_, err := io.WriteString(w, "</"+tag+">\n")
	return err
}

// renderAttributes renders all attributes for an element. Empty boolean
// attributes are written as the bare name.
func (r *Renderer) renderAttributes(w io.Writer, node *html.Node) error {
	for _, a := range node.Attr {
		key := a.Key
		if a.Namespace != "" {
			key = a.Namespace + ":" + key
		}
		if a.Val == "" && node.Namespace == "" && isBooleanAttr(key) {
			if _, err := io.WriteString(w, " "+key); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(w, " "+key+`="`+html.EscapeString(a.Val)+`"`); err != nil {
			return err
		}
	}
	return nil
}

func hasElementChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return true
		}
	}
	return false
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	io.WriteString(w, strings.Repeat(r.config.Indent, depth))
}
