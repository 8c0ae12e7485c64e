package skooma

import (
	"fmt"
	"reflect"

	"github.com/skooma-dev/skooma/pkg/dom"
)

// Special option keys.
const (
	StyleKey      = "style"
	ShadowRootKey = "shadowRoot"
)

// Parse applies args to target with the default policy: every event
// handler cancels the event's default action before it runs.
func Parse(doc dom.Document, target dom.ParentNode, args ...any) error {
	return parseValues(doc, target, args, Options{})
}

func parseValues(doc dom.Document, target dom.ParentNode, values []any, opts Options) error {
	args, err := ClassifyAll(values)
	if err != nil {
		return err
	}
	p := &parser{doc: doc, preventDefault: !opts.AllowDefault}
	return p.parse(target, args)
}

// parser walks arguments into a target node.
type parser struct {
	doc            dom.Document
	preventDefault bool
}

func (p *parser) parse(target dom.ParentNode, args []Arg) error {
	parent := target
	el, isElement := target.(dom.Element)
	if isElement {
		if content := el.Content(); content != nil {
			parent = content
		}
	}

	for _, arg := range args {
		var err error
		switch arg.kind {
		case KindText:
			err = parent.AppendChild(p.doc.CreateTextNode(arg.text))
		case KindNumber:
			err = parent.AppendChild(p.doc.CreateTextNode(FormatNumber(arg.num)))
		case KindNode:
			err = parent.AppendChild(arg.node)
		case KindList:
			err = p.parse(target, arg.list)
		case KindOptions:
			if !isElement {
				return failure(codeNotElement, target.NodeName())
			}
			err = p.apply(el, arg.props)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// apply interprets one options mapping against el.
func (p *parser) apply(el dom.Element, props []Prop) error {
	for _, prop := range props {
		key, value := prop.Key, prop.Value

		if key == StyleKey {
			if err := ApplyStyle(el.Style(), value); err != nil {
				return err
			}
			continue
		}

		if key == ShadowRootKey {
			root := el.ShadowRoot()
			if root == nil {
				var err error
				if root, err = el.AttachShadow(dom.ShadowRootInit{Mode: dom.ShadowRootOpen}); err != nil {
					return err
				}
			}
			child, err := Classify(value)
			if err != nil {
				return err
			}
			if err := p.parse(root, []Arg{child}); err != nil {
				return err
			}
			continue
		}

		if isFunc(value) {
			handler, err := listenerOf(value)
			if err != nil {
				return err
			}
			if handler != nil {
				el.AddEventListener(EventType(key), p.wrap(handler))
			}
			continue
		}

		if b, ok := value.(bool); ok {
			if !b {
				el.RemoveAttribute(key)
				continue
			}
			if !el.HasAttribute(key) {
				if err := el.SetAttribute(key, ""); err != nil {
					return err
				}
			}
			continue
		}

		s, err := SerializeAttribute(value)
		if err != nil {
			return err
		}
		if err := el.SetAttribute(key, s); err != nil {
			return err
		}
	}
	return nil
}

// wrap applies the default-action policy to a handler.
func (p *parser) wrap(h dom.Listener) dom.Listener {
	if !p.preventDefault {
		return h
	}
	return func(e *dom.Event) {
		e.PreventDefault()
		h(e)
	}
}

// EventType derives the DOM event type from an option key: a leading "on"
// followed by an uppercase letter is dropped and that letter lowercased.
// onClick becomes click, onMouseDown becomes mouseDown, and keys without
// the prefix (including "onclick") are used as-is.
func EventType(key string) string {
	if len(key) > 2 && key[0] == 'o' && key[1] == 'n' && key[2] >= 'A' && key[2] <= 'Z' {
		return string(key[2]+'a'-'A') + key[3:]
	}
	return key
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

// listenerOf adapts the supported handler signatures. A nil function
// yields a nil listener and registers nothing.
func listenerOf(v any) (dom.Listener, error) {
	switch h := v.(type) {
	case dom.Listener:
		if h == nil {
			return nil, nil
		}
		return h, nil
	case func(*dom.Event):
		if h == nil {
			return nil, nil
		}
		return h, nil
	case func():
		if h == nil {
			return nil, nil
		}
		return func(*dom.Event) { h() }, nil
	}
	return nil, failure(codeUnsupportedHandler, fmt.Sprintf("%T", v))
}
