package skooma

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/skooma-dev/skooma/pkg/dom"
)

// PropertyName converts a camelCase style key to a hyphenated CSS property
// name: backgroundColor becomes background-color.
//
// A leading capital gets a hyphen of its own before the usual conversion,
// so WebkitTransition becomes --webkit-transition. Browsers read that as a
// custom property; vendor prefixes must be written as "-webkit-transition".
func PropertyName(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range key {
		if r >= 'A' && r <= 'Z' {
			if i == 0 {
				b.WriteByte('-')
			}
			b.WriteByte('-')
			b.WriteRune(r + 'a' - 'A')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ApplyStyle applies styles to decl. styles is either a mapping from
// camelCase key to value, where a nil value removes the property, or a
// string that replaces the whole declaration block.
func ApplyStyle(decl dom.StyleDeclaration, styles any) error {
	var props []Prop
	switch s := styles.(type) {
	case string:
		return decl.SetCSSText(s)
	case Props:
		props = s.props()
	case map[string]any:
		props = Props(s).props()
	case []Prop:
		props = s
	case Prop:
		props = []Prop{s}
	default:
		rv := reflect.ValueOf(styles)
		if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
			return failure(codeUnsupportedStyle, fmt.Sprintf("%T", styles))
		}
		m := make(Props, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		props = m.props()
	}

	for _, p := range props {
		name := PropertyName(p.Key)
		if p.Value == nil {
			decl.RemoveProperty(name)
			continue
		}
		if err := decl.SetProperty(name, jsString(p.Value)); err != nil {
			return err
		}
	}
	return nil
}
