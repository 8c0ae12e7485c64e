package dom

import (
	"strings"

	"github.com/aymerick/douceur/parser"
)

type styleProperty struct {
	name      string
	value     string
	important bool
}

// styleDeclaration is the inline style of an in-memory element. Every
// mutation is written back to the element's style attribute.
type styleDeclaration struct {
	owner *element
	props []styleProperty
}

// normalizeProperty lowercases property names except custom properties.
func normalizeProperty(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "--") {
		return name
	}
	return asciiLower(name)
}

func (s *styleDeclaration) index(name string) int {
	name = normalizeProperty(name)
	for i, p := range s.props {
		if p.name == name {
			return i
		}
	}
	return -1
}

// SetProperty sets name to value. An empty value removes the property.
func (s *styleDeclaration) SetProperty(name, value string) error {
	name = normalizeProperty(name)
	if name == "" {
		return nil
	}
	if value == "" {
		s.RemoveProperty(name)
		return nil
	}
	if i := s.index(name); i >= 0 {
		s.props[i].value = value
		s.props[i].important = false
	} else {
		s.props = append(s.props, styleProperty{name: name, value: value})
	}
	s.sync()
	return nil
}

// RemoveProperty removes name and returns its previous value.
func (s *styleDeclaration) RemoveProperty(name string) string {
	i := s.index(name)
	if i < 0 {
		return ""
	}
	old := s.props[i].value
	s.props = append(s.props[:i], s.props[i+1:]...)
	s.sync()
	return old
}

// GetPropertyValue returns the value of name, or "".
func (s *styleDeclaration) GetPropertyValue(name string) string {
	if i := s.index(name); i >= 0 {
		return s.props[i].value
	}
	return ""
}

func (s *styleDeclaration) Length() int { return len(s.props) }

// Item returns the name of the i-th property, or "".
func (s *styleDeclaration) Item(i int) string {
	if i < 0 || i >= len(s.props) {
		return ""
	}
	return s.props[i].name
}

// CSSText serialises the declaration block.
func (s *styleDeclaration) CSSText() string {
	parts := make([]string, 0, len(s.props))
	for _, p := range s.props {
		decl := p.name + ": " + p.value
		if p.important {
			decl += " !important"
		}
		parts = append(parts, decl+";")
	}
	return strings.Join(parts, " ")
}

// SetCSSText replaces every property with the declarations in text.
func (s *styleDeclaration) SetCSSText(text string) error {
	s.parse(text)
	s.sync()
	return nil
}

// parse replaces the properties with those in text without writing back.
// Unparseable text leaves the declaration empty, as browsers drop invalid
// declarations.
func (s *styleDeclaration) parse(text string) {
	s.props = s.props[:0]
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	// The parser loses the value of a final declaration without a
	// terminating semicolon.
	if !strings.HasSuffix(text, ";") {
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return
	}
	for _, d := range decls {
		name := normalizeProperty(d.Property)
		if name == "" {
			continue
		}
		p := styleProperty{name: name, value: d.Value, important: d.Important}
		if i := s.index(name); i >= 0 {
			s.props[i] = p
			continue
		}
		s.props = append(s.props, p)
	}
}

func (s *styleDeclaration) sync() {
	s.owner.setRaw("style", s.CSSText())
}
