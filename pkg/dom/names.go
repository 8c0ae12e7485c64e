package dom

import (
	"strings"
	"unicode"
)

// isNameStart reports whether r can start an XML Name.
func isNameStart(r rune) bool {
	return r == ':' || r == '_' || unicode.IsLetter(r) || r > 0x7F && !unicode.IsSpace(r)
}

// isNameChar reports whether r can continue an XML Name.
func isNameChar(r rune) bool {
	return isNameStart(r) || r == '-' || r == '.' || unicode.IsDigit(r) || r == 0xB7
}

// validName reports whether s is an XML Name.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isNameStart(r) {
				return false
			}
			continue
		}
		if !isNameChar(r) {
			return false
		}
	}
	return true
}

// validateQualifiedName splits a qualified name into prefix and local name
// and applies the namespace constraints of createElementNS.
func validateQualifiedName(namespace, qualifiedName string) (prefix, local string, err error) {
	if !validName(qualifiedName) {
		return "", "", exception("InvalidCharacterError", "%q is not a valid qualified name", qualifiedName)
	}
	local = qualifiedName
	if i := strings.IndexByte(qualifiedName, ':'); i >= 0 {
		prefix, local = qualifiedName[:i], qualifiedName[i+1:]
		if prefix == "" || local == "" || strings.Contains(local, ":") {
			return "", "", exception("InvalidCharacterError", "%q is not a valid qualified name", qualifiedName)
		}
	}
	switch {
	case prefix != "" && namespace == "":
		return "", "", exception("NamespaceError", "prefix %q requires a namespace", prefix)
	case prefix == "xml" && namespace != XMLNamespace:
		return "", "", exception("NamespaceError", "prefix xml requires the XML namespace")
	case (prefix == "xmlns" || qualifiedName == "xmlns") != (namespace == XMLNSNamespace):
		return "", "", exception("NamespaceError", "xmlns names require the XMLNS namespace")
	}
	return prefix, local, nil
}

// IsValidCustomElementName reports whether name is a valid custom element
// name: lowercase, starting with a letter, containing a hyphen and not one
// of the reserved hyphenated names.
func IsValidCustomElementName(name string) bool {
	if name == "" || name[0] < 'a' || name[0] > 'z' || !strings.Contains(name, "-") {
		return false
	}
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			return false
		}
	}
	return !reservedCustomNames[name]
}

var reservedCustomNames = map[string]bool{
	"annotation-xml":   true,
	"color-profile":    true,
	"font-face":        true,
	"font-face-src":    true,
	"font-face-uri":    true,
	"font-face-format": true,
	"font-face-name":   true,
	"missing-glyph":    true,
}

// shadowHosts are the built-in elements that accept attachShadow.
var shadowHosts = map[string]bool{
	"article":    true,
	"aside":      true,
	"blockquote": true,
	"body":       true,
	"div":        true,
	"footer":     true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"header":     true,
	"main":       true,
	"nav":        true,
	"p":          true,
	"section":    true,
	"span":       true,
}

// canHostShadow reports whether an element accepts a shadow root.
func canHostShadow(namespace, local string) bool {
	if namespace != HTMLNamespace {
		return false
	}
	return shadowHosts[local] || IsValidCustomElementName(local)
}
