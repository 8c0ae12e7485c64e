package dom

import "fmt"

// DOMException is an error raised by a DOM operation.
type DOMException struct {
	// Name is the DOM exception name (e.g., "InvalidCharacterError").
	Name string

	// Message describes the failing operation.
	Message string
}

// Error implements the error interface.
func (e *DOMException) Error() string {
	if e.Message == "" {
		return e.Name
	}
	return e.Name + ": " + e.Message
}

// Is reports whether target is a DOMException with the same name.
func (e *DOMException) Is(target error) bool {
	t, ok := target.(*DOMException)
	return ok && t.Name == e.Name
}

// Sentinel exceptions for errors.Is.
var (
	ErrInvalidCharacter = &DOMException{Name: "InvalidCharacterError"}
	ErrNamespace        = &DOMException{Name: "NamespaceError"}
	ErrNotSupported     = &DOMException{Name: "NotSupportedError"}
	ErrHierarchyRequest = &DOMException{Name: "HierarchyRequestError"}
)

func exception(name, format string, args ...any) *DOMException {
	return &DOMException{Name: name, Message: fmt.Sprintf(format, args...)}
}
