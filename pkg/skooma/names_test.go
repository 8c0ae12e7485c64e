package skooma

import "testing"

func TestPropertyName(t *testing.T) {
	tests := map[string]string{
		"color":            "color",
		"backgroundColor":  "background-color",
		"borderTopWidth":   "border-top-width",
		"WebkitTransition": "--webkit-transition",
		"--main-color":     "--main-color",
		"font-size":        "font-size",
	}
	for in, want := range tests {
		if got := PropertyName(in); got != want {
			t.Errorf("PropertyName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEventType(t *testing.T) {
	tests := map[string]string{
		"onClick":     "click",
		"onMouseDown": "mouseDown",
		"onclick":     "onclick",
		"on":          "on",
		"click":       "click",
		"onX":         "x",
	}
	for in, want := range tests {
		if got := EventType(in); got != want {
			t.Errorf("EventType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestKebabCase(t *testing.T) {
	tests := map[string]string{
		"div":           "div",
		"customFoo":     "custom-foo",
		"CustomFoo":     "custom-foo",
		"customFooBar":  "custom-foo-bar",
		"aBC":           "a-bc",
		"already-kebab": "already-kebab",
		"H1":            "h1",
	}
	for in, want := range tests {
		if got := KebabCase(in); got != want {
			t.Errorf("KebabCase(%q) = %q, want %q", in, got, want)
		}
	}
}
