package skooma

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/skooma-dev/skooma/pkg/dom"
)

func newHTML() (dom.Document, HTML) {
	doc := dom.NewDocument()
	return doc, NewHTML(doc)
}

func outer(t *testing.T, el dom.Element) string {
	t.Helper()
	s, err := el.OuterHTML()
	if err != nil {
		t.Fatalf("OuterHTML: %v", err)
	}
	return s
}

func TestButtonScenario(t *testing.T) {
	_, h := newHTML()

	btn := h.Button("Delete everything", Props{"class": []string{"warning", "important"}})

	if btn.LocalName() != "button" {
		t.Errorf("LocalName() = %q, want button", btn.LocalName())
	}
	if btn.TextContent() != "Delete everything" {
		t.Errorf("TextContent() = %q", btn.TextContent())
	}
	if v, _ := btn.GetAttribute("class"); v != "warning important" {
		t.Errorf("class = %q, want %q", v, "warning important")
	}
	if got, want := outer(t, btn), `<button class="warning important">Delete everything</button>`; got != want {
		t.Errorf("OuterHTML() = %q, want %q", got, want)
	}
}

func TestTextAndNumbersConcatenateInOrder(t *testing.T) {
	_, h := newHTML()

	p := h.P("a", 1, 2.5, "b", uint8(7), Number(-0.5), Int(3), Text("c"))
	if got := p.TextContent(); got != "a12.5b7-0.53c" {
		t.Errorf("TextContent() = %q", got)
	}
	if len(p.ChildNodes()) != 8 {
		t.Errorf("got %d text nodes, want 8", len(p.ChildNodes()))
	}
}

func TestListFlatteningIsAssociative(t *testing.T) {
	_, h := newHTML()

	nested := h.Div("a", []any{"b", []any{"c", 1, []string{"d", "e"}}}, List(Text("f"), List()), "g")
	flat := h.Div("a", "b", "c", 1, "d", "e", "f", "g")

	if got, want := outer(t, nested), outer(t, flat); got != want {
		t.Errorf("nested = %q, flat = %q", got, want)
	}
	if len(nested.ChildNodes()) != 8 {
		t.Errorf("got %d children, want 8", len(nested.ChildNodes()))
	}
}

func TestNestedOptionsInLists(t *testing.T) {
	_, h := newHTML()

	items := []any{}
	for _, n := range []int{1, 2, 3} {
		items = append(items, h.Li(n))
	}
	ul := h.Ul(items, Props{"class": "numbers"})

	if got, want := outer(t, ul), `<ul class="numbers"><li>1</li><li>2</li><li>3</li></ul>`; got != want {
		t.Errorf("OuterHTML() = %q, want %q", got, want)
	}
}

func TestBooleanAttributes(t *testing.T) {
	doc, h := newHTML()

	input := h.Input(Props{"disabled": true})
	if v, ok := input.GetAttribute("disabled"); !ok || v != "" {
		t.Fatalf("disabled = %q, %v; want empty and present", v, ok)
	}

	input.SetAttribute("disabled", "disabled")
	if err := Parse(doc, input, Props{"disabled": true}); err != nil {
		t.Fatal(err)
	}
	if v, _ := input.GetAttribute("disabled"); v != "disabled" {
		t.Errorf("true on a present attribute should be a no-op, got %q", v)
	}

	if err := Parse(doc, input, Props{"disabled": false, "hidden": false}); err != nil {
		t.Fatal(err)
	}
	if input.HasAttribute("disabled") || input.HasAttribute("hidden") {
		t.Error("false should leave the attribute absent")
	}
}

func TestAttributeValues(t *testing.T) {
	_, h := newHTML()

	el := h.Div(Opts(
		P("id", "main"),
		P("tabindex", 3),
		P("data-config", map[string]any{"a": 1}),
		P("aria-label", "x"),
	))

	want := []dom.Attr{
		{Name: "id", Value: "main"},
		{Name: "tabindex", Value: "3"},
		{Name: "data-config", Value: `{"a":1}`},
		{Name: "aria-label", Value: "x"},
	}
	if diff := cmp.Diff(want, el.Attributes()); diff != "" {
		t.Errorf("Attributes() mismatch (-want +got):\n%s", diff)
	}
}

func TestStyleMapping(t *testing.T) {
	doc, h := newHTML()

	el := h.Div(Props{"style": Props{"backgroundColor": "red", "width": 10}})
	style := el.Style()

	if got := style.GetPropertyValue("background-color"); got != "red" {
		t.Errorf("background-color = %q, want red", got)
	}
	if got := style.GetPropertyValue("width"); got != "10" {
		t.Errorf("width = %q, want 10", got)
	}

	if err := Parse(doc, el, Props{"style": Props{"backgroundColor": nil}}); err != nil {
		t.Fatal(err)
	}
	if got := style.GetPropertyValue("background-color"); got != "" {
		t.Errorf("background-color should be removed, got %q", got)
	}
}

func TestStyleString(t *testing.T) {
	_, h := newHTML()

	el := h.Div(Props{"style": "color: red; margin: 0"})
	if el.Style().GetPropertyValue("margin") != "0" {
		t.Errorf("style text should replace the declaration, got %q", el.Style().CSSText())
	}
}

func TestStyleUnsupported(t *testing.T) {
	_, h := newHTML()

	_, err := h.Create("div", Props{"style": 12})
	if !errors.Is(err, ErrUnsupportedStyle) {
		t.Errorf("error = %v, want ErrUnsupportedStyle", err)
	}
}

func TestEventHandler(t *testing.T) {
	_, h := newHTML()

	var calls int
	var prevented bool
	btn := h.Button("Go", Props{"onClick": func(e *dom.Event) {
		calls++
		prevented = e.DefaultPrevented()
	}})

	btn.Click()
	if calls != 1 {
		t.Fatalf("handler called %d times after one click", calls)
	}
	if !prevented {
		t.Error("default action should be prevented before the handler runs")
	}
	btn.Click()
	if calls != 2 {
		t.Errorf("handler called %d times after two clicks", calls)
	}
	if btn.HasAttribute("onclick") {
		t.Error("handlers must not become attributes")
	}
}

func TestEventHandlerSignatures(t *testing.T) {
	_, h := newHTML()

	var got []string
	el := h.Div(Opts(
		P("onMouseDown", func() { got = append(got, "mouseDown") }),
		P("onclick", dom.Listener(func(*dom.Event) { got = append(got, "onclick") })),
		P("onKeyUp", (func())(nil)),
	))

	el.DispatchEvent(dom.NewEvent("mouseDown"))
	el.DispatchEvent(dom.NewEvent("onclick"))
	el.DispatchEvent(dom.NewEvent("mousedown"))

	if diff := cmp.Diff([]string{"mouseDown", "onclick"}, got); diff != "" {
		t.Errorf("dispatch mismatch (-want +got):\n%s", diff)
	}

	if _, err := h.Create("div", Props{"onClick": func(int) {}}); !errors.Is(err, ErrUnsupportedHandler) {
		t.Errorf("error = %v, want ErrUnsupportedHandler", err)
	}
}

func TestWithoutPreventDefault(t *testing.T) {
	doc := dom.NewDocument()
	h := NewHTML(doc, WithoutPreventDefault())

	var prevented bool
	a := h.A(Props{"onClick": func(e *dom.Event) { prevented = e.DefaultPrevented() }})
	a.Click()

	if prevented {
		t.Error("handler should see an uncancelled event")
	}
}

func TestShadowRoot(t *testing.T) {
	doc, h := newHTML()

	el := h.Div(Props{"shadowRoot": "hi"})
	root := el.ShadowRoot()
	if root == nil {
		t.Fatal("shadow root should be created")
	}
	if root.Mode() != dom.ShadowRootOpen {
		t.Errorf("Mode() = %q, want open", root.Mode())
	}
	children := root.ChildNodes()
	if len(children) != 1 || children[0].NodeType() != dom.TextNode || children[0].TextContent() != "hi" {
		t.Errorf("shadow root children = %v", children)
	}
	if el.TextContent() != "" {
		t.Error("shadow content must not leak into the light tree")
	}

	if err := Parse(doc, el, Props{"shadowRoot": []any{h.Slot(), "!"}}); err != nil {
		t.Fatal(err)
	}
	if el.ShadowRoot() != root {
		t.Error("existing shadow root should be reused")
	}
	if got := len(root.ChildNodes()); got != 3 {
		t.Errorf("shadow root has %d children, want 3", got)
	}
}

func TestShadowRootErrors(t *testing.T) {
	_, h := newHTML()

	if _, err := h.Create("button", Props{"shadowRoot": "x"}); !errors.Is(err, dom.ErrNotSupported) {
		t.Errorf("error = %v, want NotSupportedError", err)
	}
	if _, err := h.Create("div", Props{"shadowRoot": Props{"class": "x"}}); !errors.Is(err, ErrNotElement) {
		t.Errorf("error = %v, want ErrNotElement", err)
	}
}

func TestTemplateContent(t *testing.T) {
	_, h := newHTML()

	tpl := h.Template(Props{"id": "row"}, h.Tr(h.Td("cell")))

	if len(tpl.ChildNodes()) != 0 {
		t.Error("children should go to the content fragment")
	}
	if tpl.Content().TextContent() != "cell" {
		t.Errorf("content = %q", tpl.Content().TextContent())
	}
	if v, _ := tpl.GetAttribute("id"); v != "row" {
		t.Errorf("id = %q, options should apply to the template element", v)
	}
}

func TestAppendExistingNode(t *testing.T) {
	doc, h := newHTML()

	text := doc.CreateTextNode("moved")
	span := h.Span(text)
	div := h.Div(span, Child(doc.CreateTextNode("!")))

	if span.ParentNode() != dom.Node(div) {
		t.Error("span should be a child of div")
	}
	if div.TextContent() != "moved!" {
		t.Errorf("TextContent() = %q", div.TextContent())
	}
}

func TestUnsupportedArguments(t *testing.T) {
	_, h := newHTML()

	for _, arg := range []any{true, make(chan int), struct{}{}, func() {}} {
		if _, err := h.Create("div", arg); !errors.Is(err, ErrUnsupportedArgument) {
			t.Errorf("Create(div, %T) error = %v, want ErrUnsupportedArgument", arg, err)
		}
	}
}

func TestErrorCodeAndDetail(t *testing.T) {
	_, h := newHTML()

	tests := []struct {
		name   string
		args   []any
		code   string
		detail string
	}{
		{"bool argument", []any{true}, "E001", "bool"},
		{"channel argument", []any{make(chan int)}, "E001", "chan int"},
		{"numeric style", []any{Props{"style": 12}}, "E002", "int"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Create("div", tt.args...)
			var e *Error
			if !errors.As(err, &e) {
				t.Fatalf("error = %v, want *Error", err)
			}
			if e.Code != tt.code || e.Detail != tt.detail {
				t.Errorf("Code, Detail = %q, %q, want %q, %q", e.Code, e.Detail, tt.code, tt.detail)
			}
		})
	}
}

func TestDOMErrorsPropagate(t *testing.T) {
	_, h := newHTML()

	_, err := h.Create("1bad")
	var domErr *dom.DOMException
	if !errors.As(err, &domErr) || domErr.Name != "InvalidCharacterError" {
		t.Errorf("error = %v, want InvalidCharacterError", err)
	}

	if _, err := h.Create("div", Props{"bad name": "x"}); !errors.Is(err, dom.ErrInvalidCharacter) {
		t.Errorf("error = %v, want InvalidCharacterError", err)
	}
}

func TestElPanics(t *testing.T) {
	_, h := newHTML()

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnsupportedArgument) {
			t.Errorf("recovered %v, want ErrUnsupportedArgument", r)
		}
	}()
	h.Div(false)
}

func TestNilArgumentsAreSkipped(t *testing.T) {
	_, h := newHTML()

	el := h.Div(nil, "x", nil)
	if got := outer(t, el); got != "<div>x</div>" {
		t.Errorf("OuterHTML() = %q", got)
	}
}

func TestComposition(t *testing.T) {
	_, h := newHTML()

	label := h.Label(
		h.Span("Delete everything", Props{"class": []string{"warning", "important"}}),
		h.Button("Click", Props{"onClick": func() {}}),
	)
	got := outer(t, label)
	want := `<label><span class="warning important">Delete everything</span><button>Click</button></label>`
	if got != want {
		t.Errorf("OuterHTML() = %q, want %q", got, want)
	}
	if !strings.HasPrefix(label.TagName(), "LABEL") {
		t.Errorf("TagName() = %q", label.TagName())
	}
}
