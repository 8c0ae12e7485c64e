package skooma

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/skooma-dev/skooma/pkg/dom"
)

type label string

type point struct{ x, y int }

func (p point) String() string { return "point" }

func TestClassify(t *testing.T) {
	doc := dom.NewDocument()
	text := doc.CreateTextNode("t")

	tests := []struct {
		name  string
		value any
		want  Kind
	}{
		{"nil", nil, KindList},
		{"string", "x", KindText},
		{"named string", label("x"), KindText},
		{"stringer", point{1, 2}, KindText},
		{"duration", time.Second, KindNumber},
		{"int", 1, KindNumber},
		{"float32", float32(1.5), KindNumber},
		{"node", text, KindNode},
		{"prop", P("id", "x"), KindOptions},
		{"props", Props{"id": "x"}, KindOptions},
		{"map", map[string]any{"id": "x"}, KindOptions},
		{"string map", map[string]string{"id": "x"}, KindOptions},
		{"prop slice", []Prop{P("id", "x")}, KindOptions},
		{"any slice", []any{"a", 1}, KindList},
		{"int slice", []int{1, 2}, KindList},
		{"arg", Text("x"), KindText},
		{"arg slice", []Arg{Text("x")}, KindList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.value)
			if err != nil {
				t.Fatalf("Classify(%v) error = %v", tt.value, err)
			}
			if got.Kind() != tt.want {
				t.Errorf("Classify(%v).Kind() = %v, want %v", tt.value, got.Kind(), tt.want)
			}
		})
	}
}

func TestClassifyErrors(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"bool", true},
		{"func", func() {}},
		{"chan", make(chan int)},
		{"struct", struct{ A int }{1}},
		{"int-keyed map", map[int]string{1: "a"}},
		{"nested", []any{"ok", false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.value)
			if !errors.Is(err, ErrUnsupportedArgument) {
				t.Errorf("Classify(%v) error = %v, want ErrUnsupportedArgument", tt.value, err)
			}
		})
	}
}

func TestPropsSortedOrder(t *testing.T) {
	got := Props{"b": 1, "a": 2, "c": 3}.props()
	want := []Prop{{"a", 2}, {"b", 1}, {"c", 3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("props() mismatch (-want +got):\n%s", diff)
	}
}

func TestArgString(t *testing.T) {
	a := List(Text("x"), Int(2), Opts(P("id", "a"), P("class", "b")))
	want := `List(Text("x"), Number(2), Options(id, class))`
	if got := a.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
