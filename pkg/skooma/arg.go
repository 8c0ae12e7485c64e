package skooma

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/skooma-dev/skooma/pkg/dom"
)

// Kind is the Arg variant discriminator.
type Kind uint8

const (
	KindText    Kind = iota // Appended as a text node
	KindNumber              // Appended as a text node in JS number format
	KindNode                // Appended as-is
	KindList                // Flattened into the surrounding arguments
	KindOptions             // Attributes, styles, events and shadow content
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindNumber:
		return "Number"
	case KindNode:
		return "Node"
	case KindList:
		return "List"
	case KindOptions:
		return "Options"
	default:
		return "Unknown"
	}
}

// Arg is one positional argument of an element constructor.
type Arg struct {
	kind  Kind
	text  string
	num   float64
	node  dom.Node
	list  []Arg
	props []Prop
}

// Kind returns the variant of a.
func (a Arg) Kind() Kind { return a.kind }

// String returns a debug representation of a.
func (a Arg) String() string {
	switch a.kind {
	case KindText:
		return fmt.Sprintf("Text(%q)", a.text)
	case KindNumber:
		return "Number(" + FormatNumber(a.num) + ")"
	case KindNode:
		return "Node(" + a.node.NodeName() + ")"
	case KindList:
		parts := make([]string, len(a.list))
		for i, v := range a.list {
			parts[i] = v.String()
		}
		return "List(" + strings.Join(parts, ", ") + ")"
	default:
		keys := make([]string, len(a.props))
		for i, p := range a.props {
			keys[i] = p.Key
		}
		return "Options(" + strings.Join(keys, ", ") + ")"
	}
}

// Prop is a single key of an options mapping.
type Prop struct {
	Key   string
	Value any
}

// Props is an options mapping. Keys are applied in sorted order; use
// Opts to control the order explicitly.
type Props map[string]any

// props returns the mapping as ordered props.
func (p Props) props() []Prop {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Prop, len(keys))
	for i, k := range keys {
		out[i] = Prop{Key: k, Value: p[k]}
	}
	return out
}

// Text creates a text argument.
func Text(s string) Arg { return Arg{kind: KindText, text: s} }

// Textf creates a formatted text argument.
func Textf(format string, args ...any) Arg { return Text(fmt.Sprintf(format, args...)) }

// Number creates a numeric argument.
func Number(f float64) Arg { return Arg{kind: KindNumber, num: f} }

// Int creates a numeric argument from an int.
func Int(i int) Arg { return Number(float64(i)) }

// Child creates an argument that appends n.
func Child(n dom.Node) Arg { return Arg{kind: KindNode, node: n} }

// List creates a nested argument list.
func List(args ...Arg) Arg { return Arg{kind: KindList, list: args} }

// Opts creates an options argument with keys applied in the given order.
func Opts(props ...Prop) Arg { return Arg{kind: KindOptions, props: props} }

// P is shorthand for a Prop.
func P(key string, value any) Prop { return Prop{Key: key, Value: value} }

// Classify converts a Go value into an Arg:
//
//   - Arg is returned unchanged
//   - strings and fmt.Stringer values become Text
//   - integer and float kinds become Number
//   - dom.Node becomes a node argument
//   - Prop, []Prop, Props and string-keyed maps become Options
//   - any other slice or array becomes a List of its classified elements
//   - nil becomes an empty List and is skipped
//
// Every other value (booleans, functions, channels, structs) fails with
// ErrUnsupportedArgument.
func Classify(v any) (Arg, error) {
	switch x := v.(type) {
	case nil:
		return List(), nil
	case Arg:
		return x, nil
	case string:
		return Text(x), nil
	case dom.Node:
		return Child(x), nil
	case Prop:
		return Opts(x), nil
	case []Prop:
		return Opts(x...), nil
	case Props:
		return Opts(x.props()...), nil
	case map[string]any:
		return Opts(Props(x).props()...), nil
	case []Arg:
		return List(x...), nil
	case []any:
		return classifyList(x)
	}

	rv := reflect.ValueOf(v)
	if f, ok := numberOf(rv); ok {
		return Number(f), nil
	}
	switch rv.Kind() {
	case reflect.String:
		return Text(rv.String()), nil
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return classifyList(items)
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			props := make(Props, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				props[iter.Key().String()] = iter.Value().Interface()
			}
			return Opts(props.props()...), nil
		}
	}
	if s, ok := v.(fmt.Stringer); ok {
		return Text(s.String()), nil
	}
	return Arg{}, failure(codeUnsupportedArgument, fmt.Sprintf("%T", v))
}

// ClassifyAll classifies every value in vs.
func ClassifyAll(vs []any) ([]Arg, error) {
	out := make([]Arg, 0, len(vs))
	for _, v := range vs {
		a, err := Classify(v)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func classifyList(items []any) (Arg, error) {
	args, err := ClassifyAll(items)
	if err != nil {
		return Arg{}, err
	}
	return List(args...), nil
}

// numberOf returns the float64 value of integer and float kinds.
func numberOf(rv reflect.Value) (float64, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
