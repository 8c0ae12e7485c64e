package skooma

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// SerializeAttribute converts an attribute value to its string form:
// strings and numbers as-is, slices and arrays joined by single spaces
// (token lists such as classes), anything else as JSON.
func SerializeAttribute(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	rv := reflect.ValueOf(v)
	if f, ok := numberOf(rv); ok {
		return FormatNumber(f), nil
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = jsString(rv.Index(i).Interface())
		}
		return strings.Join(parts, " "), nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", failure(codeAttributeValue, fmt.Sprintf("%T", v)).Wrap(err)
	}
	return string(b), nil
}

// FormatNumber formats f the way JavaScript's Number#toString does.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		mant, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// jsString converts v the way JavaScript's String() does for the values
// Go callers pass: nil is empty, nested lists join with commas. As in
// Classify and SerializeAttribute, a numeric or string kind wins over a
// String method, so time.Second is "1000000000".
func jsString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	}
	rv := reflect.ValueOf(v)
	if f, ok := numberOf(rv); ok {
		return FormatNumber(f)
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = jsString(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}
