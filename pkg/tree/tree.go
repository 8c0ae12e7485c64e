package tree

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/skooma-dev/skooma/internal/errors"
	"github.com/skooma-dev/skooma/pkg/dom"
	"github.com/skooma-dev/skooma/pkg/skooma"
)

// Reserved keys of an element object.
const (
	TagKey        = "$tag"
	NSKey         = "$ns"
	ChildrenKey   = "$children"
	NamespaceSVG  = "svg"
	NamespaceHTML = "html"
)

// Format is a tree document encoding.
type Format int

const (
	JSON Format = iota
	YAML
)

// String returns the string representation of the Format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatOf returns the format implied by a file extension.
func FormatOf(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, true
	case ".yaml", ".yml":
		return YAML, true
	}
	return 0, false
}

// Decoder builds elements from tree documents into one document.
type Decoder struct {
	html skooma.HTML
	svg  skooma.SVG

	// name is the source file reported in errors.
	name string
}

// NewDecoder returns a Decoder that creates elements in doc. The options
// apply to both namespaces.
func NewDecoder(doc dom.Document, opts ...skooma.Option) *Decoder {
	return &Decoder{
		html: skooma.NewHTML(doc, opts...),
		svg:  skooma.NewSVG(doc, opts...),
	}
}

// Decode reads one document in format f from r and builds its element.
func (d *Decoder) Decode(r io.Reader, f Format) (dom.Element, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("E101").Wrap(err)
	}

	var root any
	switch f {
	case JSON:
		root, err = readJSON(src)
	case YAML:
		root, err = readYAML(src)
	default:
		return nil, errors.New("E101").WithDetail("unknown format " + f.String())
	}
	if err != nil {
		return nil, d.located(err)
	}

	obj, ok := root.(*object)
	if !ok {
		return nil, errors.New("E101").WithDetail("the top-level value must be an element object")
	}
	if _, ok := obj.get(TagKey); !ok {
		return nil, d.at(errors.New("E101").WithDetail("the top-level object has no "+TagKey), obj.pos)
	}
	return d.element(obj)
}

// DecodeFile decodes the document at path, choosing the format from its
// extension. Errors carry the file position when one is known.
func (d *Decoder) DecodeFile(path string) (dom.Element, error) {
	f, ok := FormatOf(path)
	if !ok {
		return nil, errors.New("E101").
			WithDetail("unsupported file extension " + filepath.Ext(path)).
			WithSuggestion("Use .json, .yaml or .yml")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.New("E101").Wrap(err)
	}
	defer file.Close()

	prev := d.name
	d.name = path
	defer func() { d.name = prev }()
	return d.Decode(file, f)
}

// element builds an element object.
func (d *Decoder) element(obj *object) (dom.Element, error) {
	tagField, _ := obj.get(TagKey)
	tag, ok := tagField.value.(string)
	if !ok {
		return nil, d.at(errors.New("E103").WithDetail(fmt.Sprintf("got %s", describe(tagField.value))), tagField.pos)
	}

	ns := d.html.Namespace
	if nsField, ok := obj.get(NSKey); ok {
		switch nsField.value {
		case NamespaceHTML:
		case NamespaceSVG:
			ns = d.svg.Namespace
		default:
			return nil, d.at(errors.New("E102").WithDetail(fmt.Sprintf("got %s", describe(nsField.value))), nsField.pos)
		}
	}

	var props []skooma.Prop
	var children []any
	for _, f := range obj.fields {
		switch f.key {
		case TagKey, NSKey:
		case ChildrenKey:
			list, ok := f.value.([]any)
			if !ok {
				list = []any{f.value}
			}
			for _, c := range list {
				v, err := d.child(c)
				if err != nil {
					return nil, err
				}
				children = append(children, v)
			}
		default:
			v, err := d.option(f.value)
			if err != nil {
				return nil, err
			}
			props = append(props, skooma.P(f.key, v))
		}
	}

	args := make([]any, 0, len(children)+1)
	args = append(args, skooma.Opts(props...))
	args = append(args, children...)

	el, err := ns.Create(tag, args...)
	if err != nil {
		var se *errors.SkoomaError
		if stderrors.As(err, &se) && se.Location == nil {
			return nil, d.at(se, obj.pos)
		}
		return nil, err
	}
	return el, nil
}

// child converts a value in a children list.
func (d *Decoder) child(v any) (any, error) {
	switch x := v.(type) {
	case *object:
		if _, ok := x.get(TagKey); ok {
			return d.element(x)
		}
		props := make([]skooma.Prop, 0, len(x.fields))
		for _, f := range x.fields {
			val, err := d.option(f.value)
			if err != nil {
				return nil, err
			}
			props = append(props, skooma.P(f.key, val))
		}
		return skooma.Opts(props...), nil
	case []any:
		out := make([]any, 0, len(x))
		for _, c := range x {
			val, err := d.child(c)
			if err != nil {
				return nil, err
			}
			out = append(out, val)
		}
		return out, nil
	case bool:
		return strconv.FormatBool(x), nil
	}
	return v, nil
}

// option converts an option value. Nested objects become Props so that
// style mappings apply and other attributes encode as JSON; element
// objects are built, for use as shadowRoot content.
func (d *Decoder) option(v any) (any, error) {
	switch x := v.(type) {
	case *object:
		if _, ok := x.get(TagKey); ok {
			return d.element(x)
		}
		props := make(skooma.Props, len(x.fields))
		for _, f := range x.fields {
			val, err := d.option(f.value)
			if err != nil {
				return nil, err
			}
			props[f.key] = val
		}
		return props, nil
	case []any:
		out := make([]any, 0, len(x))
		for _, c := range x {
			val, err := d.option(c)
			if err != nil {
				return nil, err
			}
			out = append(out, val)
		}
		return out, nil
	}
	return v, nil
}

func (d *Decoder) at(err *errors.SkoomaError, pos position) *errors.SkoomaError {
	if d.name == "" || pos.line == 0 {
		if pos.line > 0 {
			err.Location = &errors.Location{Line: pos.line, Column: pos.column}
		}
		return err
	}
	return err.WithLocation(d.name, pos.line, pos.column)
}

func (d *Decoder) located(err error) error {
	var de *decodeError
	if stderrors.As(err, &de) {
		return d.at(de.err, de.pos)
	}
	return err
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case *object:
		return "an object"
	case []any:
		return "a list"
	}
	return fmt.Sprintf("%v", v)
}

// Files returns the tree documents in dir, sorted by name.
func Files(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := FormatOf(e.Name()); ok {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Name returns the document name of a tree file: its base name without
// extension.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
