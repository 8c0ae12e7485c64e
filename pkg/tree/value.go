package tree

import (
	"bytes"
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/skooma-dev/skooma/internal/errors"
)

// object is a decoded mapping with its keys in document order.
type object struct {
	fields []field
	pos    position
}

type field struct {
	key   string
	value any
	pos   position
}

type position struct {
	line, column int
}

func (o *object) get(key string) (field, bool) {
	for _, f := range o.fields {
		if f.key == key {
			return f, true
		}
	}
	return field{}, false
}

// readJSON decodes src into objects, []any and scalars. encoding/json maps
// would lose key order, so the document is read token by token.
func readJSON(src []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(src))
	r := &jsonReader{dec: dec, src: src}

	v, err := r.value()
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, r.errorf(dec.InputOffset(), "unexpected data after the top-level value")
	}
	return v, nil
}

type jsonReader struct {
	dec *json.Decoder
	src []byte
}

func (r *jsonReader) value() (any, error) {
	offset := r.next(r.dec.InputOffset())
	tok, err := r.dec.Token()
	if err != nil {
		return nil, r.wrap(offset, err)
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := &object{pos: r.position(offset)}
		for r.dec.More() {
			keyOffset := r.next(r.dec.InputOffset())
			keyTok, err := r.dec.Token()
			if err != nil {
				return nil, r.wrap(keyOffset, err)
			}
			v, err := r.value()
			if err != nil {
				return nil, err
			}
			obj.fields = append(obj.fields, field{key: keyTok.(string), value: v, pos: r.position(keyOffset)})
		}
		if _, err := r.dec.Token(); err != nil {
			return nil, r.wrap(r.dec.InputOffset(), err)
		}
		return obj, nil
	default:
		list := []any{}
		for r.dec.More() {
			v, err := r.value()
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		if _, err := r.dec.Token(); err != nil {
			return nil, r.wrap(r.dec.InputOffset(), err)
		}
		return list, nil
	}
}

// next skips separators so offsets point at the token itself.
func (r *jsonReader) next(offset int64) int64 {
	for offset < int64(len(r.src)) {
		switch r.src[offset] {
		case ' ', '\t', '\r', '\n', ',', ':':
			offset++
		default:
			return offset
		}
	}
	return offset
}

func (r *jsonReader) position(offset int64) position {
	line, col := 1, 1
	for _, c := range r.src[:min(offset, int64(len(r.src)))] {
		if c == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return position{line, col}
}

func (r *jsonReader) wrap(offset int64, err error) error {
	if se, ok := err.(*json.SyntaxError); ok {
		offset = se.Offset
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	pos := r.position(offset)
	return &decodeError{pos: pos, err: errors.New("E101").Wrap(err)}
}

func (r *jsonReader) errorf(offset int64, detail string) error {
	return &decodeError{pos: r.position(offset), err: errors.New("E101").WithDetail(detail)}
}

// readYAML decodes src through a yaml.Node so that key order and positions
// survive.
func readYAML(src []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(src, &root); err != nil {
		return nil, &decodeError{err: errors.New("E101").Wrap(err)}
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, &decodeError{err: errors.New("E101").WithDetail("document is empty")}
	}
	x := &yamlExpander{active: make(map[*yaml.Node]bool)}
	return x.value(root.Content[0])
}

// MaxYAMLNodes bounds the number of nodes a YAML document may expand to,
// counting every alias expansion.
const MaxYAMLNodes = 100000

// yamlExpander converts yaml nodes, expanding aliases. It rejects aliases
// that refer to themselves and documents whose expansion exceeds
// MaxYAMLNodes.
type yamlExpander struct {
	active map[*yaml.Node]bool
	nodes  int
}

func (x *yamlExpander) value(n *yaml.Node) (any, error) {
	pos := position{n.Line, n.Column}
	x.nodes++
	if x.nodes > MaxYAMLNodes {
		return nil, &decodeError{pos: pos, err: errors.New("E101").WithDetail("document expands to too many nodes")}
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return x.value(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil || x.active[n.Alias] {
			return nil, &decodeError{pos: pos, err: errors.New("E101").WithDetail("recursive alias *" + n.Value)}
		}
		x.active[n.Alias] = true
		v, err := x.value(n.Alias)
		delete(x.active, n.Alias)
		return v, err
	case yaml.MappingNode:
		obj := &object{pos: pos}
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			value, err := x.value(v)
			if err != nil {
				return nil, err
			}
			obj.fields = append(obj.fields, field{key: k.Value, value: value, pos: position{k.Line, k.Column}})
		}
		return obj, nil
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := x.value(c)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	}

	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, &decodeError{pos: pos, err: errors.New("E101").Wrap(err)}
		}
		return b, nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, &decodeError{pos: pos, err: errors.New("E101").Wrap(err)}
		}
		return f, nil
	}
	return n.Value, nil
}

// decodeError carries a position until the file name is known.
type decodeError struct {
	pos position
	err *errors.SkoomaError
}

func (e *decodeError) Error() string { return e.err.Error() }
func (e *decodeError) Unwrap() error { return e.err }
