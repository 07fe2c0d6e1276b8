package dataobj

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	apperr "roguewar-client/internal/errors"
)

// ToJSON encodes o as JSON text. Keys are sorted, so output is stable; pretty
// output is indented by four spaces.
func ToJSON(o Object, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "    ")
	}
	if err := enc.Encode(ToValueTree(o)); err != nil {
		return nil, apperr.WrapInternal(fmt.Sprintf("encode %s", o.TypeTag()), err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// FromJSON parses data as a JSON object and populates o from it.
func FromJSON(o Object, data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return apperr.WrapDecode(fmt.Sprintf("parse %s", o.TypeTag()), err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return apperr.Decodef("parse %s: trailing data after JSON value", o.TypeTag())
	}
	tree, ok := v.(Tree)
	if !ok {
		return apperr.Decodef("parse %s: want JSON object, got %T", o.TypeTag(), v)
	}
	return FromValueTree(o, tree)
}

// FromAny populates o from an already parsed value tree or from raw JSON
// text given as []byte, json.RawMessage or string.
func FromAny(o Object, v any) error {
	switch x := v.(type) {
	case Tree:
		return FromValueTree(o, x)
	case []byte:
		return FromJSON(o, x)
	case json.RawMessage:
		return FromJSON(o, x)
	case string:
		return FromJSON(o, []byte(x))
	case nil:
		return apperr.Decodef("parse %s: no input", o.TypeTag())
	default:
		return apperr.Decodef("parse %s: unsupported input %T", o.TypeTag(), v)
	}
}

var fieldCmp = cmpopts.EquateEmpty()

// Equal reports whether a and b share a type tag and every declared scalar
// field is equal. Nested objects are not compared.
func Equal(a, b Object) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.TypeTag() != b.TypeTag() {
		return false
	}
	af, bf := a.Fields(), b.Fields()
	if len(af) != len(bf) {
		return false
	}
	for i := range af {
		if af[i].Name != bf[i].Name {
			return false
		}
		if !cmp.Equal(af[i].get(), bf[i].get(), fieldCmp) {
			return false
		}
	}
	return true
}

// IsOfType reports whether o carries the given type tag.
func IsOfType(o Object, tag string) bool {
	return o != nil && o.TypeTag() == tag
}

// Describe renders the scalar fields of o as "name : value" lines.
func Describe(o Object) string {
	var sb strings.Builder
	for _, f := range o.Fields() {
		v := f.get()
		if v == nil {
			fmt.Fprintf(&sb, "%s : \n", f.Name)
			continue
		}
		fmt.Fprintf(&sb, "%s : %v\n", f.Name, v)
	}
	return sb.String()
}

// ToYAML encodes the value tree of o as YAML.
func ToYAML(o Object) ([]byte, error) {
	out, err := yaml.Marshal(ToValueTree(o))
	if err != nil {
		return nil, apperr.WrapInternal(fmt.Sprintf("encode %s as yaml", o.TypeTag()), err)
	}
	return out, nil
}
