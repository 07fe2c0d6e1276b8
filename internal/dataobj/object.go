// Package dataobj maps typed objects to and from JSON-shaped value trees.
//
// A concrete type declares its serializable fields once, as (name, accessor)
// pairs, plus any nested objects it owns through SubObjectMap descriptors.
// Everything else (value trees, JSON text, YAML, files, equality) is derived
// from those declarations.
package dataobj

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tree is a generic JSON-shaped value: nested maps, []any and scalars.
type Tree = map[string]any

// Object is implemented by every serializable entity.
type Object interface {
	// TypeTag is a fixed string per concrete type. It gates equality and is the
	// default container key for nested instances.
	TypeTag() string
	// Fields lists the scalar fields in serialization order.
	Fields() []Field
	// SubObjects lists nested object mappings. May be nil.
	SubObjects() []SubObjectMap
}

// Field is one registered scalar attribute of an Object.
type Field struct {
	Name string
	// Binary fields hold bytes and travel base64 encoded.
	Binary bool

	get func() any
	// decode converts a tree value and returns a closure that stores it.
	// It must not touch the owner itself so population can be staged.
	decode func(v any) (func(), error)
}

// Value returns the current value of the field, nil when unset.
func (f Field) Value() any {
	return f.get()
}

// String registers a string field.
func String(name string, p *string) Field {
	return Field{
		Name: name,
		get:  func() any { return *p },
		decode: func(v any) (func(), error) {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("want string, got %T", v)
			}
			return func() { *p = s }, nil
		},
	}
}

// Int registers an integer field. JSON numbers with a fraction are truncated.
func Int(name string, p *int) Field {
	return Field{
		Name: name,
		get:  func() any { return *p },
		decode: func(v any) (func(), error) {
			n, err := toInt64(v)
			if err != nil {
				return nil, err
			}
			return func() { *p = int(n) }, nil
		},
	}
}

// Float registers a float field. Numeric strings are accepted.
func Float(name string, p *float64) Field {
	return Field{
		Name: name,
		get:  func() any { return *p },
		decode: func(v any) (func(), error) {
			f, err := toFloat64(v)
			if err != nil {
				return nil, err
			}
			return func() { *p = f }, nil
		},
	}
}

// LenientFloat registers a float field that accepts whatever the server
// stores there. Numbers and numeric strings decode as usual; "" and any other
// non-numeric value read as 0.
func LenientFloat(name string, p *float64) Field {
	f := Float(name, p)
	strict := f.decode
	f.decode = func(v any) (func(), error) {
		if apply, err := strict(v); err == nil {
			return apply, nil
		}
		return func() { *p = 0 }, nil
	}
	return f
}

// LenientInt is the integer counterpart of LenientFloat. Numeric strings are
// accepted; out-of-range and non-numeric values read as 0.
func LenientInt(name string, p *int) Field {
	f := Int(name, p)
	strict := f.decode
	f.decode = func(v any) (func(), error) {
		if apply, err := strict(v); err == nil {
			return apply, nil
		}
		if s, ok := v.(string); ok {
			if n, err := toInt64(json.Number(strings.TrimSpace(s))); err == nil {
				return func() { *p = int(n) }, nil
			}
		}
		return func() { *p = 0 }, nil
	}
	return f
}

// Bool registers a boolean field.
func Bool(name string, p *bool) Field {
	return Field{
		Name: name,
		get:  func() any { return *p },
		decode: func(v any) (func(), error) {
			b, ok := v.(bool)
			if !ok {
				return nil, fmt.Errorf("want bool, got %T", v)
			}
			return func() { *p = b }, nil
		},
	}
}

// Bytes registers a binary field, base64 encoded in value trees.
func Bytes(name string, p *[]byte) Field {
	return Field{
		Name:   name,
		Binary: true,
		get: func() any {
			if len(*p) == 0 {
				return nil
			}
			return *p
		},
		decode: func(v any) (func(), error) {
			b, ok := v.([]byte)
			if !ok {
				return nil, fmt.Errorf("want bytes, got %T", v)
			}
			return func() { *p = b }, nil
		},
	}
}

// Strings registers a list-of-strings field. Empty lists are omitted.
func Strings(name string, p *[]string) Field {
	return Field{
		Name: name,
		get: func() any {
			if len(*p) == 0 {
				return nil
			}
			return *p
		},
		decode: func(v any) (func(), error) {
			var out []string
			switch list := v.(type) {
			case []string:
				out = append(out, list...)
			case []any:
				out = make([]string, 0, len(list))
				for i, item := range list {
					s, ok := item.(string)
					if !ok {
						return nil, fmt.Errorf("item %d: want string, got %T", i, item)
					}
					out = append(out, s)
				}
			default:
				return nil, fmt.Errorf("want list, got %T", v)
			}
			return func() { *p = out }, nil
		},
	}
}

// float64 bounds of int64; 1<<63 itself is out of range.
const (
	minInt64Float = -(1 << 63)
	maxInt64Float = 1 << 63
)

func floatToInt64(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < minInt64Float || f >= maxInt64Float {
		return 0, fmt.Errorf("integer out of range: %v", f)
	}
	return int64(f), nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("want integer, got %q", n.String())
		}
		return floatToInt64(f)
	case float64:
		return floatToInt64(n)
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("want integer, got %T", v)
	}
}

func toFloat64(v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		return n.Float64()
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("want number, got %q", n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("want number, got %T", v)
	}
}
