package dataobj

// SubObjectMap declares that a field of the owning object holds one or many
// nested objects of a single type.
type SubObjectMap struct {
	// Tag is the nested type's TypeTag.
	Tag string
	// Container is the key the nested trees live under. Empty means Tag.
	Container string
	// List is false for a single embedded object.
	List bool

	size     func() int
	at       func(i int) Object // nil for an unset slot
	newChild func() Object
	assign   func(children []Object)
}

// Key returns the value tree key for this mapping.
func (m SubObjectMap) Key() string {
	if m.Container == "" {
		return m.Tag
	}
	return m.Container
}

// ListOf maps a slice field holding nested objects of type *T.
func ListOf[T any, P interface {
	*T
	Object
}](container string, dst *[]P) SubObjectMap {
	return SubObjectMap{
		Tag:       P(new(T)).TypeTag(),
		Container: container,
		List:      true,
		size:      func() int { return len(*dst) },
		at: func(i int) Object {
			if (*dst)[i] == nil {
				return nil
			}
			return (*dst)[i]
		},
		newChild: func() Object { return P(new(T)) },
		assign: func(children []Object) {
			out := make([]P, len(children))
			for i, c := range children {
				out[i] = c.(P)
			}
			*dst = out
		},
	}
}

// One maps a pointer field holding a single nested object of type *T.
// The child is written as tree[container][tag], the layout FromValueTree reads.
func One[T any, P interface {
	*T
	Object
}](container string, dst *P) SubObjectMap {
	return SubObjectMap{
		Tag:       P(new(T)).TypeTag(),
		Container: container,
		size:      func() int { return 1 },
		at: func(int) Object {
			if *dst == nil {
				return nil
			}
			return *dst
		},
		newChild: func() Object { return P(new(T)) },
		assign: func(children []Object) {
			*dst = children[0].(P)
		},
	}
}
