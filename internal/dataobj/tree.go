package dataobj

import (
	"encoding/base64"
	"fmt"

	apperr "roguewar-client/internal/errors"
)

// ToValueTree renders o as a value tree. Nil fields are omitted.
func ToValueTree(o Object) Tree {
	tree := make(Tree)
	for _, f := range o.Fields() {
		v := f.get()
		if v == nil {
			continue
		}
		if f.Binary {
			b, _ := v.([]byte)
			v = base64.StdEncoding.EncodeToString(b)
		}
		tree[f.Name] = v
	}

	for _, m := range o.SubObjects() {
		if m.List {
			items := make([]any, 0, m.size())
			for i := 0; i < m.size(); i++ {
				if child := m.at(i); child != nil {
					items = append(items, ToValueTree(child))
				}
			}
			tree[m.Key()] = items
			continue
		}
		if child := m.at(0); child != nil {
			tree[m.Key()] = Tree{m.Tag: ToValueTree(child)}
		}
	}
	return tree
}

// FromValueTree populates o from tree.
//
// Population is all-or-nothing: every field and nested object is decoded
// first, and o is only modified once all of them succeeded. Keys missing from
// tree (or null) leave the matching field as it was; list mappings are always
// replaced.
func FromValueTree(o Object, tree Tree) error {
	commit, err := stage(o, tree)
	if err != nil {
		return err
	}
	commit()
	return nil
}

func stage(o Object, tree Tree) (func(), error) {
	var commits []func()

	for _, f := range o.Fields() {
		v, ok := tree[f.Name]
		if !ok || v == nil {
			continue
		}
		if f.Binary {
			s, isStr := v.(string)
			if !isStr {
				return nil, apperr.Decodef("%s.%s: want base64 string, got %T", o.TypeTag(), f.Name, v)
			}
			b, err := base64.StdEncoding.DecodeString(s)
			if err != nil {
				return nil, apperr.WrapDecode(fmt.Sprintf("%s.%s", o.TypeTag(), f.Name), err)
			}
			v = b
		}
		apply, err := f.decode(v)
		if err != nil {
			return nil, apperr.WrapDecode(fmt.Sprintf("%s.%s", o.TypeTag(), f.Name), err)
		}
		commits = append(commits, apply)
	}

	for _, m := range o.SubObjects() {
		var (
			apply func()
			err   error
		)
		if m.List {
			apply, err = stageList(o, m, tree)
		} else {
			apply, err = stageOne(o, m, tree)
		}
		if err != nil {
			return nil, err
		}
		commits = append(commits, apply)
	}

	return func() {
		for _, c := range commits {
			c()
		}
	}, nil
}

func stageList(owner Object, m SubObjectMap, tree Tree) (func(), error) {
	var items []any
	switch raw := tree[m.Key()].(type) {
	case nil:
	case []any:
		items = raw
	case []Tree:
		items = make([]any, len(raw))
		for i := range raw {
			items[i] = raw[i]
		}
	default:
		return nil, apperr.Decodef("%s.%s: want list, got %T", owner.TypeTag(), m.Key(), raw)
	}

	children := make([]Object, 0, len(items))
	for i, item := range items {
		sub, ok := item.(Tree)
		if !ok {
			return nil, apperr.Decodef("%s.%s[%d]: want object, got %T", owner.TypeTag(), m.Key(), i, item)
		}
		child := m.newChild()
		apply, err := stage(child, sub)
		if err != nil {
			return nil, fmt.Errorf("%s.%s[%d]: %w", owner.TypeTag(), m.Key(), i, err)
		}
		apply()
		children = append(children, child)
	}
	return func() { m.assign(children) }, nil
}

func stageOne(owner Object, m SubObjectMap, tree Tree) (func(), error) {
	container := tree
	if raw, ok := tree[m.Key()]; ok && raw != nil {
		sub, isTree := raw.(Tree)
		if !isTree {
			return nil, apperr.Decodef("%s.%s: want object, got %T", owner.TypeTag(), m.Key(), raw)
		}
		container = sub
	}

	child := m.newChild()
	if raw, ok := container[m.Tag]; ok && raw != nil {
		sub, isTree := raw.(Tree)
		if !isTree {
			return nil, apperr.Decodef("%s.%s.%s: want object, got %T", owner.TypeTag(), m.Key(), m.Tag, raw)
		}
		apply, err := stage(child, sub)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", owner.TypeTag(), m.Key(), err)
		}
		apply()
	}
	return func() { m.assign([]Object{child}) }, nil
}
