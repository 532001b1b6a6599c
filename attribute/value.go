/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attribute

import (
	"bytes"
)

// Kind identifies which of the ten attribute value types a Value holds.
type Kind uint8

const (
	KindBinary Kind = iota + 1
	KindBool
	KindBinarySet
	KindList
	KindMap
	KindNumber
	KindNumberSet
	KindNull
	KindString
	KindStringSet
)

var wireKeys = map[Kind]string{
	KindBinary:    "B",
	KindBool:      "BOOL",
	KindBinarySet: "BS",
	KindList:      "L",
	KindMap:       "M",
	KindNumber:    "N",
	KindNumberSet: "NS",
	KindNull:      "NULL",
	KindString:    "S",
	KindStringSet: "SS",
}

var kindsByKey = func() map[string]Kind {
	m := make(map[string]Kind, len(wireKeys))
	for k, key := range wireKeys {
		m[key] = k
	}
	return m
}()

// WireKey returns the JSON key used for this kind, e.g. "NS".
func (k Kind) WireKey() string {
	return wireKeys[k]
}

func (k Kind) String() string {
	if key, ok := wireKeys[k]; ok {
		return key
	}
	return "invalid"
}

// KindForKey maps a wire key back to its Kind.
func KindForKey(key string) (Kind, bool) {
	k, ok := kindsByKey[key]
	return k, ok
}

// Value is one attribute value. The concrete type is the active variant, so a
// non-nil Value always holds exactly one of them.
type Value interface {
	Kind() Kind
	isValue()
}

// Binary is raw bytes, carried as base64 text on the wire.
type Binary []byte

// Bool is a boolean attribute.
type Bool bool

// BinarySet is an ordered sequence of byte strings.
type BinarySet [][]byte

// List is an ordered sequence of values of any kind.
type List []Value

// Map is a set of named values of any kind.
type Map map[string]Value

// Number is decimal text. It is never converted to a Go numeric type.
type Number string

// NumberSet is an ordered sequence of decimal texts.
type NumberSet []string

// Null marks an attribute explicitly set to null. The flag is normally true.
type Null bool

// String is UTF-8 text.
type String string

// StringSet is an ordered sequence of UTF-8 texts.
type StringSet []string

func (Binary) Kind() Kind    { return KindBinary }
func (Bool) Kind() Kind      { return KindBool }
func (BinarySet) Kind() Kind { return KindBinarySet }
func (List) Kind() Kind      { return KindList }
func (Map) Kind() Kind       { return KindMap }
func (Number) Kind() Kind    { return KindNumber }
func (NumberSet) Kind() Kind { return KindNumberSet }
func (Null) Kind() Kind      { return KindNull }
func (String) Kind() Kind    { return KindString }
func (StringSet) Kind() Kind { return KindStringSet }

func (Binary) isValue()    {}
func (Bool) isValue()      {}
func (BinarySet) isValue() {}
func (List) isValue()      {}
func (Map) isValue()       {}
func (Number) isValue()    {}
func (NumberSet) isValue() {}
func (Null) isValue()      {}
func (String) isValue()    {}
func (StringSet) isValue() {}

// KindOf returns the kind of v, or zero for a nil Value.
func KindOf(v Value) Kind {
	if v == nil {
		return 0
	}
	return v.Kind()
}

// Equal reports whether a and b hold the same variant and payload.
// Maps compare without regard to key order, lists and sets in order.
// A nil and an empty byte string are equal.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch av := a.(type) {
	case Binary:
		bv, ok := b.(Binary)
		return ok && bytes.Equal(av, bv)
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case BinarySet:
		bv, ok := b.(BinarySet)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !bytes.Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case List:
		bv, ok := b.(List)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Map:
		bv, ok := b.(Map)
		return ok && mapsEqual(av, bv)
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case NumberSet:
		bv, ok := b.(NumberSet)
		return ok && stringsEqual(av, bv)
	case Null:
		bv, ok := b.(Null)
		return ok && av == bv
	case String:
		bv, ok := b.(String)
		return ok && av == bv
	case StringSet:
		bv, ok := b.(StringSet)
		return ok && stringsEqual(av, bv)
	}
	return false
}

func mapsEqual(a, b map[string]Value) bool {
	if len(a) != len(b) {
		return false
	}
	for name, av := range a {
		bv, ok := b[name]
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}

func stringsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
