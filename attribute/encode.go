/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attribute

import (
	"bytes"
	"encoding/base64"
	"sort"

	"github.com/suparena/streamevents/errors"
	"github.com/suparena/streamevents/internal/wire"
)

// Encode renders v as its single-key wire object. It fails only when v, or a
// member of one of its lists or maps, is a nil Value.
func Encode(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeItem renders an attribute name to wire object mapping with keys in sorted order.
func EncodeItem(item Item) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeMembers(&buf, item); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v Value) error {
	if v == nil {
		return errors.ErrMissingVariant
	}

	buf.WriteString(`{"`)
	buf.WriteString(v.Kind().WireKey())
	buf.WriteString(`":`)

	switch tv := v.(type) {
	case Binary:
		writeString(buf, base64.StdEncoding.EncodeToString(tv))

	case Bool:
		writeBool(buf, bool(tv))

	case Null:
		writeBool(buf, bool(tv))

	case BinarySet:
		buf.WriteByte('[')
		for i, b := range tv {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeString(buf, base64.StdEncoding.EncodeToString(b))
		}
		buf.WriteByte(']')

	case Number:
		writeString(buf, string(tv))

	case NumberSet:
		writeStrings(buf, tv)

	case String:
		writeString(buf, string(tv))

	case StringSet:
		writeStrings(buf, tv)

	case List:
		buf.WriteByte('[')
		for i, elem := range tv {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeValue(buf, elem); err != nil {
				return errors.WithPath(errors.WithPath(err, errors.Index(i)), "L")
			}
		}
		buf.WriteByte(']')

	case Map:
		if err := encodeMembers(buf, tv); err != nil {
			return errors.WithPath(err, "M")
		}
	}

	buf.WriteByte('}')
	return nil
}

func encodeMembers(buf *bytes.Buffer, members map[string]Value) error {
	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}
	sort.Strings(names)

	buf.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeString(buf, name)
		buf.WriteByte(':')
		if err := encodeValue(buf, members[name]); err != nil {
			return errors.WithPath(err, name)
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeString(buf *bytes.Buffer, s string) {
	// marshalling a string cannot fail
	b, _ := wire.Marshal(s)
	buf.Write(b)
}

func writeStrings(buf *bytes.Buffer, ss []string) {
	buf.WriteByte('[')
	for i, s := range ss {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeString(buf, s)
	}
	buf.WriteByte(']')
}

func writeBool(buf *bytes.Buffer, b bool) {
	if b {
		buf.WriteString("true")
	} else {
		buf.WriteString("false")
	}
}

// MarshalJSON implementations let values nest inside caller-defined structs.

func (b Binary) MarshalJSON() ([]byte, error)    { return Encode(b) }
func (b Bool) MarshalJSON() ([]byte, error)      { return Encode(b) }
func (s BinarySet) MarshalJSON() ([]byte, error) { return Encode(s) }
func (l List) MarshalJSON() ([]byte, error)      { return Encode(l) }
func (m Map) MarshalJSON() ([]byte, error)       { return Encode(m) }
func (n Number) MarshalJSON() ([]byte, error)    { return Encode(n) }
func (s NumberSet) MarshalJSON() ([]byte, error) { return Encode(s) }
func (n Null) MarshalJSON() ([]byte, error)      { return Encode(n) }
func (s String) MarshalJSON() ([]byte, error)    { return Encode(s) }
func (s StringSet) MarshalJSON() ([]byte, error) { return Encode(s) }
