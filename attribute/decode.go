/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package attribute

import (
	"encoding/base64"
	"encoding/json"
	"regexp"
	"sort"

	"github.com/suparena/streamevents/errors"
	"github.com/suparena/streamevents/internal/wire"
)

// DefaultMaxDepth matches the nesting limit DynamoDB enforces on items.
const DefaultMaxDepth = 32

// DecodeOptions configures attribute value decoding
type DecodeOptions struct {
	MaxDepth int // Deepest List/Map nesting accepted, top-level value is depth 1 (default: 32)
}

// DecodeOption is a functional option for configuring decoding
type DecodeOption func(*DecodeOptions)

// DefaultDecodeOptions returns default decoding options
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		MaxDepth: DefaultMaxDepth,
	}
}

// WithMaxDepth sets the maximum accepted nesting depth. Values below 1 are ignored.
func WithMaxDepth(depth int) DecodeOption {
	return func(opts *DecodeOptions) {
		if depth > 0 {
			opts.MaxDepth = depth
		}
	}
}

var numberPattern = regexp.MustCompile(`^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`)

// IsNumberText reports whether s is in decimal number form: optional sign,
// digits, optional fraction and optional exponent.
func IsNumberText(s string) bool {
	return numberPattern.MatchString(s)
}

// Decoder turns typed-value wire objects into Values.
type Decoder struct {
	opts DecodeOptions
}

// NewDecoder creates a Decoder with the given options applied over the defaults.
func NewDecoder(opts ...DecodeOption) *Decoder {
	options := DefaultDecodeOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Decoder{opts: options}
}

// Decode parses one wire object such as {"N":"42"}.
func (d *Decoder) Decode(data []byte) (Value, error) {
	if err := wire.Document(data); err != nil {
		return nil, err
	}
	return d.DecodeRaw(data)
}

// DecodeRaw decodes a wire object taken from an already parsed document.
func (d *Decoder) DecodeRaw(raw json.RawMessage) (Value, error) {
	return d.value(raw, 1)
}

// DecodeItem parses an object of attribute name to wire object.
func (d *Decoder) DecodeItem(data []byte) (Item, error) {
	if err := wire.Document(data); err != nil {
		return nil, err
	}
	return d.DecodeItemRaw(data)
}

// DecodeItemRaw decodes an item taken from an already parsed document.
func (d *Decoder) DecodeItemRaw(raw json.RawMessage) (Item, error) {
	return d.members(raw, 1)
}

// Decode parses one wire object with default options.
func Decode(data []byte, opts ...DecodeOption) (Value, error) {
	return NewDecoder(opts...).Decode(data)
}

// DecodeItem parses an attribute name to wire object mapping with default options.
func DecodeItem(data []byte, opts ...DecodeOption) (Item, error) {
	return NewDecoder(opts...).DecodeItem(data)
}

func (d *Decoder) value(raw json.RawMessage, depth int) (Value, error) {
	if depth > d.opts.MaxDepth {
		return nil, errors.NewDepthError(d.opts.MaxDepth)
	}

	obj, err := wire.Object(raw)
	if err != nil {
		return nil, err
	}

	keys := sortedKeys(obj)
	var kind Kind
	for _, key := range keys {
		k, ok := KindForKey(key)
		if !ok {
			return nil, errors.NewUnknownVariantKeyError(key)
		}
		kind = k
	}
	switch len(keys) {
	case 0:
		return nil, errors.ErrMissingVariant
	case 1:
	default:
		return nil, errors.NewAmbiguousVariantError(keys)
	}

	key := kind.WireKey()
	v, err := d.payload(kind, obj[key], depth)
	if err != nil {
		return nil, errors.WithPath(err, key)
	}
	return v, nil
}

func (d *Decoder) payload(kind Kind, raw json.RawMessage, depth int) (Value, error) {
	switch kind {
	case KindBinary:
		b, err := binary(raw)
		if err != nil {
			return nil, err
		}
		return Binary(b), nil

	case KindBool:
		b, err := wire.Bool(raw)
		if err != nil {
			return nil, err
		}
		return Bool(b), nil

	case KindNull:
		b, err := wire.Bool(raw)
		if err != nil {
			return nil, err
		}
		return Null(b), nil

	case KindBinarySet:
		elems, err := wire.Array(raw)
		if err != nil {
			return nil, err
		}
		set := make(BinarySet, len(elems))
		for i, elem := range elems {
			b, err := binary(elem)
			if err != nil {
				return nil, errors.WithPath(err, errors.Index(i))
			}
			set[i] = b
		}
		return set, nil

	case KindNumber:
		s, err := number(raw)
		if err != nil {
			return nil, err
		}
		return Number(s), nil

	case KindNumberSet:
		elems, err := wire.Array(raw)
		if err != nil {
			return nil, err
		}
		set := make(NumberSet, len(elems))
		for i, elem := range elems {
			s, err := number(elem)
			if err != nil {
				return nil, errors.WithPath(err, errors.Index(i))
			}
			set[i] = s
		}
		return set, nil

	case KindString:
		s, err := wire.String(raw)
		if err != nil {
			return nil, err
		}
		return String(s), nil

	case KindStringSet:
		ss, err := wire.Strings(raw)
		if err != nil {
			return nil, err
		}
		return StringSet(ss), nil

	case KindList:
		elems, err := wire.Array(raw)
		if err != nil {
			return nil, err
		}
		list := make(List, len(elems))
		for i, elem := range elems {
			v, err := d.value(elem, depth+1)
			if err != nil {
				return nil, errors.WithPath(err, errors.Index(i))
			}
			list[i] = v
		}
		return list, nil

	case KindMap:
		m, err := d.members(raw, depth+1)
		if err != nil {
			return nil, err
		}
		return Map(m), nil
	}
	return nil, errors.NewUnknownVariantKeyError(kind.String())
}

// members decodes an object whose member values are all wire objects at depth.
func (d *Decoder) members(raw json.RawMessage, depth int) (map[string]Value, error) {
	obj, err := wire.Object(raw)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Value, len(obj))
	for _, name := range sortedKeys(obj) {
		v, err := d.value(obj[name], depth)
		if err != nil {
			return nil, errors.WithPath(err, name)
		}
		out[name] = v
	}
	return out, nil
}

func binary(raw json.RawMessage) ([]byte, error) {
	s, err := wire.String(raw)
	if err != nil {
		return nil, err
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.NewEncodingError(err)
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

func number(raw json.RawMessage) (string, error) {
	s, err := wire.String(raw)
	if err != nil {
		return "", err
	}
	if !IsNumberText(s) {
		return "", errors.NewInvalidNumberError(s)
	}
	return s, nil
}

func sortedKeys(obj map[string]json.RawMessage) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
