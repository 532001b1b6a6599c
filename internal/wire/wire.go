/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package wire holds the JSON field readers shared by the envelope decoders.
// Every reader reports failures with the errors package types so callers only
// need to attach path segments.
package wire

import (
	"bytes"
	"encoding/json"

	"github.com/suparena/streamevents/errors"
)

// JSON value kinds as reported in type mismatch errors.
const (
	KindObject  = "object"
	KindArray   = "array"
	KindString  = "string"
	KindNumber  = "number"
	KindBoolean = "boolean"
	KindNull    = "null"
)

// Document verifies that data is a single well-formed JSON value.
func Document(data []byte) error {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.NewMalformedDocumentError(err)
	}
	return nil
}

// KindOf reports the JSON kind of raw by its first significant byte.
func KindOf(raw json.RawMessage) string {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return KindNull
	}
	switch trimmed[0] {
	case '{':
		return KindObject
	case '[':
		return KindArray
	case '"':
		return KindString
	case 't', 'f':
		return KindBoolean
	case 'n':
		return KindNull
	default:
		return KindNumber
	}
}

// IsNull reports whether raw is absent or the JSON literal null.
func IsNull(raw json.RawMessage) bool {
	return KindOf(raw) == KindNull
}

func expect(raw json.RawMessage, kind string) error {
	if got := KindOf(raw); got != kind {
		return errors.NewTypeMismatchError(kind, got)
	}
	return nil
}

// Object decodes a JSON object into its raw members. Duplicate keys resolve
// to the last occurrence.
func Object(raw json.RawMessage) (map[string]json.RawMessage, error) {
	if err := expect(raw, KindObject); err != nil {
		return nil, err
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, errors.NewMalformedDocumentError(err)
	}
	return obj, nil
}

// Array decodes a JSON array into its raw elements.
func Array(raw json.RawMessage) ([]json.RawMessage, error) {
	if err := expect(raw, KindArray); err != nil {
		return nil, err
	}
	elems := []json.RawMessage{}
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, errors.NewMalformedDocumentError(err)
	}
	return elems, nil
}

// String decodes a JSON string.
func String(raw json.RawMessage) (string, error) {
	if err := expect(raw, KindString); err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", errors.NewMalformedDocumentError(err)
	}
	return s, nil
}

// Bool decodes a JSON boolean literal.
func Bool(raw json.RawMessage) (bool, error) {
	if err := expect(raw, KindBoolean); err != nil {
		return false, err
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, errors.NewMalformedDocumentError(err)
	}
	return b, nil
}

// Uint64 decodes a non-negative JSON integer.
func Uint64(raw json.RawMessage) (uint64, error) {
	if err := expect(raw, KindNumber); err != nil {
		return 0, err
	}
	var n uint64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, errors.NewTypeMismatchError("non-negative integer", string(raw))
	}
	return n, nil
}

// Float64 decodes a JSON number.
func Float64(raw json.RawMessage) (float64, error) {
	if err := expect(raw, KindNumber); err != nil {
		return 0, err
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0, errors.NewTypeMismatchError("finite number", string(raw))
	}
	return f, nil
}

// Strings decodes a JSON array of strings.
func Strings(raw json.RawMessage) ([]string, error) {
	elems, err := Array(raw)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(elems))
	for i, elem := range elems {
		s, err := String(elem)
		if err != nil {
			return nil, errors.WithPath(err, errors.Index(i))
		}
		out[i] = s
	}
	return out, nil
}

// Required returns the member key of obj, failing when it is absent.
func Required(obj map[string]json.RawMessage, key string) (json.RawMessage, error) {
	raw, ok := obj[key]
	if !ok {
		return nil, errors.NewMissingFieldError(key)
	}
	return raw, nil
}

// Optional returns the member key of obj. An explicit null counts as absent.
func Optional(obj map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := obj[key]
	if !ok || IsNull(raw) {
		return nil, false
	}
	return raw, true
}

// RequiredString reads a required string member.
func RequiredString(obj map[string]json.RawMessage, key string) (string, error) {
	raw, err := Required(obj, key)
	if err != nil {
		return "", err
	}
	s, err := String(raw)
	if err != nil {
		return "", errors.WithPath(err, key)
	}
	return s, nil
}

// RequiredStrings reads a required array-of-strings member.
func RequiredStrings(obj map[string]json.RawMessage, key string) ([]string, error) {
	raw, err := Required(obj, key)
	if err != nil {
		return nil, err
	}
	ss, err := Strings(raw)
	if err != nil {
		return nil, errors.WithPath(err, key)
	}
	return ss, nil
}

// RequiredUint64 reads a required non-negative integer member.
func RequiredUint64(obj map[string]json.RawMessage, key string) (uint64, error) {
	raw, err := Required(obj, key)
	if err != nil {
		return 0, err
	}
	n, err := Uint64(raw)
	if err != nil {
		return 0, errors.WithPath(err, key)
	}
	return n, nil
}

// Marshal encodes v without escaping <, > and &, so text is emitted as given.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
