/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"encoding/base64"
	"errors"
	"fmt"
	"testing"
)

func TestMissingFieldError(t *testing.T) {
	err := NewMissingFieldError("eventID")

	// Test error message
	expected := `missing required field "eventID"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrMissingRequiredField) {
		t.Error("MissingFieldError should match ErrMissingRequiredField")
	}

	// Test helper function
	if !IsMissingRequiredField(err) {
		t.Error("IsMissingRequiredField should return true for MissingFieldError")
	}
}

func TestUnsupportedOperationError(t *testing.T) {
	err := NewUnsupportedOperationError("UPDATE")

	expected := `unsupported operation kind "UPDATE"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsUnsupportedOperationKind(err) {
		t.Error("IsUnsupportedOperationKind should return true for UnsupportedOperationError")
	}
}

func TestVariantErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		expected string
	}{
		{
			name:     "ambiguous",
			err:      NewAmbiguousVariantError([]string{"N", "S"}),
			sentinel: ErrAmbiguousVariant,
			expected: "attribute value has more than one type key: N, S",
		},
		{
			name:     "unknown key",
			err:      NewUnknownVariantKeyError("X"),
			sentinel: ErrUnknownVariantKey,
			expected: `unknown attribute value type key "X"`,
		},
		{
			name:     "type mismatch",
			err:      NewTypeMismatchError("boolean", "string"),
			sentinel: ErrTypeMismatch,
			expected: "type mismatch: expected boolean, got string",
		},
		{
			name:     "invalid number",
			err:      NewInvalidNumberError("1.2.3"),
			sentinel: ErrTypeMismatch,
			expected: `type mismatch: "1.2.3" is not a decimal number`,
		},
		{
			name:     "depth",
			err:      NewDepthError(32),
			sentinel: ErrMaxDepthExceeded,
			expected: "maximum nesting depth of 32 exceeded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, tt.err.Error())
			}

			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("%T should match %v", tt.err, tt.sentinel)
			}
		})
	}
}

func TestEncodingErrorUnwrap(t *testing.T) {
	_, cause := base64.StdEncoding.DecodeString("!!")
	err := NewEncodingError(cause)

	if !IsInvalidEncoding(err) {
		t.Error("IsInvalidEncoding should return true for EncodingError")
	}

	var corrupt base64.CorruptInputError
	if !errors.As(err, &corrupt) {
		t.Error("EncodingError should unwrap to the base64 error")
	}
}

func TestWithPath(t *testing.T) {
	err := NewMissingFieldError("SequenceNumber")
	err = WithPath(err, "dynamodb")
	err = WithPath(err, Index(3))
	err = WithPath(err, "Records")

	path, ok := PathOf(err)
	if !ok {
		t.Fatal("PathOf should find a PathError")
	}
	if path != "Records[3].dynamodb" {
		t.Errorf("Expected path %q, got %q", "Records[3].dynamodb", path)
	}

	expected := `Records[3].dynamodb: missing required field "SequenceNumber"`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !IsMissingRequiredField(err) {
		t.Error("PathError should unwrap to its cause")
	}

	var pe *PathError
	if !errors.As(err, &pe) || len(pe.Path) != 3 {
		t.Errorf("Expected a single flattened PathError, got %#v", err)
	}

	if WithPath(nil, "Records") != nil {
		t.Error("WithPath(nil) should be nil")
	}
}

func TestErrorWrapping(t *testing.T) {
	// Test that wrapped errors still match
	original := NewUnknownVariantKeyError("X")
	wrapped := fmt.Errorf("decode failed: %w", WithPath(original, "Keys"))

	if !errors.Is(wrapped, ErrUnknownVariantKey) {
		t.Error("Wrapped UnknownVariantKeyError should still match ErrUnknownVariantKey")
	}

	if !IsUnknownVariantKey(wrapped) {
		t.Error("IsUnknownVariantKey should work with wrapped errors")
	}

	if path, _ := PathOf(wrapped); path != "Keys" {
		t.Errorf("Expected path %q through fmt wrapping, got %q", "Keys", path)
	}
}

func TestSentinelErrors(t *testing.T) {
	// Ensure sentinel errors are distinct
	sentinels := []error{
		ErrMalformedDocument,
		ErrMissingRequiredField,
		ErrUnsupportedOperationKind,
		ErrMissingVariant,
		ErrAmbiguousVariant,
		ErrUnknownVariantKey,
		ErrTypeMismatch,
		ErrInvalidEncoding,
		ErrMaxDepthExceeded,
		ErrUnknownDetailType,
		ErrDetailValidation,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
