/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Common sentinel errors
var (
	// ErrMalformedDocument is returned when the input is not valid JSON
	ErrMalformedDocument = errors.New("malformed document")

	// ErrMissingRequiredField is returned when a required envelope field is absent
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrUnsupportedOperationKind is returned for an eventName outside INSERT, MODIFY and REMOVE
	ErrUnsupportedOperationKind = errors.New("unsupported operation kind")

	// ErrMissingVariant is returned when an attribute value carries no type key
	ErrMissingVariant = errors.New("attribute value has no type key")

	// ErrAmbiguousVariant is returned when an attribute value carries more than one type key
	ErrAmbiguousVariant = errors.New("attribute value has more than one type key")

	// ErrUnknownVariantKey is returned when an attribute value carries a key that names no type
	ErrUnknownVariantKey = errors.New("unknown attribute value type key")

	// ErrTypeMismatch is returned when a JSON value has the wrong shape for its field
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidEncoding is returned when binary text is not valid base64
	ErrInvalidEncoding = errors.New("invalid binary encoding")

	// ErrMaxDepthExceeded is returned when nested lists and maps exceed the decode depth limit
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")

	// ErrUnknownDetailType is returned when no detail decoder is registered for an event
	ErrUnknownDetailType = errors.New("no decoder registered for detail type")

	// ErrDetailValidation is returned when an event detail does not satisfy its registered schema
	ErrDetailValidation = errors.New("detail validation failed")
)

// MalformedDocumentError wraps the parser error for input that is not valid JSON
type MalformedDocumentError struct {
	Err error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("malformed document: %v", e.Err)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }

func (e *MalformedDocumentError) Is(target error) bool {
	return target == ErrMalformedDocument
}

// MissingFieldError represents a required field that is absent from the input
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}

// UnsupportedOperationError carries the eventName that could not be mapped
type UnsupportedOperationError struct {
	Value string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("unsupported operation kind %q", e.Value)
}

func (e *UnsupportedOperationError) Is(target error) bool {
	return target == ErrUnsupportedOperationKind
}

// AmbiguousVariantError lists the type keys found on a single attribute value
type AmbiguousVariantError struct {
	Keys []string
}

func (e *AmbiguousVariantError) Error() string {
	return fmt.Sprintf("attribute value has more than one type key: %s", strings.Join(e.Keys, ", "))
}

func (e *AmbiguousVariantError) Is(target error) bool {
	return target == ErrAmbiguousVariant
}

// UnknownVariantKeyError carries the key that names no attribute value type
type UnknownVariantKeyError struct {
	Key string
}

func (e *UnknownVariantKeyError) Error() string {
	return fmt.Sprintf("unknown attribute value type key %q", e.Key)
}

func (e *UnknownVariantKeyError) Is(target error) bool {
	return target == ErrUnknownVariantKey
}

// TypeMismatchError represents a JSON value of the wrong kind
type TypeMismatchError struct {
	Expected string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Got)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// InvalidNumberError represents number text that is not in decimal form
type InvalidNumberError struct {
	Value string
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("type mismatch: %q is not a decimal number", e.Value)
}

func (e *InvalidNumberError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// EncodingError wraps a base64 decode failure
type EncodingError struct {
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("invalid binary encoding: %v", e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

func (e *EncodingError) Is(target error) bool {
	return target == ErrInvalidEncoding
}

// DepthError is returned when nesting goes past Max levels
type DepthError struct {
	Max int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("maximum nesting depth of %d exceeded", e.Max)
}

func (e *DepthError) Is(target error) bool {
	return target == ErrMaxDepthExceeded
}

// UnknownDetailTypeError names the source and detail-type that had no decoder
type UnknownDetailTypeError struct {
	Source     string
	DetailType string
}

func (e *UnknownDetailTypeError) Error() string {
	return fmt.Sprintf("no decoder registered for source %q detail-type %q", e.Source, e.DetailType)
}

func (e *UnknownDetailTypeError) Is(target error) bool {
	return target == ErrUnknownDetailType
}

// DetailValidationError wraps a schema violation for an event detail
type DetailValidationError struct {
	DetailType string
	Err        error
}

func (e *DetailValidationError) Error() string {
	return fmt.Sprintf("detail validation failed for %q: %v", e.DetailType, e.Err)
}

func (e *DetailValidationError) Unwrap() error { return e.Err }

func (e *DetailValidationError) Is(target error) bool {
	return target == ErrDetailValidation
}

// PathError attaches the location of a failure inside a document.
// Path segments are field names or bracketed indexes such as "[2]".
type PathError struct {
	Path []string
	Err  error
}

// PathString renders the path as Records[0].dynamodb.Keys.Id
func (e *PathError) PathString() string {
	var b strings.Builder
	for i, seg := range e.Path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %v", e.PathString(), e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// Helper functions for creating errors

// NewMalformedDocumentError creates a new MalformedDocumentError
func NewMalformedDocumentError(err error) error {
	return &MalformedDocumentError{Err: err}
}

// NewMissingFieldError creates a new MissingFieldError
func NewMissingFieldError(field string) error {
	return &MissingFieldError{Field: field}
}

// NewUnsupportedOperationError creates a new UnsupportedOperationError
func NewUnsupportedOperationError(value string) error {
	return &UnsupportedOperationError{Value: value}
}

// NewAmbiguousVariantError creates a new AmbiguousVariantError
func NewAmbiguousVariantError(keys []string) error {
	return &AmbiguousVariantError{Keys: keys}
}

// NewUnknownVariantKeyError creates a new UnknownVariantKeyError
func NewUnknownVariantKeyError(key string) error {
	return &UnknownVariantKeyError{Key: key}
}

// NewTypeMismatchError creates a new TypeMismatchError
func NewTypeMismatchError(expected, got string) error {
	return &TypeMismatchError{Expected: expected, Got: got}
}

// NewInvalidNumberError creates a new InvalidNumberError
func NewInvalidNumberError(value string) error {
	return &InvalidNumberError{Value: value}
}

// NewEncodingError creates a new EncodingError
func NewEncodingError(err error) error {
	return &EncodingError{Err: err}
}

// NewDepthError creates a new DepthError
func NewDepthError(max int) error {
	return &DepthError{Max: max}
}

// NewUnknownDetailTypeError creates a new UnknownDetailTypeError
func NewUnknownDetailTypeError(source, detailType string) error {
	return &UnknownDetailTypeError{Source: source, DetailType: detailType}
}

// NewDetailValidationError creates a new DetailValidationError
func NewDetailValidationError(detailType string, err error) error {
	return &DetailValidationError{DetailType: detailType, Err: err}
}

// WithPath prepends segment to the location carried by err.
// A nil err stays nil; an existing PathError gains the segment in front.
func WithPath(err error, segment string) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*PathError); ok {
		path := make([]string, 0, len(pe.Path)+1)
		path = append(path, segment)
		path = append(path, pe.Path...)
		return &PathError{Path: path, Err: pe.Err}
	}
	return &PathError{Path: []string{segment}, Err: err}
}

// Index formats a list position as a path segment
func Index(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

// PathOf returns the rendered path of the outermost PathError in err's chain
func PathOf(err error) (string, bool) {
	var pe *PathError
	if !errors.As(err, &pe) {
		return "", false
	}
	return pe.PathString(), true
}

// IsMalformedDocument checks if an error is a malformed document error
func IsMalformedDocument(err error) bool {
	return errors.Is(err, ErrMalformedDocument)
}

// IsMissingRequiredField checks if an error is a missing field error
func IsMissingRequiredField(err error) bool {
	return errors.Is(err, ErrMissingRequiredField)
}

// IsUnsupportedOperationKind checks if an error is an unsupported operation kind error
func IsUnsupportedOperationKind(err error) bool {
	return errors.Is(err, ErrUnsupportedOperationKind)
}

// IsMissingVariant checks if an error is a missing variant error
func IsMissingVariant(err error) bool {
	return errors.Is(err, ErrMissingVariant)
}

// IsAmbiguousVariant checks if an error is an ambiguous variant error
func IsAmbiguousVariant(err error) bool {
	return errors.Is(err, ErrAmbiguousVariant)
}

// IsUnknownVariantKey checks if an error is an unknown variant key error
func IsUnknownVariantKey(err error) bool {
	return errors.Is(err, ErrUnknownVariantKey)
}

// IsTypeMismatch checks if an error is a type mismatch error
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// IsInvalidEncoding checks if an error is an invalid encoding error
func IsInvalidEncoding(err error) bool {
	return errors.Is(err, ErrInvalidEncoding)
}

// IsMaxDepthExceeded checks if an error is a depth limit error
func IsMaxDepthExceeded(err error) bool {
	return errors.Is(err, ErrMaxDepthExceeded)
}

// IsUnknownDetailType checks if an error is an unknown detail type error
func IsUnknownDetailType(err error) bool {
	return errors.Is(err, ErrUnknownDetailType)
}

// IsDetailValidation checks if an error is a detail validation error
func IsDetailValidation(err error) bool {
	return errors.Is(err, ErrDetailValidation)
}
