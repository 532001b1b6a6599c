/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package streamevents

import (
	"github.com/suparena/streamevents/internal/wire"
)

// Source names the kind of envelope a payload carries.
type Source string

const (
	SourceUnknown        Source = "unknown"
	SourceDynamoDBStream Source = "dynamodb"
	SourceEventBridge    Source = "eventbridge"
)

// ParseSource maps a name such as "dynamodb" or "eventbridge" to a Source.
func ParseSource(s string) (Source, bool) {
	switch src := Source(s); src {
	case SourceDynamoDBStream, SourceEventBridge:
		return src, true
	}
	return SourceUnknown, false
}

// Detect reports which envelope data holds by its top-level keys: "Records"
// marks a DynamoDB stream payload and "detail-type" an EventBridge event.
// Only the shape is inspected; the payload may still fail to decode.
func Detect(data []byte) (Source, error) {
	if err := wire.Document(data); err != nil {
		return SourceUnknown, err
	}
	obj, err := wire.Object(data)
	if err != nil {
		return SourceUnknown, err
	}
	if _, ok := obj["Records"]; ok {
		return SourceDynamoDBStream, nil
	}
	if _, ok := obj["detail-type"]; ok {
		return SourceEventBridge, nil
	}
	return SourceUnknown, nil
}
