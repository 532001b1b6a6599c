/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dynamodbevent

import (
	"math"
	"time"

	"github.com/suparena/streamevents/attribute"
	"github.com/suparena/streamevents/errors"
)

// Event is the DynamoDB stream payload delivered to a Lambda handler.
// Records keep their delivery order.
type Event struct {
	Records []Record
}

// Record describes one modification of a single item.
type Record struct {
	// The region in which the GetRecords request was received.
	AWSRegion string

	// The DynamoDB specific body of the record, sent as "dynamodb".
	Change StreamRecord

	// A globally unique identifier for the event.
	EventID string

	// The kind of modification, one of INSERT, MODIFY or REMOVE.
	EventName OperationType

	// The originating service, aws:dynamodb for DynamoDB Streams.
	EventSource string

	// The version of the stream record format. Consumers must not assume it
	// stays at a particular value.
	EventVersion string

	// The ARN of the stream the record was read from.
	EventSourceARN string

	// Set only for items deleted by the Time to Live process.
	UserIdentity *UserIdentity
}

// UserIdentity identifies the actor behind a system initiated change.
type UserIdentity struct {
	Type        string
	PrincipalID string
}

// Identity values carried by records removed through Time to Live expiry.
const (
	ServiceIdentityType = "Service"
	DynamoDBPrincipalID = "dynamodb.amazonaws.com"
)

// StreamRecord holds the item data of a change.
type StreamRecord struct {
	// Approximate creation time in fractional seconds since the Unix epoch.
	ApproximateCreationDateTime *float64

	// Primary key attributes of the modified item.
	Keys attribute.Item

	// The item after the modification. Present for NEW_IMAGE and NEW_AND_OLD_IMAGES views.
	NewImage attribute.Item

	// The item before the modification. Present for OLD_IMAGE and NEW_AND_OLD_IMAGES views.
	OldImage attribute.Item

	// Sequence number of the record. Only comparable within one shard.
	SequenceNumber string

	// Size of the record in bytes.
	SizeBytes uint64

	// Which images the stream captures.
	StreamViewType StreamViewType
}

// OperationType is the kind of data modification performed on the table.
type OperationType string

const (
	OperationTypeInsert OperationType = "INSERT"
	OperationTypeModify OperationType = "MODIFY"
	OperationTypeRemove OperationType = "REMOVE"
)

// ParseOperationType maps an eventName to its OperationType. Any value other
// than INSERT, MODIFY or REMOVE is rejected.
func ParseOperationType(s string) (OperationType, error) {
	switch op := OperationType(s); op {
	case OperationTypeInsert, OperationTypeModify, OperationTypeRemove:
		return op, nil
	}
	return "", errors.NewUnsupportedOperationError(s)
}

// StreamViewType describes which item images a stream captures.
type StreamViewType string

const (
	StreamViewTypeKeysOnly        StreamViewType = "KEYS_ONLY"          // only the key attributes of the modified item
	StreamViewTypeNewImage        StreamViewType = "NEW_IMAGE"          // the entire item, as it appeared after it was modified
	StreamViewTypeOldImage        StreamViewType = "OLD_IMAGE"          // the entire item, as it appeared before it was modified
	StreamViewTypeNewAndOldImages StreamViewType = "NEW_AND_OLD_IMAGES" // both the new and the old images of the item
)

func (v StreamViewType) IncludesNewImage() bool {
	return v == StreamViewTypeNewImage || v == StreamViewTypeNewAndOldImages
}

func (v StreamViewType) IncludesOldImage() bool {
	return v == StreamViewTypeOldImage || v == StreamViewTypeNewAndOldImages
}

// IsTimeToLiveExpiry reports whether the record was produced by TTL deletion.
func (r Record) IsTimeToLiveExpiry() bool {
	return r.UserIdentity != nil &&
		r.UserIdentity.Type == ServiceIdentityType &&
		r.UserIdentity.PrincipalID == DynamoDBPrincipalID
}

// CreationTime converts ApproximateCreationDateTime to a UTC time.
// The second result is false when the record carries no timestamp.
func (r StreamRecord) CreationTime() (time.Time, bool) {
	if r.ApproximateCreationDateTime == nil {
		return time.Time{}, false
	}
	secs, frac := math.Modf(*r.ApproximateCreationDateTime)
	return time.Unix(int64(secs), int64(math.Round(frac*1e9))).UTC(), true
}

// UnmarshalKeys decodes the key attributes into out using dynamodbav tags.
func (r StreamRecord) UnmarshalKeys(out any) error {
	return unmarshalImage("Keys", r.Keys, out)
}

// UnmarshalNewImage decodes the after image into out using dynamodbav tags.
func (r StreamRecord) UnmarshalNewImage(out any) error {
	return unmarshalImage("NewImage", r.NewImage, out)
}

// UnmarshalOldImage decodes the before image into out using dynamodbav tags.
func (r StreamRecord) UnmarshalOldImage(out any) error {
	return unmarshalImage("OldImage", r.OldImage, out)
}

func unmarshalImage(field string, item attribute.Item, out any) error {
	if item == nil {
		return errors.NewMissingFieldError(field)
	}
	return errors.WithPath(attribute.UnmarshalItem(item, out), field)
}

// Equal reports whether two events carry the same records in the same order.
func (e *Event) Equal(other *Event) bool {
	if e == nil || other == nil {
		return e == other
	}
	if len(e.Records) != len(other.Records) {
		return false
	}
	for i := range e.Records {
		if !e.Records[i].Equal(other.Records[i]) {
			return false
		}
	}
	return true
}

// Equal compares two records field by field. Images compare by content, and
// an absent image differs from an empty one.
func (r Record) Equal(other Record) bool {
	if r.AWSRegion != other.AWSRegion ||
		r.EventID != other.EventID ||
		r.EventName != other.EventName ||
		r.EventSource != other.EventSource ||
		r.EventVersion != other.EventVersion ||
		r.EventSourceARN != other.EventSourceARN {
		return false
	}
	if (r.UserIdentity == nil) != (other.UserIdentity == nil) {
		return false
	}
	if r.UserIdentity != nil && *r.UserIdentity != *other.UserIdentity {
		return false
	}
	return r.Change.Equal(other.Change)
}

// Equal compares two stream records field by field.
func (r StreamRecord) Equal(other StreamRecord) bool {
	if r.SequenceNumber != other.SequenceNumber ||
		r.SizeBytes != other.SizeBytes ||
		r.StreamViewType != other.StreamViewType {
		return false
	}
	if (r.ApproximateCreationDateTime == nil) != (other.ApproximateCreationDateTime == nil) {
		return false
	}
	if r.ApproximateCreationDateTime != nil && *r.ApproximateCreationDateTime != *other.ApproximateCreationDateTime {
		return false
	}
	return imageEqual(r.Keys, other.Keys) &&
		imageEqual(r.NewImage, other.NewImage) &&
		imageEqual(r.OldImage, other.OldImage)
}

func imageEqual(a, b attribute.Item) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return attribute.ItemEqual(a, b)
}
