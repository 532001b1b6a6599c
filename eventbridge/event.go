/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package eventbridge

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
)

// Event is an EventBridge notification whose detail is decoded into T.
type Event[T any] struct {
	// Unique identifier of the event.
	ID string

	// Envelope schema version, "0" for every event so far.
	Version string

	// The account that originated the event.
	Account string

	// ISO-8601 event time as sent. Use Timestamp for the parsed value.
	Time string

	Region string

	// ARNs of the resources the event concerns, in delivery order.
	Resources []string

	// The service or application that emitted the event, e.g. aws.ec2.
	Source string

	// Classification of the detail, sent as "detail-type".
	DetailType string

	Detail T
}

// RawEvent keeps the detail as the JSON text it arrived as, so it can be
// inspected or routed before choosing a concrete type.
type RawEvent = Event[json.RawMessage]

// Timestamp parses Time as an ISO-8601 date-time.
func (e *Event[T]) Timestamp() (time.Time, error) {
	dt, err := strfmt.ParseDateTime(e.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("eventbridge: invalid time %q: %w", e.Time, err)
	}
	return time.Time(dt), nil
}

// UUID parses ID. EventBridge IDs are UUIDs but custom publishers may send
// anything, in which case an error is returned.
func (e *Event[T]) UUID() (uuid.UUID, error) {
	id, err := uuid.Parse(e.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("eventbridge: invalid id %q: %w", e.ID, err)
	}
	return id, nil
}

// MarshalJSON renders the event with Encode.
func (e Event[T]) MarshalJSON() ([]byte, error) {
	return Encode(&e)
}

// UnmarshalJSON decodes the event with Decode.
func (e *Event[T]) UnmarshalJSON(data []byte) error {
	decoded, err := Decode[T](data)
	if err != nil {
		return err
	}
	*e = *decoded
	return nil
}
