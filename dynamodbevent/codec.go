/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dynamodbevent

import (
	"encoding/json"

	"github.com/suparena/streamevents/attribute"
	"github.com/suparena/streamevents/errors"
	"github.com/suparena/streamevents/internal/wire"
)

// Decode parses a stream payload of the form {"Records": [...]}.
// The first failure aborts the whole document; no partial event is returned.
func Decode(data []byte, opts ...attribute.DecodeOption) (*Event, error) {
	if err := wire.Document(data); err != nil {
		return nil, err
	}
	obj, err := wire.Object(data)
	if err != nil {
		return nil, err
	}
	raw, err := wire.Required(obj, "Records")
	if err != nil {
		return nil, err
	}
	elems, err := wire.Array(raw)
	if err != nil {
		return nil, errors.WithPath(err, "Records")
	}

	dec := attribute.NewDecoder(opts...)
	records := make([]Record, len(elems))
	for i, elem := range elems {
		record, err := decodeRecord(dec, elem)
		if err != nil {
			return nil, errors.WithPath(errors.WithPath(err, errors.Index(i)), "Records")
		}
		records[i] = record
	}
	return &Event{Records: records}, nil
}

func decodeRecord(dec *attribute.Decoder, raw json.RawMessage) (Record, error) {
	var r Record
	obj, err := wire.Object(raw)
	if err != nil {
		return r, err
	}

	if r.AWSRegion, err = wire.RequiredString(obj, "awsRegion"); err != nil {
		return r, err
	}
	if r.EventID, err = wire.RequiredString(obj, "eventID"); err != nil {
		return r, err
	}
	name, err := wire.RequiredString(obj, "eventName")
	if err != nil {
		return r, err
	}
	if r.EventName, err = ParseOperationType(name); err != nil {
		return r, errors.WithPath(err, "eventName")
	}
	if r.EventSource, err = wire.RequiredString(obj, "eventSource"); err != nil {
		return r, err
	}
	if r.EventVersion, err = wire.RequiredString(obj, "eventVersion"); err != nil {
		return r, err
	}
	if r.EventSourceARN, err = wire.RequiredString(obj, "eventSourceARN"); err != nil {
		return r, err
	}

	if raw, ok := wire.Optional(obj, "userIdentity"); ok {
		identity, err := decodeUserIdentity(raw)
		if err != nil {
			return r, errors.WithPath(err, "userIdentity")
		}
		r.UserIdentity = identity
	}

	change, err := wire.Required(obj, "dynamodb")
	if err != nil {
		return r, err
	}
	if r.Change, err = decodeStreamRecord(dec, change); err != nil {
		return r, errors.WithPath(err, "dynamodb")
	}
	return r, nil
}

func decodeUserIdentity(raw json.RawMessage) (*UserIdentity, error) {
	obj, err := wire.Object(raw)
	if err != nil {
		return nil, err
	}
	var identity UserIdentity
	if identity.Type, err = wire.RequiredString(obj, "type"); err != nil {
		return nil, err
	}
	if identity.PrincipalID, err = wire.RequiredString(obj, "principalId"); err != nil {
		return nil, err
	}
	return &identity, nil
}

func decodeStreamRecord(dec *attribute.Decoder, raw json.RawMessage) (StreamRecord, error) {
	var r StreamRecord
	obj, err := wire.Object(raw)
	if err != nil {
		return r, err
	}

	if raw, ok := wire.Optional(obj, "ApproximateCreationDateTime"); ok {
		secs, err := wire.Float64(raw)
		if err != nil {
			return r, errors.WithPath(err, "ApproximateCreationDateTime")
		}
		r.ApproximateCreationDateTime = &secs
	}

	images := []struct {
		name string
		dst  *attribute.Item
	}{
		{"Keys", &r.Keys},
		{"NewImage", &r.NewImage},
		{"OldImage", &r.OldImage},
	}
	for _, image := range images {
		raw, ok := wire.Optional(obj, image.name)
		if !ok {
			continue
		}
		item, err := dec.DecodeItemRaw(raw)
		if err != nil {
			return r, errors.WithPath(err, image.name)
		}
		*image.dst = item
	}

	if r.SequenceNumber, err = wire.RequiredString(obj, "SequenceNumber"); err != nil {
		return r, err
	}
	if r.SizeBytes, err = wire.RequiredUint64(obj, "SizeBytes"); err != nil {
		return r, err
	}
	viewType, err := wire.RequiredString(obj, "StreamViewType")
	if err != nil {
		return r, err
	}
	r.StreamViewType = StreamViewType(viewType)
	return r, nil
}

type eventJSON struct {
	Records []recordJSON `json:"Records"`
}

type recordJSON struct {
	AWSRegion      string            `json:"awsRegion"`
	Change         streamRecordJSON  `json:"dynamodb"`
	EventID        string            `json:"eventID"`
	EventName      OperationType     `json:"eventName"`
	EventSource    string            `json:"eventSource"`
	EventVersion   string            `json:"eventVersion"`
	EventSourceARN string            `json:"eventSourceARN"`
	UserIdentity   *userIdentityJSON `json:"userIdentity,omitempty"`
}

type userIdentityJSON struct {
	Type        string `json:"type"`
	PrincipalID string `json:"principalId"`
}

type streamRecordJSON struct {
	ApproximateCreationDateTime *float64        `json:"ApproximateCreationDateTime,omitempty"`
	Keys                        *attribute.Item `json:"Keys,omitempty"`
	NewImage                    *attribute.Item `json:"NewImage,omitempty"`
	OldImage                    *attribute.Item `json:"OldImage,omitempty"`
	SequenceNumber              string          `json:"SequenceNumber"`
	SizeBytes                   uint64          `json:"SizeBytes"`
	StreamViewType              StreamViewType  `json:"StreamViewType"`
}

// Encode renders the event in the Lambda wire format. Absent images stay
// absent and present ones, even empty, are written.
func Encode(e *Event) ([]byte, error) {
	out := eventJSON{Records: make([]recordJSON, len(e.Records))}
	for i, r := range e.Records {
		if _, err := ParseOperationType(string(r.EventName)); err != nil {
			return nil, errors.WithPath(errors.WithPath(errors.WithPath(err, "eventName"), errors.Index(i)), "Records")
		}
		rec := recordJSON{
			AWSRegion:      r.AWSRegion,
			EventID:        r.EventID,
			EventName:      r.EventName,
			EventSource:    r.EventSource,
			EventVersion:   r.EventVersion,
			EventSourceARN: r.EventSourceARN,
			Change: streamRecordJSON{
				ApproximateCreationDateTime: r.Change.ApproximateCreationDateTime,
				Keys:                        presentItem(r.Change.Keys),
				NewImage:                    presentItem(r.Change.NewImage),
				OldImage:                    presentItem(r.Change.OldImage),
				SequenceNumber:              r.Change.SequenceNumber,
				SizeBytes:                   r.Change.SizeBytes,
				StreamViewType:              r.Change.StreamViewType,
			},
		}
		if r.UserIdentity != nil {
			rec.UserIdentity = &userIdentityJSON{
				Type:        r.UserIdentity.Type,
				PrincipalID: r.UserIdentity.PrincipalID,
			}
		}
		out.Records[i] = rec
	}
	return wire.Marshal(out)
}

func presentItem(item attribute.Item) *attribute.Item {
	if item == nil {
		return nil
	}
	return &item
}

// MarshalJSON renders the event with Encode.
func (e Event) MarshalJSON() ([]byte, error) {
	return Encode(&e)
}

// UnmarshalJSON decodes the event with default options.
func (e *Event) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*e = *decoded
	return nil
}
