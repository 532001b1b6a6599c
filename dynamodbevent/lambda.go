/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dynamodbevent

import (
	"math"

	"github.com/aws/aws-lambda-go/events"
	"github.com/suparena/streamevents/attribute"
	"github.com/suparena/streamevents/errors"
)

// FromLambda converts an event already decoded by aws-lambda-go, for handlers
// registered with lambda.Start that receive events.DynamoDBEvent.
func FromLambda(in events.DynamoDBEvent) (*Event, error) {
	records := make([]Record, len(in.Records))
	for i, r := range in.Records {
		record, err := recordFromLambda(r)
		if err != nil {
			return nil, errors.WithPath(errors.WithPath(err, errors.Index(i)), "Records")
		}
		records[i] = record
	}
	return &Event{Records: records}, nil
}

func recordFromLambda(in events.DynamoDBEventRecord) (Record, error) {
	r := Record{
		AWSRegion:      in.AWSRegion,
		EventID:        in.EventID,
		EventSource:    in.EventSource,
		EventVersion:   in.EventVersion,
		EventSourceARN: in.EventSourceArn,
	}
	var err error
	if r.EventName, err = ParseOperationType(in.EventName); err != nil {
		return r, errors.WithPath(err, "eventName")
	}
	if in.UserIdentity != nil {
		r.UserIdentity = &UserIdentity{Type: in.UserIdentity.Type, PrincipalID: in.UserIdentity.PrincipalID}
	}

	change := in.Change
	if change.SizeBytes < 0 {
		return r, errors.WithPath(errors.WithPath(
			errors.NewTypeMismatchError("non-negative integer", "negative integer"), "SizeBytes"), "dynamodb")
	}
	r.Change = StreamRecord{
		SequenceNumber: change.SequenceNumber,
		SizeBytes:      uint64(change.SizeBytes),
		StreamViewType: StreamViewType(change.StreamViewType),
	}
	if t := change.ApproximateCreationDateTime.Time; !t.IsZero() {
		secs := float64(t.Unix()) + float64(t.Nanosecond())/1e9
		r.Change.ApproximateCreationDateTime = &secs
	}

	images := []struct {
		name string
		src  map[string]events.DynamoDBAttributeValue
		dst  *attribute.Item
	}{
		{"Keys", change.Keys, &r.Change.Keys},
		{"NewImage", change.NewImage, &r.Change.NewImage},
		{"OldImage", change.OldImage, &r.Change.OldImage},
	}
	for _, image := range images {
		item, err := attribute.ItemFromLambda(image.src)
		if err != nil {
			return r, errors.WithPath(errors.WithPath(err, image.name), "dynamodb")
		}
		*image.dst = item
	}
	return r, nil
}

// ToLambda converts e into the aws-lambda-go representation.
func ToLambda(e *Event) (events.DynamoDBEvent, error) {
	out := events.DynamoDBEvent{Records: make([]events.DynamoDBEventRecord, len(e.Records))}
	for i, r := range e.Records {
		record, err := recordToLambda(r)
		if err != nil {
			return events.DynamoDBEvent{}, errors.WithPath(errors.WithPath(err, errors.Index(i)), "Records")
		}
		out.Records[i] = record
	}
	return out, nil
}

func recordToLambda(r Record) (events.DynamoDBEventRecord, error) {
	out := events.DynamoDBEventRecord{
		AWSRegion:      r.AWSRegion,
		EventID:        r.EventID,
		EventName:      string(r.EventName),
		EventSource:    r.EventSource,
		EventVersion:   r.EventVersion,
		EventSourceArn: r.EventSourceARN,
		Change: events.DynamoDBStreamRecord{
			SequenceNumber: r.Change.SequenceNumber,
			StreamViewType: string(r.Change.StreamViewType),
		},
	}
	if r.Change.SizeBytes > math.MaxInt64 {
		return out, errors.WithPath(errors.WithPath(
			errors.NewTypeMismatchError("64-bit signed integer", "larger integer"), "SizeBytes"), "dynamodb")
	}
	out.Change.SizeBytes = int64(r.Change.SizeBytes)
	if r.UserIdentity != nil {
		out.UserIdentity = &events.DynamoDBUserIdentity{Type: r.UserIdentity.Type, PrincipalID: r.UserIdentity.PrincipalID}
	}
	if created, ok := r.Change.CreationTime(); ok {
		out.Change.ApproximateCreationDateTime = events.SecondsEpochTime{Time: created}
	}

	images := []struct {
		name string
		src  attribute.Item
		dst  *map[string]events.DynamoDBAttributeValue
	}{
		{"Keys", r.Change.Keys, &out.Change.Keys},
		{"NewImage", r.Change.NewImage, &out.Change.NewImage},
		{"OldImage", r.Change.OldImage, &out.Change.OldImage},
	}
	for _, image := range images {
		m, err := attribute.ItemToLambda(image.src)
		if err != nil {
			return out, errors.WithPath(errors.WithPath(err, image.name), "dynamodb")
		}
		*image.dst = m
	}
	return out, nil
}
