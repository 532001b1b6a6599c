/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package eventbridge

import (
	"time"

	"github.com/aws/aws-lambda-go/events"
)

// FromCloudWatch converts the aws-lambda-go event type into a RawEvent.
// Time is rendered in RFC 3339 form, UTC.
func FromCloudWatch(in events.CloudWatchEvent) *RawEvent {
	return &RawEvent{
		ID:         in.ID,
		Version:    in.Version,
		Account:    in.AccountID,
		Time:       in.Time.UTC().Format(time.RFC3339),
		Region:     in.Region,
		Resources:  in.Resources,
		Source:     in.Source,
		DetailType: in.DetailType,
		Detail:     in.Detail,
	}
}

// ToCloudWatch converts a RawEvent into the aws-lambda-go event type.
// It fails when Time is not an ISO-8601 date-time.
func ToCloudWatch(e *RawEvent) (events.CloudWatchEvent, error) {
	ts, err := e.Timestamp()
	if err != nil {
		return events.CloudWatchEvent{}, err
	}
	return events.CloudWatchEvent{
		Version:    e.Version,
		ID:         e.ID,
		DetailType: e.DetailType,
		Source:     e.Source,
		AccountID:  e.Account,
		Time:       ts,
		Region:     e.Region,
		Resources:  e.Resources,
		Detail:     e.Detail,
	}, nil
}
