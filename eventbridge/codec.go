/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package eventbridge

import (
	"encoding/json"
	"fmt"

	"github.com/suparena/streamevents/errors"
	"github.com/suparena/streamevents/internal/wire"
)

var nullDetail = json.RawMessage("null")

// Decode parses an EventBridge envelope. The eight envelope fields are
// required; detail is handed to T's JSON decoding as is, and an absent
// detail is decoded as null.
func Decode[T any](data []byte) (*Event[T], error) {
	if err := wire.Document(data); err != nil {
		return nil, err
	}
	obj, err := wire.Object(data)
	if err != nil {
		return nil, err
	}

	var e Event[T]
	fields := []struct {
		key string
		dst *string
	}{
		{"id", &e.ID},
		{"version", &e.Version},
		{"account", &e.Account},
		{"time", &e.Time},
		{"region", &e.Region},
		{"source", &e.Source},
		{"detail-type", &e.DetailType},
	}
	for _, f := range fields {
		if *f.dst, err = wire.RequiredString(obj, f.key); err != nil {
			return nil, err
		}
	}
	if e.Resources, err = wire.RequiredStrings(obj, "resources"); err != nil {
		return nil, err
	}

	detail, ok := obj["detail"]
	if !ok {
		detail = nullDetail
	}
	if err := unmarshalDetail(detail, &e.Detail); err != nil {
		return nil, err
	}
	return &e, nil
}

// DecodeRaw parses an envelope keeping the detail as raw JSON.
func DecodeRaw(data []byte) (*RawEvent, error) {
	return Decode[json.RawMessage](data)
}

// DecodeDetail converts a raw event into one whose detail is decoded into T.
func DecodeDetail[T any](raw *RawEvent) (*Event[T], error) {
	e := Event[T]{
		ID:         raw.ID,
		Version:    raw.Version,
		Account:    raw.Account,
		Time:       raw.Time,
		Region:     raw.Region,
		Resources:  raw.Resources,
		Source:     raw.Source,
		DetailType: raw.DetailType,
	}
	detail := raw.Detail
	if len(detail) == 0 {
		detail = nullDetail
	}
	if err := unmarshalDetail(detail, &e.Detail); err != nil {
		return nil, err
	}
	return &e, nil
}

func unmarshalDetail(raw json.RawMessage, dst any) error {
	err := json.Unmarshal(raw, dst)
	if err == nil {
		return nil
	}
	if ute, ok := err.(*json.UnmarshalTypeError); ok {
		err = errors.NewTypeMismatchError(ute.Type.String(), ute.Value)
		if ute.Field != "" {
			err = errors.WithPath(err, ute.Field)
		}
	}
	return errors.WithPath(err, "detail")
}

type eventJSON[T any] struct {
	Version    string   `json:"version"`
	ID         string   `json:"id"`
	DetailType string   `json:"detail-type"`
	Source     string   `json:"source"`
	Account    string   `json:"account"`
	Time       string   `json:"time"`
	Region     string   `json:"region"`
	Resources  []string `json:"resources"`
	Detail     T        `json:"detail"`
}

// Encode renders the envelope in the EventBridge field order. A nil
// Resources is written as an empty array.
func Encode[T any](e *Event[T]) ([]byte, error) {
	resources := e.Resources
	if resources == nil {
		resources = []string{}
	}
	out := eventJSON[T]{
		Version:    e.Version,
		ID:         e.ID,
		DetailType: e.DetailType,
		Source:     e.Source,
		Account:    e.Account,
		Time:       e.Time,
		Region:     e.Region,
		Resources:  resources,
		Detail:     e.Detail,
	}
	data, err := wire.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("eventbridge: encode %q: %w", e.DetailType, err)
	}
	return data, nil
}
