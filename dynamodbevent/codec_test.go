/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package dynamodbevent

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suparena/streamevents/attribute"
	"github.com/suparena/streamevents/errors"
)

func loadFixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/example-dynamodb-event.json")
	require.NoError(t, err)
	return data
}

// recordPayload builds a one-record INSERT payload and lets the caller edit it
// before it is serialized.
func recordPayload(t *testing.T, edit func(record, change map[string]any)) []byte {
	t.Helper()
	change := map[string]any{
		"Keys":           map[string]any{"Id": map[string]any{"N": "101"}},
		"SequenceNumber": "111",
		"SizeBytes":      26,
		"StreamViewType": "KEYS_ONLY",
	}
	record := map[string]any{
		"awsRegion":      "us-east-1",
		"dynamodb":       change,
		"eventID":        "1",
		"eventName":      "INSERT",
		"eventSource":    "aws:dynamodb",
		"eventVersion":   "1.0",
		"eventSourceARN": "arn:aws:dynamodb:us-east-1:123456789012:table/Example/stream/2015-06-27T00:48:05.899",
	}
	if edit != nil {
		edit(record, change)
	}
	data, err := json.Marshal(map[string]any{"Records": []any{record}})
	require.NoError(t, err)
	return data
}

func TestDecodeFixture(t *testing.T) {
	ev, err := Decode(loadFixture(t))
	require.NoError(t, err)
	require.Len(t, ev.Records, 3)

	t.Run("delivery order", func(t *testing.T) {
		ids := []string{ev.Records[0].EventID, ev.Records[1].EventID, ev.Records[2].EventID}
		assert.Equal(t, []string{
			"c4ca4238a0b923820dcc509a6f75849b",
			"c81e728d9d4c2f636f067f89cc14862c",
			"eccbc87e4b5ce2fe28308fd9f2a7baf3",
		}, ids)
		assert.Equal(t, OperationTypeInsert, ev.Records[0].EventName)
		assert.Equal(t, OperationTypeModify, ev.Records[1].EventName)
		assert.Equal(t, OperationTypeRemove, ev.Records[2].EventName)
	})

	t.Run("insert record", func(t *testing.T) {
		r := ev.Records[0]
		assert.Equal(t, "us-east-1", r.AWSRegion)
		assert.Equal(t, "aws:dynamodb", r.EventSource)
		assert.Equal(t, "1.1", r.EventVersion)
		assert.Equal(t, "arn:aws:dynamodb:us-east-1:123456789012:table/ExampleTableWithStream/stream/2015-06-27T00:48:05.899", r.EventSourceARN)
		assert.Nil(t, r.UserIdentity)

		assert.True(t, attribute.ItemEqual(attribute.Item{"Id": attribute.Number("101")}, r.Change.Keys))
		assert.Nil(t, r.Change.OldImage)
		assert.Equal(t, "4421584500000000017450439091", r.Change.SequenceNumber)
		assert.Equal(t, uint64(26), r.Change.SizeBytes)
		assert.Equal(t, StreamViewTypeNewAndOldImages, r.Change.StreamViewType)

		profile, ok := r.Change.NewImage.Get("Profile").(attribute.Map)
		require.True(t, ok)
		assert.True(t, attribute.Equal(
			attribute.List{attribute.String("Joey"), attribute.String("Jo")},
			profile["Nicknames"],
		))
	})

	t.Run("modify record", func(t *testing.T) {
		r := ev.Records[1]
		assert.Equal(t, attribute.Number("123456789012345678901234567890.5"), r.Change.NewImage.Get("Balance"))
		assert.Equal(t, attribute.Binary("hi"), r.Change.NewImage.Get("Avatar"))
		assert.Equal(t, attribute.Binary{}, r.Change.NewImage.Get("Empty"))
		assert.Equal(t, attribute.Null(true), r.Change.NewImage.Get("Deleted"))
		assert.Len(t, r.Change.OldImage, 2)

		created, ok := r.Change.CreationTime()
		require.True(t, ok)
		assert.Equal(t, time.Date(2016, 11, 18, 20, 9, 0, 250_000_000, time.UTC), created)
	})

	t.Run("ttl removal", func(t *testing.T) {
		r := ev.Records[2]
		require.NotNil(t, r.UserIdentity)
		assert.True(t, r.IsTimeToLiveExpiry())
		assert.False(t, ev.Records[0].IsTimeToLiveExpiry())
		assert.Nil(t, r.Change.NewImage)
		_, ok := r.Change.CreationTime()
		assert.False(t, ok)
	})
}

func TestFixtureRoundTrip(t *testing.T) {
	parsed, err := Decode(loadFixture(t))
	require.NoError(t, err)

	output, err := Encode(parsed)
	require.NoError(t, err)

	reparsed, err := Decode(output)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(reparsed))

	again, err := Encode(reparsed)
	require.NoError(t, err)
	assert.Equal(t, string(output), string(again))
}

func TestJSONInterfaces(t *testing.T) {
	var ev Event
	require.NoError(t, json.Unmarshal(loadFixture(t), &ev))
	require.Len(t, ev.Records, 3)

	data, err := json.Marshal(ev)
	require.NoError(t, err)

	var back Event
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, ev.Equal(&back))
}

func TestOperationKinds(t *testing.T) {
	for _, name := range []string{"INSERT", "MODIFY", "REMOVE"} {
		t.Run(name, func(t *testing.T) {
			ev, err := Decode(recordPayload(t, func(record, _ map[string]any) {
				record["eventName"] = name
			}))
			require.NoError(t, err)
			assert.Equal(t, OperationType(name), ev.Records[0].EventName)
		})
	}

	for _, name := range []string{"UPDATE", "insert", ""} {
		t.Run("reject "+name, func(t *testing.T) {
			ev, err := Decode(recordPayload(t, func(record, _ map[string]any) {
				record["eventName"] = name
			}))
			require.Error(t, err)
			assert.Nil(t, ev)
			assert.True(t, errors.IsUnsupportedOperationKind(err))

			path, _ := errors.PathOf(err)
			assert.Equal(t, "Records[0].eventName", path)
		})
	}
}

func TestMissingRequiredFields(t *testing.T) {
	tests := []struct {
		field string
		path  string
		edit  func(record, change map[string]any)
	}{
		{"eventID", "Records[0]", func(r, _ map[string]any) { delete(r, "eventID") }},
		{"eventVersion", "Records[0]", func(r, _ map[string]any) { delete(r, "eventVersion") }},
		{"eventName", "Records[0]", func(r, _ map[string]any) { delete(r, "eventName") }},
		{"awsRegion", "Records[0]", func(r, _ map[string]any) { delete(r, "awsRegion") }},
		{"dynamodb", "Records[0]", func(r, _ map[string]any) { delete(r, "dynamodb") }},
		{"SequenceNumber", "Records[0].dynamodb", func(_, c map[string]any) { delete(c, "SequenceNumber") }},
		{"SizeBytes", "Records[0].dynamodb", func(_, c map[string]any) { delete(c, "SizeBytes") }},
		{"StreamViewType", "Records[0].dynamodb", func(_, c map[string]any) { delete(c, "StreamViewType") }},
		{"principalId", "Records[0].userIdentity", func(r, _ map[string]any) {
			r["userIdentity"] = map[string]any{"type": "Service"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			_, err := Decode(recordPayload(t, tt.edit))
			require.Error(t, err)
			assert.True(t, errors.IsMissingRequiredField(err))

			var missing *errors.MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.field, missing.Field)

			path, _ := errors.PathOf(err)
			assert.Equal(t, tt.path, path)
		})
	}

	t.Run("Records", func(t *testing.T) {
		_, err := Decode([]byte(`{}`))
		assert.True(t, errors.IsMissingRequiredField(err))
	})
}

func TestOptionalFields(t *testing.T) {
	ev, err := Decode(recordPayload(t, func(record, change map[string]any) {
		delete(change, "Keys")
		change["ApproximateCreationDateTime"] = nil
		record["userIdentity"] = nil
	}))
	require.NoError(t, err)

	r := ev.Records[0]
	assert.Nil(t, r.Change.Keys)
	assert.Nil(t, r.Change.ApproximateCreationDateTime)
	assert.Nil(t, r.UserIdentity)
}

func TestImageErrorContext(t *testing.T) {
	ev, err := Decode(recordPayload(t, func(_, change map[string]any) {
		change["NewImage"] = map[string]any{
			"Id": map[string]any{"N": "101"},
			"Profile": map[string]any{"M": map[string]any{
				"Nicknames": map[string]any{"L": []any{
					map[string]any{"S": "Joey"},
					map[string]any{"S": "Jo", "N": "1"},
				}},
			}},
		}
	}))
	require.Error(t, err)
	assert.Nil(t, ev)
	assert.True(t, errors.IsAmbiguousVariant(err))

	path, _ := errors.PathOf(err)
	assert.Equal(t, "Records[0].dynamodb.NewImage.Profile.M.Nicknames.L[1]", path)
}

func TestTypeMismatches(t *testing.T) {
	tests := map[string]func(record, change map[string]any){
		"negative size":    func(_, c map[string]any) { c["SizeBytes"] = -1 },
		"fractional size":  func(_, c map[string]any) { c["SizeBytes"] = 1.5 },
		"numeric eventID":  func(r, _ map[string]any) { r["eventID"] = 5 },
		"null eventSource": func(r, _ map[string]any) { r["eventSource"] = nil },
		"string timestamp": func(_, c map[string]any) { c["ApproximateCreationDateTime"] = "now" },
		"image not object": func(_, c map[string]any) { c["OldImage"] = []any{} },
		"records element":  nil,
	}

	for name, edit := range tests {
		t.Run(name, func(t *testing.T) {
			data := recordPayload(t, edit)
			if edit == nil {
				data = []byte(`{"Records":["not a record"]}`)
			}
			_, err := Decode(data)
			require.Error(t, err)
			assert.True(t, errors.IsTypeMismatch(err), "got %v", err)
		})
	}

	_, err := Decode([]byte(`{"Records":{}}`))
	assert.True(t, errors.IsTypeMismatch(err))
}

func TestMalformedDocument(t *testing.T) {
	_, err := Decode([]byte(`{"Records": [`))
	require.Error(t, err)
	assert.True(t, errors.IsMalformedDocument(err))
}

func TestEmptyImageStaysPresent(t *testing.T) {
	ev, err := Decode(recordPayload(t, func(_, change map[string]any) {
		change["NewImage"] = map[string]any{}
	}))
	require.NoError(t, err)
	require.NotNil(t, ev.Records[0].Change.NewImage)

	data, err := Encode(ev)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	assert.NotNil(t, back.Records[0].Change.NewImage)
	assert.Nil(t, back.Records[0].Change.OldImage)
	assert.True(t, ev.Equal(back))
}

func TestEncodeRejectsUnknownOperation(t *testing.T) {
	ev := &Event{Records: []Record{{EventName: "UPDATE"}}}
	_, err := Encode(ev)
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedOperationKind(err))
}

func TestEncodeEmptyEvent(t *testing.T) {
	data, err := Encode(&Event{})
	require.NoError(t, err)
	assert.Equal(t, `{"Records":[]}`, string(data))
}

func TestDecodeMaxDepthOption(t *testing.T) {
	payload := recordPayload(t, func(_, change map[string]any) {
		change["NewImage"] = map[string]any{
			"Nested": map[string]any{"L": []any{map[string]any{"L": []any{}}}},
		}
	})

	_, err := Decode(payload)
	require.NoError(t, err)

	_, err = Decode(payload, attribute.WithMaxDepth(1))
	require.Error(t, err)
	assert.True(t, errors.IsMaxDepthExceeded(err))
	path, _ := errors.PathOf(err)
	assert.Equal(t, "Records[0].dynamodb.NewImage.Nested.L[0]", path)
}

type exampleItem struct {
	ID      int    `dynamodbav:"Id"`
	Message string `dynamodbav:"Message"`
}

func TestUnmarshalImages(t *testing.T) {
	ev, err := Decode(loadFixture(t))
	require.NoError(t, err)

	var item exampleItem
	require.NoError(t, ev.Records[1].Change.UnmarshalOldImage(&item))
	assert.Equal(t, exampleItem{ID: 101, Message: "New item!"}, item)

	var key exampleItem
	require.NoError(t, ev.Records[2].Change.UnmarshalKeys(&key))
	assert.Equal(t, 101, key.ID)

	err = ev.Records[2].Change.UnmarshalNewImage(&item)
	assert.True(t, errors.IsMissingRequiredField(err))
}

func TestStreamViewType(t *testing.T) {
	assert.True(t, StreamViewTypeNewAndOldImages.IncludesNewImage())
	assert.True(t, StreamViewTypeNewAndOldImages.IncludesOldImage())
	assert.True(t, StreamViewTypeNewImage.IncludesNewImage())
	assert.False(t, StreamViewTypeNewImage.IncludesOldImage())
	assert.False(t, StreamViewTypeKeysOnly.IncludesNewImage())
	assert.False(t, StreamViewTypeKeysOnly.IncludesOldImage())
}
