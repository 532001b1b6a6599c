/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package eventbridge

import (
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloudWatchConversion(t *testing.T) {
	var cw events.CloudWatchEvent
	require.NoError(t, json.Unmarshal(loadFixture(t), &cw))

	raw := FromCloudWatch(cw)
	assert.Equal(t, "2017-12-22T18:43:48Z", raw.Time)
	assert.Equal(t, "123456789012", raw.Account)

	typed, err := DecodeDetail[ec2StateChange](raw)
	require.NoError(t, err)
	assert.Equal(t, "terminated", typed.Detail.State)

	direct, err := DecodeRaw(loadFixture(t))
	require.NoError(t, err)

	back, err := ToCloudWatch(direct)
	require.NoError(t, err)
	assert.Equal(t, cw.ID, back.ID)
	assert.True(t, cw.Time.Equal(back.Time))
	assert.JSONEq(t, string(cw.Detail), string(back.Detail))

	_, err = ToCloudWatch(&RawEvent{Time: "not a time"})
	assert.Error(t, err)
}
