/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	streamFixture      = "../../dynamodbevent/testdata/example-dynamodb-event.json"
	eventBridgeFixture = "../../eventbridge/testdata/example-eventbridge-event.json"
)

func runLint(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestLintFixtures(t *testing.T) {
	code, out, logs := runLint(t, "", streamFixture, eventBridgeFixture)
	require.Equal(t, 0, code, logs)
	assert.Contains(t, out, `"SequenceNumber": "4421584500000000017450439091"`)
	assert.Contains(t, out, `"detail-type": "EC2 Instance State-change Notification"`)
	assert.Contains(t, logs, "records=3")
}

func TestLintYAML(t *testing.T) {
	code, out, logs := runLint(t, "", "-o", "yaml", eventBridgeFixture)
	require.Equal(t, 0, code, logs)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "aws.ec2", doc["source"])
	detail, ok := doc["detail"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "terminated", detail["state"])
}

func TestLintStdin(t *testing.T) {
	payload := `{"Records":[{"awsRegion":"us-east-1","eventID":"1","eventName":"UPDATE","eventSource":"aws:dynamodb",` +
		`"eventVersion":"1.1","eventSourceARN":"arn","dynamodb":{"SequenceNumber":"1","SizeBytes":1,"StreamViewType":"KEYS_ONLY"}}]}`

	code, out, logs := runLint(t, payload, "-")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, logs, "path=Records[0].eventName")
}

func TestLintForcedSource(t *testing.T) {
	code, _, logs := runLint(t, "", "-source", "eventbridge", streamFixture)
	assert.Equal(t, 1, code)
	assert.Contains(t, logs, "missing required field")

	code, _, _ = runLint(t, `{"Type":"Notification"}`)
	assert.Equal(t, 1, code)
}

func TestLintMaxDepth(t *testing.T) {
	code, _, logs := runLint(t, "", "-q", "-max-depth", "1", streamFixture)
	assert.Equal(t, 1, code)
	assert.Contains(t, logs, "maximum nesting depth of 1 exceeded")
}

func TestLintFlags(t *testing.T) {
	code, out, _ := runLint(t, "", "-version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "eventlint version")

	code, _, _ = runLint(t, "", "-source", "sqs", streamFixture)
	assert.Equal(t, 2, code)

	code, _, _ = runLint(t, "", "-o", "xml", streamFixture)
	assert.Equal(t, 2, code)

	code, _, _ = runLint(t, "", "missing-file.json")
	assert.Equal(t, 1, code)
}
