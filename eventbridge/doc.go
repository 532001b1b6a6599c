/*
Package eventbridge decodes and encodes EventBridge notification envelopes.

The envelope fields are fixed; the detail payload is whatever the publisher
chose, so Event takes it as a type parameter:

	type StateChange struct {
	    InstanceID string `json:"instance-id"`
	    State      string `json:"state"`
	}

	ev, err := eventbridge.Decode[StateChange](payload)

When the detail type is only known after looking at the envelope, decode to a
RawEvent first and convert once Source and DetailType have been inspected:

	raw, err := eventbridge.DecodeRaw(payload)
	if raw.DetailType == "EC2 Instance State-change Notification" {
	    ev, err := eventbridge.DecodeDetail[StateChange](raw)
	}

The registry package automates this dispatch.
*/
package eventbridge
