/*
Package registry dispatches EventBridge events to typed detail decoders.

A route is the pair of an event's source and detail-type. Each route maps to
one decoder, and optionally to a JSON Schema the detail must satisfy:

	reg := registry.New()
	registry.RegisterDetail[StateChange](reg, "aws.ec2", "EC2 Instance State-change Notification")
	reg.RegisterSchema("aws.ec2", "EC2 Instance State-change Notification", schemaJSON)

	v, err := reg.DecodePayload(payload)
	switch ev := v.(type) {
	case *eventbridge.Event[StateChange]:
	    // ...
	}

Events whose route has no decoder fail with errors.ErrUnknownDetailType and
schema violations with errors.ErrDetailValidation.

The package-level Default registry is meant to be populated during
initialization, typically in init() functions:

	func init() {
	    registry.RegisterType[StateChange]("aws.ec2", "EC2 Instance State-change Notification")
	}

Register and RegisterType panic on duplicate routes. Registry methods return
an error instead.
*/
package registry
