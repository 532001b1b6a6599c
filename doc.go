/*
Package streamevents decodes the event payloads AWS delivers to Lambda handlers
for DynamoDB Streams and EventBridge, and encodes them back.

The library is organized in packages by concern:
  - attribute: the typed attribute value union ({"S": ...}, {"M": ...}) and its codec
  - dynamodbevent: stream payloads, {"Records": [...]} with key and item images
  - eventbridge: event bus envelopes with a caller-chosen detail type
  - registry: source and detail-type dispatch with optional JSON Schema checks
  - errors: semantic error types carrying the location of a failure

Basic Usage:

	switch src, err := streamevents.Detect(payload); {
	case err != nil:
	    return err
	case src == streamevents.SourceDynamoDBStream:
	    ev, err := dynamodbevent.Decode(payload)
	    // ...
	case src == streamevents.SourceEventBridge:
	    ev, err := eventbridge.DecodeRaw(payload)
	    // ...
	}

Decoding is synchronous and performs no I/O. Every decoder fails on the first
problem it finds and returns no partial result.
*/
package streamevents
