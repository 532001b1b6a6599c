/*
Package errors provides semantic error types for the streamevents library.

The package defines the decode failure kinds with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrMalformedDocument        = errors.New("malformed document")
	    ErrMissingRequiredField     = errors.New("missing required field")
	    ErrUnsupportedOperationKind = errors.New("unsupported operation kind")
	    ErrMissingVariant           = errors.New("attribute value has no type key")
	    ErrAmbiguousVariant         = errors.New("attribute value has more than one type key")
	    ErrUnknownVariantKey        = errors.New("unknown attribute value type key")
	    ErrTypeMismatch             = errors.New("type mismatch")
	    ErrInvalidEncoding          = errors.New("invalid binary encoding")
	)

Location:
Decoders wrap failures in a PathError naming where in the document the failure
happened, for example Records[2].dynamodb.NewImage.tags.L[1]:

	ev, err := dynamodbevent.Decode(payload)
	if err != nil {
	    if errors.IsUnsupportedOperationKind(err) {
	        // the producer speaks a newer protocol, park the batch
	    }
	    path, _ := errors.PathOf(err)
	    log.Printf("bad record at %s: %v", path, err)
	}

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
