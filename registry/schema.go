/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/suparena/streamevents/errors"
	"github.com/suparena/streamevents/eventbridge"
)

// RegisterSchema compiles a JSON Schema that the detail of events on the
// route must satisfy before they are decoded. A route holds at most one schema.
func (r *Registry) RegisterSchema(source, detailType string, schema []byte) error {
	route := Route{Source: source, DetailType: detailType}
	compiled, err := compileSchema(schema, schemaURL(route))
	if err != nil {
		return fmt.Errorf("registry: compile schema for %s: %w", route, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.schemas[route]; exists {
		return fmt.Errorf("registry: schema for %s already registered", route)
	}
	r.schemas[route] = compiled
	return nil
}

// Validate checks the detail of raw against its route's schema. Routes
// without a schema always pass.
func (r *Registry) Validate(raw *eventbridge.RawEvent) error {
	r.mu.RLock()
	schema, ok := r.schemas[Route{Source: raw.Source, DetailType: raw.DetailType}]
	r.mu.RUnlock()
	if !ok {
		return nil
	}

	detail := raw.Detail
	if len(detail) == 0 {
		detail = json.RawMessage("null")
	}
	dec := json.NewDecoder(bytes.NewReader(detail))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return errors.WithPath(errors.NewMalformedDocumentError(err), "detail")
	}
	if err := schema.Validate(v); err != nil {
		return errors.WithPath(errors.NewDetailValidationError(raw.DetailType, err), "detail")
	}
	return nil
}

func schemaURL(route Route) string {
	return "mem://registry/" + url.PathEscape(route.Source) + "/" + url.PathEscape(route.DetailType) + ".json"
}

func compileSchema(b []byte, ref string) (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(ref, bytes.NewReader(b)); err != nil {
		return nil, err
	}
	return c.Compile(ref)
}
