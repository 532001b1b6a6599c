/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/suparena/streamevents/errors"
	"github.com/suparena/streamevents/eventbridge"
)

// DecodeFunc turns a raw event into its typed form, usually an *eventbridge.Event[T].
type DecodeFunc func(raw *eventbridge.RawEvent) (any, error)

// Route identifies a kind of event by its source and detail-type.
type Route struct {
	Source     string
	DetailType string
}

func (r Route) String() string {
	return r.Source + "/" + r.DetailType
}

// Registry maps routes to detail decoders and optional detail schemas.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	decoders map[Route]DecodeFunc
	schemas  map[Route]*jsonschema.Schema
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		decoders: make(map[Route]DecodeFunc),
		schemas:  make(map[Route]*jsonschema.Schema),
	}
}

// Register adds a decoder for a route. Registering a route twice is an error.
func (r *Registry) Register(source, detailType string, fn DecodeFunc) error {
	if fn == nil {
		return fmt.Errorf("registry: nil decoder for %s", Route{source, detailType})
	}
	route := Route{Source: source, DetailType: detailType}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.decoders[route]; exists {
		return fmt.Errorf("registry: decoder for %s already registered", route)
	}
	r.decoders[route] = fn
	return nil
}

// RegisterDetail registers a decoder producing *eventbridge.Event[T] for a route.
func RegisterDetail[T any](r *Registry, source, detailType string) error {
	return r.Register(source, detailType, func(raw *eventbridge.RawEvent) (any, error) {
		return eventbridge.DecodeDetail[T](raw)
	})
}

// Lookup returns the decoder registered for a route.
func (r *Registry) Lookup(source, detailType string) (DecodeFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.decoders[Route{Source: source, DetailType: detailType}]
	return fn, ok
}

// Routes lists the registered routes sorted by source then detail-type.
func (r *Registry) Routes() []Route {
	r.mu.RLock()
	routes := make([]Route, 0, len(r.decoders))
	for route := range r.decoders {
		routes = append(routes, route)
	}
	r.mu.RUnlock()

	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Source != routes[j].Source {
			return routes[i].Source < routes[j].Source
		}
		return routes[i].DetailType < routes[j].DetailType
	})
	return routes
}

// Decode validates the detail of raw against the schema of its route, if any,
// and runs the route's decoder.
func (r *Registry) Decode(raw *eventbridge.RawEvent) (any, error) {
	fn, ok := r.Lookup(raw.Source, raw.DetailType)
	if !ok {
		return nil, errors.NewUnknownDetailTypeError(raw.Source, raw.DetailType)
	}
	if err := r.Validate(raw); err != nil {
		return nil, err
	}
	return fn(raw)
}

// DecodePayload parses an EventBridge payload and dispatches it with Decode.
func (r *Registry) DecodePayload(data []byte) (any, error) {
	raw, err := eventbridge.DecodeRaw(data)
	if err != nil {
		return nil, err
	}
	return r.Decode(raw)
}

// Default is the registry used by the package-level functions.
var Default = New()

// Register adds a decoder to Default.
// It panics if the route is already registered, to prevent accidental overrides.
func Register(source, detailType string, fn DecodeFunc) {
	if err := Default.Register(source, detailType, fn); err != nil {
		panic(err.Error())
	}
}

// RegisterType registers a *eventbridge.Event[T] decoder with Default and
// panics on duplicates, like Register.
func RegisterType[T any](source, detailType string) {
	if err := RegisterDetail[T](Default, source, detailType); err != nil {
		panic(err.Error())
	}
}

// Decode dispatches raw through Default.
func Decode(raw *eventbridge.RawEvent) (any, error) {
	return Default.Decode(raw)
}
