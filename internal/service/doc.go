// Package service contains the application use cases of the gradebook. It
// coordinates the student store (defined in internal/store) with the
// statistics engine (internal/domain/stats) and is the layer the API calls.
//
// Services receive their dependencies through constructor injection and
// return store and domain errors wrapped with context, so callers can keep
// using errors.Is against the sentinels.
package service
