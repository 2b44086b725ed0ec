// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Services receive dependencies through constructor injection and expose
// interfaces so that delivery mechanisms (the HTTP API) never depend on a
// concrete implementation. Expected failure conditions surface as sentinel
// errors from internal/store; unexpected failures are wrapped in
// service-specific error types that preserve the underlying cause for
// errors.Is/errors.As checks. The API layer maps both kinds to HTTP status
// codes.
package service
