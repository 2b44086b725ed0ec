// Package api handles incoming HTTP requests and response formatting. It
// acts as an adapter between external clients and the internal application
// services, translating HTTP concerns to business operations.
//
// All error responses share a single JSON envelope with one "message" field.
// Expected failures (unknown or malformed item IDs) map to 404, undecodable
// request bodies to 400, and everything else to a generic 500.
package api
