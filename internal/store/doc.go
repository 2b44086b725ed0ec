// Package store defines interfaces for data storage operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic, allowing business rules to remain independent
// of how and where items are actually kept.
package store
