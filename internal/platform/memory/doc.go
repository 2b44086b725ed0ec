// Package memory provides the in-memory implementation of the data storage
// interfaces defined in the internal/store package. All data lives for the
// lifetime of the process; nothing is persisted across restarts.
package memory
