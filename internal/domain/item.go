package domain

// Item is the single resource this API manages.
//
// IDs are numeric and timestamp-derived: the store seeds each new ID from
// the current Unix-millisecond clock and forces it strictly monotonic, so
// IDs remain sortable by creation time while staying unique even when many
// items are created within the same millisecond.
//
// Name is caller-supplied and deliberately unvalidated; empty names are
// legal. Payload validation is out of scope for this service.
type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
