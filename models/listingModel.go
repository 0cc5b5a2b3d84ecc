package models

// Listing is a capped result set. Truncated is set when the store held more
// records than the listing limit allowed.
type Listing[T any] struct {
	Items     []T
	Truncated bool
	Limit     int64
}
