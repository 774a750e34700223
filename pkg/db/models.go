package db

import "time"

// Run is one export of the final record set.
type Run struct {
	ID         string
	Provenance string
	StartedAt  time.Time
	FinishedAt time.Time
	EntryCount int
}
