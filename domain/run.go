// Package domain holds the records shared between services and repositories.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Run summarises one completed search. The grid layout itself is never stored.
type Run struct {
	ID          uuid.UUID `bson:"_id" json:"id"`
	Owner       uuid.UUID `bson:"owner" json:"-"`
	Rows        int       `bson:"rows" json:"rows"`
	Cols        int       `bson:"cols" json:"cols"`
	Walls       int       `bson:"walls" json:"walls"`
	Status      string    `bson:"status" json:"status"`
	Found       bool      `bson:"found" json:"found"`
	Visited     int       `bson:"visited" json:"visited"`
	Steps       int       `bson:"steps" json:"steps"`
	RouteLength int       `bson:"routeLength" json:"route_length"`
	DurationMs  int64     `bson:"durationMs" json:"duration_ms"`
	StartedAt   time.Time `bson:"startedAt" json:"started_at"`
}
