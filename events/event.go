package events

import "time"

// Event is a change to one board
type Event interface {
	EventName() string
	// Board returns the ID of the board the event belongs to
	Board() string
}

// Record is an event as it sits in a board's history
type Record struct {
	Seq   int       `json:"seq"`
	At    time.Time `json:"at"`
	Event Event     `json:"event"`
}
