package events

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrMissingBoardID = errors.New("event has no board id")

// Log keeps the ordered history of every board
type Log interface {
	// Append stores events atomically: either all of them are recorded or
	// none are.
	Append(events ...Event) ([]Record, error)
	// History returns a board's records, oldest first
	History(boardID string) ([]Record, error)
}

// MemoryLog is a Log held in memory
type MemoryLog struct {
	boards map[string][]Record
	now    func() time.Time
	mutex  sync.RWMutex
}

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{
		boards: make(map[string][]Record),
		now:    time.Now,
	}
}

func (l *MemoryLog) Append(events ...Event) ([]Record, error) {
	for i, e := range events {
		if e == nil || e.Board() == "" {
			return nil, fmt.Errorf("%w: event %d", ErrMissingBoardID, i)
		}
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	at := l.now()
	records := make([]Record, len(events))
	for i, e := range events {
		id := e.Board()
		r := Record{Seq: len(l.boards[id]) + 1, At: at, Event: e}
		l.boards[id] = append(l.boards[id], r)
		records[i] = r
	}
	return records, nil
}

func (l *MemoryLog) History(boardID string) ([]Record, error) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	records := make([]Record, len(l.boards[boardID]))
	copy(records, l.boards[boardID])
	return records, nil
}
