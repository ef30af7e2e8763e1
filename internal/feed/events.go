package feed

import "time"

type BookEvent struct {
	Type string    `json:"type"` // "book.created" or "book.updated"
	ISBN string    `json:"isbn"`
	Book any       `json:"book,omitempty"`
	At   time.Time `json:"at"`
}
