package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one immutable turn in a session. GeneratedSQL and SQLResult
// are only set on assistant messages that produced a query.
type ChatMessage struct {
	Id            uuid.UUID
	ChatSessionId uuid.UUID
	Role          string
	Content       string
	GeneratedSQL  string
	SQLResult     string
	CreatedAt     time.Time
}
