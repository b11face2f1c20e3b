package dto

import (
	"time"

	"catalog-chat-be/pkg/sqlguard"

	"github.com/google/uuid"
)

type ProcessChatRequest struct {
	ChatSessionId *uuid.UUID `json:"chat_session_id"`
	Message       string     `json:"message" validate:"required,max=2000"`
}

type ProcessChatResponse struct {
	ChatSessionId    uuid.UUID             `json:"chat_session_id"`
	CreatedNewChat   bool                  `json:"created_new_chat"`
	Reply            string                `json:"reply"`
	GeneratedSQL     string                `json:"generated_sql,omitempty"`
	QueryResult      *sqlguard.QueryResult `json:"query_result,omitempty"`
	Degraded         bool                  `json:"degraded,omitempty"`
	DegradedReason   string                `json:"degraded_reason,omitempty"`
	ResultsTruncated bool                  `json:"results_truncated,omitempty"`
}

type CreateSessionRequest struct {
	Title string `json:"title" validate:"max=50"`
}

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type GetAllSessionsResponse struct {
	Id        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type GetChatHistoryResponse struct {
	Id           uuid.UUID `json:"id"`
	Role         string    `json:"role"`
	Content      string    `json:"content"`
	GeneratedSQL string    `json:"generated_sql,omitempty"`
	SQLResult    string    `json:"sql_result,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type DeleteSessionRequest struct {
	ChatSessionId uuid.UUID
}
