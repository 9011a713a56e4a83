package dto

import "github.com/google/uuid"

// AssistantReplyMessage is the payload published on the reply topic
// every time the assistant answers a user. The consumer uses it for
// daily usage accounting.
type AssistantReplyMessage struct {
	UserId uuid.UUID `json:"user_id"`
	Intent string    `json:"intent"`
}
