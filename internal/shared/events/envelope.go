package events

import "time"

// Envelope is the shared event shape used in Minerva.
// Align fields with repository canonical event contract.
type Envelope struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	SourceService  string    `json:"source_service"`
	OccurredAtUTC  time.Time `json:"occurred_at_utc"`
	EntityType     string    `json:"entity_type"`
	EntityID       string    `json:"entity_id"`
	PayloadVersion int       `json:"payload_version"`
	Payload        any       `json:"payload"`
}

// Event types published by the API process. Consumers subscribe by topic,
// where the topic equals the event type.
const (
	TypeQuestionCreated   = "question.created"
	TypeQuestionUpdated   = "question.updated"
	TypeQuestionDeleted   = "question.deleted"
	TypeAnswerCreated     = "answer.created"
	TypeAccountRegistered = "account.registered"
)

// QuestionPayload carries the public fields of a question lifecycle event.
type QuestionPayload struct {
	QuestionID string   `json:"question_id"`
	Title      string   `json:"title"`
	Tags       []string `json:"tags,omitempty"`
	OwnerID    string   `json:"owner_id"`
}

// AnswerPayload carries the public fields of an answer lifecycle event.
type AnswerPayload struct {
	AnswerID   string `json:"answer_id"`
	QuestionID string `json:"question_id"`
	OwnerID    string `json:"owner_id"`
}

// AccountPayload carries only the account id. Email and credential material
// never enter the event stream.
type AccountPayload struct {
	AccountID string `json:"account_id"`
}
