package entities

import "time"

type Question struct {
	QuestionID string
	Title      string
	Content    string
	Tags       []string
	OwnerID    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Answer struct {
	AnswerID   string
	Content    string
	QuestionID string
	OwnerID    string
	CreatedAt  time.Time
}
