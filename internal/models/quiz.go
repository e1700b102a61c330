package models

import "time"

// QuizDB represents a quiz row in the database
type QuizDB struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"` // Set by the database on insert
	CreatedBy   int64     `json:"created_by" db:"created_by"` // ID of the creating user
}

// Quiz is a quiz with its creator and questions resolved.
// swagger:model Quiz
type Quiz struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
	CreatedBy   *UserDB      `json:"created_by"`
	Questions   []QuestionDB `json:"questions"`
}

// QuizInput carries the fields of a quiz that has not been persisted yet.
type QuizInput struct {
	Name        string
	Description string
	Questions   []QuestionInput
}
