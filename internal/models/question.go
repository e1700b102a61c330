package models

// QuestionDB represents a question row in the database
type QuestionDB struct {
	ID       int64   `json:"id" db:"id"`
	QuizID   int64   `json:"-" db:"quiz_id"`  // Owning quiz
	Position int     `json:"-" db:"position"` // 0-based order within the quiz
	Question string  `json:"question" db:"question"`
	Answer   string  `json:"answer" db:"answer"`
	Options  Options `json:"options" db:"options"`
}

// QuestionInput is a question as submitted by a client.
// ID is set only when an existing question is being edited.
// swagger:model QuestionInput
type QuestionInput struct {
	// Existing question ID (update only)
	// example: 1
	ID *int64 `json:"id,omitempty"`

	// Question text
	// required: true
	// example: 2+2?
	Question string `json:"question"`

	// Correct answer
	// required: true
	// example: 4
	Answer string `json:"answer"`

	// Answer options, in display order
	// example: ["3","4","5"]
	Options []string `json:"options"`
}
