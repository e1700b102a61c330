package models

// QuizRequest is the JSON body for creating or updating a quiz.
// Updates read the name from Title and fall back to Name.
// swagger:model QuizRequest
type QuizRequest struct {
	// Quiz name
	// example: Q1
	Name string `json:"name"`

	// Quiz name, accepted on update
	// example: Q1
	Title string `json:"title,omitempty"`

	// Quiz description
	// required: true
	// example: A first quiz
	Description string `json:"description"`

	// Questions in display order
	// required: true
	Questions []QuestionInput `json:"questions"`
}

// ToInput converts a create request.
func (r QuizRequest) ToInput() QuizInput {
	return QuizInput{
		Name:        r.Name,
		Description: r.Description,
		Questions:   r.Questions,
	}
}

// ToUpdateInput converts an update request, preferring Title over Name.
func (r QuizRequest) ToUpdateInput() QuizInput {
	in := r.ToInput()
	if r.Title != "" {
		in.Name = r.Title
	}
	return in
}

// IDResponse carries the ID of the affected quiz
// swagger:model IDResponse
type IDResponse struct {
	// example: 1
	ID int64 `json:"id"`
}
