package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type QuestionDTO struct {
	QuestionID string   `json:"question_id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	OwnerID    string   `json:"owner_id"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

type CreateQuestionRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

type UpdateQuestionRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

type QuestionResponse struct {
	Status string      `json:"status"`
	Data   QuestionDTO `json:"data"`
}

type QuestionListResponse struct {
	Status string        `json:"status"`
	Data   []QuestionDTO `json:"data"`
}

type AnswerDTO struct {
	AnswerID   string `json:"answer_id"`
	Content    string `json:"content"`
	QuestionID string `json:"question_id"`
	OwnerID    string `json:"owner_id"`
	CreatedAt  string `json:"created_at"`
}

type CreateAnswerRequest struct {
	Content    string `json:"content"`
	QuestionID string `json:"question_id"`
}

type AnswerResponse struct {
	Status string    `json:"status"`
	Data   AnswerDTO `json:"data"`
}

type AnswerListResponse struct {
	Status string      `json:"status"`
	Data   []AnswerDTO `json:"data"`
}
