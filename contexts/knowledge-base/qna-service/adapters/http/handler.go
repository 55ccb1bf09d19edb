package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"minerva/contexts/knowledge-base/qna-service/application"
	"minerva/contexts/knowledge-base/qna-service/domain/entities"
	"minerva/contexts/knowledge-base/qna-service/domain/pagination"
	"minerva/contexts/knowledge-base/qna-service/ports"
	httptransport "minerva/contexts/knowledge-base/qna-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListQuestionsHandler(ctx context.Context, rawLimit string, rawOffset string) (httptransport.QuestionListResponse, error) {
	page, err := pagination.Resolve(rawLimit, rawOffset)
	if err != nil {
		return httptransport.QuestionListResponse{}, err
	}

	questions, err := h.Service.ListQuestions(ctx, page)
	if err != nil {
		return httptransport.QuestionListResponse{}, err
	}

	resp := httptransport.QuestionListResponse{
		Status: "success",
		Data:   make([]httptransport.QuestionDTO, 0, len(questions)),
	}
	for _, question := range questions {
		resp.Data = append(resp.Data, questionDTO(question))
	}
	return resp, nil
}

func (h Handler) GetQuestionHandler(ctx context.Context, questionID string) (httptransport.QuestionResponse, error) {
	question, err := h.Service.GetQuestion(ctx, questionID)
	if err != nil {
		return httptransport.QuestionResponse{}, err
	}
	return httptransport.QuestionResponse{Status: "success", Data: questionDTO(question)}, nil
}

func (h Handler) CreateQuestionHandler(ctx context.Context, ownerID string, req httptransport.CreateQuestionRequest) (httptransport.QuestionResponse, error) {
	question, err := h.Service.CreateQuestion(ctx, ports.NewQuestion{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}, ownerID)
	if err != nil {
		return httptransport.QuestionResponse{}, err
	}
	return httptransport.QuestionResponse{Status: "success", Data: questionDTO(question)}, nil
}

func (h Handler) UpdateQuestionHandler(ctx context.Context, questionID string, actingAccountID string, req httptransport.UpdateQuestionRequest) (httptransport.QuestionResponse, error) {
	question, err := h.Service.UpdateQuestion(ctx, questionID, ports.QuestionPatch{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}, actingAccountID)
	if err != nil {
		return httptransport.QuestionResponse{}, err
	}
	return httptransport.QuestionResponse{Status: "success", Data: questionDTO(question)}, nil
}

func (h Handler) DeleteQuestionHandler(ctx context.Context, questionID string, actingAccountID string) error {
	return h.Service.DeleteQuestion(ctx, questionID, actingAccountID)
}

func (h Handler) CreateAnswerHandler(ctx context.Context, ownerID string, req httptransport.CreateAnswerRequest) (httptransport.AnswerResponse, error) {
	answer, err := h.Service.CreateAnswer(ctx, ports.NewAnswer{
		Content:    req.Content,
		QuestionID: req.QuestionID,
	}, ownerID)
	if err != nil {
		return httptransport.AnswerResponse{}, err
	}
	return httptransport.AnswerResponse{Status: "success", Data: answerDTO(answer)}, nil
}

func (h Handler) ListAnswersHandler(ctx context.Context, questionID string, rawLimit string, rawOffset string) (httptransport.AnswerListResponse, error) {
	page, err := pagination.Resolve(rawLimit, rawOffset)
	if err != nil {
		return httptransport.AnswerListResponse{}, err
	}

	answers, err := h.Service.ListAnswers(ctx, questionID, page)
	if err != nil {
		return httptransport.AnswerListResponse{}, err
	}

	resp := httptransport.AnswerListResponse{
		Status: "success",
		Data:   make([]httptransport.AnswerDTO, 0, len(answers)),
	}
	for _, answer := range answers {
		resp.Data = append(resp.Data, answerDTO(answer))
	}
	return resp, nil
}

func questionDTO(question entities.Question) httptransport.QuestionDTO {
	return httptransport.QuestionDTO{
		QuestionID: question.QuestionID,
		Title:      question.Title,
		Content:    question.Content,
		Tags:       question.Tags,
		OwnerID:    question.OwnerID,
		CreatedAt:  question.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  question.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func answerDTO(answer entities.Answer) httptransport.AnswerDTO {
	return httptransport.AnswerDTO{
		AnswerID:   answer.AnswerID,
		Content:    answer.Content,
		QuestionID: answer.QuestionID,
		OwnerID:    answer.OwnerID,
		CreatedAt:  answer.CreatedAt.UTC().Format(time.RFC3339),
	}
}
