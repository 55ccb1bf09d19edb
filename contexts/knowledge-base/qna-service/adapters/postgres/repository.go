package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"minerva/contexts/knowledge-base/qna-service/domain/entities"
	domainerrors "minerva/contexts/knowledge-base/qna-service/domain/errors"
	"minerva/contexts/knowledge-base/qna-service/domain/pagination"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

type questionModel struct {
	QuestionID string    `gorm:"column:question_id;primaryKey"`
	Title      string    `gorm:"column:title;not null"`
	Content    string    `gorm:"column:content;not null"`
	Tags       string    `gorm:"column:tags;type:jsonb"`
	OwnerID    string    `gorm:"column:owner_id;not null;index"`
	CreatedAt  time.Time `gorm:"column:created_at;index"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (questionModel) TableName() string { return "questions" }

type answerModel struct {
	AnswerID   string        `gorm:"column:answer_id;primaryKey"`
	Content    string        `gorm:"column:content;not null"`
	QuestionID string        `gorm:"column:question_id;not null;index"`
	OwnerID    string        `gorm:"column:owner_id;not null"`
	CreatedAt  time.Time     `gorm:"column:created_at"`
	Question   questionModel `gorm:"foreignKey:QuestionID;references:QuestionID;constraint:OnDelete:CASCADE"`
}

func (answerModel) TableName() string { return "answers" }

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the questions and answers tables, including the foreign key
// that backs the answer-to-question existence precondition.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&questionModel{}, &answerModel{})
}

func (r *Repository) ListQuestions(ctx context.Context, page pagination.Page) ([]entities.Question, error) {
	tx := r.db.WithContext(ctx).
		Model(&questionModel{}).
		Order("created_at ASC, question_id ASC").
		Offset(page.Offset)
	if page.Limit != nil {
		tx = tx.Limit(*page.Limit)
	}

	var rows []questionModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Question, 0, len(rows))
	for _, row := range rows {
		question, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, question)
	}
	return items, nil
}

func (r *Repository) GetQuestion(ctx context.Context, questionID string) (entities.Question, error) {
	var row questionModel
	err := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Question{}, domainerrors.ErrQuestionNotFound
		}
		return entities.Question{}, err
	}
	return row.toEntity()
}

func (r *Repository) CreateQuestion(ctx context.Context, question entities.Question) error {
	row, err := questionModelFromEntity(question)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) UpdateQuestion(ctx context.Context, question entities.Question) error {
	row, err := questionModelFromEntity(question)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&questionModel{}).
		Where("question_id = ?", question.QuestionID).
		Updates(map[string]any{
			"title":      row.Title,
			"content":    row.Content,
			"tags":       row.Tags,
			"updated_at": row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrQuestionNotFound
	}
	return nil
}

func (r *Repository) DeleteQuestion(ctx context.Context, questionID string) error {
	result := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Delete(&questionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrQuestionNotFound
	}
	return nil
}

func (r *Repository) CreateAnswer(ctx context.Context, answer entities.Answer) error {
	row := answerModel{
		AnswerID:   answer.AnswerID,
		Content:    answer.Content,
		QuestionID: answer.QuestionID,
		OwnerID:    answer.OwnerID,
		CreatedAt:  answer.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Omit("Question").Create(&row).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domainerrors.ErrQuestionNotFound
		}
		return err
	}
	return nil
}

func (r *Repository) ListAnswers(ctx context.Context, questionID string, page pagination.Page) ([]entities.Answer, error) {
	tx := r.db.WithContext(ctx).
		Model(&answerModel{}).
		Where("question_id = ?", questionID).
		Order("created_at ASC, answer_id ASC").
		Offset(page.Offset)
	if page.Limit != nil {
		tx = tx.Limit(*page.Limit)
	}

	var rows []answerModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.Answer, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.Answer{
			AnswerID:   row.AnswerID,
			Content:    row.Content,
			QuestionID: row.QuestionID,
			OwnerID:    row.OwnerID,
			CreatedAt:  row.CreatedAt,
		})
	}
	return items, nil
}

func questionModelFromEntity(question entities.Question) (questionModel, error) {
	tags, err := marshalTags(question.Tags)
	if err != nil {
		return questionModel{}, err
	}
	return questionModel{
		QuestionID: question.QuestionID,
		Title:      question.Title,
		Content:    question.Content,
		Tags:       tags,
		OwnerID:    question.OwnerID,
		CreatedAt:  question.CreatedAt,
		UpdatedAt:  question.UpdatedAt,
	}, nil
}

func (m questionModel) toEntity() (entities.Question, error) {
	tags, err := unmarshalTags(m.Tags)
	if err != nil {
		return entities.Question{}, err
	}
	return entities.Question{
		QuestionID: m.QuestionID,
		Title:      m.Title,
		Content:    m.Content,
		Tags:       tags,
		OwnerID:    m.OwnerID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}, nil
}

func marshalTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("marshal tags: %w", err)
	}
	return string(raw), nil
}

func unmarshalTags(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("unmarshal tags: %w", err)
	}
	return tags, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
