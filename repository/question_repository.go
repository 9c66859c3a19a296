package repository

import (
	"context"
	"errors"
	"strings"

	"chatbot-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrEmptyField is returned when a question or answer is blank.
	// Blank records are rejected here so the matcher never has to
	// defend against them.
	ErrEmptyField = errors.New("question and answer must not be empty")

	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
)

// QuestionRepository handles database operations for stored questions
type QuestionRepository struct {
	db *pgxpool.Pool
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Create inserts a new question record
func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	if strings.TrimSpace(question.Question) == "" || strings.TrimSpace(question.Answer) == "" {
		return ErrEmptyField
	}

	query := `
		INSERT INTO questions (question, answer, is_suggestion)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		question.Question,
		question.Answer,
		question.IsSuggestion,
	).Scan(&question.ID, &question.CreatedAt, &question.UpdatedAt)

	return err
}

// GetByID retrieves a question by ID
func (r *QuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	question := &models.Question{}
	query := `
		SELECT id, question, answer, is_suggestion, created_at, updated_at
		FROM questions
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&question.ID,
		&question.Question,
		&question.Answer,
		&question.IsSuggestion,
		&question.CreatedAt,
		&question.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return question, nil
}

// ListAll retrieves the full corpus. Insertion order is kept stable so
// matcher tie-breaks are deterministic across calls.
func (r *QuestionRepository) ListAll(ctx context.Context) ([]models.Question, error) {
	query := `
		SELECT id, question, answer, is_suggestion, created_at, updated_at
		FROM questions
		ORDER BY created_at, id`

	return r.list(ctx, query)
}

// ListSuggestions retrieves only the records flagged for proactive
// display in the chat UI.
func (r *QuestionRepository) ListSuggestions(ctx context.Context) ([]models.Question, error) {
	query := `
		SELECT id, question, answer, is_suggestion, created_at, updated_at
		FROM questions
		WHERE is_suggestion = true
		ORDER BY created_at, id`

	return r.list(ctx, query)
}

func (r *QuestionRepository) list(ctx context.Context, query string) ([]models.Question, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var question models.Question
		err := rows.Scan(
			&question.ID,
			&question.Question,
			&question.Answer,
			&question.IsSuggestion,
			&question.CreatedAt,
			&question.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	return questions, rows.Err()
}

// Update updates a question record
func (r *QuestionRepository) Update(ctx context.Context, question *models.Question) error {
	if strings.TrimSpace(question.Question) == "" || strings.TrimSpace(question.Answer) == "" {
		return ErrEmptyField
	}

	query := `
		UPDATE questions SET
			question = $2,
			answer = $3,
			is_suggestion = $4,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(
		ctx, query,
		question.ID,
		question.Question,
		question.Answer,
		question.IsSuggestion,
	).Scan(&question.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// Delete deletes a question record
func (r *QuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM questions WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
