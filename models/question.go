package models

import (
	"time"

	"github.com/google/uuid"
)

// Question represents a stored question/answer pair
type Question struct {
	ID           uuid.UUID `json:"id"`
	Question     string    `json:"question"`
	Answer       string    `json:"answer"`
	IsSuggestion bool      `json:"is_suggestion"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
