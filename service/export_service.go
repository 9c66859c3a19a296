package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"chatbot-backend/storage"

	"github.com/google/uuid"
)

// ExportService writes corpus snapshots to configured storage so admins
// can back up the question table before bulk edits.
type ExportService struct {
	questions QuestionStore
	storage   storage.Storage
}

// ExportServiceOption is a functional option for ExportService
type ExportServiceOption func(*ExportService)

// ExportWithQuestionStore sets the corpus read capability
func ExportWithQuestionStore(store QuestionStore) ExportServiceOption {
	return func(s *ExportService) {
		s.questions = store
	}
}

// ExportWithStorage sets the snapshot storage backend
func ExportWithStorage(store storage.Storage) ExportServiceOption {
	return func(s *ExportService) {
		s.storage = store
	}
}

// NewExportService creates a new export service
func NewExportService(opts ...ExportServiceOption) *ExportService {
	s := &ExportService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ExportResult carries the storage path of the written snapshot
type ExportResult struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// Export serializes the full question table to JSON and uploads it
func (s *ExportService) Export(ctx context.Context) (*ExportResult, error) {
	if s.questions == nil {
		return nil, errors.New("question store not set")
	}
	if s.storage == nil {
		return nil, errors.New("storage not set")
	}

	questions, err := s.questions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus: %w", err)
	}

	data, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize corpus: %w", err)
	}

	filename := fmt.Sprintf("questions_%s.json", time.Now().UTC().Format("20060102T150405Z"))
	path, err := s.storage.Upload(ctx, uuid.New(), filename, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to upload snapshot: %w", err)
	}

	return &ExportResult{Path: path, Count: len(questions)}, nil
}
