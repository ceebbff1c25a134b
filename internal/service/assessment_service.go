package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"revim/internal/cache"
	"revim/internal/engine"
	"revim/internal/model"
	"revim/internal/repository"
)

// AssessmentService runs evaluations and records them. Repository and
// cache are optional: with neither, the service still evaluates and
// simply skips persistence, which is how the CLI driver runs it.
type AssessmentService struct {
	engine *engine.Engine
	schema *model.Schema
	repo   repository.AssessmentRepository
	cache  cache.ResultCache
}

func NewAssessmentService(eng *engine.Engine, schema *model.Schema, repo repository.AssessmentRepository, resultCache cache.ResultCache) *AssessmentService {
	return &AssessmentService{
		engine: eng,
		schema: schema,
		repo:   repo,
		cache:  resultCache,
	}
}

// Schema exposes the questionnaire for form-rendering clients.
func (s *AssessmentService) Schema() *model.Schema {
	return s.schema
}

// Evaluate runs the engine over an answer set and stores the record
// when a repository is configured.
func (s *AssessmentService) Evaluate(ctx context.Context, answers model.AnswerSet) (*model.AssessmentRecord, error) {
	result, err := s.engine.Evaluate(s.schema, answers)
	if err != nil {
		return nil, err
	}

	record := &model.AssessmentRecord{
		ID:     uuid.NewString(),
		Result: *result,
	}
	if s.repo != nil {
		if err := s.repo.Create(ctx, record); err != nil {
			log.Printf("assessment %s not persisted: %v", record.ID, err)
		}
	}
	return record, nil
}

// EvaluateSnapshot evaluates a stored snapshot, serving from the
// result cache when the latest run for it is still fresh.
func (s *AssessmentService) EvaluateSnapshot(ctx context.Context, snapshot *model.Snapshot) (*model.AssessmentRecord, error) {
	if s.cache != nil {
		if record, err := s.cache.Get(ctx, snapshot.ID); err == nil {
			return record, nil
		}
	}

	answers, err := DecodeAnswers(snapshot.Payload)
	if err != nil {
		return nil, err
	}
	result, err := s.engine.Evaluate(s.schema, answers)
	if err != nil {
		return nil, err
	}

	record := &model.AssessmentRecord{
		ID:         uuid.NewString(),
		SnapshotID: snapshot.ID,
		Result:     *result,
	}
	if s.repo != nil {
		if err := s.repo.Create(ctx, record); err != nil {
			log.Printf("assessment %s not persisted: %v", record.ID, err)
		}
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshot.ID, record); err != nil {
			log.Printf("assessment %s not cached: %v", record.ID, err)
		}
	}
	return record, nil
}

// GetByID loads a stored assessment record.
func (s *AssessmentService) GetByID(ctx context.Context, id string) (*model.AssessmentRecord, error) {
	if s.repo == nil {
		return nil, ErrStorageUnavailable
	}
	return s.repo.GetByID(ctx, id)
}
