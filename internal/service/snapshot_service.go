package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"revim/internal/cache"
	"revim/internal/model"
	"revim/internal/repository"
)

// ErrStorageUnavailable is returned by operations that need a
// repository when the service was built without one.
var ErrStorageUnavailable = errors.New("storage unavailable")

// SnapshotService saves and loads raw answer sets.
type SnapshotService struct {
	repo          repository.SnapshotRepository
	cache         cache.ResultCache
	schemaVersion string
}

func NewSnapshotService(repo repository.SnapshotRepository, resultCache cache.ResultCache, schemaVersion string) *SnapshotService {
	return &SnapshotService{
		repo:          repo,
		cache:         resultCache,
		schemaVersion: schemaVersion,
	}
}

func (s *SnapshotService) Save(ctx context.Context, label string, answers model.AnswerSet) (*model.Snapshot, error) {
	if s.repo == nil {
		return nil, ErrStorageUnavailable
	}
	payload, err := EncodeAnswers(answers)
	if err != nil {
		return nil, err
	}
	snapshot := &model.Snapshot{
		ID:            uuid.NewString(),
		Label:         label,
		SchemaVersion: s.schemaVersion,
		Payload:       payload,
		CreatedAt:     time.Now(),
	}
	if err := s.repo.Create(ctx, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *SnapshotService) GetByID(ctx context.Context, id string) (*model.Snapshot, error) {
	if s.repo == nil {
		return nil, ErrStorageUnavailable
	}
	return s.repo.GetByID(ctx, id)
}

func (s *SnapshotService) List(ctx context.Context) ([]*model.Snapshot, error) {
	if s.repo == nil {
		return nil, ErrStorageUnavailable
	}
	return s.repo.List(ctx)
}

func (s *SnapshotService) Delete(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrStorageUnavailable
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Delete(ctx, id)
	}
	return nil
}

// Answers decodes a snapshot's payload back into an answer set.
func (s *SnapshotService) Answers(snapshot *model.Snapshot) (model.AnswerSet, error) {
	return DecodeAnswers(snapshot.Payload)
}
