package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"revim/internal/model"
)

type AssessmentRepository interface {
	Create(ctx context.Context, record *model.AssessmentRecord) error
	GetByID(ctx context.Context, id string) (*model.AssessmentRecord, error)
	ListBySnapshotID(ctx context.Context, snapshotID string) ([]*model.AssessmentRecord, error)
}

type assessmentRepository struct {
	collection *mongo.Collection
}

func NewAssessmentRepository(client *mongo.Client) AssessmentRepository {
	db := client.Database("revim")
	return &assessmentRepository{
		collection: db.Collection("assessments"),
	}
}

func (r *assessmentRepository) Create(ctx context.Context, record *model.AssessmentRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, record)
	return err
}

func (r *assessmentRepository) GetByID(ctx context.Context, id string) (*model.AssessmentRecord, error) {
	var record model.AssessmentRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *assessmentRepository) ListBySnapshotID(ctx context.Context, snapshotID string) ([]*model.AssessmentRecord, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"snapshotId": snapshotID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*model.AssessmentRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
