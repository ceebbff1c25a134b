package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"revim/internal/model"
)

type SnapshotRepository interface {
	Create(ctx context.Context, snapshot *model.Snapshot) error
	GetByID(ctx context.Context, id string) (*model.Snapshot, error)
	List(ctx context.Context) ([]*model.Snapshot, error)
	Delete(ctx context.Context, id string) error
}

type snapshotRepository struct {
	collection *mongo.Collection
}

func NewSnapshotRepository(client *mongo.Client) SnapshotRepository {
	db := client.Database("revim")
	return &snapshotRepository{
		collection: db.Collection("snapshots"),
	}
}

func (r *snapshotRepository) Create(ctx context.Context, snapshot *model.Snapshot) error {
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = time.Now()
	}
	_, err := r.collection.InsertOne(ctx, snapshot)
	return err
}

func (r *snapshotRepository) GetByID(ctx context.Context, id string) (*model.Snapshot, error) {
	var snapshot model.Snapshot
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&snapshot)
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (r *snapshotRepository) List(ctx context.Context) ([]*model.Snapshot, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var snapshots []*model.Snapshot
	if err = cursor.All(ctx, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}

func (r *snapshotRepository) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
