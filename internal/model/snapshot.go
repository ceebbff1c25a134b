package model

import "time"

// Snapshot is a saved answer set. The payload is the answers encoded
// as JSON and is stored opaquely so old snapshots survive schema
// additions unchanged.
type Snapshot struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Label         string    `json:"label" bson:"label"`
	SchemaVersion string    `json:"schemaVersion" bson:"schemaVersion"`
	Payload       string    `json:"payload" bson:"payload"`
	CreatedAt     time.Time `json:"createdAt" bson:"createdAt"`
}

// AssessmentRecord is a stored evaluation run
type AssessmentRecord struct {
	ID         string           `json:"id" bson:"_id,omitempty"`
	SnapshotID string           `json:"snapshotId,omitempty" bson:"snapshotId,omitempty"`
	Result     EvaluationResult `json:"result" bson:"result"`
	CreatedAt  time.Time        `json:"createdAt" bson:"createdAt"`
}
