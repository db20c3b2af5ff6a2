package models

import "time"

// CarePlanVersion is an append-only audit record. One row is written per
// content-changing care plan update; rows are never updated or deleted except
// when the owning plan is hard-deleted.
type CarePlanVersion struct {
	ID          string                 `json:"id" bson:"_id,omitempty"`
	CarePlanID  string                 `json:"carePlanId" bson:"carePlanId"`
	Version     int                    `json:"version" bson:"version"`
	Changes     map[string]interface{} `json:"changes" bson:"changes"`
	CreatedByID string                 `json:"createdById" bson:"createdById"`
	CreatedAt   time.Time              `json:"createdAt" bson:"createdAt"`
}
