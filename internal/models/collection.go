package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CollectionStatus is the lifecycle state of a collection job.
// Any status may be replaced by any other; there is no transition graph.
type CollectionStatus string

const (
	CollectionTodo    CollectionStatus = "todo"
	CollectionNext    CollectionStatus = "next"
	CollectionDone    CollectionStatus = "done"
	CollectionAnomaly CollectionStatus = "anomaly"
)

// CollectionStatuses lists every valid collection status.
var CollectionStatuses = []CollectionStatus{CollectionTodo, CollectionNext, CollectionDone, CollectionAnomaly}

// IsValidCollectionStatus checks if a status is one of the collection statuses.
func IsValidCollectionStatus(status string) bool {
	switch CollectionStatus(status) {
	case CollectionTodo, CollectionNext, CollectionDone, CollectionAnomaly:
		return true
	default:
		return false
	}
}

// Collection represents a scheduled waste pickup job.
//
// Producer holds a producer name and VehicleID a vehicle business key. Neither
// is checked against existing documents. CompletedTime is set when the job is
// marked done and is kept if the status later changes.
type Collection struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Code          string             `bson:"id" json:"id"`
	Producer      string             `bson:"producer" json:"producer"`
	WasteDetail   string             `bson:"wasteDetail" json:"wasteDetail"`
	Status        CollectionStatus   `bson:"status" json:"status"`
	Location      Location           `bson:"location" json:"location"`
	ScheduledTime time.Time          `bson:"scheduledTime" json:"scheduledTime"`
	CompletedTime *time.Time         `bson:"completedTime,omitempty" json:"completedTime,omitempty"`
	VehicleID     string             `bson:"vehicleId" json:"vehicleId"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateCollection is the payload for scheduling a collection job.
type CreateCollection struct {
	Code          string           `bson:"id" json:"id" validate:"required"`
	Producer      string           `bson:"producer" json:"producer" validate:"required"`
	WasteDetail   string           `bson:"wasteDetail" json:"wasteDetail"`
	Status        CollectionStatus `bson:"status" json:"status" validate:"required,oneof=todo next done anomaly"`
	Location      Location         `bson:"location" json:"location"`
	ScheduledTime time.Time        `bson:"scheduledTime" json:"scheduledTime" validate:"required"`
	CompletedTime *time.Time       `bson:"completedTime,omitempty" json:"completedTime,omitempty"`
	VehicleID     string           `bson:"vehicleId" json:"vehicleId" validate:"required"`
}

// Collection builds the document stored for this payload.
func (c CreateCollection) Collection(now time.Time) Collection {
	return Collection{
		Code:          c.Code,
		Producer:      c.Producer,
		WasteDetail:   c.WasteDetail,
		Status:        c.Status,
		Location:      c.Location,
		ScheduledTime: c.ScheduledTime,
		CompletedTime: c.CompletedTime,
		VehicleID:     c.VehicleID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// UpdateCollection is a partial collection update. Nil fields are left untouched.
type UpdateCollection struct {
	Code          *string           `bson:"id,omitempty" json:"id,omitempty" validate:"omitnil,min=1"`
	Producer      *string           `bson:"producer,omitempty" json:"producer,omitempty"`
	WasteDetail   *string           `bson:"wasteDetail,omitempty" json:"wasteDetail,omitempty"`
	Status        *CollectionStatus `bson:"status,omitempty" json:"status,omitempty" validate:"omitnil,oneof=todo next done anomaly"`
	Location      *Location         `bson:"location,omitempty" json:"location,omitempty"`
	ScheduledTime *time.Time        `bson:"scheduledTime,omitempty" json:"scheduledTime,omitempty"`
	CompletedTime *time.Time        `bson:"completedTime,omitempty" json:"completedTime,omitempty"`
	VehicleID     *string           `bson:"vehicleId,omitempty" json:"vehicleId,omitempty"`
	UpdatedAt     time.Time         `bson:"updatedAt" json:"-"`
}
