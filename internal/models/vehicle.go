package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VehicleStatus is the operating state of a collection vehicle.
type VehicleStatus string

const (
	VehicleActive      VehicleStatus = "active"
	VehicleIdle        VehicleStatus = "idle"
	VehicleMaintenance VehicleStatus = "maintenance"
)

// VehicleStatuses lists every valid vehicle status.
var VehicleStatuses = []VehicleStatus{VehicleActive, VehicleIdle, VehicleMaintenance}

// IsValidVehicleStatus checks if a status is one of the vehicle statuses.
func IsValidVehicleStatus(status string) bool {
	switch VehicleStatus(status) {
	case VehicleActive, VehicleIdle, VehicleMaintenance:
		return true
	default:
		return false
	}
}

// Vehicle represents a waste collection vehicle.
// StopsDone is not guaranteed to be less than or equal to TotalStops.
type Vehicle struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	VehicleID       string             `bson:"vehicleId" json:"vehicleId"`
	Driver          string             `bson:"driver" json:"driver"`
	TotalStops      int                `bson:"totalStops" json:"totalStops"`
	StopsDone       int                `bson:"stopsDone" json:"stopsDone"`
	CurrentLocation Location           `bson:"currentLocation" json:"currentLocation"`
	Status          VehicleStatus      `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateVehicle is the payload for registering a vehicle.
type CreateVehicle struct {
	VehicleID       string        `bson:"vehicleId" json:"vehicleId" validate:"required"`
	Driver          string        `bson:"driver" json:"driver" validate:"required"`
	TotalStops      int           `bson:"totalStops" json:"totalStops" validate:"gte=0"`
	StopsDone       int           `bson:"stopsDone" json:"stopsDone" validate:"gte=0"`
	CurrentLocation Location      `bson:"currentLocation" json:"currentLocation"`
	Status          VehicleStatus `bson:"status" json:"status" validate:"required,oneof=active idle maintenance"`
}

// Vehicle builds the document stored for this payload.
func (c CreateVehicle) Vehicle(now time.Time) Vehicle {
	return Vehicle{
		VehicleID:       c.VehicleID,
		Driver:          c.Driver,
		TotalStops:      c.TotalStops,
		StopsDone:       c.StopsDone,
		CurrentLocation: c.CurrentLocation,
		Status:          c.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// UpdateVehicle is a partial vehicle update. Nil fields are left untouched.
type UpdateVehicle struct {
	VehicleID       *string        `bson:"vehicleId,omitempty" json:"vehicleId,omitempty" validate:"omitnil,min=1"`
	Driver          *string        `bson:"driver,omitempty" json:"driver,omitempty"`
	TotalStops      *int           `bson:"totalStops,omitempty" json:"totalStops,omitempty" validate:"omitnil,gte=0"`
	StopsDone       *int           `bson:"stopsDone,omitempty" json:"stopsDone,omitempty" validate:"omitnil,gte=0"`
	CurrentLocation *Location      `bson:"currentLocation,omitempty" json:"currentLocation,omitempty"`
	Status          *VehicleStatus `bson:"status,omitempty" json:"status,omitempty" validate:"omitnil,oneof=active idle maintenance"`
	UpdatedAt       time.Time      `bson:"updatedAt" json:"-"`
}
