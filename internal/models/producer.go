package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conventional producer statuses. Status is stored as free-form text.
const (
	ProducerActive   = "active"
	ProducerInactive = "inactive"
)

// Producer represents a medical waste producer such as a clinic or hospital.
type Producer struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	Address    string             `bson:"address" json:"address"`
	City       string             `bson:"city" json:"city"`
	Province   string             `bson:"province" json:"province"`
	PostalCode string             `bson:"postalCode" json:"postalCode"`
	Phone      string             `bson:"phone" json:"phone"`
	Status     string             `bson:"status" json:"status"`
	Location   Location           `bson:"location" json:"location"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CreateProducer is the payload for registering a producer.
type CreateProducer struct {
	Name       string   `bson:"name" json:"name" validate:"required"`
	Address    string   `bson:"address" json:"address"`
	City       string   `bson:"city" json:"city"`
	Province   string   `bson:"province" json:"province"`
	PostalCode string   `bson:"postalCode" json:"postalCode"`
	Phone      string   `bson:"phone" json:"phone"`
	Status     string   `bson:"status" json:"status"`
	Location   Location `bson:"location" json:"location"`
}

// Producer builds the document stored for this payload.
func (c CreateProducer) Producer(now time.Time) Producer {
	return Producer{
		Name:       c.Name,
		Address:    c.Address,
		City:       c.City,
		Province:   c.Province,
		PostalCode: c.PostalCode,
		Phone:      c.Phone,
		Status:     c.Status,
		Location:   c.Location,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// UpdateProducer is a partial producer update. Nil fields are left untouched.
type UpdateProducer struct {
	Name       *string   `bson:"name,omitempty" json:"name,omitempty" validate:"omitnil,min=1"`
	Address    *string   `bson:"address,omitempty" json:"address,omitempty"`
	City       *string   `bson:"city,omitempty" json:"city,omitempty"`
	Province   *string   `bson:"province,omitempty" json:"province,omitempty"`
	PostalCode *string   `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Phone      *string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Status     *string   `bson:"status,omitempty" json:"status,omitempty"`
	Location   *Location `bson:"location,omitempty" json:"location,omitempty"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"-"`
}
