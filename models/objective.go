package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Objective is a client work site guards are posted to.
type Objective struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	ClientID     string             `json:"client_id,omitempty" bson:"client_id,omitempty"`
	Location     GeoPoint           `json:"location" bson:"location"`
	RadiusMeters float64            `json:"radius_meters,omitempty" bson:"radius_meters,omitempty"`
	Active       bool               `json:"active" bson:"active"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type GeoPoint struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

type ObjectiveCreatePayload struct {
	Name         string  `json:"name" validate:"required,min=3,max=120"`
	ClientID     string  `json:"client_id"`
	Latitude     float64 `json:"latitude" validate:"latitude"`
	Longitude    float64 `json:"longitude" validate:"longitude"`
	RadiusMeters float64 `json:"radius_meters" validate:"min=0"`
}
