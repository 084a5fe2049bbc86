package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin = "admin"
	RoleGuard = "guard"
)

type User struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name,omitempty"`
	Email            string             `json:"email" bson:"email,omitempty"`
	Password         string             `json:"password,omitempty" bson:"password,omitempty"`
	Role             string             `json:"role" bson:"role,omitempty"`
	ContractType     string             `json:"contract_type,omitempty" bson:"contract_type,omitempty"`
	LaborAgreement   string             `json:"labor_agreement,omitempty" bson:"labor_agreement,omitempty"`
	MaxHoursPerMonth float64            `json:"max_hours_per_month,omitempty" bson:"max_hours_per_month,omitempty"`
	Active           bool               `json:"active" bson:"active"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt        time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type UserRegisterPayload struct {
	Name             string  `json:"name" validate:"required,min=3,max=100"`
	Email            string  `json:"email" validate:"required,email"`
	Password         string  `json:"password" validate:"required,min=8,max=50,hasuppercase"`
	Role             string  `json:"role" validate:"required,oneof=admin guard"`
	ContractType     string  `json:"contract_type"`
	LaborAgreement   string  `json:"labor_agreement"`
	MaxHoursPerMonth float64 `json:"max_hours_per_month" validate:"min=0"`
}

type UserLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Claims is the authenticated actor identity carried through request
// locals: uid plus role.
type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Role   string             `json:"role"`
}
