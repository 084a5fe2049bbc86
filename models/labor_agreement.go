package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default workload caps applied when the employee's agreement code does not
// resolve to a stored agreement.
const (
	DefaultMaxHoursWeekly  = 48.0
	DefaultMaxHoursMonthly = 200.0
)

// LaborAgreement is the cap lookup table keyed by agreement code.
type LaborAgreement struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code            string             `json:"code" bson:"code"`
	Name            string             `json:"name,omitempty" bson:"name,omitempty"`
	MaxHoursWeekly  float64            `json:"max_hours_weekly" bson:"max_hours_weekly"`
	MaxHoursMonthly float64            `json:"max_hours_monthly" bson:"max_hours_monthly"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

// DefaultAgreement returns the fallback caps.
func DefaultAgreement() *LaborAgreement {
	return &LaborAgreement{
		Code:            "DEFAULT",
		MaxHoursWeekly:  DefaultMaxHoursWeekly,
		MaxHoursMonthly: DefaultMaxHoursMonthly,
	}
}
