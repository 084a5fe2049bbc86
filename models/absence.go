package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AbsenceStatusPending  = "pending"
	AbsenceStatusApproved = "approved"
	AbsenceStatusRejected = "rejected"
)

// Absence covers vacation, sick leave and similar out-of-service periods.
// Dates are inclusive calendar dates.
type Absence struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID string             `json:"employee_id" bson:"employee_id"`
	Type       string             `json:"type" bson:"type"`
	StartDate  string             `json:"start_date" bson:"start_date"`
	EndDate    string             `json:"end_date" bson:"end_date"`
	Status     string             `json:"status" bson:"status"`
	Reason     string             `json:"reason,omitempty" bson:"reason,omitempty"`
	Note       string             `json:"note,omitempty" bson:"note,omitempty"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type AbsenceCreatePayload struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=vacation sick personal unpaid"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02,gtefield=StartDate"`
	Reason     string `json:"reason" validate:"omitempty,max=500"`
}

type AbsenceStatusUpdatePayload struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
	Note   string `json:"note,omitempty"`
}
