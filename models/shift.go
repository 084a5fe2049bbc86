package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VacantEmployeeID is the sentinel employee id of an unfilled shift slot.
// The literal is part of the wire contract with the mobile and scheduling
// clients; never translate or re-case it.
const VacantEmployeeID = "VACANT"

// RoleDayOff marks a shift-like rest-day entry. It counts as zero worked
// hours and exempts the trailing-week cap.
const RoleDayOff = "DAY_OFF"

const (
	ShiftStatusAssigned   = "assigned"
	ShiftStatusInProgress = "in_progress"
	ShiftStatusCompleted  = "completed"
	ShiftStatusCanceled   = "canceled"
)

const (
	AttendanceActionCheckIn  = "check_in"
	AttendanceActionCheckOut = "check_out"
)

type Shift struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	EmployeeID    string             `json:"employee_id" bson:"employee_id"`
	EmployeeName  string             `json:"employee_name,omitempty" bson:"employee_name,omitempty"`
	ObjectiveID   primitive.ObjectID `json:"objective_id" bson:"objective_id"`
	ObjectiveName string             `json:"objective_name,omitempty" bson:"objective_name,omitempty"`
	StartTime     time.Time          `json:"start_time" bson:"start_time"`
	EndTime       time.Time          `json:"end_time" bson:"end_time"`
	Status        string             `json:"status" bson:"status"`
	CheckInTime   *time.Time         `json:"check_in_time,omitempty" bson:"check_in_time,omitempty"`
	CheckOutTime  *time.Time         `json:"check_out_time,omitempty" bson:"check_out_time,omitempty"`
	SchedulerID   string             `json:"scheduler_id,omitempty" bson:"scheduler_id,omitempty"`
	Role          string             `json:"role,omitempty" bson:"role,omitempty"`
	IsOvertime    bool               `json:"is_overtime,omitempty" bson:"is_overtime,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

// IsVacant reports whether the slot has no employee assigned.
func (s *Shift) IsVacant() bool {
	return s.EmployeeID == VacantEmployeeID
}

func (s *Shift) IsDayOff() bool {
	return s.Role == RoleDayOff
}

// WorkedHours is the shift's contribution to workload caps. Canceled
// shifts, vacant slots and day-off entries contribute nothing.
func (s *Shift) WorkedHours() float64 {
	if s.Status == ShiftStatusCanceled || s.IsVacant() || s.IsDayOff() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime).Hours()
}

type ShiftCreatePayload struct {
	EmployeeID    string `json:"employee_id" validate:"required"`
	EmployeeName  string `json:"employee_name"`
	ObjectiveID   string `json:"objective_id" validate:"required"`
	ObjectiveName string `json:"objective_name"`
	StartTime     string `json:"start_time" validate:"required"`
	EndTime       string `json:"end_time" validate:"required"`
	Role          string `json:"role"`
	IsOvertime    bool   `json:"is_overtime"`
	// AllowOverload skips the workload-cap pre-check. The bypass is
	// explicit and audited; overlap conflicts are never bypassable.
	AllowOverload bool `json:"allow_overload"`
}

type ShiftUpdatePayload struct {
	EmployeeID    *string `json:"employee_id,omitempty"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	ObjectiveName *string `json:"objective_name,omitempty"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	Role          *string `json:"role,omitempty"`
	IsOvertime    *bool   `json:"is_overtime,omitempty"`
	AllowOverload bool    `json:"allow_overload"`
}

type AttendanceActionPayload struct {
	Action    string  `json:"action" validate:"required,oneof=check_in check_out"`
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

type ReplicatePayload struct {
	ObjectiveID     string   `json:"objective_id" validate:"required"`
	SourceDate      string   `json:"source_date" validate:"required,datetime=2006-01-02"`
	TargetStartDate string   `json:"target_start_date" validate:"required,datetime=2006-01-02"`
	TargetEndDate   string   `json:"target_end_date" validate:"required,datetime=2006-01-02"`
	TargetWeekdays  []string `json:"target_weekdays" validate:"omitempty,dive,oneof=MO TU WE TH FR SA SU"`
}

// ReplicationResult reports what a replication run actually did. Counts are
// the source of truth for a run that stopped at the batch ceiling.
type ReplicationResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}
