package models

import "time"

const (
	AuditActionShiftAssigned    = "shift.assigned"
	AuditActionShiftUpdated     = "shift.updated"
	AuditActionShiftDeleted     = "shift.deleted"
	AuditActionShiftReplicated  = "shift.replicated"
	AuditActionCheckIn          = "shift.check_in"
	AuditActionCheckOut         = "shift.check_out"
	AuditActionOverloadOverride = "shift.overload_override"
)

// AuditEvent records who did what to which shift. Events are emitted on
// every state transition and replacement assignment.
type AuditEvent struct {
	ID          string    `json:"id" bson:"_id"`
	ActorID     string    `json:"actor_id" bson:"actor_id"`
	ActorRole   string    `json:"actor_role,omitempty" bson:"actor_role,omitempty"`
	Action      string    `json:"action" bson:"action"`
	ShiftID     string    `json:"shift_id,omitempty" bson:"shift_id,omitempty"`
	ObjectiveID string    `json:"objective_id,omitempty" bson:"objective_id,omitempty"`
	Detail      string    `json:"detail,omitempty" bson:"detail,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
