package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maualmeyracba/cronoapp-sub001/models"
	"github.com/maualmeyracba/cronoapp-sub001/pkg/apperrors"
	util "github.com/maualmeyracba/cronoapp-sub001/pkg/utils"
	"github.com/maualmeyracba/cronoapp-sub001/repository"
)

// AttendanceService drives shift status transitions on check-in/check-out.
// Legal transitions: assigned -> in_progress (check-in) and
// in_progress -> completed (check-out). Cancellation happens through shift
// management, not here.
type AttendanceService struct {
	shifts     repository.ShiftRepository
	objectives repository.ObjectiveRepository
	tx         repository.TxRunner
	audit      repository.AuditSink
	log        *logrus.Logger
}

func NewAttendanceService(
	shifts repository.ShiftRepository,
	objectives repository.ObjectiveRepository,
	tx repository.TxRunner,
	audit repository.AuditSink,
	log *logrus.Logger,
) *AttendanceService {
	return &AttendanceService{
		shifts:     shifts,
		objectives: objectives,
		tx:         tx,
		audit:      audit,
		log:        log,
	}
}

// RecordAction applies a check-in or check-out to the shift, inside one
// transaction. Ownership is checked before the geofence so a wrong actor
// never learns whether the coordinates were acceptable.
func (s *AttendanceService) RecordAction(ctx context.Context, shiftID primitive.ObjectID, action string, coords models.GeoPoint, actor Actor) (*models.Shift, error) {
	var updated *models.Shift

	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		shift, err := s.shifts.FindByID(txCtx, shiftID)
		if err != nil {
			return apperrors.Internal(err, "failed to load shift")
		}
		if shift == nil {
			return apperrors.NotFound("shift not found")
		}

		if shift.EmployeeID != actor.ID {
			return apperrors.Forbidden("only the assigned employee may act on this shift")
		}

		objective, err := s.objectives.FindByID(txCtx, shift.ObjectiveID)
		if err != nil {
			return apperrors.Internal(err, "failed to load objective")
		}
		if objective == nil {
			return apperrors.NotFound("objective not found for this shift")
		}

		distance := util.HaversineDistance(
			coords.Latitude, coords.Longitude,
			objective.Location.Latitude, objective.Location.Longitude)
		radius := objective.RadiusMeters
		if radius <= 0 {
			radius = util.DefaultGeofenceRadiusMeters
		}
		if distance > radius {
			return apperrors.Geofence(
				"outside geofence: %.0fm from site, tolerance is %.0fm", distance, radius)
		}

		now := time.Now()
		switch {
		case action == models.AttendanceActionCheckIn && shift.Status == models.ShiftStatusAssigned:
			shift.Status = models.ShiftStatusInProgress
			shift.CheckInTime = &now
		case action == models.AttendanceActionCheckOut && shift.Status == models.ShiftStatusInProgress:
			shift.Status = models.ShiftStatusCompleted
			shift.CheckOutTime = &now
		default:
			return apperrors.InvalidState("action %s invalid for current status %s", action, shift.Status)
		}

		shift.UpdatedAt = now
		if err := s.shifts.ReplaceByID(txCtx, shiftID, shift); err != nil {
			return apperrors.Internal(err, "failed to persist attendance transition")
		}

		updated = shift
		return nil
	})
	if err != nil {
		return nil, wrapStoreErr(err, "attendance transaction failed")
	}

	auditAction := models.AuditActionCheckIn
	if action == models.AttendanceActionCheckOut {
		auditAction = models.AuditActionCheckOut
	}
	s.audit.Emit(ctx, &models.AuditEvent{
		ActorID:     actor.ID,
		ActorRole:   actor.Role,
		Action:      auditAction,
		ShiftID:     shiftID.Hex(),
		ObjectiveID: updated.ObjectiveID.Hex(),
		Detail:      fmt.Sprintf("%s recorded, status now %s", action, updated.Status),
	})

	return updated, nil
}
