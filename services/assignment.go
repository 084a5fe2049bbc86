package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maualmeyracba/cronoapp-sub001/models"
	"github.com/maualmeyracba/cronoapp-sub001/pkg/apperrors"
	util "github.com/maualmeyracba/cronoapp-sub001/pkg/utils"
	"github.com/maualmeyracba/cronoapp-sub001/repository"
)

// AssignmentService coordinates conflict-free creation, update and deletion
// of shifts. The workload pre-check is advisory fast-fail; the overlap
// re-query inside the transaction is the guarantee that two racing
// assignments for the same employee cannot both commit.
type AssignmentService struct {
	shifts   repository.ShiftRepository
	workload *WorkloadValidator
	tx       repository.TxRunner
	audit    repository.AuditSink
	log      *logrus.Logger
}

func NewAssignmentService(
	shifts repository.ShiftRepository,
	workload *WorkloadValidator,
	tx repository.TxRunner,
	audit repository.AuditSink,
	log *logrus.Logger,
) *AssignmentService {
	return &AssignmentService{
		shifts:   shifts,
		workload: workload,
		tx:       tx,
		audit:    audit,
		log:      log,
	}
}

// Assign validates and creates a new shift with status assigned.
func (s *AssignmentService) Assign(ctx context.Context, payload *models.ShiftCreatePayload, actor Actor) (*models.Shift, error) {
	start, err := parseInstant(payload.StartTime, "start_time")
	if err != nil {
		return nil, err
	}
	end, err := parseInstant(payload.EndTime, "end_time")
	if err != nil {
		return nil, err
	}
	if !start.Before(end) {
		return nil, apperrors.InvalidArgument("start_time must be before end_time")
	}

	objectiveID, err := primitive.ObjectIDFromHex(payload.ObjectiveID)
	if err != nil {
		return nil, apperrors.InvalidArgument("objective_id is not a valid id")
	}

	if payload.EmployeeID != models.VacantEmployeeID {
		err := s.workload.ValidateAssignment(ctx, payload.EmployeeID, start, end, primitive.NilObjectID)
		if err != nil {
			if apperrors.Is(err, apperrors.KindFailedPrecondition) && payload.AllowOverload {
				s.audit.Emit(ctx, &models.AuditEvent{
					ActorID:     actor.ID,
					ActorRole:   actor.Role,
					Action:      models.AuditActionOverloadOverride,
					ObjectiveID: payload.ObjectiveID,
					Detail:      fmt.Sprintf("workload cap bypassed for employee %s: %v", payload.EmployeeID, err),
				})
			} else {
				return nil, err
			}
		}
	}

	now := time.Now()
	shift := &models.Shift{
		ID:            primitive.NewObjectID(),
		EmployeeID:    payload.EmployeeID,
		EmployeeName:  payload.EmployeeName,
		ObjectiveID:   objectiveID,
		ObjectiveName: payload.ObjectiveName,
		StartTime:     start,
		EndTime:       end,
		Status:        models.ShiftStatusAssigned,
		SchedulerID:   actor.ID,
		Role:          payload.Role,
		IsOvertime:    payload.IsOvertime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.ensureNoOverlap(txCtx, shift.EmployeeID, start, end, primitive.NilObjectID); err != nil {
			return err
		}
		return s.shifts.Create(txCtx, shift)
	})
	if err != nil {
		return nil, wrapStoreErr(err, "failed to create shift")
	}

	s.audit.Emit(ctx, &models.AuditEvent{
		ActorID:     actor.ID,
		ActorRole:   actor.Role,
		Action:      models.AuditActionShiftAssigned,
		ShiftID:     shift.ID.Hex(),
		ObjectiveID: shift.ObjectiveID.Hex(),
		Detail:      fmt.Sprintf("assigned %s to %s from %s to %s", shift.EmployeeID, shift.ObjectiveName, start.Format(time.RFC3339), end.Format(time.RFC3339)),
	})

	return shift, nil
}

// Update merges the patch over the stored shift, re-validating workload and
// overlap whenever the effective employee or times change.
func (s *AssignmentService) Update(ctx context.Context, shiftID primitive.ObjectID, patch *models.ShiftUpdatePayload, actor Actor) error {
	current, err := s.shifts.FindByID(ctx, shiftID)
	if err != nil {
		return apperrors.Internal(err, "failed to load shift")
	}
	if current == nil {
		return apperrors.NotFound("shift not found")
	}

	effEmployee := current.EmployeeID
	if patch.EmployeeID != nil {
		effEmployee = *patch.EmployeeID
	}
	effStart := current.StartTime
	if patch.StartTime != nil {
		effStart, err = parseInstant(*patch.StartTime, "start_time")
		if err != nil {
			return err
		}
	}
	effEnd := current.EndTime
	if patch.EndTime != nil {
		effEnd, err = parseInstant(*patch.EndTime, "end_time")
		if err != nil {
			return err
		}
	}
	if !effStart.Before(effEnd) {
		return apperrors.InvalidArgument("start_time must be before end_time")
	}

	scheduleChanged := effEmployee != current.EmployeeID ||
		!effStart.Equal(current.StartTime) ||
		!effEnd.Equal(current.EndTime)

	if scheduleChanged && effEmployee != models.VacantEmployeeID {
		err := s.workload.ValidateAssignment(ctx, effEmployee, effStart, effEnd, shiftID)
		if err != nil {
			if apperrors.Is(err, apperrors.KindFailedPrecondition) && patch.AllowOverload {
				s.audit.Emit(ctx, &models.AuditEvent{
					ActorID:   actor.ID,
					ActorRole: actor.Role,
					Action:    models.AuditActionOverloadOverride,
					ShiftID:   shiftID.Hex(),
					Detail:    fmt.Sprintf("workload cap bypassed for employee %s: %v", effEmployee, err),
				})
			} else {
				return err
			}
		}
	}

	set := bson.M{
		"employee_id": effEmployee,
		"start_time":  effStart,
		"end_time":    effEnd,
		"updated_at":  time.Now(),
	}
	if patch.EmployeeName != nil {
		set["employee_name"] = *patch.EmployeeName
	}
	if patch.ObjectiveName != nil {
		set["objective_name"] = *patch.ObjectiveName
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}
	if patch.IsOvertime != nil {
		set["is_overtime"] = *patch.IsOvertime
	}

	err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		if scheduleChanged {
			if err := s.ensureNoOverlap(txCtx, effEmployee, effStart, effEnd, shiftID); err != nil {
				return err
			}
		}
		return s.shifts.UpdateByID(txCtx, shiftID, set)
	})
	if err != nil {
		return wrapStoreErr(err, "failed to update shift")
	}

	s.audit.Emit(ctx, &models.AuditEvent{
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Action:    models.AuditActionShiftUpdated,
		ShiftID:   shiftID.Hex(),
		Detail:    fmt.Sprintf("shift updated, employee %s", effEmployee),
	})
	return nil
}

// Delete removes the shift unconditionally; deletion never needs a
// workload or overlap re-validation.
func (s *AssignmentService) Delete(ctx context.Context, shiftID primitive.ObjectID, actor Actor) error {
	if err := s.shifts.DeleteByID(ctx, shiftID); err != nil {
		return wrapStoreErr(err, "failed to delete shift")
	}

	s.audit.Emit(ctx, &models.AuditEvent{
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Action:    models.AuditActionShiftDeleted,
		ShiftID:   shiftID.Hex(),
		Detail:    "shift deleted",
	})
	return nil
}

// CheckShiftOverlap returns all non-canceled shifts of the employee that
// overlap [start, end). The absence intake consults this before committing
// an absence request.
func (s *AssignmentService) CheckShiftOverlap(ctx context.Context, employeeID string, start, end time.Time) ([]models.Shift, error) {
	if !start.Before(end) {
		return nil, apperrors.InvalidArgument("start must be before end")
	}

	candidates, err := s.shifts.FindByEmployeeEndingAfter(ctx, employeeID, start)
	if err != nil {
		return nil, apperrors.Internal(err, "failed to query overlap candidates")
	}

	conflicts := []models.Shift{}
	for _, c := range candidates {
		if c.Status == models.ShiftStatusCanceled {
			continue
		}
		if util.Overlaps(c.StartTime, c.EndTime, start, end) {
			conflicts = append(conflicts, c)
		}
	}
	return conflicts, nil
}

// ensureNoOverlap re-queries inside the transaction and fails with
// KindAlreadyExists on conflict; this is the load-bearing race check.
// Vacant slots never conflict.
func (s *AssignmentService) ensureNoOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID primitive.ObjectID) error {
	if employeeID == models.VacantEmployeeID {
		return nil
	}

	candidates, err := s.shifts.FindByEmployeeEndingAfter(ctx, employeeID, start)
	if err != nil {
		return apperrors.Internal(err, "failed to query overlap candidates")
	}

	for _, c := range candidates {
		if c.ID == excludeID || c.Status == models.ShiftStatusCanceled {
			continue
		}
		if util.Overlaps(c.StartTime, c.EndTime, start, end) {
			return apperrors.AlreadyExists(
				"shift overlaps an existing assignment from %s to %s",
				c.StartTime.Format(time.RFC3339), c.EndTime.Format(time.RFC3339))
		}
	}
	return nil
}

func parseInstant(value, field string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, apperrors.InvalidArgument("%s must be a valid RFC3339 instant", field)
	}
	return t, nil
}
