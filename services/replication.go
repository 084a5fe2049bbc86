package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/teambition/rrule-go"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maualmeyracba/cronoapp-sub001/models"
	"github.com/maualmeyracba/cronoapp-sub001/pkg/apperrors"
	"github.com/maualmeyracba/cronoapp-sub001/repository"
)

// maxBatchOps caps the accumulated creates+deletes of one replication run
// to respect the store's per-batch limit. When the ceiling would be hit
// mid-range, processing stops early and whatever accumulated is committed;
// the returned counts are the source of truth for what happened.
const maxBatchOps = 450

var rruleWeekdays = map[string]rrule.Weekday{
	"MO": rrule.MO,
	"TU": rrule.TU,
	"WE": rrule.WE,
	"TH": rrule.TH,
	"FR": rrule.FR,
	"SA": rrule.SA,
	"SU": rrule.SU,
}

// ReplicationService clones a model day's shift structure onto other days
// of the same objective. It only refreshes days that already hold vacant
// placeholders; it never originates a day from nothing and never touches a
// staffed day, which makes re-running a replication safe.
type ReplicationService struct {
	shifts repository.ShiftRepository
	tx     repository.TxRunner
	audit  repository.AuditSink
	log    *logrus.Logger
}

func NewReplicationService(
	shifts repository.ShiftRepository,
	tx repository.TxRunner,
	audit repository.AuditSink,
	log *logrus.Logger,
) *ReplicationService {
	return &ReplicationService{
		shifts: shifts,
		tx:     tx,
		audit:  audit,
		log:    log,
	}
}

func (s *ReplicationService) Replicate(ctx context.Context, payload *models.ReplicatePayload, actor Actor) (*models.ReplicationResult, error) {
	objectiveID, err := primitive.ObjectIDFromHex(payload.ObjectiveID)
	if err != nil {
		return nil, apperrors.InvalidArgument("objective_id is not a valid id")
	}

	sourceDay, err := parseDate(payload.SourceDate, "source_date")
	if err != nil {
		return nil, err
	}
	targetStart, err := parseDate(payload.TargetStartDate, "target_start_date")
	if err != nil {
		return nil, err
	}
	targetEnd, err := parseDate(payload.TargetEndDate, "target_end_date")
	if err != nil {
		return nil, err
	}
	if targetEnd.Before(targetStart) {
		return nil, apperrors.InvalidArgument("target_end_date must not be before target_start_date")
	}

	templates, err := s.shifts.FindByObjectiveBetween(ctx, objectiveID, sourceDay, sourceDay.AddDate(0, 0, 1))
	if err != nil {
		return nil, apperrors.Internal(err, "failed to load source day shifts")
	}
	if len(templates) == 0 {
		return nil, apperrors.NotFound("source day has no shifts")
	}

	days, err := expandTargetDays(targetStart, targetEnd, payload.TargetWeekdays)
	if err != nil {
		return nil, err
	}

	result := &models.ReplicationResult{}
	batch := &repository.ShiftBatch{}
	now := time.Now()

	for _, day := range days {
		if day.Equal(sourceDay) {
			continue
		}

		existing, err := s.shifts.FindByObjectiveBetween(ctx, objectiveID, day, day.AddDate(0, 0, 1))
		if err != nil {
			return nil, apperrors.Internal(err, "failed to load target day shifts")
		}

		// Only days that already hold placeholders get refreshed.
		if len(existing) == 0 {
			result.Skipped++
			continue
		}
		if anyStaffed(existing) {
			result.Skipped++
			continue
		}

		if batch.Ops()+len(existing)+len(templates) > maxBatchOps {
			s.log.WithField("objective_id", payload.ObjectiveID).
				Warn("replication batch ceiling reached, stopping early")
			break
		}

		for _, old := range existing {
			batch.DeleteIDs = append(batch.DeleteIDs, old.ID)
		}
		for _, tpl := range templates {
			batch.Creates = append(batch.Creates, cloneShiftOntoDay(&tpl, day, actor.ID, now))
			result.Created++
		}
	}

	if batch.Ops() > 0 {
		err = s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
			return s.shifts.ApplyBatch(txCtx, batch)
		})
		if err != nil {
			return nil, apperrors.Internal(err, "failed to commit replication batch")
		}
	}

	s.audit.Emit(ctx, &models.AuditEvent{
		ActorID:     actor.ID,
		ActorRole:   actor.Role,
		Action:      models.AuditActionShiftReplicated,
		ObjectiveID: payload.ObjectiveID,
		Detail: fmt.Sprintf("replicated day %s onto %s..%s: created=%d skipped=%d",
			payload.SourceDate, payload.TargetStartDate, payload.TargetEndDate,
			result.Created, result.Skipped),
	})

	return result, nil
}

// expandTargetDays lists the midnights of the target range, optionally
// restricted to the given BYDAY codes.
func expandTargetDays(start, end time.Time, weekdays []string) ([]time.Time, error) {
	opt := rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: start,
		Until:   end,
	}
	for _, code := range weekdays {
		wd, ok := rruleWeekdays[code]
		if !ok {
			return nil, apperrors.InvalidArgument("unknown weekday code %q", code)
		}
		opt.Byweekday = append(opt.Byweekday, wd)
	}

	rule, err := rrule.NewRRule(opt)
	if err != nil {
		return nil, apperrors.InvalidArgument("invalid target range: %v", err)
	}
	return rule.All(), nil
}

func anyStaffed(shifts []models.Shift) bool {
	for i := range shifts {
		if !shifts[i].IsVacant() {
			return true
		}
	}
	return false
}

// cloneShiftOntoDay keeps the template's wall-clock time-of-day and
// duration. Employee, name and role are copied verbatim, so vacant
// templates stay vacant and a staffed template propagates its assignment.
func cloneShiftOntoDay(tpl *models.Shift, day time.Time, schedulerID string, now time.Time) models.Shift {
	start := time.Date(day.Year(), day.Month(), day.Day(),
		tpl.StartTime.Hour(), tpl.StartTime.Minute(), tpl.StartTime.Second(), 0, day.Location())
	end := start.Add(tpl.EndTime.Sub(tpl.StartTime))

	return models.Shift{
		ID:            primitive.NewObjectID(),
		EmployeeID:    tpl.EmployeeID,
		EmployeeName:  tpl.EmployeeName,
		ObjectiveID:   tpl.ObjectiveID,
		ObjectiveName: tpl.ObjectiveName,
		StartTime:     start,
		EndTime:       end,
		Status:        models.ShiftStatusAssigned,
		SchedulerID:   schedulerID,
		Role:          tpl.Role,
		IsOvertime:    tpl.IsOvertime,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func parseDate(value, field string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return time.Time{}, apperrors.InvalidArgument("%s must be a calendar date in 2006-01-02 format", field)
	}
	return t, nil
}
