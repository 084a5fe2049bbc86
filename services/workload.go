package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maualmeyracba/cronoapp-sub001/models"
	"github.com/maualmeyracba/cronoapp-sub001/pkg/apperrors"
	"github.com/maualmeyracba/cronoapp-sub001/repository"
)

// weeklyWindowDays is the trailing window checked against the weekly cap.
// A day-off entry anywhere in the window means the rest day was already
// taken and the weekly cap is not enforced.
const weeklyWindowDays = 6

// WorkloadValidator checks an employee's accumulated hours against their
// weekly/monthly caps before a new assignment is accepted. Read-only; the
// authoritative race-free guarantee is the coordinator's in-transaction
// overlap check, not this pre-check.
type WorkloadValidator struct {
	shifts     repository.ShiftRepository
	users      repository.UserRepository
	agreements repository.LaborAgreementRepository
}

func NewWorkloadValidator(
	shifts repository.ShiftRepository,
	users repository.UserRepository,
	agreements repository.LaborAgreementRepository,
) *WorkloadValidator {
	return &WorkloadValidator{
		shifts:     shifts,
		users:      users,
		agreements: agreements,
	}
}

// ValidateAssignment fails with KindFailedPrecondition when assigning
// [start, end) to the employee would break a cap or land on a day off.
// excludeID lets an update re-validate while ignoring the shift being
// edited; pass primitive.NilObjectID otherwise.
func (v *WorkloadValidator) ValidateAssignment(ctx context.Context, employeeID string, start, end time.Time, excludeID primitive.ObjectID) error {
	if employeeID == models.VacantEmployeeID {
		return nil
	}

	newHours := end.Sub(start).Hours()

	weeklyCap, monthlyCap, err := v.resolveCaps(ctx, employeeID)
	if err != nil {
		return err
	}

	monthStart := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	monthShifts, err := v.shifts.FindByEmployeeBetween(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return apperrors.Internal(err, "failed to load month shifts for workload check")
	}

	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var monthHours float64
	for i := range monthShifts {
		s := &monthShifts[i]
		if s.ID == excludeID || s.Status == models.ShiftStatusCanceled {
			continue
		}
		if s.IsDayOff() && !s.StartTime.Before(dayStart) && s.StartTime.Before(dayEnd) {
			return apperrors.FailedPrecondition("employee already has a day off on this date")
		}
		monthHours += s.WorkedHours()
	}

	if monthHours+newHours > monthlyCap {
		return apperrors.FailedPrecondition(
			"monthly hour cap exceeded: %.1f of %.0f hours after this shift",
			monthHours+newHours, monthlyCap)
	}

	windowStart := dayStart.AddDate(0, 0, -weeklyWindowDays)
	windowShifts, err := v.shifts.FindByEmployeeBetween(ctx, employeeID, windowStart, start)
	if err != nil {
		return apperrors.Internal(err, "failed to load trailing-week shifts for workload check")
	}

	var windowHours float64
	for i := range windowShifts {
		s := &windowShifts[i]
		if s.ID == excludeID || s.Status == models.ShiftStatusCanceled {
			continue
		}
		if s.IsDayOff() {
			// Rest day already taken inside the window.
			return nil
		}
		windowHours += s.WorkedHours()
	}

	if windowHours+newHours > weeklyCap {
		return apperrors.FailedPrecondition(
			"weekly hour cap exceeded: %.1f of %.0f hours in the trailing %d days",
			windowHours+newHours, weeklyCap, weeklyWindowDays)
	}

	return nil
}

func (v *WorkloadValidator) resolveCaps(ctx context.Context, employeeID string) (weekly, monthly float64, err error) {
	agreement := models.DefaultAgreement()

	user, err := v.users.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return 0, 0, apperrors.Internal(err, "failed to load employee for workload check")
	}

	if user != nil && user.LaborAgreement != "" {
		stored, err := v.agreements.FindByCode(ctx, user.LaborAgreement)
		if err != nil {
			return 0, 0, apperrors.Internal(err, "failed to load labor agreement")
		}
		if stored != nil {
			agreement = stored
		}
	}

	weekly = agreement.MaxHoursWeekly
	monthly = agreement.MaxHoursMonthly
	if user != nil && user.MaxHoursPerMonth > 0 {
		monthly = user.MaxHoursPerMonth
	}
	return weekly, monthly, nil
}
