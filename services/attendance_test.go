package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maualmeyracba/cronoapp-sub001/models"
	"github.com/maualmeyracba/cronoapp-sub001/pkg/apperrors"
)

var siteLocation = models.GeoPoint{Latitude: -34.603722, Longitude: -58.381592}

func newAttendanceService(repo *fakeShiftRepo, objective *models.Objective) (*AttendanceService, *fakeAuditSink) {
	objectives := &fakeObjectiveRepo{byID: map[primitive.ObjectID]*models.Objective{}}
	if objective != nil {
		objectives.byID[objective.ID] = objective
	}
	audit := &fakeAuditSink{}
	return NewAttendanceService(repo, objectives, fakeTxRunner{}, audit, testLogger()), audit
}

func attendanceFixture(status string) (*models.Shift, *models.Objective) {
	objective := &models.Objective{
		ID:       primitive.NewObjectID(),
		Name:     "Warehouse North",
		Location: siteLocation,
	}
	start := time.Date(2026, 6, 1, 8, 0, 0, 0, time.Local)
	shift := &models.Shift{
		ID:          primitive.NewObjectID(),
		EmployeeID:  primitive.NewObjectID().Hex(),
		ObjectiveID: objective.ID,
		StartTime:   start,
		EndTime:     start.Add(8 * time.Hour),
		Status:      status,
	}
	return shift, objective
}

func TestRecordActionCheckInFromAssigned(t *testing.T) {
	shift, objective := attendanceFixture(models.ShiftStatusAssigned)
	repo := newFakeShiftRepo(*shift)
	svc, audit := newAttendanceService(repo, objective)

	updated, err := svc.RecordAction(context.Background(), shift.ID, models.AttendanceActionCheckIn, siteLocation, Actor{ID: shift.EmployeeID})
	require.NoError(t, err)
	assert.Equal(t, models.ShiftStatusInProgress, updated.Status)
	require.NotNil(t, updated.CheckInTime)
	assert.Nil(t, updated.CheckOutTime)
	assert.Contains(t, audit.actions(), models.AuditActionCheckIn)
}

func TestRecordActionCheckOutFromInProgress(t *testing.T) {
	shift, objective := attendanceFixture(models.ShiftStatusInProgress)
	repo := newFakeShiftRepo(*shift)
	svc, audit := newAttendanceService(repo, objective)

	updated, err := svc.RecordAction(context.Background(), shift.ID, models.AttendanceActionCheckOut, siteLocation, Actor{ID: shift.EmployeeID})
	require.NoError(t, err)
	assert.Equal(t, models.ShiftStatusCompleted, updated.Status)
	require.NotNil(t, updated.CheckOutTime)
	assert.Contains(t, audit.actions(), models.AuditActionCheckOut)
}

func TestRecordActionIllegalTransitions(t *testing.T) {
	cases := []struct {
		status string
		action string
	}{
		{models.ShiftStatusAssigned, models.AttendanceActionCheckOut},
		{models.ShiftStatusInProgress, models.AttendanceActionCheckIn},
		{models.ShiftStatusCompleted, models.AttendanceActionCheckIn},
		{models.ShiftStatusCompleted, models.AttendanceActionCheckOut},
		{models.ShiftStatusCanceled, models.AttendanceActionCheckIn},
		{models.ShiftStatusCanceled, models.AttendanceActionCheckOut},
	}
	for _, tc := range cases {
		t.Run(tc.status+"/"+tc.action, func(t *testing.T) {
			shift, objective := attendanceFixture(tc.status)
			repo := newFakeShiftRepo(*shift)
			svc, _ := newAttendanceService(repo, objective)

			_, err := svc.RecordAction(context.Background(), shift.ID, tc.action, siteLocation, Actor{ID: shift.EmployeeID})
			require.Error(t, err)
			assert.Equal(t, apperrors.KindInvalidState, apperrors.KindOf(err))
			assert.Contains(t, err.Error(), tc.status)
		})
	}
}

func TestRecordActionOutsideGeofence(t *testing.T) {
	shift, objective := attendanceFixture(models.ShiftStatusAssigned)
	repo := newFakeShiftRepo(*shift)
	svc, _ := newAttendanceService(repo, objective)

	// Roughly 1.1 km north of the site.
	farAway := models.GeoPoint{Latitude: siteLocation.Latitude + 0.01, Longitude: siteLocation.Longitude}
	_, err := svc.RecordAction(context.Background(), shift.ID, models.AttendanceActionCheckIn, farAway, Actor{ID: shift.EmployeeID})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindGeofence, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "outside geofence")
}

func TestRecordActionForbiddenBeforeGeofence(t *testing.T) {
	shift, objective := attendanceFixture(models.ShiftStatusAssigned)
	repo := newFakeShiftRepo(*shift)
	svc, _ := newAttendanceService(repo, objective)

	// Wrong actor far outside the geofence still gets Forbidden, never a
	// geofence hint.
	farAway := models.GeoPoint{Latitude: 0, Longitude: 0}
	_, err := svc.RecordAction(context.Background(), shift.ID, models.AttendanceActionCheckIn, farAway, Actor{ID: "someone-else"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))
}

func TestRecordActionMissingShift(t *testing.T) {
	repo := newFakeShiftRepo()
	svc, _ := newAttendanceService(repo, nil)

	_, err := svc.RecordAction(context.Background(), primitive.NewObjectID(), models.AttendanceActionCheckIn, siteLocation, Actor{ID: "x"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestRecordActionObjectiveRadiusOverride(t *testing.T) {
	shift, objective := attendanceFixture(models.ShiftStatusAssigned)
	objective.RadiusMeters = 2000
	repo := newFakeShiftRepo(*shift)
	svc, _ := newAttendanceService(repo, objective)

	// 1.1 km away: outside the default tolerance, inside the site's own.
	nearby := models.GeoPoint{Latitude: siteLocation.Latitude + 0.01, Longitude: siteLocation.Longitude}
	updated, err := svc.RecordAction(context.Background(), shift.ID, models.AttendanceActionCheckIn, nearby, Actor{ID: shift.EmployeeID})
	require.NoError(t, err)
	assert.Equal(t, models.ShiftStatusInProgress, updated.Status)
}
