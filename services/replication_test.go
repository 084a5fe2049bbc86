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

func newReplicationService(repo *fakeShiftRepo) (*ReplicationService, *fakeAuditSink) {
	audit := &fakeAuditSink{}
	return NewReplicationService(repo, fakeTxRunner{}, audit, testLogger()), audit
}

func vacantShiftAt(objectiveID primitive.ObjectID, day time.Time, startHour, hours int) models.Shift {
	start := time.Date(day.Year(), day.Month(), day.Day(), startHour, 0, 0, 0, time.Local)
	return models.Shift{
		ID:          primitive.NewObjectID(),
		EmployeeID:  models.VacantEmployeeID,
		ObjectiveID: objectiveID,
		StartTime:   start,
		EndTime:     start.Add(time.Duration(hours) * time.Hour),
		Status:      models.ShiftStatusAssigned,
		Role:        "guard",
	}
}

func replicatePayload(objectiveID primitive.ObjectID, source, targetStart, targetEnd time.Time) *models.ReplicatePayload {
	const layout = "2006-01-02"
	return &models.ReplicatePayload{
		ObjectiveID:     objectiveID.Hex(),
		SourceDate:      source.Format(layout),
		TargetStartDate: targetStart.Format(layout),
		TargetEndDate:   targetEnd.Format(layout),
	}
}

func TestReplicateRefreshesVacantDay(t *testing.T) {
	objective := primitive.NewObjectID()
	source := time.Date(2026, 5, 4, 0, 0, 0, 0, time.Local)
	target := source.AddDate(0, 0, 7)

	seed := []models.Shift{
		vacantShiftAt(objective, source, 6, 8),
		vacantShiftAt(objective, source, 14, 8),
		vacantShiftAt(objective, source, 22, 8),
		// Target day already holds placeholders, so it is refreshed.
		vacantShiftAt(objective, target, 9, 4),
		vacantShiftAt(objective, target, 13, 4),
		vacantShiftAt(objective, target, 17, 4),
	}
	repo := newFakeShiftRepo(seed...)
	svc, audit := newReplicationService(repo)

	result, err := svc.Replicate(context.Background(), replicatePayload(objective, source, target, target), Actor{ID: "sched-1"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 0, result.Skipped)
	assert.Contains(t, audit.actions(), models.AuditActionShiftReplicated)

	onTarget, err := repo.FindByObjectiveBetween(context.Background(), objective, target, target.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, onTarget, 3)
	hours := map[int]bool{}
	for _, s := range onTarget {
		assert.Equal(t, models.VacantEmployeeID, s.EmployeeID)
		assert.Equal(t, models.ShiftStatusAssigned, s.Status)
		assert.Equal(t, "sched-1", s.SchedulerID)
		assert.Equal(t, 8*time.Hour, s.EndTime.Sub(s.StartTime))
		hours[s.StartTime.Hour()] = true
	}
	assert.Equal(t, map[int]bool{6: true, 14: true, 22: true}, hours)

	// Re-running the same replication is a no-op in effect.
	result, err = svc.Replicate(context.Background(), replicatePayload(objective, source, target, target), Actor{ID: "sched-1"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Created)

	onTarget, err = repo.FindByObjectiveBetween(context.Background(), objective, target, target.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, onTarget, 3)
}

func TestReplicateSkipsEmptyDay(t *testing.T) {
	objective := primitive.NewObjectID()
	source := time.Date(2026, 5, 4, 0, 0, 0, 0, time.Local)
	target := source.AddDate(0, 0, 7)

	repo := newFakeShiftRepo(vacantShiftAt(objective, source, 6, 8))
	svc, _ := newReplicationService(repo)

	result, err := svc.Replicate(context.Background(), replicatePayload(objective, source, target, target), Actor{ID: "sched-1"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Skipped)
}

func TestReplicateNeverOverwritesStaffedDay(t *testing.T) {
	objective := primitive.NewObjectID()
	source := time.Date(2026, 5, 4, 0, 0, 0, 0, time.Local)
	target := source.AddDate(0, 0, 7)

	staffed := vacantShiftAt(objective, target, 9, 8)
	staffed.EmployeeID = primitive.NewObjectID().Hex()
	repo := newFakeShiftRepo(
		vacantShiftAt(objective, source, 6, 8),
		vacantShiftAt(objective, target, 14, 8),
		staffed,
	)
	svc, _ := newReplicationService(repo)

	result, err := svc.Replicate(context.Background(), replicatePayload(objective, source, target, target), Actor{ID: "sched-1"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Skipped)

	// Nothing on the staffed day was touched.
	onTarget, err := repo.FindByObjectiveBetween(context.Background(), objective, target, target.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, onTarget, 2)
}

func TestReplicateMissingSourceDay(t *testing.T) {
	objective := primitive.NewObjectID()
	source := time.Date(2026, 5, 4, 0, 0, 0, 0, time.Local)

	repo := newFakeShiftRepo()
	svc, _ := newReplicationService(repo)

	_, err := svc.Replicate(context.Background(), replicatePayload(objective, source, source.AddDate(0, 0, 7), source.AddDate(0, 0, 8)), Actor{ID: "sched-1"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Contains(t, err.Error(), "source day has no shifts")
}

func TestReplicateWeekdayFilter(t *testing.T) {
	objective := primitive.NewObjectID()
	// Monday May 4th 2026 as the model day.
	source := time.Date(2026, 5, 4, 0, 0, 0, 0, time.Local)

	seed := []models.Shift{vacantShiftAt(objective, source, 8, 8)}
	// Placeholders exist for every day of the following week.
	for day := 7; day < 14; day++ {
		seed = append(seed, vacantShiftAt(objective, source.AddDate(0, 0, day), 10, 4))
	}
	repo := newFakeShiftRepo(seed...)
	svc, _ := newReplicationService(repo)

	payload := replicatePayload(objective, source, source.AddDate(0, 0, 7), source.AddDate(0, 0, 13))
	payload.TargetWeekdays = []string{"MO", "WE", "FR"}

	result, err := svc.Replicate(context.Background(), payload, Actor{ID: "sched-1"})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Created)
	assert.Equal(t, 0, result.Skipped)
}

func TestReplicateStopsAtBatchCeiling(t *testing.T) {
	objective := primitive.NewObjectID()
	source := time.Date(2026, 5, 4, 0, 0, 0, 0, time.Local)

	// 5 templates; each refreshed day costs 5 deletes + 5 creates = 10 ops,
	// so only 45 of the 60 target days fit under the 450-op ceiling.
	seed := []models.Shift{}
	for i := 0; i < 5; i++ {
		seed = append(seed, vacantShiftAt(objective, source, 6+i*3, 3))
	}
	for day := 1; day <= 60; day++ {
		for i := 0; i < 5; i++ {
			seed = append(seed, vacantShiftAt(objective, source.AddDate(0, 0, day), 6+i*3, 3))
		}
	}
	repo := newFakeShiftRepo(seed...)
	svc, _ := newReplicationService(repo)

	result, err := svc.Replicate(context.Background(), replicatePayload(objective, source, source.AddDate(0, 0, 1), source.AddDate(0, 0, 60)), Actor{ID: "sched-1"})
	require.NoError(t, err)
	assert.Equal(t, 45*5, result.Created)
}
