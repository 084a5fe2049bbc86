package services

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/maualmeyracba/cronoapp-sub001/models"
	"github.com/maualmeyracba/cronoapp-sub001/repository"
)

// In-memory stand-ins for the repository interfaces. The tx fake simply
// runs the callback; the services only care that their conflict re-checks
// happen through the ctx the runner hands them.

type fakeShiftRepo struct {
	mu     sync.Mutex
	shifts map[primitive.ObjectID]models.Shift
}

func newFakeShiftRepo(seed ...models.Shift) *fakeShiftRepo {
	r := &fakeShiftRepo{shifts: make(map[primitive.ObjectID]models.Shift)}
	for _, s := range seed {
		if s.ID.IsZero() {
			s.ID = primitive.NewObjectID()
		}
		r.shifts[s.ID] = s
	}
	return r
}

func (r *fakeShiftRepo) Create(_ context.Context, shift *models.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if shift.ID.IsZero() {
		shift.ID = primitive.NewObjectID()
	}
	r.shifts[shift.ID] = *shift
	return nil
}

func (r *fakeShiftRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.shifts[id]; ok {
		copied := s
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeShiftRepo) UpdateByID(_ context.Context, id primitive.ObjectID, set bson.M) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.shifts[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for key, value := range set {
		switch key {
		case "employee_id":
			s.EmployeeID = value.(string)
		case "employee_name":
			s.EmployeeName = value.(string)
		case "objective_name":
			s.ObjectiveName = value.(string)
		case "start_time":
			s.StartTime = value.(time.Time)
		case "end_time":
			s.EndTime = value.(time.Time)
		case "role":
			s.Role = value.(string)
		case "status":
			s.Status = value.(string)
		case "is_overtime":
			s.IsOvertime = value.(bool)
		case "updated_at":
			s.UpdatedAt = value.(time.Time)
		}
	}
	r.shifts[id] = s
	return nil
}

func (r *fakeShiftRepo) ReplaceByID(_ context.Context, id primitive.ObjectID, shift *models.Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shifts[id]; !ok {
		return mongo.ErrNoDocuments
	}
	r.shifts[id] = *shift
	return nil
}

func (r *fakeShiftRepo) DeleteByID(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.shifts[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.shifts, id)
	return nil
}

func (r *fakeShiftRepo) FindByEmployeeEndingAfter(_ context.Context, employeeID string, after time.Time) ([]models.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	results := []models.Shift{}
	for _, s := range r.shifts {
		if s.EmployeeID == employeeID && s.EndTime.After(after) {
			results = append(results, s)
		}
	}
	return results, nil
}

func (r *fakeShiftRepo) FindByEmployeeBetween(_ context.Context, employeeID string, from, to time.Time) ([]models.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	results := []models.Shift{}
	for _, s := range r.shifts {
		if s.EmployeeID == employeeID && !s.StartTime.Before(from) && s.StartTime.Before(to) {
			results = append(results, s)
		}
	}
	return results, nil
}

func (r *fakeShiftRepo) FindByObjectiveBetween(_ context.Context, objectiveID primitive.ObjectID, from, to time.Time) ([]models.Shift, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	results := []models.Shift{}
	for _, s := range r.shifts {
		if s.ObjectiveID == objectiveID && !s.StartTime.Before(from) && s.StartTime.Before(to) {
			results = append(results, s)
		}
	}
	return results, nil
}

func (r *fakeShiftRepo) ApplyBatch(_ context.Context, batch *repository.ShiftBatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range batch.DeleteIDs {
		delete(r.shifts, id)
	}
	for _, s := range batch.Creates {
		if s.ID.IsZero() {
			s.ID = primitive.NewObjectID()
		}
		r.shifts[s.ID] = s
	}
	return nil
}

func (r *fakeShiftRepo) all() []models.Shift {
	r.mu.Lock()
	defer r.mu.Unlock()
	results := make([]models.Shift, 0, len(r.shifts))
	for _, s := range r.shifts {
		results = append(results, s)
	}
	return results
}

type fakeUserRepo struct {
	byEmployeeID map[string]*models.User
}

func (r *fakeUserRepo) Create(context.Context, *models.User) error { return nil }

func (r *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	return r.byEmployeeID[id.Hex()], nil
}

func (r *fakeUserRepo) FindByEmployeeID(_ context.Context, employeeID string) (*models.User, error) {
	return r.byEmployeeID[employeeID], nil
}

func (r *fakeUserRepo) FindByEmail(context.Context, string) (*models.User, error) {
	return nil, nil
}

type fakeAgreementRepo struct {
	byCode map[string]*models.LaborAgreement
}

func (r *fakeAgreementRepo) Create(context.Context, *models.LaborAgreement) error { return nil }

func (r *fakeAgreementRepo) FindByCode(_ context.Context, code string) (*models.LaborAgreement, error) {
	return r.byCode[code], nil
}

type fakeObjectiveRepo struct {
	byID map[primitive.ObjectID]*models.Objective
}

func (r *fakeObjectiveRepo) Create(context.Context, *models.Objective) error { return nil }

func (r *fakeObjectiveRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Objective, error) {
	return r.byID[id], nil
}

func (r *fakeObjectiveRepo) FindAllActive(context.Context) ([]models.Objective, error) {
	return nil, nil
}

type fakeTxRunner struct{}

func (fakeTxRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeAuditSink struct {
	mu     sync.Mutex
	events []models.AuditEvent
}

func (s *fakeAuditSink) Emit(_ context.Context, event *models.AuditEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, *event)
}

func (s *fakeAuditSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	actions := make([]string, 0, len(s.events))
	for _, e := range s.events {
		actions = append(actions, e.Action)
	}
	return actions
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
