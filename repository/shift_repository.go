package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maualmeyracba/cronoapp-sub001/config"
	"github.com/maualmeyracba/cronoapp-sub001/models"
)

// overlapFetchLimit bounds the candidate query for in-transaction overlap
// checks; no employee carries anywhere near this many open-ended shifts.
const overlapFetchLimit = 200

// ShiftBatch accumulates deletes and creates that must commit together.
type ShiftBatch struct {
	DeleteIDs []primitive.ObjectID
	Creates   []models.Shift
}

// Ops is the number of write operations the batch will issue.
func (b *ShiftBatch) Ops() int {
	return len(b.DeleteIDs) + len(b.Creates)
}

type ShiftRepository interface {
	Create(ctx context.Context, shift *models.Shift) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Shift, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) error
	ReplaceByID(ctx context.Context, id primitive.ObjectID, shift *models.Shift) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error

	// FindByEmployeeEndingAfter returns the employee's shifts whose end_time
	// is after the given instant, bounded, for overlap candidate checks.
	FindByEmployeeEndingAfter(ctx context.Context, employeeID string, after time.Time) ([]models.Shift, error)
	// FindByEmployeeBetween returns the employee's shifts whose start_time
	// falls in [from, to).
	FindByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]models.Shift, error)
	// FindByObjectiveBetween returns the objective's shifts whose start_time
	// falls in [from, to).
	FindByObjectiveBetween(ctx context.Context, objectiveID primitive.ObjectID, from, to time.Time) ([]models.Shift, error)

	// ApplyBatch commits the batch as one ordered bulk write.
	ApplyBatch(ctx context.Context, batch *ShiftBatch) error
}

type shiftRepository struct {
	collection *mongo.Collection
}

func NewShiftRepository(db *mongo.Database) ShiftRepository {
	return &shiftRepository{collection: db.Collection(config.ShiftCollection)}
}

func (r *shiftRepository) Create(ctx context.Context, shift *models.Shift) error {
	if shift.ID.IsZero() {
		shift.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, shift)
	if err != nil {
		return fmt.Errorf("failed to insert shift: %w", err)
	}
	return nil
}

func (r *shiftRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Shift, error) {
	var shift models.Shift
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&shift)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find shift by id: %w", err)
	}
	return &shift, nil
}

func (r *shiftRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) error {
	res, err := r.collection.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *shiftRepository) ReplaceByID(ctx context.Context, id primitive.ObjectID, shift *models.Shift) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, shift)
	if err != nil {
		return fmt.Errorf("failed to replace shift: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *shiftRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *shiftRepository) FindByEmployeeEndingAfter(ctx context.Context, employeeID string, after time.Time) ([]models.Shift, error) {
	filter := bson.M{
		"employee_id": employeeID,
		"end_time":    bson.M{"$gt": after},
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "start_time", Value: 1}}).
		SetLimit(overlapFetchLimit)

	return r.findShifts(ctx, filter, opts)
}

func (r *shiftRepository) FindByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]models.Shift, error) {
	filter := bson.M{
		"employee_id": employeeID,
		"start_time":  bson.M{"$gte": from, "$lt": to},
	}
	return r.findShifts(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
}

func (r *shiftRepository) FindByObjectiveBetween(ctx context.Context, objectiveID primitive.ObjectID, from, to time.Time) ([]models.Shift, error) {
	filter := bson.M{
		"objective_id": objectiveID,
		"start_time":   bson.M{"$gte": from, "$lt": to},
	}
	return r.findShifts(ctx, filter, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
}

func (r *shiftRepository) findShifts(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Shift, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Shift
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode shifts: %w", err)
	}

	if len(results) == 0 {
		return []models.Shift{}, nil
	}
	return results, nil
}

func (r *shiftRepository) ApplyBatch(ctx context.Context, batch *ShiftBatch) error {
	if batch == nil || batch.Ops() == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, batch.Ops())
	for _, id := range batch.DeleteIDs {
		writes = append(writes, mongo.NewDeleteOneModel().SetFilter(bson.M{"_id": id}))
	}
	for i := range batch.Creates {
		if batch.Creates[i].ID.IsZero() {
			batch.Creates[i].ID = primitive.NewObjectID()
		}
		writes = append(writes, mongo.NewInsertOneModel().SetDocument(batch.Creates[i]))
	}

	_, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(true))
	if err != nil {
		return fmt.Errorf("failed to apply shift batch: %w", err)
	}
	return nil
}
