package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/maualmeyracba/cronoapp-sub001/config"
	"github.com/maualmeyracba/cronoapp-sub001/models"
)

type AbsenceRepository interface {
	Create(ctx context.Context, absence *models.Absence) error
	FindByEmployeeID(ctx context.Context, employeeID string) ([]models.Absence, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status, note string) error
}

type absenceRepository struct {
	collection *mongo.Collection
}

func NewAbsenceRepository(db *mongo.Database) AbsenceRepository {
	return &absenceRepository{collection: db.Collection(config.AbsenceCollection)}
}

func (r *absenceRepository) Create(ctx context.Context, absence *models.Absence) error {
	if absence.ID.IsZero() {
		absence.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, absence)
	if err != nil {
		return fmt.Errorf("failed to insert absence: %w", err)
	}
	return nil
}

func (r *absenceRepository) FindByEmployeeID(ctx context.Context, employeeID string) ([]models.Absence, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"employee_id": employeeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query absences: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Absence
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode absences: %w", err)
	}

	if len(results) == 0 {
		return []models.Absence{}, nil
	}
	return results, nil
}

func (r *absenceRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status, note string) error {
	update := bson.M{"$set": bson.M{"status": status, "note": note}}
	res, err := r.collection.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("failed to update absence status: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
