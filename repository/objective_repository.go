package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/maualmeyracba/cronoapp-sub001/config"
	"github.com/maualmeyracba/cronoapp-sub001/models"
)

type ObjectiveRepository interface {
	Create(ctx context.Context, objective *models.Objective) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Objective, error)
	FindAllActive(ctx context.Context) ([]models.Objective, error)
}

type objectiveRepository struct {
	collection *mongo.Collection
}

func NewObjectiveRepository(db *mongo.Database) ObjectiveRepository {
	return &objectiveRepository{collection: db.Collection(config.ObjectiveCollection)}
}

func (r *objectiveRepository) Create(ctx context.Context, objective *models.Objective) error {
	if objective.ID.IsZero() {
		objective.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, objective)
	if err != nil {
		return fmt.Errorf("failed to insert objective: %w", err)
	}
	return nil
}

func (r *objectiveRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Objective, error) {
	var objective models.Objective
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&objective)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find objective by id: %w", err)
	}
	return &objective, nil
}

func (r *objectiveRepository) FindAllActive(ctx context.Context) ([]models.Objective, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to query objectives: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Objective
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode objectives: %w", err)
	}

	if len(results) == 0 {
		return []models.Objective{}, nil
	}
	return results, nil
}
