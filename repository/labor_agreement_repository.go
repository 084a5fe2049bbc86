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

type LaborAgreementRepository interface {
	Create(ctx context.Context, agreement *models.LaborAgreement) error
	// FindByCode returns (nil, nil) when no agreement matches; callers fall
	// back to models.DefaultAgreement.
	FindByCode(ctx context.Context, code string) (*models.LaborAgreement, error)
}

type laborAgreementRepository struct {
	collection *mongo.Collection
}

func NewLaborAgreementRepository(db *mongo.Database) LaborAgreementRepository {
	return &laborAgreementRepository{collection: db.Collection(config.LaborAgreementCollection)}
}

func (r *laborAgreementRepository) Create(ctx context.Context, agreement *models.LaborAgreement) error {
	if agreement.ID.IsZero() {
		agreement.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, agreement)
	if err != nil {
		return fmt.Errorf("failed to insert labor agreement: %w", err)
	}
	return nil
}

func (r *laborAgreementRepository) FindByCode(ctx context.Context, code string) (*models.LaborAgreement, error) {
	if code == "" {
		return nil, nil
	}

	var agreement models.LaborAgreement
	err := r.collection.FindOne(ctx, bson.M{"code": code}).Decode(&agreement)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find labor agreement by code: %w", err)
	}
	return &agreement, nil
}
