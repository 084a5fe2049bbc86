package seeder

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maualmeyracba/cronoapp-sub001/models"
	"github.com/maualmeyracba/cronoapp-sub001/repository"
)

// SeedObjectives creates a few work sites around Buenos Aires for local
// development. Seeding is additive only when no objectives exist yet.
func SeedObjectives(objectiveRepo repository.ObjectiveRepository, log *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := objectiveRepo.FindAllActive(ctx)
	if err != nil {
		log.WithError(err).Error("failed to check objectives")
		return
	}
	if len(existing) > 0 {
		return
	}

	objectives := []models.Objective{
		{
			Name:     "Warehouse North",
			ClientID: "logistica-sur",
			Location: models.GeoPoint{Latitude: -34.5705, Longitude: -58.4233},
		},
		{
			Name:     "Corporate Tower Catalinas",
			ClientID: "catalinas-sa",
			Location: models.GeoPoint{Latitude: -34.5958, Longitude: -58.3713},
			// Large lobby plus parking, wider fence than the default.
			RadiusMeters: 300,
		},
		{
			Name:     "Retail Park Avellaneda",
			ClientID: "retail-group",
			Location: models.GeoPoint{Latitude: -34.6622, Longitude: -58.3647},
		},
	}

	for _, objective := range objectives {
		objective.ID = primitive.NewObjectID()
		objective.Active = true
		objective.CreatedAt = time.Now()
		objective.UpdatedAt = time.Now()
		if err := objectiveRepo.Create(ctx, &objective); err != nil {
			log.WithError(err).WithField("name", objective.Name).Error("failed to seed objective")
			continue
		}
		log.WithField("name", objective.Name).Info("objective seeded")
	}
}
