package seeder

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maualmeyracba/cronoapp-sub001/models"
	"github.com/maualmeyracba/cronoapp-sub001/repository"
)

// SeedLaborAgreements installs the agreement codes referenced by seeded
// users. Existing codes are left untouched.
func SeedLaborAgreements(agreementRepo repository.LaborAgreementRepository, log *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	agreements := []models.LaborAgreement{
		{Code: "SEC-GENERAL", Name: "General security agreement", MaxHoursWeekly: 48, MaxHoursMonthly: 200},
		{Code: "SEC-NIGHT", Name: "Night watch agreement", MaxHoursWeekly: 42, MaxHoursMonthly: 180},
		{Code: "SEC-PARTTIME", Name: "Part-time agreement", MaxHoursWeekly: 24, MaxHoursMonthly: 100},
	}

	for _, agreement := range agreements {
		existing, err := agreementRepo.FindByCode(ctx, agreement.Code)
		if err != nil {
			log.WithError(err).WithField("code", agreement.Code).Error("failed to check labor agreement")
			continue
		}
		if existing != nil {
			continue
		}

		agreement.ID = primitive.NewObjectID()
		agreement.CreatedAt = time.Now()
		agreement.UpdatedAt = time.Now()
		if err := agreementRepo.Create(ctx, &agreement); err != nil {
			log.WithError(err).WithField("code", agreement.Code).Error("failed to seed labor agreement")
			continue
		}
		log.WithField("code", agreement.Code).Info("labor agreement seeded")
	}
}
