package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/maualmeyracba/cronoapp-sub001/models"
	"github.com/maualmeyracba/cronoapp-sub001/repository"
)

// SeedUsers creates the bootstrap admin and a handful of guards for local
// development. Users that already exist by email are skipped.
func SeedUsers(userRepo repository.UserRepository, log *logrus.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Fatal("failed to hash seed password")
	}

	seedUser(ctx, userRepo, log, &models.User{
		Name:           "Scheduling Admin",
		Email:          "admin@cronoapp.local",
		Password:       string(hashed),
		Role:           models.RoleAdmin,
		ContractType:   "full_time",
		LaborAgreement: "SEC-GENERAL",
	})

	guards := []struct {
		name      string
		agreement string
		contract  string
		maxHours  float64
	}{
		{"Carlos Medina", "SEC-GENERAL", "full_time", 0},
		{"Lucia Ferreyra", "SEC-NIGHT", "full_time", 0},
		{"Diego Alvarez", "SEC-GENERAL", "full_time", 0},
		{"Romina Suarez", "SEC-PARTTIME", "part_time", 80},
		{"Marcos Benitez", "SEC-GENERAL", "full_time", 0},
	}
	for i, g := range guards {
		seedUser(ctx, userRepo, log, &models.User{
			Name:             g.name,
			Email:            fmt.Sprintf("guard%02d@cronoapp.local", i+1),
			Password:         string(hashed),
			Role:             models.RoleGuard,
			ContractType:     g.contract,
			LaborAgreement:   g.agreement,
			MaxHoursPerMonth: g.maxHours,
		})
	}
}

func seedUser(ctx context.Context, userRepo repository.UserRepository, log *logrus.Logger, user *models.User) {
	existing, err := userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		log.WithError(err).WithField("email", user.Email).Error("failed to check user")
		return
	}
	if existing != nil {
		return
	}

	user.ID = primitive.NewObjectID()
	user.Active = true
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	if err := userRepo.Create(ctx, user); err != nil {
		log.WithError(err).WithField("email", user.Email).Error("failed to seed user")
		return
	}
	log.WithFields(logrus.Fields{"email": user.Email, "role": user.Role}).Info("user seeded")
}
