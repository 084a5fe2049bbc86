package main

import (
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	"github.com/maualmeyracba/cronoapp-sub001/config"
	_ "github.com/maualmeyracba/cronoapp-sub001/docs"
	"github.com/maualmeyracba/cronoapp-sub001/pkg/paseto"
	"github.com/maualmeyracba/cronoapp-sub001/repository"
	"github.com/maualmeyracba/cronoapp-sub001/router"
	"github.com/maualmeyracba/cronoapp-sub001/seeder"

	_ "time/tzdata"
)

// @title CronoApp Shift Scheduling API
// @version 1.0
// @description Shift assignment, replication and geofenced attendance for security guard scheduling.
//
// @contact.name API Support
// @contact.email support@cronoapp.local
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the PASETO token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Shifts
// @tag.description Shift assignment and replication endpoints
//
// @tag.name Attendance
// @tag.description Geofenced check-in and check-out endpoints
//
// @tag.name Absences
// @tag.description Absence intake and approval endpoints
//
// @tag.name Objectives
// @tag.description Work site management endpoints
func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig()

	if err := paseto.Init(cfg.PASETO_SECRET); err != nil {
		log.WithError(err).Fatal("failed to initialize token keys")
	}

	client, err := config.MongoConnect(cfg.MONGOSTRING)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer config.DisconnectDB(client)

	if cfg.Seed {
		db := config.Database(client)
		seeder.SeedLaborAgreements(repository.NewLaborAgreementRepository(db), log)
		seeder.SeedUsers(repository.NewUserRepository(db), log)
		seeder.SeedObjectives(repository.NewObjectiveRepository(db), log)
	}

	app := fiber.New()
	config.SetupCORS(app)
	app.Use(fiberlogger.New())

	router.SetupRoutes(app, client, log)

	log.WithField("port", cfg.Port).Info("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
