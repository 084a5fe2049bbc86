package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/maualmeyracba/cronoapp-sub001/config"
	"github.com/maualmeyracba/cronoapp-sub001/config/middleware"
	_ "github.com/maualmeyracba/cronoapp-sub001/docs"
	"github.com/maualmeyracba/cronoapp-sub001/handlers"
	"github.com/maualmeyracba/cronoapp-sub001/repository"
	"github.com/maualmeyracba/cronoapp-sub001/services"
)

// SetupRoutes wires repositories, services and handlers and registers every
// route. Dependencies flow in through constructors; nothing reaches for a
// package-global database handle.
func SetupRoutes(app *fiber.App, client *mongo.Client, log *logrus.Logger) {
	db := config.Database(client)
	tx := repository.NewTxRunner(client)

	userRepo := repository.NewUserRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	objectiveRepo := repository.NewObjectiveRepository(db)
	absenceRepo := repository.NewAbsenceRepository(db)
	agreementRepo := repository.NewLaborAgreementRepository(db)
	auditSink := repository.NewAuditRepository(db, log)

	workload := services.NewWorkloadValidator(shiftRepo, userRepo, agreementRepo)
	assignment := services.NewAssignmentService(shiftRepo, workload, tx, auditSink, log)
	replication := services.NewReplicationService(shiftRepo, tx, auditSink, log)
	attendance := services.NewAttendanceService(shiftRepo, objectiveRepo, tx, auditSink, log)

	authHandler := handlers.NewAuthHandler(userRepo)
	shiftHandler := handlers.NewShiftHandler(assignment, replication, shiftRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendance, objectiveRepo)
	absenceHandler := handlers.NewAbsenceHandler(absenceRepo, assignment)
	objectiveHandler := handlers.NewObjectiveHandler(objectiveRepo)

	// Health check & docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CronoApp Shift Scheduling API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)

	api := app.Group("/api/v1")

	// Authentication
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", middleware.AuthMiddleware(), middleware.AdminMiddleware(), authHandler.Register)

	// Shift scheduling: reads for any authenticated user, writes admin only.
	shiftGroup := api.Group("/shifts", middleware.AuthMiddleware())
	shiftGroup.Get("/employee/:employeeId", shiftHandler.GetShiftsByEmployee)
	shiftGroup.Get("/objective/:objectiveId", shiftHandler.GetShiftsByObjective)
	shiftGroup.Post("/:id/attendance", attendanceHandler.RecordAttendance)

	adminShiftGroup := shiftGroup.Group("/", middleware.AdminMiddleware())
	adminShiftGroup.Post("/", shiftHandler.CreateShift)
	adminShiftGroup.Get("/check-overlap", shiftHandler.CheckOverlap)
	adminShiftGroup.Post("/replicate", shiftHandler.ReplicateShifts)
	adminShiftGroup.Put("/:id", shiftHandler.UpdateShift)
	adminShiftGroup.Delete("/:id", shiftHandler.DeleteShift)

	// Registered after /check-overlap so the literal segment wins the match.
	shiftGroup.Get("/:id", shiftHandler.GetShiftByID)

	// Objectives
	api.Get("/objectives", middleware.AuthMiddleware(), objectiveHandler.GetObjectives)
	api.Get("/objectives/:id/qr", middleware.AuthMiddleware(), middleware.AdminMiddleware(), attendanceHandler.GenerateObjectiveQR)

	// Absences
	absenceGroup := api.Group("/absences", middleware.AuthMiddleware())
	absenceGroup.Post("/", absenceHandler.CreateAbsence)
	absenceGroup.Get("/mine", absenceHandler.GetMyAbsences)

	// Admin surface
	adminGroup := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
	adminGroup.Post("/objectives", objectiveHandler.CreateObjective)
	adminGroup.Get("/absences/:employeeId", absenceHandler.GetAbsencesByEmployee)
	adminGroup.Put("/absences/:id/status", absenceHandler.UpdateAbsenceStatus)

	log.Info("routes registered, docs at /docs/index.html")
}
