package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maualmeyracba/cronoapp-sub001/models"
	util "github.com/maualmeyracba/cronoapp-sub001/pkg/utils"
	"github.com/maualmeyracba/cronoapp-sub001/repository"
)

type ObjectiveHandler struct {
	objectives repository.ObjectiveRepository
}

func NewObjectiveHandler(objectives repository.ObjectiveRepository) *ObjectiveHandler {
	return &ObjectiveHandler{objectives: objectives}
}

// CreateObjective godoc
// @Summary Register a work site
// @Description Creates an objective with its geofence center and optional site-specific radius. Admin only.
// @Tags Objectives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param objective body models.ObjectiveCreatePayload true "Objective data"
// @Success 201 {object} object{message=string,data=models.Objective}
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/objectives [post]
func (h *ObjectiveHandler) CreateObjective(c *fiber.Ctx) error {
	var payload models.ObjectiveCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), handlerTimeout)
	defer cancel()

	now := time.Now()
	objective := &models.Objective{
		ID:       primitive.NewObjectID(),
		Name:     payload.Name,
		ClientID: payload.ClientID,
		Location: models.GeoPoint{
			Latitude:  payload.Latitude,
			Longitude: payload.Longitude,
		},
		RadiusMeters: payload.RadiusMeters,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.objectives.Create(ctx, objective); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save objective"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "objective created", "data": objective})
}

// GetObjectives godoc
// @Summary List active work sites
// @Tags Objectives
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{data=[]models.Objective}
// @Router /objectives [get]
func (h *ObjectiveHandler) GetObjectives(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), handlerTimeout)
	defer cancel()

	objectives, err := h.objectives.FindAllActive(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load objectives"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": objectives})
}
