package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/maualmeyracba/cronoapp-sub001/models"
	util "github.com/maualmeyracba/cronoapp-sub001/pkg/utils"
	"github.com/maualmeyracba/cronoapp-sub001/repository"
	"github.com/maualmeyracba/cronoapp-sub001/services"
)

type AbsenceHandler struct {
	absences   repository.AbsenceRepository
	assignment *services.AssignmentService
}

func NewAbsenceHandler(absences repository.AbsenceRepository, assignment *services.AssignmentService) *AbsenceHandler {
	return &AbsenceHandler{
		absences:   absences,
		assignment: assignment,
	}
}

// CreateAbsence godoc
// @Summary File an absence request
// @Description Registers a vacation, sick or personal absence. The request is rejected when any assigned shift falls inside the period; the conflicting shifts are returned so the scheduler can resolve them first.
// @Tags Absences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param absence body models.AbsenceCreatePayload true "Absence request"
// @Success 201 {object} object{message=string,data=models.Absence}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} object{error=string,conflicts=[]models.Shift} "Period collides with assigned shifts"
// @Router /absences [post]
func (h *AbsenceHandler) CreateAbsence(c *fiber.Ctx) error {
	var payload models.AbsenceCreatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	actor, ok := actorFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not authenticated"})
	}
	// Guards file for themselves; only admins file on someone's behalf.
	if actor.Role != models.RoleAdmin && actor.ID != payload.EmployeeID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied"})
	}

	from, to, err := parseDateRange(payload.StartDate, payload.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Context(), handlerTimeout)
	defer cancel()

	conflicts, err := h.assignment.CheckShiftOverlap(ctx, payload.EmployeeID, from, to)
	if err != nil {
		return respondError(c, err)
	}
	if len(conflicts) > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":     "the absence period collides with assigned shifts; reassign or delete them first",
			"conflicts": conflicts,
		})
	}

	now := time.Now()
	absence := &models.Absence{
		ID:         primitive.NewObjectID(),
		EmployeeID: payload.EmployeeID,
		Type:       payload.Type,
		StartDate:  payload.StartDate,
		EndDate:    payload.EndDate,
		Status:     models.AbsenceStatusPending,
		Reason:     payload.Reason,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := h.absences.Create(ctx, absence); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save absence"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "absence filed", "data": absence})
}

// GetMyAbsences godoc
// @Summary List the caller's absences
// @Tags Absences
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{data=[]models.Absence}
// @Router /absences/mine [get]
func (h *AbsenceHandler) GetMyAbsences(c *fiber.Ctx) error {
	actor, ok := actorFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not authenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), handlerTimeout)
	defer cancel()

	absences, err := h.absences.FindByEmployeeID(ctx, actor.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load absences"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": absences})
}

// GetAbsencesByEmployee godoc
// @Summary List an employee's absences
// @Tags Absences
// @Produce json
// @Security BearerAuth
// @Param employeeId path string true "Employee ID"
// @Success 200 {object} object{data=[]models.Absence}
// @Router /admin/absences/{employeeId} [get]
func (h *AbsenceHandler) GetAbsencesByEmployee(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), handlerTimeout)
	defer cancel()

	absences, err := h.absences.FindByEmployeeID(ctx, c.Params("employeeId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load absences"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": absences})
}

// UpdateAbsenceStatus godoc
// @Summary Approve or reject an absence
// @Tags Absences
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Absence ID"
// @Param status body models.AbsenceStatusUpdatePayload true "New status"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/absences/{id}/status [put]
func (h *AbsenceHandler) UpdateAbsenceStatus(c *fiber.Ctx) error {
	absenceID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid absence id"})
	}

	var payload models.AbsenceStatusUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := context.WithTimeout(c.Context(), handlerTimeout)
	defer cancel()

	if err := h.absences.UpdateStatus(ctx, absenceID, payload.Status, payload.Note); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "absence not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update absence status"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "absence status updated"})
}
