package handlers

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maualmeyracba/cronoapp-sub001/models"
	util "github.com/maualmeyracba/cronoapp-sub001/pkg/utils"
	"github.com/maualmeyracba/cronoapp-sub001/repository"
	"github.com/maualmeyracba/cronoapp-sub001/services"
)

type AttendanceHandler struct {
	attendance *services.AttendanceService
	objectives repository.ObjectiveRepository
}

func NewAttendanceHandler(attendance *services.AttendanceService, objectives repository.ObjectiveRepository) *AttendanceHandler {
	return &AttendanceHandler{
		attendance: attendance,
		objectives: objectives,
	}
}

// RecordAttendance godoc
// @Summary Check in or out of a shift
// @Description Records a geofenced check-in or check-out for the caller's own shift. Check-in moves the shift to in_progress, check-out to completed.
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shift ID"
// @Param action body models.AttendanceActionPayload true "Attendance action with device coordinates"
// @Success 200 {object} object{message=string,data=models.Shift}
// @Failure 403 {object} models.ErrorResponse "Not the assigned employee"
// @Failure 409 {object} models.ErrorResponse "Illegal status transition"
// @Failure 422 {object} models.ErrorResponse "Outside the geofence"
// @Router /shifts/{id}/attendance [post]
func (h *AttendanceHandler) RecordAttendance(c *fiber.Ctx) error {
	shiftID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid shift id"})
	}

	var payload models.AttendanceActionPayload
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

	ctx, cancel := context.WithTimeout(c.Context(), handlerTimeout)
	defer cancel()

	coords := models.GeoPoint{Latitude: payload.Latitude, Longitude: payload.Longitude}
	shift, err := h.attendance.RecordAction(ctx, shiftID, payload.Action, coords, actor)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": payload.Action + " recorded", "data": shift})
}

// GenerateObjectiveQR godoc
// @Summary Generate a site QR poster
// @Description Returns a printable QR image encoding the objective id, for posting at the site entrance so guards can open the right shift quickly.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Objective ID"
// @Success 200 {object} object{objective=string,qr_code_image=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /objectives/{id}/qr [get]
func (h *AttendanceHandler) GenerateObjectiveQR(c *fiber.Ctx) error {
	objectiveID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid objective id"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), handlerTimeout)
	defer cancel()

	objective, err := h.objectives.FindByID(ctx, objectiveID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load objective"})
	}
	if objective == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "objective not found"})
	}

	png, err := qrcode.Encode("cronoapp://objective/"+objectiveID.Hex(), qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to render QR code"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"objective":     objective.Name,
		"qr_code_image": "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		"generated_at":  time.Now(),
	})
}
