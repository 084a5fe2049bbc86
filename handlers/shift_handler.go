package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/maualmeyracba/cronoapp-sub001/models"
	util "github.com/maualmeyracba/cronoapp-sub001/pkg/utils"
	"github.com/maualmeyracba/cronoapp-sub001/repository"
	"github.com/maualmeyracba/cronoapp-sub001/services"
)

const handlerTimeout = 10 * time.Second

type ShiftHandler struct {
	assignment  *services.AssignmentService
	replication *services.ReplicationService
	shifts      repository.ShiftRepository
}

func NewShiftHandler(
	assignment *services.AssignmentService,
	replication *services.ReplicationService,
	shifts repository.ShiftRepository,
) *ShiftHandler {
	return &ShiftHandler{
		assignment:  assignment,
		replication: replication,
		shifts:      shifts,
	}
}

// CreateShift godoc
// @Summary Assign a shift
// @Description Creates a shift after workload and overlap validation. Set allow_overload to bypass the hour caps; overlap conflicts are never bypassable.
// @Tags Shifts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param shift body models.ShiftCreatePayload true "Shift to create"
// @Success 201 {object} object{message=string,data=models.Shift}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "Overlapping assignment"
// @Failure 422 {object} models.ErrorResponse "Workload cap exceeded"
// @Router /shifts [post]
func (h *ShiftHandler) CreateShift(c *fiber.Ctx) error {
	var payload models.ShiftCreatePayload
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

	shift, err := h.assignment.Assign(ctx, &payload, actor)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "shift assigned", "data": shift})
}

// UpdateShift godoc
// @Summary Update a shift
// @Description Patches a shift; changing employee or times re-runs workload and overlap validation.
// @Tags Shifts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shift ID"
// @Param shift body models.ShiftUpdatePayload true "Fields to change"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /shifts/{id} [put]
func (h *ShiftHandler) UpdateShift(c *fiber.Ctx) error {
	shiftID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid shift id"})
	}

	var payload models.ShiftUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	actor, ok := actorFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not authenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), handlerTimeout)
	defer cancel()

	if err := h.assignment.Update(ctx, shiftID, &payload, actor); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "shift updated"})
}

// DeleteShift godoc
// @Summary Delete a shift
// @Tags Shifts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shift ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) DeleteShift(c *fiber.Ctx) error {
	shiftID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid shift id"})
	}

	actor, ok := actorFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not authenticated"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), handlerTimeout)
	defer cancel()

	if err := h.assignment.Delete(ctx, shiftID, actor); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "shift deleted"})
}

// GetShiftByID godoc
// @Summary Get a shift
// @Tags Shifts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shift ID"
// @Success 200 {object} object{data=models.Shift}
// @Failure 404 {object} models.ErrorResponse
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShiftByID(c *fiber.Ctx) error {
	shiftID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid shift id"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), handlerTimeout)
	defer cancel()

	shift, err := h.shifts.FindByID(ctx, shiftID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load shift"})
	}
	if shift == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "shift not found"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": shift})
}

// CheckOverlap godoc
// @Summary Check a window for overlapping shifts
// @Description Returns the employee's non-canceled shifts that overlap the half-open window [start_time, end_time).
// @Tags Shifts
// @Produce json
// @Security BearerAuth
// @Param employee_id query string true "Employee ID"
// @Param start_time query string true "RFC3339 window start"
// @Param end_time query string true "RFC3339 window end"
// @Success 200 {object} object{conflicts=[]models.Shift}
// @Failure 400 {object} models.ErrorResponse
// @Router /shifts/check-overlap [get]
func (h *ShiftHandler) CheckOverlap(c *fiber.Ctx) error {
	employeeID := c.Query("employee_id")
	if employeeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "employee_id is required"})
	}
	start, err := time.Parse(time.RFC3339, c.Query("start_time"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "start_time must be a valid RFC3339 instant"})
	}
	end, err := time.Parse(time.RFC3339, c.Query("end_time"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_time must be a valid RFC3339 instant"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), handlerTimeout)
	defer cancel()

	conflicts, err := h.assignment.CheckShiftOverlap(ctx, employeeID, start, end)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"conflicts": conflicts})
}

// GetShiftsByEmployee godoc
// @Summary List an employee's shifts in a date range
// @Tags Shifts
// @Produce json
// @Security BearerAuth
// @Param employeeId path string true "Employee ID"
// @Param start_date query string true "Range start (2006-01-02)"
// @Param end_date query string true "Range end, inclusive (2006-01-02)"
// @Success 200 {object} object{data=[]models.Shift}
// @Failure 400 {object} models.ErrorResponse
// @Router /shifts/employee/{employeeId} [get]
func (h *ShiftHandler) GetShiftsByEmployee(c *fiber.Ctx) error {
	employeeID := c.Params("employeeId")

	from, to, err := parseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Guards can only read their own schedule.
	actor, ok := actorFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not authenticated"})
	}
	if actor.Role != models.RoleAdmin && actor.ID != employeeID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), handlerTimeout)
	defer cancel()

	shifts, err := h.shifts.FindByEmployeeBetween(ctx, employeeID, from, to)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": shifts})
}

// GetShiftsByObjective godoc
// @Summary List a site's shifts in a date range
// @Tags Shifts
// @Produce json
// @Security BearerAuth
// @Param objectiveId path string true "Objective ID"
// @Param start_date query string true "Range start (2006-01-02)"
// @Param end_date query string true "Range end, inclusive (2006-01-02)"
// @Success 200 {object} object{data=[]models.Shift}
// @Failure 400 {object} models.ErrorResponse
// @Router /shifts/objective/{objectiveId} [get]
func (h *ShiftHandler) GetShiftsByObjective(c *fiber.Ctx) error {
	objectiveID, err := primitive.ObjectIDFromHex(c.Params("objectiveId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid objective id"})
	}

	from, to, err := parseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Context(), handlerTimeout)
	defer cancel()

	shifts, err := h.shifts.FindByObjectiveBetween(ctx, objectiveID, from, to)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"data": shifts})
}

// ReplicateShifts godoc
// @Summary Replicate a model day onto a date range
// @Description Clones the source day's shift structure of an objective onto every vacant target day. Staffed and empty days are skipped and counted.
// @Tags Shifts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param replication body models.ReplicatePayload true "Replication request"
// @Success 200 {object} object{message=string,result=models.ReplicationResult}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse "Source day has no shifts"
// @Router /shifts/replicate [post]
func (h *ShiftHandler) ReplicateShifts(c *fiber.Ctx) error {
	var payload models.ReplicatePayload
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

	// Replication can touch hundreds of documents; give it more room than a
	// single-document write.
	ctx, cancel := context.WithTimeout(c.Context(), 30*time.Second)
	defer cancel()

	result, err := h.replication.Replicate(ctx, &payload, actor)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "replication finished", "result": result})
}

// parseDateRange turns two inclusive calendar dates into the half-open
// instant window [from 00:00, day after to 00:00) in server-local time.
func parseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	const layout = "2006-01-02"
	from, err := time.ParseInLocation(layout, startDate, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "start_date must be in 2006-01-02 format")
	}
	to, err := time.ParseInLocation(layout, endDate, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "end_date must be in 2006-01-02 format")
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, fiber.NewError(fiber.StatusBadRequest, "end_date must not be before start_date")
	}
	return from, to.AddDate(0, 0, 1), nil
}
