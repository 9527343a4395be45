package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/internal/service"
	"github.com/sefazor/ourwedding-backend/pkg/utils"
)

type LoveStoryHandler struct {
	storyService *service.LoveStoryService
	validator    *utils.Validator
}

func NewLoveStoryHandler(storyService *service.LoveStoryService, validator *utils.Validator) *LoveStoryHandler {
	return &LoveStoryHandler{
		storyService: storyService,
		validator:    validator,
	}
}

func (h *LoveStoryHandler) ListEvents(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	weddingID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid wedding ID"))
	}

	events, err := h.storyService.ListEvents(weddingID, userID)
	if err != nil {
		return ownerErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(events, "Events retrieved successfully"))
}

func (h *LoveStoryHandler) CreateEvent(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	weddingID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid wedding ID"))
	}

	var req models.LoveStoryEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.storyService.CreateEvent(weddingID, userID, req)
	if err != nil {
		return ownerErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(event, "Event created successfully"))
}

func (h *LoveStoryHandler) UpdateEvent(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	eventID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	var req models.LoveStoryEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.storyService.UpdateEvent(eventID, userID, req)
	if err != nil {
		return ownerErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(event, "Event updated successfully"))
}

func (h *LoveStoryHandler) DeleteEvent(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	eventID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	if err := h.storyService.DeleteEvent(eventID, userID); err != nil {
		return ownerErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Event deleted successfully"))
}

func (h *LoveStoryHandler) MoveEvent(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	eventID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event ID"))
	}

	var req models.MoveLoveStoryEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.storyService.MoveEvent(eventID, userID, req.Direction); err != nil {
		return ownerErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Event moved successfully"))
}
