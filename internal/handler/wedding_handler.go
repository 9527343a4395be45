package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/ourwedding-backend/internal/models"
	"github.com/sefazor/ourwedding-backend/internal/service"
	"github.com/sefazor/ourwedding-backend/pkg/utils"
)

type WeddingHandler struct {
	weddingService *service.WeddingService
	validator      *utils.Validator
}

func NewWeddingHandler(weddingService *service.WeddingService, validator *utils.Validator) *WeddingHandler {
	return &WeddingHandler{
		weddingService: weddingService,
		validator:      validator,
	}
}

func (h *WeddingHandler) CreateWedding(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req models.WeddingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	wedding, err := h.weddingService.CreateWedding(userID, req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(wedding, "Wedding created successfully"))
}

func (h *WeddingHandler) GetUserWeddings(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	weddings, err := h.weddingService.GetUserWeddings(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.SuccessResponse(weddings, "Weddings retrieved successfully"))
}

func (h *WeddingHandler) GetWedding(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	weddingID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid wedding ID"))
	}

	wedding, err := h.weddingService.GetWedding(weddingID, userID)
	if err != nil {
		return ownerErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(wedding, "Wedding retrieved successfully"))
}

func (h *WeddingHandler) UpdateWedding(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	weddingID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid wedding ID"))
	}

	var req models.UpdateWeddingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	wedding, err := h.weddingService.UpdateWedding(weddingID, userID, req)
	if err != nil {
		return ownerErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(wedding, "Wedding updated successfully"))
}

func (h *WeddingHandler) DeactivateWedding(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	weddingID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid wedding ID"))
	}

	if err := h.weddingService.DeactivateWedding(weddingID, userID); err != nil {
		return ownerErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Wedding deactivated successfully"))
}

func (h *WeddingHandler) UploadCoverPhoto(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	weddingID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid wedding ID"))
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Photo file is required"))
	}

	wedding, err := h.weddingService.UploadCoverPhoto(weddingID, userID, file)
	if err != nil {
		return ownerErrorResponse(c, err)
	}

	return c.JSON(models.SuccessResponse(wedding, "Cover photo uploaded successfully"))
}

func (h *WeddingHandler) GetWeddingQR(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	weddingID, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid wedding ID"))
	}

	size := c.QueryInt("size", 512)
	png, err := h.weddingService.WeddingQR(weddingID, userID, size)
	if err != nil {
		return ownerErrorResponse(c, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// ownerErrorResponse maps service errors onto HTTP statuses: ownership
// failures are 403, everything else surfaces as 404/400 strings.
func ownerErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrNotWeddingOwner) {
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Unauthorized"))
	}
	if err.Error() == "wedding not found" || err.Error() == "guest not found" ||
		err.Error() == "photo not found" || err.Error() == "event not found" {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse(err.Error()))
	}
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
}
