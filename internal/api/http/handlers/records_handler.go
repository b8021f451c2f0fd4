package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/console-service/internal/api/dto"
	"github.com/spec-kit/console-service/internal/service"
	apperrors "github.com/spec-kit/console-service/pkg/util/errorutil"
)

// RecordsHandler serves the point-based record search feature.
type RecordsHandler struct {
	records *service.RecordService
}

// NewRecordsHandler constructs handler.
func NewRecordsHandler(records *service.RecordService) *RecordsHandler {
	return &RecordsHandler{records: records}
}

// Search POST /client/feature/facebook-data-points/search.
func (h *RecordsHandler) Search(c *fiber.Ctx) error {
	clientID, err := currentClientID(c)
	if err != nil {
		return err
	}

	var req dto.SearchRecordsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	results, err := h.records.Search(c.Context(), clientID, service.SearchInput{
		Mode:    service.SearchMode(req.Mode),
		Term:    req.Term,
		Country: req.Country,
		City:    req.City,
	})
	if err != nil {
		return err
	}

	items := make([]dto.RecordResponse, 0, len(results))
	for _, record := range results {
		items = append(items, dto.NewRecordResponse(record))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Purchase POST /client/feature/facebook-data-points/purchase.
func (h *RecordsHandler) Purchase(c *fiber.Ctx) error {
	clientID, err := currentClientID(c)
	if err != nil {
		return err
	}

	var req dto.PurchaseRecordsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateStruct(req); err != nil {
		return err
	}

	result, err := h.records.Purchase(c.Context(), clientID, req.RecordIDs)
	if err != nil {
		return err
	}

	items := make([]dto.RecordResponse, 0, len(result.Records))
	for _, record := range result.Records {
		items = append(items, dto.NewRecordResponse(record))
	}
	return c.JSON(fiber.Map{"data": dto.PurchaseRecordsResponse{
		Records: items,
		Cost:    result.Cost,
		Balance: result.Balance,
	}})
}
