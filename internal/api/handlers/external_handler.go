package handlers

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/internal/api/presenters"
	"FoodShare-Backend/pkg/external"

	"github.com/gofiber/fiber/v2"
)

type (
	ExternalHandler interface {
		SearchProducts(c *fiber.Ctx) error
	}

	externalHandler struct {
		externalService external.ExternalService
	}
)

func NewExternalHandler(externalService external.ExternalService) ExternalHandler {
	return &externalHandler{externalService: externalService}
}

func (h *externalHandler) SearchProducts(c *fiber.Ctx) error {
	query := c.Query("q")

	products, err := h.externalService.SearchProducts(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, domain.StatusCode(err), domain.MessageFailedSearchProducts, err)
	}

	return presenters.SuccessResponse(c, products, fiber.StatusOK)
}
