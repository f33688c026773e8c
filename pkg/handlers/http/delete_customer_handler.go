package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/customer"
	"github.com/sirupsen/logrus"
)

type deleteCustomerHandler struct {
	logger *logrus.Logger
	repo   customer.Repository
}

func NewDeleteCustomerHandler(logger *logrus.Logger, repo customer.Repository) Handler {
	return &deleteCustomerHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *deleteCustomerHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("customer_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid customer ID"})
	}

	if err := h.repo.Delete(c.Context(), id); err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to delete customer")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
