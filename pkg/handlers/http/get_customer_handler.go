package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/customer"
	"github.com/sirupsen/logrus"
)

type getCustomerHandler struct {
	logger *logrus.Logger
	repo   customer.Repository
}

func NewGetCustomerHandler(logger *logrus.Logger, repo customer.Repository) Handler {
	return &getCustomerHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *getCustomerHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("customer_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid customer ID"})
	}

	entity, err := h.repo.Get(c.Context(), id)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to fetch customer")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
