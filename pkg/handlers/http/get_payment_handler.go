package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/payment"
	"github.com/sirupsen/logrus"
)

type getPaymentHandler struct {
	logger *logrus.Logger
	repo   payment.Repository
}

func NewGetPaymentHandler(logger *logrus.Logger, repo payment.Repository) Handler {
	return &getPaymentHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *getPaymentHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("payment_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payment ID"})
	}

	entity, err := h.repo.Get(c.Context(), id)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to fetch payment")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(entity)
}
