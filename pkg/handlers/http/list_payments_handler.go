package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/playdeck/tabletally/pkg/domain/payment"
	"github.com/sirupsen/logrus"
)

type listPaymentsHandler struct {
	logger *logrus.Logger
	repo   payment.Repository
}

func NewListPaymentsHandler(logger *logrus.Logger, repo payment.Repository) Handler {
	return &listPaymentsHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *listPaymentsHandler) Handle(c *fiber.Ctx) error {
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", 50)
	if limit < 1 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	payments, err := h.repo.List(c.Context(), offset, limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list payments")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(payments)
}
