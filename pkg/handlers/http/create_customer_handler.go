package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/playdeck/tabletally/pkg/domain/customer"
	"github.com/playdeck/tabletally/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
)

type createCustomerHandler struct {
	logger *logrus.Logger
	repo   customer.Repository
}

func NewCreateCustomerHandler(logger *logrus.Logger, repo customer.Repository) Handler {
	return &createCustomerHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *createCustomerHandler) Handle(c *fiber.Ctx) error {
	var req request.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	entity := &customer.Customer{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	}
	if err := entity.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.repo.Create(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to create customer")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
