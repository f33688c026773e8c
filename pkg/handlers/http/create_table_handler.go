package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/playdeck/tabletally/pkg/domain/cafetable"
	"github.com/playdeck/tabletally/pkg/handlers/http/request"
	"github.com/sirupsen/logrus"
)

type createTableHandler struct {
	logger *logrus.Logger
	repo   cafetable.Repository
}

func NewCreateTableHandler(logger *logrus.Logger, repo cafetable.Repository) Handler {
	return &createTableHandler{
		logger: logger,
		repo:   repo,
	}
}

func (h *createTableHandler) Handle(c *fiber.Ctx) error {
	var req request.TableRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}

	entity := &cafetable.Table{
		Label:  req.Label,
		Seats:  req.Seats,
		Status: cafetable.StatusFree,
	}
	if err := entity.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.repo.Create(c.Context(), entity); err != nil {
		h.logger.WithError(err).Error("failed to create table")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(entity)
}
