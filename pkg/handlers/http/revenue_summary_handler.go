package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/playdeck/tabletally/pkg/app/analytics"
	"github.com/sirupsen/logrus"
)

type revenueSummaryHandler struct {
	logger   *logrus.Logger
	reporter analytics.Reporter
	nowFn    func() time.Time
}

func NewRevenueSummaryHandler(logger *logrus.Logger, reporter analytics.Reporter) Handler {
	return &revenueSummaryHandler{
		logger:   logger,
		reporter: reporter,
		nowFn:    time.Now,
	}
}

// Handle reports settled revenue between the from/to query bounds. Both are
// RFC 3339; from defaults to the start of the current day, to defaults to now.
func (h *revenueSummaryHandler) Handle(c *fiber.Ctx) error {
	now := h.nowFn()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid from timestamp"})
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid to timestamp"})
		}
		to = parsed
	}
	if to.Before(from) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "to must not be before from"})
	}

	summary, err := h.reporter.Revenue(c.Context(), from, to)
	if err != nil {
		h.logger.WithError(err).Error("failed to build revenue summary")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}
