package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	appSession "github.com/playdeck/tabletally/pkg/app/session"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/billing"
	domainSession "github.com/playdeck/tabletally/pkg/domain/session"
	"github.com/sirupsen/logrus"
)

type sessionQuoteHandler struct {
	logger      *logrus.Logger
	sessionRepo domainSession.Repository
	schedules   appSession.ScheduleResolver
	nowFn       func() time.Time
}

func NewSessionQuoteHandler(
	logger *logrus.Logger,
	sessionRepo domainSession.Repository,
	schedules appSession.ScheduleResolver,
) Handler {
	return &sessionQuoteHandler{
		logger:      logger,
		sessionRepo: sessionRepo,
		schedules:   schedules,
		nowFn:       time.Now,
	}
}

// Handle returns a live quote for an active session. The quote is advisory;
// nothing is persisted until the session is settled.
func (h *sessionQuoteHandler) Handle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("session_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid session ID"})
	}

	entity, err := h.sessionRepo.Get(c.Context(), id)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).Error("failed to fetch session")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !entity.IsActive() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": domain.ErrSessionNotActive.Error()})
	}

	sched := h.schedules.Resolve(c.Context(), entity)
	quote := billing.Compute(entity.StartedAt, h.nowFn(), entity.Capacity, sched)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"session_id": entity.ID,
		"quote":      quote,
	})
}
