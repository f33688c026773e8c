package websocket

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gofiber/contrib/websocket"
	appSession "github.com/playdeck/tabletally/pkg/app/session"
	"github.com/playdeck/tabletally/pkg/domain/billing"
	domainSession "github.com/playdeck/tabletally/pkg/domain/session"
	"github.com/sirupsen/logrus"
)

const pushInterval = time.Second

// sessionFrame is one entry of the floor snapshot streamed to dashboards.
type sessionFrame struct {
	SessionID string        `json:"session_id"`
	TableID   string        `json:"table_id"`
	Capacity  int           `json:"capacity"`
	StartedAt time.Time     `json:"started_at"`
	Quote     billing.Quote `json:"quote"`
}

type liveSessionsHandler struct {
	logger      *logrus.Logger
	sessionRepo domainSession.Repository
	schedules   appSession.ScheduleResolver
	nowFn       func() time.Time
}

func NewLiveSessionsHandler(
	logger *logrus.Logger,
	sessionRepo domainSession.Repository,
	schedules appSession.ScheduleResolver,
) Handler {
	return &liveSessionsHandler{
		logger:      logger,
		sessionRepo: sessionRepo,
		schedules:   schedules,
		nowFn:       time.Now,
	}
}

// Handle streams a recomputed snapshot of every active session once per
// second until the client disconnects. Reads are drained in a side goroutine
// only to detect the close frame.
func (h *liveSessionsHandler) Handle(c *websocket.Conn) {
	defer func() {
		if err := c.Close(); err != nil {
			h.logger.WithError(err).Debug("failed to close websocket connection")
		}
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := h.push(c); err != nil {
				return
			}
		}
	}
}

func (h *liveSessionsHandler) push(c *websocket.Conn) error {
	ctx, cancel := context.WithTimeout(context.Background(), pushInterval)
	defer cancel()

	sessions, err := h.sessionRepo.ListActive(ctx)
	if err != nil {
		h.logger.WithError(err).Error("failed to list active sessions for live feed")
		return nil
	}

	now := h.nowFn()
	frames := make([]sessionFrame, 0, len(sessions))
	for i := range sessions {
		s := &sessions[i]
		sched := h.schedules.Resolve(ctx, s)
		frames = append(frames, sessionFrame{
			SessionID: s.ID.String(),
			TableID:   s.TableID.String(),
			Capacity:  s.Capacity,
			StartedAt: s.StartedAt,
			Quote:     billing.Compute(s.StartedAt, now, s.Capacity, sched),
		})
	}

	payload, err := json.Marshal(map[string]interface{}{"at": now, "sessions": frames})
	if err != nil {
		h.logger.WithError(err).Error("failed to marshal live feed frame")
		return nil
	}
	return c.WriteMessage(websocket.TextMessage, payload)
}
