package activity

import (
	"context"

	"github.com/google/uuid"
	domainActivity "github.com/playdeck/tabletally/pkg/domain/activity"
	"github.com/sirupsen/logrus"
)

// Recorder appends audit entries. A failed append is logged and swallowed:
// the log is an observability aid, not a transactional participant.
type Recorder interface {
	Record(ctx context.Context, actor, action, entityType string, entityID uuid.UUID, detail string)
}

type recorder struct {
	logger *logrus.Logger
	repo   domainActivity.Repository
}

func NewRecorder(logger *logrus.Logger, repo domainActivity.Repository) Recorder {
	return &recorder{
		logger: logger,
		repo:   repo,
	}
}

func (r *recorder) Record(ctx context.Context, actor, action, entityType string, entityID uuid.UUID, detail string) {
	entry := &domainActivity.Entry{
		Actor:      actor,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
	}
	if err := r.repo.Append(ctx, entry); err != nil {
		r.logger.WithError(err).WithField("action", action).Warn("failed to append activity entry")
	}
}
