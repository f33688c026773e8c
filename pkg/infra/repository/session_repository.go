package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/playdeck/tabletally/pkg/domain"
	"github.com/playdeck/tabletally/pkg/domain/session"
	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) session.Repository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, entity *session.Session) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	var entity session.Session
	if err := r.db.WithContext(ctx).First(&entity, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("session", id)
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &entity, nil
}

func (r *SessionRepository) List(ctx context.Context, status string, offset, limit int) ([]session.Session, error) {
	q := r.db.WithContext(ctx).Model(&session.Session{}).Order("started_at desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var sessions []session.Session
	if err := q.Offset(offset).Limit(limit).Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (r *SessionRepository) ListActive(ctx context.Context) ([]session.Session, error) {
	var sessions []session.Session
	err := r.db.WithContext(ctx).
		Where("status = ?", session.StatusActive).
		Order("started_at asc").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("list active sessions: %w", err)
	}
	return sessions, nil
}

func (r *SessionRepository) ActiveForTable(ctx context.Context, tableID uuid.UUID) (*session.Session, error) {
	var entity session.Session
	err := r.db.WithContext(ctx).
		Where("table_id = ? AND status = ?", tableID, session.StatusActive).
		Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("active session for table: %w", err)
	}
	return &entity, nil
}

func (r *SessionRepository) Update(ctx context.Context, entity *session.Session) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	return nil
}

// CompletedBetween returns sessions settled inside [from, to). Cancelled
// sessions are excluded by construction; they carry no revenue.
func (r *SessionRepository) CompletedBetween(ctx context.Context, from, to time.Time) ([]session.Session, error) {
	var sessions []session.Session
	err := r.db.WithContext(ctx).
		Where("status = ? AND ended_at >= ? AND ended_at < ?", session.StatusCompleted, from, to).
		Order("ended_at asc").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("completed sessions between: %w", err)
	}
	return sessions, nil
}
