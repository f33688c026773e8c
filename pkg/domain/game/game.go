package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Game struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title      string    `json:"title" gorm:"not null;index"`
	MinPlayers int       `json:"min_players"`
	MaxPlayers int       `json:"max_players"`
	Shelf      string    `json:"shelf"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (g *Game) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return g.Validate()
}

func (g *Game) BeforeUpdate(tx *gorm.DB) error {
	g.UpdatedAt = time.Now()
	return g.Validate()
}

func (g *Game) Validate() error {
	if g.Title == "" {
		return fmt.Errorf("title is required")
	}
	if g.MinPlayers < 0 || g.MaxPlayers < 0 {
		return fmt.Errorf("player counts must be non-negative")
	}
	if g.MaxPlayers > 0 && g.MinPlayers > g.MaxPlayers {
		return fmt.Errorf("min_players cannot exceed max_players")
	}
	return nil
}

func (g *Game) TableName() string {
	return "games"
}
