// Package model provides domain models and DTOs for player module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// Player represents a player entity.
// TeamID is the membership relation: nil when the player is on no roster.
type Player struct {
	ID        uint      `gorm:"primaryKey;column:id"                                                    json:"id"`
	FirstName string    `gorm:"column:first_name;type:varchar(255);not null"                            json:"first_name"`
	LastName  string    `gorm:"column:last_name;type:varchar(255);not null;index:idx_players_last_name" json:"last_name"`
	TeamID    *uint     `gorm:"column:team_id;index:idx_players_team_id"                                json:"team_id"`
	CreatedAt time.Time `gorm:"column:created_at;not null"                                              json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"                                              json:"-"`
}

// TableName specifies the table name for GORM.
func (Player) TableName() string {
	return "players"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (p *Player) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}
