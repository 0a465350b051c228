// Package model provides domain models and DTOs for team module.
package model

import (
	"time"

	"gorm.io/gorm"
)

// MaxPlayers is the roster capacity of a team.
const MaxPlayers = 8

// Team represents a team entity in the system.
// Name and Location are unique across teams, compared case-insensitively.
type Team struct {
	ID        uint      `gorm:"primaryKey;column:id"                       json:"id"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"     json:"name"`
	Location  string    `gorm:"column:location;type:varchar(255);not null" json:"location"`
	CreatedAt time.Time `gorm:"column:created_at;not null"                 json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"                 json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// RosterPlayer is the team module's view of a row in the players table.
// Only membership is ever written through it.
type RosterPlayer struct {
	ID        uint   `gorm:"primaryKey;column:id" json:"id"`
	FirstName string `gorm:"column:first_name"    json:"first_name"`
	LastName  string `gorm:"column:last_name"     json:"last_name"`
	TeamID    *uint  `gorm:"column:team_id;index" json:"team_id"`
}

// TableName specifies the table name for GORM.
func (RosterPlayer) TableName() string {
	return "players"
}

// OnTeam reports whether the player belongs to any team.
func (p *RosterPlayer) OnTeam() bool {
	return p.TeamID != nil
}
