// player/player_model.go
package player

import (
	"gorm.io/gorm"
)

// Player is one club member who can appear on a match roster.
type Player struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Nickname    string `json:"nickname,omitempty"`
	ShirtNumber *int   `json:"shirt_number,omitempty"`
	Active      bool   `json:"active" gorm:"default:true"`
}
