// match/match_model.go
package match

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// EventType classifies a recorded match event.
type EventType string

const (
	EventGoal          EventType = "goal"
	EventAssist        EventType = "assist"
	EventYellowCard    EventType = "yellow_card"
	EventRedCard       EventType = "red_card"
	EventPenaltyScored EventType = "penalty_scored"
	EventPenaltyMissed EventType = "penalty_missed"
	EventOwnGoal       EventType = "own_goal"
	EventSave          EventType = "save"
)

// ValidEventTypes lists every accepted event type.
var ValidEventTypes = map[EventType]bool{
	EventGoal:          true,
	EventAssist:        true,
	EventYellowCard:    true,
	EventRedCard:       true,
	EventPenaltyScored: true,
	EventPenaltyMissed: true,
	EventOwnGoal:       true,
	EventSave:          true,
}

const (
	// GridSections and GridParts fix the 3x3 attendance subdivision of a match.
	GridSections = 3
	GridParts    = 3
)

// AttendanceCell is one (section, part) slot of a player's attendance grid.
// Value is 0 (absent), 0.5 (half) or 1 (full). IsGoalkeeper implies Value > 0.
type AttendanceCell struct {
	Value        float64 `json:"value"`
	IsGoalkeeper bool    `json:"is_goalkeeper"`
}

// AttendanceGrid is a player's full 3x3 attendance for one match, indexed
// [section-1][part-1]. Stored as a JSON column.
type AttendanceGrid [GridSections][GridParts]AttendanceCell

func (g AttendanceGrid) Value() (driver.Value, error) {
	return json.Marshal(g)
}

// Scan unmarshals the JSON column into the grid.
func (g *AttendanceGrid) Scan(src interface{}) error {
	switch b := src.(type) {
	case []byte:
		return json.Unmarshal(b, g)
	case string:
		return json.Unmarshal([]byte(b), g)
	default:
		return fmt.Errorf("AttendanceGrid: expected []byte or string, got %T", src)
	}
}

// TotalParts sums every cell value, goalkeeper slots included.
func (g AttendanceGrid) TotalParts() float64 {
	total := 0.0
	for s := 0; s < GridSections; s++ {
		for p := 0; p < GridParts; p++ {
			total += g[s][p].Value
		}
	}
	return total
}

// Match is one scheduled game with its fixed shared costs. A zero
// LateFeeRate or VideoFeeRate means "use the club default rates".
type Match struct {
	gorm.Model
	Title         string    `json:"title" gorm:"not null"`
	PlayedAt      time.Time `json:"played_at" gorm:"index"`
	Location      string    `json:"location,omitempty"`
	FieldFeeTotal float64   `json:"field_fee_total" gorm:"default:0"`
	WaterFeeTotal float64   `json:"water_fee_total" gorm:"default:0"`
	LateFeeRate   float64   `json:"late_fee_rate" gorm:"default:0"`
	VideoFeeRate  float64   `json:"video_fee_rate" gorm:"default:0"`
	Notes         string    `json:"notes,omitempty" gorm:"type:text"`
}

// Participation is one player's attendance in one match together with the
// calculated fee components. The full set for a match is deleted and
// recreated on every attendance save; there is no incremental update.
type Participation struct {
	gorm.Model
	MatchID       uint           `json:"match_id" gorm:"index:idx_participation_match_player,unique;not null"`
	PlayerID      uint           `json:"player_id" gorm:"index:idx_participation_match_player,unique;not null"`
	Grid          AttendanceGrid `json:"grid" gorm:"type:json"`
	IsLateArrival bool           `json:"is_late_arrival" gorm:"default:false"`
	TotalParts    float64        `json:"total_parts" gorm:"default:0"`

	// Calculated components, whole currency units. Overrides live in
	// FeeOverride and are never written here.
	FieldFeeCalculated float64 `json:"field_fee_calculated" gorm:"default:0"`
	VideoFee           float64 `json:"video_fee" gorm:"default:0"`
	LateFee            float64 `json:"late_fee" gorm:"default:0"`
	TotalFeeCalculated float64 `json:"total_fee_calculated" gorm:"default:0"`
}

// Event is one recorded action by a player in a match. Multiple events per
// player per match are allowed; events are independent of the grid.
type Event struct {
	gorm.Model
	MatchID   uint      `json:"match_id" gorm:"index;not null"`
	PlayerID  uint      `json:"player_id" gorm:"index;not null"`
	EventType EventType `json:"event_type" gorm:"index;not null"`
	Minute    *int      `json:"minute,omitempty"`
}

// FeeOverride is a manual replacement of calculated fee components for one
// (match, player). Each component is independently nullable: nil means
// "use the calculated value". Overrides survive recalculation; only
// explicit removal deletes them.
type FeeOverride struct {
	gorm.Model
	MatchID  uint     `json:"match_id" gorm:"index:idx_override_match_player,unique;not null"`
	PlayerID uint     `json:"player_id" gorm:"index:idx_override_match_player,unique;not null"`
	FieldFee *float64 `json:"field_fee,omitempty"`
	VideoFee *float64 `json:"video_fee,omitempty"`
	LateFee  *float64 `json:"late_fee,omitempty"`
	Notes    string   `json:"notes,omitempty" gorm:"type:text"`
}

// HasAnyComponent reports whether at least one component is overridden.
func (o FeeOverride) HasAnyComponent() bool {
	return o.FieldFee != nil || o.VideoFee != nil || o.LateFee != nil
}
