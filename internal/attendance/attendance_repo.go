// attendance/attendance_repo.go
package attendance

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/wbzhu/matchledger/internal/match"
)

const replaceTimeout = 5 * time.Second

// AttendanceRepository interface defines all database operations for attendance persistence
type AttendanceRepository interface {
	ReplaceMatchData(matchID uint, parts []match.Participation, events []match.Event) error
	GetParticipationsByMatch(matchID uint) ([]match.Participation, error)
	GetEventsByMatch(matchID uint) ([]match.Event, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

// ReplaceMatchData deletes every participation and event of the match and
// inserts the new set in one short transaction. Validation and fee
// computation happen before this is called, so the transaction only ever
// holds inserts and deletes. Two concurrent saves serialize on the row
// locks; the later commit wins wholesale.
func (r *attendanceRepository) ReplaceMatchData(matchID uint, parts []match.Participation, events []match.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), replaceTimeout)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Hard delete: a soft-deleted row would still hold the
		// (match_id, player_id) unique key against the new inserts.
		if err := tx.Unscoped().Where("match_id = ?", matchID).Delete(&match.Participation{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("match_id = ?", matchID).Delete(&match.Event{}).Error; err != nil {
			return err
		}
		if len(parts) > 0 {
			if err := tx.Create(&parts).Error; err != nil {
				return err
			}
		}
		if len(events) > 0 {
			if err := tx.Create(&events).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *attendanceRepository) GetParticipationsByMatch(matchID uint) ([]match.Participation, error) {
	var parts []match.Participation
	if err := r.db.Where("match_id = ?", matchID).Order("player_id asc").Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

func (r *attendanceRepository) GetEventsByMatch(matchID uint) ([]match.Event, error) {
	var events []match.Event
	if err := r.db.Where("match_id = ?", matchID).Order("player_id asc, id asc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
