// fee/fee_repo.go
package fee

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wbzhu/matchledger/internal/match"
)

var (
	// ErrParticipationNotFound is returned when a player has no
	// participation record in the match.
	ErrParticipationNotFound = errors.New("participation not found")
	// ErrOverrideNotFound is returned when no override exists for the
	// (match, player) pair.
	ErrOverrideNotFound = errors.New("fee override not found")
)

// FeeRepository interface defines all database operations for fee calculation and overrides
type FeeRepository interface {
	GetMatchByID(id uint) (*match.Match, error)
	GetParticipation(matchID, playerID uint) (*match.Participation, error)
	GetParticipationsByMatch(matchID uint) ([]match.Participation, error)
	UpdateParticipationFees(p *match.Participation) error

	GetOverride(matchID, playerID uint) (*match.FeeOverride, error)
	GetOverridesByMatch(matchID uint) ([]match.FeeOverride, error)
	SaveOverride(o *match.FeeOverride) error
	DeleteOverride(matchID, playerID uint) error
}

type feeRepository struct {
	db *gorm.DB
}

// NewFeeRepository creates a new fee repository
func NewFeeRepository(db *gorm.DB) FeeRepository {
	return &feeRepository{db: db}
}

func (r *feeRepository) GetMatchByID(id uint) (*match.Match, error) {
	var m match.Match
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, match.ErrMatchNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *feeRepository) GetParticipation(matchID, playerID uint) (*match.Participation, error) {
	var p match.Participation
	if err := r.db.Where("match_id = ? AND player_id = ?", matchID, playerID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrParticipationNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *feeRepository) GetParticipationsByMatch(matchID uint) ([]match.Participation, error) {
	var parts []match.Participation
	if err := r.db.Where("match_id = ?", matchID).Order("player_id asc").Find(&parts).Error; err != nil {
		return nil, err
	}
	return parts, nil
}

// UpdateParticipationFees persists only the calculated fee columns; the
// grid and late flag belong to the attendance save path.
func (r *feeRepository) UpdateParticipationFees(p *match.Participation) error {
	return r.db.Model(p).Updates(map[string]interface{}{
		"field_fee_calculated": p.FieldFeeCalculated,
		"video_fee":            p.VideoFee,
		"late_fee":             p.LateFee,
		"total_fee_calculated": p.TotalFeeCalculated,
	}).Error
}

func (r *feeRepository) GetOverride(matchID, playerID uint) (*match.FeeOverride, error) {
	var o match.FeeOverride
	if err := r.db.Where("match_id = ? AND player_id = ?", matchID, playerID).First(&o).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOverrideNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *feeRepository) GetOverridesByMatch(matchID uint) ([]match.FeeOverride, error) {
	var overrides []match.FeeOverride
	if err := r.db.Where("match_id = ?", matchID).Order("player_id asc").Find(&overrides).Error; err != nil {
		return nil, err
	}
	return overrides, nil
}

// SaveOverride upserts on the (match_id, player_id) unique key so applying
// an override twice replaces the first one.
func (r *feeRepository) SaveOverride(o *match.FeeOverride) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}, {Name: "player_id"}},
		UpdateAll: true,
	}).Create(o).Error
}

// DeleteOverride hard-deletes so a later re-apply does not collide with a
// soft-deleted row on the (match_id, player_id) unique key.
func (r *feeRepository) DeleteOverride(matchID, playerID uint) error {
	res := r.db.Unscoped().Where("match_id = ? AND player_id = ?", matchID, playerID).Delete(&match.FeeOverride{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOverrideNotFound
	}
	return nil
}
