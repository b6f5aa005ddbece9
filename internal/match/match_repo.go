// match/match_repo.go
package match

import (
	"errors"

	"gorm.io/gorm"
)

// ErrMatchNotFound is returned when no match exists for the given ID.
var ErrMatchNotFound = errors.New("match not found")

// MatchRepository interface defines all database operations for match management
type MatchRepository interface {
	CreateMatch(m *Match) error
	GetMatchByID(id uint) (*Match, error)
	GetAllMatches(page, limit int) ([]Match, int64, error)
	UpdateMatch(m *Match) error
	DeleteMatch(id uint) error
}

type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) CreateMatch(m *Match) error {
	return r.db.Create(m).Error
}

func (r *matchRepository) GetMatchByID(id uint) (*Match, error) {
	var m Match
	if err := r.db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &m, nil
}

// GetAllMatches retrieves matches with pagination, newest first.
func (r *matchRepository) GetAllMatches(page, limit int) ([]Match, int64, error) {
	var matches []Match
	var totalCount int64

	offset := (page - 1) * limit

	if err := r.db.Model(&Match{}).Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Order("played_at desc").Offset(offset).Limit(limit).Find(&matches).Error; err != nil {
		return nil, 0, err
	}

	return matches, totalCount, nil
}

func (r *matchRepository) UpdateMatch(m *Match) error {
	return r.db.Save(m).Error
}

// DeleteMatch removes a match and everything hanging off it.
func (r *matchRepository) DeleteMatch(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("match_id = ?", id).Delete(&Participation{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("match_id = ?", id).Delete(&Event{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("match_id = ?", id).Delete(&FeeOverride{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&Match{}, id).Error; err != nil {
			return err
		}
		return nil
	})
}
