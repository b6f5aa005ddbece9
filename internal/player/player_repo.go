// player/player_repo.go
package player

import (
	"errors"

	"gorm.io/gorm"
)

// ErrPlayerNotFound is returned when no player exists for the given ID.
var ErrPlayerNotFound = errors.New("player not found")

// PlayerRepository interface defines all database operations for roster management
type PlayerRepository interface {
	CreatePlayer(p *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetAllPlayers(activeOnly bool) ([]Player, error)
	UpdatePlayer(p *Player) error
	DeletePlayer(id uint) error
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(p *Player) error {
	return r.db.Create(p).Error
}

func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var p Player
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetAllPlayers(activeOnly bool) ([]Player, error) {
	var players []Player
	query := r.db.Order("name asc")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	if err := query.Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) UpdatePlayer(p *Player) error {
	return r.db.Save(p).Error
}

func (r *playerRepository) DeletePlayer(id uint) error {
	return r.db.Delete(&Player{}, id).Error
}
