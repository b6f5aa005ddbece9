// player/player_controller.go
package player

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wbzhu/matchledger/pkg/utils"
)

// PlayerInput is the request body for creating or updating a player.
type PlayerInput struct {
	Name        string `json:"name" binding:"required"`
	Nickname    string `json:"nickname"`
	ShirtNumber *int   `json:"shirt_number"`
	Active      *bool  `json:"active"`
}

// PlayerController handles roster HTTP requests
type PlayerController struct {
	repo PlayerRepository
}

// NewPlayerController creates a new player controller
func NewPlayerController(repo PlayerRepository) *PlayerController {
	return &PlayerController{repo: repo}
}

// CreatePlayer godoc
// @Summary Create a new player
// @Tags players
// @Accept json
// @Produce json
// @Param player body PlayerInput true "Player information"
// @Success 201 {object} Player "Player created successfully"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /players [post]
// @Security Bearer
func (c *PlayerController) CreatePlayer(ctx *gin.Context) {
	var input PlayerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	p := &Player{
		Name:        input.Name,
		Nickname:    input.Nickname,
		ShirtNumber: input.ShirtNumber,
		Active:      active,
	}

	if err := c.repo.CreatePlayer(p); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create player: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, p)
}

// GetPlayerByID godoc
// @Summary Get player by ID
// @Tags players
// @Produce json
// @Param player_id path int true "Player ID"
// @Success 200 {object} Player "Player details"
// @Failure 400 {object} utils.ErrorResponse "Invalid player ID"
// @Failure 404 {object} utils.ErrorResponse "Player not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /players/{player_id} [get]
func (c *PlayerController) GetPlayerByID(ctx *gin.Context) {
	playerID, err := strconv.ParseUint(ctx.Param("player_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid player ID"})
		return
	}

	p, err := c.repo.GetPlayerByID(uint(playerID))
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "player not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get player: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// GetAllPlayers godoc
// @Summary List players
// @Tags players
// @Produce json
// @Param active query boolean false "Only active players"
// @Success 200 {array} Player "List of players"
// @Failure 400 {object} utils.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /players [get]
func (c *PlayerController) GetAllPlayers(ctx *gin.Context) {
	activeOnly := false
	if activeStr := ctx.Query("active"); activeStr != "" {
		var err error
		activeOnly, err = strconv.ParseBool(activeStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid active parameter"})
			return
		}
	}

	players, err := c.repo.GetAllPlayers(activeOnly)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get players: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, players)
}

// UpdatePlayer godoc
// @Summary Update player
// @Tags players
// @Accept json
// @Produce json
// @Param player_id path int true "Player ID"
// @Param player body PlayerInput true "Updated player information"
// @Success 200 {object} Player "Player updated successfully"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "Player not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /players/{player_id} [put]
// @Security Bearer
func (c *PlayerController) UpdatePlayer(ctx *gin.Context) {
	playerID, err := strconv.ParseUint(ctx.Param("player_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid player ID"})
		return
	}

	var input PlayerInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := c.repo.GetPlayerByID(uint(playerID))
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "player not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get player: " + err.Error()})
		}
		return
	}

	p.Name = input.Name
	p.Nickname = input.Nickname
	p.ShirtNumber = input.ShirtNumber
	if input.Active != nil {
		p.Active = *input.Active
	}

	if err := c.repo.UpdatePlayer(p); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update player: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// DeletePlayer godoc
// @Summary Delete player
// @Tags players
// @Produce json
// @Param player_id path int true "Player ID"
// @Success 200 {object} utils.SuccessResponse "Player deleted successfully"
// @Failure 400 {object} utils.ErrorResponse "Invalid player ID"
// @Failure 404 {object} utils.ErrorResponse "Player not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /players/{player_id} [delete]
// @Security Bearer
func (c *PlayerController) DeletePlayer(ctx *gin.Context) {
	playerID, err := strconv.ParseUint(ctx.Param("player_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid player ID"})
		return
	}

	if _, err := c.repo.GetPlayerByID(uint(playerID)); err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "player not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get player: " + err.Error()})
		}
		return
	}

	if err := c.repo.DeletePlayer(uint(playerID)); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete player: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, utils.SuccessResponse{Message: "player deleted successfully"})
}
