// match/match_controller.go
package match

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wbzhu/matchledger/pkg/utils"
	"github.com/wbzhu/matchledger/pkg/validator"
)

// MatchInput is the request body for creating or updating a match.
type MatchInput struct {
	Title         string    `json:"title" binding:"required"`
	PlayedAt      time.Time `json:"played_at" binding:"required"`
	Location      string    `json:"location"`
	FieldFeeTotal float64   `json:"field_fee_total" binding:"min=0"`
	WaterFeeTotal float64   `json:"water_fee_total" binding:"min=0"`
	LateFeeRate   float64   `json:"late_fee_rate" binding:"min=0"`
	VideoFeeRate  float64   `json:"video_fee_rate" binding:"min=0"`
	Notes         string    `json:"notes"`
}

// PaginationInput represents common pagination parameters
type PaginationInput struct {
	Page  int `form:"page,default=1" binding:"min=1"`
	Limit int `form:"limit,default=10" binding:"min=1,max=100"`
}

// MatchController handles match-related HTTP requests
type MatchController struct {
	repo MatchRepository
	// recalcFees recomputes a match's fee allocation; wired in by routes
	// to avoid importing the fee package from here.
	recalcFees func(matchID uint) error
}

// NewMatchController creates a new match controller
func NewMatchController(repo MatchRepository, recalcFees func(matchID uint) error) *MatchController {
	return &MatchController{repo: repo, recalcFees: recalcFees}
}

// CreateMatch godoc
// @Summary Create a new match
// @Description Create a match with its fixed shared costs
// @Tags matches
// @Accept json
// @Produce json
// @Param match body MatchInput true "Match information"
// @Success 201 {object} Match "Match created successfully"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /matches [post]
// @Security Bearer
func (c *MatchController) CreateMatch(ctx *gin.Context) {
	var input MatchInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ValidationErrorResponse{
			Error:  "invalid match payload",
			Fields: toFieldMap(validator.ParseError(err)),
		})
		return
	}

	m := &Match{
		Title:         input.Title,
		PlayedAt:      input.PlayedAt,
		Location:      input.Location,
		FieldFeeTotal: input.FieldFeeTotal,
		WaterFeeTotal: input.WaterFeeTotal,
		LateFeeRate:   input.LateFeeRate,
		VideoFeeRate:  input.VideoFeeRate,
		Notes:         input.Notes,
	}

	if err := c.repo.CreateMatch(m); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to create match: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, m)
}

// GetMatchByID godoc
// @Summary Get match by ID
// @Description Get a match and its cost configuration
// @Tags matches
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} Match "Match details"
// @Failure 400 {object} utils.ErrorResponse "Invalid match ID"
// @Failure 404 {object} utils.ErrorResponse "Match not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /matches/{match_id} [get]
func (c *MatchController) GetMatchByID(ctx *gin.Context) {
	matchID, err := strconv.ParseUint(ctx.Param("match_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid match ID"})
		return
	}

	m, err := c.repo.GetMatchByID(uint(matchID))
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "match not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get match: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, m)
}

// GetAllMatches godoc
// @Summary List matches
// @Description Get a paginated list of matches, newest first
// @Tags matches
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Number of items per page (default: 10, max: 100)"
// @Success 200 {object} utils.PaginatedResponse{data=[]Match} "List of matches"
// @Failure 400 {object} utils.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /matches [get]
func (c *MatchController) GetAllMatches(ctx *gin.Context) {
	var pagination PaginationInput
	if err := ctx.ShouldBindQuery(&pagination); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	matches, totalCount, err := c.repo.GetAllMatches(pagination.Page, pagination.Limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get matches: " + err.Error()})
		return
	}

	utils.PaginatedJSON(ctx, matches, pagination.Page, pagination.Limit, totalCount)
}

// UpdateMatch godoc
// @Summary Update match
// @Description Update a match. Changing field or water cost totals triggers a fee recalculation for every participant; manual overrides are preserved.
// @Tags matches
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param match body MatchInput true "Updated match information"
// @Success 200 {object} Match "Match updated successfully"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "Match not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /matches/{match_id} [put]
// @Security Bearer
func (c *MatchController) UpdateMatch(ctx *gin.Context) {
	matchID, err := strconv.ParseUint(ctx.Param("match_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid match ID"})
		return
	}

	var input MatchInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ValidationErrorResponse{
			Error:  "invalid match payload",
			Fields: toFieldMap(validator.ParseError(err)),
		})
		return
	}

	m, err := c.repo.GetMatchByID(uint(matchID))
	if err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "match not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get match: " + err.Error()})
		}
		return
	}

	costsChanged := m.FieldFeeTotal != input.FieldFeeTotal ||
		m.WaterFeeTotal != input.WaterFeeTotal ||
		m.LateFeeRate != input.LateFeeRate ||
		m.VideoFeeRate != input.VideoFeeRate

	m.Title = input.Title
	m.PlayedAt = input.PlayedAt
	m.Location = input.Location
	m.FieldFeeTotal = input.FieldFeeTotal
	m.WaterFeeTotal = input.WaterFeeTotal
	m.LateFeeRate = input.LateFeeRate
	m.VideoFeeRate = input.VideoFeeRate
	m.Notes = input.Notes

	if err := c.repo.UpdateMatch(m); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to update match: " + err.Error()})
		return
	}

	if costsChanged && c.recalcFees != nil {
		if err := c.recalcFees(m.ID); err != nil {
			// The match row is already saved; a failed recalculation leaves
			// stale calculated fees, which the next recalculation fixes.
			log.Printf("fee recalculation after cost change failed for match %d: %v", m.ID, err)
		}
	}

	ctx.JSON(http.StatusOK, m)
}

// DeleteMatch godoc
// @Summary Delete match
// @Description Delete a match together with its participations, events and fee overrides
// @Tags matches
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} utils.SuccessResponse "Match deleted successfully"
// @Failure 400 {object} utils.ErrorResponse "Invalid match ID"
// @Failure 404 {object} utils.ErrorResponse "Match not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /matches/{match_id} [delete]
// @Security Bearer
func (c *MatchController) DeleteMatch(ctx *gin.Context) {
	matchID, err := strconv.ParseUint(ctx.Param("match_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid match ID"})
		return
	}

	if _, err := c.repo.GetMatchByID(uint(matchID)); err != nil {
		if errors.Is(err, ErrMatchNotFound) {
			ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "match not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get match: " + err.Error()})
		}
		return
	}

	if err := c.repo.DeleteMatch(uint(matchID)); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to delete match: " + err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, utils.SuccessResponse{Message: "match deleted successfully"})
}

func toFieldMap(in map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
