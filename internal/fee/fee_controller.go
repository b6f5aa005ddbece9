// fee/fee_controller.go
package fee

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wbzhu/matchledger/internal/match"
	"github.com/wbzhu/matchledger/pkg/utils"
	"github.com/wbzhu/matchledger/pkg/validator"
)

// PreviewInput is the request body for a what-if fee calculation.
type PreviewInput struct {
	PlayerID      uint                 `json:"player_id" binding:"required"`
	Grid          match.AttendanceGrid `json:"grid"`
	IsLateArrival bool                 `json:"is_late_arrival"`
}

// BulkOverrideInput is the request body for a bulk override apply.
type BulkOverrideInput struct {
	Overrides []BulkOverrideItem `json:"overrides" binding:"required,min=1,dive"`
}

// CopyOverridesInput is the request body for copying overrides between matches.
type CopyOverridesInput struct {
	SourceMatchID uint `json:"source_match_id" binding:"required"`
}

// FeeController handles fee breakdown and override HTTP requests
type FeeController struct {
	service   *Service
	overrides *OverrideService
}

// NewFeeController creates a new fee controller
func NewFeeController(service *Service, overrides *OverrideService) *FeeController {
	return &FeeController{service: service, overrides: overrides}
}

// GetMatchFees godoc
// @Summary Get match fee breakdown
// @Description Get the persisted per-player fee breakdown for a match, with overrides merged
// @Tags fees
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} MatchFeeBreakdown "Fee breakdown"
// @Failure 400 {object} utils.ErrorResponse "Invalid match ID"
// @Failure 404 {object} utils.ErrorResponse "Match not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /matches/{match_id}/fees [get]
func (c *FeeController) GetMatchFees(ctx *gin.Context) {
	matchID, ok := parseMatchID(ctx)
	if !ok {
		return
	}

	breakdown, err := c.service.GetMatchFeeBreakdown(matchID)
	if err != nil {
		respondFeeError(ctx, err, "failed to get fee breakdown")
		return
	}

	ctx.JSON(http.StatusOK, breakdown)
}

// RecalculateFees godoc
// @Summary Recalculate match fees
// @Description Recompute every participant's fees from current match costs. Manual overrides are preserved.
// @Tags fees
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} MatchFeeBreakdown "Recalculated fee breakdown"
// @Failure 400 {object} utils.ErrorResponse "Invalid match ID"
// @Failure 404 {object} utils.ErrorResponse "Match not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /matches/{match_id}/fees/recalculate [post]
// @Security Bearer
func (c *FeeController) RecalculateFees(ctx *gin.Context) {
	matchID, ok := parseMatchID(ctx)
	if !ok {
		return
	}

	breakdown, err := c.service.RecalculateAllFees(matchID)
	if err != nil {
		respondFeeError(ctx, err, "failed to recalculate fees")
		return
	}

	ctx.JSON(http.StatusOK, breakdown)
}

// PreviewFees godoc
// @Summary Preview player fees
// @Description Calculate a player's fees for a caller-supplied grid without persisting anything
// @Tags fees
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param preview body PreviewInput true "Grid to evaluate"
// @Success 200 {object} PlayerFeeBreakdown "Calculated fees"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "Match not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /matches/{match_id}/fees/preview [post]
func (c *FeeController) PreviewFees(ctx *gin.Context) {
	matchID, ok := parseMatchID(ctx)
	if !ok {
		return
	}

	var input PreviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ValidationErrorResponse{
			Error:  "invalid preview payload",
			Fields: fieldMap(validator.ParseError(err)),
		})
		return
	}

	breakdown, err := c.service.CalculatePlayerFees(matchID, input.PlayerID, input.Grid, input.IsLateArrival)
	if err != nil {
		respondFeeError(ctx, err, "failed to calculate fees")
		return
	}

	ctx.JSON(http.StatusOK, breakdown)
}

// GetPlayerFees godoc
// @Summary Get player fee breakdown
// @Description Get one participant's fee breakdown computed from their stored grid
// @Tags fees
// @Produce json
// @Param match_id path int true "Match ID"
// @Param player_id path int true "Player ID"
// @Success 200 {object} PlayerFeeBreakdown "Fee breakdown"
// @Failure 400 {object} utils.ErrorResponse "Invalid ID"
// @Failure 404 {object} utils.ErrorResponse "Match or participation not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /matches/{match_id}/fees/players/{player_id} [get]
func (c *FeeController) GetPlayerFees(ctx *gin.Context) {
	matchID, ok := parseMatchID(ctx)
	if !ok {
		return
	}
	playerID, ok := parsePlayerID(ctx)
	if !ok {
		return
	}

	breakdown, err := c.service.GetPlayerFees(matchID, playerID)
	if err != nil {
		respondFeeError(ctx, err, "failed to get player fees")
		return
	}

	ctx.JSON(http.StatusOK, breakdown)
}

// ApplyOverride godoc
// @Summary Apply fee override
// @Description Set manual values for one or more fee components of a participant. Omitted components keep their calculated values.
// @Tags fees
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param player_id path int true "Player ID"
// @Param override body OverrideInput true "Override values"
// @Success 200 {object} OverrideResult "Override applied"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "Match or participation not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /matches/{match_id}/fees/players/{player_id}/override [put]
// @Security Bearer
func (c *FeeController) ApplyOverride(ctx *gin.Context) {
	matchID, ok := parseMatchID(ctx)
	if !ok {
		return
	}
	playerID, ok := parsePlayerID(ctx)
	if !ok {
		return
	}

	var input OverrideInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ValidationErrorResponse{
			Error:  "invalid override payload",
			Fields: fieldMap(validator.ParseError(err)),
		})
		return
	}

	result, err := c.overrides.ApplyOverride(matchID, playerID, input)
	if err != nil {
		respondOverrideError(ctx, err, "failed to apply override")
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// RemoveOverride godoc
// @Summary Remove fee override
// @Description Remove the manual override for a participant; calculated fees apply again
// @Tags fees
// @Produce json
// @Param match_id path int true "Match ID"
// @Param player_id path int true "Player ID"
// @Success 200 {object} OverrideResult "Override removed"
// @Failure 400 {object} utils.ErrorResponse "Invalid ID"
// @Failure 404 {object} utils.ErrorResponse "Match, participation or override not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /matches/{match_id}/fees/players/{player_id}/override [delete]
// @Security Bearer
func (c *FeeController) RemoveOverride(ctx *gin.Context) {
	matchID, ok := parseMatchID(ctx)
	if !ok {
		return
	}
	playerID, ok := parsePlayerID(ctx)
	if !ok {
		return
	}

	result, err := c.overrides.RemoveOverride(matchID, playerID)
	if err != nil {
		respondOverrideError(ctx, err, "failed to remove override")
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// BulkApplyOverrides godoc
// @Summary Bulk apply fee overrides
// @Description Apply overrides for multiple players in one request. Each item is applied independently; failures are reported per item.
// @Tags fees
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param overrides body BulkOverrideInput true "Overrides to apply"
// @Success 200 {object} BulkOverrideResult "Per-item results"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "Match not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /matches/{match_id}/fees/overrides/bulk [post]
// @Security Bearer
func (c *FeeController) BulkApplyOverrides(ctx *gin.Context) {
	matchID, ok := parseMatchID(ctx)
	if !ok {
		return
	}

	var input BulkOverrideInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ValidationErrorResponse{
			Error:  "invalid bulk override payload",
			Fields: fieldMap(validator.ParseError(err)),
		})
		return
	}

	result, err := c.overrides.BulkApplyOverrides(matchID, input.Overrides)
	if err != nil {
		respondFeeError(ctx, err, "failed to apply overrides")
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetOverrideReport godoc
// @Summary Get override report
// @Description List every manual override of a match with its effect on totals
// @Tags fees
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {array} OverrideReportEntry "Overrides"
// @Failure 400 {object} utils.ErrorResponse "Invalid match ID"
// @Failure 404 {object} utils.ErrorResponse "Match not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /matches/{match_id}/fees/overrides [get]
func (c *FeeController) GetOverrideReport(ctx *gin.Context) {
	matchID, ok := parseMatchID(ctx)
	if !ok {
		return
	}

	entries, err := c.overrides.OverrideReport(matchID)
	if err != nil {
		respondFeeError(ctx, err, "failed to get override report")
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// CopyOverrides godoc
// @Summary Copy overrides from another match
// @Description Copy every override of the source match onto this match. Players without a participation here are skipped and reported.
// @Tags fees
// @Accept json
// @Produce json
// @Param match_id path int true "Target match ID"
// @Param source body CopyOverridesInput true "Source match"
// @Success 200 {object} CopyResult "Copy summary"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "Match not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /matches/{match_id}/fees/overrides/copy [post]
// @Security Bearer
func (c *FeeController) CopyOverrides(ctx *gin.Context) {
	matchID, ok := parseMatchID(ctx)
	if !ok {
		return
	}

	var input CopyOverridesInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ValidationErrorResponse{
			Error:  "invalid copy payload",
			Fields: fieldMap(validator.ParseError(err)),
		})
		return
	}

	result, err := c.overrides.CopyOverrides(input.SourceMatchID, matchID)
	if err != nil {
		respondFeeError(ctx, err, "failed to copy overrides")
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func parseMatchID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("match_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid match ID"})
		return 0, false
	}
	return uint(id), true
}

func parsePlayerID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("player_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "invalid player ID"})
		return 0, false
	}
	return uint(id), true
}

func respondFeeError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, match.ErrMatchNotFound):
		ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "match not found"})
	case errors.Is(err, ErrParticipationNotFound):
		ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "participation not found"})
	default:
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: message + ": " + err.Error()})
	}
}

func respondOverrideError(ctx *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, match.ErrMatchNotFound):
		ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "match not found"})
	case errors.Is(err, ErrParticipationNotFound):
		ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "participation not found"})
	case errors.Is(err, ErrOverrideNotFound):
		ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "fee override not found"})
	default:
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: message + ": " + err.Error()})
	}
}

func fieldMap(in map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
