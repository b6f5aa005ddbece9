// attendance/attendance_controller.go
package attendance

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wbzhu/matchledger/internal/match"
	"github.com/wbzhu/matchledger/pkg/utils"
	"github.com/wbzhu/matchledger/pkg/validator"
)

// AttendanceController handles attendance HTTP requests
type AttendanceController struct {
	service *Service
}

// NewAttendanceController creates a new attendance controller
func NewAttendanceController(service *Service) *AttendanceController {
	return &AttendanceController{service: service}
}

// SaveAttendance godoc
// @Summary Save match attendance
// @Description Replace a match's full attendance: validates the grids, resolves goalkeeper conflicts (last submission wins), computes fees and persists everything atomically
// @Tags attendance
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param attendance body SaveInput true "Attendance entries in submission order"
// @Success 200 {object} SaveResult "Attendance saved"
// @Failure 400 {object} utils.ValidationErrorResponse "Validation failed"
// @Failure 404 {object} utils.ErrorResponse "Match not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /matches/{match_id}/attendance [put]
// @Security Bearer
func (c *AttendanceController) SaveAttendance(ctx *gin.Context) {
	matchID, ok := parseMatchID(ctx)
	if !ok {
		return
	}

	var input SaveInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ValidationErrorResponse{
			Error:  "invalid attendance payload",
			Fields: fieldMap(validator.ParseError(err)),
		})
		return
	}

	result, err := c.service.SaveAttendance(matchID, input)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			ctx.JSON(http.StatusBadRequest, utils.ValidationErrorResponse{
				Error:  "attendance validation failed",
				Fields: map[string]interface{}{"errors": vErr.Errors},
			})
		case errors.Is(err, match.ErrMatchNotFound):
			ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "match not found"})
		default:
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to save attendance: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// ValidateAttendance godoc
// @Summary Validate match attendance
// @Description Dry-run validation of an attendance submission, including goalkeeper conflict resolution; nothing is persisted
// @Tags attendance
// @Accept json
// @Produce json
// @Param match_id path int true "Match ID"
// @Param attendance body SaveInput true "Attendance entries in submission order"
// @Success 200 {object} ValidationResult "Validation outcome"
// @Failure 400 {object} utils.ErrorResponse "Invalid input"
// @Failure 404 {object} utils.ErrorResponse "Match not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /matches/{match_id}/attendance/validate [post]
func (c *AttendanceController) ValidateAttendance(ctx *gin.Context) {
	matchID, ok := parseMatchID(ctx)
	if !ok {
		return
	}

	var input SaveInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ValidationErrorResponse{
			Error:  "invalid attendance payload",
			Fields: fieldMap(validator.ParseError(err)),
		})
		return
	}

	result, err := c.service.ValidateOnly(matchID, input)
	if err != nil {
		if errors.Is(err, match.ErrMatchNotFound) {
			ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "match not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to validate attendance: " + err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetAttendance godoc
// @Summary Get match attendance
// @Description Get the stored grids, event summaries and totals for a match
// @Tags attendance
// @Produce json
// @Param match_id path int true "Match ID"
// @Success 200 {object} MatchAttendance "Stored attendance"
// @Failure 400 {object} utils.ErrorResponse "Invalid match ID"
// @Failure 404 {object} utils.ErrorResponse "Match not found"
// @Failure 500 {object} utils.ErrorResponse "Internal server error"
// @Router /matches/{match_id}/attendance [get]
func (c *AttendanceController) GetAttendance(ctx *gin.Context) {
	matchID, ok := parseMatchID(ctx)
	if !ok {
		return
	}

	result, err := c.service.GetMatchAttendance(matchID)
	if err != nil {
		if errors.Is(err, match.ErrMatchNotFound) {
			ctx.JSON(http.StatusNotFound, utils.ErrorResponse{Error: "match not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to get attendance: " + err.Error()})
		}
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

func fieldMap(in map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
