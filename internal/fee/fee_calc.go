// fee/fee_calc.go
package fee

import (
	"math"

	"github.com/wbzhu/matchledger/internal/match"
)

// NominalMatchCapacity is the fixed divisor for the field-cost coefficient:
// 9 structural slots (3 sections x 3 parts) x 10 simultaneous players.
// The coefficient never depends on actual turnout, so the per-unit price
// stays stable for the players who did attend; collected fees may fall
// short of the fixed cost on a thin night, which the club accepts.
const NominalMatchCapacity = 90

// Coefficient derives the per-unit field-cost multiplier from a match's
// fixed costs.
func Coefficient(fieldFeeTotal, waterFeeTotal float64) float64 {
	return (fieldFeeTotal + waterFeeTotal) / NominalMatchCapacity
}

// CalculatedFees is the raw (unrounded, pre-override) output of the fee
// formula for one player.
type CalculatedFees struct {
	NormalPlayerParts      float64 `json:"normal_player_parts"`
	SectionsWithNormalPlay int     `json:"sections_with_normal_play"`
	FieldFee               float64 `json:"field_fee"`
	VideoFee               float64 `json:"video_fee"`
	LateFee                float64 `json:"late_fee"`
	TotalFee               float64 `json:"total_fee"`
}

// CalculateFees evaluates the fee formula for one player's grid.
// Goalkeeper cells are exempt from field-fee allocation: they count
// neither toward NormalPlayerParts nor toward the video-fee sections.
func CalculateFees(grid match.AttendanceGrid, isLateArrival bool, coefficient, lateFeeRate, videoFeeRate float64) CalculatedFees {
	var fees CalculatedFees

	for s := 0; s < match.GridSections; s++ {
		sectionHasNormalPlay := false
		for p := 0; p < match.GridParts; p++ {
			cell := grid[s][p]
			if cell.IsGoalkeeper {
				continue
			}
			fees.NormalPlayerParts += cell.Value
			if cell.Value > 0 {
				sectionHasNormalPlay = true
			}
		}
		if sectionHasNormalPlay {
			fees.SectionsWithNormalPlay++
		}
	}

	fees.FieldFee = fees.NormalPlayerParts * coefficient
	fees.VideoFee = float64(fees.SectionsWithNormalPlay) * videoFeeRate
	if isLateArrival {
		fees.LateFee = lateFeeRate
	}
	fees.TotalFee = fees.FieldFee + fees.VideoFee + fees.LateFee

	return fees
}

// RoundFee rounds a fee to whole currency units. Nearest-integer rounding
// is used uniformly at persistence and response boundaries.
func RoundFee(v float64) float64 {
	return math.Round(v)
}
