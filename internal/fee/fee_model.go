// fee/fee_model.go
package fee

import (
	"github.com/wbzhu/matchledger/internal/match"
)

// FeeComponent is one fee line after override merging. All values are in
// whole currency units. Override is nil when the calculated value applies.
type FeeComponent struct {
	Calculated float64  `json:"calculated"`
	Override   *float64 `json:"override,omitempty"`
	Final      float64  `json:"final"`
}

// PlayerFeeBreakdown is the full fee picture for one player in one match.
type PlayerFeeBreakdown struct {
	MatchID                uint         `json:"match_id"`
	PlayerID               uint         `json:"player_id"`
	NormalPlayerParts      float64      `json:"normal_player_parts"`
	SectionsWithNormalPlay int          `json:"sections_with_normal_play"`
	IsLateArrival          bool         `json:"is_late_arrival"`
	FieldFee               FeeComponent `json:"field_fee"`
	VideoFee               FeeComponent `json:"video_fee"`
	LateFee                FeeComponent `json:"late_fee"`
	TotalCalculated        float64      `json:"total_calculated"`
	TotalFinal             float64      `json:"total_final"`
	HasOverride            bool         `json:"has_override"`
	OverrideNotes          string       `json:"override_notes,omitempty"`
}

// MatchFeeBreakdown aggregates every participant's fees for one match.
type MatchFeeBreakdown struct {
	MatchID             uint                 `json:"match_id"`
	FeeCoefficient      float64              `json:"fee_coefficient"`
	TotalCalculatedFees float64              `json:"total_calculated_fees"`
	TotalFinalFees      float64              `json:"total_final_fees"`
	Players             []PlayerFeeBreakdown `json:"players"`
}

// mergeComponent applies the override-wins rule for one component.
// Both sides are rounded to whole currency units.
func mergeComponent(calculated float64, override *float64) FeeComponent {
	c := FeeComponent{Calculated: RoundFee(calculated)}
	c.Final = c.Calculated
	if override != nil {
		v := RoundFee(*override)
		c.Override = &v
		c.Final = v
	}
	return c
}

// mergeBreakdown combines freshly calculated fees with a stored override
// (which may be nil) into the response breakdown.
func mergeBreakdown(matchID, playerID uint, fees CalculatedFees, isLateArrival bool, override *match.FeeOverride) PlayerFeeBreakdown {
	b := PlayerFeeBreakdown{
		MatchID:                matchID,
		PlayerID:               playerID,
		NormalPlayerParts:      fees.NormalPlayerParts,
		SectionsWithNormalPlay: fees.SectionsWithNormalPlay,
		IsLateArrival:          isLateArrival,
	}

	var fieldOv, videoOv, lateOv *float64
	if override != nil {
		fieldOv, videoOv, lateOv = override.FieldFee, override.VideoFee, override.LateFee
		b.HasOverride = override.HasAnyComponent()
		b.OverrideNotes = override.Notes
	}

	b.FieldFee = mergeComponent(fees.FieldFee, fieldOv)
	b.VideoFee = mergeComponent(fees.VideoFee, videoOv)
	b.LateFee = mergeComponent(fees.LateFee, lateOv)
	b.TotalCalculated = b.FieldFee.Calculated + b.VideoFee.Calculated + b.LateFee.Calculated
	b.TotalFinal = b.FieldFee.Final + b.VideoFee.Final + b.LateFee.Final

	return b
}
