// fee/fee_override.go
package fee

import (
	"errors"
	"fmt"
	"strings"

	"github.com/wbzhu/matchledger/internal/match"
)

const (
	maxNotesLength = 500

	// Sanity ceilings: values beyond these are accepted with a warning.
	sanityFieldFee = 1000
	sanityVideoFee = 100
	sanityLateFee  = 50

	// "Large" thresholds: overrides beyond these should carry a
	// justification of at least minJustificationLen characters.
	largeFieldFee       = 200
	largeVideoFee       = 20
	largeLateFee        = 20
	minJustificationLen = 10
)

// OverrideInput carries the requested override; each component is
// independently optional (nil leaves the calculated value in force).
type OverrideInput struct {
	FieldFee *float64 `json:"field_fee"`
	VideoFee *float64 `json:"video_fee"`
	LateFee  *float64 `json:"late_fee"`
	Notes    string   `json:"notes"`
}

// OverrideResult is the outcome of applying or removing an override.
type OverrideResult struct {
	Breakdown *PlayerFeeBreakdown `json:"breakdown"`
	Warnings  []string            `json:"warnings,omitempty"`
}

// BulkOverrideItem is one entry of a bulk apply request.
type BulkOverrideItem struct {
	PlayerID uint          `json:"player_id" binding:"required"`
	Override OverrideInput `json:"override"`
}

// BulkItemError reports one failed entry of a bulk operation.
type BulkItemError struct {
	PlayerID uint   `json:"player_id"`
	Error    string `json:"error"`
}

// BulkOverrideResult reports a best-effort bulk apply: successes and
// failures side by side, never all-or-nothing.
type BulkOverrideResult struct {
	Applied  []OverrideResult `json:"applied"`
	Errors   []BulkItemError  `json:"errors,omitempty"`
	Warnings []string         `json:"warnings,omitempty"`
}

// CopyResult reports an override copy between matches.
type CopyResult struct {
	Copied          int    `json:"copied"`
	SkippedPlayers  []uint `json:"skipped_players,omitempty"`
	SourceMatchID   uint   `json:"source_match_id"`
	TargetMatchID   uint   `json:"target_match_id"`
}

// OverrideReportEntry is one row of the per-match override report.
type OverrideReportEntry struct {
	PlayerID        uint     `json:"player_id"`
	FieldFee        *float64 `json:"field_fee,omitempty"`
	VideoFee        *float64 `json:"video_fee,omitempty"`
	LateFee         *float64 `json:"late_fee,omitempty"`
	Notes           string   `json:"notes,omitempty"`
	TotalCalculated float64  `json:"total_calculated"`
	TotalFinal      float64  `json:"total_final"`
	Delta           float64  `json:"delta"`
}

// OverrideService validates and applies manual per-component fee
// adjustments. It never mutates calculated fees; the calc service merges
// stored overrides at read time.
type OverrideService struct {
	repo FeeRepository
	calc *Service
}

// NewOverrideService creates a fee override service.
func NewOverrideService(repo FeeRepository, calc *Service) *OverrideService {
	return &OverrideService{repo: repo, calc: calc}
}

// ValidateOverride applies the hard and advisory rules to an override
// request. Hard failures return an error; advisory findings come back as
// warnings and do not block application.
func ValidateOverride(input OverrideInput) ([]string, error) {
	if !hasAnyComponent(input) {
		return nil, errors.New("at least one fee component must be provided")
	}
	if len(input.Notes) > maxNotesLength {
		return nil, fmt.Errorf("notes exceed %d characters", maxNotesLength)
	}

	components := []struct {
		name   string
		value  *float64
		sanity float64
		large  float64
	}{
		{"field_fee", input.FieldFee, sanityFieldFee, largeFieldFee},
		{"video_fee", input.VideoFee, sanityVideoFee, largeVideoFee},
		{"late_fee", input.LateFee, sanityLateFee, largeLateFee},
	}

	var warnings []string
	justified := len(strings.TrimSpace(input.Notes)) >= minJustificationLen
	for _, c := range components {
		if c.value == nil {
			continue
		}
		if *c.value < 0 {
			return nil, fmt.Errorf("negative override value for %s", c.name)
		}
		if *c.value > c.sanity {
			warnings = append(warnings, fmt.Sprintf("%s override %.0f exceeds sanity threshold %.0f", c.name, *c.value, c.sanity))
		}
		if *c.value > c.large && !justified {
			warnings = append(warnings, fmt.Sprintf("%s override %.0f is large but has no justification in notes", c.name, *c.value))
		}
	}

	return warnings, nil
}

// ApplyOverride validates and stores an override for one participant and
// returns the merged breakdown. The player must have a participation
// record in the match.
func (s *OverrideService) ApplyOverride(matchID, playerID uint, input OverrideInput) (*OverrideResult, error) {
	if _, err := s.repo.GetMatchByID(matchID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetParticipation(matchID, playerID); err != nil {
		return nil, err
	}

	warnings, err := ValidateOverride(input)
	if err != nil {
		return nil, err
	}

	override := &match.FeeOverride{
		MatchID:  matchID,
		PlayerID: playerID,
		FieldFee: input.FieldFee,
		VideoFee: input.VideoFee,
		LateFee:  input.LateFee,
		Notes:    input.Notes,
	}
	if err := s.repo.SaveOverride(override); err != nil {
		return nil, err
	}

	breakdown, err := s.calc.GetPlayerFees(matchID, playerID)
	if err != nil {
		return nil, err
	}

	return &OverrideResult{Breakdown: breakdown, Warnings: warnings}, nil
}

// RemoveOverride deletes the override for one participant. A missing
// participation or override is a not-found failure, never silently
// ignored.
func (s *OverrideService) RemoveOverride(matchID, playerID uint) (*OverrideResult, error) {
	if _, err := s.repo.GetMatchByID(matchID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetParticipation(matchID, playerID); err != nil {
		return nil, err
	}

	if err := s.repo.DeleteOverride(matchID, playerID); err != nil {
		return nil, err
	}

	breakdown, err := s.calc.GetPlayerFees(matchID, playerID)
	if err != nil {
		return nil, err
	}

	return &OverrideResult{Breakdown: breakdown}, nil
}

// BulkApplyOverrides applies each item independently: one item's failure
// is reported alongside the others' successes and rolls nothing back.
func (s *OverrideService) BulkApplyOverrides(matchID uint, items []BulkOverrideItem) (*BulkOverrideResult, error) {
	if _, err := s.repo.GetMatchByID(matchID); err != nil {
		return nil, err
	}

	result := &BulkOverrideResult{}
	for _, item := range items {
		res, err := s.ApplyOverride(matchID, item.PlayerID, item.Override)
		if err != nil {
			result.Errors = append(result.Errors, BulkItemError{PlayerID: item.PlayerID, Error: err.Error()})
			continue
		}
		result.Applied = append(result.Applied, *res)
		for _, w := range res.Warnings {
			result.Warnings = append(result.Warnings, fmt.Sprintf("player %d: %s", item.PlayerID, w))
		}
	}
	return result, nil
}

// CopyOverrides copies every override of the source match onto the target
// match. Players without a participation record in the target are skipped
// and reported. Copied notes carry their provenance.
func (s *OverrideService) CopyOverrides(sourceMatchID, targetMatchID uint) (*CopyResult, error) {
	if _, err := s.repo.GetMatchByID(sourceMatchID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetMatchByID(targetMatchID); err != nil {
		return nil, err
	}

	overrides, err := s.repo.GetOverridesByMatch(sourceMatchID)
	if err != nil {
		return nil, err
	}

	result := &CopyResult{SourceMatchID: sourceMatchID, TargetMatchID: targetMatchID}
	for _, src := range overrides {
		if _, err := s.repo.GetParticipation(targetMatchID, src.PlayerID); err != nil {
			if errors.Is(err, ErrParticipationNotFound) {
				result.SkippedPlayers = append(result.SkippedPlayers, src.PlayerID)
				continue
			}
			return nil, err
		}

		notes := strings.TrimSpace(src.Notes)
		tag := fmt.Sprintf("[copied from match %d]", sourceMatchID)
		if notes == "" {
			notes = tag
		} else {
			notes = notes + " " + tag
		}

		copied := &match.FeeOverride{
			MatchID:  targetMatchID,
			PlayerID: src.PlayerID,
			FieldFee: src.FieldFee,
			VideoFee: src.VideoFee,
			LateFee:  src.LateFee,
			Notes:    notes,
		}
		if err := s.repo.SaveOverride(copied); err != nil {
			return nil, err
		}
		result.Copied++
	}

	return result, nil
}

// OverrideReport lists every override of a match with the calculated and
// final totals it affects.
func (s *OverrideService) OverrideReport(matchID uint) ([]OverrideReportEntry, error) {
	if _, err := s.repo.GetMatchByID(matchID); err != nil {
		return nil, err
	}

	overrides, err := s.repo.GetOverridesByMatch(matchID)
	if err != nil {
		return nil, err
	}

	entries := make([]OverrideReportEntry, 0, len(overrides))
	for _, o := range overrides {
		entry := OverrideReportEntry{
			PlayerID: o.PlayerID,
			FieldFee: o.FieldFee,
			VideoFee: o.VideoFee,
			LateFee:  o.LateFee,
			Notes:    o.Notes,
		}

		breakdown, err := s.calc.GetPlayerFees(matchID, o.PlayerID)
		if err != nil {
			if errors.Is(err, ErrParticipationNotFound) {
				// Orphaned override (participation replaced without this
				// player); report it without totals.
				entries = append(entries, entry)
				continue
			}
			return nil, err
		}
		entry.TotalCalculated = breakdown.TotalCalculated
		entry.TotalFinal = breakdown.TotalFinal
		entry.Delta = breakdown.TotalFinal - breakdown.TotalCalculated
		entries = append(entries, entry)
	}

	return entries, nil
}

func hasAnyComponent(input OverrideInput) bool {
	return input.FieldFee != nil || input.VideoFee != nil || input.LateFee != nil
}
