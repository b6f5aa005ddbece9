// fee/fee_service.go
package fee

import (
	"errors"

	"github.com/wbzhu/matchledger/config"
	"github.com/wbzhu/matchledger/internal/match"
)

// Service computes and recalculates per-player and match-wide fee
// breakdowns. Base fees are always derived from the formula; stored
// overrides are merged on top and never recomputed or cleared here.
type Service struct {
	repo  FeeRepository
	rates *config.RateProvider
}

// NewService creates a fee calculation service.
func NewService(repo FeeRepository, rates *config.RateProvider) *Service {
	return &Service{repo: repo, rates: rates}
}

// EffectiveRates resolves the late/video rates for a match: a non-zero
// per-match rate wins over the club defaults from the provider.
func (s *Service) EffectiveRates(m *match.Match) (lateFeeRate, videoFeeRate float64) {
	defaults := s.rates.Current()
	lateFeeRate = defaults.LateFeeRate
	videoFeeRate = defaults.VideoFeeRate
	if m.LateFeeRate > 0 {
		lateFeeRate = m.LateFeeRate
	}
	if m.VideoFeeRate > 0 {
		videoFeeRate = m.VideoFeeRate
	}
	return lateFeeRate, videoFeeRate
}

// BaseFees runs the fee formula for one grid against a match's current
// costs and rates. Pure computation, no persistence.
func (s *Service) BaseFees(m *match.Match, grid match.AttendanceGrid, isLateArrival bool) CalculatedFees {
	lateRate, videoRate := s.EffectiveRates(m)
	coeff := Coefficient(m.FieldFeeTotal, m.WaterFeeTotal)
	return CalculateFees(grid, isLateArrival, coeff, lateRate, videoRate)
}

// CalculatePlayerFees computes one player's fees from a caller-supplied
// grid against current match costs, merged with any stored override.
// Read-only: nothing is persisted.
func (s *Service) CalculatePlayerFees(matchID, playerID uint, grid match.AttendanceGrid, isLateArrival bool) (*PlayerFeeBreakdown, error) {
	m, err := s.repo.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}

	fees := s.BaseFees(m, grid, isLateArrival)

	override, err := s.repo.GetOverride(matchID, playerID)
	if err != nil && !errors.Is(err, ErrOverrideNotFound) {
		return nil, err
	}

	b := mergeBreakdown(matchID, playerID, fees, isLateArrival, override)
	return &b, nil
}

// GetPlayerFees recomputes one participant's fees from their stored grid
// and merges the stored override. Missing match or participation is a
// not-found failure; nothing is persisted.
func (s *Service) GetPlayerFees(matchID, playerID uint) (*PlayerFeeBreakdown, error) {
	p, err := s.repo.GetParticipation(matchID, playerID)
	if err != nil {
		return nil, err
	}
	return s.CalculatePlayerFees(matchID, playerID, p.Grid, p.IsLateArrival)
}

// RecalculateAllFees recomputes the coefficient and every participant's
// base fees, persists the updated calculated components back onto each
// participation row, and re-merges stored overrides. Overrides are never
// touched: an override survives base-fee changes by construction.
func (s *Service) RecalculateAllFees(matchID uint) (*MatchFeeBreakdown, error) {
	m, err := s.repo.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}

	parts, err := s.repo.GetParticipationsByMatch(matchID)
	if err != nil {
		return nil, err
	}

	overrides, err := s.overridesByPlayer(matchID)
	if err != nil {
		return nil, err
	}

	breakdown := &MatchFeeBreakdown{
		MatchID:        matchID,
		FeeCoefficient: Coefficient(m.FieldFeeTotal, m.WaterFeeTotal),
		Players:        make([]PlayerFeeBreakdown, 0, len(parts)),
	}

	for i := range parts {
		p := &parts[i]
		fees := s.BaseFees(m, p.Grid, p.IsLateArrival)

		p.FieldFeeCalculated = RoundFee(fees.FieldFee)
		p.VideoFee = RoundFee(fees.VideoFee)
		p.LateFee = RoundFee(fees.LateFee)
		p.TotalFeeCalculated = p.FieldFeeCalculated + p.VideoFee + p.LateFee
		if err := s.repo.UpdateParticipationFees(p); err != nil {
			return nil, err
		}

		b := mergeBreakdown(matchID, p.PlayerID, fees, p.IsLateArrival, overrides[p.PlayerID])
		breakdown.Players = append(breakdown.Players, b)
		breakdown.TotalCalculatedFees += b.TotalCalculated
		breakdown.TotalFinalFees += b.TotalFinal
	}

	return breakdown, nil
}

// GetMatchFeeBreakdown assembles the match-wide view purely from persisted
// calculated and override values; no recomputation happens here.
func (s *Service) GetMatchFeeBreakdown(matchID uint) (*MatchFeeBreakdown, error) {
	m, err := s.repo.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}

	parts, err := s.repo.GetParticipationsByMatch(matchID)
	if err != nil {
		return nil, err
	}

	overrides, err := s.overridesByPlayer(matchID)
	if err != nil {
		return nil, err
	}

	breakdown := &MatchFeeBreakdown{
		MatchID:        matchID,
		FeeCoefficient: Coefficient(m.FieldFeeTotal, m.WaterFeeTotal),
		Players:        make([]PlayerFeeBreakdown, 0, len(parts)),
	}

	for i := range parts {
		p := &parts[i]
		b := PlayerFeeBreakdown{
			MatchID:       matchID,
			PlayerID:      p.PlayerID,
			IsLateArrival: p.IsLateArrival,
		}

		var fieldOv, videoOv, lateOv *float64
		if o := overrides[p.PlayerID]; o != nil {
			fieldOv, videoOv, lateOv = o.FieldFee, o.VideoFee, o.LateFee
			b.HasOverride = o.HasAnyComponent()
			b.OverrideNotes = o.Notes
		}

		b.FieldFee = mergeComponent(p.FieldFeeCalculated, fieldOv)
		b.VideoFee = mergeComponent(p.VideoFee, videoOv)
		b.LateFee = mergeComponent(p.LateFee, lateOv)
		b.TotalCalculated = b.FieldFee.Calculated + b.VideoFee.Calculated + b.LateFee.Calculated
		b.TotalFinal = b.FieldFee.Final + b.VideoFee.Final + b.LateFee.Final

		breakdown.Players = append(breakdown.Players, b)
		breakdown.TotalCalculatedFees += b.TotalCalculated
		breakdown.TotalFinalFees += b.TotalFinal
	}

	return breakdown, nil
}

func (s *Service) overridesByPlayer(matchID uint) (map[uint]*match.FeeOverride, error) {
	overrides, err := s.repo.GetOverridesByMatch(matchID)
	if err != nil {
		return nil, err
	}
	byPlayer := make(map[uint]*match.FeeOverride, len(overrides))
	for i := range overrides {
		byPlayer[overrides[i].PlayerID] = &overrides[i]
	}
	return byPlayer, nil
}
