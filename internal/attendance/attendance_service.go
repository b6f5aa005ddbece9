// attendance/attendance_service.go
package attendance

import (
	"github.com/wbzhu/matchledger/internal/fee"
	"github.com/wbzhu/matchledger/internal/match"
)

// SaveInput is the full attendance submission for one match. Entries are
// taken in submission order, which decides goalkeeper conflict winners.
type SaveInput struct {
	Entries           []PlayerAttendance `json:"entries" binding:"required"`
	SelectedPlayerIDs []uint             `json:"selected_player_ids,omitempty"`
}

// SaveResult summarizes a persisted attendance save.
type SaveResult struct {
	MatchID             uint       `json:"match_id"`
	ParticipationsCount int        `json:"participations_count"`
	EventsCount         int        `json:"events_count"`
	FeeCoefficient      float64    `json:"fee_coefficient"`
	ConflictsResolved   int        `json:"conflicts_resolved"`
	Conflicts           []Conflict `json:"conflicts,omitempty"`
	Warnings            []string   `json:"warnings,omitempty"`
}

// PlayerEventSummary aggregates one player's recorded events in a match.
type PlayerEventSummary struct {
	PlayerID uint                    `json:"player_id"`
	Counts   map[match.EventType]int `json:"counts"`
	Events   []match.Event           `json:"events"`
}

// MatchAttendance is the stored attendance picture of a match.
type MatchAttendance struct {
	MatchID         uint                  `json:"match_id"`
	Participations  []match.Participation `json:"participations"`
	EventSummaries  []PlayerEventSummary  `json:"event_summaries,omitempty"`
	TotalParts      float64               `json:"total_parts"`
	TotalEvents     int                   `json:"total_events"`
	PlayerCount     int                   `json:"player_count"`
	LateArrivalsIDs []uint                `json:"late_arrival_player_ids,omitempty"`
}

// Service validates, resolves and persists attendance submissions, and
// computes the fees that get stored alongside each participation.
type Service struct {
	repo      AttendanceRepository
	matchRepo match.MatchRepository
	feeSvc    *fee.Service
}

// NewService creates an attendance service.
func NewService(repo AttendanceRepository, matchRepo match.MatchRepository, feeSvc *fee.Service) *Service {
	return &Service{repo: repo, matchRepo: matchRepo, feeSvc: feeSvc}
}

// ValidateOnly runs validation and conflict resolution without touching
// the database.
func (s *Service) ValidateOnly(matchID uint, input SaveInput) (*ValidationResult, error) {
	if _, err := s.matchRepo.GetMatchByID(matchID); err != nil {
		return nil, err
	}
	result := ValidateAttendance(input.Entries, input.SelectedPlayerIDs)
	return &result, nil
}

// SaveAttendance validates the submission, resolves goalkeeper conflicts,
// computes each participant's fees from the resolved grids, and replaces
// the match's participations and events in one transaction. Any hard
// validation error aborts before anything is persisted; existing data
// stays intact.
func (s *Service) SaveAttendance(matchID uint, input SaveInput) (*SaveResult, error) {
	m, err := s.matchRepo.GetMatchByID(matchID)
	if err != nil {
		return nil, err
	}

	validation := ValidateAttendance(input.Entries, input.SelectedPlayerIDs)
	if !validation.IsValid {
		return nil, &ValidationError{Errors: validation.Errors}
	}

	parts := make([]match.Participation, 0, len(validation.Resolved))
	events := make([]match.Event, 0)
	for _, entry := range validation.Resolved {
		fees := s.feeSvc.BaseFees(m, entry.Grid, entry.IsLateArrival)

		p := match.Participation{
			MatchID:            matchID,
			PlayerID:           entry.PlayerID,
			Grid:               entry.Grid,
			IsLateArrival:      entry.IsLateArrival,
			TotalParts:         entry.Grid.TotalParts(),
			FieldFeeCalculated: fee.RoundFee(fees.FieldFee),
			VideoFee:           fee.RoundFee(fees.VideoFee),
			LateFee:            fee.RoundFee(fees.LateFee),
		}
		p.TotalFeeCalculated = p.FieldFeeCalculated + p.VideoFee + p.LateFee
		parts = append(parts, p)

		for _, ev := range entry.Events {
			events = append(events, match.Event{
				MatchID:   matchID,
				PlayerID:  entry.PlayerID,
				EventType: ev.EventType,
				Minute:    ev.Minute,
			})
		}
	}

	if err := s.repo.ReplaceMatchData(matchID, parts, events); err != nil {
		return nil, err
	}

	return &SaveResult{
		MatchID:             matchID,
		ParticipationsCount: len(parts),
		EventsCount:         len(events),
		FeeCoefficient:      fee.Coefficient(m.FieldFeeTotal, m.WaterFeeTotal),
		ConflictsResolved:   len(validation.Conflicts),
		Conflicts:           validation.Conflicts,
		Warnings:            validation.Warnings,
	}, nil
}

// GetMatchAttendance returns the stored grids, per-player event summaries
// and aggregate totals for a match.
func (s *Service) GetMatchAttendance(matchID uint) (*MatchAttendance, error) {
	if _, err := s.matchRepo.GetMatchByID(matchID); err != nil {
		return nil, err
	}

	parts, err := s.repo.GetParticipationsByMatch(matchID)
	if err != nil {
		return nil, err
	}
	events, err := s.repo.GetEventsByMatch(matchID)
	if err != nil {
		return nil, err
	}

	result := &MatchAttendance{
		MatchID:        matchID,
		Participations: parts,
		TotalEvents:    len(events),
		PlayerCount:    len(parts),
	}
	for _, p := range parts {
		result.TotalParts += p.TotalParts
		if p.IsLateArrival {
			result.LateArrivalsIDs = append(result.LateArrivalsIDs, p.PlayerID)
		}
	}

	byPlayer := make(map[uint]*PlayerEventSummary)
	var order []uint
	for _, ev := range events {
		summary, ok := byPlayer[ev.PlayerID]
		if !ok {
			summary = &PlayerEventSummary{
				PlayerID: ev.PlayerID,
				Counts:   make(map[match.EventType]int),
			}
			byPlayer[ev.PlayerID] = summary
			order = append(order, ev.PlayerID)
		}
		summary.Counts[ev.EventType]++
		summary.Events = append(summary.Events, ev)
	}
	for _, id := range order {
		result.EventSummaries = append(result.EventSummaries, *byPlayer[id])
	}

	return result, nil
}
