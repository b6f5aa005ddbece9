// attendance/attendance_validator.go
package attendance

import (
	"fmt"
	"strings"

	"github.com/wbzhu/matchledger/internal/match"
)

// PlayerAttendance is one player's submitted grid for a match, plus their
// late-arrival flag and recorded events.
type PlayerAttendance struct {
	PlayerID      uint                 `json:"player_id" binding:"required"`
	Grid          match.AttendanceGrid `json:"grid"`
	IsLateArrival bool                 `json:"is_late_arrival"`
	Events        []EventInput         `json:"events,omitempty"`
}

// EventInput is one recorded match event in the attendance submission.
type EventInput struct {
	EventType match.EventType `json:"event_type" binding:"required"`
	Minute    *int            `json:"minute,omitempty"`
}

// Conflict records one goalkeeper clash and how it was resolved.
type Conflict struct {
	Section        int    `json:"section"`
	Part           int    `json:"part"`
	WinnerPlayerID uint   `json:"winner_player_id"`
	LoserPlayerIDs []uint `json:"loser_player_ids"`
}

// ValidationResult is the full outcome of validating a submission: hard
// errors, advisory warnings, resolved goalkeeper conflicts, and the
// entries with conflict resolution applied.
type ValidationResult struct {
	IsValid   bool               `json:"is_valid"`
	Errors    []string           `json:"errors,omitempty"`
	Warnings  []string           `json:"warnings,omitempty"`
	Conflicts []Conflict         `json:"conflicts,omitempty"`
	Resolved  []PlayerAttendance `json:"resolved,omitempty"`
}

// ValidationError carries the hard validation failures of a rejected
// submission to the HTTP layer.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "attendance validation failed: " + strings.Join(e.Errors, "; ")
}

// ValidateAttendance checks a submission and resolves goalkeeper clashes.
//
// When selectedPlayerIDs is non-empty it acts as the match roster: entries
// for players outside it are silently dropped. Structural rules (cell
// values, goalkeeper flags, duplicates, event types) are hard errors.
// Two players claiming goalkeeper in the same (section, part) is not an
// error: the last-submitted entry keeps the slot and earlier claimants
// have that cell zeroed, reported as a resolved conflict.
func ValidateAttendance(entries []PlayerAttendance, selectedPlayerIDs []uint) ValidationResult {
	result := ValidationResult{IsValid: true}

	if len(selectedPlayerIDs) > 0 {
		roster := make(map[uint]bool, len(selectedPlayerIDs))
		for _, id := range selectedPlayerIDs {
			roster[id] = true
		}
		filtered := make([]PlayerAttendance, 0, len(entries))
		for _, e := range entries {
			if roster[e.PlayerID] {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	seen := make(map[uint]bool, len(entries))
	resolved := make([]PlayerAttendance, len(entries))
	copy(resolved, entries)

	for i := range resolved {
		e := &resolved[i]
		if seen[e.PlayerID] {
			result.Errors = append(result.Errors, fmt.Sprintf("player %d appears more than once", e.PlayerID))
		}
		seen[e.PlayerID] = true

		hasPlay := false
		for s := 0; s < match.GridSections; s++ {
			for p := 0; p < match.GridParts; p++ {
				cell := e.Grid[s][p]
				if cell.Value != 0 && cell.Value != 0.5 && cell.Value != 1 {
					result.Errors = append(result.Errors,
						fmt.Sprintf("player %d section %d part %d: value %v is not 0, 0.5 or 1", e.PlayerID, s+1, p+1, cell.Value))
				}
				if cell.IsGoalkeeper && cell.Value <= 0 {
					result.Errors = append(result.Errors,
						fmt.Sprintf("player %d section %d part %d: goalkeeper flag on an empty cell", e.PlayerID, s+1, p+1))
				}
				if cell.Value > 0 {
					hasPlay = true
				}
			}
		}
		if !hasPlay {
			result.Warnings = append(result.Warnings, fmt.Sprintf("player %d has an empty grid", e.PlayerID))
		}

		for _, ev := range e.Events {
			if !match.ValidEventTypes[ev.EventType] {
				result.Errors = append(result.Errors,
					fmt.Sprintf("player %d: unknown event type %q", e.PlayerID, ev.EventType))
			}
			if ev.Minute != nil && (*ev.Minute < 0 || *ev.Minute > 120) {
				result.Errors = append(result.Errors,
					fmt.Sprintf("player %d: event minute %d out of range", e.PlayerID, *ev.Minute))
			}
		}
	}

	result.Conflicts = resolveGoalkeeperConflicts(resolved)
	for _, c := range result.Conflicts {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("goalkeeper conflict in section %d part %d: player %d kept the slot, %d other claim(s) cleared",
				c.Section, c.Part, c.WinnerPlayerID, len(c.LoserPlayerIDs)))
	}

	if len(result.Errors) > 0 {
		result.IsValid = false
	}
	result.Resolved = resolved
	return result
}

// resolveGoalkeeperConflicts enforces one goalkeeper per (section, part)
// across the whole submission. Entries are ordered by submission; the
// last claimant wins and earlier claimants get the cell zeroed entirely,
// so they owe nothing for a slot they did not keep. Applying the rule to
// an already-resolved submission changes nothing.
func resolveGoalkeeperConflicts(entries []PlayerAttendance) []Conflict {
	var conflicts []Conflict

	for s := 0; s < match.GridSections; s++ {
		for p := 0; p < match.GridParts; p++ {
			var claimants []int
			for i := range entries {
				if entries[i].Grid[s][p].IsGoalkeeper {
					claimants = append(claimants, i)
				}
			}
			if len(claimants) < 2 {
				continue
			}

			winner := claimants[len(claimants)-1]
			conflict := Conflict{
				Section:        s + 1,
				Part:           p + 1,
				WinnerPlayerID: entries[winner].PlayerID,
			}
			for _, i := range claimants[:len(claimants)-1] {
				entries[i].Grid[s][p] = match.AttendanceCell{}
				conflict.LoserPlayerIDs = append(conflict.LoserPlayerIDs, entries[i].PlayerID)
			}
			conflicts = append(conflicts, conflict)
		}
	}

	return conflicts
}
