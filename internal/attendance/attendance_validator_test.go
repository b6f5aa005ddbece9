package attendance

import (
	"testing"

	"github.com/wbzhu/matchledger/internal/match"
)

func gridWith(cells map[[2]int]match.AttendanceCell) match.AttendanceGrid {
	var grid match.AttendanceGrid
	for pos, cell := range cells {
		grid[pos[0]][pos[1]] = cell
	}
	return grid
}

func TestValidateAttendance_InvalidCellValue(t *testing.T) {
	entries := []PlayerAttendance{{
		PlayerID: 1,
		Grid:     gridWith(map[[2]int]match.AttendanceCell{{0, 0}: {Value: 0.75}}),
	}}

	result := ValidateAttendance(entries, nil)
	assertEq(t, result.IsValid, false)
	assertEq(t, len(result.Errors), 1)
}

func TestValidateAttendance_GoalkeeperOnEmptyCell(t *testing.T) {
	entries := []PlayerAttendance{{
		PlayerID: 1,
		Grid:     gridWith(map[[2]int]match.AttendanceCell{{1, 1}: {Value: 0, IsGoalkeeper: true}}),
	}}

	result := ValidateAttendance(entries, nil)
	assertEq(t, result.IsValid, false)
}

func TestValidateAttendance_DuplicatePlayer(t *testing.T) {
	grid := gridWith(map[[2]int]match.AttendanceCell{{0, 0}: {Value: 1}})
	entries := []PlayerAttendance{
		{PlayerID: 1, Grid: grid},
		{PlayerID: 1, Grid: grid},
	}

	result := ValidateAttendance(entries, nil)
	assertEq(t, result.IsValid, false)
}

func TestValidateAttendance_UnknownEventType(t *testing.T) {
	entries := []PlayerAttendance{{
		PlayerID: 1,
		Grid:     gridWith(map[[2]int]match.AttendanceCell{{0, 0}: {Value: 1}}),
		Events:   []EventInput{{EventType: "hat_trick"}},
	}}

	result := ValidateAttendance(entries, nil)
	assertEq(t, result.IsValid, false)
}

func TestValidateAttendance_EmptyGridIsWarning(t *testing.T) {
	entries := []PlayerAttendance{{PlayerID: 1}}

	result := ValidateAttendance(entries, nil)
	assertEq(t, result.IsValid, true)
	assertEq(t, len(result.Warnings), 1)
}

func TestValidateAttendance_RosterFilter(t *testing.T) {
	grid := gridWith(map[[2]int]match.AttendanceCell{{0, 0}: {Value: 1}})
	entries := []PlayerAttendance{
		{PlayerID: 1, Grid: grid},
		{PlayerID: 2, Grid: grid},
		{PlayerID: 3, Grid: grid},
	}

	result := ValidateAttendance(entries, []uint{1, 3})
	assertEq(t, result.IsValid, true)
	assertEq(t, len(result.Resolved), 2)
	assertEq(t, result.Resolved[0].PlayerID, uint(1))
	assertEq(t, result.Resolved[1].PlayerID, uint(3))
}

func TestGoalkeeperConflict_LastSubmissionWins(t *testing.T) {
	// A and B both claim goalkeeper in section 1 part 1; B submitted later.
	entries := []PlayerAttendance{
		{PlayerID: 1, Grid: gridWith(map[[2]int]match.AttendanceCell{
			{0, 0}: {Value: 1, IsGoalkeeper: true},
			{0, 1}: {Value: 1},
		})},
		{PlayerID: 2, Grid: gridWith(map[[2]int]match.AttendanceCell{
			{0, 0}: {Value: 1, IsGoalkeeper: true},
		})},
	}

	result := ValidateAttendance(entries, nil)
	assertEq(t, result.IsValid, true)
	assertEq(t, len(result.Conflicts), 1)

	c := result.Conflicts[0]
	assertEq(t, c.Section, 1)
	assertEq(t, c.Part, 1)
	assertEq(t, c.WinnerPlayerID, uint(2))
	assertEq(t, len(c.LoserPlayerIDs), 1)
	assertEq(t, c.LoserPlayerIDs[0], uint(1))

	// The loser's cell is cleared entirely; their other cells are untouched.
	assertEq(t, result.Resolved[0].Grid[0][0], match.AttendanceCell{})
	assertEq(t, result.Resolved[0].Grid[0][1], match.AttendanceCell{Value: 1})
	assertEq(t, result.Resolved[1].Grid[0][0], match.AttendanceCell{Value: 1, IsGoalkeeper: true})
}

func TestGoalkeeperConflict_ThreeClaimants(t *testing.T) {
	claim := gridWith(map[[2]int]match.AttendanceCell{{2, 2}: {Value: 1, IsGoalkeeper: true}})
	entries := []PlayerAttendance{
		{PlayerID: 1, Grid: claim},
		{PlayerID: 2, Grid: claim},
		{PlayerID: 3, Grid: claim},
	}

	result := ValidateAttendance(entries, nil)
	assertEq(t, len(result.Conflicts), 1)
	assertEq(t, result.Conflicts[0].WinnerPlayerID, uint(3))
	assertEq(t, len(result.Conflicts[0].LoserPlayerIDs), 2)
}

func TestGoalkeeperConflict_ResolutionIsIdempotent(t *testing.T) {
	entries := []PlayerAttendance{
		{PlayerID: 1, Grid: gridWith(map[[2]int]match.AttendanceCell{{0, 0}: {Value: 1, IsGoalkeeper: true}})},
		{PlayerID: 2, Grid: gridWith(map[[2]int]match.AttendanceCell{{0, 0}: {Value: 1, IsGoalkeeper: true}})},
	}

	first := ValidateAttendance(entries, nil)
	assertEq(t, len(first.Conflicts), 1)

	second := ValidateAttendance(first.Resolved, nil)
	assertEq(t, len(second.Conflicts), 0)
	assertEq(t, second.Resolved[0].Grid, first.Resolved[0].Grid)
	assertEq(t, second.Resolved[1].Grid, first.Resolved[1].Grid)
}

func TestValidateAttendance_InputNotMutated(t *testing.T) {
	entries := []PlayerAttendance{
		{PlayerID: 1, Grid: gridWith(map[[2]int]match.AttendanceCell{{0, 0}: {Value: 1, IsGoalkeeper: true}})},
		{PlayerID: 2, Grid: gridWith(map[[2]int]match.AttendanceCell{{0, 0}: {Value: 1, IsGoalkeeper: true}})},
	}

	_ = ValidateAttendance(entries, nil)
	assertEq(t, entries[0].Grid[0][0], match.AttendanceCell{Value: 1, IsGoalkeeper: true})
}

// --- small helpers ---
func assertEq[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}
