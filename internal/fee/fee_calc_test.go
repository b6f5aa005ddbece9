package fee

import (
	"math"
	"testing"

	"github.com/wbzhu/matchledger/internal/match"
)

func TestCoefficient(t *testing.T) {
	assertEq(t, Coefficient(900, 0), 10.0)
	assertEq(t, Coefficient(0, 0), 0.0)

	got := Coefficient(200, 50)
	want := 250.0 / 90.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestCalculateFees_TypicalNight(t *testing.T) {
	// 200 field + 50 water, coefficient 250/90. Player plays 4.5 parts
	// spread over sections 1 and 2, on time, video rate 2.
	var grid match.AttendanceGrid
	grid[0][0] = match.AttendanceCell{Value: 1}
	grid[0][1] = match.AttendanceCell{Value: 1}
	grid[0][2] = match.AttendanceCell{Value: 0.5}
	grid[1][0] = match.AttendanceCell{Value: 1}
	grid[1][1] = match.AttendanceCell{Value: 1}

	fees := CalculateFees(grid, false, Coefficient(200, 50), 10, 2)

	assertEq(t, fees.NormalPlayerParts, 4.5)
	assertEq(t, fees.SectionsWithNormalPlay, 2)
	assertEq(t, fees.FieldFee, 12.5)
	assertEq(t, fees.VideoFee, 4.0)
	assertEq(t, fees.LateFee, 0.0)
	assertEq(t, fees.TotalFee, 16.5)
}

func TestCalculateFees_GoalkeeperExempt(t *testing.T) {
	// Full-match goalkeeper: no field fee, no video fee.
	var grid match.AttendanceGrid
	for s := 0; s < match.GridSections; s++ {
		for p := 0; p < match.GridParts; p++ {
			grid[s][p] = match.AttendanceCell{Value: 1, IsGoalkeeper: true}
		}
	}

	fees := CalculateFees(grid, false, 10, 10, 2)

	assertEq(t, fees.NormalPlayerParts, 0.0)
	assertEq(t, fees.SectionsWithNormalPlay, 0)
	assertEq(t, fees.FieldFee, 0.0)
	assertEq(t, fees.VideoFee, 0.0)
	assertEq(t, fees.TotalFee, 0.0)
}

func TestCalculateFees_GoalkeeperHalfSection(t *testing.T) {
	// Goalkeeper for section 1, normal player in sections 2 and 3: only
	// the normal sections count for field and video fees.
	var grid match.AttendanceGrid
	grid[0][0] = match.AttendanceCell{Value: 1, IsGoalkeeper: true}
	grid[0][1] = match.AttendanceCell{Value: 1, IsGoalkeeper: true}
	grid[0][2] = match.AttendanceCell{Value: 1, IsGoalkeeper: true}
	grid[1][0] = match.AttendanceCell{Value: 1}
	grid[2][0] = match.AttendanceCell{Value: 0.5}

	fees := CalculateFees(grid, false, 2, 10, 2)

	assertEq(t, fees.NormalPlayerParts, 1.5)
	assertEq(t, fees.SectionsWithNormalPlay, 2)
	assertEq(t, fees.FieldFee, 3.0)
	assertEq(t, fees.VideoFee, 4.0)
}

func TestCalculateFees_LateArrival(t *testing.T) {
	var grid match.AttendanceGrid
	grid[2][2] = match.AttendanceCell{Value: 1}

	fees := CalculateFees(grid, true, 1, 10, 2)

	assertEq(t, fees.LateFee, 10.0)
	assertEq(t, fees.TotalFee, 1.0+2.0+10.0)
}

func TestCalculateFees_EmptyGrid(t *testing.T) {
	var grid match.AttendanceGrid
	fees := CalculateFees(grid, false, 5, 10, 2)
	assertEq(t, fees.TotalFee, 0.0)
}

func TestRoundFee(t *testing.T) {
	assertEq(t, RoundFee(12.5), 13.0)
	assertEq(t, RoundFee(12.4), 12.0)
	assertEq(t, RoundFee(0), 0.0)
}

// --- small helpers ---
func assertEq[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}
