package attendance

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wbzhu/matchledger/config"
	"github.com/wbzhu/matchledger/internal/fee"
	"github.com/wbzhu/matchledger/internal/match"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&match.Match{}, &match.Participation{}, &match.Event{}, &match.FeeOverride{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	rates := config.NewRateProvider(0, func() config.FeeRates {
		return config.FeeRates{LateFeeRate: 10, VideoFeeRate: 2}
	})
	feeSvc := fee.NewService(fee.NewFeeRepository(db), rates)
	svc := NewService(NewAttendanceRepository(db), match.NewMatchRepository(db), feeSvc)
	return svc, db
}

func seedMatch(t *testing.T, db *gorm.DB) *match.Match {
	t.Helper()
	m := &match.Match{Title: "sunday game", FieldFeeTotal: 90}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("create match: %v", err)
	}
	return m
}

func playingEntry(playerID uint, sections int) PlayerAttendance {
	var grid match.AttendanceGrid
	for s := 0; s < sections; s++ {
		for p := 0; p < match.GridParts; p++ {
			grid[s][p] = match.AttendanceCell{Value: 1}
		}
	}
	return PlayerAttendance{PlayerID: playerID, Grid: grid}
}

func TestSaveAttendance_PersistsAndComputesFees(t *testing.T) {
	svc, db := newTestService(t)
	m := seedMatch(t, db)

	entry := playingEntry(1, 3)
	entry.IsLateArrival = true
	minute := 42
	entry.Events = []EventInput{
		{EventType: match.EventGoal, Minute: &minute},
		{EventType: match.EventGoal},
		{EventType: match.EventYellowCard},
	}

	result, err := svc.SaveAttendance(m.ID, SaveInput{Entries: []PlayerAttendance{entry, playingEntry(2, 1)}})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	assertEq(t, result.ParticipationsCount, 2)
	assertEq(t, result.EventsCount, 3)
	assertEq(t, result.FeeCoefficient, 1.0)
	assertEq(t, result.ConflictsResolved, 0)

	var p match.Participation
	if err := db.Where("match_id = ? AND player_id = ?", m.ID, 1).First(&p).Error; err != nil {
		t.Fatalf("load participation: %v", err)
	}
	assertEq(t, p.TotalParts, 9.0)
	assertEq(t, p.FieldFeeCalculated, 9.0)
	assertEq(t, p.VideoFee, 6.0)
	assertEq(t, p.LateFee, 10.0)
	assertEq(t, p.TotalFeeCalculated, 25.0)
}

func TestSaveAttendance_ReplacesPreviousSave(t *testing.T) {
	svc, db := newTestService(t)
	m := seedMatch(t, db)

	first := playingEntry(1, 2)
	first.Events = []EventInput{{EventType: match.EventGoal}}
	if _, err := svc.SaveAttendance(m.ID, SaveInput{Entries: []PlayerAttendance{first, playingEntry(2, 1)}}); err != nil {
		t.Fatalf("first save: %v", err)
	}

	// Second save drops player 2 and changes player 1's grid and events.
	second := playingEntry(1, 3)
	second.Events = []EventInput{{EventType: match.EventAssist}}
	result, err := svc.SaveAttendance(m.ID, SaveInput{Entries: []PlayerAttendance{second}})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	assertEq(t, result.ParticipationsCount, 1)
	assertEq(t, result.EventsCount, 1)

	var partCount, eventCount int64
	db.Model(&match.Participation{}).Where("match_id = ?", m.ID).Count(&partCount)
	db.Model(&match.Event{}).Where("match_id = ?", m.ID).Count(&eventCount)
	assertEq(t, partCount, int64(1))
	assertEq(t, eventCount, int64(1))

	var events []match.Event
	db.Where("match_id = ?", m.ID).Find(&events)
	assertEq(t, events[0].EventType, match.EventAssist)
}

func TestSaveAttendance_ValidationAbortsBeforePersistence(t *testing.T) {
	svc, db := newTestService(t)
	m := seedMatch(t, db)

	if _, err := svc.SaveAttendance(m.ID, SaveInput{Entries: []PlayerAttendance{playingEntry(1, 1)}}); err != nil {
		t.Fatalf("seed save: %v", err)
	}

	bad := PlayerAttendance{PlayerID: 2}
	bad.Grid[0][0] = match.AttendanceCell{Value: 0.3}
	_, err := svc.SaveAttendance(m.ID, SaveInput{Entries: []PlayerAttendance{bad}})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// The earlier save is untouched.
	var count int64
	db.Model(&match.Participation{}).Where("match_id = ?", m.ID).Count(&count)
	assertEq(t, count, int64(1))

	var p match.Participation
	if err := db.Where("match_id = ?", m.ID).First(&p).Error; err != nil {
		t.Fatalf("load participation: %v", err)
	}
	assertEq(t, p.PlayerID, uint(1))
}

func TestSaveAttendance_ResolvesGoalkeeperConflict(t *testing.T) {
	svc, db := newTestService(t)
	m := seedMatch(t, db)

	a := PlayerAttendance{PlayerID: 1}
	a.Grid[0][0] = match.AttendanceCell{Value: 1, IsGoalkeeper: true}
	b := PlayerAttendance{PlayerID: 2}
	b.Grid[0][0] = match.AttendanceCell{Value: 1, IsGoalkeeper: true}

	result, err := svc.SaveAttendance(m.ID, SaveInput{Entries: []PlayerAttendance{a, b}})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	assertEq(t, result.ConflictsResolved, 1)
	assertEq(t, result.Conflicts[0].WinnerPlayerID, uint(2))

	// The loser owes nothing for the cleared cell.
	var p match.Participation
	if err := db.Where("match_id = ? AND player_id = ?", m.ID, 1).First(&p).Error; err != nil {
		t.Fatalf("load participation: %v", err)
	}
	assertEq(t, p.TotalParts, 0.0)
	assertEq(t, p.TotalFeeCalculated, 0.0)
}

func TestSaveAttendance_MatchNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.SaveAttendance(9999, SaveInput{Entries: []PlayerAttendance{playingEntry(1, 1)}})
	if !errors.Is(err, match.ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestGetMatchAttendance(t *testing.T) {
	svc, db := newTestService(t)
	m := seedMatch(t, db)

	late := playingEntry(1, 2)
	late.IsLateArrival = true
	late.Events = []EventInput{{EventType: match.EventGoal}, {EventType: match.EventGoal}}
	if _, err := svc.SaveAttendance(m.ID, SaveInput{Entries: []PlayerAttendance{late, playingEntry(2, 3)}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := svc.GetMatchAttendance(m.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	assertEq(t, got.PlayerCount, 2)
	assertEq(t, got.TotalParts, 6.0+9.0)
	assertEq(t, got.TotalEvents, 2)
	assertEq(t, len(got.LateArrivalsIDs), 1)
	assertEq(t, got.LateArrivalsIDs[0], uint(1))
	assertEq(t, len(got.EventSummaries), 1)
	assertEq(t, got.EventSummaries[0].Counts[match.EventGoal], 2)
}
