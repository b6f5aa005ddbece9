package fee

import (
	"errors"
	"strings"
	"testing"

	"github.com/wbzhu/matchledger/internal/match"
)

func f(v float64) *float64 { return &v }

func TestValidateOverride_HardErrors(t *testing.T) {
	if _, err := ValidateOverride(OverrideInput{}); err == nil {
		t.Fatal("expected error for empty override")
	}
	if _, err := ValidateOverride(OverrideInput{FieldFee: f(-1)}); err == nil {
		t.Fatal("expected error for negative value")
	}
	if _, err := ValidateOverride(OverrideInput{FieldFee: f(10), Notes: strings.Repeat("x", 501)}); err == nil {
		t.Fatal("expected error for oversized notes")
	}
}

func TestValidateOverride_Warnings(t *testing.T) {
	// Within thresholds: clean.
	warnings, err := ValidateOverride(OverrideInput{FieldFee: f(50)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEq(t, len(warnings), 0)

	// Above sanity ceiling: warned, not rejected.
	warnings, err = ValidateOverride(OverrideInput{FieldFee: f(1500), Notes: "charity night settlement"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertEq(t, len(warnings), 1)

	// Large value without justification draws a warning; a real note clears it.
	warnings, _ = ValidateOverride(OverrideInput{FieldFee: f(300), Notes: "ok"})
	assertEq(t, len(warnings), 1)
	warnings, _ = ValidateOverride(OverrideInput{FieldFee: f(300), Notes: "covered two guest players"})
	assertEq(t, len(warnings), 0)
}

func TestApplyOverride_RequiresParticipation(t *testing.T) {
	db := newTestDB(t)
	svc, repo := newTestService(db)
	overrides := NewOverrideService(repo, svc)
	m := seedMatch(t, db, 90, 0)

	_, err := overrides.ApplyOverride(m.ID, 42, OverrideInput{FieldFee: f(5)})
	if !errors.Is(err, ErrParticipationNotFound) {
		t.Fatalf("expected ErrParticipationNotFound, got %v", err)
	}
}

func TestApplyOverride_Replaces(t *testing.T) {
	db := newTestDB(t)
	svc, repo := newTestService(db)
	overrides := NewOverrideService(repo, svc)
	m := seedMatch(t, db, 90, 0)
	seedParticipation(t, db, m.ID, 1, fullSectionGrid(3), false)

	if _, err := overrides.ApplyOverride(m.ID, 1, OverrideInput{FieldFee: f(5)}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	result, err := overrides.ApplyOverride(m.ID, 1, OverrideInput{FieldFee: f(7)})
	if err != nil {
		t.Fatalf("re-apply: %v", err)
	}
	assertEq(t, result.Breakdown.FieldFee.Final, 7.0)

	all, err := repo.GetOverridesByMatch(m.ID)
	if err != nil {
		t.Fatalf("list overrides: %v", err)
	}
	assertEq(t, len(all), 1)
}

func TestRemoveOverride(t *testing.T) {
	db := newTestDB(t)
	svc, repo := newTestService(db)
	overrides := NewOverrideService(repo, svc)
	m := seedMatch(t, db, 90, 0)
	seedParticipation(t, db, m.ID, 1, fullSectionGrid(3), false)

	// No override yet.
	_, err := overrides.RemoveOverride(m.ID, 1)
	if !errors.Is(err, ErrOverrideNotFound) {
		t.Fatalf("expected ErrOverrideNotFound, got %v", err)
	}

	// No participation at all.
	_, err = overrides.RemoveOverride(m.ID, 99)
	if !errors.Is(err, ErrParticipationNotFound) {
		t.Fatalf("expected ErrParticipationNotFound, got %v", err)
	}

	if _, err := overrides.ApplyOverride(m.ID, 1, OverrideInput{VideoFee: f(1)}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	result, err := overrides.RemoveOverride(m.ID, 1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	assertEq(t, result.Breakdown.HasOverride, false)
	assertEq(t, result.Breakdown.VideoFee.Final, result.Breakdown.VideoFee.Calculated)

	// Removing again can re-apply later without unique-key trouble.
	if _, err := overrides.ApplyOverride(m.ID, 1, OverrideInput{VideoFee: f(2)}); err != nil {
		t.Fatalf("re-apply after remove: %v", err)
	}
}

func TestBulkApplyOverrides_BestEffort(t *testing.T) {
	db := newTestDB(t)
	svc, repo := newTestService(db)
	overrides := NewOverrideService(repo, svc)
	m := seedMatch(t, db, 90, 0)
	seedParticipation(t, db, m.ID, 1, fullSectionGrid(3), false)
	seedParticipation(t, db, m.ID, 2, fullSectionGrid(2), false)

	result, err := overrides.BulkApplyOverrides(m.ID, []BulkOverrideItem{
		{PlayerID: 1, Override: OverrideInput{FieldFee: f(5)}},
		{PlayerID: 2, Override: OverrideInput{FieldFee: f(-5)}}, // rejected
		{PlayerID: 99, Override: OverrideInput{FieldFee: f(5)}}, // no participation
	})
	if err != nil {
		t.Fatalf("bulk: %v", err)
	}
	assertEq(t, len(result.Applied), 1)
	assertEq(t, len(result.Errors), 2)
	assertEq(t, result.Applied[0].Breakdown.PlayerID, uint(1))
}

func TestCopyOverrides(t *testing.T) {
	db := newTestDB(t)
	svc, repo := newTestService(db)
	overrides := NewOverrideService(repo, svc)
	source := seedMatch(t, db, 90, 0)
	target := seedMatch(t, db, 180, 0)
	seedParticipation(t, db, source.ID, 1, fullSectionGrid(3), false)
	seedParticipation(t, db, source.ID, 2, fullSectionGrid(3), false)
	seedParticipation(t, db, target.ID, 1, fullSectionGrid(2), false)

	if _, err := overrides.ApplyOverride(source.ID, 1, OverrideInput{FieldFee: f(5), Notes: "sponsor covered"}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := overrides.ApplyOverride(source.ID, 2, OverrideInput{FieldFee: f(6)}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	result, err := overrides.CopyOverrides(source.ID, target.ID)
	if err != nil {
		t.Fatalf("copy: %v", err)
	}
	assertEq(t, result.Copied, 1)
	assertEq(t, len(result.SkippedPlayers), 1)
	assertEq(t, result.SkippedPlayers[0], uint(2))

	copied, err := repo.GetOverride(target.ID, 1)
	if err != nil {
		t.Fatalf("get copied override: %v", err)
	}
	assertEq(t, *copied.FieldFee, 5.0)
	if !strings.Contains(copied.Notes, "sponsor covered") || !strings.Contains(copied.Notes, "copied from match") {
		t.Fatalf("notes missing provenance: %q", copied.Notes)
	}
}

func TestOverrideReport(t *testing.T) {
	db := newTestDB(t)
	svc, repo := newTestService(db)
	overrides := NewOverrideService(repo, svc)
	m := seedMatch(t, db, 90, 0)
	seedParticipation(t, db, m.ID, 1, fullSectionGrid(3), false)

	if _, err := overrides.ApplyOverride(m.ID, 1, OverrideInput{FieldFee: f(5)}); err != nil {
		t.Fatalf("apply: %v", err)
	}

	entries, err := overrides.OverrideReport(m.ID)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	assertEq(t, len(entries), 1)
	assertEq(t, entries[0].PlayerID, uint(1))
	// Calculated 9+6=15, final 5+6=11.
	assertEq(t, entries[0].TotalCalculated, 15.0)
	assertEq(t, entries[0].TotalFinal, 11.0)
	assertEq(t, entries[0].Delta, -4.0)

	if _, err := overrides.OverrideReport(9999); !errors.Is(err, match.ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}
