package service

import (
	"errors"
	"testing"

	"github.com/fixture-next/internal/models"
	"github.com/fixture-next/internal/repository"
)

type failingStatsRepo struct {
	err error
}

func (r failingStatsRepo) GetFixtureSummary() (repository.FixtureSummaryRow, error) {
	return repository.FixtureSummaryRow{}, r.err
}

func newStatsServiceForTest(t *testing.T) (*StatsService, *repository.GormFixtureRepository, *repository.GormRequirementRepository) {
	t.Helper()
	db := setupServiceTestDB(t)
	fixtureRepo := repository.NewFixtureRepository(db)
	requirementRepo := repository.NewRequirementRepository(db)
	svc := NewStatsService(repository.NewStatsRepository(db), fixtureRepo, requirementRepo, func() error {
		return models.InitSchema(db)
	})
	return svc, fixtureRepo, requirementRepo
}

func TestStatsSummaryCounts(t *testing.T) {
	svc, fixtures, _ := newStatsServiceForTest(t)
	for _, f := range []models.Fixture{
		{Name: "a", Status: "active", LifeType: "count", Used: 0, LifeValue: 3},
		{Name: "b", Status: "active", LifeType: "count", Used: 3, LifeValue: 3},
		{Name: "c", Status: "broken", LifeType: "count", Used: 9, LifeValue: 3},
		{Name: "d", Status: "active", LifeType: "days", Used: 0, LifeValue: 3},
	} {
		fixture := f
		if err := fixtures.Create(&fixture); err != nil {
			t.Fatalf("create fixture failed: %v", err)
		}
	}
	got, err := svc.Summary()
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	want := FixtureSummary{TotalFixtures: 4, ActiveFixtures: 3, UnderLifespan: 1, NeedReplacement: 2}
	if *got != want {
		t.Fatalf("summary want %+v got %+v", want, *got)
	}
}

func TestStatsSummarySelfHealsMissingTable(t *testing.T) {
	db := openServiceTestDB(t)
	called := 0
	svc := NewStatsService(repository.NewStatsRepository(db), nil, nil, func() error {
		called++
		return models.InitSchema(db)
	})

	got, err := svc.Summary()
	if err != nil {
		t.Fatalf("missing table should be downgraded, got %v", err)
	}
	if *got != (FixtureSummary{}) {
		t.Fatalf("expected zero summary, got %+v", *got)
	}
	if called != 1 {
		t.Fatalf("schema initializer should run once, ran %d", called)
	}
	if !db.Migrator().HasTable(&models.Fixture{}) {
		t.Fatalf("fixtures table should exist after self heal")
	}
}

func TestStatsSummaryPropagatesOtherErrors(t *testing.T) {
	called := false
	boom := errors.New("connection reset by peer")
	svc := NewStatsService(failingStatsRepo{err: boom}, nil, nil, func() error {
		called = true
		return nil
	})
	if _, err := svc.Summary(); !errors.Is(err, boom) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
	if called {
		t.Fatalf("schema initializer must not run for non missing-table errors")
	}
}

func TestMaxStationsEndToEnd(t *testing.T) {
	svc, fixtures, reqs := newStatsServiceForTest(t)
	for _, f := range []models.Fixture{
		{Name: "A", LifeValue: 10},
		{Name: "B", LifeValue: 12},
	} {
		fixture := f
		if err := fixtures.Create(&fixture); err != nil {
			t.Fatalf("create fixture failed: %v", err)
		}
	}
	for _, r := range []models.FixtureRequirement{
		{ModelCode: "M1", Station: "S1", FixtureCode: "A", RequiredQty: 2},
		{ModelCode: "M1", Station: "S1", FixtureCode: "B", RequiredQty: 5},
		{ModelCode: "M1", Station: "S2", FixtureCode: "A", RequiredQty: 0},
		{ModelCode: "M2", Station: "S9", FixtureCode: "A", RequiredQty: 1},
	} {
		row := r
		if err := reqs.Create(&row); err != nil {
			t.Fatalf("create requirement failed: %v", err)
		}
	}

	got, err := svc.MaxStations("M1")
	if err != nil {
		t.Fatalf("max stations failed: %v", err)
	}
	if got.Model != "M1" || len(got.Stations) != 2 || got.Stations["S1"] != 2 || got.Stations["S2"] != 0 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestMaxStationsUnknownModel(t *testing.T) {
	svc, _, _ := newStatsServiceForTest(t)
	_, err := svc.MaxStations("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if ErrorDetail(err) != "找不到機種 nope 的需求資料" {
		t.Fatalf("unexpected detail: %s", ErrorDetail(err))
	}
}

func TestMaxStationsRequiresModelCode(t *testing.T) {
	svc, _, _ := newStatsServiceForTest(t)
	if _, err := svc.MaxStations("  "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}
