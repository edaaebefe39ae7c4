package service

import (
	"testing"

	"github.com/fixture-next/internal/models"
)

func TestComputeMaxStationsBottleneck(t *testing.T) {
	reqs := []models.FixtureRequirement{
		{Station: "S1", FixtureCode: "A", RequiredQty: 2},
		{Station: "S1", FixtureCode: "B", RequiredQty: 5},
	}
	got := ComputeMaxStations(reqs, map[string]int{"A": 10, "B": 12})
	if got["S1"] != 2 {
		t.Fatalf("expected min(10/2, 12/5)=2, got %d", got["S1"])
	}
}

func TestComputeMaxStationsZeroQtyContributesZero(t *testing.T) {
	reqs := []models.FixtureRequirement{
		{Station: "S1", FixtureCode: "A", RequiredQty: 0},
		{Station: "S2", FixtureCode: "A", RequiredQty: 1},
	}
	got := ComputeMaxStations(reqs, map[string]int{"A": 100})
	if got["S1"] != 0 {
		t.Fatalf("zero qty should contribute 0, got %+v", got)
	}
	if got["S2"] != 100 {
		t.Fatalf("expected 100 for S2, got %d", got["S2"])
	}
}

func TestComputeMaxStationsFloorsNegativeOperands(t *testing.T) {
	cases := []struct {
		name  string
		qty   int
		stock int
		want  int
	}{
		{name: "negative stock", qty: 2, stock: -3, want: -2},
		{name: "negative qty", qty: -2, stock: 10, want: -5},
		{name: "negative qty with remainder", qty: -3, stock: 10, want: -4},
		{name: "both negative", qty: -2, stock: -5, want: 2},
		{name: "exact negative", qty: 2, stock: -4, want: -2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reqs := []models.FixtureRequirement{{Station: "S1", FixtureCode: "A", RequiredQty: tc.qty}}
			got := ComputeMaxStations(reqs, map[string]int{"A": tc.stock})
			if got["S1"] != tc.want {
				t.Fatalf("floor(%d/%d) want %d got %d", tc.stock, tc.qty, tc.want, got["S1"])
			}
		})
	}
}

func TestComputeMaxStationsMissingFixtureIsZeroStock(t *testing.T) {
	reqs := []models.FixtureRequirement{
		{Station: "S1", FixtureCode: "A", RequiredQty: 1},
		{Station: "S1", FixtureCode: "ghost", RequiredQty: 1},
	}
	got := ComputeMaxStations(reqs, map[string]int{"A": 7})
	if v, ok := got["S1"]; !ok || v != 0 {
		t.Fatalf("missing fixture should bottleneck station to 0, got %+v", got)
	}
}

func TestComputeMaxStationsCoversEveryStation(t *testing.T) {
	reqs := []models.FixtureRequirement{
		{Station: "S1", FixtureCode: "A", RequiredQty: 3},
		{Station: "S2", FixtureCode: "B", RequiredQty: 4},
		{Station: "S2", FixtureCode: "A", RequiredQty: 1},
		{Station: "S3", FixtureCode: "C", RequiredQty: 1},
	}
	got := ComputeMaxStations(reqs, map[string]int{"A": 9, "B": 9})
	want := map[string]int{"S1": 3, "S2": 2, "S3": 0}
	if len(got) != len(want) {
		t.Fatalf("station set mismatch: got %+v", got)
	}
	for station, n := range want {
		if got[station] != n {
			t.Fatalf("station %s want %d got %d", station, n, got[station])
		}
		if got[station] < 0 {
			t.Fatalf("station %s negative", station)
		}
	}
}

func TestBuildStockMapLaterRowWins(t *testing.T) {
	stock := BuildStockMap([]models.Fixture{
		{ID: 1, Name: "A", LifeValue: 3},
		{ID: 2, Name: "A", LifeValue: 8},
		{ID: 3, Name: "B", LifeValue: 1},
	})
	if stock["A"] != 8 || stock["B"] != 1 {
		t.Fatalf("unexpected stock map: %+v", stock)
	}
}
