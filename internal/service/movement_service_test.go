package service

import (
	"testing"

	"github.com/fixture-next/internal/repository"
)

func TestMovementServiceLedgerOnly(t *testing.T) {
	db := setupServiceTestDB(t)
	fixtures := NewFixtureService(repository.NewFixtureRepository(db))
	if _, err := fixtures.Create(FixtureInput{Name: "pogo", LifeValue: 5}); err != nil {
		t.Fatalf("create fixture failed: %v", err)
	}

	receipts := NewMovementService(repository.NewReceiptRepository(db))
	returns := NewMovementService(repository.NewReturnRepository(db))
	first, err := receipts.Create(MovementInput{Vendor: "acme", FixtureCode: "pogo", Serials: "1,2,3"})
	if err != nil {
		t.Fatalf("create receipt failed: %v", err)
	}
	if first.Type != "batch" || first.CreatedAt.IsZero() || first.Note != nil {
		t.Fatalf("unexpected receipt defaults: %+v", first)
	}
	if _, err := receipts.Create(MovementInput{FixtureCode: "unknown-code", Note: strPtr("no check")}); err != nil {
		t.Fatalf("unknown fixture code should be accepted: %v", err)
	}
	if _, err := returns.Create(MovementInput{FixtureCode: "pogo"}); err != nil {
		t.Fatalf("create return failed: %v", err)
	}

	rows, err := receipts.List()
	if err != nil {
		t.Fatalf("list receipts failed: %v", err)
	}
	if len(rows) != 2 || rows[0].FixtureCode != "unknown-code" {
		t.Fatalf("expected id DESC receipts, got %+v", rows)
	}

	list, _ := fixtures.List("")
	if len(list) != 1 || list[0].LifeValue != 5 {
		t.Fatalf("ledger writes must not touch stock, got %+v", list)
	}

	if err := receipts.Delete(first.ID); err != nil {
		t.Fatalf("delete receipt failed: %v", err)
	}
	rows, _ = receipts.List()
	returned, _ := returns.List()
	if len(rows) != 1 || len(returned) != 1 {
		t.Fatalf("unexpected counts after delete: receipts=%d returns=%d", len(rows), len(returned))
	}
}
