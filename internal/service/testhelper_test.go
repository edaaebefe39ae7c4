package service

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/fixture-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "service.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	return db
}

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := openServiceTestDB(t)
	if err := models.InitSchema(db); err != nil {
		t.Fatalf("init schema failed: %v", err)
	}
	return db
}

func buildXLSX(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name failed: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set sheet row failed: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write xlsx failed: %v", err)
	}
	return buf
}

func strPtr(value string) *string {
	return &value
}
