package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/fixture-next/internal/models"
	"github.com/fixture-next/internal/repository"
)

func TestWriteLogsCSVFormat(t *testing.T) {
	created := time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local)
	logs := []models.UsageLog{
		{ID: 2, Fixture: "治具B", Type: "更換", Note: strPtr("磨損"), CreatedAt: created},
		{ID: 1, Fixture: "pogo", Type: "use", Note: nil, CreatedAt: created},
	}
	var buf bytes.Buffer
	if err := WriteLogsCSV(&buf, logs); err != nil {
		t.Fatalf("write csv failed: %v", err)
	}
	raw := buf.Bytes()
	if !bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatalf("csv should start with utf-8 bom")
	}
	if !bytes.HasPrefix(raw[3:], []byte("時間,治具,類型,備註\r\n")) {
		t.Fatalf("header row should end with CRLF, got %q", raw[3:])
	}
	if bytes.Count(raw, []byte("\r\n")) != 3 || bytes.Count(raw, []byte("\n")) != 3 {
		t.Fatalf("every row should end with CRLF, got %q", raw)
	}
	records, err := csv.NewReader(bytes.NewReader(raw[3:])).ReadAll()
	if err != nil {
		t.Fatalf("parse csv failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}
	header := []string{"時間", "治具", "類型", "備註"}
	for i, col := range header {
		if records[0][i] != col {
			t.Fatalf("header[%d] want %s got %s", i, col, records[0][i])
		}
	}
	if records[1][0] != "2024-03-05 14:07:09" || records[1][1] != "治具B" || records[1][3] != "磨損" {
		t.Fatalf("unexpected first row: %v", records[1])
	}
	if records[2][3] != "" {
		t.Fatalf("nil note should become empty string, got %q", records[2][3])
	}
}

func TestUsageLogServiceExportOrder(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewUsageLogService(repository.NewUsageLogRepository(db))
	if _, err := svc.Create(UsageLogInput{Fixture: "first", Type: "use"}); err != nil {
		t.Fatalf("create log failed: %v", err)
	}
	if _, err := svc.Create(UsageLogInput{Fixture: "second", Type: "replace", Note: strPtr("n")}); err != nil {
		t.Fatalf("create log failed: %v", err)
	}
	if _, err := svc.Create(UsageLogInput{Fixture: "x"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("missing type should fail validation, got %v", err)
	}

	var buf bytes.Buffer
	if err := svc.ExportCSV(&buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[3:])).ReadAll()
	if err != nil {
		t.Fatalf("parse csv failed: %v", err)
	}
	if len(records) != 3 || records[1][1] != "second" || records[2][1] != "first" {
		t.Fatalf("expected id DESC rows, got %v", records)
	}
}
