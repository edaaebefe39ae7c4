package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/fixture-next/internal/models"
	"github.com/fixture-next/internal/repository"
)

const usageLogTimeLayout = "2006-01-02 15:04:05"

var (
	utf8BOM           = []byte{0xEF, 0xBB, 0xBF}
	usageLogCSVHeader = []string{"時間", "治具", "類型", "備註"}
)

// UsageLogService 治具使用记录服务
type UsageLogService struct {
	repo repository.UsageLogRepository
}

// NewUsageLogService 创建使用记录服务
func NewUsageLogService(repo repository.UsageLogRepository) *UsageLogService {
	return &UsageLogService{repo: repo}
}

// UsageLogInput 使用记录写入参数
type UsageLogInput struct {
	Fixture string  `json:"fixture"`
	Type    string  `json:"type"`
	Note    *string `json:"note"`
}

// List 全量列出，按 id 倒序
func (s *UsageLogService) List() ([]models.UsageLog, error) {
	logs, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []models.UsageLog{}
	}
	return logs, nil
}

// Create 追加使用记录，fixture 与 type 必填
func (s *UsageLogService) Create(input UsageLogInput) (*models.UsageLog, error) {
	if strings.TrimSpace(input.Fixture) == "" {
		return nil, fmt.Errorf("%w: fixture is required", ErrValidation)
	}
	if strings.TrimSpace(input.Type) == "" {
		return nil, fmt.Errorf("%w: type is required", ErrValidation)
	}
	log := &models.UsageLog{
		Fixture: input.Fixture,
		Type:    input.Type,
		Note:    input.Note,
	}
	if err := s.repo.Create(log); err != nil {
		return nil, err
	}
	return log, nil
}

// ExportCSV 导出全部记录
func (s *UsageLogService) ExportCSV(w io.Writer) error {
	logs, err := s.repo.List()
	if err != nil {
		return err
	}
	return WriteLogsCSV(w, logs)
}

// WriteLogsCSV 写出带 BOM 的 CSV（行尾 CRLF），列依次为时间、治具、类型、备注，空值写为空串
func WriteLogsCSV(w io.Writer, logs []models.UsageLog) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}
	writer := csv.NewWriter(w)
	writer.UseCRLF = true
	if err := writer.Write(usageLogCSVHeader); err != nil {
		return err
	}
	for _, log := range logs {
		createdAt := ""
		if !log.CreatedAt.IsZero() {
			createdAt = log.CreatedAt.Format(usageLogTimeLayout)
		}
		note := ""
		if log.Note != nil {
			note = *log.Note
		}
		if err := writer.Write([]string{createdAt, log.Fixture, log.Type, note}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
