package service

import (
	"fmt"
	"strings"

	"github.com/fixture-next/internal/logger"
	"github.com/fixture-next/internal/repository"
)

// SchemaInitializer 建表回调，统计遇到表缺失时调用
type SchemaInitializer func() error

// StatsService 治具统计与开站计算
type StatsService struct {
	statsRepo       repository.StatsRepository
	fixtureRepo     repository.FixtureRepository
	requirementRepo repository.RequirementRepository
	initSchema      SchemaInitializer
}

// NewStatsService 创建统计服务
func NewStatsService(
	statsRepo repository.StatsRepository,
	fixtureRepo repository.FixtureRepository,
	requirementRepo repository.RequirementRepository,
	initSchema SchemaInitializer,
) *StatsService {
	return &StatsService{
		statsRepo:       statsRepo,
		fixtureRepo:     fixtureRepo,
		requirementRepo: requirementRepo,
		initSchema:      initSchema,
	}
}

// FixtureSummary 治具汇总
type FixtureSummary struct {
	TotalFixtures   int64 `json:"total_fixtures"`
	ActiveFixtures  int64 `json:"active_fixtures"`
	UnderLifespan   int64 `json:"under_lifespan"`
	NeedReplacement int64 `json:"need_replacement"`
}

// Summary 汇总四项计数；仅在数据表缺失时触发建表并返回全零
func (s *StatsService) Summary() (*FixtureSummary, error) {
	row, err := s.statsRepo.GetFixtureSummary()
	if err != nil {
		if !repository.IsMissingTableError(err) {
			return nil, err
		}
		logger.Warnw("stats_table_missing_reinit", "error", err)
		if s.initSchema != nil {
			if initErr := s.initSchema(); initErr != nil {
				return nil, fmt.Errorf("reinit schema: %w", initErr)
			}
		}
		return &FixtureSummary{}, nil
	}
	return &FixtureSummary{
		TotalFixtures:   row.TotalFixtures,
		ActiveFixtures:  row.ActiveFixtures,
		UnderLifespan:   row.UnderLifespan,
		NeedReplacement: row.NeedReplacement,
	}, nil
}

// MaxStations 计算机种各站最大可开站数
// 需求与库存分两次读取，不保证快照一致
func (s *StatsService) MaxStations(modelCode string) (*MaxStationsResult, error) {
	if strings.TrimSpace(modelCode) == "" {
		return nil, fmt.Errorf("%w: model_code is required", ErrValidation)
	}
	reqs, err := s.requirementRepo.ListByModelCode(modelCode)
	if err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: 找不到機種 %s 的需求資料", ErrNotFound, modelCode)
	}
	fixtures, err := s.fixtureRepo.ListForStock()
	if err != nil {
		return nil, err
	}
	return &MaxStationsResult{
		Model:    modelCode,
		Stations: ComputeMaxStations(reqs, BuildStockMap(fixtures)),
	}, nil
}
