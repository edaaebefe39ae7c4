package repository

import (
	"github.com/fixture-next/internal/constants"
	"github.com/fixture-next/internal/models"

	"gorm.io/gorm"
)

// StatsRepository 治具聚合查询接口
// 说明：仅聚合统计数据，不承载业务规则。
type StatsRepository interface {
	GetFixtureSummary() (FixtureSummaryRow, error)
}

// GormStatsRepository GORM 实现
type GormStatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository 创建统计仓库
func NewStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

// GetFixtureSummary 分别统计四项计数，任一查询失败即返回错误
func (r *GormStatsRepository) GetFixtureSummary() (FixtureSummaryRow, error) {
	var row FixtureSummaryRow
	counts := []struct {
		target *int64
		where  string
		args   []interface{}
	}{
		{target: &row.TotalFixtures},
		{target: &row.ActiveFixtures, where: "status = ?", args: []interface{}{constants.FixtureStatusActive}},
		{target: &row.UnderLifespan, where: "life_type = ? AND used < life_value", args: []interface{}{constants.FixtureLifeTypeCount}},
		{target: &row.NeedReplacement, where: "life_type = ? AND used >= life_value", args: []interface{}{constants.FixtureLifeTypeCount}},
	}
	for _, item := range counts {
		query := r.db.Model(&models.Fixture{})
		if item.where != "" {
			query = query.Where(item.where, item.args...)
		}
		if err := query.Count(item.target).Error; err != nil {
			return FixtureSummaryRow{}, err
		}
	}
	return row, nil
}
