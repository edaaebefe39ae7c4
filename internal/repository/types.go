package repository

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string // 匹配 username 或 role
}

// FixtureListFilter 查询治具列表的过滤条件
type FixtureListFilter struct {
	Keyword string // 匹配 name 或 status
}

// RequirementListFilter 查询机种需求列表的过滤条件
type RequirementListFilter struct {
	ModelCode string
}

// FixtureSummaryRow 治具汇总统计
type FixtureSummaryRow struct {
	TotalFixtures   int64
	ActiveFixtures  int64
	UnderLifespan   int64
	NeedReplacement int64
}
