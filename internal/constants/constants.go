package constants

// 用户角色常量
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// 默认账号常量
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin"
	DefaultUserPassword  = "1234"
)

// 治具状态与寿命类型常量
const (
	FixtureStatusActive  = "active"
	FixtureLifeTypeCount = "count"
)

// 收退料默认类型
const (
	MovementTypeBatch = "batch"
)

// 设置分类与键
const (
	SettingCategorySMTP = "smtp"

	SMTPKeyHost   = "host"
	SMTPKeyPort   = "port"
	SMTPKeyUser   = "user"
	SMTPKeyPass   = "pass"
	SMTPKeySender = "sender"
)

// 表格导入列名
const (
	ImportColumnCode        = "code"
	ImportColumnName        = "name"
	ImportColumnSpec        = "spec"
	ImportColumnNote        = "note"
	ImportColumnModelCode   = "model_code"
	ImportColumnStation     = "station"
	ImportColumnFixtureCode = "fixture_code"
	ImportColumnRequiredQty = "required_qty"
)
