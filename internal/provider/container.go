package provider

import (
	"github.com/fixture-next/internal/cache"
	"github.com/fixture-next/internal/config"
	"github.com/fixture-next/internal/logger"
	"github.com/fixture-next/internal/models"
	"github.com/fixture-next/internal/repository"
	"github.com/fixture-next/internal/service"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client

	// Repositories
	UserRepo         repository.UserRepository
	FixtureRepo      repository.FixtureRepository
	FixtureModelRepo repository.FixtureModelRepository
	MachineModelRepo repository.MachineModelRepository
	RequirementRepo  repository.RequirementRepository
	ReceiptRepo      repository.MovementRepository
	ReturnRepo       repository.MovementRepository
	UsageLogRepo     repository.UsageLogRepository
	SettingRepo      repository.SettingRepository
	StatsRepo        repository.StatsRepository

	// Services
	UserService     *service.UserService
	FixtureService  *service.FixtureService
	CatalogService  *service.CatalogService
	ReceiptService  *service.MovementService
	ReturnService   *service.MovementService
	UsageLogService *service.UsageLogService
	SettingService  *service.SettingService
	StatsService    *service.StatsService
	EmailService    *service.EmailService
}

// NewContainer 初始化容器，db 为空时使用全局连接
func NewContainer(cfg *config.Config, db *gorm.DB) *Container {
	if db == nil {
		db = models.DB
	}

	redisClient, err := cache.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := c.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.FixtureRepo = repository.NewFixtureRepository(db)
	c.FixtureModelRepo = repository.NewFixtureModelRepository(db)
	c.MachineModelRepo = repository.NewMachineModelRepository(db)
	c.RequirementRepo = repository.NewRequirementRepository(db)
	c.ReceiptRepo = repository.NewReceiptRepository(db)
	c.ReturnRepo = repository.NewReturnRepository(db)
	c.UsageLogRepo = repository.NewUsageLogRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
	c.StatsRepo = repository.NewStatsRepository(db)
}

func (c *Container) initServices() {
	c.SettingService = service.NewSettingService(c.SettingRepo)
	smtpSetting, err := c.SettingService.GetSMTPSetting()
	if err != nil {
		logger.Warnw("provider_load_smtp_setting_failed", "error", err)
	} else {
		c.Config.Email = service.SMTPSettingToConfig(smtpSetting)
	}
	c.EmailService = service.NewEmailService(&c.Config.Email)

	db := c.DB
	c.UserService = service.NewUserService(c.UserRepo)
	c.FixtureService = service.NewFixtureService(c.FixtureRepo)
	c.CatalogService = service.NewCatalogService(c.FixtureModelRepo, c.MachineModelRepo, c.RequirementRepo)
	c.ReceiptService = service.NewMovementService(c.ReceiptRepo)
	c.ReturnService = service.NewMovementService(c.ReturnRepo)
	c.UsageLogService = service.NewUsageLogService(c.UsageLogRepo)
	c.StatsService = service.NewStatsService(c.StatsRepo, c.FixtureRepo, c.RequirementRepo, func() error {
		return models.InitSchema(db)
	})
}
