package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fixture-next/internal/constants"
	"github.com/fixture-next/internal/repository"
)

// SettingService 设置业务服务
type SettingService struct {
	repo repository.SettingRepository
}

// NewSettingService 创建设置服务
func NewSettingService(repo repository.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// GetCategory 读取分类下全部键值
func (s *SettingService) GetCategory(category string) (map[string]string, error) {
	rows, err := s.repo.ListByCategory(category)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

// SaveSMTP 逐键写入 smtp 分类，冲突时覆盖；五个字段均不可为空，port 必须为整数
// 密码按原文存储
func (s *SettingService) SaveSMTP(input SMTPSettingInput) error {
	if err := requireFields(map[string]string{
		"host":     input.Host,
		"port":     input.Port,
		"user":     input.User,
		"password": input.Password,
		"sender":   input.Sender,
	}, "host", "port", "user", "password", "sender"); err != nil {
		return err
	}
	port, err := strconv.Atoi(strings.TrimSpace(input.Port))
	if err != nil {
		return fmt.Errorf("%w: port must be an integer", ErrValidation)
	}
	pairs := []struct {
		key   string
		value string
	}{
		{constants.SMTPKeyHost, input.Host},
		{constants.SMTPKeyPort, strconv.Itoa(port)},
		{constants.SMTPKeyUser, input.User},
		{constants.SMTPKeyPass, input.Password},
		{constants.SMTPKeySender, input.Sender},
	}
	for _, pair := range pairs {
		if err := s.repo.Upsert(constants.SettingCategorySMTP, pair.key, pair.value); err != nil {
			return err
		}
	}
	return nil
}

// GetSMTPSetting 读取 smtp 分类并转换为结构化配置
func (s *SettingService) GetSMTPSetting() (SMTPSetting, error) {
	values, err := s.GetCategory(constants.SettingCategorySMTP)
	if err != nil {
		return SMTPSetting{}, err
	}
	return SMTPSettingFromMap(values), nil
}
