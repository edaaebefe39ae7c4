package service

import (
	"strconv"
	"strings"

	"github.com/fixture-next/internal/config"
	"github.com/fixture-next/internal/constants"
)

const smtpImplicitTLSPort = 465

// SMTPSettingInput 后台提交的 SMTP 表单
type SMTPSettingInput struct {
	Host     string
	Port     string
	User     string
	Password string
	Sender   string
}

// SMTPSetting 存储于 settings 表的 SMTP 配置
type SMTPSetting struct {
	Host     string
	Port     int
	User     string
	Password string
	Sender   string
}

// SMTPSettingFromMap 由 skey -> svalue 映射构建配置，非法端口记为 0
func SMTPSettingFromMap(values map[string]string) SMTPSetting {
	port, _ := strconv.Atoi(strings.TrimSpace(values[constants.SMTPKeyPort]))
	return SMTPSetting{
		Host:     strings.TrimSpace(values[constants.SMTPKeyHost]),
		Port:     port,
		User:     strings.TrimSpace(values[constants.SMTPKeyUser]),
		Password: values[constants.SMTPKeyPass],
		Sender:   strings.TrimSpace(values[constants.SMTPKeySender]),
	}
}

// SMTPSettingToConfig 转换为发信运行时配置，465 端口走隐式 TLS
func SMTPSettingToConfig(setting SMTPSetting) config.EmailConfig {
	return config.EmailConfig{
		Host:     setting.Host,
		Port:     setting.Port,
		Username: setting.User,
		Password: setting.Password,
		From:     setting.Sender,
		UseSSL:   setting.Port == smtpImplicitTLSPort,
	}
}
