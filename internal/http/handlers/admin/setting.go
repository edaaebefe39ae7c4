package admin

import (
	"strings"

	"github.com/fixture-next/internal/constants"
	"github.com/fixture-next/internal/http/response"
	"github.com/fixture-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetSMTPSettings 返回 smtp 分类的原始键值
func (h *Handler) GetSMTPSettings(c *gin.Context) {
	values, err := h.SettingService.GetCategory(constants.SettingCategorySMTP)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, values)
}

// SaveSMTPSettings 表单保存 SMTP 配置并刷新发信服务
func (h *Handler) SaveSMTPSettings(c *gin.Context) {
	if err := h.SettingService.SaveSMTP(service.SMTPSettingInput{
		Host:     c.PostForm("host"),
		Port:     c.PostForm("port"),
		User:     c.PostForm("user"),
		Password: c.PostForm("password"),
		Sender:   c.PostForm("sender"),
	}); err != nil {
		respondServiceError(c, err)
		return
	}

	setting, err := h.SettingService.GetSMTPSetting()
	if err != nil {
		requestLog(c).Warnw("smtp_setting_reload_failed", "error", err)
	} else {
		emailCfg := service.SMTPSettingToConfig(setting)
		if h.EmailService != nil {
			h.EmailService.SetConfig(&emailCfg)
		}
	}
	response.SuccessOK(c)
}

// SMTPTestSendRequest SMTP 测试发送请求
type SMTPTestSendRequest struct {
	ToEmail string `json:"to_email" binding:"required"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// TestSMTPSettings 按已保存的配置发送一封测试邮件
func (h *Handler) TestSMTPSettings(c *gin.Context) {
	var req SMTPTestSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid smtp test body", err)
		return
	}

	setting, err := h.SettingService.GetSMTPSetting()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if err := service.SendSMTPTest(setting, strings.TrimSpace(req.ToEmail), req.Subject, req.Body); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"sent": true})
}
