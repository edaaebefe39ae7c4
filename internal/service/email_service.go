package service

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"
	"sync"

	"github.com/fixture-next/internal/config"
)

// EmailService 邮件发送服务，持有配置副本，可在请求间并发替换
type EmailService struct {
	mu  sync.RWMutex
	cfg config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	s := &EmailService{}
	if cfg != nil {
		s.cfg = *cfg
	}
	return s
}

// SetConfig 更新运行时邮件配置
func (s *EmailService) SetConfig(cfg *config.EmailConfig) {
	if cfg == nil {
		return
	}
	s.mu.Lock()
	s.cfg = *cfg
	s.mu.Unlock()
}

// Config 返回当前配置快照
func (s *EmailService) Config() config.EmailConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// SendSMTPTest 使用给定 SMTP 设置发送一封测试信，不改变当前运行时配置
func SendSMTPTest(setting SMTPSetting, toEmail, subject, body string) error {
	cfg := SMTPSettingToConfig(setting)
	return NewEmailService(&cfg).SendCustomEmail(toEmail, subject, body)
}

// SendCustomEmail 发送测试邮件或自定义邮件
func (s *EmailService) SendCustomEmail(toEmail, subject, body string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = "SMTP 設定測試信"
	}
	body = strings.TrimSpace(body)
	if body == "" {
		body = "這是一封來自治具管理系統的測試信，收到代表 SMTP 設定可正常發送。"
	}
	return s.sendTextEmail(toEmail, subject, body)
}

func (s *EmailService) sendTextEmail(toEmail, subject, body string) error {
	cfg := s.Config()
	if cfg.Host == "" || cfg.Port == 0 || cfg.From == "" {
		return ErrEmailServiceNotConfigured
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(toEmail)); err != nil {
		return ErrInvalidEmail
	}

	msg := buildEmailMessage(cfg.From, toEmail, subject, body)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	var auth smtp.Auth
	if cfg.Username != "" || cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	if cfg.UseSSL {
		return normalizeEmailSendError(sendMailWithSSL(addr, auth, cfg.Host, cfg.From, []string{toEmail}, []byte(msg)))
	}
	return normalizeEmailSendError(sendMailOpportunisticTLS(addr, auth, cfg.Host, cfg.From, []string{toEmail}, []byte(msg)))
}

func buildEmailMessage(from, to, subject, body string) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: %s\r\n", from))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", to))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject)))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.String()
}

func sendMailWithSSL(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

// sendMailOpportunisticTLS 服务端支持 STARTTLS 时升级连接，否则明文发送
func sendMailOpportunisticTLS(addr string, auth smtp.Auth, host, from string, to []string, msg []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return err
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}

	return sendSMTPData(client, from, to, msg)
}

func sendSMTPData(client *smtp.Client, from string, to []string, msg []byte) error {
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func normalizeEmailSendError(err error) error {
	if err == nil {
		return nil
	}
	if isEmailRecipientRejected(err) {
		return ErrEmailRecipientRejected
	}
	return err
}

var recipientRejectedKeywords = []string{
	"no such recipient",
	"no such user",
	"recipient not found",
	"recipient address rejected",
	"invalid recipient",
	"user unknown",
	"unknown user",
	"unknown mailbox",
	"mailbox unavailable",
}

func isEmailRecipientRejected(err error) bool {
	message := strings.ToLower(strings.TrimSpace(err.Error()))
	for _, keyword := range recipientRejectedKeywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	// 550 类响应且提到收件人时也视为被拒收
	if !strings.Contains(message, "550") {
		return false
	}
	for _, hint := range []string{"recipient", "user", "mailbox", "rcpt"} {
		if strings.Contains(message, hint) {
			return true
		}
	}
	return false
}
