package service

import (
	"errors"
	"testing"

	"github.com/fixture-next/internal/repository"
)

func TestSaveSMTPUpsertsFixedKeys(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewSettingService(repository.NewSettingRepository(db))

	first := SMTPSettingInput{Host: "smtp.a.com", Port: "25", User: "u", Password: "p", Sender: "a@a.com"}
	if err := svc.SaveSMTP(first); err != nil {
		t.Fatalf("save smtp failed: %v", err)
	}
	second := SMTPSettingInput{Host: "smtp.b.com", Port: " 465 ", User: "u2", Password: "p2", Sender: "b@b.com"}
	if err := svc.SaveSMTP(second); err != nil {
		t.Fatalf("save smtp again failed: %v", err)
	}

	got, err := svc.GetCategory("smtp")
	if err != nil {
		t.Fatalf("get category failed: %v", err)
	}
	want := map[string]string{"host": "smtp.b.com", "port": "465", "user": "u2", "pass": "p2", "sender": "b@b.com"}
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %+v", len(want), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("key %s want %s got %s", k, v, got[k])
		}
	}

	setting, err := svc.GetSMTPSetting()
	if err != nil {
		t.Fatalf("get smtp setting failed: %v", err)
	}
	cfg := SMTPSettingToConfig(setting)
	if !cfg.UseSSL || cfg.Port != 465 || cfg.From != "b@b.com" || cfg.Username != "u2" {
		t.Fatalf("unexpected email config: %+v", cfg)
	}
}

func TestSaveSMTPRejectsNonNumericPort(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewSettingService(repository.NewSettingRepository(db))
	err := svc.SaveSMTP(SMTPSettingInput{Host: "h", Port: "abc", User: "u", Password: "p", Sender: "s@a.com"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	got, _ := svc.GetCategory("smtp")
	if len(got) != 0 {
		t.Fatalf("nothing should be stored, got %+v", got)
	}
}

func TestSMTPSettingToConfigPlainPort(t *testing.T) {
	cfg := SMTPSettingToConfig(SMTPSettingFromMap(map[string]string{"host": "h", "port": "587"}))
	if cfg.UseSSL || cfg.Port != 587 {
		t.Fatalf("587 should not use implicit tls: %+v", cfg)
	}
}

func TestSaveSMTPRequiresEveryField(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewSettingService(repository.NewSettingRepository(db))
	full := SMTPSettingInput{Host: "h", Port: "25", User: "u", Password: "p", Sender: "s@a.com"}

	cases := []struct {
		field string
		blank func(in *SMTPSettingInput)
	}{
		{"host", func(in *SMTPSettingInput) { in.Host = "" }},
		{"port", func(in *SMTPSettingInput) { in.Port = " " }},
		{"user", func(in *SMTPSettingInput) { in.User = "" }},
		{"password", func(in *SMTPSettingInput) { in.Password = "" }},
		{"sender", func(in *SMTPSettingInput) { in.Sender = "  " }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			in := full
			tc.blank(&in)
			err := svc.SaveSMTP(in)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("blank %s want ErrValidation, got %v", tc.field, err)
			}
			if ErrorDetail(err) != tc.field+" is required" {
				t.Fatalf("unexpected detail: %q", ErrorDetail(err))
			}
		})
	}
	got, _ := svc.GetCategory("smtp")
	if len(got) != 0 {
		t.Fatalf("nothing should be stored, got %+v", got)
	}
}
