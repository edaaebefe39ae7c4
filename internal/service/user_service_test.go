package service

import (
	"errors"
	"testing"

	"github.com/fixture-next/internal/models"
	"github.com/fixture-next/internal/repository"

	"gorm.io/gorm"
)

func newUserServiceForTest(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := setupServiceTestDB(t)
	return NewUserService(repository.NewUserRepository(db)), db
}

func TestLoginSeedAdmin(t *testing.T) {
	svc, _ := newUserServiceForTest(t)
	got, err := svc.Login("admin", "admin")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if got.Username != "admin" || got.Role != "admin" {
		t.Fatalf("unexpected login result: %+v", got)
	}
}

func TestLoginWrongPasswordAndUnknownUser(t *testing.T) {
	svc, _ := newUserServiceForTest(t)
	if _, err := svc.Login("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password should be ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login("ghost", "admin"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown user should be ErrInvalidCredentials, got %v", err)
	}
}

func TestCreateUserDefaults(t *testing.T) {
	svc, _ := newUserServiceForTest(t)
	if err := svc.Create(CreateUserInput{Username: "op1"}); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	got, err := svc.Login("op1", "1234")
	if err != nil {
		t.Fatalf("default password should be 1234: %v", err)
	}
	if got.Role != "user" {
		t.Fatalf("default role should be user, got %s", got.Role)
	}
}

func TestCreateUserRejectsBadRoleAndDuplicate(t *testing.T) {
	svc, _ := newUserServiceForTest(t)
	if err := svc.Create(CreateUserInput{Username: "op1", Role: "root"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("invalid role should fail validation, got %v", err)
	}
	err := svc.Create(CreateUserInput{Username: "admin", Password: "x"})
	if !errors.Is(err, ErrConstraint) {
		t.Fatalf("duplicate username should be ErrConstraint, got %v", err)
	}
	if ErrorDetail(err) == "" {
		t.Fatalf("constraint error should carry store message")
	}
}

func TestUpdateUser(t *testing.T) {
	svc, _ := newUserServiceForTest(t)
	if err := svc.Create(CreateUserInput{Username: "op1"}); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if err := svc.Update("op1", UpdateUserInput{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty update should fail validation, got %v", err)
	}
	if err := svc.Update("op1", UpdateUserInput{Password: "new-pass", Role: "admin"}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	got, err := svc.Login("op1", "new-pass")
	if err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if got.Role != "admin" {
		t.Fatalf("role not updated: %s", got.Role)
	}
}

func TestDeleteUser(t *testing.T) {
	svc, db := newUserServiceForTest(t)
	for _, name := range []string{"op1", "op2"} {
		if err := svc.Create(CreateUserInput{Username: name}); err != nil {
			t.Fatalf("create user failed: %v", err)
		}
	}

	if err := svc.Delete("admin"); !errors.Is(err, ErrProtectedUser) {
		t.Fatalf("deleting admin should be protected, got %v", err)
	}
	if err := svc.Delete("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleting unknown user should be ErrNotFound, got %v", err)
	}
	if err := svc.Delete("op1"); err != nil {
		t.Fatalf("delete op1 failed: %v", err)
	}

	var names []string
	if err := db.Model(&models.User{}).Order("username ASC").Pluck("username", &names).Error; err != nil {
		t.Fatalf("pluck usernames failed: %v", err)
	}
	if len(names) != 2 || names[0] != "admin" || names[1] != "op2" {
		t.Fatalf("delete should remove exactly op1, remaining=%v", names)
	}
}

func TestListUsersPaging(t *testing.T) {
	svc, _ := newUserServiceForTest(t)
	for _, name := range []string{"b", "c", "d"} {
		if err := svc.Create(CreateUserInput{Username: name}); err != nil {
			t.Fatalf("create user failed: %v", err)
		}
	}
	page, err := svc.List("", 2, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 4 || page.Page != 2 || page.PageSize != 2 || len(page.Data) != 2 || page.Data[0].Username != "c" {
		t.Fatalf("unexpected page: %+v", page)
	}
}
