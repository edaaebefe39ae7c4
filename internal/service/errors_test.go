package service

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorDetailStripsSentinelPrefix(t *testing.T) {
	err := fmt.Errorf("%w: name is required", ErrValidation)
	if got := ErrorDetail(err); got != "name is required" {
		t.Fatalf("unexpected detail: %s", got)
	}
	if got := ErrorDetail(ErrProtectedUser); got != ErrProtectedUser.Error() {
		t.Fatalf("bare sentinel should keep message, got %s", got)
	}
	plain := errors.New("boom")
	if got := ErrorDetail(plain); got != "boom" {
		t.Fatalf("plain error should keep message, got %s", got)
	}
}
