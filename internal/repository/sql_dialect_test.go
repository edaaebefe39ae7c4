package repository

import "testing"

func TestBuildLikeConditionByDialect(t *testing.T) {
	condition, argCount := buildLikeConditionByDialect("sqlite", []string{"name", " ", "status"})
	if argCount != 2 {
		t.Fatalf("arg count want 2 got %d", argCount)
	}
	if condition != "name LIKE ? OR status LIKE ?" {
		t.Fatalf("unexpected sqlite condition: %s", condition)
	}

	condition, _ = buildLikeConditionByDialect("postgres", []string{"username"})
	if condition != "username ILIKE ?" {
		t.Fatalf("unexpected postgres condition: %s", condition)
	}
}

func TestDBDialectNameDefaultsToSQLite(t *testing.T) {
	if got := dbDialectName(nil); got != "sqlite" {
		t.Fatalf("nil db should default to sqlite, got %s", got)
	}
}

func TestRepeatLikeArgs(t *testing.T) {
	args := repeatLikeArgs("%test%", 3)
	if len(args) != 3 {
		t.Fatalf("args len want 3 got %d", len(args))
	}
	for idx, arg := range args {
		if arg != "%test%" {
			t.Fatalf("args[%d] want %%test%% got %v", idx, arg)
		}
	}
}
