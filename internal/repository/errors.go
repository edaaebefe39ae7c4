package repository

import (
	"errors"
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	mysqlErrNoSuchTable  uint16 = 1146
	mysqlErrDuplicateKey uint16 = 1062
)

const (
	pgErrUndefinedTable  = "42P01"
	pgErrUniqueViolation = "23505"
)

// IsMissingTableError 判断是否为数据表不存在错误（mysql / postgres / sqlite）
func IsMissingTableError(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrNoSuchTable
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrUndefinedTable
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such table")
}

// IsDuplicateKeyError 判断是否为唯一键冲突错误
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrDuplicateKey
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
