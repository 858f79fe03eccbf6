package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// UniqueViolation reports whether err is a unique-constraint failure and, if
// so, whether it involves the given index. An empty index matches any unique
// violation.
//
// Postgres errors are matched by constraint name; SQLite only reports
// "UNIQUE constraint failed: table.column", so indexName must follow the
// idx_<table>_<column> convention used by the models.
func UniqueViolation(err error, indexName string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return false
		}
		return indexName == "" || pgErr.ConstraintName == indexName
	}

	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return false
	}
	if indexName == "" {
		return true
	}
	table, column, ok := splitIndexName(indexName)
	if !ok {
		return false
	}
	return strings.Contains(msg, table+"."+column)
}

func splitIndexName(name string) (table, column string, ok bool) {
	rest, found := strings.CutPrefix(name, "idx_")
	if !found {
		return "", "", false
	}
	table, column, ok = strings.Cut(rest, "_")
	return table, column, ok
}
