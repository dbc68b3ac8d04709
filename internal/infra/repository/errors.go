package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/customer-crm/internal/httperr"
)

const pgForeignKeyViolation = "23503"

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}

	return false
}

// translateWrite maps a storage error from an insert/update into the
// domain error taxonomy.
func translateWrite(err error, fkField string) error {
	if err == nil {
		return nil
	}
	if isForeignKeyViolation(err) {
		return httperr.ReferentialIntegrityError{Field: fkField, Err: err}
	}
	return err
}

func translateFind(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(resource)
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s as a literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// GLOB has no escape character; metacharacters are wrapped in a
// one-character class instead.
var globEscaper = strings.NewReplacer(`*`, `[*]`, `?`, `[?]`, `[`, `[[]`)

// globContainsPattern builds a case-sensitive SQLite GLOB pattern matching
// s as a literal substring.
func globContainsPattern(s string) string {
	return "*" + globEscaper.Replace(s) + "*"
}
