// file: internals/helpers/pg_error.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error codes worth translating for the builder UI.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// TranslateDBError maps gorm/pg errors into *fiber.Error so controllers can
// return them directly. Unknown errors become 500s with the original message.
func TranslateDBError(err error, notFoundMsg string) *fiber.Error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if notFoundMsg == "" {
			notFoundMsg = "Record not found"
		}
		return fiber.NewError(fiber.StatusNotFound, notFoundMsg)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fiber.NewError(fiber.StatusConflict, "Duplicate record")
		case pgForeignKeyViolation:
			return fiber.NewError(fiber.StatusBadRequest, "Referenced record does not exist")
		case pgCheckViolation:
			return fiber.NewError(fiber.StatusBadRequest, "Constraint violated: "+pgErr.ConstraintName)
		}
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
