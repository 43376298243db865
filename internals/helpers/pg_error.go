// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

/* --- PG error mapping --- */

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// IsUniqueViolation: SQLSTATE 23505 (unique_violation).
func IsUniqueViolation(err error) bool {
	var pgErr pgSQLErr
	return errors.As(err, &pgErr) && pgErr.SQLState() == "23505"
}

// IsForeignKeyViolation: SQLSTATE 23503 (foreign_key_violation).
func IsForeignKeyViolation(err error) bool {
	var pgErr pgSQLErr
	return errors.As(err, &pgErr) && pgErr.SQLState() == "23503"
}

func MapPGError(err error) (int, string) {
	// 23505 = unique_violation
	// 23503 = foreign_key_violation
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return http.StatusConflict, "Data duplikat (unique violation)."
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		}
	}
	return http.StatusInternalServerError, "internal server error"
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}
