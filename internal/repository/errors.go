package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgErrUniqueViolation = "23505"

// IsUniqueViolation распознаёт нарушение уникального ограничения:
// дубликат района, повторная привязка курьера к району, второй
// активный заказ на одного курьера.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrUniqueViolation
	}
	return false
}
