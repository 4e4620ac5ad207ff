package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isExclusionViolation verifica si un error es una violación de constraint de
// exclusión (23P01): dos alquileres activos del mismo vehículo con fechas
// solapadas. Ambas escrituras concurrentes llegan a la DB; exactamente una
// se acepta.
func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01" // exclusion_violation
	}
	return strings.Contains(err.Error(), "23P01")
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
