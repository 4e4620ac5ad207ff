package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/rentacar-api/internal/domain"
	"github.com/jhoicas/rentacar-api/internal/domain/entity"
	"github.com/jhoicas/rentacar-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// enterprise_id es NULL para superadmin; en dominio viaja como string vacío.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario. Un email repetido en cualquier tenant
// devuelve domain.ErrEmailAlreadyExists (índice único global).
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, enterprise_id, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, nullIfEmpty(user.EnterpriseID), user.Email, user.PasswordHash,
		user.Role, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT id, enterprise_id, email, password_hash, role, created_at,
		       reset_code, reset_link_token, reset_expires
		FROM users WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, id))
}

// GetByEmail obtiene un usuario por email junto con el estado actual de su
// agencia (join). Para superadmin el estado viene vacío.
func (r *UserRepo) GetByEmail(email string) (*entity.User, string, error) {
	query := `
		SELECT u.id, u.enterprise_id, u.email, u.password_hash, u.role, u.created_at,
		       u.reset_code, u.reset_link_token, u.reset_expires,
		       COALESCE(e.status, '')
		FROM users u
		LEFT JOIN enterprises e ON u.enterprise_id = e.id
		WHERE u.email = $1`
	var (
		u              entity.User
		enterpriseID   *string
		resetCode      *string
		resetLinkToken *string
		resetExpires   *time.Time
		status         string
	)
	err := r.pool.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &enterpriseID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt,
		&resetCode, &resetLinkToken, &resetExpires, &status,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("get user by email: %w", err)
	}
	fillOptional(&u, enterpriseID, resetCode, resetLinkToken, resetExpires)
	return &u, status, nil
}

// ListByEnterprise lista usuarios de una agencia; role vacío lista todos.
func (r *UserRepo) ListByEnterprise(enterpriseID, role string) ([]*entity.User, error) {
	query := `
		SELECT id, enterprise_id, email, password_hash, role, created_at,
		       reset_code, reset_link_token, reset_expires
		FROM users
		WHERE enterprise_id = $1 AND ($2 = '' OR role = $2)
		ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, enterpriseID, role)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var (
			u              entity.User
			eid            *string
			resetCode      *string
			resetLinkToken *string
			resetExpires   *time.Time
		)
		if err := rows.Scan(&u.ID, &eid, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt,
			&resetCode, &resetLinkToken, &resetExpires); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		fillOptional(&u, eid, resetCode, resetLinkToken, resetExpires)
		list = append(list, &u)
	}
	return list, rows.Err()
}

// HasSuperadmin informa si ya existe al menos un superadmin.
func (r *UserRepo) HasSuperadmin() (bool, error) {
	var exists bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM users WHERE role = 'superadmin')`).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check superadmin: %w", err)
	}
	return exists, nil
}

// SetResetProof reemplaza código y token de recuperación con su vencimiento.
// La solicitud más reciente pisa a la anterior sin dejar historial.
func (r *UserRepo) SetResetProof(userID, code, linkToken string, expires time.Time) error {
	query := `
		UPDATE users SET reset_code = $2, reset_link_token = $3, reset_expires = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, userID, code, linkToken, expires)
	if err != nil {
		return fmt.Errorf("set reset proof: %w", err)
	}
	return nil
}

// UpdatePassword cambia el hash y limpia código y token juntos: ninguna de
// las dos pruebas sirve una segunda vez.
func (r *UserRepo) UpdatePassword(userID, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2, reset_code = NULL, reset_link_token = NULL, reset_expires = NULL
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, userID, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *UserRepo) scanOne(row rowScanner) (*entity.User, error) {
	var (
		u              entity.User
		eid            *string
		resetCode      *string
		resetLinkToken *string
		resetExpires   *time.Time
	)
	err := row.Scan(&u.ID, &eid, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt,
		&resetCode, &resetLinkToken, &resetExpires)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	fillOptional(&u, eid, resetCode, resetLinkToken, resetExpires)
	return &u, nil
}

func fillOptional(u *entity.User, enterpriseID, resetCode, resetLinkToken *string, resetExpires *time.Time) {
	if enterpriseID != nil {
		u.EnterpriseID = *enterpriseID
	}
	if resetCode != nil {
		u.ResetCode = *resetCode
	}
	if resetLinkToken != nil {
		u.ResetLinkToken = *resetLinkToken
	}
	u.ResetExpires = resetExpires
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
