package repo

import (
	"context"

	dom "Platform/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence. Username uniqueness is enforced by
// the store's constraint, which makes concurrent registration safe without
// application-level locking.
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	GetByID(ctx context.Context, id int64) (dom.User, error)
	List(ctx context.Context) ([]dom.User, error)
	Create(ctx context.Context, username, passwordHash, email string) (dom.User, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// GetByUsername returns the user by username.
func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, email, active, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Active, &u.CreatedAt)
	return u, err
}

// GetByID returns the user by ID.
func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, email, active, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Active, &u.CreatedAt)
	return u, err
}

// List returns all users ordered by creation time.
func (r *PGUserRepo) List(ctx context.Context) ([]dom.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, username, password_hash, email, active, created_at FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.User
	for rows.Next() {
		var u dom.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Active, &u.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Create inserts a new user and returns it.
func (r *PGUserRepo) Create(ctx context.Context, username, passwordHash, email string) (dom.User, error) {
	query := `
		INSERT INTO users (username, password_hash, email, active)
		VALUES ($1, $2, $3, TRUE)
		RETURNING id, username, password_hash, email, active, created_at`
	var u dom.User
	err := r.db.QueryRow(ctx, query, username, passwordHash, email).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.Active, &u.CreatedAt,
	)
	return u, err
}
