package repo

import (
	"context"

	dom "Platform/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRepo provides order persistence. GetByID is deliberately not scoped
// by user: handlers fetch the order first and apply the ownership check
// themselves, so a foreign order yields 403 rather than 404.
type OrderRepo interface {
	Create(ctx context.Context, userID int64, details string) (dom.Order, error)
	GetByID(ctx context.Context, id int64) (dom.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]dom.Order, error)
}

// PGOrderRepo implements OrderRepo with Postgres.
type PGOrderRepo struct {
	db *pgxpool.Pool
}

// NewPGOrderRepo returns a new PGOrderRepo.
func NewPGOrderRepo(db *pgxpool.Pool) *PGOrderRepo {
	return &PGOrderRepo{db: db}
}

func (r *PGOrderRepo) Create(ctx context.Context, userID int64, details string) (dom.Order, error) {
	query := `
		INSERT INTO orders (user_id, order_details)
		VALUES ($1, $2)
		RETURNING id, user_id, order_details, created_at`
	var o dom.Order
	err := r.db.QueryRow(ctx, query, userID, details).Scan(
		&o.ID, &o.UserID, &o.Details, &o.CreatedAt,
	)
	return o, err
}

func (r *PGOrderRepo) GetByID(ctx context.Context, id int64) (dom.Order, error) {
	var o dom.Order
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, order_details, created_at FROM orders WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.UserID, &o.Details, &o.CreatedAt)
	return o, err
}

func (r *PGOrderRepo) ListByUser(ctx context.Context, userID int64) ([]dom.Order, error) {
	query := `
		SELECT id, user_id, order_details, created_at
		FROM orders WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Order
	for rows.Next() {
		var o dom.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Details, &o.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	return list, rows.Err()
}
