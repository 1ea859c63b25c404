package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"Platform/internal/config"
	"Platform/internal/handlers"
	"Platform/internal/repo"
	"Platform/internal/service"
	"Platform/internal/token"
)

// NewAuth builds the auth service: token issuance, validation endpoint,
// user lookup. This service owns the schema, so it runs migrations and
// seeds the demo account.
func NewAuth(cfg config.AuthConfig) (*App, error) {
	a := &App{}

	db, err := newPostgres(cfg.PG.DSN)
	if err != nil {
		return nil, err
	}
	a.db = db

	if err := runMigrations(cfg.PG.DSN, "./migrations"); err != nil {
		a.db.Close()
		return nil, err
	}
	if err := seedDemoUser(context.Background(), db); err != nil {
		a.db.Close()
		return nil, fmt.Errorf("seed demo user: %w", err)
	}

	codec := token.NewCodec([]byte(cfg.JWT.Secret))
	userRepo := repo.NewPGUserRepo(db)
	authSvc := service.NewAuthService(userRepo, codec, cfg.JWT.TTL.Duration())
	authHandler := handlers.NewAuthHandler(authSvc, codec)

	r := newRouter()
	registerHealth(r, cfg.App, "auth-service")

	api := r.Group("/api/v1")
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/validate-token", authHandler.ValidateToken)
	api.GET("/auth/users", authHandler.ListUsers)
	api.GET("/auth/users/:id", authHandler.GetUser)

	a.router = r
	return a, nil
}

// seedDemoUser inserts the demo account john/password123. The unique
// constraint makes this a no-op on every start after the first.
func seedDemoUser(ctx context.Context, db *pgxpool.Pool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, `
		INSERT INTO users (username, password_hash, email, active)
		VALUES ('john', $1, 'john@example.com', TRUE)
		ON CONFLICT (username) DO NOTHING`, string(hash))
	return err
}
