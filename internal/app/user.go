package app

import (
	"Platform/internal/config"
	"Platform/internal/handlers"
	"Platform/internal/identity"
	"Platform/internal/repo"
)

// NewUser builds the user service. It does not hold the signing key:
// tokens are verified remotely against the auth service's validate-token
// endpoint, with a bounded timeout that fails closed.
func NewUser(cfg config.UserConfig) (*App, error) {
	a := &App{}

	db, err := newPostgres(cfg.PG.DSN)
	if err != nil {
		return nil, err
	}
	a.db = db

	verifier := identity.NewClient(cfg.AuthClient.URL, cfg.AuthClient.Timeout.Duration())
	userRepo := repo.NewPGUserRepo(db)
	userHandler := handlers.NewUserHandler(userRepo)

	r := newRouter()
	registerHealth(r, cfg.App, "user-service")

	api := r.Group("/api/v1")
	protected := api.Group("", identity.Require(verifier))
	protected.GET("/users", userHandler.List)
	protected.GET("/users/me", userHandler.Me)
	protected.GET("/users/:id", userHandler.GetByID)

	a.router = r
	return a, nil
}
