package app

import (
	"Platform/internal/cache"
	"Platform/internal/config"
	"Platform/internal/handlers"
	"Platform/internal/identity"
	"Platform/internal/repo"
	"Platform/internal/service"
	"Platform/internal/token"
)

// NewOrder builds the order service. It holds the signing key and verifies
// bearer tokens locally (no round-trip to the auth service).
func NewOrder(cfg config.OrderConfig) (*App, error) {
	a := &App{}

	db, err := newPostgres(cfg.PG.DSN)
	if err != nil {
		return nil, err
	}
	a.db = db

	rdb, err := newRedis(cfg.Redis)
	if err != nil {
		db.Close()
		return nil, err
	}
	a.redis = rdb

	codec := token.NewCodec([]byte(cfg.JWT.Secret))
	orderRepo := repo.NewPGOrderRepo(db)
	orderCache := cache.NewOrderCache(rdb, cfg.Redis.DefaultTTL.Duration())
	orderSvc := service.NewOrderService(orderRepo, orderCache)
	orderHandler := handlers.NewOrderHandler(orderSvc)

	r := newRouter()
	registerHealth(r, cfg.App, "order-service")

	api := r.Group("/api/v1")
	protected := api.Group("", identity.Require(identity.Local{Codec: codec}))
	protected.GET("/orders", orderHandler.List)
	protected.POST("/orders", orderHandler.Create)
	protected.GET("/orders/:id", orderHandler.GetByID)

	a.router = r
	return a, nil
}
