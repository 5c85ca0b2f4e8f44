package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/bufu/storefront-api/configs"
	"github.com/bufu/storefront-api/internal/adapter/cache"
	"github.com/bufu/storefront-api/internal/adapter/catalog"
	"github.com/bufu/storefront-api/internal/adapter/http"
	"github.com/bufu/storefront-api/internal/adapter/payment"
	"github.com/bufu/storefront-api/internal/logging"
	"github.com/bufu/storefront-api/internal/usecase"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	l := logging.Init("storefront", cfg.App.LogFile)
	l.Info("storefront: starting up")

	// redis is optional; without it the catalog is fetched directly
	var productCache usecase.ProductCache
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			return nil, nil, err
		}
		productCache = cache.NewRedisProductCache(rdb, cfg.Redis.CacheTTL)
	}

	catalogClient := catalog.NewClient(cfg)
	gateway := payment.NewClient(cfg)

	listUC := usecase.NewListProducts(catalogClient, productCache)
	checkoutUC := usecase.NewCheckout(catalogClient, gateway, productCache)
	confirmUC := usecase.NewConfirmOrder(gateway)

	h := http.NewStorefrontHandler(listUC, checkoutUC, confirmUC)
	router := http.NewRouter(h)

	cleanup := func() {
		if rdb != nil {
			_ = rdb.Close()
		}
	}

	return &App{Router: router}, cleanup, nil
}
