package app

import (
	"fmt"
	"net/http"

	"garments-api/internal/config"
	"garments-api/internal/db"
	catalogdomain "garments-api/internal/domain/catalog"
	identitydomain "garments-api/internal/domain/identity"
	measurementdomain "garments-api/internal/domain/measurement"
	ordersdomain "garments-api/internal/domain/orders"
	"garments-api/internal/repository/inmemory"
	catalogrepo "garments-api/internal/repository/postgres/catalog"
	identityrepo "garments-api/internal/repository/postgres/identity"
	measurementrepo "garments-api/internal/repository/postgres/measurement"
	ordersrepo "garments-api/internal/repository/postgres/orders"
	"garments-api/internal/transport/httpserver"
	"garments-api/internal/transport/httpserver/handler"
	"garments-api/internal/transport/httpserver/middleware"
	"garments-api/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		applied, err := db.Migrate(dbConn)
		if err != nil {
			closeDB(dbConn)
			return nil, fmt.Errorf("migrate: %w", err)
		}
		log.Info("db: migrations applied", "count", applied)
	}

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, NewHandlers(dbConn, cfg, log), newMetrics(cfg))

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

// NewHandlers wires repositories and services over dbConn.
func NewHandlers(dbConn *gorm.DB, cfg config.Config, log logger.Logger) *handler.Handlers {
	identityService := identitydomain.NewService(
		identityrepo.NewPostgres(dbConn),
		identitydomain.NewBcryptHasher(cfg.Security.BcryptCost),
	)
	catalogService := catalogdomain.NewService(catalogrepo.NewPostgres(dbConn))
	measurementService := measurementdomain.NewService(measurementrepo.NewPostgres(dbConn), identityService).
		WithSectionsCache(inmemory.NewSectionsCache(), cfg.Cache.SectionsTTL)
	ordersService := ordersdomain.NewService(ordersrepo.NewPostgres(dbConn), identityService)

	return handler.New(identityService, catalogService, measurementService, ordersService, log)
}

func newMetrics(cfg config.Config) *middleware.Metrics {
	if !cfg.Metrics.Enabled {
		return nil
	}
	return middleware.NewMetrics()
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func closeDB(dbConn *gorm.DB) {
	if sqlDB, err := dbConn.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
