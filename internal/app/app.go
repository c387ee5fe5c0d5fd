package app

import (
	"net/http"

	"wedding-planner-go/internal/config"
	"wedding-planner-go/internal/db"
	documentsdomain "wedding-planner-go/internal/domain/documents"
	eventdomain "wedding-planner-go/internal/domain/event"
	financedomain "wedding-planner-go/internal/domain/finance"
	guestsdomain "wedding-planner-go/internal/domain/guests"
	metricsdomain "wedding-planner-go/internal/domain/metrics"
	notesdomain "wedding-planner-go/internal/domain/notes"
	planningdomain "wedding-planner-go/internal/domain/planning"
	registrydomain "wedding-planner-go/internal/domain/registry"
	tasksdomain "wedding-planner-go/internal/domain/tasks"
	userdomain "wedding-planner-go/internal/domain/user"
	documentsrepo "wedding-planner-go/internal/repository/postgres/documents"
	eventrepo "wedding-planner-go/internal/repository/postgres/event"
	financerepo "wedding-planner-go/internal/repository/postgres/finance"
	guestsrepo "wedding-planner-go/internal/repository/postgres/guests"
	metricsrepo "wedding-planner-go/internal/repository/postgres/metrics"
	notesrepo "wedding-planner-go/internal/repository/postgres/notes"
	planningrepo "wedding-planner-go/internal/repository/postgres/planning"
	registryrepo "wedding-planner-go/internal/repository/postgres/registry"
	tasksrepo "wedding-planner-go/internal/repository/postgres/tasks"
	userrepo "wedding-planner-go/internal/repository/postgres/user"
	"wedding-planner-go/internal/transport/httpserver"
	"wedding-planner-go/internal/transport/httpserver/handler"
	authmw "wedding-planner-go/internal/transport/httpserver/middleware"
	"wedding-planner-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg := config.Load()

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	users := userdomain.NewService(userrepo.NewPostgres(dbConn), cfg.Session.TTL)
	events := eventdomain.NewService(eventrepo.NewPostgres(dbConn))
	taskSvc := tasksdomain.NewService(tasksrepo.NewPostgres(dbConn))
	finance := financedomain.NewService(financerepo.NewPostgres(dbConn))
	guestSvc := guestsdomain.NewService(guestsrepo.NewPostgres(dbConn))
	registrySvc := registrydomain.NewService(registryrepo.NewPostgres(dbConn))
	planningSvc := planningdomain.NewService(planningrepo.NewPostgres(dbConn))
	documentSvc := documentsdomain.NewService(documentsrepo.NewPostgres(dbConn))
	noteSvc := notesdomain.NewService(notesrepo.NewPostgres(dbConn))
	metricsSvc := metricsdomain.NewService(metricsrepo.NewPostgres(dbConn))

	handlers := handler.New(handler.Deps{
		Users:     users,
		Events:    events,
		Tasks:     taskSvc,
		Finance:   finance,
		Guests:    guestSvc,
		Registry:  registrySvc,
		Planning:  planningSvc,
		Documents: documentSvc,
		Notes:     noteSvc,
		Metrics:   metricsSvc,
	}, cfg.Session, log)

	auth := authmw.NewSessionAuth(cfg.Session, users, events, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg.AllowedOrigins, handlers, auth)

	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
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
