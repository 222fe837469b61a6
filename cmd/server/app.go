package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/proyectozoo/zoo-api/internal/api"
	apiMiddleware "github.com/proyectozoo/zoo-api/internal/api/middleware"
	"github.com/proyectozoo/zoo-api/internal/config"
	"github.com/proyectozoo/zoo-api/internal/i18n"
	"github.com/proyectozoo/zoo-api/internal/platform/imagestore"
	"github.com/proyectozoo/zoo-api/internal/platform/metrics"
	"github.com/proyectozoo/zoo-api/internal/platform/postgres"
	"github.com/proyectozoo/zoo-api/internal/service"
	"github.com/proyectozoo/zoo-api/internal/service/auth"
	"github.com/proyectozoo/zoo-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	metrics    *metrics.Metrics
	translator *i18n.Translator
	images     imagestore.Store

	userStore    store.UserStore
	animalStore  store.AnimalStore
	sectionStore store.SectionStore
	eventStore   store.EventStore
	commentStore store.CommentStore

	jwtService auth.JWTService
	authorizer *auth.Authorizer

	animalService  service.AnimalService
	sectionService service.SectionService
	eventService   service.EventService
	commentService service.CommentService
	userService    service.UserService
}

// newApplication creates a new application instance with all dependencies initialized.
// The database connection must already be established.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	if cfg.Metrics.Enabled {
		app.metrics = metrics.New()
		if err := app.metrics.RegisterDB(db, "zoo"); err != nil {
			return nil, fmt.Errorf("failed to register database metrics: %w", err)
		}
	}

	app.translator, err = i18n.New(cfg.Server.DefaultLocale)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize translator: %w", err)
	}

	app.images, err = imagestore.New(ctx, cfg.Upload, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image store: %w", err)
	}
	logger.Info("Image store initialized", "backend", cfg.Upload.Backend)

	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.animalStore = postgres.NewPostgresAnimalStore(db, logger)
	app.sectionStore = postgres.NewPostgresSectionStore(db, logger)
	app.eventStore = postgres.NewPostgresEventStore(db, logger)
	app.commentStore = postgres.NewPostgresCommentStore(db, logger)

	app.authorizer = auth.NewAuthorizer(app.jwtService, app.userStore, logger)

	opts := []service.Option{service.WithMetrics(app.metrics)}
	photos := func(dir string) service.Photos {
		return service.Photos{Images: app.images, Dir: dir, DefaultPath: config.DefaultPhoto(dir)}
	}

	app.animalService = service.NewAnimalService(db, app.animalStore, photos(cfg.Upload.AnimalDir), logger, opts...)
	app.sectionService = service.NewSectionService(db, app.sectionStore, photos(cfg.Upload.SectionDir), logger, opts...)
	app.eventService = service.NewEventService(db, app.eventStore, photos(cfg.Upload.EventDir), logger, opts...)
	app.commentService = service.NewCommentService(db, app.commentStore, app.animalStore, logger, opts...)
	app.userService = service.NewUserService(
		db,
		app.userStore,
		auth.NewArgon2Hasher(auth.DefaultArgon2Params),
		app.jwtService,
		photos(cfg.Upload.UserDir),
		logger,
		opts...,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// handlers builds the HTTP handlers over the application's services.
func (app *application) handlers() api.Handlers {
	deps := api.HandlerDeps{
		Errors:         api.NewErrorResponder(app.translator, app.config.Upload.MaxBytes),
		Translator:     app.translator,
		Admins:         app.authorizer,
		Logger:         app.logger,
		MaxUploadBytes: app.config.Upload.MaxBytes,
	}
	return api.Handlers{
		Animals:  api.NewAnimalHandler(app.animalService, deps),
		Sections: api.NewSectionHandler(app.sectionService, deps),
		Events:   api.NewEventHandler(app.eventService, deps),
		Comments: api.NewCommentHandler(app.commentService, deps),
		Users:    api.NewUserHandler(app.userService, deps),
	}
}

// guard builds the token middleware shared by every protected route.
func (app *application) guard() *apiMiddleware.AuthMiddleware {
	return apiMiddleware.NewAuthMiddleware(app.authorizer, app.translator, app.metrics)
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}
	app.logger.Info("Application shutdown completed")
}
