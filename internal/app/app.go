package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/chromacraft/chromacraft/config"
	"github.com/chromacraft/chromacraft/internal/database"
	"github.com/chromacraft/chromacraft/internal/domain"
	httpHandler "github.com/chromacraft/chromacraft/internal/http"
	"github.com/chromacraft/chromacraft/internal/http/middleware"
	"github.com/chromacraft/chromacraft/internal/repository"
	"github.com/chromacraft/chromacraft/internal/service"
	"github.com/chromacraft/chromacraft/pkg/logger"
	"github.com/chromacraft/chromacraft/pkg/mailer"
	"github.com/chromacraft/chromacraft/pkg/notifier"
	"github.com/chromacraft/chromacraft/pkg/storage"
)

// App encapsulates the application dependencies and configuration
type App struct {
	config   *config.Config
	logger   logger.Logger
	db       *sql.DB
	mailer   mailer.Mailer
	notifier notifier.Notifier
	storage  storage.BlobStorage
	mux      *http.ServeMux
	server   *http.Server

	// Repositories
	quoteRepo        domain.QuoteRepository
	productRepo      domain.ProductRepository
	cartRepo         domain.CartRepository
	orderRepo        domain.OrderRepository
	giftCertRepo     domain.GiftCertificateRepository
	testimonialRepo  domain.TestimonialRepository
	serviceRepo      domain.ServiceRepository
	businessInfoRepo domain.BusinessInfoRepository
	galleryRepo      domain.GalleryRepository
	sprayerRepo      domain.SprayerRepository
	blogRepo         domain.BlogRepository
	teamRepo         domain.TeamRepository

	// Services
	authService     *service.AuthService
	quoteService    *service.QuoteService
	cartService     *service.CartService
	orderService    *service.OrderService
	giftCertService *service.GiftCertificateService
	galleryService  *service.GalleryService

	mockDB bool
}

// AppOption configures the App
type AppOption func(*App)

// WithLogger sets a custom logger
func WithLogger(l logger.Logger) AppOption {
	return func(a *App) {
		a.logger = l
	}
}

// WithMockDB injects a pre-built database handle (tests use sqlmock) and
// skips connecting and schema initialization
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
		a.mockDB = true
	}
}

// WithMailer sets a custom mailer
func WithMailer(m mailer.Mailer) AppOption {
	return func(a *App) {
		a.mailer = m
	}
}

// WithNotifier sets a custom owner notifier
func WithNotifier(n notifier.Notifier) AppOption {
	return func(a *App) {
		a.notifier = n
	}
}

// WithStorage sets a custom blob storage
func WithStorage(s storage.BlobStorage) AppOption {
	return func(a *App) {
		a.storage = s
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	a := &App{
		config: cfg,
		mux:    http.NewServeMux(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = logger.NewLoggerWithLevel(cfg.LogLevel)
	}

	return a
}

// InitDB connects to PostgreSQL and ensures the schema exists
func (a *App) InitDB() error {
	if a.mockDB {
		return nil
	}

	db, err := sql.Open("postgres", database.GetDSN(&a.config.Database))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.InitializeDatabase(db); err != nil {
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	a.db = db
	return nil
}

// InitMailer picks the SMTP mailer when configured, console otherwise
func (a *App) InitMailer() error {
	if a.mailer != nil {
		return nil
	}

	if a.config.SMTP.Host == "" {
		a.logger.Info("SMTP not configured, using console mailer")
		a.mailer = mailer.NewConsoleMailer()
		return nil
	}

	a.mailer = mailer.NewSMTPMailer(&mailer.Config{
		SMTPHost:     a.config.SMTP.Host,
		SMTPPort:     a.config.SMTP.Port,
		SMTPUsername: a.config.SMTP.Username,
		SMTPPassword: a.config.SMTP.Password,
		FromEmail:    a.config.SMTP.FromEmail,
		FromName:     a.config.SMTP.FromName,
		SiteURL:      a.config.SiteURL,
	})
	return nil
}

// InitNotifier picks the webhook notifier when configured, console otherwise
func (a *App) InitNotifier() error {
	if a.notifier != nil {
		return nil
	}

	if a.config.Notification.WebhookURL == "" {
		a.logger.Info("Notification webhook not configured, using console notifier")
		a.notifier = notifier.NewConsoleNotifier()
		return nil
	}

	a.notifier = notifier.NewWebhookNotifier(a.config.Notification.WebhookURL)
	return nil
}

// InitStorage picks S3 storage when a bucket is configured, in-memory otherwise
func (a *App) InitStorage() error {
	if a.storage != nil {
		return nil
	}

	if a.config.Storage.Bucket == "" {
		a.logger.Warn("Blob storage not configured, using in-memory storage")
		a.storage = storage.NewMemoryStorage(a.config.APIEndpoint + "/files")
		return nil
	}

	s3, err := storage.NewS3Storage(&storage.Config{
		Endpoint:       a.config.Storage.Endpoint,
		Region:         a.config.Storage.Region,
		Bucket:         a.config.Storage.Bucket,
		AccessKey:      a.config.Storage.AccessKey,
		SecretKey:      a.config.Storage.SecretKey,
		PublicBaseURL:  a.config.Storage.PublicBaseURL,
		ForcePathStyle: a.config.Storage.ForcePathStyle,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize blob storage: %w", err)
	}

	a.storage = s3
	return nil
}

// InitRepositories constructs the PostgreSQL repositories
func (a *App) InitRepositories() error {
	a.quoteRepo = repository.NewQuoteRepository(a.db)
	a.productRepo = repository.NewProductRepository(a.db)
	a.cartRepo = repository.NewCartRepository(a.db)
	a.orderRepo = repository.NewOrderRepository(a.db)
	a.giftCertRepo = repository.NewGiftCertificateRepository(a.db)
	a.testimonialRepo = repository.NewTestimonialRepository(a.db)
	a.serviceRepo = repository.NewServiceRepository(a.db)
	a.businessInfoRepo = repository.NewBusinessInfoRepository(a.db)
	a.galleryRepo = repository.NewGalleryRepository(a.db)
	a.sprayerRepo = repository.NewSprayerRepository(a.db)
	a.blogRepo = repository.NewBlogRepository(a.db)
	a.teamRepo = repository.NewTeamRepository(a.db)
	return nil
}

// InitServices constructs the service layer
func (a *App) InitServices() error {
	a.authService = service.NewAuthService(&a.config.Admin, a.logger)
	a.quoteService = service.NewQuoteService(a.quoteRepo, a.storage, a.mailer, a.notifier, a.logger, a.config.Admin.AlertEmail)
	a.cartService = service.NewCartService(a.cartRepo, a.logger)
	a.orderService = service.NewOrderService(a.orderRepo, a.notifier, a.logger)
	a.giftCertService = service.NewGiftCertificateService(a.giftCertRepo, a.mailer, a.logger)
	a.galleryService = service.NewGalleryService(a.galleryRepo, a.logger)
	return nil
}

// InitHandlers registers all HTTP routes on the mux
func (a *App) InitHandlers() error {
	adminMiddleware := middleware.NewAdminMiddleware(a.authService, a.config.Admin.SessionCookie)
	requireAdmin := adminMiddleware.RequireAdmin()

	httpHandler.NewRootHandler(a.config.Version).RegisterRoutes(a.mux)
	httpHandler.NewAuthHandler(a.authService, a.logger, a.config.Admin.SessionCookie, !a.config.IsDevelopment()).RegisterRoutes(a.mux)
	httpHandler.NewQuoteHandler(a.quoteService, a.logger).RegisterRoutes(a.mux, requireAdmin)
	httpHandler.NewProductHandler(a.productRepo, a.logger).RegisterRoutes(a.mux, requireAdmin)
	httpHandler.NewCartHandler(a.cartService, a.logger).RegisterRoutes(a.mux)
	httpHandler.NewOrderHandler(a.orderService, a.logger).RegisterRoutes(a.mux, requireAdmin)
	httpHandler.NewGiftCertificateHandler(a.giftCertService, a.logger).RegisterRoutes(a.mux, requireAdmin)
	httpHandler.NewTestimonialHandler(a.testimonialRepo, a.logger).RegisterRoutes(a.mux, requireAdmin)
	httpHandler.NewServiceHandler(a.serviceRepo, a.logger).RegisterRoutes(a.mux, requireAdmin)
	httpHandler.NewBusinessInfoHandler(a.businessInfoRepo, a.logger).RegisterRoutes(a.mux, requireAdmin)
	httpHandler.NewGalleryHandler(a.galleryService, a.logger).RegisterRoutes(a.mux, requireAdmin)
	httpHandler.NewSprayerHandler(a.sprayerRepo, a.logger).RegisterRoutes(a.mux, requireAdmin)
	httpHandler.NewBlogHandler(a.blogRepo, a.logger).RegisterRoutes(a.mux, requireAdmin)
	httpHandler.NewTeamHandler(a.teamRepo, a.logger).RegisterRoutes(a.mux, requireAdmin)

	return nil
}

// Initialize runs all initialization phases in order
func (a *App) Initialize() error {
	if err := a.InitDB(); err != nil {
		return err
	}
	if err := a.InitMailer(); err != nil {
		return err
	}
	if err := a.InitNotifier(); err != nil {
		return err
	}
	if err := a.InitStorage(); err != nil {
		return err
	}
	if err := a.InitRepositories(); err != nil {
		return err
	}
	if err := a.InitServices(); err != nil {
		return err
	}
	return a.InitHandlers()
}

// Start runs the HTTP server until it fails or is shut down
func (a *App) Start() error {
	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   a.config.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      corsMiddleware.Handler(a.mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	a.logger.WithField("addr", addr).Info("HTTP server listening")
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully and closes the database
func (a *App) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
	}

	if a.db != nil && !a.mockDB {
		if err := a.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	a.logger.Info("Shutdown complete")
	return nil
}

// GetConfig returns the app configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the route mux, used by tests to drive requests
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the database handle
func (a *App) GetDB() *sql.DB {
	return a.db
}
