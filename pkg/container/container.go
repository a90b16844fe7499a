package container

import (
	"context"
	"fmt"
	"time"

	"flowsite-backend/internal/config"
	infraCache "flowsite-backend/internal/infrastructure/cache"
	"flowsite-backend/internal/infrastructure/database"
	"flowsite-backend/internal/infrastructure/email"
	"flowsite-backend/internal/infrastructure/storage"
	"flowsite-backend/pkg/cache"
	"flowsite-backend/pkg/logger"

	"flowsite-backend/internal/domains/blog"
	blogHandler "flowsite-backend/internal/domains/blog/handler"
	blogRepo "flowsite-backend/internal/domains/blog/repository"
	blogService "flowsite-backend/internal/domains/blog/service"
	"flowsite-backend/internal/domains/contact"
	contactHandler "flowsite-backend/internal/domains/contact/handler"
	contactRepo "flowsite-backend/internal/domains/contact/repository"
	contactService "flowsite-backend/internal/domains/contact/service"
	"flowsite-backend/internal/domains/content"
	contentHandler "flowsite-backend/internal/domains/content/handler"
	contentRepo "flowsite-backend/internal/domains/content/repository"
	contentService "flowsite-backend/internal/domains/content/service"
	"flowsite-backend/internal/domains/newsletter"
	newsletterHandler "flowsite-backend/internal/domains/newsletter/handler"
	newsletterRepo "flowsite-backend/internal/domains/newsletter/repository"
	newsletterService "flowsite-backend/internal/domains/newsletter/service"
)

// Container is the root of the dependency graph. Initialization order
// is config, infrastructure, repositories, services, handlers; each
// layer only sees the ones before it.
type Container struct {
	Config  *config.Config
	DB      *database.PostgresDB
	Cache   cache.Cache
	Storage *storage.MinIOStorage
	Mailer  email.Mailer // nil when RESEND_API_KEY is unset

	ContactRepo    contact.Repository
	NewsletterRepo newsletter.Repository
	BlogRepo       blog.Repository
	ContentRepo    content.Repository

	ContactService    contact.Service
	NewsletterService newsletter.Service
	BlogService       blog.Service
	PagesService      content.PagesService

	ContactHandler    *contactHandler.ContactHandler
	NewsletterHandler *newsletterHandler.NewsletterHandler
	PostHandler       *blogHandler.PostHandler
	PagesHandler      *contentHandler.PagesHandler
	TeamAdminHandler  *contentHandler.TeamAdminHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("config loaded", map[string]interface{}{"environment": cfg.App.Environment})

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db
	logger.Info("database connected", nil)

	// A cache outage degrades to direct reads, so a failed ping is not
	// fatal here.
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(context.Background()); err != nil {
		logger.Warn("redis connection failed, caching degraded", map[string]interface{}{"error": err.Error()})
	} else {
		logger.Info("redis connected", nil)
	}
	c.Cache = redisCache

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = minioStorage
	logger.Info("object storage ready", map[string]interface{}{"bucket": cfg.MinIO.Bucket})

	if cfg.Email.APIKey != "" {
		c.Mailer = email.NewResendMailer(cfg.Email.APIKey, cfg.Email.From, cfg.Site.ContactInbox)
		logger.Info("transactional email enabled", nil)
	} else {
		logger.Warn("RESEND_API_KEY not set, transactional email disabled", nil)
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.ContactRepo = contactRepo.NewPostgresRepository(pool)
	c.NewsletterRepo = newsletterRepo.NewPostgresRepository(pool)
	c.BlogRepo = blogRepo.NewPostgresRepository(pool)
	c.ContentRepo = contentRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.ContactService = contactService.NewContactService(c.ContactRepo, c.Mailer)
	c.NewsletterService = newsletterService.NewNewsletterService(c.NewsletterRepo, c.Mailer)
	c.BlogService = blogService.NewPostService(c.BlogRepo, c.Storage, c.Cache)
	c.PagesService = contentService.NewPagesService(c.ContentRepo, c.Cache)
}

func (c *Container) initHandlers() {
	c.ContactHandler = contactHandler.NewContactHandler(c.ContactService)
	c.NewsletterHandler = newsletterHandler.NewNewsletterHandler(c.NewsletterService)
	c.PostHandler = blogHandler.NewPostHandler(c.BlogService)
	c.PagesHandler = contentHandler.NewPagesHandler(c.PagesService, c.BlogService)
	c.TeamAdminHandler = contentHandler.NewTeamAdminHandler(c.PagesService)
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		logger.Info("database connections closed", nil)
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok && rc != nil {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis", err)
		} else {
			logger.Info("redis connections closed", nil)
		}
	}
}
