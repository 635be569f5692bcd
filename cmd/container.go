package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Abraxas-365/careersync/careers/account/accountapi"
	"github.com/Abraxas-365/careersync/careers/account/accountinfra"
	"github.com/Abraxas-365/careersync/careers/account/accountsrv"
	"github.com/Abraxas-365/careersync/careers/application/applicationapi"
	"github.com/Abraxas-365/careersync/careers/application/applicationinfra"
	"github.com/Abraxas-365/careersync/careers/application/applicationsrv"
	"github.com/Abraxas-365/careersync/careers/ats/atsapi"
	"github.com/Abraxas-365/careersync/careers/ats/atssrv"
	"github.com/Abraxas-365/careersync/careers/coverletter/coverletterapi"
	"github.com/Abraxas-365/careersync/careers/coverletter/coverlettersrv"
	"github.com/Abraxas-365/careersync/careers/resume/resumeapi"
	"github.com/Abraxas-365/careersync/careers/resume/resumeinfra"
	"github.com/Abraxas-365/careersync/careers/resume/resumesrv"
	"github.com/Abraxas-365/careersync/internal/ai"
	"github.com/Abraxas-365/careersync/internal/ai/gemini"
	"github.com/Abraxas-365/careersync/internal/ai/keyprobe"
	"github.com/Abraxas-365/careersync/internal/ai/openaichat"
	"github.com/Abraxas-365/careersync/internal/pdf"
	"github.com/Abraxas-365/careersync/pkg/config"
	"github.com/Abraxas-365/careersync/pkg/cryptox"
	"github.com/Abraxas-365/careersync/pkg/eventx"
	"github.com/Abraxas-365/careersync/pkg/eventx/eventxamqp"
	"github.com/Abraxas-365/careersync/pkg/eventx/eventxredis"
	"github.com/Abraxas-365/careersync/pkg/fsx"
	"github.com/Abraxas-365/careersync/pkg/fsx/fsxlocal"
	"github.com/Abraxas-365/careersync/pkg/fsx/fsxs3"
	"github.com/Abraxas-365/careersync/pkg/iam/auth"
	"github.com/Abraxas-365/careersync/pkg/logx"
	"github.com/Abraxas-365/careersync/pkg/ratelimit"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/streadway/amqp"
)

const eventQueueName = "careersync:events"

// Container holds all application dependencies
type Container struct {
	Config *config.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	AMQP       *amqp.Connection
	FileSystem fsx.FileSystem
	Generator  ai.ContentGenerator
	Renderer   pdf.Renderer
	playwright *pdf.PlaywrightRenderer
	Events     eventx.Queue
	Dispatcher *eventx.Dispatcher

	// Services
	TokenService       auth.TokenService
	AuthService        *auth.Service
	ApplicationService *applicationsrv.ApplicationService
	ResumeService      *resumesrv.Service
	ATSService         *atssrv.Service
	CoverLetterService *coverlettersrv.Service
	AccountService     *accountsrv.Service

	// API Handlers
	AuthHandlers        *auth.Handlers
	ApplicationHandlers *applicationapi.Handlers
	ResumeHandlers      *resumeapi.Handlers
	ATSHandlers         *atsapi.Handlers
	CoverLetterHandlers *coverletterapi.Handlers
	AccountHandlers     *accountapi.Handlers

	// Middleware
	AuthMiddleware *auth.TokenMiddleware
	AILimiter      fiber.Handler
}

// NewContainer initializes the dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure(ctx)
	c.initServices()
	return c
}

func (c *Container) initInfrastructure(ctx context.Context) {
	cfg := c.Config

	// 1. Database Connection
	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnLifetime)
	c.DB = db

	// 2. Redis Connection (optional)
	if cfg.UseRedis() {
		c.Redis = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       0,
		})
		if err := c.Redis.Ping(ctx).Err(); err != nil {
			logx.Warnf("Failed to connect to Redis: %v", err)
		}
	}

	// 3. File storage for uploaded resumes
	if cfg.UseS3() {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			logx.Fatalf("unable to load SDK config, %v", err)
		}
		c.FileSystem = fsxs3.NewS3FileSystem(s3.NewFromConfig(awsCfg), cfg.AWSBucket, "uploads")
		logx.Infof("Storing uploads in s3://%s/uploads", cfg.AWSBucket)
	} else {
		if err := os.MkdirAll(cfg.LocalUploadsDir, 0o755); err != nil {
			logx.Fatalf("Failed to create uploads dir: %v", err)
		}
		c.FileSystem = fsxlocal.NewLocalFileSystem(cfg.LocalUploadsDir)
		logx.Infof("Storing uploads in %s", cfg.LocalUploadsDir)
	}

	// 4. AI provider
	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		logx.Fatalf("Failed to create AI client: %v", err)
	}
	c.Generator = gen

	// 5. PDF renderer (optional)
	if cfg.UsePlaywright() {
		r, err := pdf.NewPlaywrightRenderer()
		if err != nil {
			logx.Warnf("PDF downloads disabled: %v", err)
		} else {
			c.playwright = r
			c.Renderer = r
		}
	}

	// 6. Event pipeline
	c.Events = c.eventQueue()
	c.Dispatcher = eventx.NewDispatcher(c.Events, c.eventPublisher(), eventx.DispatcherConfig{
		Workers: cfg.EventWorkers,
	})
}

func newGenerator(ctx context.Context, cfg *config.Config) (ai.ContentGenerator, error) {
	if cfg.UseOpenAI() {
		gen, err := openaichat.NewGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			return nil, err
		}
		logx.Infof("Using OpenAI model %s", gen.Model())
		return gen, nil
	}

	gen, err := gemini.NewGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, err
	}
	logx.Infof("Using Gemini model %s", gen.Model())
	return gen, nil
}

func (c *Container) eventQueue() eventx.Queue {
	if c.Redis != nil {
		return eventxredis.NewRedisQueue(c.Redis, eventQueueName)
	}
	return eventx.NewMemoryQueue(256)
}

func (c *Container) eventPublisher() eventx.Publisher {
	if !c.Config.UseRabbitMQ() {
		return eventx.LogPublisher{}
	}

	conn, err := amqp.Dial(c.Config.RabbitMQURL)
	if err != nil {
		logx.Warnf("RabbitMQ unavailable, logging events instead: %v", err)
		return eventx.LogPublisher{}
	}

	pub, err := eventxamqp.NewPublisher(conn, c.Config.EventsExchange)
	if err != nil {
		_ = conn.Close()
		logx.Warnf("RabbitMQ exchange setup failed, logging events instead: %v", err)
		return eventx.LogPublisher{}
	}
	c.AMQP = conn
	return pub
}

func (c *Container) initServices() {
	cfg := c.Config

	// --- Repositories ---
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)
	resumeRepo := resumeinfra.NewPostgresResumeRepository(c.DB)
	accountRepo := accountinfra.NewPostgresAccountRepository(c.DB)

	// --- Auth ---
	c.TokenService = auth.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	google := auth.NewGoogleProvider(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.OAuthRedirectURL())
	c.AuthService = auth.NewService(google, c.TokenService)

	box, err := cryptox.NewBox(cfg.SecretForEncryption())
	if err != nil {
		logx.Fatalf("Failed to set up key encryption: %v", err)
	}

	// --- Domain Services ---
	c.ApplicationService = applicationsrv.NewApplicationService(applicationRepo, c.Events)
	c.ResumeService = resumesrv.NewService(resumeRepo, c.Generator, c.FileSystem, c.Renderer)
	c.ATSService = atssrv.NewService(c.Generator, c.ResumeService)
	c.CoverLetterService = coverlettersrv.NewService(c.Generator)
	c.AccountService = accountsrv.NewService(accountRepo, box, keyprobe.NewProber(cfg.GeminiModel))

	// --- Handlers ---
	c.AuthHandlers = auth.NewHandlers(c.AuthService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
	c.ResumeHandlers = resumeapi.NewHandlers(c.ResumeService)
	c.ATSHandlers = atsapi.NewHandlers(c.ATSService)
	c.CoverLetterHandlers = coverletterapi.NewHandlers(c.CoverLetterService)
	c.AccountHandlers = accountapi.NewHandlers(c.AccountService)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewTokenMiddleware(c.TokenService)

	limits := ratelimit.Config{
		Max:          cfg.AIRateLimit,
		KeyGenerator: auth.RateLimitKey,
	}
	if c.Redis != nil {
		limits.Storage = ratelimit.NewRedisStorage(c.Redis, "careersync:ratelimit:")
	}
	c.AILimiter = ratelimit.New(limits)
}

// Close releases connections in reverse order of creation
func (c *Container) Close() {
	if c.playwright != nil {
		if err := c.playwright.Close(); err != nil {
			logx.Warnf("Closing PDF renderer: %v", err)
		}
	}
	if c.AMQP != nil {
		_ = c.AMQP.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB != nil {
		_ = c.DB.Close()
	}
}

func (c *Container) String() string {
	return fmt.Sprintf("container(redis=%t, amqp=%t, pdf=%t)", c.Redis != nil, c.AMQP != nil, c.Renderer != nil)
}
