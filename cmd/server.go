package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Abraxas-365/careersync/careers/account/accountapi"
	"github.com/Abraxas-365/careersync/careers/application/applicationapi"
	"github.com/Abraxas-365/careersync/careers/ats/atsapi"
	"github.com/Abraxas-365/careersync/careers/coverletter/coverletterapi"
	"github.com/Abraxas-365/careersync/careers/resume/resumeapi"
	"github.com/Abraxas-365/careersync/pkg/config"
	"github.com/Abraxas-365/careersync/pkg/errx"
	"github.com/Abraxas-365/careersync/pkg/eventx"
	"github.com/Abraxas-365/careersync/pkg/iam/auth"
	"github.com/Abraxas-365/careersync/pkg/logx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// bodyLimit covers multipart resume uploads
const bodyLimit = 10 * 1024 * 1024

func serve(cfg *config.Config) error {
	logx.Infof("Starting CareerSync API %s...", version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. Initialize Dependency Container
	container := NewContainer(ctx, cfg)
	defer container.Close()
	logx.Debugf("Dependencies ready: %s", container)

	// 2. Background event workers
	container.Dispatcher.Start(ctx)

	// 3. HTTP app
	app := newApp(container)

	// 4. Start Server with Graceful Shutdown
	errCh := make(chan error, 1)
	go func() {
		logx.Infof("Server listening on port %s", cfg.Port)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	var listenErr error
	select {
	case <-sig:
	case listenErr = <-errCh:
	}
	logx.Info("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	cancel()
	container.Dispatcher.Wait()

	logx.Info("Server exited")
	return listenErr
}

func newApp(container *Container) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "CareerSync API",
		DisableStartupMessage: true,
		BodyLimit:             bodyLimit,
		ErrorHandler:          globalErrorHandler,
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins(container.Config),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		status := fiber.Map{
			"status": "ok",
			"db":     container.DB.PingContext(c.Context()) == nil,
		}
		if container.Redis != nil {
			status["redis"] = container.Redis.Ping(c.Context()).Err() == nil
		}
		if q, ok := container.Events.(eventx.StatsReporter); ok {
			stats, err := q.Stats(c.Context())
			if err != nil {
				logx.Warnf("Reading event queue size: %v", err)
			} else {
				status["events"] = stats
			}
		}
		return c.JSON(status)
	})

	var aiLimits []fiber.Handler
	if container.AILimiter != nil {
		aiLimits = append(aiLimits, container.AILimiter)
	}

	// Routes
	// /api/auth/*
	auth.RegisterRoutes(app, container.AuthHandlers, container.AuthMiddleware)
	// /api/jobs/*
	applicationapi.RegisterRoutes(app, container.ApplicationHandlers, container.AuthMiddleware)
	// /api/resume/*
	resumeapi.RegisterRoutes(app, container.ResumeHandlers, container.AuthMiddleware, aiLimits...)
	// /api/ats/*
	atsapi.RegisterRoutes(app, container.ATSHandlers, container.AuthMiddleware, aiLimits...)
	// /api/cover-letter/*
	coverletterapi.RegisterRoutes(app, container.CoverLetterHandlers, container.AuthMiddleware, aiLimits...)
	// /api/user/*
	accountapi.RegisterRoutes(app, container.AccountHandlers, container.AuthMiddleware, aiLimits...)

	return app
}

// corsOrigins always admits the configured frontend
func corsOrigins(cfg *config.Config) string {
	origins := strings.TrimSpace(cfg.CORSOrigins)
	if origins == "" {
		return cfg.FrontendURL
	}
	if origins == "*" || cfg.FrontendURL == "" || strings.Contains(origins, cfg.FrontendURL) {
		return origins
	}
	return origins + "," + cfg.FrontendURL
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// Fiber errors (404 route not found, body too large)
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"error": fe.Message,
			"code":  fe.Code,
		})
	}

	if e, ok := errx.As(err); ok {
		if e.HTTPStatus >= fiber.StatusInternalServerError {
			logx.Errorf("%s %s: %v", c.Method(), c.Path(), e)
		}
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	// Default unknown error
	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
