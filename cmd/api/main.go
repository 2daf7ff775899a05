package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/suyashwaghate123/happyhomesbackend/internal/admissions"
	"github.com/suyashwaghate123/happyhomesbackend/internal/auth"
	"github.com/suyashwaghate123/happyhomesbackend/internal/cache"
	"github.com/suyashwaghate123/happyhomesbackend/internal/config"
	"github.com/suyashwaghate123/happyhomesbackend/internal/content"
	"github.com/suyashwaghate123/happyhomesbackend/internal/db"
	"github.com/suyashwaghate123/happyhomesbackend/internal/leads"
	"github.com/suyashwaghate123/happyhomesbackend/internal/middleware"
	"github.com/suyashwaghate123/happyhomesbackend/internal/notifications"
	"github.com/suyashwaghate123/happyhomesbackend/internal/transport"
	"github.com/suyashwaghate123/happyhomesbackend/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The site must stay up on fixtures and in-memory intake storage when
	// the document store is unreachable, so a failed connect downgrades
	// instead of exiting.
	var cols *db.Collections
	if cfg.MongoURI != "" {
		client, connected, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			logger.Warn("mongo unavailable, serving static data", slog.String("error", err.Error()))
		} else {
			cols = connected
			logger.Info("mongo connected", slog.String("db", cfg.MongoDB))
			defer client.Disconnect(context.Background())

			if err := db.EnsureIndexes(ctx, cols); err != nil {
				logger.Warn("index creation failed", slog.String("error", err.Error()))
			}
		}
	} else {
		logger.Info("no mongo uri configured, serving static data")
	}

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("redis connected")
		cacheStore = redisCache
	}

	var jwtManager *auth.Manager
	if cfg.JWTSecret != "" {
		jwtManager = &auth.Manager{
			Secret:    []byte(cfg.JWTSecret),
			AccessTTL: time.Duration(cfg.AccessTTLMinutes) * time.Minute,
			Issuer:    "happyhomes-backend",
		}
	}

	val := validation.New()

	brevo := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.BrevoSandbox)
	mailer := notifications.NewMailer(brevo, cfg.AdminEmail)
	if mailer == nil {
		logger.Info("mail notifications disabled")
	} else {
		logger.Info("mail notifications enabled", slog.String("sender", cfg.BrevoSenderEmail))
	}

	var contentStore content.Store
	if cols != nil {
		contentStore = content.NewMongoStore(cols)
	}
	resolver := content.NewResolver(contentStore, logger)
	contentHandler := content.NewHandler(resolver, cacheStore, time.Duration(cfg.CacheTTLSeconds)*time.Second, logger)

	var leadRepo leads.Repository
	var admissionRepo admissions.Repository
	if cols != nil {
		leadRepo = leads.NewMongoRepository(cols.Leads, cols.Visitors)
		admissionRepo = admissions.NewMongoRepository(cols.Admissions)
	} else {
		leadRepo = leads.NewMemoryRepository()
		admissionRepo = admissions.NewMemoryRepository()
	}

	var notifier leads.Notifier
	if mailer != nil {
		notifier = mailer
	}
	leadService := leads.NewService(leadRepo, cfg.Timezone, notifier)
	leadHandler := leads.NewHandler(leadService, val, logger)

	admissionService := admissions.NewService(admissionRepo, leadService, cfg.Timezone)
	admissionHandler := admissions.NewHandler(admissionService, val, logger)

	authHandler := auth.NewHandler(cfg, jwtManager, val, logger)

	intakeLimiter := middleware.NewRateLimiter(cfg.RateLimitIntake, time.Duration(cfg.RateLimitWindowSec)*time.Second)
	adminOnly := middleware.AdminAuth(cfg.AdminAPIKey, jwtManager)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.FrontendOrigins))
	r.Use(chiMiddleware.Timeout(30 * time.Second))

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		transport.WriteData(w, http.StatusOK, "Happy Homes API is running", map[string]interface{}{
			"status": "ok",
			"time":   time.Now().In(cfg.Timezone).Format(time.RFC3339),
		})
	})

	r.Get("/api/db-status", func(w http.ResponseWriter, _ *http.Request) {
		source := transport.SourceStatic
		if resolver.Available() {
			source = transport.SourceDatabase
		}
		transport.WriteData(w, http.StatusOK, "Data source status", map[string]interface{}{
			"connected": resolver.Available(),
			"source":    source,
		})
	})

	r.Route("/api/website", func(api chi.Router) {
		api.Get("/settings", contentHandler.GetSiteSettings)
		api.Get("/home", contentHandler.GetHomePage)
		api.Get("/popup", contentHandler.GetHomePopup)
		api.Get("/sliders", contentHandler.GetSliders)
		api.Get("/about", contentHandler.GetAboutPage)
		api.Get("/services", contentHandler.GetServices)
		api.Get("/services/{id}", contentHandler.GetServiceByID)
		api.Get("/team", contentHandler.GetTeamMembers)
		api.Get("/testimonials", contentHandler.GetTestimonials)
		api.Get("/gallery", contentHandler.GetGallery)
		api.Get("/gallery/{category}", contentHandler.GetGalleryByCategory)
		api.Get("/blogs", contentHandler.GetBlogPosts)
		api.Get("/blogs/{slug}", contentHandler.GetBlogBySlug)
		api.Get("/events", contentHandler.GetEvents)
		api.Get("/events/{id}", contentHandler.GetEventByID)
		api.Get("/statistics", contentHandler.GetStatistics)
		api.Get("/faqs", contentHandler.GetFAQs)
		api.Get("/living-options", contentHandler.GetLivingOptions)
	})

	r.Route("/api/leads", func(api chi.Router) {
		api.With(intakeLimiter.Middleware).Post("/inquiry", leadHandler.SubmitInquiry)
		api.With(intakeLimiter.Middleware).Post("/appointment", leadHandler.SubmitAppointment)
		api.With(intakeLimiter.Middleware).Post("/contact", leadHandler.SubmitContact)
		api.With(intakeLimiter.Middleware).Post("/visit", leadHandler.SubmitVisit)

		api.With(intakeLimiter.Middleware).Post("/admission/step", admissionHandler.SubmitStep)
		api.Post("/admission/complete", admissionHandler.Complete)
		api.Get("/admission/{applicationId}", admissionHandler.Get)

		api.Post("/admin/login", authHandler.Login)
		api.Post("/admin/logout", authHandler.Logout)

		api.Group(func(admin chi.Router) {
			admin.Use(adminOnly)
			admin.Get("/", leadHandler.AdminList)
			admin.Patch("/{id}/status", leadHandler.AdminUpdate)
			admin.Get("/visitors", leadHandler.AdminListVisitors)
			admin.Get("/admissions", admissionHandler.AdminList)
			admin.Patch("/admissions/{applicationId}/status", admissionHandler.AdminUpdateStatus)
		})
	})

	srv := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: r,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}
