package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/protocolo-digital/protocolo/internal/app"
	"github.com/protocolo-digital/protocolo/internal/audit"
	"github.com/protocolo-digital/protocolo/internal/auth"
	"github.com/protocolo-digital/protocolo/internal/platform/db"
	"github.com/protocolo-digital/protocolo/internal/protocols"
	"github.com/protocolo-digital/protocolo/internal/rbac"
	"github.com/protocolo-digital/protocolo/internal/roles"
	"github.com/protocolo-digital/protocolo/internal/shared"
	"github.com/protocolo-digital/protocolo/internal/templates"
	"github.com/protocolo-digital/protocolo/internal/users"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool, logger); err != nil {
		logger.Error("migrate database", slog.Any("error", err))
		os.Exit(1)
	}

	sessionManager := shared.NewSessionManager(cfg.SessionCookie, cfg.SessionTTL)
	recorder := audit.NewRecorder(pool, logger)

	rbacService := rbac.NewService(pool)
	rbacMiddleware := rbac.Middleware{Sessions: sessionManager, Resolver: rbacService, Logger: logger}

	authRepo := auth.NewRepository(pool)
	authService := auth.NewService(authRepo)
	authHandler := auth.NewHandler(logger, authService, sessionManager, recorder)

	protocolsRepo := protocols.NewRepository(pool)
	protocolsService := protocols.NewService(protocolsRepo, time.Now)
	protocolsHandler := protocols.NewHandler(logger, protocolsService, recorder, rbacMiddleware)

	templatesRepo := templates.NewRepository(pool)
	templatesService := templates.NewService(templatesRepo, time.Now)
	templatesHandler := templates.NewHandler(logger, templatesService, recorder, rbacMiddleware)

	usersRepo := users.NewRepository(pool)
	usersService := users.NewService(usersRepo)
	usersHandler := users.NewHandler(logger, usersService, recorder, rbacMiddleware)

	rolesRepo := roles.NewRepository(pool)
	rolesService := roles.NewService(rolesRepo)
	rolesHandler := roles.NewHandler(logger, rolesService, recorder, rbacMiddleware)

	auditRepo := audit.NewRepository(pool)
	auditService := audit.NewService(auditRepo)
	auditHandler := audit.NewHandler(logger, auditService)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		RBACMiddleware:   rbacMiddleware,
		AuthHandler:      authHandler,
		ProtocolsHandler: protocolsHandler,
		TemplatesHandler: templatesHandler,
		UsersHandler:     usersHandler,
		RolesHandler:     rolesHandler,
		AuditHandler:     auditHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server exit", slog.Any("error", err))
		os.Exit(1)
	}
}
