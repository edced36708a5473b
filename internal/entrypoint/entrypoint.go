package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rmaia/biblioteca/internal/config"
	"github.com/rmaia/biblioteca/internal/database"
	"github.com/rmaia/biblioteca/internal/database/authors"
	"github.com/rmaia/biblioteca/internal/database/books"
	"github.com/rmaia/biblioteca/internal/database/categories"
	"github.com/rmaia/biblioteca/internal/database/loans"
	"github.com/rmaia/biblioteca/internal/database/reports"
	http_controllers "github.com/rmaia/biblioteca/internal/http"
	"github.com/rmaia/biblioteca/internal/scheduler"
	"github.com/rmaia/biblioteca/internal/session"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then shut down with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Biblioteca v%s", version)

	// Schema migration and seeding happen here; a seed lookup failure is a
	// fatal misconfiguration.
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	sqlDB, err := db.DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB for sessions: %v", err)
	}

	sessionManager, err := session.NewManager(sqlDB, cfg.Session)
	if err != nil {
		log.Fatalf("Failed to initialize session manager: %v", err)
	}

	// Use the configured CSRF secret or generate one for this run.
	secret := cfg.Session.Secret
	if secret == "" {
		secret, err = session.GenerateSecret()
		if err != nil {
			log.Fatalf("Failed to generate session secret: %v", err)
		}
		log.Printf("Generated session secret (set SESSION_SECRET to persist)")
	}
	csrfSecret, err := hex.DecodeString(secret)
	if err != nil {
		// Not hex, use as raw bytes
		csrfSecret = []byte(secret)
	}

	backup := scheduler.NewBackupScheduler(cfg.Database.Path, cfg.Backup)
	backupCtx, backupCancel := context.WithCancel(context.Background())
	if err := backup.Start(backupCtx); err != nil {
		log.Fatalf("Failed to start backup scheduler: %v", err)
	}

	routerCfg := http_controllers.RouterConfig{
		Database:      db,
		Authors:       authors.NewRepository(db.DB),
		Categories:    categories.NewRepository(db.DB),
		Books:         books.NewRepository(db.DB),
		Loans:         loans.NewRepository(db.DB),
		Reports:       reports.NewRepository(db.DB),
		Sessions:      sessionManager,
		TemplatesPath: cfg.UI.TemplatesPath,
		StaticPath:    cfg.UI.StaticPath,
		CSRFSecret:    csrfSecret,
		SecureCookies: cfg.Session.SecureCookies,
		Version:       version,
	}

	router := http_controllers.NewRouter(routerCfg)

	onShutdown := func(ctx context.Context) {
		backup.Stop()
		backupCancel()
	}

	Serve(router, cfg, onShutdown)
}
