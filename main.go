package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "busticket/internal/config"
	router "busticket/internal/http"
	"busticket/internal/http/middleware"
	"busticket/internal/jobs"
	"busticket/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	reconcileOnce := flag.Bool("reconcile", false, "run one seat reconciliation pass and exit")
	flag.Parse()

	env, err := intconfig.LoadEnv()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}
	middleware.SetJWTSecret(env.JWTSecret)

	db := intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	if err := intconfig.EnsureSchema(db); err != nil {
		log.Fatalf("schema setup failed: %v", err)
	}

	if *reconcileOnce {
		result, err := services.ReconcileService{}.Run(context.Background())
		if err != nil {
			log.Fatalf("reconciliation failed: %v", err)
		}
		log.Printf("reconciliation done: cleared=%d flagged=%d", result.Cleared, result.Flagged)
		return
	}

	sched, err := jobs.StartReconciler(services.ReconcileService{}, env.ReconcileInterval)
	if err != nil {
		log.Fatalf("scheduler setup failed: %v", err)
	}
	defer jobs.StopScheduler(sched)

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly")
}
