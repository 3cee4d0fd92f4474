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

	"github.com/joho/godotenv"

	"github.com/healthtotech/healthbuddy/internal/config"
	"github.com/healthtotech/healthbuddy/internal/db"
	"github.com/healthtotech/healthbuddy/internal/mailer"
	"github.com/healthtotech/healthbuddy/internal/server"
	"github.com/healthtotech/healthbuddy/internal/services"
)

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

var migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations, seed the operator, and exit")

func main() {
	flag.Parse()
	_ = godotenv.Load()
	cfg := config.Load()

	gdb, err := db.ConnectAndMigrate(cfg.DSN, cfg.UseMigrations)
	if err != nil {
		log.Fatalf("database setup failed: %v", err)
	}
	if err := db.SeedOperator(gdb); err != nil {
		log.Fatalf("operator seed failed: %v", err)
	}
	if *migrateOnlyFlag {
		log.Println("migrations completed; exiting as requested")
		return
	}

	var email *services.EmailReport
	if cfg.MailFrom != "" {
		sender, err := mailer.NewSES(context.Background(), cfg.MailFrom)
		if err != nil {
			log.Fatalf("mailer setup failed: %v", err)
		}
		email = services.NewEmailReport(sender)
	} else {
		log.Println("MAIL_FROM not set; email reports disabled")
	}

	handler := server.New(gdb, email)
	srv := &http.Server{Addr: cfg.Addr, Handler: withLogging(handler)}

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
