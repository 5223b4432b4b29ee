// Package main запускает HTTP-сервис портала внеклассных активностей школы
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

	"github.com/joho/godotenv"

	httpapi "school-activities-service/internal/http"
	"school-activities-service/internal/repository"
	"school-activities-service/internal/service"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация логгера (JSON)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Чтение конфигурации из ENV; .env подхватывается, если он есть
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using process environment")
	}
	addr := envOr("HTTP_ADDR", ":8080")
	dbPath := envOr("DB_PATH", "data/app.db")
	staticDir := envOr("STATIC_DIR", "static")

	// Открытие файловой БД и идемпотентная миграция
	store, err := repository.NewStore(ctx, dbPath)
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		log.Fatalf("failed to migrate store: %v", err)
	}

	// 1. Инициализация репозиториев.
	// Ростер живёт в памяти и заполняется сидовыми данными при каждом старте.
	rosterRepo := repository.NewRosterRepo(repository.SeedActivities())
	testimonialRepo := repository.NewTestimonialRepo(store)

	// 2. Инициализация сервисов
	rosterService := service.NewRosterService(rosterRepo)
	testimonialService := service.NewTestimonialService(testimonialRepo)

	// 3. Инициализация HTTP-обработчика
	handler := httpapi.NewHandler(rosterService, testimonialService, staticDir, logger)

	server := &http.Server{
		Addr:    addr,
		Handler: handler.Router(),
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting http server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("server stopped")
}

// envOr возвращает значение переменной окружения или значение по умолчанию.
func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
