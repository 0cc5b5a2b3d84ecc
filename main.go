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

	database "github.com/FenadoAI/fv2-cafito-hub-u1n3z9/config"
	controller "github.com/FenadoAI/fv2-cafito-hub-u1n3z9/controllers"
	routes "github.com/FenadoAI/fv2-cafito-hub-u1n3z9/routes"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/services"
	"github.com/FenadoAI/fv2-cafito-hub-u1n3z9/store"
)

func setupLogger(cfg *database.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	cfg, err := database.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg)

	if err := run(cfg); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *database.Config) error {
	ctx := context.Background()

	db, err := database.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			slog.Error("Failed to disconnect MongoDB", "error", err)
			return
		}
		slog.Info("MongoDB connection closed")
	}()

	if err := db.EnsureIndexes(ctx); err != nil {
		return err
	}

	var menuStore store.MenuStore = store.NewMenuStore(db.OpenCollection(database.MenuItemsCollection))

	rdb, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		slog.Warn("Redis unavailable, menu cache disabled", "error", err)
	}
	if rdb != nil {
		defer rdb.Close()
		menuStore = store.NewCachedMenuStore(menuStore, rdb, cfg.CacheTTL)
		slog.Info("Menu cache enabled", "redis", rdb.Options().Addr, "ttl", cfg.CacheTTL)
	}

	catalog := services.NewCatalogService(menuStore, cfg.ListLimit)
	orders := services.NewOrderService(store.NewOrderStore(db.OpenCollection(database.OrdersCollection)), cfg.ListLimit)
	status := services.NewStatusService(store.NewStatusCheckStore(db.OpenCollection(database.StatusChecksCollection)), cfg.ListLimit)

	handler := routes.Handler(routes.Controllers{
		Menu:   controller.NewMenuController(catalog),
		Orders: controller.NewOrderController(orders),
		Status: controller.NewStatusController(status),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-stop:
	}

	slog.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("Server exited gracefully.")
	return nil
}
