package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"shoemarket/internal/config"
	"shoemarket/internal/db"
	"shoemarket/internal/httpserver"
	cartrepo "shoemarket/internal/repository/cart"
	orderrepo "shoemarket/internal/repository/order"
	productrepo "shoemarket/internal/repository/product"
	userrepo "shoemarket/internal/repository/user"
	cartsvc "shoemarket/internal/service/cart"
	catalogsvc "shoemarket/internal/service/catalog"
	ordersvc "shoemarket/internal/service/order"
	usersvc "shoemarket/internal/service/user"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	gin.SetMode(gin.ReleaseMode)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	userRepo := userrepo.NewPostgres(dbpool, logger)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Catalog:   catalogsvc.New(productRepo),
		Cart:      cartsvc.New(cartRepo, productRepo),
		Orders:    ordersvc.New(orderRepo, cartRepo),
		Users:     usersvc.New(userRepo),
		UserRepo:  userRepo,
		JWTSecret: cfg.JWTSecret,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
