package main

import (
	"context"
	"fmt"
	"grocery-bazaar-backend/internal/client"
	"grocery-bazaar-backend/internal/config"
	"grocery-bazaar-backend/internal/repository"
	"grocery-bazaar-backend/internal/server"
	"grocery-bazaar-backend/internal/service"
	"grocery-bazaar-backend/internal/token"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	db := client.InitMysqlClient(cfg.DatabaseURL)
	paymentClient := client.NewSslcommerzClient(&cfg.Sslcommerz)
	tokens := token.NewService(cfg.JWTSecret)

	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	userService := service.NewUserService(userRepo)
	paymentService := service.NewPaymentService(paymentClient, orderRepo, cfg.BaseURL)
	catalogService := service.NewCatalogService(productRepo, catalogRepo)
	cartService := service.NewCartService(cartRepo)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(
		tokens,
		userRepo,
		userService,
		paymentService,
		catalogService,
		cartService,
		cfg.ClientURL,
	)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	_, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
