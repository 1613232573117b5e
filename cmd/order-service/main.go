package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"garment-orders/internal/catalog"
	"garment-orders/internal/config"
	"garment-orders/internal/logger"
	"garment-orders/internal/order"
	orderkafka "garment-orders/internal/order/kafka"
	"garment-orders/internal/order/order_api"
	rediswrap "garment-orders/internal/order/redis"
	"garment-orders/internal/receipt"
	"garment-orders/internal/store"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment")
	}
	cfg := config.Load()
	log := logger.NewLogger()
	defer log.Close()

	// --- Catalog (embedded) ---
	catalogDB, err := catalog.Open(cfg.Catalog.DSN)
	if err != nil {
		log.Fatal("CATALOG", fmt.Sprintf("Failed to open catalog: %v", err))
	}
	defer catalogDB.Close()
	if err := catalogDB.Migrate(ctx); err != nil {
		log.Fatal("CATALOG", fmt.Sprintf("Migration failed: %v", err))
	}
	log.Info("CATALOG", "Product catalog ready")

	// --- Redis ---
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("REDIS", fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	listCache := rediswrap.NewCache(redisClient, cfg.Redis.CacheTTL, log)

	// --- Kafka ---
	var publisher order.KafkaPublisher = orderkafka.Noop{}
	if cfg.Kafka.Enabled {
		producer := orderkafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
		publisher = producer
		log.LogKafka("INIT", cfg.Kafka.Topic, "order event streaming enabled")
	}

	// --- Hosted record store ---
	storeClient := store.NewClient(cfg.Store.BaseURL, cfg.Store.Collection, &http.Client{
		Timeout: cfg.Store.Timeout,
	})
	log.LogStore("INIT", fmt.Sprintf("collection %s at %s", cfg.Store.Collection, cfg.Store.BaseURL))

	// --- Wire the service ---
	service := order.NewOrderService(storeClient, listCache, publisher, catalogDB, log, cfg.Pricing.Generation)
	receipts := receipt.NewGenerator(cfg.Receipt.Secret)
	handler := order_api.NewHandler(service, receipts, log)

	// --- Router ---
	r := chi.NewRouter()
	r.Post("/api/v1/orders", handler.SubmitOrder)
	r.Get("/api/v1/orders", handler.ListOrders)
	r.Get("/api/v1/payments", handler.ListPayments)
	r.Post("/api/v1/orders/{orderId}/paid", handler.MarkPaid)
	r.Post("/api/v1/orders/{orderId}/taken", handler.MarkTaken)
	r.Put("/api/v1/orders/{orderId}/notes", handler.UpdateNotes)
	r.Get("/api/v1/orders/{orderId}/receipt", handler.GetReceipt)
	r.Get("/api/v1/products", handler.ListProducts)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("SERVER", fmt.Sprintf("Order service running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("SERVER", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("SERVER", "Shutdown signal received. Cleaning up...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal("SERVER", fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	log.Info("SERVER", "Server exited gracefully")
}
