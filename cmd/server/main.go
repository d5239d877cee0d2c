package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"

	"github.com/raamveerrr/pos/internal/auth"
	"github.com/raamveerrr/pos/internal/config"
	controllers "github.com/raamveerrr/pos/internal/controllers/http"
	"github.com/raamveerrr/pos/internal/infra"
	mmysql "github.com/raamveerrr/pos/internal/infra/mysql"
	"github.com/raamveerrr/pos/internal/infra/rabbitmq"
	mysqlrepo "github.com/raamveerrr/pos/internal/repository/mysql"
	"github.com/raamveerrr/pos/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := mmysql.NewMySQL(cfg.DB)
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(20)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	orderRepo := mysqlrepo.NewOrderRepository(db)
	paymentRepo := mysqlrepo.NewPaymentRepository(db)
	tableRepo := mysqlrepo.NewTableRepository(db)
	restaurantRepo := mysqlrepo.NewRestaurantRepository(db)
	userRepo := mysqlrepo.NewUserProfileRepository(db)
	menuRepo := mysqlrepo.NewMenuItemRepository(db)
	inventoryRepo := mysqlrepo.NewInventoryRepository(db)

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
	if err != nil {
		log.Fatalf("failed to init publisher: %v", err)
	}
	defer publisher.Close()

	gateway := infra.NewRazorpayClient(cfg.Razorpay.BaseURL, cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, 15*time.Second)

	paymentSvc := services.NewPaymentService(paymentRepo, orderRepo, userRepo, gateway, publisher)
	orderSvc := services.NewOrderService(orderRepo, tableRepo, restaurantRepo, paymentSvc, publisher)
	tableSvc := services.NewTableService(tableRepo, publisher)
	menuSvc := services.NewMenuService(menuRepo)
	reportSvc := services.NewReportService(orderRepo, inventoryRepo)

	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		DB:           cfg.Redis.DB,
		PoolSize:     100,
		MinIdleConns: 10,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	orderSvc.SetRedisClient(redisClient)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, 24*time.Hour)
	handler := controllers.NewHandler(orderSvc, paymentSvc, tableSvc, menuSvc, reportSvc, tokens)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	handler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTP.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("starting pos server on port %s", cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
