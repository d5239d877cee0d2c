package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raamveerrr/pos/internal/config"
	"github.com/raamveerrr/pos/internal/domain"
	mmysql "github.com/raamveerrr/pos/internal/infra/mysql"
	"github.com/raamveerrr/pos/internal/infra/rabbitmq"
	"github.com/raamveerrr/pos/internal/realtime"
	mysqlrepo "github.com/raamveerrr/pos/internal/repository/mysql"
)

// logNotifier turns feed signals into kitchen display log lines. A real
// display would drive a screen; the program keeps the board in memory either
// way.
type logNotifier struct{}

func (logNotifier) OrderReceived(order *domain.Order) {
	log.Printf("new order %s with %d items", order.OrderNumber, len(order.Items))
}

func (logNotifier) OrderReady(order *domain.Order) {
	log.Printf("order %s is ready for pickup", order.OrderNumber)
}

func main() {
	restaurantID := os.Getenv("RESTAURANT_ID")
	if restaurantID == "" {
		log.Fatal("RESTAURANT_ID is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := mmysql.NewMySQL(cfg.DB)
	if err != nil {
		log.Fatalf("db: connect: %v", err)
	}

	subscriber, err := rabbitmq.NewSubscriber(cfg.RabbitMQ.URL, cfg.RabbitMQ.Exchange)
	if err != nil {
		log.Fatalf("failed to init subscriber: %v", err)
	}
	defer subscriber.Close()

	loader := realtime.RepoLoader{
		Orders: mysqlrepo.NewOrderRepository(db),
		Tables: mysqlrepo.NewTableRepository(db),
	}
	source := realtime.SourceFunc(func(ctx context.Context, restaurantID string, entities []domain.ChangeEntity) (realtime.Stream, error) {
		return subscriber.Open(ctx, restaurantID, entities)
	})

	feed := realtime.NewFeed(restaurantID, source, loader, logNotifier{})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := feed.Start(ctx); err != nil {
		log.Fatalf("feed start: %v", err)
	}
	log.Printf("kitchen display connected for restaurant %s", restaurantID)

	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Println("shutting down kitchen display")
			if err := feed.Close(); err != nil {
				log.Printf("feed close: %v", err)
			}
			return
		case <-ticker.C:
			open := 0
			for _, order := range feed.Orders() {
				if !order.Status.Terminal() {
					open++
				}
			}
			log.Printf("%d open orders on the board", open)
		}
	}
}
