package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/streadway/amqp"

	"github.com/raamveerrr/pos/internal/domain"
)

// Subscriber opens tenant-scoped bindings against the change exchange. Each
// Open call gets its own channel and auto-delete queue, so closing one stream
// never disturbs another.
type Subscriber struct {
	conn     *amqp.Connection
	exchange string
}

func NewSubscriber(amqpURL, exchange string) (*Subscriber, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %v", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %v", err)
	}
	defer channel.Close()

	err = channel.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %v", err)
	}

	return &Subscriber{conn: conn, exchange: exchange}, nil
}

func (s *Subscriber) Open(ctx context.Context, restaurantID string, entities []domain.ChangeEntity) (*ChangeStream, error) {
	ch, err := s.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %v", err)
	}

	q, err := ch.QueueDeclare("", false, true, true, false, nil)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to declare queue: %v", err)
	}

	for _, entity := range entities {
		key := fmt.Sprintf("%s.%s", entity, restaurantID)
		if err := ch.QueueBind(q.Name, key, s.exchange, false, nil); err != nil {
			ch.Close()
			return nil, fmt.Errorf("failed to bind queue: %v", err)
		}
	}

	msgs, err := ch.Consume(q.Name, "", true, true, false, false, nil)
	if err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to start consumer: %v", err)
	}

	cs := &ChangeStream{
		channel: ch,
		events:  make(chan domain.ChangeEvent, 64),
		done:    make(chan struct{}),
	}
	go cs.pump(ctx, msgs)
	return cs, nil
}

func (s *Subscriber) Close() {
	if s.conn != nil {
		s.conn.Close()
	}
}

// ChangeStream is one live binding to the change feed. Events closes when the
// stream ends, whether by Close, context cancellation or a dropped broker
// connection.
type ChangeStream struct {
	channel   *amqp.Channel
	events    chan domain.ChangeEvent
	done      chan struct{}
	closeOnce sync.Once
}

func (cs *ChangeStream) Events() <-chan domain.ChangeEvent {
	return cs.events
}

func (cs *ChangeStream) Close() error {
	var err error
	cs.closeOnce.Do(func() {
		close(cs.done)
		err = cs.channel.Close()
	})
	return err
}

func (cs *ChangeStream) pump(ctx context.Context, msgs <-chan amqp.Delivery) {
	defer close(cs.events)
	for {
		select {
		case <-ctx.Done():
			return
		case <-cs.done:
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			var ev domain.ChangeEvent
			if err := json.Unmarshal(msg.Body, &ev); err != nil {
				log.Printf("change stream: dropping malformed event: %v", err)
				continue
			}
			select {
			case cs.events <- ev:
			case <-cs.done:
				return
			case <-ctx.Done():
				return
			}
		}
	}
}
