package notifier

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	amqpPublisherInstance contracts.NotificationPublisher
	onceAmqpPublisher     sync.Once
)

type amqpPublisher struct {
	ch        *amqp.Channel
	queueName string
	Log       *zap.Logger
}

// NewAmqpPublisher declares the durable notification queue and returns a
// publisher bound to it.
func NewAmqpPublisher(conn *amqp.Connection, queueName string, logger *zap.Logger) (contracts.NotificationPublisher, error) {
	var initErr error
	onceAmqpPublisher.Do(func() {
		ch, err := conn.Channel()
		if err != nil {
			initErr = err
			return
		}

		_, err = ch.QueueDeclare(
			queueName, // name
			true,      // durable
			false,     // autoDelete
			false,     // exclusive
			false,     // noWait
			nil,       // args
		)
		if err != nil {
			initErr = err
			return
		}

		amqpPublisherInstance = &amqpPublisher{
			ch:        ch,
			queueName: queueName,
			Log:       logger,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return amqpPublisherInstance, nil
}

func (p *amqpPublisher) Publish(ctx context.Context, event *contracts.NotificationEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("amqpPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.queueName),
		zap.String("event", event.Event),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.ch.PublishWithContext(ctx,
		"",          // exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	return nil
}
