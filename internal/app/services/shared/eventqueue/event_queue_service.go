package eventqueue

import (
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

type rabbitMQEventQueue struct {
	connection *amqp091.Connection
}

func NewRabbitMQEventQueue(connection *amqp091.Connection) EventQueue {
	return &rabbitMQEventQueue{connection: connection}
}

func (q *rabbitMQEventQueue) Publish(ctx context.Context, queueName, eventType string, payload interface{}) error {
	body, err := json.Marshal(event{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	channel, err := q.connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, queueName)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, queueName)
	}

	err = channel.PublishWithContext(ctx, "", queueName, false, false, amqp091.Publishing{
		ContentType: constvars.MIMEApplicationJSON,
		Body:        body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err, queueName)
	}
	return nil
}
