package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	Minio          *minio.Client
	RabbitMQ       *amqp091.Connection
	Log            *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
}
