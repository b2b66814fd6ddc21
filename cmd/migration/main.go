package main

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/drivers/database"
	"carelink-service/internal/app/drivers/logger"
	"carelink-service/internal/pkg/constvars"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creates the unique indexes the service relies on for its uniqueness rules:
// one account per email, and one donor request per patient+organ pair. Safe
// to run repeatedly; existing indexes are left in place.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	mongoDB := database.NewMongoDB(driverConfig, log)
	db := mongoDB.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userIndexes := db.Collection(constvars.MongoCollectionUsers).Indexes()
	_, err := userIndexes.CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName(constvars.MongoIndexUserEmail).
			SetUnique(true),
	})
	if err != nil {
		log.Fatalf("Failed to create index %s: %v", constvars.MongoIndexUserEmail, err)
	}
	log.Printf("Index %s ready", constvars.MongoIndexUserEmail)

	// requestedOrgan is stored without omitempty so blood-only requests
	// (empty organ) take part in the uniqueness rule too.
	donorRequestIndexes := db.Collection(constvars.MongoCollectionDonorRequests).Indexes()
	_, err = donorRequestIndexes.CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "patientId", Value: 1},
			{Key: "requestedOrgan", Value: 1},
		},
		Options: options.Index().
			SetName(constvars.MongoIndexDonorRequestPerPair).
			SetUnique(true),
	})
	if err != nil {
		log.Fatalf("Failed to create index %s: %v", constvars.MongoIndexDonorRequestPerPair, err)
	}
	log.Printf("Index %s ready", constvars.MongoIndexDonorRequestPerPair)

	if err := mongoDB.Disconnect(ctx); err != nil {
		log.Fatalf("Failed to disconnect from MongoDB: %v", err)
	}
	log.Println("Migration finished")
}
