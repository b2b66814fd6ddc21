package donorrequests

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DonorRequestMongoRepository struct {
	Collection *mongo.Collection
}

func NewDonorRequestMongoRepository(db *mongo.Client, dbName string) DonorRequestRepository {
	return &DonorRequestMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDonorRequests),
	}
}

func (r *DonorRequestMongoRepository) CreateDonorRequest(ctx context.Context, requestModel *models.DonorRequest) (string, error) {
	now := time.Now().UTC()
	requestModel.CreatedAt = now
	requestModel.UpdatedAt = now

	result, err := r.Collection.InsertOne(ctx, requestModel)
	if err != nil {
		// The compound unique index on patientId+requestedOrgan settles the
		// race between two concurrent filings for the same pair.
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrDonorRequestAlreadyPlaced(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DonorRequestMongoRepository) FindByID(ctx context.Context, requestID string) (*models.DonorRequest, error) {
	objectID, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var donorRequest models.DonorRequest
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&donorRequest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &donorRequest, nil
}

// FindByPatientAndOrgan matches regardless of request status: a rejected or
// fulfilled request still blocks a new filing for the same pair.
func (r *DonorRequestMongoRepository) FindByPatientAndOrgan(ctx context.Context, patientID, requestedOrgan string) (*models.DonorRequest, error) {
	var donorRequest models.DonorRequest
	err := r.Collection.FindOne(ctx, bson.M{
		"patientId":      patientID,
		"requestedOrgan": requestedOrgan,
	}).Decode(&donorRequest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &donorRequest, nil
}

func (r *DonorRequestMongoRepository) FindWithFilter(ctx context.Context, filter DonorRequestFilter) ([]models.DonorRequest, error) {
	query := bson.M{}
	if filter.PatientID != "" {
		query["patientId"] = filter.PatientID
	}
	if filter.DonorID != "" {
		query["donorId"] = filter.DonorID
	}
	if filter.RequestedOrgan != "" {
		query["requestedOrgan"] = filter.RequestedOrgan
	}
	if filter.BloodType != "" {
		query["bloodType"] = filter.BloodType
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.BloodOnly != nil {
		query["bloodOnly"] = *filter.BloodOnly
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var donorRequests []models.DonorRequest
	if err := cursor.All(ctx, &donorRequests); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return donorRequests, nil
}

func (r *DonorRequestMongoRepository) UpdateDonorRequest(ctx context.Context, requestModel *models.DonorRequest) error {
	objectID, err := primitive.ObjectIDFromHex(requestModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	requestModel.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"donorId":        requestModel.DonorID,
		"requestedOrgan": requestModel.RequestedOrgan,
		"bloodType":      requestModel.BloodType,
		"status":         requestModel.Status,
		"updatedAt":      requestModel.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrDonorRequestAlreadyPlaced(err)
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DonorRequestMongoRepository) DeleteByID(ctx context.Context, requestID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(requestID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
