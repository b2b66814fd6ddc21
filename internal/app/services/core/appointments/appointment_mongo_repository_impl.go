package appointments

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

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (string, error) {
	now := time.Now().UTC()
	appointmentModel.CreatedAt = now
	appointmentModel.UpdatedAt = now

	result, err := r.Collection.InsertOne(ctx, appointmentModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindWithFilter(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error) {
	query := bson.M{}
	if filter.ClinicianID != "" {
		query["clinicianId"] = filter.ClinicianID
	}
	if filter.PatientID != "" {
		query["patientId"] = filter.PatientID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	// Newest first, matching how the listings are consumed.
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointmentModel *models.Appointment) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	appointmentModel.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"clinicianId":     appointmentModel.ClinicianID,
		"patientId":       appointmentModel.PatientID,
		"appointmentDate": appointmentModel.Date,
		"time":            appointmentModel.Time,
		"status":          appointmentModel.Status,
		"updatedAt":       appointmentModel.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) DeleteByID(ctx context.Context, appointmentID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
