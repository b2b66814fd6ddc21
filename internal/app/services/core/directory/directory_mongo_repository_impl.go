package directory

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

type DirectoryMongoRepository struct {
	Collection *mongo.Collection
}

func NewDirectoryMongoRepository(db *mongo.Client, dbName string) DirectoryRepository {
	return &DirectoryMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (r *DirectoryMongoRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	now := time.Now().UTC()
	userModel.CreatedAt = now
	userModel.UpdatedAt = now

	result, err := r.Collection.InsertOne(ctx, userModel)
	if err != nil {
		// The unique index on email is the duplicate-email authority: a race
		// between two registrations resolves here, not in the pre-check.
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrEmailAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DirectoryMongoRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var user models.User
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *DirectoryMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (r *DirectoryMongoRepository) FindByRole(ctx context.Context, role models.Role, nameFilter string) ([]models.User, error) {
	filter := bson.M{"userRole": role}
	if nameFilter != "" {
		filter["name"] = bson.M{"$regex": nameFilter, "$options": "i"}
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return users, nil
}

func (r *DirectoryMongoRepository) FindByIDs(ctx context.Context, userIDs []string) (map[string]models.User, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(userIDs))
	for _, userID := range userIDs {
		objectID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}
	if len(objectIDs) == 0 {
		return map[string]models.User{}, nil
	}

	cursor, err := r.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	byID := make(map[string]models.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	return byID, nil
}

func (r *DirectoryMongoRepository) UpdateUser(ctx context.Context, userModel *models.User) error {
	objectID, err := primitive.ObjectIDFromHex(userModel.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	userModel.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"name":            userModel.Name,
		"email":           userModel.Email,
		"gender":          userModel.Gender,
		"phone":           userModel.Phone,
		"emergencyNumber": userModel.EmergencyNumber,
		"profilePic":      userModel.ProfilePicture,
		"bloodType":       userModel.BloodType,
		"selectedOrgan":   userModel.SelectedOrgans,
		"specialization":  userModel.Specialization,
		"weeklySchedule":  userModel.WeeklySchedule,
		"updatedAt":       userModel.UpdatedAt,
	}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update, options.Update().SetUpsert(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrEmailAlreadyExist(err)
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// UpsertRating rewrites the rater's entry and recomputes the mean inside a
// single document update, so concurrent raters serialize at the store and a
// rater's repeated submissions collapse to exactly one entry.
func (r *DirectoryMongoRepository) UpsertRating(ctx context.Context, clinicianID, raterID string, score int) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(clinicianID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	withoutRater := bson.M{"$filter": bson.M{
		"input": bson.M{"$ifNull": bson.A{"$ratedBy", bson.A{}}},
		"cond":  bson.M{"$ne": bson.A{"$$this.raterId", raterID}},
	}}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"ratedBy": bson.M{"$concatArrays": bson.A{
				withoutRater,
				bson.A{bson.M{"raterId": raterID, "score": score}},
			}},
		}}},
		{{Key: "$set", Value: bson.M{
			"rating":    bson.M{"$avg": "$ratedBy.score"},
			"updatedAt": "$$NOW",
		}}},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.User
	err = r.Collection.FindOneAndUpdate(ctx, bson.M{"_id": objectID, "userRole": models.RoleClinician}, update, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return &updated, nil
}

func (r *DirectoryMongoRepository) DeleteByID(ctx context.Context, userID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
