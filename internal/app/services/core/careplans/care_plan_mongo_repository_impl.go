package careplans

import (
	"context"

	"revolucare-service/internal/app/contracts"
	"revolucare-service/internal/app/models"
	"revolucare-service/internal/pkg/constvars"
	"revolucare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CarePlanMongoRepository struct {
	Plans    *mongo.Collection
	Versions *mongo.Collection
}

func NewCarePlanMongoRepository(db *mongo.Client, dbName string) contracts.CarePlanRepository {
	return &CarePlanMongoRepository{
		Plans:    db.Database(dbName).Collection(constvars.MongoCollectionCarePlans),
		Versions: db.Database(dbName).Collection(constvars.MongoCollectionCarePlanVersions),
	}
}

func (r *CarePlanMongoRepository) Create(ctx context.Context, plan *models.CarePlan) (string, error) {
	plan.ID = ""
	result, err := r.Plans.InsertOne(ctx, plan)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *CarePlanMongoRepository) FindByID(ctx context.Context, carePlanID string) (*models.CarePlan, error) {
	objectID, err := primitive.ObjectIDFromHex(carePlanID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var plan models.CarePlan
	err = r.Plans.FindOne(ctx, bson.M{"_id": objectID}).Decode(&plan)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	plan.ID = carePlanID
	return &plan, nil
}

func (r *CarePlanMongoRepository) FindByClientID(ctx context.Context, clientID string) ([]models.CarePlan, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Plans.Find(ctx, bson.M{"clientId": clientID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var plans []models.CarePlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return plans, nil
}

// UpdateWithVersionCheck is the lost-update guard: the filter pins the version
// the caller read, so two racing writers can both compute version+1 but only
// the one whose precondition still holds gets a matched document.
func (r *CarePlanMongoRepository) UpdateWithVersionCheck(ctx context.Context, plan *models.CarePlan, expectedVersion int) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(plan.ID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "version": expectedVersion}
	set := bson.M{
		"title":           plan.Title,
		"description":     plan.Description,
		"status":          plan.Status,
		"confidenceScore": plan.ConfidenceScore,
		"version":         plan.Version,
		"approvedById":    plan.ApprovedByID,
		"approvedAt":      plan.ApprovedAt,
		"approvalNotes":   plan.ApprovalNotes,
		"goals":           plan.Goals,
		"interventions":   plan.Interventions,
		"updatedAt":       plan.UpdatedAt,
	}

	result, err := r.Plans.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

func (r *CarePlanMongoRepository) CreateVersion(ctx context.Context, version *models.CarePlanVersion) (string, error) {
	version.ID = ""
	result, err := r.Versions.InsertOne(ctx, version)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *CarePlanMongoRepository) GetVersionHistory(ctx context.Context, carePlanID string) ([]models.CarePlanVersion, error) {
	opts := options.Find().SetSort(bson.D{{Key: "version", Value: 1}})
	cursor, err := r.Versions.Find(ctx, bson.M{"carePlanId": carePlanID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var versions []models.CarePlanVersion
	if err := cursor.All(ctx, &versions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return versions, nil
}

func (r *CarePlanMongoRepository) Delete(ctx context.Context, carePlanID string) error {
	objectID, err := primitive.ObjectIDFromHex(carePlanID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Plans.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *CarePlanMongoRepository) DeleteVersions(ctx context.Context, carePlanID string) error {
	_, err := r.Versions.DeleteMany(ctx, bson.M{"carePlanId": carePlanID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
