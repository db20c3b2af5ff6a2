package analyses

import (
	"context"
	"log"

	"revolucare-service/internal/app/contracts"
	"revolucare-service/internal/app/models"
	"revolucare-service/internal/pkg/constvars"
	"revolucare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AnalysisMongoRepository struct {
	Collection *mongo.Collection
}

// NewAnalysisMongoRepository ensures the partial unique index that makes the
// at-most-one-non-terminal invariant atomic: two concurrent inserts for the
// same (document, type) race on the index, not on a read-then-write check.
func NewAnalysisMongoRepository(db *mongo.Client, dbName string) contracts.DocumentAnalysisRepository {
	collection := db.Database(dbName).Collection(constvars.MongoCollectionDocumentAnalyses)

	_, err := collection.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys: bson.D{
			{Key: "documentId", Value: 1},
			{Key: "analysisType", Value: 1},
		},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{
				"status": bson.M{"$in": bson.A{
					models.AnalysisStatusPending,
					models.AnalysisStatusProcessing,
				}},
			}),
	})
	if err != nil {
		log.Fatalf("Failed to ensure document analysis in-flight index: %s", err.Error())
	}

	return &AnalysisMongoRepository{Collection: collection}
}

func (r *AnalysisMongoRepository) CreateIfNoneInFlight(ctx context.Context, analysis *models.DocumentAnalysis) (string, error) {
	analysis.ID = ""
	result, err := r.Collection.InsertOne(ctx, analysis)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrAnalysisDuplicateInFlight(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AnalysisMongoRepository) FindByID(ctx context.Context, analysisID string) (*models.DocumentAnalysis, error) {
	objectID, err := primitive.ObjectIDFromHex(analysisID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var analysis models.DocumentAnalysis
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&analysis)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	analysis.ID = analysisID
	return &analysis, nil
}

func (r *AnalysisMongoRepository) FindInFlight(ctx context.Context, documentID string, analysisType models.AnalysisType) (*models.DocumentAnalysis, error) {
	filter := bson.M{
		"documentId":   documentID,
		"analysisType": analysisType,
		"status": bson.M{"$in": bson.A{
			models.AnalysisStatusPending,
			models.AnalysisStatusProcessing,
		}},
	}

	var analysis models.DocumentAnalysis
	err := r.Collection.FindOne(ctx, filter).Decode(&analysis)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &analysis, nil
}

func (r *AnalysisMongoRepository) FindLatestCompleted(ctx context.Context, documentID string, analysisType models.AnalysisType) (*models.DocumentAnalysis, error) {
	filter := bson.M{
		"documentId":   documentID,
		"analysisType": analysisType,
		"status":       models.AnalysisStatusCompleted,
	}
	opts := options.FindOne().SetSort(bson.D{{Key: "completedAt", Value: -1}})

	var analysis models.DocumentAnalysis
	err := r.Collection.FindOne(ctx, filter, opts).Decode(&analysis)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &analysis, nil
}

func (r *AnalysisMongoRepository) MarkProcessing(ctx context.Context, analysisID string) error {
	objectID, err := primitive.ObjectIDFromHex(analysisID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "status": models.AnalysisStatusPending}
	update := bson.M{"$set": bson.M{"status": models.AnalysisStatusProcessing}}
	_, err = r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// Complete writes the terminal state exactly once: the filter only matches
// non-terminal records, so a second completion attempt is a no-op error.
func (r *AnalysisMongoRepository) Complete(ctx context.Context, analysisID string, update *models.DocumentAnalysis) error {
	objectID, err := primitive.ObjectIDFromHex(analysisID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id": objectID,
		"status": bson.M{"$in": bson.A{
			models.AnalysisStatusPending,
			models.AnalysisStatusProcessing,
		}},
	}
	set := bson.M{
		"status":           update.Status,
		"results":          update.Results,
		"confidence":       update.Confidence,
		"processingTimeMs": update.ProcessingTimeMs,
		"completedAt":      update.CompletedAt,
	}

	result, err := r.Collection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAnalysisTerminalState(nil)
	}
	return nil
}

func (r *AnalysisMongoRepository) DeleteByDocumentID(ctx context.Context, documentID string) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{"documentId": documentID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
