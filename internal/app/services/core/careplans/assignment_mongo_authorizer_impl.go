package careplans

import (
	"context"

	"revolucare-service/internal/app/contracts"
	"revolucare-service/internal/pkg/constvars"
	"revolucare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AssignmentMongoAuthorizer answers case manager assignment lookups from the
// care team assignments collection, which is maintained by the care team
// service and only read here.
type AssignmentMongoAuthorizer struct {
	Collection *mongo.Collection
}

func NewAssignmentMongoAuthorizer(db *mongo.Client, dbName string) contracts.AssignmentAuthorizer {
	return &AssignmentMongoAuthorizer{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCareAssignments),
	}
}

func (a *AssignmentMongoAuthorizer) IsAssigned(ctx context.Context, caseManagerID, clientID string) (bool, error) {
	filter := bson.M{
		"caseManagerId": caseManagerID,
		"clientId":      clientID,
		"active":        true,
	}

	err := a.Collection.FindOne(ctx, filter).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, exceptions.ErrMongoDBFindDocument(err)
	}
	return true, nil
}
