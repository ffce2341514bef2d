package doctors

import (
	"context"

	"slotly-service/internal/app/contracts"
	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/constvars"
	"slotly-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReferralMongoRepository struct {
	Collection *mongo.Collection
}

func NewReferralMongoRepository(db *mongo.Client, dbName string) contracts.ReferralRepository {
	return &ReferralMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReferrals),
	}
}

func (r *ReferralMongoRepository) CreateReferral(ctx context.Context, referralModel *models.Referral) (referralID string, err error) {
	result, err := r.Collection.InsertOne(ctx, referralModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}
