package slots

import (
	"context"
	"time"

	"slotly-service/internal/app/contracts"
	"slotly-service/internal/app/models"
	"slotly-service/internal/pkg/constvars"
	"slotly-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SlotMongoRepository struct {
	Collection *mongo.Collection
}

func NewSlotMongoRepository(db *mongo.Client, dbName string) contracts.SlotRepository {
	return &SlotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSlots),
	}
}

func (r *SlotMongoRepository) ReplaceDoctorSlots(ctx context.Context, doctorID string, slots []*models.Slot) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{"doctorId": doctorID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if len(slots) == 0 {
		return nil
	}

	documents := make([]interface{}, 0, len(slots))
	for _, slot := range slots {
		documents = append(documents, slot)
	}
	_, err = r.Collection.InsertMany(ctx, documents)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *SlotMongoRepository) FindByDoctor(ctx context.Context, doctorID, date string) ([]models.Slot, error) {
	filter := bson.M{"doctorId": doctorID}
	if date != "" {
		filter["date"] = date
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	err = cursor.All(ctx, &slots)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

func (r *SlotMongoRepository) FindByDoctorDateTime(ctx context.Context, doctorID, date, timeOfDay string) (*models.Slot, error) {
	var slot models.Slot
	filter := bson.M{
		"doctorId": doctorID,
		"date":     date,
		"time":     timeOfDay,
	}
	err := r.Collection.FindOne(ctx, filter).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

func (r *SlotMongoRepository) UpdateSlotStatus(ctx context.Context, slotID, status string) error {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}

	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *SlotMongoRepository) DeleteSlotsBefore(ctx context.Context, date string) (deletedCount int64, err error) {
	result, err := r.Collection.DeleteMany(ctx, bson.M{"date": bson.M{"$lt": date}})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}
