package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"train-booking/domain"
	"train-booking/logger"
	"train-booking/models"
)

// BookingStore persists booking documents
type BookingStore interface {
	Insert(ctx context.Context, booking *models.Booking) error
	FindByUser(ctx context.Context, userID string) ([]models.Booking, error)
	FindByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

// MongoBookingStore keeps bookings in the "bookings" collection
type MongoBookingStore struct {
	collection *mongo.Collection
}

// NewMongoBookingStore creates the store and its userId index
func NewMongoBookingStore(ctx context.Context, db *mongo.Database) *MongoBookingStore {
	collection := db.Collection("bookings")

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		logger.GetLogger().Warnw("Failed to create bookings index", "error", err)
	}

	return &MongoBookingStore{collection: collection}
}

// Insert assigns a new id and stores the booking
func (s *MongoBookingStore) Insert(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = primitive.NewObjectID().Hex()
	}
	_, err := s.collection.InsertOne(ctx, booking)
	return err
}

// FindByUser lists a user's bookings, newest first
func (s *MongoBookingStore) FindByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *MongoBookingStore) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus sets the status of a stored booking
func (s *MongoBookingStore) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}
