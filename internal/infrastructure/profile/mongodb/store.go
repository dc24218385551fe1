// Package mongodb provides the MongoDB profile store implementation.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// ProfilesCollection is the name of the profiles collection.
	ProfilesCollection = "profiles"
)

// StoreConfig holds MongoDB connection configuration.
type StoreConfig struct {
	URI          string
	DatabaseName string
}

// Store implements profile.Store on MongoDB, one document per user.
type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
}

type profileDoc struct {
	UserID     int64     `bson:"_id"`
	Language   string    `bson:"language,omitempty"`
	Registered bool      `bson:"registered"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

// NewStore connects to MongoDB and verifies the connection.
func NewStore(ctx context.Context, cfg *StoreConfig) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongodb URI is required")
	}
	if cfg.DatabaseName == "" {
		return nil, fmt.Errorf("database name is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{
		client:     client,
		collection: client.Database(cfg.DatabaseName).Collection(ProfilesCollection),
	}, nil
}

// Language returns the stored language tag for the user, "" when unset.
func (s *Store) Language(ctx context.Context, userID int64) (string, error) {
	doc, err := s.find(ctx, userID)
	if err != nil {
		return "", err
	}
	if doc == nil {
		return "", nil
	}
	return doc.Language, nil
}

// SetLanguage stores the user's language choice.
func (s *Store) SetLanguage(ctx context.Context, userID int64, lang string) error {
	return s.upsert(ctx, userID, bson.M{"language": lang})
}

// Registered reports whether the user has confirmed registration.
func (s *Store) Registered(ctx context.Context, userID int64) (bool, error) {
	doc, err := s.find(ctx, userID)
	if err != nil {
		return false, err
	}
	if doc == nil {
		return false, nil
	}
	return doc.Registered, nil
}

// SetRegistered stores the registration flag.
func (s *Store) SetRegistered(ctx context.Context, userID int64, registered bool) error {
	return s.upsert(ctx, userID, bson.M{"registered": registered})
}

// Close disconnects from MongoDB.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongodb: %w", err)
	}
	return nil
}

func (s *Store) find(ctx context.Context, userID int64) (*profileDoc, error) {
	var doc profileDoc
	err := s.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %d: %w", userID, err)
	}
	return &doc, nil
}

func (s *Store) upsert(ctx context.Context, userID int64, fields bson.M) error {
	fields["updatedAt"] = time.Now().UTC()
	_, err := s.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to update profile %d: %w", userID, err)
	}
	return nil
}
