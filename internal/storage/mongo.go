package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"MeAPI_Playground/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	profilesCollection = "profiles"
	countersCollection = "counters"
)

// BSON datetimes keep milliseconds only, so seq breaks createdAt ties.
var latestProfileSort = bson.D{{Key: "createdAt", Value: -1}, {Key: "seq", Value: -1}}

// MongoStore keeps profiles in a MongoDB collection, one document each.
type MongoStore struct {
	client   *mongo.Client
	coll     *mongo.Collection
	counters *mongo.Collection
	now      func() time.Time
}

func OpenMongo(ctx context.Context, uri, database string) (*MongoStore, error) {
	if uri == "" {
		return nil, errors.New("mongo store requires a connection URI")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("pinging mongo: %w", err)
	}

	db := client.Database(database)
	coll := db.Collection(profilesCollection)
	_, err = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: latestProfileSort},
		{Keys: bson.D{{Key: "skills", Value: 1}}},
		{Keys: bson.D{{Key: "projects.skills", Value: 1}}},
	})
	if err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("creating profile indexes: %w", err)
	}
	slog.Debug("mongo store ready", "database", database)

	return &MongoStore{
		client:   client,
		coll:     coll,
		counters: db.Collection(countersCollection),
		now:      time.Now,
	}, nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) LoadLatestProfile(ctx context.Context) (models.Profile, error) {
	var p models.Profile
	opts := options.FindOne().SetSort(latestProfileSort)

	if err := s.coll.FindOne(ctx, bson.D{}, opts).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return p, ErrProfileNotFound
		}
		return p, fmt.Errorf("loading latest profile: %w", err)
	}
	return p, nil
}

// nextSeq increments the profiles counter and returns the new value.
func (s *MongoStore) nextSeq(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := s.counters.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: profilesCollection}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: int64(1)}}}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("allocating profile sequence: %w", err)
	}
	return counter.Seq, nil
}

func (s *MongoStore) CreateProfile(ctx context.Context, p *models.Profile) error {
	seq, err := s.nextSeq(ctx)
	if err != nil {
		return err
	}
	now := s.now().UTC()
	p.ID = uuid.NewString()
	p.Seq = seq
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("inserting profile: %w", err)
	}
	return nil
}

func (s *MongoStore) SaveProfile(ctx context.Context, p *models.Profile) error {
	p.UpdatedAt = s.now().UTC()

	result, err := s.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: p.ID}}, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("saving profile: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrProfileNotFound
	}
	return nil
}

// ReplaceAllProfiles is not atomic: standalone servers do not support
// multi-document transactions.
func (s *MongoStore) ReplaceAllProfiles(ctx context.Context, p *models.Profile) error {
	if _, err := s.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("clearing profiles: %w", err)
	}
	return s.CreateProfile(ctx, p)
}
