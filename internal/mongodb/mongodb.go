package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/frahmantamala/hr-management/internal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	CollectionAttendance = "attendance"
	CollectionSchedule   = "schedule"
	CollectionExtraHours = "extrahours"
)

// Connect dials the document store and verifies it answers a ping.
func Connect(ctx context.Context, cfg internal.MongoConfig) (*mongo.Client, *mongo.Database, error) {
	opts := options.Client().ApplyURI(cfg.URI())
	if cfg.Timeout > 0 {
		opts.SetConnectTimeout(cfg.Timeout).SetServerSelectionTimeout(cfg.Timeout)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := internal.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, client.Database(cfg.Database), nil
}

// Collection pairs a collection name with its $jsonSchema validator.
type Collection struct {
	Name      string
	Validator bson.M
}

func Collections() []Collection {
	return []Collection{
		{Name: CollectionAttendance, Validator: attendanceSchema()},
		{Name: CollectionExtraHours, Validator: extraHoursSchema()},
		{Name: CollectionSchedule, Validator: scheduleSchema()},
	}
}

// EnsureCollections creates every missing collection with strict validation.
// Existing collections are left untouched.
func EnsureCollections(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}

	for _, c := range Collections() {
		if slices.Contains(existing, c.Name) {
			logger.Info("collection already exists", "collection", c.Name)
			continue
		}
		opts := options.CreateCollection().
			SetValidator(c.Validator).
			SetValidationLevel("strict")
		if err := db.CreateCollection(ctx, c.Name, opts); err != nil {
			return fmt.Errorf("create collection %s: %w", c.Name, err)
		}
		logger.Info("collection created with schema validator", "collection", c.Name)
	}
	return nil
}

// DropCollections removes the document collections. Missing ones are skipped.
func DropCollections(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("list collections: %w", err)
	}
	for _, c := range Collections() {
		if !slices.Contains(existing, c.Name) {
			logger.Info("collection not found", "collection", c.Name)
			continue
		}
		if err := db.Collection(c.Name).Drop(ctx); err != nil {
			return fmt.Errorf("drop collection %s: %w", c.Name, err)
		}
		logger.Info("collection dropped", "collection", c.Name)
	}
	return nil
}

// IDString renders an inserted id. ObjectIDs are returned as hex.
func IDString(id interface{}) string {
	if oid, ok := id.(bson.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
