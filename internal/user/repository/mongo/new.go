package mongo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskmint/internal/user/repository"
	"taskmint/pkg/log"
)

// CollectionName is the users collection.
const CollectionName = "users"

type implRepository struct {
	coll *mongo.Collection
	l    log.Logger
	now  func() time.Time
}

// New creates a new MongoDB-backed Repository for the user domain.
func New(db *mongo.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/mongo: db is required")
	}
	return &implRepository{coll: db.Collection(CollectionName), l: l, now: time.Now}
}

// Indexes returns the indexes the users collection needs.
func Indexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("email_unique").SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetName("username").SetSparse(true)},
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/mongo.%s", method)
}
