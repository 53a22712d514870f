package mongo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskmint/internal/task/repository"
	"taskmint/pkg/log"
)

// CollectionName is the tasks collection.
const CollectionName = "tasks"

type implRepository struct {
	coll *mongo.Collection
	l    log.Logger
	now  func() time.Time
}

// New creates a new MongoDB-backed Repository for the task domain.
func New(db *mongo.Database, l log.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/mongo: db is required")
	}
	return &implRepository{coll: db.Collection(CollectionName), l: l, now: time.Now}
}

// Indexes returns the indexes the tasks collection needs.
func Indexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "userType", Value: 1}}, Options: options.Index().SetName("owner")},
		{Keys: bson.D{{Key: "completed", Value: 1}}, Options: options.Index().SetName("completed")},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}, Options: options.Index().SetName("createdAt_desc")},
	}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/mongo.%s", method)
}
