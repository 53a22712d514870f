package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the given indexes on a collection. Existing indexes
// with the same keys and options are left untouched by the server.
func (c *Client) EnsureIndexes(ctx context.Context, collection string, models []mongo.IndexModel) error {
	if len(models) == 0 {
		return nil
	}
	if _, err := c.db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("mongo: create indexes on %s: %w", collection, err)
	}
	return nil
}
