package mongo

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectIDFromHex parses a hex id. ok is false for malformed ids.
func ObjectIDFromHex(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
