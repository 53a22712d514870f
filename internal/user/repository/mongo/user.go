package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"taskmint/internal/model"
	repo "taskmint/internal/user/repository"
	pkgMongo "taskmint/pkg/mongo"
)

// CreateUser inserts a new User document and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	doc := r.buildNewDoc(opt)

	res, err := r.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return model.User{}, repo.ErrDuplicate
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toModel(), nil
}

// GetOneUser retrieves a single User by id, email or username.
// Returns zero-value User (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	filter, ok := r.buildGetOneFilter(opt)
	if !ok {
		return model.User{}, nil
	}

	var doc userDoc
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return doc.toModel(), nil
}

// SetRefreshToken stores or clears the refresh token of a User.
func (r *implRepository) SetRefreshToken(ctx context.Context, id string, token string) error {
	oid, ok := pkgMongo.ObjectIDFromHex(id)
	if !ok {
		return nil
	}

	if _, err := r.coll.UpdateByID(ctx, oid, r.buildRefreshTokenUpdate(token)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetRefreshToken"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}
