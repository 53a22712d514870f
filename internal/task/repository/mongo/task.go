package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskmint/internal/model"
	repo "taskmint/internal/task/repository"
)

// CreateTask inserts a new Task document and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	doc := r.buildNewDoc(opt)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toModel(), nil
}

// GetOneTask retrieves a single Task by id.
// Returns zero-value Task (ID == "") when not found or when the id is malformed.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	filter, ok := r.buildIDFilter(opt.ID)
	if !ok {
		return model.Task{}, nil
	}

	var doc taskDoc
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return doc.toModel(), nil
}

// ListTasks returns every Task of one owner.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	filter, findOpts := r.buildListQuery(opt)

	cur, err := r.coll.Find(ctx, filter, findOpts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer cur.Close(ctx)

	var docs []taskDoc
	if err := cur.All(ctx, &docs); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}

	tasks := make([]model.Task, 0, len(docs))
	for _, d := range docs {
		tasks = append(tasks, d.toModel())
	}
	return tasks, nil
}

// UpdateTask applies a partial update and returns the updated entity.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	filter, ok := r.buildIDFilter(opt.ID)
	if !ok {
		return model.Task{}, nil
	}

	var doc taskDoc
	err := r.coll.FindOneAndUpdate(ctx, filter, r.buildUpdate(opt),
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return doc.toModel(), nil
}

// DeleteTask removes a Task by id.
func (r *implRepository) DeleteTask(ctx context.Context, id string) (bool, error) {
	filter, ok := r.buildIDFilter(id)
	if !ok {
		return false, nil
	}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return res.DeletedCount > 0, nil
}
