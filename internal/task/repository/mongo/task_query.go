package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	repo "taskmint/internal/task/repository"
	pkgMongo "taskmint/pkg/mongo"
)

// buildIDFilter returns the _id filter, or ok=false for a malformed id.
func (r *implRepository) buildIDFilter(id string) (bson.M, bool) {
	oid, ok := pkgMongo.ObjectIDFromHex(id)
	if !ok {
		return nil, false
	}
	return bson.M{"_id": oid}, true
}

// buildListQuery builds the owner filter and sort for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (bson.M, *options.FindOptions) {
	filter := bson.M{
		"userId":   opt.UserID,
		"userType": string(opt.UserType),
	}

	direction := -1
	if opt.OldestFirst {
		direction = 1
	}
	return filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: direction}})
}

// buildNewDoc fills system fields for an insert.
func (r *implRepository) buildNewDoc(opt repo.CreateTaskOptions) taskDoc {
	now := r.now().UTC()
	return taskDoc{
		Title:         opt.Title,
		Description:   opt.Description,
		Deadline:      opt.Deadline,
		EstimatedTime: opt.EstimatedTime,
		Priority:      string(opt.Priority),
		Completed:     false,
		UserID:        opt.UserID,
		UserType:      string(opt.UserType),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// buildUpdate builds the $set document for UpdateTask. Cleared fields are
// stored as null; updatedAt is always refreshed.
func (r *implRepository) buildUpdate(opt repo.UpdateTaskOptions) bson.M {
	set := bson.M{"updatedAt": r.now().UTC()}

	if opt.Title != nil {
		set["title"] = *opt.Title
	}
	if opt.Description != nil {
		set["description"] = *opt.Description
	}
	if opt.ClearDeadline {
		set["deadline"] = nil
	} else if opt.Deadline != nil {
		set["deadline"] = *opt.Deadline
	}
	if opt.EstimatedTime != nil {
		set["estimatedTime"] = *opt.EstimatedTime
	}
	if opt.Priority != nil {
		set["priority"] = string(*opt.Priority)
	}
	if opt.Completed != nil {
		set["completed"] = *opt.Completed
	}
	if opt.ClearCompletedAt {
		set["completedAt"] = nil
	} else if opt.CompletedAt != nil {
		set["completedAt"] = *opt.CompletedAt
	}

	return bson.M{"$set": set}
}
