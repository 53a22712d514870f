package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskmint/internal/model"
)

// taskDoc is the stored shape of a Task.
type taskDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Description   string             `bson:"description"`
	Deadline      *time.Time         `bson:"deadline"`
	EstimatedTime string             `bson:"estimatedTime"`
	Priority      string             `bson:"priority"`
	Completed     bool               `bson:"completed"`
	CompletedAt   *time.Time         `bson:"completedAt"`
	UserID        string             `bson:"userId"`
	UserType      string             `bson:"userType"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func (d taskDoc) toModel() model.Task {
	return model.Task{
		ID:            d.ID.Hex(),
		Title:         d.Title,
		Description:   d.Description,
		Deadline:      d.Deadline,
		EstimatedTime: d.EstimatedTime,
		Priority:      model.ParsePriority(d.Priority),
		Completed:     d.Completed,
		CompletedAt:   d.CompletedAt,
		UserID:        d.UserID,
		UserType:      model.UserType(d.UserType),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
