package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskmint/internal/model"
)

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username,omitempty"`
	Email        string             `bson:"email"`
	FullName     string             `bson:"fullName,omitempty"`
	Password     string             `bson:"password,omitempty"`
	UserType     string             `bson:"userType"`
	RefreshToken string             `bson:"refreshToken,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (d userDoc) toModel() model.User {
	return model.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		Email:        d.Email,
		FullName:     d.FullName,
		Password:     d.Password,
		UserType:     model.UserType(d.UserType),
		RefreshToken: d.RefreshToken,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
