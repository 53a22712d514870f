package mongo

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	repo "taskmint/internal/user/repository"
	pkgMongo "taskmint/pkg/mongo"
)

// buildGetOneFilter ORs the non-empty lookup fields. ok is false when no
// usable field is given.
func (r *implRepository) buildGetOneFilter(opt repo.GetOneUserOptions) (bson.M, bool) {
	var or []bson.M

	if opt.ID != "" {
		oid, valid := pkgMongo.ObjectIDFromHex(opt.ID)
		if valid {
			or = append(or, bson.M{"_id": oid})
		}
	}
	if opt.Email != "" {
		or = append(or, bson.M{"email": normalizeEmail(opt.Email)})
	}
	if opt.Username != "" {
		or = append(or, bson.M{"username": strings.TrimSpace(opt.Username)})
	}

	switch len(or) {
	case 0:
		return nil, false
	case 1:
		return or[0], true
	default:
		return bson.M{"$or": or}, true
	}
}

// buildNewDoc fills system fields for an insert.
func (r *implRepository) buildNewDoc(opt repo.CreateUserOptions) userDoc {
	now := r.now().UTC()
	return userDoc{
		Username:  strings.TrimSpace(opt.Username),
		Email:     normalizeEmail(opt.Email),
		FullName:  strings.TrimSpace(opt.FullName),
		Password:  opt.Password,
		UserType:  string(opt.UserType),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// buildRefreshTokenUpdate sets the token, or unsets it when empty.
func (r *implRepository) buildRefreshTokenUpdate(token string) bson.M {
	now := r.now().UTC()
	if token == "" {
		return bson.M{
			"$unset": bson.M{"refreshToken": 1},
			"$set":   bson.M{"updatedAt": now},
		}
	}
	return bson.M{"$set": bson.M{"refreshToken": token, "updatedAt": now}}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
