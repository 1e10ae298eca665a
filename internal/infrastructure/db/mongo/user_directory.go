package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skywings/booking-system/internal/core/domain"
)

const collectionUsers = "users"

// UserDirectory is the remote user directory: the canonical multi-device
// user collection. Callers treat every operation as best-effort.
type UserDirectory struct {
	col *mongo.Collection
}

func NewUserDirectory(db *mongo.Database) *UserDirectory {
	return &UserDirectory{col: db.Collection(collectionUsers)}
}

// List returns all documents in the user collection.
func (d *UserDirectory) List(ctx context.Context) ([]domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := d.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cur.Close(ctx)

	var users []domain.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

// Upsert writes the record under the application-chosen document id.
func (d *UserDirectory) Upsert(ctx context.Context, id string, user domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := d.col.ReplaceOne(ctx, bson.M{"_id": id}, user, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert user %s: %w", id, err)
	}
	return nil
}

// Delete removes the record with the given document id. Deleting a missing
// document is not an error.
func (d *UserDirectory) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := d.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}
