package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skywings/booking-system/internal/core/domain"
)

const collectionCredentials = "credentials"

// CredentialRepository persists sign-in credentials for the built-in
// identity provider.
type CredentialRepository struct {
	col *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{col: db.Collection(collectionCredentials)}
}

type mongoCredential struct {
	Email        string `bson:"_id"`
	PasswordHash string `bson:"password_hash"`
	DisplayName  string `bson:"display_name,omitempty"`
	CreatedAt    int64  `bson:"created_at"`
}

// Create inserts a credential keyed by lower-cased email.
func (r *CredentialRepository) Create(ctx context.Context, cred *domain.Credential) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCredential{
		Email:        cred.Email,
		PasswordHash: cred.PasswordHash,
		DisplayName:  cred.DisplayName,
		CreatedAt:    cred.CreatedAt,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert credential: %w", err)
	}
	return nil
}

// FindByEmail looks up a credential; the email key is already lower-cased by
// the service layer.
func (r *CredentialRepository) FindByEmail(ctx context.Context, email string) (*domain.Credential, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoCredential
	if err := r.col.FindOne(ctx, bson.M{"_id": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find credential: %w", err)
	}

	return &domain.Credential{
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		DisplayName:  doc.DisplayName,
		CreatedAt:    doc.CreatedAt,
	}, nil
}

// EnsureIndexes creates the indexes the directory collections rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := db.Collection(collectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index(),
	})
	return err
}
