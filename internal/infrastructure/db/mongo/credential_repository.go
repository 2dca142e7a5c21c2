package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/homeaid/care-portal/internal/core/domain"
)

const credentialCollection = "credentials"

// CredentialRepository implements ports.CredentialStore on the credentials
// collection.
type CredentialRepository struct {
	coll *mongo.Collection
}

func NewCredentialRepository(db *mongo.Database) *CredentialRepository {
	return &CredentialRepository{coll: db.Collection(credentialCollection)}
}

type mongoCredential struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	Name         string             `bson:"name"`
}

func (m mongoCredential) toDomain() *domain.Credential {
	return &domain.Credential{
		Email:    m.Email,
		Password: m.PasswordHash,
		Role:     domain.Role(m.Role),
		Name:     m.Name,
	}
}

// Lookup walks the records for email in insertion order and returns the
// first whose hash verifies.
func (r *CredentialRepository) Lookup(ctx context.Context, email, password string) (*domain.Credential, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, fmt.Errorf("find credentials: %w", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var mc mongoCredential
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode credential: %w", err)
		}
		if bcrypt.CompareHashAndPassword([]byte(mc.PasswordHash), []byte(password)) == nil {
			return mc.toDomain(), nil
		}
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate credentials: %w", err)
	}

	return nil, domain.ErrInvalidCredentials
}

// EnsureIndexes creates the email index used by Lookup.
func (r *CredentialRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "email", Value: 1}}})
	return err
}

// SeedIfEmpty inserts accounts when the collection has no documents.
// Passwords in accounts are plaintext and are hashed before insert.
func (r *CredentialRepository) SeedIfEmpty(ctx context.Context, accounts []domain.Credential) (int, error) {
	n, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count credentials: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	docs := make([]interface{}, 0, len(accounts))
	for _, a := range accounts {
		h, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return 0, fmt.Errorf("hash password for %s: %w", a.Email, err)
		}
		docs = append(docs, mongoCredential{
			Email:        a.Email,
			PasswordHash: string(h),
			Role:         string(a.Role),
			Name:         a.Name,
		})
	}
	if len(docs) == 0 {
		return 0, nil
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return 0, fmt.Errorf("seed credentials: %w", err)
	}
	return len(docs), nil
}
