package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/fathima-sithara/auth-service/internal/models"
)

type mongoUserRepo struct {
	col *mongo.Collection
}

// NewMongoUserRepo builds a Mongo-backed UserRepository and ensures the
// unique indexes on email and username. The indexes are the uniqueness
// backstop: even if the application-level pre-check races, the insert fails.
// Without them, duplicate users could slip through, so a failure here is
// loud in the logs rather than silently dropped.
func NewMongoUserRepo(db *mongo.Database, collection string, logger *zap.Logger) UserRepository {
	col := db.Collection(collection)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "uuid", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		logger.Error("failed to create unique indexes", zap.String("collection", collection), zap.Error(err))
	}
	return &mongoUserRepo{col: col}
}

func (r *mongoUserRepo) Create(ctx context.Context, u *models.User) error {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return &DuplicateKeyError{Field: duplicateField(err)}
	}
	return err
}

func (r *mongoUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoUserRepo) FindByEmailOrUsername(ctx context.Context, email, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"username": username},
	}})
}

func (r *mongoUserRepo) FindByUUID(ctx context.Context, uuid string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"uuid": uuid})
}

func (r *mongoUserRepo) Update(ctx context.Context, u *models.User) error {
	u.UpdatedAt = time.Now().UTC()
	_, err := r.col.UpdateOne(ctx, bson.M{"uuid": u.UUID}, bson.M{"$set": u})
	return err
}

func (r *mongoUserRepo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	err := r.col.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// duplicateField extracts which unique index fired from the duplicate-key
// error text. Email wins when the index cannot be determined, matching the
// tie-break rule of the registration flow.
func duplicateField(err error) string {
	if err != nil && strings.Contains(err.Error(), "username") {
		return "username"
	}
	return "email"
}
