package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pregen/shop-api/internal/domain/contract"
	"github.com/pregen/shop-api/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoUserRepository struct {
	collection *mongo.Collection
}

// check in compile time if MongoUserRepository implements IUserRepository
var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

// withoutSecret excludes the password hash from reads that end up in responses.
var withoutSecret = bson.M{"password_hash": 0}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return contract.ErrDuplicateUser
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(withoutSecret))
}

// GetUserByEmail keeps the hash: login needs it.
func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"username": username}, options.FindOne().SetProjection(withoutSecret))
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, filter, opts...).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) ListUsers(ctx context.Context) ([]entity.User, error) {
	opts := options.Find().
		SetProjection(withoutSecret).
		SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := make([]entity.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserFields sets the given fields and returns the updated user.
func (r *MongoUserRepository) UpdateUserFields(ctx context.Context, id string, fields map[string]interface{}) (*entity.User, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(withoutSecret)

	var updated entity.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrUserNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *MongoUserRepository) RecordLogin(ctx context.Context, id, ip string, at time.Time) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, recordLoginUpdate(ip, at))
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return contract.ErrUserNotFound
	}
	return nil
}

// SetDeleted only matches documents whose marker differs from deleted, so of two
// concurrent soft-deletes exactly one reports a change.
func (r *MongoUserRepository) SetDeleted(ctx context.Context, id string, deleted bool, deletedAt *time.Time) (bool, error) {
	result, err := r.collection.UpdateOne(ctx, softDeleteFilter(id, deleted), softDeleteUpdate(deleted, deletedAt, time.Now()))
	if err != nil {
		return false, err
	}
	return result.ModifiedCount == 1, nil
}

// ToggleBlocked flips the flag in one round trip using an update pipeline.
func (r *MongoUserRepository) ToggleBlocked(ctx context.Context, id string) (bool, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"blocked": 1})

	var doc struct {
		Blocked bool `bson:"blocked"`
	}
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, toggleBlockedPipeline(), opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, contract.ErrUserNotFound
		}
		return false, err
	}
	return doc.Blocked, nil
}

func recordLoginUpdate(ip string, at time.Time) bson.M {
	return bson.M{
		"$set": bson.M{"last_login": at, "last_ip": ip},
		"$push": bson.M{
			"activity_log": entity.ActivityEntry{Action: entity.ActivityLogin, Timestamp: at},
		},
	}
}

// softDeleteFilter matches id only while its marker still differs from deleted.
func softDeleteFilter(id string, deleted bool) bson.M {
	return bson.M{"_id": id, "deleted": bson.M{"$ne": deleted}}
}

func softDeleteUpdate(deleted bool, deletedAt *time.Time, now time.Time) bson.M {
	return bson.M{"$set": bson.M{
		"deleted":    deleted,
		"deleted_at": deletedAt,
		"updated_at": now,
	}}
}

// toggleBlockedPipeline negates the stored flag server side.
func toggleBlockedPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"blocked":    bson.M{"$not": bson.A{"$blocked"}},
			"updated_at": "$$NOW",
		}}},
	}
}
