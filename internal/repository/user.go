package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pixiapp/pixi-go/internal/apperror"
	"github.com/pixiapp/pixi-go/internal/model"
)

// UserRepository persists user documents. It is the single point where
// driver errors are translated into apperror kinds.
type UserRepository struct {
	users *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{users: db.Collection("users")}
}

// EnsureIndexes creates the unique email index. The index makes the
// check-then-insert registration flow race-free: a concurrent duplicate
// insert fails atomically instead of slipping past the best-effort lookup.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return apperror.Wrap(apperror.Store, "creating user indexes", err)
	}
	return nil
}

// Insert stores a new user. Duplicate emails surface as AlreadyRegistered.
func (r *UserRepository) Insert(ctx context.Context, user *model.User) error {
	_, err := r.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.New(apperror.AlreadyRegistered, "user is already registered")
		}
		return apperror.Wrap(apperror.Store, "inserting user", err)
	}
	return nil
}

// FindByEmail returns the user with the given email, or NotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.New(apperror.NotFound, "user not found")
		}
		return nil, apperror.Wrap(apperror.Store, "finding user by email", err)
	}
	return user, nil
}

// FindByID returns the user with the given id, or NotFound.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	user := &model.User{}
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.New(apperror.NotFound, "user not found")
		}
		return nil, apperror.Wrap(apperror.Store, "finding user by id", err)
	}
	return user, nil
}

// Update applies a partial $set update to a user. The caller is responsible
// for hashing any password before it gets here.
func (r *UserRepository) Update(ctx context.Context, id string, set map[string]any) error {
	res, err := r.users.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperror.New(apperror.AlreadyRegistered, "email already in use")
		}
		return apperror.Wrap(apperror.Store, "updating user", err)
	}
	if res.MatchedCount == 0 {
		return apperror.New(apperror.NotFound, "user not found")
	}
	return nil
}

// Delete removes a user by id; NotFound when nothing matched.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.users.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperror.Wrap(apperror.Store, "deleting user", err)
	}
	if res.DeletedCount == 0 {
		return apperror.New(apperror.NotFound, "user not found")
	}
	return nil
}

// FindAll returns every user document.
func (r *UserRepository) FindAll(ctx context.Context) ([]model.User, error) {
	cursor, err := r.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperror.Wrap(apperror.Store, "listing users", err)
	}
	defer cursor.Close(ctx)

	var users []model.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, apperror.Wrap(apperror.Store, "decoding users", err)
	}
	return users, nil
}

// AttachPicture appends a picture id to the owner's all_pictures list.
func (r *UserRepository) AttachPicture(ctx context.Context, userID, pictureID string) error {
	_, err := r.users.UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"all_pictures": pictureID}})
	if err != nil {
		return apperror.Wrap(apperror.Store, "attaching picture to user", err)
	}
	return nil
}

// DetachPicture removes a picture id from the owner's all_pictures list.
func (r *UserRepository) DetachPicture(ctx context.Context, userID, pictureID string) error {
	_, err := r.users.UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"all_pictures": pictureID}})
	if err != nil {
		return apperror.Wrap(apperror.Store, "detaching picture from user", err)
	}
	return nil
}
