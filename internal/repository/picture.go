package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pixiapp/pixi-go/internal/apperror"
	"github.com/pixiapp/pixi-go/internal/model"
)

// PictureRepository persists picture documents.
type PictureRepository struct {
	pictures *mongo.Collection
}

func NewPictureRepository(db *mongo.Database) *PictureRepository {
	return &PictureRepository{pictures: db.Collection("pictures")}
}

// Insert stores a new picture record.
func (r *PictureRepository) Insert(ctx context.Context, pic *model.Picture) error {
	_, err := r.pictures.InsertOne(ctx, pic)
	if err != nil {
		return apperror.Wrap(apperror.Store, "inserting picture", err)
	}
	return nil
}

// FindByID returns the picture with the given id, or NotFound.
func (r *PictureRepository) FindByID(ctx context.Context, id string) (*model.Picture, error) {
	pic := &model.Picture{}
	err := r.pictures.FindOne(ctx, bson.M{"_id": id}).Decode(pic)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.New(apperror.NotFound, "photo not found")
		}
		return nil, apperror.Wrap(apperror.Store, "finding picture", err)
	}
	return pic, nil
}

// Delete removes a picture by id; NotFound when nothing matched.
func (r *PictureRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pictures.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperror.Wrap(apperror.Store, "deleting picture", err)
	}
	if res.DeletedCount == 0 {
		return apperror.New(apperror.NotFound, "photo not found")
	}
	return nil
}

// FindByCreator returns all pictures created by the given user.
func (r *PictureRepository) FindByCreator(ctx context.Context, creatorID string) ([]model.Picture, error) {
	cursor, err := r.pictures.Find(ctx, bson.M{"creator_id": creatorID})
	if err != nil {
		return nil, apperror.Wrap(apperror.Store, "listing pictures", err)
	}
	defer cursor.Close(ctx)

	var pics []model.Picture
	if err := cursor.All(ctx, &pics); err != nil {
		return nil, apperror.Wrap(apperror.Store, "decoding pictures", err)
	}
	return pics, nil
}
