package service

import (
	"context"
	"io"

	"github.com/pixiapp/pixi-go/internal/model"
	"github.com/pixiapp/pixi-go/internal/repository"
	"github.com/pixiapp/pixi-go/internal/storage"
)

// UserStore is the credential store consumed by the services. The Mongo
// repository is the production implementation; tests use in-memory fakes.
type UserStore interface {
	Insert(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Update(ctx context.Context, id string, set map[string]any) error
	Delete(ctx context.Context, id string) error
	FindAll(ctx context.Context) ([]model.User, error)
	AttachPicture(ctx context.Context, userID, pictureID string) error
	DetachPicture(ctx context.Context, userID, pictureID string) error
}

// PictureStore persists picture records.
type PictureStore interface {
	Insert(ctx context.Context, pic *model.Picture) error
	FindByID(ctx context.Context, id string) (*model.Picture, error)
	Delete(ctx context.Context, id string) error
	FindByCreator(ctx context.Context, creatorID string) ([]model.Picture, error)
}

// FileStore writes and removes uploaded picture files.
type FileStore interface {
	Save(src io.Reader) (filename, path string, err error)
	Remove(filename string) error
}

var (
	_ UserStore    = (*repository.UserRepository)(nil)
	_ PictureStore = (*repository.PictureRepository)(nil)
	_ FileStore    = (*storage.FileStore)(nil)
)
