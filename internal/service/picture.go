package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pixiapp/pixi-go/internal/apperror"
	"github.com/pixiapp/pixi-go/internal/generator"
	"github.com/pixiapp/pixi-go/internal/model"
	"github.com/pixiapp/pixi-go/internal/policy"
)

// PictureService handles picture upload, listing and deletion.
type PictureService struct {
	pictures PictureStore
	users    UserStore
	files    FileStore
	policy   *policy.Policy
}

func NewPictureService(pictures PictureStore, users UserStore, files FileStore, pol *policy.Policy) *PictureService {
	return &PictureService{pictures: pictures, users: users, files: files, policy: pol}
}

// Upload stores the file, creates the picture record with a generated display
// name and caption, and links it to the uploader.
func (s *PictureService) Upload(ctx context.Context, requesterID, title string, src io.Reader) (*model.Picture, error) {
	if title == "" {
		return nil, apperror.New(apperror.MissingParameters, "no file uploaded")
	}

	filename, path, err := s.files.Save(src)
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "storing upload", err)
	}

	pic := &model.Picture{
		ID:          uuid.NewString(),
		Title:       title,
		ImageURL:    path,
		Name:        generator.Words(2),
		Filename:    filename,
		Description: generator.Sentence(),
		CreatorID:   requesterID,
		CreatedDate: time.Now().UTC(),
	}

	if err := s.pictures.Insert(ctx, pic); err != nil {
		if rmErr := s.files.Remove(filename); rmErr != nil {
			slog.Warn("removing orphaned upload failed", "filename", filename, "error", rmErr)
		}
		return nil, err
	}

	if err := s.users.AttachPicture(ctx, requesterID, pic.ID); err != nil {
		slog.Warn("attaching picture to user failed", "picture_id", pic.ID, "error", err)
	}

	return pic, nil
}

// Delete removes a picture, gated by the ownership policy.
func (s *PictureService) Delete(ctx context.Context, requesterID, pictureID string) error {
	pic, err := s.pictures.FindByID(ctx, pictureID)
	if err != nil {
		return err
	}

	requester, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		return err
	}
	if !s.policy.CanDeletePicture(requester, pic) {
		return apperror.New(apperror.Forbidden, "not allowed to delete this picture")
	}

	if err := s.pictures.Delete(ctx, pictureID); err != nil {
		return err
	}

	if err := s.users.DetachPicture(ctx, pic.CreatorID, pictureID); err != nil {
		slog.Warn("detaching picture from user failed", "picture_id", pictureID, "error", err)
	}
	if err := s.files.Remove(pic.Filename); err != nil {
		slog.Warn("removing picture file failed", "filename", pic.Filename, "error", err)
	}

	return nil
}

// ListOwn returns the requester's pictures.
func (s *PictureService) ListOwn(ctx context.Context, requesterID string) ([]model.Picture, error) {
	return s.pictures.FindByCreator(ctx, requesterID)
}
