package service

import (
	"context"
	"log/slog"

	"github.com/pixiapp/pixi-go/internal/apperror"
	"github.com/pixiapp/pixi-go/internal/crypto"
	"github.com/pixiapp/pixi-go/internal/model"
	"github.com/pixiapp/pixi-go/internal/policy"
)

// UserService handles profile reads, profile edits and the admin user
// management operations.
type UserService struct {
	users  UserStore
	policy *policy.Policy
}

func NewUserService(users UserStore, pol *policy.Policy) *UserService {
	return &UserService{users: users, policy: pol}
}

// Info returns the requester's current record, re-fetched from the store so
// the response never serves stale token data.
func (s *UserService) Info(ctx context.Context, requesterID string) (*model.User, error) {
	return s.users.FindByID(ctx, requesterID)
}

// Edit applies a partial update to the requester's own record. Changing the
// admin flag is policy-gated; passwords are re-hashed before storage.
func (s *UserService) Edit(ctx context.Context, requesterID string, upd model.UserUpdate) error {
	if upd.Empty() {
		return apperror.New(apperror.MissingParameters, "no data to update, add it to body")
	}

	set := map[string]any{}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Password != nil {
		hash, err := crypto.HashPassword(*upd.Password)
		if err != nil {
			return apperror.Wrap(apperror.Internal, "hashing password", err)
		}
		set["password_hash"] = hash
	}
	if upd.IsAdmin != nil {
		requester, err := s.users.FindByID(ctx, requesterID)
		if err != nil {
			return err
		}
		if !s.policy.CanSetAdmin(requester) {
			return apperror.New(apperror.Forbidden, "not allowed to change admin status")
		}
		set["is_admin"] = *upd.IsAdmin
	}

	return s.users.Update(ctx, requesterID, set)
}

// ListAll returns every user record; admin only.
func (s *UserService) ListAll(ctx context.Context, requesterID string) ([]model.User, error) {
	requester, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if !s.policy.CanManageUsers(requester) {
		return nil, apperror.New(apperror.Forbidden, "admin role required")
	}

	return s.users.FindAll(ctx)
}

// DeleteUser removes an account by id; admin only.
func (s *UserService) DeleteUser(ctx context.Context, requesterID, targetID string) error {
	if targetID == "" {
		return apperror.New(apperror.MissingParameters, "missing userid to delete")
	}

	requester, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		return err
	}
	if !s.policy.CanManageUsers(requester) {
		return apperror.New(apperror.Forbidden, "admin role required")
	}

	if err := s.users.Delete(ctx, targetID); err != nil {
		return err
	}

	slog.Info("user deleted", "user_id", targetID, "deleted_by", requesterID)
	return nil
}
